package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	App struct {
		Name     string `envconfig:"NAME"      default:"lodge"`
		Timezone string `envconfig:"TIMEZONE"  default:"UTC"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
	} `envconfig:"APP"`

	DB struct {
		SQLite struct {
			Path           string `envconfig:"PATH"            default:"hotel.db"`
			MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			BusyTimeoutMS  int    `envconfig:"BUSY_TIMEOUT_MS" default:"5000"`
		} `envconfig:"SQLITE"`
	} `envconfig:"DB"`

	Invoice struct {
		DueDays int `envconfig:"DUE_DAYS" default:"7"`
	} `envconfig:"INVOICE"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Debug().Err(err).Msg("No .env file found, continuing with existing environment variables")
			err = nil
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true
	})

	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
