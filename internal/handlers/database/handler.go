package database

import (
	"context"
	"flag"
	"fmt"
	"io"

	"lodge/config"
	"lodge/helper"
	"lodge/shared/failure"
)

type Handler struct {
	cfg *config.Config
}

func New(cfg *config.Config) Handler {
	return Handler{
		cfg: cfg,
	}
}

// Init creates the schema. Running it against an existing database is a
// no-op, so it is safe to call before every first command.
func (handler *Handler) Init(_ context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("init-db", flag.ContinueOnError)
	flags.SetOutput(out)

	if err := flags.Parse(args); err != nil {
		return failure.Validation(err) //nolint:wrapcheck
	}

	if err := helper.Up(handler.cfg); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	fmt.Fprintf(out, "Database initialized at %s\n", handler.cfg.DB.SQLite.Path)

	return nil
}
