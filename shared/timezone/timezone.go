package timezone

import (
	"time"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/shared/constant"
)

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Use standard IANA names like 'Asia/Jakarta', 'UTC', 'America/New_York'")
		appLocation = time.UTC

		return
	}

	appLocation = loc
}

// Now returns the current time in the application timezone
func Now() time.Time {
	if appLocation == nil {
		return time.Now().UTC()
	}

	return time.Now().In(appLocation)
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	if appLocation == nil {
		return t.UTC()
	}

	return t.In(appLocation)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	if appLocation == nil {
		return time.Parse(layout, value)
	}

	return time.ParseInLocation(layout, value, appLocation)
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// ParseDate parses an ISO YYYY-MM-DD date string in the application timezone.
func ParseDate(value string) (time.Time, error) {
	return Parse(constant.DateFormat, value)
}

// FormatDate renders a time as an ISO YYYY-MM-DD date string.
func FormatDate(t time.Time) string {
	return Format(t, constant.DateFormat)
}

// Today returns the current date in the application timezone as an ISO string.
func Today() string {
	return FormatDate(Now())
}

// NowStamp returns the current time formatted for timestamp columns.
func NowStamp() string {
	return Format(Now(), constant.TimestampFormat)
}
