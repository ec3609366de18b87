// Package timezone provides timezone utilities for the application.
//
// All user-facing dates (check-in/check-out, issue dates, expense
// dates) are interpreted in the application timezone configured via the
// APP_TIMEZONE environment variable; use standard IANA names such as
// "UTC", "Asia/Jakarta" or "America/New_York". The location is
// initialized when the package is imported.
//
//	today := timezone.Today()                       // ISO date string
//	t, err := timezone.ParseDate("2024-06-01")      // date-only parse
//	stamp := timezone.Format(timezone.Now(), constant.TimestampFormat)
package timezone
