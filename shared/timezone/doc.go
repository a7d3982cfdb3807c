// Package timezone keeps every clock reading in the configured APP_TIMEZONE.
//
//	now := timezone.Now()          // current time in the app timezone
//	day := timezone.Today()        // current calendar day, for date-only comparisons
//	d := timezone.Date(createdAt)  // calendar day of any instant, as seen locally
//	t, err := timezone.Parse("2006-01-02", "2024-01-01")
//
// The location is loaded once when the package is imported. Use IANA names
// such as "UTC" or "Asia/Kolkata".
package timezone
