// Package datefmt renders stored dates for display. Formatting is pure so it
// can be tested without touching storage.
package datefmt

import "time"

const (
	storedLayout = "2006-01-02"
	humanLayout  = "02 Jan 2006"
)

// IST is the fixed display zone (UTC+05:30). FixedZone keeps us independent
// of the host tzdata.
var IST = time.FixedZone("IST", 5*3600+1800)

// Date renders a stored YYYY-MM-DD string as "02 Jan 2006". Unparseable
// input is returned unchanged.
func Date(s string) string {
	t, err := time.Parse(storedLayout, s)
	if err != nil {
		return s
	}
	return t.Format(humanLayout)
}

// Timestamp renders an instant in IST as "02 Jan 2006 15:04".
func Timestamp(t time.Time) string {
	return t.In(IST).Format("02 Jan 2006 15:04")
}
