package datefmt

import (
	"testing"
	"time"
)

func TestDate(t *testing.T) {
	cases := map[string]string{
		"2025-01-01": "01 Jan 2025",
		"2025-12-31": "31 Dec 2025",
		"2024-02-29": "29 Feb 2024",
	}
	for input, expect := range cases {
		if got := Date(input); got != expect {
			t.Fatalf("Date(%q) = %q, want %q", input, got, expect)
		}
	}
}

func TestDateUnparseable(t *testing.T) {
	for _, s := range []string{"", "not-a-date", "2025/01/01"} {
		if got := Date(s); got != s {
			t.Fatalf("Date(%q) = %q, want input unchanged", s, got)
		}
	}
}

func TestTimestampFixedZone(t *testing.T) {
	// 2025-01-01 00:00 UTC is 05:30 IST the same day.
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := Timestamp(at); got != "01 Jan 2025 05:30" {
		t.Fatalf("Timestamp = %q", got)
	}

	// 20:00 UTC rolls into the next IST day.
	at = time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)
	if got := Timestamp(at); got != "02 Jan 2025 01:30" {
		t.Fatalf("Timestamp = %q", got)
	}
}
