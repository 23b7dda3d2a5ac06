package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-09-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Year() != 2024 || parsed.Month() != time.September || parsed.Day() != 1 {
		t.Fatalf("unexpected date %v", parsed)
	}

	if _, err := ParseDate("09/01/2024"); err == nil {
		t.Fatal("expected error for wrong layout")
	}
	if _, err := ParseDate(""); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	day := time.Date(2024, time.September, 1, 15, 30, 0, 0, time.UTC)

	if got := FormatDate(day); got != "2024-09-01" {
		t.Fatalf("unexpected date format %q", got)
	}
	if got := FormatCompactDate(day); got != "20240901" {
		t.Fatalf("unexpected compact format %q", got)
	}

	parsed, err := ParseDate(FormatDate(day))
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if FormatCompactDate(parsed) != "20240901" {
		t.Fatalf("round trip changed the date: %v", parsed)
	}
}
