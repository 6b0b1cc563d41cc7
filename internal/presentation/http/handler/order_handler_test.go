package handler

import (
	"testing"
	"time"
)

func TestOrderDateWindowEndDateInclusive(t *testing.T) {
	start, end := orderDateWindow("2026-08-01", "2026-08-15", "")

	if start == nil || !start.Equal(time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start: got %v", start)
	}
	// The repository filters with order_date < end, so the bound must be
	// midnight after the named end date for that day's orders to match.
	if end == nil || !end.Equal(time.Date(2026, time.August, 16, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("end: got %v", end)
	}

	evening := time.Date(2026, time.August, 15, 21, 30, 0, 0, time.UTC)
	if !evening.Before(*end) {
		t.Error("an order placed on the end date falls outside the window")
	}
}

func TestOrderDateWindowDay(t *testing.T) {
	start, end := orderDateWindow("", "", "2026-08-15")

	if start == nil || !start.Equal(time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start: got %v", start)
	}
	if end == nil || !end.Equal(time.Date(2026, time.August, 16, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("end: got %v", end)
	}
}

func TestOrderDateWindowDayWinsOverRange(t *testing.T) {
	start, end := orderDateWindow("2026-01-01", "2026-12-31", "2026-08-15")

	if start == nil || start.Day() != 15 || end == nil || end.Day() != 16 {
		t.Errorf("day filter should override the range: start=%v end=%v", start, end)
	}
}

func TestOrderDateWindowEmpty(t *testing.T) {
	start, end := orderDateWindow("", "", "")
	if start != nil || end != nil {
		t.Errorf("expected open window, got start=%v end=%v", start, end)
	}
}

func TestOrderDateWindowIgnoresMalformedDates(t *testing.T) {
	start, end := orderDateWindow("not-a-date", "2026/08/15", "")
	if start != nil || end != nil {
		t.Errorf("malformed dates should be ignored, got start=%v end=%v", start, end)
	}
}
