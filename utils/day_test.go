package utils

import (
	"testing"
	"time"
)

func TestDayBounds(t *testing.T) {
	start, end, err := DayBounds("2024-03-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStart := time.Date(2024, 2, 29, 15, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Fatalf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Fatalf("end = %v, want %v", end, wantEnd)
	}

	// Last second of the KST day is inside the half-open window.
	lastSecond := time.Date(2024, 3, 1, 23, 59, 59, 0, KST)
	if lastSecond.Before(start) || !lastSecond.Before(end) {
		t.Fatalf("23:59:59 KST should be inside the day window")
	}

	// First second of the next KST day is outside.
	nextDay := time.Date(2024, 3, 2, 0, 0, 1, 0, KST)
	if nextDay.Before(end) {
		t.Fatalf("00:00:01 KST next day should be outside the day window")
	}
}

func TestDayBoundsInvalid(t *testing.T) {
	if _, _, err := DayBounds("01-03-2024"); err == nil {
		t.Fatalf("expected error for malformed day")
	}
	if ValidDay("2024-13-40") {
		t.Fatalf("expected invalid day to be rejected")
	}
	if !ValidDay("2024-03-01") {
		t.Fatalf("expected valid day to be accepted")
	}
}

func TestYesterdayTodayKST(t *testing.T) {
	// 2024-03-01T18:00:00Z is already 2024-03-02 03:00 in KST.
	now := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)

	if got := TodayKST(now); got != "2024-03-02" {
		t.Fatalf("TodayKST = %s, want 2024-03-02", got)
	}
	if got := YesterdayKST(now); got != "2024-03-01" {
		t.Fatalf("YesterdayKST = %s, want 2024-03-01", got)
	}
}

func TestMonthBounds(t *testing.T) {
	start, end, err := MonthBounds("2024-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := end.Sub(start); got != 29*24*time.Hour {
		t.Fatalf("february 2024 window = %v, want %v", got, 29*24*time.Hour)
	}
	if _, _, err := MonthBounds("2024/02"); err == nil {
		t.Fatalf("expected error for malformed month")
	}
}
