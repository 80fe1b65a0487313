package utils

import "time"

// Every "day" computation in this codebase goes through this file.
// Emotion logs are keyed by the user's calendar day in Korea Standard
// Time regardless of server locale; timestamps in storage stay UTC.

// KST is a fixed +09:00 offset. Korea has no DST, so a fixed zone is exact.
var KST = time.FixedZone("Asia/Seoul", 9*60*60)

const DayFormat = "2006-01-02"

// TodayKST returns the current calendar day in KST.
func TodayKST(now time.Time) string {
	return now.In(KST).Format(DayFormat)
}

// YesterdayKST returns the previous calendar day in KST.
func YesterdayKST(now time.Time) string {
	return now.In(KST).AddDate(0, 0, -1).Format(DayFormat)
}

// DayBounds returns the half-open UTC interval [start, end) covering the
// given KST calendar day.
func DayBounds(day string) (start, end time.Time, err error) {
	t, err := time.ParseInLocation(DayFormat, day, KST)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start = t.UTC()
	end = t.AddDate(0, 0, 1).UTC()
	return start, end, nil
}

// ValidDay reports whether s is a well-formed calendar day string.
func ValidDay(s string) bool {
	_, err := time.ParseInLocation(DayFormat, s, KST)
	return err == nil
}

// MonthBounds returns the half-open UTC interval covering the given KST
// month ("2006-01").
func MonthBounds(month string) (start, end time.Time, err error) {
	t, err := time.ParseInLocation("2006-01", month, KST)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return t.UTC(), t.AddDate(0, 1, 0).UTC(), nil
}
