package streak

import (
	"testing"
	"time"
)

// utc is a shorthand for building UTC timestamps in tests.
func utc(y int, m time.Month, d, hh int) time.Time {
	return time.Date(y, m, d, hh, 0, 0, 0, time.UTC)
}

func TestDateOnly_DropsTimeAndConvertsZone(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	// 02:30 on Jan 7 in UTC+5 is still Jan 6 in UTC.
	in := time.Date(2025, time.January, 7, 2, 30, 0, 0, loc)
	got := DateOnly(in)
	want := utc(2025, time.January, 6, 0)
	if !got.Equal(want) {
		t.Fatalf("DateOnly(%v) = %v; want %v", in, got, want)
	}
}

func TestSameDay(t *testing.T) {
	cases := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"same day different hours", utc(2025, time.March, 3, 1), utc(2025, time.March, 3, 23), true},
		{"adjacent days", utc(2025, time.March, 3, 23), utc(2025, time.March, 4, 0), false},
		{"same date different years", utc(2024, time.March, 3, 12), utc(2025, time.March, 3, 12), false},
	}
	for _, tc := range cases {
		if got := SameDay(tc.a, tc.b); got != tc.want {
			t.Errorf("%s: SameDay = %v; want %v", tc.name, got, tc.want)
		}
	}
}

func TestPreviousDay(t *testing.T) {
	got := PreviousDay(utc(2025, time.March, 1, 15))
	want := utc(2025, time.February, 28, 0)
	if !got.Equal(want) {
		t.Fatalf("PreviousDay = %v; want %v", got, want)
	}
}

func TestWeekRange_SundayStart(t *testing.T) {
	// 2025-01-08 is a Wednesday; its week runs Sun Jan 5 .. Sat Jan 11.
	start, end := WeekRange(utc(2025, time.January, 8, 17))
	if !start.Equal(utc(2025, time.January, 5, 0)) {
		t.Fatalf("week start = %v; want Sun Jan 5", start)
	}
	if !end.Equal(utc(2025, time.January, 11, 0)) {
		t.Fatalf("week end = %v; want Sat Jan 11", end)
	}

	// A Sunday is its own week start.
	start, _ = WeekRange(utc(2025, time.January, 5, 9))
	if !start.Equal(utc(2025, time.January, 5, 0)) {
		t.Fatalf("week start of a Sunday = %v; want the same Sunday", start)
	}
}
