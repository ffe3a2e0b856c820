package period

import (
	"errors"
	"testing"
	"time"

	goverrors "govlens/internal/errors"
)

// Wednesday afternoon; Monday of this week is March 9.
var now = time.Date(2026, 3, 11, 15, 30, 45, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveCurrentWeek(t *testing.T) {
	r, err := Resolve(CurrentWeek, now)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !r.Start.Equal(day(2026, 3, 9)) || !r.End.Equal(day(2026, 3, 11)) {
		t.Errorf("CurrentWeek = [%v, %v], want [2026-03-09, 2026-03-11]", r.Start, r.End)
	}
}

func TestResolveCurrentWeekOnMonday(t *testing.T) {
	monday := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	r, err := Resolve(CurrentWeek, monday)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !r.Start.Equal(day(2026, 3, 9)) || !r.End.Equal(day(2026, 3, 9)) {
		t.Errorf("CurrentWeek on a Monday = [%v, %v], want single day", r.Start, r.End)
	}
}

func TestResolveLastWeek(t *testing.T) {
	r, err := Resolve(LastWeek, now)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !r.Start.Equal(day(2026, 3, 2)) || !r.End.Equal(day(2026, 3, 8)) {
		t.Errorf("LastWeek = [%v, %v], want [2026-03-02, 2026-03-08]", r.Start, r.End)
	}
}

func TestResolveLastNDays(t *testing.T) {
	cases := []struct {
		label string
		start time.Time
	}{
		{Last30Days, day(2026, 2, 10)},
		{Last60Days, day(2026, 1, 11)},
		{Last90Days, day(2025, 12, 12)},
		{Last180Days, day(2025, 9, 13)},
	}
	for _, c := range cases {
		r, err := Resolve(c.label, now)
		if err != nil {
			t.Fatalf("Resolve(%s) failed: %v", c.label, err)
		}
		if !r.Start.Equal(c.start) {
			t.Errorf("%s start = %v, want %v", c.label, r.Start, c.start)
		}
		if !r.End.Equal(day(2026, 3, 11)) {
			t.Errorf("%s end = %v, want today", c.label, r.End)
		}
	}
}

func TestResolveYearToDate(t *testing.T) {
	r, err := Resolve(YearToDate, now)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !r.Start.Equal(day(2026, 1, 1)) || !r.End.Equal(day(2026, 3, 11)) {
		t.Errorf("YTD = [%v, %v], want [2026-01-01, 2026-03-11]", r.Start, r.End)
	}
}

func TestResolveLast12Months(t *testing.T) {
	r, err := Resolve(Last12Months, now)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !r.Start.Equal(day(2025, 3, 12)) || !r.End.Equal(day(2026, 3, 11)) {
		t.Errorf("Last12Months = [%v, %v], want [2025-03-12, 2026-03-11]", r.Start, r.End)
	}
}

func TestResolveAllTimeIsUnbounded(t *testing.T) {
	r, err := Resolve(AllTime, now)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if r != nil {
		t.Errorf("AllTime = %v, want nil range", r)
	}
}

func TestResolveUnknownLabel(t *testing.T) {
	_, err := Resolve("Fortnight", now)
	if err == nil {
		t.Fatal("expected error for unknown label")
	}
	var govErr *goverrors.GovError
	if !errors.As(err, &govErr) || govErr.Code != goverrors.PeriodInvalid {
		t.Errorf("expected PERIOD_INVALID, got %v", err)
	}
}

func TestRangeContainsIsInclusive(t *testing.T) {
	r := &Range{Start: day(2026, 3, 2), End: day(2026, 3, 8)}

	if !r.Contains(time.Date(2026, 3, 2, 0, 0, 1, 0, time.UTC)) {
		t.Error("start day should be in range")
	}
	if !r.Contains(time.Date(2026, 3, 8, 23, 59, 59, 0, time.UTC)) {
		t.Error("end day should be in range regardless of time of day")
	}
	if r.Contains(day(2026, 3, 1)) || r.Contains(day(2026, 3, 9)) {
		t.Error("days outside the interval should not be in range")
	}
}

func TestCaption(t *testing.T) {
	if got := Caption(nil); got != "All time" {
		t.Errorf("Caption(nil) = %q, want All time", got)
	}
	r := &Range{Start: day(2026, 3, 2), End: day(2026, 3, 8)}
	if got := Caption(r); got != "2026/03/02 - 2026/03/08" {
		t.Errorf("Caption = %q", got)
	}
}

func TestValid(t *testing.T) {
	for _, label := range Labels {
		if !Valid(label) {
			t.Errorf("Valid(%q) = false", label)
		}
	}
	if Valid("All Time Ever") {
		t.Error("Valid should reject unknown labels")
	}
}
