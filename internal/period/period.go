// Package period resolves named activity periods to concrete date intervals.
// Every interval is day-truncated and inclusive on both ends; "All Time"
// resolves to no interval at all.
package period

import (
	"time"

	goverrors "govlens/internal/errors"
	"govlens/internal/model"
)

// Period labels accepted by Resolve, in display order.
const (
	CurrentWeek   = "Current Week (Mon-Today)"
	LastWeek      = "Last Week (Mon-Sun)"
	Last30Days    = "Last 30 Days"
	Last60Days    = "Last 60 Days"
	Last90Days    = "Last 90 Days"
	Last180Days   = "Last 180 Days"
	YearToDate    = "Year to Date (YTD)"
	Last12Months  = "Last 12 Months"
	AllTime       = "All Time"
)

// Labels lists every valid period label in display order.
var Labels = []string{
	CurrentWeek,
	LastWeek,
	Last30Days,
	Last60Days,
	Last90Days,
	Last180Days,
	YearToDate,
	Last12Months,
	AllTime,
}

// Range is a closed date interval. Start and End are day-truncated and both
// inclusive.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether the day-truncated instant falls inside the range.
func (r *Range) Contains(t time.Time) bool {
	d := model.DayStart(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Resolve maps a period label to its date interval relative to now. A nil
// range with nil error means the period is unbounded (All Time).
func Resolve(label string, now time.Time) (*Range, error) {
	today := model.DayStart(now)
	// Monday=0 ... Sunday=6
	weekday := (int(today.Weekday()) + 6) % 7
	thisMonday := today.AddDate(0, 0, -weekday)

	switch label {
	case CurrentWeek:
		return &Range{Start: thisMonday, End: today}, nil
	case LastWeek:
		return &Range{Start: thisMonday.AddDate(0, 0, -7), End: thisMonday.AddDate(0, 0, -1)}, nil
	case Last30Days:
		return lastNDays(today, 30), nil
	case Last60Days:
		return lastNDays(today, 60), nil
	case Last90Days:
		return lastNDays(today, 90), nil
	case Last180Days:
		return lastNDays(today, 180), nil
	case YearToDate:
		jan1 := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		return &Range{Start: jan1, End: today}, nil
	case Last12Months:
		return &Range{Start: today.AddDate(-1, 0, 0).AddDate(0, 0, 1), End: today}, nil
	case AllTime:
		return nil, nil
	}

	return nil, goverrors.NewGovError(goverrors.PeriodInvalid,
		"unknown activity period: "+label, nil, goverrors.GetSuggestedFixes(goverrors.PeriodInvalid))
}

// lastNDays spans N calendar days counting today itself.
func lastNDays(today time.Time, n int) *Range {
	return &Range{Start: today.AddDate(0, 0, -(n - 1)), End: today}
}

// Caption renders the human caption shown next to a selected period.
func Caption(r *Range) string {
	if r == nil {
		return "All time"
	}
	return model.FormatYMD(r.Start) + " - " + model.FormatYMD(r.End)
}

// Valid reports whether label is one of the accepted period labels.
func Valid(label string) bool {
	for _, l := range Labels {
		if l == label {
			return true
		}
	}
	return false
}
