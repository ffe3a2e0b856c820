package query

import (
	"sort"

	"govlens/internal/model"
)

// ParetoPoint is one rank of the cumulative usage series.
type ParetoPoint struct {
	Rank              int     `json:"rank"`
	FieldName         string  `json:"fieldName"`
	References        int     `json:"references"`
	CumulativePercent float64 `json:"cumulativePercent"`
}

// Pareto ranks every field by descending reference count and computes the
// cumulative percentage of total references through each rank. The series is
// non-decreasing and ends at 100 when any references exist.
func (e *Engine) Pareto(ids map[string]bool) []ParetoPoint {
	counter := e.fieldCounts(ids)
	fields := make([]string, len(counter.order))
	copy(fields, counter.order)
	sort.SliceStable(fields, func(i, j int) bool {
		return counter.counts[fields[i]] > counter.counts[fields[j]]
	})

	total := 0
	for _, f := range fields {
		total += counter.counts[f]
	}

	points := make([]ParetoPoint, 0, len(fields))
	cum := 0
	for i, f := range fields {
		cum += counter.counts[f]
		pct := 0.0
		if total > 0 {
			pct = float64(cum) / float64(total) * 100
		}
		points = append(points, ParetoPoint{
			Rank:              i + 1,
			FieldName:         f,
			References:        counter.counts[f],
			CumulativePercent: pct,
		})
	}
	return points
}

// ParetoCrossRank returns the first rank whose cumulative percentage
// reaches the threshold, or 0 when the series never does (empty input).
func ParetoCrossRank(points []ParetoPoint, threshold float64) int {
	for _, p := range points {
		if p.CumulativePercent >= threshold {
			return p.Rank
		}
	}
	return 0
}

// Timeline buckets in-scope asset activity by calendar month and asset
// type. Months are the sorted union of every month with any activity;
// Campaign and Canvas get one count per month.
type Timeline struct {
	Months   []string `json:"months"`
	Campaign []int    `json:"campaign"`
	Canvas   []int    `json:"canvas"`
}

const monthKeyLayout = "2006-01"

// Timeline computes the monthly activity series over in-scope assets with a
// known last activity.
func (e *Engine) Timeline(ids map[string]bool) Timeline {
	byMonthType := make(map[string]map[string]int)
	monthSet := make(map[string]struct{})

	for _, a := range e.session.Assets {
		if !ids[a.AssetID] || a.LastActive == nil {
			continue
		}
		month := a.LastActive.Format(monthKeyLayout)
		assetType := a.AssetType
		if assetType == "" {
			assetType = model.AssetTypeUnknown
		}

		if byMonthType[month] == nil {
			byMonthType[month] = make(map[string]int)
		}
		byMonthType[month][assetType]++
		monthSet[month] = struct{}{}
	}

	months := make([]string, 0, len(monthSet))
	for m := range monthSet {
		months = append(months, m)
	}
	sort.Strings(months)

	campaign := make([]int, len(months))
	canvas := make([]int, len(months))
	for i, m := range months {
		campaign[i] = byMonthType[m][model.AssetTypeCampaign]
		canvas[i] = byMonthType[m][model.AssetTypeCanvas]
	}

	return Timeline{Months: months, Campaign: campaign, Canvas: canvas}
}
