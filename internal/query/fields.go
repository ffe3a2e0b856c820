package query

import (
	"sort"

	"govlens/internal/model"
)

// FieldCount is one row of the ranked field-usage table.
type FieldCount struct {
	FieldName  string `json:"fieldName"`
	References int    `json:"references"`
}

// fieldCounts tallies in-scope, non-risk references per field in first-seen
// order.
func (e *Engine) fieldCounts(ids map[string]bool) *orderedCounter {
	counter := newOrderedCounter()
	for _, j := range e.session.Joined {
		if !inScope(j, ids) || j.IsRisk {
			continue
		}
		counter.add(j.FieldName)
	}
	return counter
}

// TopFields returns the n most-referenced fields among in-scope, non-risk
// references, descending by count with first-seen ties. n <= 0 applies the
// configured default.
func (e *Engine) TopFields(ids map[string]bool, n int) []FieldCount {
	if n <= 0 {
		n = e.limits.TopFieldLimit
	}

	counter := e.fieldCounts(ids)
	rows := make([]FieldCount, 0, len(counter.order))
	for _, field := range counter.order {
		rows = append(rows, FieldCount{FieldName: field, References: counter.counts[field]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].References > rows[j].References
	})

	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// CrossTab is the field × asset-type usage matrix. Counts[i][j] is the
// reference count for Fields[i] under Types[j].
type CrossTab struct {
	Fields []string `json:"fields"`
	Types  []string `json:"types"`
	Counts [][]int  `json:"counts"`
}

// CrossTab cross-tabulates in-scope, non-risk references by field and asset
// type, restricted to the top fields by total count across all types. The
// matrix columns are the two canonical asset types; totals still include
// references whose asset type is neither.
func (e *Engine) CrossTab(ids map[string]bool) CrossTab {
	limit := e.limits.CrossTabFieldLimit
	if limit <= 0 {
		limit = 20
	}

	cells := make(map[string]map[string]int)
	totals := newOrderedCounter()
	for _, j := range e.session.Joined {
		if !inScope(j, ids) || j.IsRisk {
			continue
		}
		assetType := j.AssetType
		if assetType == "" {
			assetType = model.AssetTypeUnknown
		}
		if cells[j.FieldName] == nil {
			cells[j.FieldName] = make(map[string]int)
		}
		cells[j.FieldName][assetType]++
		totals.add(j.FieldName)
	}

	fields := make([]string, len(totals.order))
	copy(fields, totals.order)
	sort.SliceStable(fields, func(i, j int) bool {
		return totals.counts[fields[i]] > totals.counts[fields[j]]
	})
	if len(fields) > limit {
		fields = fields[:limit]
	}

	types := []string{model.AssetTypeCampaign, model.AssetTypeCanvas}
	counts := make([][]int, len(fields))
	for i, field := range fields {
		counts[i] = make([]int, len(types))
		for j, t := range types {
			counts[i][j] = cells[field][t]
		}
	}

	return CrossTab{Fields: fields, Types: types, Counts: counts}
}

// ImpactRow reports how many distinct assets of each type reference a field.
type ImpactRow struct {
	Field     string `json:"field"`
	Campaigns int    `json:"campaigns"`
	Canvases  int    `json:"canvases"`
	Total     int    `json:"total"`
}

// FieldImpact computes per-field distinct asset counts (not reference
// counts) for campaigns and canvases, descending by total, capped at the
// configured row limit.
func (e *Engine) FieldImpact(ids map[string]bool) []ImpactRow {
	limit := e.limits.ImpactRowLimit
	if limit <= 0 {
		limit = 50
	}

	type assetSets struct {
		campaigns map[string]struct{}
		canvases  map[string]struct{}
	}
	agg := make(map[string]*assetSets)
	var order []string

	for _, j := range e.session.Joined {
		if !inScope(j, ids) || j.IsRisk {
			continue
		}
		if j.AssetType != model.AssetTypeCampaign && j.AssetType != model.AssetTypeCanvas {
			continue
		}

		sets := agg[j.FieldName]
		if sets == nil {
			sets = &assetSets{
				campaigns: make(map[string]struct{}),
				canvases:  make(map[string]struct{}),
			}
			agg[j.FieldName] = sets
			order = append(order, j.FieldName)
		}
		if j.AssetType == model.AssetTypeCampaign {
			sets.campaigns[j.AssetID] = struct{}{}
		} else {
			sets.canvases[j.AssetID] = struct{}{}
		}
	}

	rows := make([]ImpactRow, 0, len(order))
	for _, field := range order {
		sets := agg[field]
		c := len(sets.campaigns)
		n := len(sets.canvases)
		rows = append(rows, ImpactRow{
			Field:     field,
			Campaigns: c,
			Canvases:  n,
			Total:     c + n,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total > rows[j].Total
	})

	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
