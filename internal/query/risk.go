package query

import (
	"sort"
)

// GhostFieldRow is one row of the risk table: a field referenced in content
// but missing from the catalog.
type GhostFieldRow struct {
	Field          string `json:"field"`
	Occurrences    int    `json:"occurrences"`
	AffectedAssets int    `json:"affectedAssets"`
}

// GhostFields tabulates in-scope, risk-flagged references per field:
// occurrence count and distinct affected-asset count, descending by
// occurrences. The known false positive is excluded unconditionally.
func (e *Engine) GhostFields(ids map[string]bool) []GhostFieldRow {
	occurrences := newOrderedCounter()
	assets := make(map[string]map[string]struct{})

	for _, j := range e.session.Joined {
		if !inScope(j, ids) || !j.IsRisk || j.FieldName == locationGUIDField {
			continue
		}
		occurrences.add(j.FieldName)
		if assets[j.FieldName] == nil {
			assets[j.FieldName] = make(map[string]struct{})
		}
		assets[j.FieldName][j.AssetID] = struct{}{}
	}

	rows := make([]GhostFieldRow, 0, len(occurrences.order))
	for _, field := range occurrences.order {
		rows = append(rows, GhostFieldRow{
			Field:          field,
			Occurrences:    occurrences.counts[field],
			AffectedAssets: len(assets[field]),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Occurrences > rows[j].Occurrences
	})
	return rows
}
