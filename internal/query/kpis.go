package query

import (
	"govlens/internal/model"
)

// KPIs are the headline counters shown for every page and period.
type KPIs struct {
	Campaigns     int     `json:"campaigns"`
	Canvases      int     `json:"canvases"`
	Saturation    float64 `json:"saturationPercent"`
	CatalogFields int     `json:"catalogFieldCount"`
}

// KPIs counts in-scope campaigns and canvases and computes catalog
// saturation over in-scope, non-risk references.
func (e *Engine) KPIs(ids map[string]bool) KPIs {
	campaigns := 0
	canvases := 0
	for _, a := range e.session.Assets {
		if !ids[a.AssetID] {
			continue
		}
		switch a.AssetType {
		case model.AssetTypeCampaign:
			campaigns++
		case model.AssetTypeCanvas:
			canvases++
		}
	}

	saturation, _ := e.saturation(ids)

	return KPIs{
		Campaigns:     campaigns,
		Canvases:      canvases,
		Saturation:    saturation,
		CatalogFields: len(e.session.Catalog),
	}
}

// saturation returns the percentage of catalog fields referenced by
// in-scope, non-risk references, and the distinct used-field count. Defined
// as 0 when the catalog is empty.
func (e *Engine) saturation(ids map[string]bool) (float64, int) {
	used := make(map[string]struct{})
	for _, j := range e.session.Joined {
		if !inScope(j, ids) || j.IsRisk {
			continue
		}
		used[j.FieldName] = struct{}{}
	}

	total := len(e.session.Catalog)
	if total == 0 {
		return 0, len(used)
	}
	return float64(len(used)) / float64(total) * 100, len(used)
}
