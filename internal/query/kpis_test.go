package query

import (
	"testing"

	"govlens/internal/period"
)

func TestKPIsAllTime(t *testing.T) {
	e := fixtureEngine()
	ids := allTimeScope(t, e)

	kpis := e.KPIs(ids)
	if kpis.Campaigns != 2 {
		t.Errorf("Campaigns = %d, want 2", kpis.Campaigns)
	}
	if kpis.Canvases != 1 {
		t.Errorf("Canvases = %d, want 1", kpis.Canvases)
	}
	// Three of ten catalog fields used by non-risk references.
	if kpis.Saturation != 30.0 {
		t.Errorf("Saturation = %v, want 30.0", kpis.Saturation)
	}
	if kpis.CatalogFields != 10 {
		t.Errorf("CatalogFields = %d, want 10", kpis.CatalogFields)
	}
}

func TestKPIsCurrentWeek(t *testing.T) {
	e := fixtureEngine()
	ids, _, err := e.InScopeAssetIDs(period.CurrentWeek)
	if err != nil {
		t.Fatalf("InScopeAssetIDs failed: %v", err)
	}

	kpis := e.KPIs(ids)
	if kpis.Campaigns != 1 || kpis.Canvases != 0 {
		t.Errorf("counts = %d/%d, want 1 campaign and 0 canvases", kpis.Campaigns, kpis.Canvases)
	}
	// Only the email field is used inside the week.
	if kpis.Saturation != 10.0 {
		t.Errorf("Saturation = %v, want 10.0", kpis.Saturation)
	}
	// Catalog size is period independent.
	if kpis.CatalogFields != 10 {
		t.Errorf("CatalogFields = %d, want 10", kpis.CatalogFields)
	}
}

func TestKPIsEmptyScope(t *testing.T) {
	e := fixtureEngine()

	kpis := e.KPIs(map[string]bool{})
	if kpis.Campaigns != 0 || kpis.Canvases != 0 || kpis.Saturation != 0 {
		t.Errorf("empty scope KPIs = %+v", kpis)
	}
}

func TestSaturationIgnoresRiskAndUnresolved(t *testing.T) {
	e := fixtureEngine()
	ids := allTimeScope(t, e)

	_, used := e.saturation(ids)
	// email, loyalty_tier, city. Ghost references are risk-flagged and the
	// first_name reference is unresolved; neither may count as usage.
	if used != 3 {
		t.Errorf("used fields = %d, want 3", used)
	}
}
