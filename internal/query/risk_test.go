package query

import (
	"reflect"
	"testing"

	"govlens/internal/config"
	"govlens/internal/model"
	"govlens/internal/session"
)

func TestGhostFields(t *testing.T) {
	e := fixtureEngine()
	ids := allTimeScope(t, e)

	rows := e.GhostFields(ids)
	want := []GhostFieldRow{
		{Field: "ghost_field", Occurrences: 2, AffectedAssets: 1},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("GhostFields = %v, want %v", rows, want)
	}
}

func TestGhostFieldsExcludesFalsePositive(t *testing.T) {
	e := fixtureEngine()

	for _, row := range e.GhostFields(allTimeScope(t, e)) {
		if row.Field == "location_guid" {
			t.Error("location_guid must never appear in the ghost table")
		}
	}
}

func TestGhostFieldsSortedByOccurrences(t *testing.T) {
	refs := []model.FieldReference{
		{RefID: "r1", BlockID: "b1", FieldName: "minor_ghost", IsRisk: "true"},
		{RefID: "r2", BlockID: "b1", FieldName: "major_ghost", IsRisk: "true"},
		{RefID: "r3", BlockID: "b2", FieldName: "major_ghost", IsRisk: "true"},
		{RefID: "r4", BlockID: "b2", FieldName: "major_ghost", IsRisk: "true"},
	}
	index := map[string]string{"b1": "a1", "b2": "a2"}
	assets := map[string]model.Asset{
		"a1": {AssetID: "a1", AssetType: model.AssetTypeCampaign, LastActive: dateAt("2026-03-10")},
		"a2": {AssetID: "a2", AssetType: model.AssetTypeCanvas, LastActive: dateAt("2026-03-10")},
	}
	s := &session.Session{
		ID:        "ghosts",
		Assets:    []model.Asset{assets["a1"], assets["a2"]},
		AssetByID: assets,
		Joined:    session.Denormalize(refs, index, assets),
	}
	e := NewEngineAt(s, testLogger(), config.DefaultConfig().Analytics, testNow)

	rows := e.GhostFields(allTimeScope(t, e))
	want := []GhostFieldRow{
		{Field: "major_ghost", Occurrences: 3, AffectedAssets: 2},
		{Field: "minor_ghost", Occurrences: 1, AffectedAssets: 1},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("GhostFields = %v, want %v", rows, want)
	}
}
