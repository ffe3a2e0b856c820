package ingest

import (
	"testing"
)

func TestCatalogFromRows(t *testing.T) {
	rows := []Row{
		{"field_name": "email", "field_type": "string", "is_custom": "false", "last_seen": "2026-03-01"},
		{"field_name": "loyalty_tier", "field_type": "string", "is_custom": "TRUE"},
	}

	fields := CatalogFromRows(rows)
	if len(fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(fields))
	}
	if fields[0].FieldName != "email" || fields[0].IsCustom {
		t.Errorf("unexpected first field: %+v", fields[0])
	}
	if !fields[1].IsCustom {
		t.Error("is_custom=TRUE should parse as true")
	}
}

func TestAssetsFromRows(t *testing.T) {
	rows := []Row{
		{"asset_id": "a1", "asset_name": "Welcome", "asset_type": "Campaign", "last_active": "2026-03-10T08:00:00Z"},
		{"asset_id": "a2", "asset_name": "Broken", "asset_type": "Canvas", "last_active": "never"},
	}

	assets := AssetsFromRows(rows)
	if len(assets) != 2 {
		t.Fatalf("got %d assets, want 2", len(assets))
	}
	if assets[0].LastActive == nil {
		t.Error("valid last_active should parse")
	}
	if assets[1].LastActive != nil {
		t.Error("unparsable last_active should become nil")
	}
}

func TestReferencesFromRowsKeepsRawRisk(t *testing.T) {
	rows := []Row{
		{"ref_id": "r1", "block_id": "b1", "field_name": "email", "is_risk": "Yes"},
	}

	refs := ReferencesFromRows(rows)
	if len(refs) != 1 {
		t.Fatalf("got %d refs, want 1", len(refs))
	}
	if refs[0].IsRisk != "Yes" {
		t.Errorf("IsRisk = %q, want raw value preserved", refs[0].IsRisk)
	}
}

func TestRefreshTimestampKeyOrder(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{"snake_utc", `{"refreshed_at_utc":"2026-03-11T04:00:00Z"}`, "2026-03-11T04:00:00Z"},
		{"camel_utc", `{"refreshedAtUtc":"2026-03-11T04:00:00Z"}`, "2026-03-11T04:00:00Z"},
		{"snake", `{"refreshed_at":"2026-03-11T04:00:00Z"}`, "2026-03-11T04:00:00Z"},
		{"camel", `{"refreshedAt":"2026-03-11T04:00:00Z"}`, "2026-03-11T04:00:00Z"},
		{"prefers_first_key", `{"refreshedAt":"later","refreshed_at_utc":"first"}`, "first"},
		{"missing", `{"other":"x"}`, ""},
		{"non_string", `{"refreshed_at_utc":12345}`, ""},
		{"invalid_json", `{not json`, ""},
	}

	for _, c := range cases {
		if got := RefreshTimestamp([]byte(c.data)); got != c.want {
			t.Errorf("%s: RefreshTimestamp = %q, want %q", c.name, got, c.want)
		}
	}
}
