package ingest

import (
	"encoding/json"

	"govlens/internal/model"
)

// CatalogFromRows maps catalog schema rows to typed records.
func CatalogFromRows(rows []Row) []model.CatalogField {
	out := make([]model.CatalogField, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.CatalogField{
			FieldName: r["field_name"],
			FieldType: r["field_type"],
			IsCustom:  model.ParseBool(r["is_custom"]),
			LastSeen:  r["last_seen"],
		})
	}
	return out
}

// AssetsFromRows maps asset inventory rows to typed records. Unparsable
// activity timestamps become nil, which excludes the asset from every
// bounded period.
func AssetsFromRows(rows []Row) []model.Asset {
	out := make([]model.Asset, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.Asset{
			AssetID:    r["asset_id"],
			AssetName:  r["asset_name"],
			AssetType:  r["asset_type"],
			Subtype:    r["subtype"],
			Status:     r["status"],
			LastEdited: model.ParseDate(r["last_edited"]),
			LastActive: model.ParseDate(r["last_active"]),
			Tags:       r["tags"],
		})
	}
	return out
}

// ReferencesFromRows maps raw field reference rows to typed records. IsRisk
// stays unparsed; the denormalizer normalizes it.
func ReferencesFromRows(rows []Row) []model.FieldReference {
	out := make([]model.FieldReference, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.FieldReference{
			RefID:          r["ref_id"],
			BlockID:        r["block_id"],
			FieldName:      r["field_name"],
			MatchType:      r["match_type"],
			ContextSnippet: r["context_snippet"],
			IsRisk:         r["is_risk"],
		})
	}
	return out
}

// DependenciesFromRows maps dependency rows to typed records.
func DependenciesFromRows(rows []Row) []model.Dependency {
	out := make([]model.Dependency, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.Dependency{
			SourceAssetID:  r["source_asset_id"],
			TargetAssetID:  r["target_asset_id"],
			DependencyType: r["dependency_type"],
		})
	}
	return out
}

// refreshMetaKeys lists the accepted spellings of the refresh timestamp, in
// lookup order.
var refreshMetaKeys = []string{
	"refreshed_at_utc",
	"refreshedAtUtc",
	"refreshed_at",
	"refreshedAt",
}

// RefreshTimestamp extracts the ISO refresh timestamp from the metadata
// document. Missing or unparsable metadata yields an empty string; it never
// fails.
func RefreshTimestamp(data []byte) string {
	var meta map[string]interface{}
	if err := json.Unmarshal(data, &meta); err != nil {
		return ""
	}
	for _, key := range refreshMetaKeys {
		if v, ok := meta[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
