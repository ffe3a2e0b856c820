// Package model defines the record types loaded from the governance tables
// and the parsing helpers shared by the ingestion pipeline.
package model

import (
	"strings"
	"time"
)

// Asset type values recognized by the aggregators.
const (
	AssetTypeCampaign = "Campaign"
	AssetTypeCanvas   = "Canvas"
	AssetTypeUnknown  = "Unknown"
)

// CatalogField is one row of the catalog schema table.
type CatalogField struct {
	FieldName string `json:"fieldName"`
	FieldType string `json:"fieldType"`
	IsCustom  bool   `json:"isCustom"`
	LastSeen  string `json:"lastSeen,omitempty"`
}

// Asset is one row of the asset inventory table.
type Asset struct {
	AssetID    string     `json:"assetId"`
	AssetName  string     `json:"assetName"`
	AssetType  string     `json:"assetType"`
	Subtype    string     `json:"subtype,omitempty"`
	Status     string     `json:"status,omitempty"`
	LastEdited *time.Time `json:"lastEdited,omitempty"`
	LastActive *time.Time `json:"lastActive,omitempty"`
	Tags       string     `json:"tags,omitempty"`
}

// FieldReference is one raw row of the field reference table. IsRisk stays a
// string here; the denormalizer owns the tolerant boolean parse.
type FieldReference struct {
	RefID          string `json:"refId"`
	BlockID        string `json:"blockId"`
	FieldName      string `json:"fieldName"`
	MatchType      string `json:"matchType,omitempty"`
	ContextSnippet string `json:"contextSnippet,omitempty"`
	IsRisk         string `json:"isRisk,omitempty"`
}

// JoinedReference is a FieldReference resolved against the block index and
// the asset table. AssetID is empty when the block has no index entry; such
// rows are excluded from every period-filtered computation downstream.
type JoinedReference struct {
	RefID          string `json:"refId"`
	BlockID        string `json:"blockId"`
	FieldName      string `json:"fieldName"`
	MatchType      string `json:"matchType,omitempty"`
	ContextSnippet string `json:"contextSnippet,omitempty"`
	IsRisk         bool   `json:"isRisk"`
	AssetID        string `json:"assetId,omitempty"`
	AssetType      string `json:"assetType,omitempty"`
	AssetName      string `json:"assetName,omitempty"`
}

// Dependency is one row of the dependency table. Loaded and stored for the
// reporting surface; no aggregator consumes it yet.
type Dependency struct {
	SourceAssetID  string `json:"sourceAssetId"`
	TargetAssetID  string `json:"targetAssetId"`
	DependencyType string `json:"dependencyType"`
}

// ParseBool interprets the loose boolean encodings that appear in the source
// tables: "true", "1" and "yes" (case-insensitive) are true, everything else
// is false.
func ParseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// dateLayouts lists the timestamp encodings accepted across the tables, in
// the order they are tried.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// ParseDate parses a table timestamp, returning nil for empty or unparsable
// values. Unparsable dates are tolerated noise, never an error.
func ParseDate(v string) *time.Time {
	s := strings.TrimSpace(v)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// DayStart truncates a timestamp to the start of its calendar day.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatYMD renders a date as YYYY/MM/DD for period captions.
func FormatYMD(t time.Time) string {
	return t.Format("2006/01/02")
}
