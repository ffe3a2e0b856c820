package session

import (
	"govlens/internal/model"
)

// Denormalize joins every raw field reference against the block index and
// the asset table. The join is total: one output row per input row, with
// empty asset fields when the block has no index entry. Downstream
// aggregators decide inclusion by their own rules.
func Denormalize(refs []model.FieldReference, index map[string]string, assetByID map[string]model.Asset) []model.JoinedReference {
	joined := make([]model.JoinedReference, 0, len(refs))

	for _, r := range refs {
		j := model.JoinedReference{
			RefID:          r.RefID,
			BlockID:        r.BlockID,
			FieldName:      r.FieldName,
			MatchType:      r.MatchType,
			ContextSnippet: r.ContextSnippet,
			IsRisk:         model.ParseBool(r.IsRisk),
		}

		if assetID, ok := index[r.BlockID]; ok {
			j.AssetID = assetID
			if asset, ok := assetByID[assetID]; ok {
				j.AssetType = asset.AssetType
				j.AssetName = asset.AssetName
			}
		}

		joined = append(joined, j)
	}

	return joined
}
