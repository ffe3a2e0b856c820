package ingest

import (
	"io"

	goverrors "govlens/internal/errors"
)

// ProgressFunc receives the running row count while the block index builds.
type ProgressFunc func(rows int)

// progressInterval is how many rows pass between progress callbacks.
const progressInterval = 2000

// BuildBlockIndex streams the content block table and returns the
// block_id → asset_id mapping plus the total number of rows consumed.
//
// The table can be orders of magnitude larger than the others, so rows are
// consumed incrementally and never buffered. Rows missing either identifier
// are ignored; a duplicate block_id overwrites the earlier entry (the
// mapping is structural identity, so last write wins). A read-level failure
// aborts the build and is fatal to the session load.
func BuildBlockIndex(r io.Reader, progress ProgressFunc) (map[string]string, int, error) {
	index := make(map[string]string)
	scanner := NewRowScanner(r)

	for scanner.Scan() {
		row := scanner.Row()
		blockID := row["block_id"]
		assetID := row["asset_id"]
		if blockID != "" && assetID != "" {
			index[blockID] = assetID
		}
		if progress != nil && scanner.Rows()%progressInterval == 0 {
			progress(scanner.Rows())
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, scanner.Rows(), goverrors.NewGovError(goverrors.FetchFailed,
			"block index build aborted", err,
			goverrors.GetSuggestedFixes(goverrors.FetchFailed))
	}

	if progress != nil {
		progress(scanner.Rows())
	}
	return index, scanner.Rows(), nil
}
