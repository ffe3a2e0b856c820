// Package session loads the governance tables once and materializes the
// immutable dataset every query runs against. A session is a pure value:
// nothing downstream mutates it, and a failed load produces no session at
// all.
package session

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	goverrors "govlens/internal/errors"
	"govlens/internal/ingest"
	"govlens/internal/logging"
	"govlens/internal/model"
	"govlens/internal/storage"
)

// Snapshot metadata keys.
const (
	metaRefreshedAt = "refreshed_at"
	metaDataVersion = "data_version"
)

// Session is the immutable dataset for one load.
type Session struct {
	ID          string
	RefreshedAt string
	LoadedAt    time.Time

	Catalog       []model.CatalogField
	CatalogFields map[string]struct{}
	Assets        []model.Asset
	AssetByID     map[string]model.Asset
	Refs          []model.FieldReference
	Joined        []model.JoinedReference
	Deps          []model.Dependency

	BlockIndex map[string]string
	BlockRows  int
	Skipped    int
}

// UnresolvedRefs counts joined references whose block had no index entry.
func (s *Session) UnresolvedRefs() int {
	n := 0
	for _, j := range s.Joined {
		if j.AssetID == "" {
			n++
		}
	}
	return n
}

// smallTables are the four row-bounded tables fetched concurrently before
// the block index streams.
var smallTables = []string{
	ingest.TableCatalog,
	ingest.TableAssets,
	ingest.TableReferences,
	ingest.TableDependencies,
}

// Load runs the full ingestion pipeline against the configured data source:
// refresh metadata, the four small tables in parallel, then the streamed
// block index, then the join. When snap is non-nil the raw table files are
// cached for offline use; snapshot write failures are logged, never fatal.
func Load(ctx context.Context, f *ingest.Fetcher, snap *storage.Snapshot, logger *logging.Logger) (*Session, error) {
	refreshedAt := loadRefreshMeta(ctx, f, logger)

	raw := make(map[string][]byte, len(smallTables))
	errs := make([]error, len(smallTables))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i, name := range smallTables {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			data, err := f.FetchTable(ctx, name)
			if err != nil {
				errs[i] = err
				return
			}
			mu.Lock()
			raw[name] = data
			mu.Unlock()
		}(i, name)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	logger.Info("Tables loaded. Building block index", map[string]interface{}{
		"source": f.BaseURL(),
	})

	body, err := f.Open(ctx, ingest.TableBlocks)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var blockReader io.Reader = body
	var blockCopy *bytes.Buffer
	if snap != nil {
		blockCopy = &bytes.Buffer{}
		blockReader = io.TeeReader(body, blockCopy)
	}

	index, blockRows, err := ingest.BuildBlockIndex(blockReader, func(rows int) {
		logger.Debug("Indexing content blocks", map[string]interface{}{"rows": rows})
	})
	if err != nil {
		return nil, err
	}

	if snap != nil {
		// Drain any trailing bytes the index scanner did not consume so the
		// cached copy is complete.
		_, _ = io.Copy(io.Discard, blockReader)
		saveSnapshot(snap, raw, blockCopy.Bytes(), refreshedAt, f.DataVersion(), logger)
	}

	return assemble(raw, index, blockRows, refreshedAt, logger)
}

// LoadOffline rebuilds a session from the local snapshot without touching
// the network.
func LoadOffline(snap *storage.Snapshot, logger *logging.Logger) (*Session, error) {
	raw := make(map[string][]byte, len(smallTables))
	for _, name := range smallTables {
		data, err := snap.Table(name)
		if err != nil {
			return nil, err
		}
		raw[name] = data
	}

	blocks, err := snap.Table(ingest.TableBlocks)
	if err != nil {
		return nil, err
	}

	index, blockRows, err := ingest.BuildBlockIndex(bytes.NewReader(blocks), nil)
	if err != nil {
		return nil, err
	}

	refreshedAt, err := snap.Meta(metaRefreshedAt)
	if err != nil {
		refreshedAt = ""
	}

	logger.Info("Session restored from snapshot", map[string]interface{}{
		"path": snap.Path(),
	})
	return assemble(raw, index, blockRows, refreshedAt, logger)
}

// loadRefreshMeta fetches the optional refresh metadata. Any failure is
// swallowed; a found timestamp becomes the table cache-busting version.
func loadRefreshMeta(ctx context.Context, f *ingest.Fetcher, logger *logging.Logger) string {
	data, err := f.FetchRefreshMeta(ctx)
	if err != nil {
		logger.Debug("Refresh metadata unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		return ""
	}

	refreshedAt := ingest.RefreshTimestamp(data)
	if refreshedAt != "" {
		f.SetDataVersion(refreshedAt)
	}
	return refreshedAt
}

func saveSnapshot(snap *storage.Snapshot, raw map[string][]byte, blocks []byte, refreshedAt, dataVersion string, logger *logging.Logger) {
	save := func(name string, content []byte) {
		if err := snap.SaveTable(name, content); err != nil {
			logger.Warn("Snapshot write failed", map[string]interface{}{
				"table": name,
				"error": err.Error(),
			})
		}
	}
	for name, content := range raw {
		save(name, content)
	}
	save(ingest.TableBlocks, blocks)
	_ = snap.SetMeta(metaRefreshedAt, refreshedAt)
	_ = snap.SetMeta(metaDataVersion, dataVersion)
}

// assemble parses the raw tables and materializes the immutable session.
func assemble(raw map[string][]byte, index map[string]string, blockRows int, refreshedAt string, logger *logging.Logger) (*Session, error) {
	skipped := 0
	parse := func(name string) ([]ingest.Row, error) {
		rows, dropped, err := ingest.ReadRows(bytes.NewReader(raw[name]))
		skipped += dropped
		if err != nil {
			return nil, goverrors.NewGovError(goverrors.TableMalformed,
				"unreadable table: "+name, err, nil)
		}
		return rows, nil
	}

	catalogRows, err := parse(ingest.TableCatalog)
	if err != nil {
		return nil, err
	}
	assetRows, err := parse(ingest.TableAssets)
	if err != nil {
		return nil, err
	}
	refRows, err := parse(ingest.TableReferences)
	if err != nil {
		return nil, err
	}
	depRows, err := parse(ingest.TableDependencies)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:          uuid.NewString(),
		RefreshedAt: refreshedAt,
		LoadedAt:    time.Now(),
		Catalog:     ingest.CatalogFromRows(catalogRows),
		Assets:      ingest.AssetsFromRows(assetRows),
		Refs:        ingest.ReferencesFromRows(refRows),
		Deps:        ingest.DependenciesFromRows(depRows),
		BlockIndex:  index,
		BlockRows:   blockRows,
		Skipped:     skipped,
	}

	s.AssetByID = make(map[string]model.Asset, len(s.Assets))
	for _, a := range s.Assets {
		s.AssetByID[a.AssetID] = a
	}

	s.CatalogFields = make(map[string]struct{}, len(s.Catalog))
	for _, c := range s.Catalog {
		s.CatalogFields[c.FieldName] = struct{}{}
	}

	s.Joined = Denormalize(s.Refs, s.BlockIndex, s.AssetByID)

	logger.Info("Session ready", map[string]interface{}{
		"session":    s.ID,
		"assets":     len(s.Assets),
		"references": len(s.Joined),
		"blocks":     len(s.BlockIndex),
		"skippedRows": skipped,
	})
	return s, nil
}
