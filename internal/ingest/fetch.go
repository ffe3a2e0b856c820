package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"govlens/internal/config"
	goverrors "govlens/internal/errors"
	"govlens/internal/logging"
)

// Table file names served under the data base URL.
const (
	TableCatalog      = "catalog_schema.csv"
	TableAssets       = "asset_inventory.csv"
	TableReferences   = "field_references.csv"
	TableDependencies = "dependencies.csv"
	TableBlocks       = "content_blocks.csv"
	MetaFile          = "refresh_meta.json"
)

// Fetcher transfers table files from the configured data source.
type Fetcher struct {
	baseURL     string
	dataVersion string
	client      *http.Client
	logger      *logging.Logger
	maxRetries  int
	baseDelay   time.Duration
}

// NewFetcher creates a fetcher from the transfer configuration.
func NewFetcher(cfg *config.Config, logger *logging.Logger) *Fetcher {
	return &Fetcher{
		baseURL:     strings.TrimRight(cfg.Data.BaseURL, "/"),
		dataVersion: cfg.Data.DataVersion,
		client: &http.Client{
			Timeout: time.Duration(cfg.HTTP.TimeoutMs) * time.Millisecond,
		},
		logger:     logger,
		maxRetries: cfg.HTTP.MaxRetries,
		baseDelay:  time.Duration(cfg.HTTP.RetryBaseDelayMs) * time.Millisecond,
	}
}

// BaseURL returns the configured data source URL.
func (f *Fetcher) BaseURL() string {
	return f.baseURL
}

// DataVersion returns the active cache-busting version string.
func (f *Fetcher) DataVersion() string {
	return f.dataVersion
}

// SetDataVersion replaces the cache-busting version; the refresh metadata
// timestamp is used when available so table fetches see a stable version.
func (f *Fetcher) SetDataVersion(v string) {
	f.dataVersion = v
}

// tableURL builds the versioned URL for a table file.
func (f *Fetcher) tableURL(name string) string {
	u := f.baseURL + "/" + name
	if f.dataVersion == "" {
		return u
	}
	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	return u + sep + "v=" + url.QueryEscape(f.dataVersion)
}

// Open streams a table file. The returned reader is decompressed
// transparently when the source is gzipped. Non-success status and exhausted
// retries both surface as a fatal fetch error.
func (f *Fetcher) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return f.open(ctx, f.tableURL(name))
}

func (f *Fetcher) open(ctx context.Context, u string) (io.ReadCloser, error) {
	var lastErr error

	for attempt := 0; attempt <= f.maxRetries; attempt++ {
		if attempt > 0 {
			delay := f.baseDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			f.logger.Debug("Retrying fetch", map[string]interface{}{
				"url":     u,
				"attempt": attempt,
			})
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, goverrors.NewGovError(goverrors.FetchFailed,
				"invalid table URL: "+u, err, nil)
		}
		req.Header.Set("Cache-Control", "no-store")

		resp, err := f.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, goverrors.NewGovError(goverrors.FetchFailed,
				fmt.Sprintf("fetch failed: %d %s", resp.StatusCode, u), nil,
				goverrors.GetSuggestedFixes(goverrors.FetchFailed))
		}

		return wrapBody(u, resp)
	}

	return nil, goverrors.NewGovError(goverrors.FetchFailed,
		"fetch failed after retries: "+u, lastErr,
		goverrors.GetSuggestedFixes(goverrors.FetchFailed))
}

// wrapBody layers gzip decompression over the response body when the source
// file is compressed.
func wrapBody(u string, resp *http.Response) (io.ReadCloser, error) {
	path := u
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	gzipped := strings.HasSuffix(path, ".gz") ||
		resp.Header.Get("Content-Type") == "application/gzip" ||
		resp.Header.Get("Content-Encoding") == "gzip"
	if !gzipped {
		return resp.Body, nil
	}

	gz, err := gzip.NewReader(resp.Body)
	if err != nil {
		resp.Body.Close()
		return nil, goverrors.NewGovError(goverrors.FetchFailed,
			"corrupt gzip stream: "+u, err, nil)
	}
	return &gzipReadCloser{gz: gz, body: resp.Body}, nil
}

type gzipReadCloser struct {
	gz   *gzip.Reader
	body io.ReadCloser
}

func (g *gzipReadCloser) Read(p []byte) (int, error) {
	return g.gz.Read(p)
}

func (g *gzipReadCloser) Close() error {
	gzErr := g.gz.Close()
	bodyErr := g.body.Close()
	if gzErr != nil {
		return gzErr
	}
	return bodyErr
}

// FetchTable downloads a complete table file into memory.
func (f *Fetcher) FetchTable(ctx context.Context, name string) ([]byte, error) {
	body, err := f.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, goverrors.NewGovError(goverrors.FetchFailed,
			"transfer interrupted: "+name, err,
			goverrors.GetSuggestedFixes(goverrors.FetchFailed))
	}
	return data, nil
}

// FetchRefreshMeta downloads the optional refresh metadata file. The URL is
// busted with the current time so intermediate caches never mask a refresh.
// Callers treat any error here as non-fatal.
func (f *Fetcher) FetchRefreshMeta(ctx context.Context) ([]byte, error) {
	u := f.baseURL + "/" + MetaFile
	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	u += sep + "t=" + strconv.FormatInt(time.Now().UnixMilli(), 10)

	body, err := f.open(ctx, u)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return io.ReadAll(body)
}
