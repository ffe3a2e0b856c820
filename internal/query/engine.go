// Package query computes every derived metric the reporting surface shows:
// the in-scope asset set, KPIs, governance insights, ranked field usage,
// cross-tabulations, Pareto series, and activity timelines. All computations
// are pure functions of the immutable session and the selected period.
package query

import (
	"time"

	"govlens/internal/config"
	"govlens/internal/logging"
	"govlens/internal/model"
	"govlens/internal/period"
	"govlens/internal/session"
)

// Engine answers analytics queries over one loaded session.
type Engine struct {
	session *session.Session
	logger  *logging.Logger
	limits  config.AnalyticsConfig
	now     func() time.Time
}

// NewEngine creates an engine over a fully loaded session.
func NewEngine(s *session.Session, logger *logging.Logger, limits config.AnalyticsConfig) *Engine {
	return &Engine{session: s, logger: logger, limits: limits, now: time.Now}
}

// NewEngineAt creates an engine with a pinned reference instant. Period
// resolution and staleness checks are relative to it.
func NewEngineAt(s *session.Session, logger *logging.Logger, limits config.AnalyticsConfig, now time.Time) *Engine {
	e := NewEngine(s, logger, limits)
	e.now = func() time.Time { return now }
	return e
}

// Session returns the underlying dataset.
func (e *Engine) Session() *session.Session {
	return e.session
}

// InScopeAssetIDs resolves the period label and returns the set of asset ids
// whose day-truncated last activity falls inside it. For the unbounded
// period every asset with a known last activity is in scope; assets with no
// last activity are never in scope. The resolved range is returned for
// caption rendering (nil when unbounded).
func (e *Engine) InScopeAssetIDs(label string) (map[string]bool, *period.Range, error) {
	r, err := period.Resolve(label, e.now())
	if err != nil {
		return nil, nil, err
	}

	ids := make(map[string]bool)
	for _, a := range e.session.Assets {
		if a.LastActive == nil {
			continue
		}
		if r == nil || r.Contains(*a.LastActive) {
			ids[a.AssetID] = true
		}
	}
	return ids, r, nil
}

// inScope reports whether a joined reference is attributable to an in-scope
// asset. Unresolved references (empty asset id) are excluded from every
// period-filtered computation.
func inScope(j model.JoinedReference, ids map[string]bool) bool {
	return j.AssetID != "" && ids[j.AssetID]
}
