package query

import (
	"fmt"

	"govlens/internal/model"
)

// Finding kinds, ordered by severity of presentation.
const (
	KindCritical = "critical"
	KindWarning  = "warning"
	KindInfo     = "info"
	KindSuccess  = "success"
)

// locationGUIDField is flagged as a risk upstream but is a known
// non-actionable false positive; it is excluded from every risk-based
// computation.
const locationGUIDField = "location_guid"

// Finding is one governance insight produced by a rule.
type Finding struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// A rule inspects the in-scope dataset and emits at most one finding.
// Rules are evaluated in fixed order; modeling them as a plain slice of
// functions keeps the behavior auditable.
type rule func(e *Engine, ids map[string]bool) *Finding

var rules = []rule{
	ghostFieldsRule,
	catalogUtilizationRule,
	criticalDependencyRule,
	staleAssetsRule,
}

// Insights evaluates the governance rules against the in-scope dataset.
// Findings preserve rule order; when no rule fires, a single all-clear
// finding is returned instead.
func (e *Engine) Insights(ids map[string]bool) []Finding {
	findings := []Finding{}
	for _, r := range rules {
		if f := r(e, ids); f != nil {
			findings = append(findings, *f)
		}
	}

	if len(findings) == 0 {
		findings = append(findings, Finding{
			Kind:    KindSuccess,
			Title:   "All Systems Operational",
			Message: "No critical governance issues detected.",
		})
	}
	return findings
}

// ghostFieldsRule fires when in-scope risk-flagged references name fields
// missing from the catalog.
func ghostFieldsRule(e *Engine, ids map[string]bool) *Finding {
	ghosts := make(map[string]struct{})
	for _, j := range e.session.Joined {
		if !inScope(j, ids) || !j.IsRisk || j.FieldName == locationGUIDField {
			continue
		}
		ghosts[j.FieldName] = struct{}{}
	}

	if len(ghosts) == 0 {
		return nil
	}
	return &Finding{
		Kind:  KindCritical,
		Title: "Ghost Fields Detected",
		Message: fmt.Sprintf(
			"%d fields are referenced but not in catalog. This can cause runtime errors.",
			len(ghosts)),
	}
}

// catalogUtilizationRule fires below 30% (warning) and above 85% (success)
// saturation; the band between is silent. An empty catalog never fires.
func catalogUtilizationRule(e *Engine, ids map[string]bool) *Finding {
	if len(e.session.Catalog) == 0 {
		return nil
	}

	saturation, _ := e.saturation(ids)
	if saturation < 30 {
		return &Finding{
			Kind:  KindWarning,
			Title: "Low Catalog Utilization",
			Message: fmt.Sprintf(
				"Only %.1f%% of catalog fields are in use. Consider cleaning unused fields.",
				saturation),
		}
	}
	if saturation > 85 {
		return &Finding{
			Kind:  KindSuccess,
			Title: "High Catalog Utilization",
			Message: fmt.Sprintf(
				"%.1f%% of catalog fields are actively used. Great efficiency!",
				saturation),
		}
	}
	return nil
}

// criticalDependencyRule names the most-referenced field among in-scope,
// non-risk references. Ties resolve to the first-seen field.
func criticalDependencyRule(e *Engine, ids map[string]bool) *Finding {
	counter := newOrderedCounter()
	for _, j := range e.session.Joined {
		if !inScope(j, ids) || j.IsRisk {
			continue
		}
		counter.add(j.FieldName)
	}

	field, count, ok := counter.max()
	if !ok {
		return nil
	}
	return &Finding{
		Kind:  KindInfo,
		Title: "Critical Dependency",
		Message: fmt.Sprintf(
			"Field '%s' is used in %d locations. Changes require careful review.",
			field, count),
	}
}

// staleAssetsRule counts in-scope assets whose last activity is strictly
// older than the staleness window.
func staleAssetsRule(e *Engine, ids map[string]bool) *Finding {
	days := e.limits.StaleAfterDays
	if days <= 0 {
		days = 90
	}
	cutoff := model.DayStart(e.now()).AddDate(0, 0, -days)

	stale := 0
	for _, a := range e.session.Assets {
		if !ids[a.AssetID] || a.LastActive == nil {
			continue
		}
		if model.DayStart(*a.LastActive).Before(cutoff) {
			stale++
		}
	}

	if stale == 0 {
		return nil
	}
	return &Finding{
		Kind:  KindWarning,
		Title: "Stale Assets",
		Message: fmt.Sprintf(
			"%d assets haven't been active in %d+ days. Review for deprecation.",
			stale, days),
	}
}
