// Package scheduling implements the dispatch guardrail: real posting is
// only allowed inside locked weekly windows, and only for packages whose
// release metadata matches the current ISO week. The guardrail fails
// closed, so any fault yields a denial rather than an error.
package scheduling

import (
	"fmt"
	"regexp"
	"time"

	"loopcast/internal/config"
	"loopcast/internal/metadata"
	"loopcast/internal/pipeline"
)

// Denial reasons. Callers log the tag and show Detail to the operator.
const (
	ReasonNotReady         = "not_ready"
	ReasonMalformedWeekID  = "malformed_week_id"
	ReasonWeekMismatch     = "week_mismatch"
	ReasonUnknownWindow    = "unknown_window"
	ReasonWrongWeekday     = "wrong_weekday"
	ReasonOutsideTolerance = "outside_tolerance"
	ReasonInternalFault    = "internal_fault"
)

var weekIDPattern = regexp.MustCompile(`^\d{4}-W\d{2}$`)

// Decision is the guardrail verdict. Reason is empty when Allowed is true.
type Decision struct {
	Allowed bool
	Reason  string
	Detail  string
}

func deny(reason, detail string) Decision {
	return Decision{Reason: reason, Detail: detail}
}

// Guardrail evaluates dispatch attempts against an immutable window table.
type Guardrail struct {
	location *time.Location
	windows  map[string]config.Window
}

// New builds a guardrail from the scheduling configuration. The window
// table is copied so later config mutation cannot loosen the lock.
func New(cfg config.Scheduling) (*Guardrail, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrConfiguration, "scheduling", "new", fmt.Sprintf("unknown timezone %q", cfg.Timezone), err)
	}
	windows := make(map[string]config.Window, len(cfg.Windows))
	for key, window := range cfg.Windows {
		windows[key] = window
	}
	return &Guardrail{location: location, windows: windows}, nil
}

// KnowsWindow reports whether the guardrail has a window named key.
func (g *Guardrail) KnowsWindow(key string) bool {
	_, ok := g.windows[key]
	return ok
}

// CanDispatch evaluates the release metadata of a document against the
// named window at the given instant.
func (g *Guardrail) CanDispatch(doc *metadata.Document, windowKey string, now time.Time) Decision {
	if doc == nil {
		return deny(ReasonNotReady, "no metadata document")
	}
	return g.Evaluate(doc.Release.PackageReady, doc.Release.WeekID, windowKey, now)
}

// Evaluate applies every guardrail check in order and stops at the first
// failure. ready must be exactly true; a missing or mistyped value counts
// as not ready.
func (g *Guardrail) Evaluate(ready *bool, weekID, windowKey string, now time.Time) Decision {
	if ready == nil || !*ready {
		return deny(ReasonNotReady, "release.package_ready is not true")
	}
	if !weekIDPattern.MatchString(weekID) {
		return deny(ReasonMalformedWeekID, fmt.Sprintf("week id %q is not in YYYY-Www form", weekID))
	}

	local := now.In(g.location)
	year, week := local.ISOWeek()
	currentWeek := fmt.Sprintf("%04d-W%02d", year, week)
	if weekID != currentWeek {
		return deny(ReasonWeekMismatch, fmt.Sprintf("package targets %s but the current week is %s", weekID, currentWeek))
	}

	window, ok := g.windows[windowKey]
	if !ok {
		return deny(ReasonUnknownWindow, fmt.Sprintf("no window named %q", windowKey))
	}
	if mondayWeekday(local) != window.Weekday {
		return deny(ReasonWrongWeekday, fmt.Sprintf("window %q is locked to weekday %d", windowKey, window.Weekday))
	}

	target, err := time.ParseInLocation("15:04", window.Time, g.location)
	if err != nil {
		return deny(ReasonInternalFault, fmt.Sprintf("window %q has unparseable time %q", windowKey, window.Time))
	}
	anchor := time.Date(local.Year(), local.Month(), local.Day(), target.Hour(), target.Minute(), 0, 0, g.location)
	offset := local.Sub(anchor)
	if offset < 0 {
		offset = -offset
	}
	tolerance := time.Duration(window.ToleranceMin) * time.Minute
	if tolerance <= 0 {
		tolerance = 30 * time.Minute
	}
	if offset > tolerance {
		return deny(ReasonOutsideTolerance, fmt.Sprintf("now is %s away from the %s anchor, tolerance is %s", offset.Round(time.Minute), window.Time, tolerance))
	}
	return Decision{Allowed: true}
}

// mondayWeekday maps time.Weekday (Sunday=0) onto the Monday=0 numbering
// the window table uses.
func mondayWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
