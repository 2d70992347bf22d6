// Package dispatch orchestrates platform adapters for one run: it gates on
// the schema validator and the scheduling guardrail, holds a per-run
// advisory lock, and invokes every enabled adapter in a fixed order.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"loopcast/internal/metadata"
	"loopcast/internal/outbox"
	"loopcast/internal/pipeline"
	"loopcast/internal/post"
	"loopcast/internal/scheduling"
)

// Adapter is the capability every platform implementation provides. baseDir
// resolves the package's relative media paths; dryRun must suppress all
// side effects beyond logging.
type Adapter interface {
	Name() string
	Run(ctx context.Context, pkg *post.Package, baseDir string, dryRun bool) error
}

// platformOrder is the fixed, known platform set. Adapters for other names
// are rejected at construction.
var platformOrder = []string{"youtube", "reddit", "instagram"}

// Per-platform outcome tags.
const (
	StatusPosted          = "posted"
	StatusPreviewed       = "previewed"
	StatusSkippedDisabled = "skipped_disabled"
	StatusSkippedFiltered = "skipped_filtered"
	StatusFailed          = "failed"
)

// PlatformResult records what happened to one platform during a dispatch.
type PlatformResult struct {
	Platform string
	Status   string
	Err      error
}

// Result summarizes a dispatch attempt. Denied is non-nil when the
// guardrail blocked a real run; in that case no adapter was invoked.
type Result struct {
	RequestID  string
	PackageID  string
	Denied     *scheduling.Decision
	OutboxPath string
	Platforms  []PlatformResult
}

// Options select what to dispatch and how.
type Options struct {
	RunDir   string
	Window   string
	Real     bool
	Platform string
	Now      time.Time
}

// Dispatcher wires the guardrail and the adapter registry together.
type Dispatcher struct {
	logger   *slog.Logger
	guard    *scheduling.Guardrail
	adapters map[string]Adapter
}

// New builds a dispatcher. Every adapter must carry one of the known
// platform names.
func New(logger *slog.Logger, guard *scheduling.Guardrail, adapters ...Adapter) (*Dispatcher, error) {
	registry := make(map[string]Adapter, len(adapters))
	for _, adapter := range adapters {
		if !knownPlatform(adapter.Name()) {
			return nil, pipeline.Wrap(pipeline.ErrConfiguration, "dispatch", "new", fmt.Sprintf("unknown platform adapter %q", adapter.Name()), nil)
		}
		registry[adapter.Name()] = adapter
	}
	return &Dispatcher{
		logger:   logger.With("component", "dispatch"),
		guard:    guard,
		adapters: registry,
	}, nil
}

// Run executes one dispatch attempt over the package in opts.RunDir. doc is
// only consulted for real runs, where the guardrail gates on its release
// metadata; replaying a dry run needs no metadata at all.
func (d *Dispatcher) Run(ctx context.Context, doc *metadata.Document, opts Options) (*Result, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	result := &Result{RequestID: uuid.NewString()}
	logger := d.logger.With("request_id", result.RequestID)

	if opts.Platform != "" && !knownPlatform(opts.Platform) {
		return result, pipeline.Wrap(pipeline.ErrConfiguration, "dispatch", "run", fmt.Sprintf("unknown platform %q", opts.Platform), nil)
	}

	lock := flock.New(filepath.Join(opts.RunDir, ".dispatch.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return result, pipeline.Wrap(pipeline.ErrExternal, "dispatch", "run", "acquire dispatch lock", err)
	}
	if !ok {
		return result, pipeline.Wrap(pipeline.ErrLocked, "dispatch", "run", fmt.Sprintf("another dispatch is running for %s", opts.RunDir), nil)
	}
	defer func() { _ = lock.Unlock() }()

	packagePath := post.Path(opts.RunDir)
	if ok, violations := post.ValidateFile(packagePath); !ok {
		return result, pipeline.ValidationList(pipeline.ErrSchema, "dispatch", violations)
	}
	pkg, err := post.Load(packagePath)
	if err != nil {
		return result, err
	}
	result.PackageID = pkg.ID

	if opts.Real {
		decision := d.guard.CanDispatch(doc, opts.Window, now)
		if !decision.Allowed {
			logger.Warn("dispatch denied by guardrail", "reason", decision.Reason, "detail", decision.Detail)
			result.Denied = &decision
			return result, nil
		}
		logger.Info("guardrail allowed real dispatch", "window", opts.Window)
	}

	if pkg.Platforms.Reddit.Enabled {
		path, err := outbox.WriteRedditOutbox(pkg, opts.RunDir, now)
		if err != nil {
			return result, err
		}
		result.OutboxPath = path
		logger.Info("reddit posting outbox written", "path", path)
	}

	var failures []error
	for _, name := range platformOrder {
		outcome := d.runPlatform(ctx, logger, pkg, name, opts)
		result.Platforms = append(result.Platforms, outcome)
		if outcome.Err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", name, outcome.Err))
		}
	}
	if len(failures) > 0 {
		return result, pipeline.Wrap(pipeline.ErrExternal, "dispatch", "run", fmt.Sprintf("%d platform adapter(s) failed", len(failures)), errors.Join(failures...))
	}
	return result, nil
}

func (d *Dispatcher) runPlatform(ctx context.Context, logger *slog.Logger, pkg *post.Package, name string, opts Options) PlatformResult {
	if opts.Platform != "" && opts.Platform != name {
		return PlatformResult{Platform: name, Status: StatusSkippedFiltered}
	}
	if !platformEnabled(pkg, name) {
		return PlatformResult{Platform: name, Status: StatusSkippedDisabled}
	}
	adapter, ok := d.adapters[name]
	if !ok {
		return PlatformResult{Platform: name, Status: StatusFailed, Err: pipeline.Wrap(pipeline.ErrConfiguration, "dispatch", "run", fmt.Sprintf("no adapter registered for %q", name), nil)}
	}

	dryRun := !opts.Real
	if err := adapter.Run(ctx, pkg, opts.RunDir, dryRun); err != nil {
		logger.Error("platform adapter failed", "platform", name, "error", err)
		return PlatformResult{Platform: name, Status: StatusFailed, Err: err}
	}
	status := StatusPosted
	if dryRun {
		status = StatusPreviewed
	}
	return PlatformResult{Platform: name, Status: status}
}

func platformEnabled(pkg *post.Package, name string) bool {
	switch name {
	case "youtube":
		return pkg.Platforms.YouTube.Enabled
	case "reddit":
		return pkg.Platforms.Reddit.Enabled
	case "instagram":
		return pkg.Platforms.Instagram.Enabled
	default:
		return false
	}
}

func knownPlatform(name string) bool {
	for _, known := range platformOrder {
		if known == name {
			return true
		}
	}
	return false
}
