// Package instagram implements the Instagram dispatch adapter. Publishing
// a reel through the API requires a business account, so both modes render
// a preview and leave the upload to the operator.
package instagram

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"loopcast/internal/post"
)

// Adapter previews Instagram reels.
type Adapter struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Adapter {
	return &Adapter{logger: logger.With("component", "instagram")}
}

func (a *Adapter) Name() string { return "instagram" }

// Run logs the intended reel. It never fails.
func (a *Adapter) Run(ctx context.Context, pkg *post.Package, baseDir string, dryRun bool) error {
	mode := "dry-run"
	if !dryRun {
		mode = "real-run"
	}
	a.logger.Info("instagram dispatch",
		"mode", mode,
		"type", "reel",
		"media", filepath.Join(baseDir, pkg.Media.Video),
		"hashtags", strings.Join(pkg.Hashtags, " "),
	)
	if !dryRun {
		a.logger.Info("instagram posting is manual, use the outbox caption")
	}
	return nil
}
