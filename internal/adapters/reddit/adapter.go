// Package reddit implements the Reddit dispatch adapter. Reddit posting is
// manual-first: both modes render the submission details and point the
// operator at the posting outbox document instead of touching the API.
package reddit

import (
	"context"
	"log/slog"
	"path/filepath"

	"loopcast/internal/outbox"
	"loopcast/internal/post"
)

// Adapter previews Reddit submissions.
type Adapter struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Adapter {
	return &Adapter{logger: logger.With("component", "reddit")}
}

func (a *Adapter) Name() string { return "reddit" }

// Run logs the intended submission. It never fails: the actual post is done
// by a human from the outbox document.
func (a *Adapter) Run(ctx context.Context, pkg *post.Package, baseDir string, dryRun bool) error {
	title := pkg.Title
	if pkg.Platforms.Reddit.TitleOverride != nil && *pkg.Platforms.Reddit.TitleOverride != "" {
		title = *pkg.Platforms.Reddit.TitleOverride
	}

	a.logger.Info("reddit dispatch",
		"mode", mode(dryRun),
		"subreddit", pkg.Platforms.Reddit.Subreddit,
		"title", title,
		"media", filepath.Join(baseDir, pkg.Media.Video),
		"outbox", filepath.Join(outbox.Dir(baseDir), "reddit.md"),
	)
	if !dryRun {
		a.logger.Info("reddit posting is manual, use the outbox document")
	}
	return nil
}

func mode(dryRun bool) string {
	if dryRun {
		return "dry-run"
	}
	return "real-run"
}
