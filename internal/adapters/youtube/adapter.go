// Package youtube implements the YouTube dispatch adapter. The preview path
// is total; the real path validates credentials and hands the upload to an
// injected client so the adapter itself performs no network I/O.
package youtube

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"loopcast/internal/config"
	"loopcast/internal/pipeline"
	"loopcast/internal/post"
)

// UploadRequest carries everything an upload client needs for one video.
type UploadRequest struct {
	Title         string
	Description   string
	Visibility    string
	PlaylistID    string
	Tags          []string
	VideoPath     string
	ThumbnailPath string
}

// Uploader performs the actual video upload and returns the remote video id.
type Uploader interface {
	Upload(ctx context.Context, req UploadRequest) (string, error)
}

// Adapter dispatches packages to YouTube.
type Adapter struct {
	cfg      config.YouTube
	logger   *slog.Logger
	uploader Uploader
}

// New builds the adapter. uploader may be nil; real runs then fail with a
// configuration error instead of a panic.
func New(cfg config.YouTube, logger *slog.Logger, uploader Uploader) *Adapter {
	return &Adapter{cfg: cfg, logger: logger.With("component", "youtube"), uploader: uploader}
}

func (a *Adapter) Name() string { return "youtube" }

// Run previews or performs the upload. Dry runs only log the intended
// action and can never fail.
func (a *Adapter) Run(ctx context.Context, pkg *post.Package, baseDir string, dryRun bool) error {
	videoPath := filepath.Join(baseDir, pkg.Media.Video)
	thumbnailPath := ""
	if pkg.Media.Thumbnail != nil {
		thumbnailPath = filepath.Join(baseDir, *pkg.Media.Thumbnail)
	}

	attrs := []any{
		"mode", runMode(dryRun),
		"title", pkg.Title,
		"visibility", pkg.Platforms.YouTube.Visibility,
		"video", videoPath,
	}
	if thumbnailPath != "" {
		attrs = append(attrs, "thumbnail", thumbnailPath)
	}
	if pkg.Platforms.YouTube.PlaylistID != "" {
		attrs = append(attrs, "playlist_id", pkg.Platforms.YouTube.PlaylistID)
	}
	a.logger.Info("youtube dispatch", attrs...)

	if dryRun {
		return nil
	}

	if err := a.checkCredentials(); err != nil {
		return err
	}
	if a.uploader == nil {
		return pipeline.Wrap(pipeline.ErrConfiguration, "youtube", "run", "no upload client configured", nil)
	}

	videoID, err := a.uploader.Upload(ctx, UploadRequest{
		Title:         pkg.Title,
		Description:   pkg.Description,
		Visibility:    pkg.Platforms.YouTube.Visibility,
		PlaylistID:    pkg.Platforms.YouTube.PlaylistID,
		Tags:          pkg.Hashtags,
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		return pipeline.Wrap(pipeline.ErrExternal, "youtube", "run", "upload failed", err)
	}
	a.logger.Info("youtube upload complete", "video_id", videoID)
	return nil
}

func (a *Adapter) checkCredentials() error {
	if a.cfg.ClientSecretsFile == "" || a.cfg.TokenFile == "" {
		return pipeline.Wrap(pipeline.ErrConfiguration, "youtube", "run", "client_secrets_file and token_file must be configured for a real run", nil)
	}
	for _, path := range []string{a.cfg.ClientSecretsFile, a.cfg.TokenFile} {
		if _, err := os.Stat(path); err != nil {
			return pipeline.Wrap(pipeline.ErrConfiguration, "youtube", "run", fmt.Sprintf("credential file missing: %s", path), err)
		}
	}
	return nil
}

func runMode(dryRun bool) string {
	if dryRun {
		return "dry-run"
	}
	return "real-run"
}
