// Package outbox writes the plain-text artifacts a human posts manually:
// per-platform captions under <run>/outbox/ plus the Reddit posting
// document. Outbox files are write-only; nothing in the pipeline reads
// them back.
package outbox

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"loopcast/internal/editorial"
	"loopcast/internal/pipeline"
)

// DirName is the outbox directory name inside a run directory.
const DirName = "outbox"

const (
	redditFile      = "reddit.md"
	instagramFile   = "instagram.txt"
	tiktokFile      = "tiktok.txt"
	shortTitlesFile = "youtube_shorts_titles.txt"
)

// Dir returns the outbox directory path for runDir.
func Dir(runDir string) string {
	return filepath.Join(runDir, DirName)
}

// WriteBundle writes one file per non-empty editorial artifact and returns
// the paths written. Empty artifacts produce no file at all.
func WriteBundle(runDir string, bundle editorial.Bundle) ([]string, error) {
	dir := Dir(runDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, pipeline.Wrap(pipeline.ErrExternal, "outbox", "write", "create outbox directory", err)
	}

	var written []string
	write := func(name, content string) error {
		if strings.TrimSpace(content) == "" {
			return nil
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return pipeline.Wrap(pipeline.ErrExternal, "outbox", "write", fmt.Sprintf("write %s", name), err)
		}
		written = append(written, path)
		return nil
	}

	if err := write(redditFile, bundle.RedditBody); err != nil {
		return written, err
	}
	if err := write(instagramFile, bundle.InstagramCaption); err != nil {
		return written, err
	}
	if err := write(tiktokFile, tiktokContent(bundle)); err != nil {
		return written, err
	}
	if err := write(shortTitlesFile, shortTitlesContent(bundle.ShortTitles)); err != nil {
		return written, err
	}
	return written, nil
}

// tiktokContent joins the caption and the pinned comment into one file so
// the operator pastes both from the same place.
func tiktokContent(bundle editorial.Bundle) string {
	caption := strings.TrimSpace(bundle.TikTokCaption)
	pinned := strings.TrimSpace(bundle.TikTokPinnedComment)
	if caption == "" && pinned == "" {
		return ""
	}
	parts := make([]string, 0, 2)
	if caption != "" {
		parts = append(parts, caption)
	}
	if pinned != "" {
		parts = append(parts, "Pinned comment: "+pinned)
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func shortTitlesContent(titles []string) string {
	if len(titles) == 0 {
		return ""
	}
	return strings.Join(titles, "\n") + "\n"
}
