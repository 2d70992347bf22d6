// Package runs manages per-run output directories: timestamped run ids,
// staging the fixed media inputs into the run, and listing existing runs
// for replay.
package runs

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"loopcast/internal/pipeline"
	"loopcast/internal/post"
)

// Fixed media layout inside the input directory and each run directory.
const (
	MediaDirName  = "media"
	VideoName     = "video.mp4"
	ThumbnailName = "thumbnail.jpg"
)

var runIDPattern = regexp.MustCompile(`^\d{8}_\d{6}$`)

// NewID returns a run identifier for the given instant.
func NewID(now time.Time) string {
	return now.Format("20060102_150405")
}

// Run is one created run directory with its staged media references,
// relative to Dir.
type Run struct {
	ID        string
	Dir       string
	Video     string
	Thumbnail string
}

// Create builds <outputDir>/<runID>/media and stages the media inputs from
// <inputDir>/media into it. A missing input video is a fatal precondition;
// a missing thumbnail is skipped.
func Create(inputDir, outputDir, runID string) (*Run, error) {
	runDir := filepath.Join(outputDir, runID)
	mediaDir := filepath.Join(runDir, MediaDirName)
	if err := os.MkdirAll(mediaDir, 0o755); err != nil {
		return nil, pipeline.Wrap(pipeline.ErrExternal, "runs", "create", "create run directory", err)
	}

	videoIn := filepath.Join(inputDir, MediaDirName, VideoName)
	if _, err := os.Stat(videoIn); err != nil {
		return nil, pipeline.Wrap(pipeline.ErrPrecondition, "runs", "create", fmt.Sprintf("input video missing at %s", videoIn), err)
	}
	if err := copyVerified(videoIn, filepath.Join(mediaDir, VideoName)); err != nil {
		return nil, pipeline.Wrap(pipeline.ErrExternal, "runs", "create", "stage video", err)
	}

	run := &Run{
		ID:    runID,
		Dir:   runDir,
		Video: filepath.Join(MediaDirName, VideoName),
	}

	thumbIn := filepath.Join(inputDir, MediaDirName, ThumbnailName)
	if _, err := os.Stat(thumbIn); err == nil {
		if err := copyVerified(thumbIn, filepath.Join(mediaDir, ThumbnailName)); err != nil {
			return nil, pipeline.Wrap(pipeline.ErrExternal, "runs", "create", "stage thumbnail", err)
		}
		run.Thumbnail = filepath.Join(MediaDirName, ThumbnailName)
	}
	return run, nil
}

// Info describes one existing run directory.
type Info struct {
	ID         string
	Dir        string
	HasPackage bool
}

// List enumerates run directories under outputDir in chronological order.
// Entries that do not look like run ids are ignored.
func List(outputDir string) ([]Info, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, pipeline.Wrap(pipeline.ErrExternal, "runs", "list", "read output directory", err)
	}

	var infos []Info
	for _, entry := range entries {
		if !entry.IsDir() || !runIDPattern.MatchString(entry.Name()) {
			continue
		}
		dir := filepath.Join(outputDir, entry.Name())
		_, statErr := os.Stat(post.Path(dir))
		infos = append(infos, Info{
			ID:         entry.Name(),
			Dir:        dir,
			HasPackage: statErr == nil,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos, nil
}

// Resolve maps a run id to its directory and verifies it exists.
func Resolve(outputDir, runID string) (string, error) {
	dir := filepath.Join(outputDir, runID)
	if _, err := os.Stat(dir); err != nil {
		return "", pipeline.Wrap(pipeline.ErrPrecondition, "runs", "resolve", fmt.Sprintf("run %s not found under %s", runID, outputDir), err)
	}
	return dir, nil
}
