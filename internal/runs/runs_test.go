package runs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"loopcast/internal/pipeline"
	"loopcast/internal/post"
	"loopcast/internal/testsupport"
)

func TestNewIDFormat(t *testing.T) {
	id := NewID(time.Date(2025, 1, 7, 13, 5, 9, 0, time.UTC))
	if id != "20250107_130509" {
		t.Fatalf("unexpected run id %q", id)
	}
	if !runIDPattern.MatchString(id) {
		t.Fatalf("run id %q does not match its own pattern", id)
	}
}

func TestCreateStagesMedia(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(inputDir, MediaDirName, VideoName), 4096)
	testsupport.WriteFile(t, filepath.Join(inputDir, MediaDirName, ThumbnailName), 512)

	run, err := Create(inputDir, outputDir, "20250107_130000")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if run.Video != filepath.Join("media", "video.mp4") {
		t.Fatalf("unexpected video ref %q", run.Video)
	}
	if run.Thumbnail == "" {
		t.Fatal("expected thumbnail staged")
	}
	info, err := os.Stat(filepath.Join(run.Dir, run.Video))
	if err != nil {
		t.Fatalf("staged video missing: %v", err)
	}
	if info.Size() != 4096 {
		t.Fatalf("staged video truncated to %d bytes", info.Size())
	}
}

func TestCreateWithoutThumbnail(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(inputDir, MediaDirName, VideoName), 64)

	run, err := Create(inputDir, outputDir, "20250107_130000")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if run.Thumbnail != "" {
		t.Fatalf("expected no thumbnail, got %q", run.Thumbnail)
	}
}

func TestCreateMissingVideoIsFatal(t *testing.T) {
	_, err := Create(t.TempDir(), t.TempDir(), "20250107_130000")
	if err == nil {
		t.Fatal("expected error for missing input video")
	}
	if !errors.Is(err, pipeline.ErrPrecondition) {
		t.Fatalf("expected precondition error, got %v", err)
	}
}

func TestListFiltersAndSorts(t *testing.T) {
	outputDir := t.TempDir()
	for _, id := range []string{"20250107_130000", "20250101_090000", "notarun"} {
		if err := os.MkdirAll(filepath.Join(outputDir, id), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	testsupport.WriteText(t, post.Path(filepath.Join(outputDir, "20250101_090000")), "{}")

	infos, err := List(outputDir)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(infos))
	}
	if infos[0].ID != "20250101_090000" || infos[1].ID != "20250107_130000" {
		t.Fatalf("unexpected order %v", infos)
	}
	if !infos[0].HasPackage || infos[1].HasPackage {
		t.Fatal("package detection wrong")
	}
}

func TestListMissingDirIsEmpty(t *testing.T) {
	infos, err := List(filepath.Join(t.TempDir(), "nope"))
	if err != nil || infos != nil {
		t.Fatalf("expected empty listing, got %v %v", infos, err)
	}
}

func TestResolve(t *testing.T) {
	outputDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(outputDir, "20250107_130000"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	dir, err := Resolve(outputDir, "20250107_130000")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if dir != filepath.Join(outputDir, "20250107_130000") {
		t.Fatalf("unexpected dir %q", dir)
	}
	if _, err := Resolve(outputDir, "20990101_000000"); !errors.Is(err, pipeline.ErrPrecondition) {
		t.Fatalf("expected precondition error, got %v", err)
	}
}

func TestCopyVerified(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")
	testsupport.WriteFile(t, src, 100*1024)

	if err := copyVerified(src, dst); err != nil {
		t.Fatalf("copy: %v", err)
	}
	srcInfo, _ := os.Stat(src)
	dstInfo, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("stat dst: %v", err)
	}
	if srcInfo.Size() != dstInfo.Size() {
		t.Fatal("size mismatch after copy")
	}
}
