package outbox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"loopcast/internal/editorial"
	"loopcast/internal/metadata"
	"loopcast/internal/post"
	"loopcast/internal/testsupport"
)

func readFile(t *testing.T, path string) string {
	t.Helper()

	payload, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(payload)
}

func TestWriteBundleCreatesArtifacts(t *testing.T) {
	runDir := t.TempDir()
	doc := testsupport.SampleDocument()
	bundle := editorial.DeriveBundle(doc, editorial.DeriveHashtags(doc))

	written, err := WriteBundle(runDir, bundle)
	if err != nil {
		t.Fatalf("write bundle: %v", err)
	}
	wanted := []string{"reddit.md", "instagram.txt", "tiktok.txt", "youtube_shorts_titles.txt"}
	if len(written) != len(wanted) {
		t.Fatalf("expected %d files, got %v", len(wanted), written)
	}
	for _, name := range wanted {
		if _, err := os.Stat(filepath.Join(runDir, DirName, name)); err != nil {
			t.Fatalf("missing artifact %s: %v", name, err)
		}
	}
}

func TestWriteBundleSkipsEmptyArtifacts(t *testing.T) {
	runDir := t.TempDir()
	doc := &metadata.Document{}
	bundle := editorial.DeriveBundle(doc, nil)

	written, err := WriteBundle(runDir, bundle)
	if err != nil {
		t.Fatalf("write bundle: %v", err)
	}
	for _, path := range written {
		if strings.HasSuffix(path, "youtube_shorts_titles.txt") {
			t.Fatal("empty metadata should yield no shorts file")
		}
	}
}

func TestTikTokFileCombinesCaptionAndPinnedComment(t *testing.T) {
	runDir := t.TempDir()
	doc := testsupport.SampleDocument()
	bundle := editorial.DeriveBundle(doc, nil)

	if _, err := WriteBundle(runDir, bundle); err != nil {
		t.Fatalf("write bundle: %v", err)
	}
	content := readFile(t, filepath.Join(runDir, DirName, "tiktok.txt"))
	if !strings.Contains(content, bundle.TikTokCaption) {
		t.Fatal("tiktok.txt missing caption")
	}
	if !strings.Contains(content, "Pinned comment: Full performance on YouTube.") {
		t.Fatalf("tiktok.txt missing pinned comment, got %q", content)
	}
}

func samplePackage(t *testing.T, runDir string) *post.Package {
	t.Helper()

	testsupport.WriteFile(t, filepath.Join(runDir, "media", "video.mp4"), 64)
	pkg, err := post.Assemble(testsupport.SampleDocument(), post.AssembleInput{
		RunDir:            runDir,
		RunID:             "20250101_130000",
		Video:             filepath.Join("media", "video.mp4"),
		Window:            "full",
		FallbackSubreddit: "electronicmusic",
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	return pkg
}

func TestWriteRedditOutboxDocument(t *testing.T) {
	runDir := t.TempDir()
	pkg := samplePackage(t, runDir)

	path, err := WriteRedditOutbox(pkg, runDir, time.Date(2025, 1, 7, 13, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("write reddit outbox: %v", err)
	}
	content := readFile(t, path)

	for _, want := range []string{
		"# Reddit Posting Outbox",
		"_Generated: 2025-01-07 13:00:00_",
		"## Suggested subreddits (choose 1-2 max)",
		"### r/dawless",
		"## Post body (copy/paste)",
		"Original live performance (no repost, no ads).",
		"Gear used:",
		"- Hydrasynth",
		"Video file: `media/video.mp4`",
		"- Do NOT crosspost",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("reddit outbox missing %q", want)
		}
	}
	if strings.Contains(content, "Full performance on YouTube.") {
		t.Fatal("reddit outbox must not carry the YouTube call to action")
	}
}

func TestWriteRedditOutboxMissingVideoNote(t *testing.T) {
	runDir := t.TempDir()
	pkg := samplePackage(t, runDir)
	pkg.Media.Video = ""

	path, err := WriteRedditOutbox(pkg, runDir, time.Now())
	if err != nil {
		t.Fatalf("write reddit outbox: %v", err)
	}
	if !strings.Contains(readFile(t, path), "Video file: (missing in package)") {
		t.Fatal("expected missing-video note")
	}
}

func TestGearFromDescriptionDeduplicates(t *testing.T) {
	description := "Synths: Hydrasynth, MatrixBrute\nLooper: RC-505\nSynths: hydrasynth"
	gear := gearFromDescription(description)
	if len(gear) != 3 {
		t.Fatalf("expected 3 unique items, got %v", gear)
	}
	if gear[0] != "Hydrasynth" || gear[2] != "RC-505" {
		t.Fatalf("unexpected order %v", gear)
	}
}
