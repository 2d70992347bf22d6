package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"loopcast/internal/testsupport"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// writeWorkspace lays out a config file, sample metadata, and an input
// video under a temp dir and returns the config path plus the output dir.
func writeWorkspace(t *testing.T) (string, string) {
	t.Helper()

	base := t.TempDir()
	inputDir := filepath.Join(base, "in")
	outputDir := filepath.Join(base, "out")
	logDir := filepath.Join(base, "logs")

	configPath := filepath.Join(base, "config.toml")
	testsupport.WriteText(t, configPath, fmt.Sprintf(`[paths]
input_dir = %q
output_dir = %q
log_dir = %q
`, inputDir, outputDir, logDir))

	testsupport.WriteText(t, filepath.Join(inputDir, "meta.toml"), testsupport.SampleMetadataTOML)
	testsupport.WriteFile(t, filepath.Join(inputDir, "media", "video.mp4"), 2048)
	return configPath, outputDir
}

func findRunID(t *testing.T, outputDir string) string {
	t.Helper()

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			return entry.Name()
		}
	}
	t.Fatal("no run directory found")
	return ""
}

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	output, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v\n%s", err, output)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}

	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error without --overwrite")
	}
	if _, err := runCommand(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestGenerateBuildsRun(t *testing.T) {
	configPath, outputDir := writeWorkspace(t)

	output, err := runCommand(t, "--config", configPath, "generate")
	if err != nil {
		t.Fatalf("generate: %v\n%s", err, output)
	}

	runID := findRunID(t, outputDir)
	runDir := filepath.Join(outputDir, runID)
	for _, artifact := range []string{
		"post_package.json",
		filepath.Join("media", "video.mp4"),
		filepath.Join("outbox", "reddit.md"),
		filepath.Join("outbox", "instagram.txt"),
		filepath.Join("outbox", "tiktok.txt"),
	} {
		if _, err := os.Stat(filepath.Join(runDir, artifact)); err != nil {
			t.Fatalf("missing artifact %s: %v", artifact, err)
		}
	}
	if !strings.Contains(output, "Run "+runID+" ready") {
		t.Fatalf("expected run summary, got:\n%s", output)
	}
}

func TestGenerateRejectsIncompleteMetadata(t *testing.T) {
	configPath, _ := writeWorkspace(t)
	base := filepath.Dir(configPath)
	testsupport.WriteText(t, filepath.Join(base, "in", "meta.toml"), `[episode]
episode_id = "DS-014"
`)

	output, err := runCommand(t, "--config", configPath, "generate")
	if err == nil {
		t.Fatalf("expected metadata validation failure, got:\n%s", output)
	}
	if !strings.Contains(output, "missing required field") {
		t.Fatalf("expected per-field errors in output, got:\n%s", output)
	}
}

func TestValidateRunPackage(t *testing.T) {
	configPath, outputDir := writeWorkspace(t)
	if _, err := runCommand(t, "--config", configPath, "generate"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	runID := findRunID(t, outputDir)

	output, err := runCommand(t, "--config", configPath, "validate", runID)
	if err != nil {
		t.Fatalf("validate: %v\n%s", err, output)
	}
	if !strings.Contains(output, "passes schema validation") {
		t.Fatalf("unexpected output:\n%s", output)
	}

	// Break the package and expect enumerated violations.
	if err := os.Remove(filepath.Join(outputDir, runID, "media", "video.mp4")); err != nil {
		t.Fatalf("remove video: %v", err)
	}
	output, err = runCommand(t, "--config", configPath, "validate", runID)
	if err == nil {
		t.Fatal("expected validation failure after deleting video")
	}
	if !strings.Contains(output, "media.video") {
		t.Fatalf("expected media.video violation, got:\n%s", output)
	}
}

func TestDispatchDryRun(t *testing.T) {
	configPath, outputDir := writeWorkspace(t)
	if _, err := runCommand(t, "--config", configPath, "generate"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	runID := findRunID(t, outputDir)

	output, err := runCommand(t, "--config", configPath, "dispatch", runID)
	if err != nil {
		t.Fatalf("dispatch dry-run: %v\n%s", err, output)
	}
	if !strings.Contains(output, "previewed") {
		t.Fatalf("expected previewed platforms, got:\n%s", output)
	}
	if _, err := os.Stat(filepath.Join(outputDir, runID, "outbox", "reddit.md")); err != nil {
		t.Fatalf("reddit outbox missing: %v", err)
	}
}

func TestDispatchUnknownRun(t *testing.T) {
	configPath, _ := writeWorkspace(t)

	if _, err := runCommand(t, "--config", configPath, "dispatch", "20990101_000000"); err == nil {
		t.Fatal("expected error for unknown run")
	}
}

func TestRunsCommand(t *testing.T) {
	configPath, outputDir := writeWorkspace(t)

	output, err := runCommand(t, "--config", configPath, "runs")
	if err != nil {
		t.Fatalf("runs (empty): %v", err)
	}
	if !strings.Contains(output, "No runs yet") {
		t.Fatalf("expected empty notice, got:\n%s", output)
	}

	if _, err := runCommand(t, "--config", configPath, "generate"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	runID := findRunID(t, outputDir)

	output, err = runCommand(t, "--config", configPath, "runs")
	if err != nil {
		t.Fatalf("runs: %v\n%s", err, output)
	}
	if !strings.Contains(output, runID) || !strings.Contains(output, "DS-014") {
		t.Fatalf("expected run row with package id, got:\n%s", output)
	}
}
