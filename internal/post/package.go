// Package post assembles and validates the per-run post package, the
// single JSON artifact every downstream dispatch step consumes.
package post

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"loopcast/internal/editorial"
	"loopcast/internal/pipeline"
)

// FileName is the fixed name of the package artifact inside a run directory.
const FileName = "post_package.json"

// Media holds the run-relative media references. Thumbnail is nil when the
// run produced no thumbnail.
type Media struct {
	Video     string  `json:"video"`
	Thumbnail *string `json:"thumbnail"`
}

// Schedule carries the publish intent. PublishAt stays nil until an operator
// pins an explicit time; Window names the weekly slot the run targets.
type Schedule struct {
	PublishAt *string `json:"publish_at"`
	Window    string  `json:"window,omitempty"`
}

// Package is the assembled post package.
type Package struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Hashtags    []string              `json:"hashtags"`
	Media       Media                 `json:"media"`
	Platforms   editorial.PlatformSet `json:"platforms"`
	Schedule    Schedule              `json:"schedule"`
}

// Path returns the package file path inside runDir.
func Path(runDir string) string {
	return filepath.Join(runDir, FileName)
}

// Write serializes the package into runDir as indented JSON.
func Write(runDir string, pkg *Package) (string, error) {
	payload, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return "", pipeline.Wrap(pipeline.ErrExternal, "post", "write", "marshal package", err)
	}
	target := Path(runDir)
	if err := os.WriteFile(target, append(payload, '\n'), 0o644); err != nil {
		return "", pipeline.Wrap(pipeline.ErrExternal, "post", "write", "write package file", err)
	}
	return target, nil
}

// Load reads a previously written package file. Callers that need schema
// guarantees should run ValidateFile first; Load only requires well formed
// JSON matching the Package shape.
func Load(path string) (*Package, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrExternal, "post", "load", fmt.Sprintf("read %s", path), err)
	}
	var pkg Package
	if err := json.Unmarshal(payload, &pkg); err != nil {
		return nil, pipeline.Wrap(pipeline.ErrSchema, "post", "load", fmt.Sprintf("decode %s", path), err)
	}
	return &pkg, nil
}
