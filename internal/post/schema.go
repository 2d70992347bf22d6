package post

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var requiredKeys = []string{"id", "title", "description", "media", "platforms", "schedule"}

var youtubeVisibilities = map[string]bool{
	"public":   true,
	"unlisted": true,
	"private":  true,
}

// ValidateFile checks a package file on disk against the wire schema and
// returns every violation found. It deliberately works on the raw JSON, not
// the typed Package, so truncated or hand-edited files are caught before
// dispatch touches them. A file that cannot be read or parsed yields a
// single error instead of a panic.
func ValidateFile(packagePath string) (bool, []string) {
	payload, err := os.ReadFile(packagePath)
	if err != nil {
		return false, []string{fmt.Sprintf("cannot read package file: %v", err)}
	}
	var raw map[string]any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return false, []string{fmt.Sprintf("package file is not valid JSON: %v", err)}
	}

	var errs []string
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			errs = append(errs, fmt.Sprintf("missing required key: %s", key))
		}
	}
	for _, key := range []string{"id", "title", "description"} {
		value, ok := raw[key]
		if !ok {
			continue
		}
		text, ok := value.(string)
		if !ok || strings.TrimSpace(text) == "" {
			errs = append(errs, fmt.Sprintf("%s must be a non-empty string", key))
		}
	}
	if value, ok := raw["hashtags"]; ok {
		errs = append(errs, validateHashtags(value)...)
	}
	if value, ok := raw["media"]; ok {
		errs = append(errs, validateMedia(value, filepath.Dir(packagePath))...)
	}
	if value, ok := raw["platforms"]; ok {
		errs = append(errs, validatePlatforms(value)...)
	}
	if value, ok := raw["schedule"]; ok {
		errs = append(errs, validateSchedule(value)...)
	}
	return len(errs) == 0, errs
}

func validateHashtags(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return []string{"hashtags must be a list of strings"}
	}
	var errs []string
	for i, item := range items {
		if _, ok := item.(string); !ok {
			errs = append(errs, fmt.Sprintf("hashtags[%d] must be a string", i))
		}
	}
	return errs
}

func validateMedia(value any, baseDir string) []string {
	media, ok := value.(map[string]any)
	if !ok {
		return []string{"media must be an object"}
	}
	var errs []string
	video, ok := media["video"].(string)
	if !ok || strings.TrimSpace(video) == "" {
		errs = append(errs, "media.video must be a non-empty string")
	} else if _, err := os.Stat(resolveMediaPath(baseDir, video)); err != nil {
		errs = append(errs, fmt.Sprintf("media.video refers to a missing file: %s", video))
	}
	if thumb, ok := media["thumbnail"]; ok && thumb != nil {
		path, ok := thumb.(string)
		if !ok || strings.TrimSpace(path) == "" {
			errs = append(errs, "media.thumbnail must be null or a non-empty string")
		} else if _, err := os.Stat(resolveMediaPath(baseDir, path)); err != nil {
			errs = append(errs, fmt.Sprintf("media.thumbnail refers to a missing file: %s", path))
		}
	}
	return errs
}

func resolveMediaPath(baseDir, ref string) string {
	if filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(baseDir, ref)
}

func validatePlatforms(value any) []string {
	platforms, ok := value.(map[string]any)
	if !ok {
		return []string{"platforms must be an object"}
	}
	var errs []string
	enabled := 0
	for name, entry := range platforms {
		settings, ok := entry.(map[string]any)
		if !ok {
			errs = append(errs, fmt.Sprintf("platforms.%s must be an object", name))
			continue
		}
		on, _ := settings["enabled"].(bool)
		if !on {
			continue
		}
		enabled++
		switch strings.ToLower(name) {
		case "reddit":
			subreddit, ok := settings["subreddit"].(string)
			if !ok || strings.TrimSpace(subreddit) == "" {
				errs = append(errs, "platforms.reddit is enabled but has no subreddit")
			}
		case "youtube":
			if value, ok := settings["visibility"]; ok {
				visibility, isString := value.(string)
				if !isString {
					errs = append(errs, fmt.Sprintf("platforms.youtube.visibility must be a string, got %v", value))
				} else if !youtubeVisibilities[visibility] {
					errs = append(errs, fmt.Sprintf("platforms.youtube.visibility %q is not one of public, unlisted, private", visibility))
				}
			}
		}
	}
	if enabled == 0 {
		errs = append(errs, "no platform is enabled")
	}
	return errs
}

func validateSchedule(value any) []string {
	schedule, ok := value.(map[string]any)
	if !ok {
		return []string{"schedule must be an object"}
	}
	if at, ok := schedule["publish_at"]; ok && at != nil {
		if text, ok := at.(string); !ok || strings.TrimSpace(text) == "" {
			return []string{"schedule.publish_at must be null or a non-empty string"}
		}
	}
	return nil
}
