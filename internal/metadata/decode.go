package metadata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and decodes the metadata document at path. A missing file
// yields an empty document (every field "missing"), not an error; the
// validator reports the gaps.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Document{}, nil
		}
		return nil, fmt.Errorf("read metadata: %w", err)
	}
	return Parse(data)
}

// Parse decodes a TOML metadata document. Structural type mismatches inside
// the document (a string where a table is expected, a number where a list is
// expected) degrade to absent values; only syntactically invalid TOML is an
// error.
func Parse(data []byte) (*Document, error) {
	raw := map[string]any{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse metadata: %w", err)
	}
	return decode(raw), nil
}

func decode(raw map[string]any) *Document {
	doc := &Document{}

	episode := tableValue(raw, "episode")
	doc.Episode.ID = stringValue(episode, "episode_id")
	doc.Episode.Title = stringValue(episode, "episode_title")
	doc.Episode.Type = stringValue(episode, "episode_type")

	core := tableValue(raw, "dopamine_core")
	doc.DopamineCore.HookLine = stringValue(core, "hook_line")
	doc.DopamineCore.CoreIdea = stringValue(core, "core_idea")
	doc.DopamineCore.RewardMoment = stringValue(core, "reward_moment")
	doc.DopamineCore.Punchline = stringValue(core, "punchline")

	release := tableValue(raw, "release")
	doc.Release.WeekID = stringValue(release, "week_id")
	doc.Release.PackageReady = boolValue(release, "package_ready")

	music := tableValue(raw, "music")
	doc.Music.Genres = stringListValue(music, "genres")
	doc.Music.Mood = stringListValue(music, "mood")
	doc.Music.Tempo = scalarValue(music, "tempo")
	doc.Music.Key = stringValue(music, "key")

	gear := tableValue(raw, "gear")
	doc.Gear.Synths = stringListValue(gear, "synths")
	doc.Gear.Groovebox = stringListValue(gear, "groovebox")
	doc.Gear.Looper = stringListValue(gear, "looper")
	doc.Gear.Mixer = stringListValue(gear, "mixer")
	doc.Gear.Interface = stringListValue(gear, "interface")

	platforms := tableValue(raw, "platforms")
	youtube := tableValue(platforms, "youtube")
	doc.Platforms.YouTube.Enabled = boolValue(youtube, "enabled")
	doc.Platforms.YouTube.Visibility = stringValue(youtube, "visibility")
	doc.Platforms.YouTube.PlaylistID = stringValue(youtube, "playlist_id")
	reddit := tableValue(platforms, "reddit")
	doc.Platforms.Reddit.Enabled = boolValue(reddit, "enabled")
	doc.Platforms.Reddit.Subreddit = stringValue(reddit, "subreddit")
	instagram := tableValue(platforms, "instagram")
	doc.Platforms.Instagram.Enabled = boolValue(instagram, "enabled")

	cta := tableValue(raw, "cta_intent")
	doc.CTAIntent.Primary = stringValue(cta, "primary")
	doc.CTAIntent.Secondary = stringValue(cta, "secondary")

	return doc
}

func tableValue(raw map[string]any, key string) map[string]any {
	if raw == nil {
		return nil
	}
	if table, ok := raw[key].(map[string]any); ok {
		return table
	}
	return nil
}

func stringValue(table map[string]any, key string) string {
	if table == nil {
		return ""
	}
	if s, ok := table[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// scalarValue accepts strings and numbers, rendering numbers as text. Used
// for fields like tempo that authors write either way.
func scalarValue(table map[string]any, key string) string {
	if table == nil {
		return ""
	}
	switch v := table[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func boolValue(table map[string]any, key string) *bool {
	if table == nil {
		return nil
	}
	if b, ok := table[key].(bool); ok {
		return &b
	}
	return nil
}

func stringListValue(table map[string]any, key string) []string {
	if table == nil {
		return nil
	}
	list, ok := table[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
