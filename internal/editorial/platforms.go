package editorial

import "loopcast/internal/metadata"

// YouTube visibility values accepted by the package schema.
const (
	VisibilityPublic   = "public"
	VisibilityUnlisted = "unlisted"
	VisibilityPrivate  = "private"
)

// YouTubeConfig is the resolved YouTube platform entry of a post package.
type YouTubeConfig struct {
	Enabled    bool   `json:"enabled"`
	Visibility string `json:"visibility"`
	PlaylistID string `json:"playlist_id,omitempty"`
}

// RedditConfig is the resolved Reddit platform entry. TitleOverride is
// always null at derivation time; it exists as a manual hook for a human
// editing the package file between generation and dispatch.
type RedditConfig struct {
	Enabled       bool    `json:"enabled"`
	Subreddit     string  `json:"subreddit"`
	TitleOverride *string `json:"title_override"`
}

// InstagramConfig is the resolved Instagram platform entry.
type InstagramConfig struct {
	Enabled bool `json:"enabled"`
}

// PlatformSet holds the resolved configuration for every known platform.
type PlatformSet struct {
	YouTube   YouTubeConfig   `json:"youtube"`
	Reddit    RedditConfig    `json:"reddit"`
	Instagram InstagramConfig `json:"instagram"`
}

// DerivePlatforms resolves the per-platform configuration from authored
// metadata with explicit defaults: youtube enabled with public visibility,
// reddit and instagram disabled. fallbackSubreddit fills reddit.subreddit
// when the metadata names none.
func DerivePlatforms(doc *metadata.Document, fallbackSubreddit string) PlatformSet {
	if doc == nil {
		doc = &metadata.Document{}
	}

	set := PlatformSet{
		YouTube: YouTubeConfig{
			Enabled:    boolOr(doc.Platforms.YouTube.Enabled, true),
			Visibility: visibilityOr(doc.Platforms.YouTube.Visibility, VisibilityPublic),
			PlaylistID: doc.Platforms.YouTube.PlaylistID,
		},
		Reddit: RedditConfig{
			Enabled:   boolOr(doc.Platforms.Reddit.Enabled, false),
			Subreddit: doc.Platforms.Reddit.Subreddit,
		},
		Instagram: InstagramConfig{
			Enabled: boolOr(doc.Platforms.Instagram.Enabled, false),
		},
	}
	if set.Reddit.Subreddit == "" {
		set.Reddit.Subreddit = fallbackSubreddit
	}
	return set
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

func visibilityOr(value, fallback string) string {
	switch value {
	case VisibilityPublic, VisibilityUnlisted, VisibilityPrivate:
		return value
	default:
		return fallback
	}
}
