// Package metadata models the authored episode metadata document and its
// semantic validation. The document is decoded once at the boundary into a
// typed structure; wrong-typed values at any path are treated as absent
// rather than faulting, so downstream components never see a malformed shape.
package metadata

// Document is the typed form of one episode's authored metadata.
type Document struct {
	Episode      Episode
	DopamineCore DopamineCore
	Release      Release
	Music        Music
	Gear         Gear
	Platforms    Platforms
	CTAIntent    CTAIntent
}

// Episode identifies the authored content unit.
type Episode struct {
	ID    string
	Title string
	Type  string
}

// DopamineCore carries the four editorial hook fields every derivation
// builds from.
type DopamineCore struct {
	HookLine     string
	CoreIdea     string
	RewardMoment string
	Punchline    string
}

// Release gates the package to its intended ISO week. PackageReady is nil
// unless the source document carried a genuine boolean.
type Release struct {
	WeekID       string
	PackageReady *bool
}

// Music describes the episode's musical character.
type Music struct {
	Genres []string
	Mood   []string
	Tempo  string
	Key    string
}

// Gear lists the instruments used, by fixed category.
type Gear struct {
	Synths    []string
	Groovebox []string
	Looper    []string
	Mixer     []string
	Interface []string
}

// Categories returns the gear lists in the fixed presentation order.
func (g Gear) Categories() []GearCategory {
	return []GearCategory{
		{Name: "Synths", Items: g.Synths},
		{Name: "Groovebox", Items: g.Groovebox},
		{Name: "Looper", Items: g.Looper},
		{Name: "Mixer", Items: g.Mixer},
		{Name: "Interface", Items: g.Interface},
	}
}

// GearCategory pairs a display name with its item list.
type GearCategory struct {
	Name  string
	Items []string
}

// Platforms carries the authored per-platform switches. Enabled flags are
// nil when unset so the deriver can apply per-platform defaults.
type Platforms struct {
	YouTube   YouTubeIntent
	Reddit    RedditIntent
	Instagram InstagramIntent
}

// YouTubeIntent holds the authored YouTube settings.
type YouTubeIntent struct {
	Enabled    *bool
	Visibility string
	PlaylistID string
}

// RedditIntent holds the authored Reddit settings.
type RedditIntent struct {
	Enabled   *bool
	Subreddit string
}

// InstagramIntent holds the authored Instagram settings.
type InstagramIntent struct {
	Enabled *bool
}

// CTAIntent holds the authored call-to-action preference. The deriver locks
// primary to the canonical policy regardless of this value.
type CTAIntent struct {
	Primary   string
	Secondary string
}
