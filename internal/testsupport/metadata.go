package testsupport

import (
	"loopcast/internal/metadata"
)

// SampleDocument returns a fully populated metadata document that passes
// semantic validation. Callers mutate the returned value to exercise
// individual failure paths.
func SampleDocument() *metadata.Document {
	ready := true
	ytEnabled := true
	redditEnabled := true
	return &metadata.Document{
		Episode: metadata.Episode{
			ID:    "DS-014",
			Title: "Acid lines against a broken clock",
			Type:  "performance",
		},
		DopamineCore: metadata.DopamineCore{
			HookLine:     "one synth fights the whole groove tonight",
			CoreIdea:     "every layer is looped live with no backing track",
			RewardMoment: "the filter finally opens and the room lifts",
			Punchline:    "the clock was wrong the entire time",
		},
		Release: metadata.Release{
			WeekID:       "2025-W01",
			PackageReady: &ready,
		},
		Music: metadata.Music{
			Genres: []string{"Acid Trance", "Electro"},
			Mood:   []string{"Hypnotic", "Driving", "Dark"},
			Tempo:  "132",
			Key:    "F minor",
		},
		Gear: metadata.Gear{
			Synths:    []string{"Hydrasynth", "MatrixBrute"},
			Groovebox: []string{"Digitakt"},
			Looper:    []string{"RC-505"},
		},
		Platforms: metadata.Platforms{
			YouTube: metadata.YouTubeIntent{Enabled: &ytEnabled, Visibility: "unlisted"},
			Reddit:  metadata.RedditIntent{Enabled: &redditEnabled, Subreddit: "dawless"},
		},
		CTAIntent: metadata.CTAIntent{
			Primary:   "youtube_full",
			Secondary: "none",
		},
	}
}

// SampleMetadataTOML is a TOML rendition of SampleDocument for tests that
// exercise the boundary decode.
const SampleMetadataTOML = `
[episode]
episode_id = "DS-014"
episode_title = "Acid lines against a broken clock"
episode_type = "performance"

[dopamine_core]
hook_line = "one synth fights the whole groove tonight"
core_idea = "every layer is looped live with no backing track"
reward_moment = "the filter finally opens and the room lifts"
punchline = "the clock was wrong the entire time"

[release]
week_id = "2025-W01"
package_ready = true

[music]
genres = ["Acid Trance", "Electro"]
mood = ["Hypnotic", "Driving", "Dark"]
tempo = 132
key = "F minor"

[gear]
synths = ["Hydrasynth", "MatrixBrute"]
groovebox = ["Digitakt"]
looper = ["RC-505"]

[platforms.youtube]
enabled = true
visibility = "unlisted"

[platforms.reddit]
enabled = true
subreddit = "dawless"

[cta_intent]
primary = "youtube_full"
secondary = "none"
`
