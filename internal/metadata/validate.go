package metadata

import (
	"fmt"
	"strings"
)

// EpisodeTypes is the fixed set of accepted episode.episode_type values.
var EpisodeTypes = []string{"performance", "jam", "breakdown", "teaser"}

// Validate checks the document's semantic invariants and returns every
// violation found, in a stable order. It never short-circuits. When
// requireReady is true, release.package_ready must be exactly boolean true.
func Validate(doc *Document, requireReady bool) []string {
	if doc == nil {
		doc = &Document{}
	}

	var errs []string
	missing := func(path string, present bool) {
		if !present {
			errs = append(errs, fmt.Sprintf("missing required field: %s", path))
		}
	}

	missing("episode.episode_id", doc.Episode.ID != "")
	missing("episode.episode_title", doc.Episode.Title != "")
	missing("episode.episode_type", doc.Episode.Type != "")
	missing("dopamine_core.hook_line", doc.DopamineCore.HookLine != "")
	missing("dopamine_core.core_idea", doc.DopamineCore.CoreIdea != "")
	missing("dopamine_core.reward_moment", doc.DopamineCore.RewardMoment != "")
	missing("dopamine_core.punchline", doc.DopamineCore.Punchline != "")
	missing("release.week_id", doc.Release.WeekID != "")
	missing("release.package_ready", doc.Release.PackageReady != nil)

	if doc.Episode.Type != "" && !validEpisodeType(doc.Episode.Type) {
		errs = append(errs, fmt.Sprintf(
			"invalid episode.episode_type %q (must be one of: %s)",
			doc.Episode.Type, strings.Join(EpisodeTypes, ", ")))
	}

	if requireReady {
		if doc.Release.PackageReady == nil || !*doc.Release.PackageReady {
			errs = append(errs, "release.package_ready must be exactly true for a real run")
		}
	}

	return errs
}

func validEpisodeType(value string) bool {
	for _, t := range EpisodeTypes {
		if value == t {
			return true
		}
	}
	return false
}
