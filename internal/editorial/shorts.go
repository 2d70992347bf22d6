package editorial

import (
	"loopcast/internal/metadata"
	"loopcast/internal/textutil"
)

// Short title constraints: candidates must land in the 40-60 character
// window and at most two survive.
const (
	shortTitleMin = 40
	shortTitleMax = 60
	shortTitleCap = 2
)

// DeriveShortTitles produces up to two YouTube Shorts title candidates in
// the 40-60 character window. Base candidates come from the hook line, the
// reward moment, and composed phrases; each is truncated to 60 characters at
// a word boundary. When fewer than two candidates land in the window,
// tighter fallback variants built from the episode title and hook line are
// filtered in. The result is deduplicated preserving order.
func DeriveShortTitles(doc *metadata.Document) []string {
	if doc == nil {
		doc = &metadata.Document{}
	}

	hook := textutil.Collapse(doc.DopamineCore.HookLine)
	reward := textutil.Collapse(doc.DopamineCore.RewardMoment)
	punch := textutil.Collapse(doc.DopamineCore.Punchline)
	title := textutil.Collapse(doc.Episode.Title)

	raw := []string{hook, reward}
	if title != "" {
		raw = append(raw, title+" — Live balance test")
	}
	if reward != "" && punch != "" {
		raw = append(raw, reward+" — "+punch)
	}
	if hook != "" {
		raw = append(raw, hook+" — live")
	}

	candidates := make([]string, 0, len(raw))
	for _, c := range raw {
		if c == "" {
			continue
		}
		candidates = append(candidates, textutil.Truncate(c, shortTitleMax))
	}

	good := textutil.FilterLengthWindow(candidates, shortTitleMin, shortTitleMax)

	if len(good) < shortTitleCap {
		var variants []string
		if title != "" {
			variants = append(variants,
				textutil.Truncate(title+" — until it breaks", shortTitleMax),
				textutil.Truncate(title+" — tension snaps live", shortTitleMax))
		}
		if hook != "" && len(hook) < shortTitleMin {
			variants = append(variants, textutil.Truncate(hook+" (live)", shortTitleMax))
		}
		good = append(good, textutil.FilterLengthWindow(variants, shortTitleMin, shortTitleMax)...)
	}

	good = textutil.DedupeStrings(good)
	if len(good) > shortTitleCap {
		good = good[:shortTitleCap]
	}
	return good
}
