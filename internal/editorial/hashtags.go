package editorial

import (
	"loopcast/internal/metadata"
	"loopcast/internal/textutil"
)

// maxHashtags is the hard cap on derived hashtags.
const maxHashtags = 12

// maxMoodTags limits how many mood values contribute tags.
const maxMoodTags = 2

// fixedHashtags lead every derived tag list.
var fixedHashtags = []string{"#livelooping", "#dawless"}

// DeriveHashtags produces the package hashtag list: the fixed leading tags,
// one normalized tag per genre, then up to two normalized mood tags.
// Duplicates are removed preserving first-seen order; the result is capped
// at 12 entries, each matching ^#[a-z0-9]+$.
func DeriveHashtags(doc *metadata.Document) []string {
	if doc == nil {
		doc = &metadata.Document{}
	}

	tags := make([]string, 0, maxHashtags)
	tags = append(tags, fixedHashtags...)

	for _, genre := range doc.Music.Genres {
		if normalized := textutil.NormalizeTag(genre); normalized != "" {
			tags = append(tags, "#"+normalized)
		}
	}

	moods := 0
	for _, mood := range doc.Music.Mood {
		if moods >= maxMoodTags {
			break
		}
		if normalized := textutil.NormalizeTag(mood); normalized != "" {
			tags = append(tags, "#"+normalized)
			moods++
		}
	}

	tags = textutil.DedupeStrings(tags)
	if len(tags) > maxHashtags {
		tags = tags[:maxHashtags]
	}
	return tags
}
