package editorial

import (
	"loopcast/internal/metadata"
	"loopcast/internal/textutil"
)

// tiktokCaptionMax is the caption length budget; TikTok posting stays manual
// via the outbox, so the caption is kept very short.
const tiktokCaptionMax = 80

// tiktokFallbackCaption is used when the metadata offers neither a punchline
// nor a reward moment.
const tiktokFallbackCaption = "Live performance."

// DeriveTikTokCaption prefers the punchline, then the reward moment, then
// the fixed fallback, truncated at a word boundary.
func DeriveTikTokCaption(doc *metadata.Document) string {
	if doc == nil {
		doc = &metadata.Document{}
	}

	base := textutil.Collapse(doc.DopamineCore.Punchline)
	if base == "" {
		base = textutil.Collapse(doc.DopamineCore.RewardMoment)
	}
	if base == "" {
		base = tiktokFallbackCaption
	}
	return textutil.Truncate(base, tiktokCaptionMax)
}
