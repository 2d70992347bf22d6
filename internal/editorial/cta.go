package editorial

import "loopcast/internal/metadata"

// CTA policy names. Primary intent is hard-locked to PolicyYouTubeFull: the
// deriver coerces any other authored value instead of erroring, so a typo in
// the metadata can never change the locked call-to-action.
const (
	PolicyYouTubeFull     = "youtube_full"
	SecondaryComment      = "optional_comment"
	SecondaryNone         = "none"
	canonicalCTALine      = "Full performance on YouTube."
	canonicalCommentPoint = "Curious what you'd tweak next?"
)

// CTAPolicy holds the locked, platform-specific call-to-action strings.
// Reddit never carries a CTA line: reddit tone stays promotion-free.
type CTAPolicy struct {
	YouTube             string
	Instagram           string
	TikTokPinnedComment string
	CommentPrompt       string
}

// ResolveCTA resolves the call-to-action policy from the authored intent.
// The primary intent always behaves as the canonical youtube_full policy;
// the secondary intent is optional_comment or none, defaulting to none on
// any other value.
func ResolveCTA(doc *metadata.Document) CTAPolicy {
	policy := CTAPolicy{
		YouTube:             canonicalCTALine,
		Instagram:           canonicalCTALine,
		TikTokPinnedComment: canonicalCTALine,
	}

	if doc != nil && doc.CTAIntent.Secondary == SecondaryComment {
		policy.CommentPrompt = canonicalCommentPoint
	}
	return policy
}
