package editorial

import "loopcast/internal/metadata"

// Bundle holds the derived, per-platform editorial text. It is ephemeral:
// written out as plain-text outbox artifacts, never part of the post package
// schema, and never read back by the pipeline.
type Bundle struct {
	CTA                 CTAPolicy
	ShortTitles         []string
	InstagramCaption    string
	RedditBody          string
	TikTokCaption       string
	TikTokPinnedComment string
}

// DeriveBundle assembles the full editorial bundle from the metadata and the
// already-derived hashtag list.
func DeriveBundle(doc *metadata.Document, hashtags []string) Bundle {
	cta := ResolveCTA(doc)
	return Bundle{
		CTA:                 cta,
		ShortTitles:         DeriveShortTitles(doc),
		InstagramCaption:    DeriveInstagramCaption(doc, hashtags, cta),
		RedditBody:          DeriveRedditBody(doc, cta),
		TikTokCaption:       DeriveTikTokCaption(doc),
		TikTokPinnedComment: cta.TikTokPinnedComment,
	}
}
