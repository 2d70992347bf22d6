package editorial

import (
	"strings"

	"loopcast/internal/metadata"
	"loopcast/internal/textutil"
)

// maxInstagramHashtags caps the tag line of the Instagram caption.
const maxInstagramHashtags = 10

// DeriveInstagramCaption builds the Instagram caption: hook line, core idea,
// reward moment, the locked CTA line, and a hashtag line, separated by blank
// lines. Sections with no source text are omitted.
func DeriveInstagramCaption(doc *metadata.Document, hashtags []string, cta CTAPolicy) string {
	if doc == nil {
		doc = &metadata.Document{}
	}

	hook := textutil.SentenceCase(textutil.Collapse(doc.DopamineCore.HookLine))
	body := textutil.SentenceCase(textutil.Collapse(doc.DopamineCore.CoreIdea))
	reward := textutil.SentenceCase(textutil.Collapse(doc.DopamineCore.RewardMoment))

	tags := make([]string, 0, maxInstagramHashtags)
	for _, tag := range hashtags {
		if strings.TrimSpace(tag) == "" {
			continue
		}
		tags = append(tags, tag)
		if len(tags) == maxInstagramHashtags {
			break
		}
	}

	var sections []string
	for _, section := range []string{hook, body, reward, strings.TrimSpace(cta.Instagram), strings.Join(tags, " ")} {
		if section != "" {
			sections = append(sections, section)
		}
	}
	if len(sections) == 0 {
		return ""
	}
	return strings.Join(sections, "\n\n") + "\n"
}
