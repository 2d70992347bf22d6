package editorial

import (
	"strings"

	"loopcast/internal/metadata"
	"loopcast/internal/textutil"
)

// DeriveRedditBody builds the Reddit markdown body. Reddit posting stays
// manual and promotion-free: the body never carries a CTA line, only an
// optional closing question when the secondary intent asked for one.
func DeriveRedditBody(doc *metadata.Document, cta CTAPolicy) string {
	if doc == nil {
		doc = &metadata.Document{}
	}

	episodeID := doc.Episode.ID
	if episodeID == "" {
		episodeID = "DS-???"
	}
	episodeTitle := doc.Episode.Title
	if episodeTitle == "" {
		episodeTitle = "Untitled"
	}

	hook := textutil.SentenceCase(textutil.Collapse(doc.DopamineCore.HookLine))
	core := textutil.SentenceCase(textutil.Collapse(doc.DopamineCore.CoreIdea))
	reward := textutil.SentenceCase(textutil.Collapse(doc.DopamineCore.RewardMoment))
	punch := textutil.SentenceCase(textutil.Collapse(doc.DopamineCore.Punchline))

	var md []string
	md = append(md, "## Episode: "+episodeID+" — "+episodeTitle)
	md = append(md, "")
	md = append(md, "**Context**")
	if hook != "" {
		md = append(md, hook)
	}
	if core != "" {
		md = append(md, core)
	}
	md = append(md, "")
	md = append(md, "**What happens**")
	if reward != "" {
		md = append(md, reward)
	}
	if punch != "" {
		md = append(md, punch)
	}
	md = append(md, "")

	if gearLine := flattenGear(doc.Gear); gearLine != "" {
		md = append(md, "**Gear**")
		md = append(md, gearLine)
		md = append(md, "")
	}

	md = append(md, "**Suggested approach (pick 1-2 subreddits max)**")
	md = append(md, "- r/synthesizers → weekly self-promo thread comment")
	md = append(md, "- r/dawless → performance / live constraints angle")
	md = append(md, "- r/livelooping → looping workflow angle (if relevant)")
	md = append(md, "")
	md = append(md, "_No emojis. No crosspost dump. Keep it technical + human._")

	if cta.CommentPrompt != "" {
		md = append(md, "")
		md = append(md, "**Optional closing question**")
		md = append(md, cta.CommentPrompt)
	}

	return strings.TrimSpace(strings.Join(md, "\n")) + "\n"
}

// flattenGear joins all gear items across categories in the fixed category
// order, deduplicated, separated by the interpunct the outbox format uses.
func flattenGear(gear metadata.Gear) string {
	var items []string
	for _, category := range gear.Categories() {
		for _, item := range category.Items {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
	}
	return strings.Join(textutil.DedupeStrings(items), " · ")
}
