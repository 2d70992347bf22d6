package outbox

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"loopcast/internal/pipeline"
	"loopcast/internal/post"
)

// SubredditRule describes how one community expects self-promotion to be
// posted. Mode is "post", "weekly_thread_comment" or "community_post".
type SubredditRule struct {
	Name      string
	Mode      string
	TitleHint string
	Notes     string
}

// defaultSubredditRules is the curated suggestion list for the Reddit
// posting document. Order matters: the first entries are the strongest fit.
var defaultSubredditRules = []SubredditRule{
	{
		Name:      "synthesizers",
		Mode:      "weekly_thread_comment",
		TitleHint: "Live synth performance, layered on hardware only",
		Notes:     "Prefer the weekly self-promo thread when one exists. Keep it discussion and tech first.",
	},
	{
		Name:      "hydrasynth",
		Mode:      "post",
		TitleHint: "Hydrasynth live performance with macro and mod-matrix movement",
		Notes:     "Focus on patch and performance details: macros, mod matrix, aftertouch, arp sync.",
	},
	{
		Name:      "Elektron",
		Mode:      "post",
		TitleHint: "Digitakt driving the groove, pattern performance and fills, live",
		Notes:     "Focus on the sequencer workflow: clock, patterns, fills, conditional trigs.",
	},
	{
		Name:      "loopartists",
		Mode:      "post",
		TitleHint: "Live looping layers, performance workflow on the looper",
		Notes:     "Focus on looping craft: overdub order, transitions, performance constraints.",
	},
	{
		Name:      "dawless",
		Mode:      "post",
		TitleHint: "Dawless jam, no backing track, everything played live",
		Notes:     "Emphasize no DAW, no backing track, and the sync and routing setup.",
	},
	{
		Name:      "livelooping",
		Mode:      "post",
		TitleHint: "Weekly live looping episode, one take",
		Notes:     "Slightly more personal is fine here, still keep the Reddit register.",
	},
}

const maxSubredditSuggestions = 6

// gearLinePrefixes are the category labels the description deriver emits.
// The posting document re-extracts gear from the description so it works on
// any package file, including hand-edited ones.
var gearLinePrefixes = []string{"Synths:", "Groovebox:", "Looper:", "Mixer:", "Interface:"}

// WriteRedditOutbox writes the full Reddit posting document to
// <runDir>/outbox/reddit.md, replacing the bare body written at generation
// time, and returns its path.
func WriteRedditOutbox(pkg *post.Package, runDir string, now time.Time) (string, error) {
	dir := Dir(runDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", pipeline.Wrap(pipeline.ErrExternal, "outbox", "reddit", "create outbox directory", err)
	}
	path := filepath.Join(dir, redditFile)
	if err := os.WriteFile(path, []byte(redditDocument(pkg, runDir, now)), 0o644); err != nil {
		return "", pipeline.Wrap(pipeline.ErrExternal, "outbox", "reddit", "write reddit.md", err)
	}
	return path, nil
}

func redditDocument(pkg *post.Package, runDir string, now time.Time) string {
	var md []string
	md = append(md,
		"# Reddit Posting Outbox",
		"",
		fmt.Sprintf("_Generated: %s_", now.Format("2006-01-02 15:04:05")),
		"",
		"## Primary intent",
		"Original live electronic music performance",
		"No repost · No AI · No ads",
		"",
		"---",
		"",
		"## Suggested subreddits (choose 1-2 max)",
		"",
	)

	rules := defaultSubredditRules
	if len(rules) > maxSubredditSuggestions {
		rules = rules[:maxSubredditSuggestions]
	}
	for _, rule := range rules {
		md = append(md,
			fmt.Sprintf("### r/%s", rule.Name),
			fmt.Sprintf("**Mode:** %s", rule.Mode),
			fmt.Sprintf("**Title suggestion:** %s", rule.TitleHint),
			fmt.Sprintf("**Notes:** %s", rule.Notes),
			"",
		)
	}

	md = append(md,
		"---",
		"",
		"## Post body (copy/paste)",
		"",
		postBody(pkg),
		"",
		"---",
		"",
		"## Media",
	)
	if pkg.Media.Video != "" {
		md = append(md, fmt.Sprintf("Video file: `%s`", pkg.Media.Video))
		if abs, err := filepath.Abs(filepath.Join(runDir, pkg.Media.Video)); err == nil {
			md = append(md, fmt.Sprintf("Absolute path (for your reference): `%s`", abs))
		}
	} else {
		md = append(md, "Video file: (missing in package)")
	}
	md = append(md,
		"",
		"---",
		"",
		"## Reminder",
		"- Do NOT crosspost",
		"- Post manually",
		"- Engage in comments if people reply",
		"",
	)
	return strings.Join(md, "\n")
}

// postBody builds the copy/paste body: short, human, tech first, no
// hard sell.
func postBody(pkg *post.Package) string {
	var lines []string
	lines = append(lines, "Original live performance (no repost, no ads).")

	if excerpt := descriptionExcerpt(pkg.Description, 3); len(excerpt) > 0 {
		lines = append(lines, "")
		lines = append(lines, excerpt...)
	}

	if gear := gearFromDescription(pkg.Description); len(gear) > 0 {
		lines = append(lines, "", "Gear used:")
		for _, item := range gear {
			lines = append(lines, "- "+item)
		}
	}

	if tags := plainTags(pkg.Hashtags, 10); len(tags) > 0 {
		lines = append(lines, "", "Tags:", strings.Join(tags, ", "))
	}

	lines = append(lines, "", "Happy to answer questions about the patch / workflow.")
	return strings.Join(lines, "\n")
}

func descriptionExcerpt(description string, max int) []string {
	var excerpt []string
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		excerpt = append(excerpt, line)
		if len(excerpt) == max {
			break
		}
	}
	return excerpt
}

// gearFromDescription pulls the gear items back out of the description's
// category lines, deduplicated and in document order.
func gearFromDescription(description string) []string {
	var gear []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(line)
		for _, prefix := range gearLinePrefixes {
			if !strings.HasPrefix(line, prefix) {
				continue
			}
			for _, item := range strings.Split(strings.TrimPrefix(line, prefix), ",") {
				item = strings.TrimSpace(item)
				if item == "" || seen[strings.ToLower(item)] {
					continue
				}
				seen[strings.ToLower(item)] = true
				gear = append(gear, item)
			}
		}
	}
	if len(gear) > 8 {
		gear = gear[:8]
	}
	return gear
}

func plainTags(hashtags []string, max int) []string {
	var tags []string
	for _, tag := range hashtags {
		tag = strings.TrimPrefix(tag, "#")
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
		if len(tags) == max {
			break
		}
	}
	return tags
}
