package editorial

import (
	"strings"

	"loopcast/internal/metadata"
	"loopcast/internal/textutil"
)

// descriptionClosing is the fixed call-to-action line ending every derived
// description.
const descriptionClosing = "Recorded live in one take. New episode every week."

// DeriveDescription builds the long-form description: one sentence block
// from the dopamine core, one block listing musical character and gear, and
// the fixed closing line. Blocks are joined by blank lines; empty blocks are
// omitted entirely.
func DeriveDescription(doc *metadata.Document) string {
	if doc == nil {
		doc = &metadata.Document{}
	}

	blocks := make([]string, 0, 3)
	if core := coreBlock(doc.DopamineCore); core != "" {
		blocks = append(blocks, core)
	}
	if details := detailBlock(doc); details != "" {
		blocks = append(blocks, details)
	}
	blocks = append(blocks, descriptionClosing)

	return strings.Join(blocks, "\n\n")
}

func coreBlock(core metadata.DopamineCore) string {
	fields := []string{core.HookLine, core.CoreIdea, core.RewardMoment, core.Punchline}
	sentences := make([]string, 0, len(fields))
	for _, field := range fields {
		s := textutil.SentenceCase(textutil.Collapse(field))
		if s == "" {
			continue
		}
		if !strings.HasSuffix(s, ".") && !strings.HasSuffix(s, "!") && !strings.HasSuffix(s, "?") {
			s += "."
		}
		sentences = append(sentences, s)
	}
	return strings.Join(sentences, " ")
}

func detailBlock(doc *metadata.Document) string {
	var lines []string

	if len(doc.Music.Genres) > 0 {
		lines = append(lines, "Genre: "+strings.Join(doc.Music.Genres, ", "))
	}
	if len(doc.Music.Mood) > 0 {
		lines = append(lines, "Mood: "+strings.Join(doc.Music.Mood, ", "))
	}
	if doc.Music.Tempo != "" {
		lines = append(lines, "Tempo: "+doc.Music.Tempo+" BPM")
	}
	if doc.Music.Key != "" {
		lines = append(lines, "Key: "+doc.Music.Key)
	}

	for _, category := range doc.Gear.Categories() {
		if len(category.Items) == 0 {
			continue
		}
		lines = append(lines, category.Name+": "+strings.Join(category.Items, ", "))
	}

	return strings.Join(lines, "\n")
}
