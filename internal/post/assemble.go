package post

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"loopcast/internal/editorial"
	"loopcast/internal/metadata"
	"loopcast/internal/pipeline"
)

// AssembleInput carries everything Assemble needs beyond the metadata
// document. Video and Thumbnail are run-relative paths; Thumbnail may be
// empty when the run produced none.
type AssembleInput struct {
	RunDir            string
	RunID             string
	Video             string
	Thumbnail         string
	Window            string
	FallbackSubreddit string
}

// Assemble derives all platform text from the metadata document and builds
// the post package. The main video must exist under the run directory; a
// missing video is a fatal precondition, unlike the thumbnail which is
// simply dropped when absent.
func Assemble(doc *metadata.Document, in AssembleInput) (*Package, error) {
	videoPath := filepath.Join(in.RunDir, in.Video)
	if _, err := os.Stat(videoPath); err != nil {
		return nil, pipeline.Wrap(pipeline.ErrPrecondition, "post", "assemble", fmt.Sprintf("main video missing at %s", videoPath), err)
	}
	var thumbnail *string
	if in.Thumbnail != "" {
		if _, err := os.Stat(filepath.Join(in.RunDir, in.Thumbnail)); err == nil {
			ref := in.Thumbnail
			thumbnail = &ref
		}
	}

	description := editorial.DeriveDescription(doc)
	if strings.TrimSpace(description) == "" {
		return nil, pipeline.Wrap(pipeline.ErrPrecondition, "post", "assemble", "derived description is empty", nil)
	}

	id := strings.TrimSpace(doc.Episode.ID)
	if id == "" {
		id = "package_" + in.RunID
	}

	pkg := &Package{
		ID:          id,
		Title:       packageTitle(doc),
		Description: description,
		Hashtags:    editorial.DeriveHashtags(doc),
		Media: Media{
			Video:     in.Video,
			Thumbnail: thumbnail,
		},
		Platforms: editorial.DerivePlatforms(doc, in.FallbackSubreddit),
		Schedule: Schedule{
			PublishAt: nil,
			Window:    in.Window,
		},
	}
	return pkg, nil
}

// packageTitle prefers the explicit episode title and otherwise rebuilds a
// presentable one from the episode id.
func packageTitle(doc *metadata.Document) string {
	if title := strings.TrimSpace(doc.Episode.Title); title != "" {
		return title
	}
	return titleFromID(doc.Episode.ID)
}

func titleFromID(id string) string {
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range id {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return "Untitled"
	}
	return cases.Title(language.Und).String(title)
}
