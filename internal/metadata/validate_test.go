package metadata_test

import (
	"strings"
	"testing"

	"loopcast/internal/metadata"
	"loopcast/internal/testsupport"
)

func TestValidateCompleteDocument(t *testing.T) {
	doc := testsupport.SampleDocument()
	if errs := metadata.Validate(doc, false); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateReportsEveryMissingField(t *testing.T) {
	errs := metadata.Validate(&metadata.Document{}, false)
	wantPaths := []string{
		"episode.episode_id",
		"episode.episode_title",
		"episode.episode_type",
		"dopamine_core.hook_line",
		"dopamine_core.core_idea",
		"dopamine_core.reward_moment",
		"dopamine_core.punchline",
		"release.week_id",
		"release.package_ready",
	}
	if len(errs) != len(wantPaths) {
		t.Fatalf("expected %d errors, got %d: %v", len(wantPaths), len(errs), errs)
	}
	joined := strings.Join(errs, "\n")
	for _, path := range wantPaths {
		if !strings.Contains(joined, path) {
			t.Fatalf("expected error mentioning %s, got %v", path, errs)
		}
	}
}

func TestValidateSingleMissingField(t *testing.T) {
	doc := testsupport.SampleDocument()
	doc.DopamineCore.RewardMoment = ""
	errs := metadata.Validate(doc, false)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	if !strings.Contains(errs[0], "dopamine_core.reward_moment") {
		t.Fatalf("error should name the field path: %q", errs[0])
	}
}

func TestValidateEpisodeTypeEnum(t *testing.T) {
	doc := testsupport.SampleDocument()
	doc.Episode.Type = "concert"
	errs := metadata.Validate(doc, false)
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	if !strings.Contains(errs[0], "invalid episode.episode_type") {
		t.Fatalf("present-but-invalid type must be reported as invalid, not missing: %q", errs[0])
	}
}

func TestValidateRequireReady(t *testing.T) {
	doc := testsupport.SampleDocument()

	notReady := false
	doc.Release.PackageReady = &notReady
	if errs := metadata.Validate(doc, true); len(errs) != 1 {
		t.Fatalf("expected package_ready error, got %v", errs)
	}

	doc.Release.PackageReady = nil
	errs := metadata.Validate(doc, true)
	// Missing field plus the readiness requirement.
	if len(errs) != 2 {
		t.Fatalf("expected two errors for absent package_ready, got %v", errs)
	}

	ready := true
	doc.Release.PackageReady = &ready
	if errs := metadata.Validate(doc, true); len(errs) != 0 {
		t.Fatalf("expected no errors when ready, got %v", errs)
	}
}

func TestValidateAccumulates(t *testing.T) {
	doc := testsupport.SampleDocument()
	doc.Episode.ID = ""
	doc.Episode.Type = "concert"
	doc.DopamineCore.Punchline = ""
	errs := metadata.Validate(doc, false)
	if len(errs) != 3 {
		t.Fatalf("validation must accumulate, got %v", errs)
	}
}
