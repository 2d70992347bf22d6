package pipeline_test

import (
	"errors"
	"strings"
	"testing"

	"loopcast/internal/pipeline"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := pipeline.Wrap(pipeline.ErrExternal, "dispatch", "youtube", "upload failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, pipeline.ErrExternal) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"dispatch", "youtube", "upload failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestFatalClassification(t *testing.T) {
	fatal := pipeline.Wrap(pipeline.ErrPrecondition, "assemble", "media", "video missing", nil)
	if !pipeline.Fatal(fatal) {
		t.Fatalf("precondition failures must be fatal: %v", fatal)
	}
	soft := pipeline.Wrap(pipeline.ErrSchema, "validate", "", "bad package", nil)
	if pipeline.Fatal(soft) {
		t.Fatalf("schema failures must not be fatal: %v", soft)
	}
}

func TestValidationList(t *testing.T) {
	if err := pipeline.ValidationList(pipeline.ErrMetadata, "metadata", nil); err != nil {
		t.Fatalf("empty list must yield nil, got %v", err)
	}

	err := pipeline.ValidationList(pipeline.ErrSchema, "post package", []string{"first", "second"})
	if !errors.Is(err, pipeline.ErrSchema) {
		t.Fatalf("expected schema marker, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "first") || !strings.Contains(msg, "second") {
		t.Fatalf("expected every violation in message, got %q", msg)
	}
	if !strings.Contains(msg, "2 violation(s)") {
		t.Fatalf("expected violation count, got %q", msg)
	}
}
