package runlog

import (
	"context"
	"testing"

	"loopcast/internal/dispatch"
	"loopcast/internal/scheduling"
	"loopcast/internal/testsupport"
)

func openStore(t *testing.T) *Store {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	store, err := Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndListRuns(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if err := store.RecordRun(ctx, "20250107_130000", "DS-014", "Acid lines against a broken clock"); err != nil {
		t.Fatalf("record run: %v", err)
	}
	if err := store.RecordRun(ctx, "20250114_130000", "DS-015", "Second episode"); err != nil {
		t.Fatalf("record run: %v", err)
	}

	records, err := store.ListRuns(ctx)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(records))
	}
	if records[0].RunID != "20250107_130000" || records[1].RunID != "20250114_130000" {
		t.Fatalf("unexpected order %v", records)
	}
	if records[0].PackageID != "DS-014" {
		t.Fatalf("unexpected package id %q", records[0].PackageID)
	}
	if records[0].Dispatches != 0 || records[0].LastMode != "" {
		t.Fatal("fresh run must have no dispatch history")
	}
	if records[0].CreatedAt.IsZero() {
		t.Fatal("expected created_at to be parsed")
	}
}

func TestRecordRunIsIdempotentPerRunID(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if err := store.RecordRun(ctx, "20250107_130000", "DS-014", "First title"); err != nil {
		t.Fatalf("record run: %v", err)
	}
	if err := store.RecordRun(ctx, "20250107_130000", "DS-014", "Edited title"); err != nil {
		t.Fatalf("re-record run: %v", err)
	}

	records, err := store.ListRuns(ctx)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 run, got %d", len(records))
	}
	if records[0].Title != "Edited title" {
		t.Fatalf("expected updated title, got %q", records[0].Title)
	}
}

func TestRecordDispatchOutcomes(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if err := store.RecordRun(ctx, "20250107_130000", "DS-014", "Episode"); err != nil {
		t.Fatalf("record run: %v", err)
	}

	dryRun := &dispatch.Result{
		RequestID: "req-1",
		PackageID: "DS-014",
		Platforms: []dispatch.PlatformResult{
			{Platform: "youtube", Status: dispatch.StatusPreviewed},
			{Platform: "reddit", Status: dispatch.StatusSkippedDisabled},
		},
	}
	if err := store.RecordDispatch(ctx, "20250107_130000", dispatch.Options{Window: "full"}, dryRun); err != nil {
		t.Fatalf("record dry-run dispatch: %v", err)
	}

	denied := &dispatch.Result{
		RequestID: "req-2",
		PackageID: "DS-014",
		Denied:    &scheduling.Decision{Reason: scheduling.ReasonWrongWeekday},
	}
	if err := store.RecordDispatch(ctx, "20250107_130000", dispatch.Options{Window: "full", Real: true}, denied); err != nil {
		t.Fatalf("record denied dispatch: %v", err)
	}

	records, err := store.ListRuns(ctx)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if records[0].Dispatches != 2 {
		t.Fatalf("expected 2 dispatches, got %d", records[0].Dispatches)
	}
	if records[0].LastMode != "real" {
		t.Fatalf("expected last mode real, got %q", records[0].LastMode)
	}
	if records[0].LastOutcome != "denied: wrong_weekday" {
		t.Fatalf("unexpected outcome %q", records[0].LastOutcome)
	}
}
