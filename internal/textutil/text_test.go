package textutil

import (
	"strings"
	"testing"
)

func TestCollapse(t *testing.T) {
	got := Collapse("  one   two\tthree\n\nfour ")
	if got != "one two three four" {
		t.Fatalf("unexpected collapse result: %q", got)
	}
}

func TestCollapseEmpty(t *testing.T) {
	if got := Collapse("   \t\n"); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestTruncateShortInput(t *testing.T) {
	if got := Truncate("short title", 60); got != "short title" {
		t.Fatalf("short input should pass through, got %q", got)
	}
}

func TestTruncateWordBoundary(t *testing.T) {
	got := Truncate("the quick brown fox jumps over the lazy dog", 20)
	if len(got) > 20 {
		t.Fatalf("truncated string too long: %d", len(got))
	}
	if strings.HasSuffix(got, " ") {
		t.Fatalf("trailing space after truncation: %q", got)
	}
	if got != "the quick brown" {
		t.Fatalf("unexpected truncation: %q", got)
	}
}

func TestSentenceCase(t *testing.T) {
	cases := map[string]string{
		"hello world": "Hello world",
		"Already":     "Already",
		"":            "",
		"  padded":    "Padded",
	}
	for in, want := range cases {
		if got := SentenceCase(in); got != want {
			t.Fatalf("SentenceCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFilterLengthWindow(t *testing.T) {
	in := []string{"too short", strings.Repeat("a", 45), strings.Repeat("b", 61)}
	out := FilterLengthWindow(in, 40, 60)
	if len(out) != 1 || out[0] != strings.Repeat("a", 45) {
		t.Fatalf("unexpected window filter result: %v", out)
	}
}

func TestNormalizeTag(t *testing.T) {
	cases := map[string]string{
		"Acid Trance":  "acidtrance",
		" Lo-Fi ":      "lofi",
		"!!!":          "",
		"Hydrasynth 2": "hydrasynth2",
	}
	for in, want := range cases {
		if got := NormalizeTag(in); got != want {
			t.Fatalf("NormalizeTag(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDedupeStringsPreservesOrder(t *testing.T) {
	got := DedupeStrings([]string{"b", "a", "b", "c", "a"})
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("unexpected length: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order: %v", got)
		}
	}
}
