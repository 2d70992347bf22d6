// Package textutil provides text normalization helpers for editorial
// derivation: whitespace collapsing, word-boundary truncation, sentence
// casing, and hashtag normalization.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// Collapse trims the string and folds internal whitespace runs to single spaces.
func Collapse(s string) string {
	return whitespacePattern.ReplaceAllString(strings.TrimSpace(s), " ")
}

// Truncate collapses whitespace and shortens s to at most maxLen characters
// (runes, not bytes), cutting at a word boundary when one exists inside the
// limit.
func Truncate(s string, maxLen int) string {
	s = Collapse(s)
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	cut := strings.TrimRight(string(runes[:maxLen]), " ")
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = strings.TrimRight(cut[:idx], " ")
	}
	return cut
}

// SentenceCase upper-cases the first rune of the trimmed string.
func SentenceCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// FilterLengthWindow collapses each candidate and keeps those whose rune
// count falls within [minLen, maxLen] inclusive, preserving order.
func FilterLengthWindow(candidates []string, minLen, maxLen int) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		t := Collapse(c)
		if n := utf8.RuneCountInString(t); n >= minLen && n <= maxLen {
			out = append(out, t)
		}
	}
	return out
}

// NormalizeTag lowercases the value, trims whitespace, and strips every
// non-alphanumeric character. Returns "" when nothing survives.
func NormalizeTag(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	var b strings.Builder
	for _, r := range value {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DedupeStrings removes duplicates preserving first-seen order.
func DedupeStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
