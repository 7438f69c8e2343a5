package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// stopWords are dropped by Terms. Short words (<= 2 runes) are already
// excluded by length, so only longer function words are listed.
var stopWords = map[string]struct{}{
	"all": {}, "also": {}, "and": {}, "any": {}, "are": {}, "been": {},
	"but": {}, "can": {}, "for": {}, "from": {}, "had": {}, "has": {},
	"have": {}, "into": {}, "its": {}, "our": {}, "per": {}, "that": {},
	"the": {}, "their": {}, "them": {}, "then": {}, "this": {}, "via": {},
	"was": {}, "were": {}, "with": {}, "you": {}, "your": {},
}

// Fields lowercases text and splits it on whitespace.
func Fields(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// RuneLen returns the length of s in characters.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Terms returns normalized words of text in order of occurrence: lowercased,
// stripped of surrounding punctuation, longer than minLen and not a stop word.
func Terms(text string, minLen int) []string {
	var out []string
	for _, w := range Fields(text) {
		w = strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if RuneLen(w) <= minLen {
			continue
		}
		if _, ok := stopWords[w]; ok {
			continue
		}
		out = append(out, w)
	}
	return out
}

// TermSet is Terms deduplicated into a set.
func TermSet(text string, minLen int) map[string]struct{} {
	set := map[string]struct{}{}
	for _, w := range Terms(text, minLen) {
		set[w] = struct{}{}
	}
	return set
}

func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
