// Package search implements the name filter used by the entry list.
package search

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// WordSeparator splits a search term into words.
const WordSeparator = " "

// MatchSpan marks a rune range [Start, End) inside a name.
type MatchSpan struct {
	Start int
	End   int
}

var folder = cases.Fold()

// MatchWords reports whether every word of term occurs in name, ignoring
// case. Word order and position are irrelevant; an empty term matches.
func MatchWords(term, name string) bool {
	return MatchWordsCase(term, name, false)
}

// MatchWordsCase is MatchWords with explicit case sensitivity.
func MatchWordsCase(term, name string, caseSensitive bool) bool {
	if term == "" {
		return true
	}
	if !caseSensitive {
		term = folder.String(term)
		name = folder.String(name)
	}
	for _, word := range splitWords(term) {
		if !strings.Contains(name, word) {
			return false
		}
	}
	return true
}

// splitWords splits on the separator, trims each word and collapses
// duplicates. Blank words are kept as "" and match anything.
func splitWords(term string) []string {
	parts := strings.Split(term, WordSeparator)
	seen := make(map[string]struct{}, len(parts))
	words := parts[:0]
	for _, part := range parts {
		word := strings.TrimSpace(part)
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	return words
}

// WordSpans returns the merged rune ranges of name covered by the words of
// term, for highlighting. Matching uses the same case folding as MatchWords,
// so a span may cover a rune that folds to several ("ß" for "ss").
func WordSpans(term, name string) []MatchSpan {
	if term == "" || name == "" {
		return nil
	}

	target, origin := foldRunes(name)
	var spans []MatchSpan
	for _, word := range splitWords(term) {
		pattern, _ := foldRunes(word)
		if len(pattern) == 0 || len(pattern) > len(target) {
			continue
		}
		for start := 0; start+len(pattern) <= len(target); start++ {
			if runesEqual(target[start:start+len(pattern)], pattern) {
				spans = append(spans, MatchSpan{
					Start: origin[start],
					End:   origin[start+len(pattern)-1] + 1,
				})
			}
		}
	}

	sort.Slice(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})
	return MergeMatchSpans(spans)
}

// MergeMatchSpans joins overlapping or touching spans. Input must be sorted
// by Start.
func MergeMatchSpans(spans []MatchSpan) []MatchSpan {
	if len(spans) == 0 {
		return nil
	}
	merged := make([]MatchSpan, 0, len(spans))
	current := spans[0]
	for i := 1; i < len(spans); i++ {
		next := spans[i]
		if next.Start <= current.End {
			if next.End > current.End {
				current.End = next.End
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	merged = append(merged, current)
	return merged
}

// foldRunes case-folds s rune by rune. origin maps each folded rune back to
// the index of the rune of s it came from.
func foldRunes(s string) (folded []rune, origin []int) {
	for idx, r := range []rune(s) {
		for _, fr := range folder.String(string(r)) {
			folded = append(folded, fr)
			origin = append(origin, idx)
		}
	}
	return folded, origin
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
