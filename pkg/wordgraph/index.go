package wordgraph

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Index is an immutable neighbor lookup structure that buckets words by
// each of their single-wildcard patterns. Two words are adjacent exactly
// when they are distinct and share a pattern. A nil *Index behaves as an
// empty index.
type Index struct {
	words   map[string]struct{}
	buckets map[string][]string // pattern -> words, ascending
}

// NewIndex builds an index over words. Empty words and duplicates are ignored.
// Words that are not valid UTF-8 are indexed for Contains but belong to no
// bucket, matching [Adjacent].
func NewIndex(words []string) *Index {
	idx := &Index{
		words:   make(map[string]struct{}, len(words)),
		buckets: make(map[string][]string),
	}
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, dup := idx.words[w]; dup {
			continue
		}
		idx.words[w] = struct{}{}
		for _, p := range patterns(w) {
			idx.buckets[p] = append(idx.buckets[p], w)
		}
	}
	for _, b := range idx.buckets {
		slices.Sort(b)
	}
	return idx
}

// Contains reports whether word was indexed.
func (idx *Index) Contains(word string) bool {
	if idx == nil {
		return false
	}
	_, ok := idx.words[word]
	return ok
}

// Len returns the number of indexed words.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.words)
}

// Neighbors returns every indexed word adjacent to word in ascending order.
// It matches [WordGraph.Neighbors] for the same dictionary.
func (idx *Index) Neighbors(word string) []string {
	if idx == nil {
		return nil
	}
	var out []string
	for _, p := range patterns(word) {
		for _, w := range idx.buckets[p] {
			if w != word {
				out = append(out, w)
			}
		}
	}
	// Patterns carry their position, so a neighbor shares exactly one of
	// them with word and the union has no duplicates. Sorting restores the
	// order of a full scan.
	slices.Sort(out)
	return out
}

// patterns returns the single-wildcard patterns of w, one per rune position.
// A pattern is the position followed by w without the rune at that position,
// so two words share pattern i exactly when they differ at most at rune i.
// Invalid UTF-8 has no patterns.
func patterns(w string) []string {
	if !utf8.ValidString(w) {
		return nil
	}
	runes := []rune(w)
	out := make([]string, len(runes))
	var sb strings.Builder
	for i := range runes {
		sb.Reset()
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte(':')
		sb.WriteString(string(runes[:i]))
		sb.WriteString(string(runes[i+1:]))
		out[i] = sb.String()
	}
	return out
}
