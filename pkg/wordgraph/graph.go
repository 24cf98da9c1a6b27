package wordgraph

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"sync"
)

// ErrWordNotFound is returned by [WordGraph.SetParent] when the word is not a
// key of the graph.
var ErrWordNotFound = errors.New("word not found")

// WordGraph maps every dictionary word to its parent word. A word that is its
// own parent has not been reached by the current search.
//
// The zero value is not usable - use New, FromWords or FromSeq.
// A nil *WordGraph behaves as an empty graph for reads.
type WordGraph struct {
	parents map[string]string

	mu     sync.Mutex // guards sorted
	sorted []string   // ascending keys, nil when stale
}

// New creates an empty graph.
func New() *WordGraph {
	return &WordGraph{parents: make(map[string]string)}
}

// FromWords creates a graph holding every non-empty word in words.
// Duplicates collapse into a single key.
func FromWords(words []string) *WordGraph {
	return FromSeq(slices.Values(words))
}

// FromSeq creates a graph from a sequence of words, inserting each in order.
func FromSeq(seq iter.Seq[string]) *WordGraph {
	g := New()
	for w := range seq {
		g.Insert(w)
	}
	return g
}

// Contains reports whether word is a key.
func (g *WordGraph) Contains(word string) bool {
	if g == nil {
		return false
	}
	_, ok := g.parents[word]
	return ok
}

// Insert adds word as its own parent. Inserting a present word resets its
// parent to itself, so callers must not insert while a search is running.
// Empty words are ignored.
func (g *WordGraph) Insert(word string) {
	if word == "" {
		return
	}
	if _, ok := g.parents[word]; !ok {
		g.invalidate()
	}
	g.parents[word] = word
}

// Remove deletes word from the graph. Removing an absent word is a no-op.
func (g *WordGraph) Remove(word string) {
	if _, ok := g.parents[word]; !ok {
		return
	}
	delete(g.parents, word)
	g.invalidate()
}

// SetParent overwrites the parent of word. It returns ErrWordNotFound if
// word is not a key. The previous parent is not checked.
func (g *WordGraph) SetParent(word, parent string) error {
	if _, ok := g.parents[word]; !ok {
		return fmt.Errorf("set parent of %q: %w", word, ErrWordNotFound)
	}
	g.parents[word] = parent
	return nil
}

// ParentOf returns the current parent of word and whether word is a key.
func (g *WordGraph) ParentOf(word string) (string, bool) {
	if g == nil {
		return "", false
	}
	p, ok := g.parents[word]
	return p, ok
}

// Visited reports whether word is a key whose parent is not itself.
func (g *WordGraph) Visited(word string) bool {
	if g == nil {
		return false
	}
	p, ok := g.parents[word]
	return ok && p != word
}

// Reset makes every word its own parent again.
func (g *WordGraph) Reset() {
	for w := range g.parents {
		g.parents[w] = w
	}
}

// Len returns the number of words.
func (g *WordGraph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.parents)
}

// Words returns all words in ascending order. The slice is a copy.
func (g *WordGraph) Words() []string {
	if g == nil {
		return nil
	}
	return slices.Clone(g.keys())
}

// Neighbors returns every word adjacent to word in ascending order.
// word itself is never included, and word need not be a key.
func (g *WordGraph) Neighbors(word string) []string {
	if g == nil {
		return nil
	}
	var out []string
	for _, k := range g.keys() {
		if Adjacent(word, k) {
			out = append(out, k)
		}
	}
	return out
}

// keys returns the sorted key slice, rebuilding it after insertions or
// removals. Concurrent readers share a single rebuild.
func (g *WordGraph) keys() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.sorted == nil {
		g.sorted = slices.Sorted(maps.Keys(g.parents))
	}
	return g.sorted
}

func (g *WordGraph) invalidate() {
	g.mu.Lock()
	g.sorted = nil
	g.mu.Unlock()
}
