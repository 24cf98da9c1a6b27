package ladder

import (
	"slices"

	"github.com/matzehuels/wordladder/pkg/wordgraph"
)

// visitKind distinguishes the search origin from words reached through a parent.
// Words missing from the visit map are unvisited.
type visitKind uint8

const (
	visitOrigin visitKind = iota + 1
	visitReached
)

type visit struct {
	kind   visitKind
	parent string // set when kind == visitReached
}

// queueItem pairs a word with its distance from the origin.
type queueItem struct {
	word  string
	depth int
}

// walker holds the per-query state of Search. The source is only read.
type walker struct {
	src     Neighborer
	opts    Options
	target  string
	queue   []queueItem
	visited map[string]visit
	res     *Result
}

// Search finds a shortest ladder from origin to target using the words
// reachable through src. Neither endpoint has to be known to src: origin is
// expanded like any other word, and target is found once some expanded
// word lists it as a neighbor.
//
// src is never modified, so the same source can serve repeated queries.
// Search returns ErrNilSource for a nil source and ErrOptionViolation for an
// invalid option. A typed nil *wordgraph.WordGraph or *wordgraph.Index is an
// empty source, not an error. An unreachable target is reported with Found == false.
func Search(src Neighborer, origin, target string, opts ...Option) (*Result, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		src:     src,
		opts:    o,
		target:  target,
		visited: make(map[string]visit),
		res:     &Result{},
	}
	w.visited[origin] = visit{kind: visitOrigin}
	w.res.Discovered = 1
	w.queue = append(w.queue, queueItem{word: origin})

	if w.loop() {
		w.res.Found = true
		w.res.Path = w.backtrack()
	}
	return w.res, nil
}

// loop expands words in FIFO order and reports whether the target was dequeued.
func (w *walker) loop() bool {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		if item.word == w.target {
			return true
		}
		w.expand(item)
	}
	return false
}

// expand discovers the unvisited neighbors of item. A neighbor is marked
// visited with its parent before it is enqueued.
func (w *walker) expand(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	w.opts.OnExpand(item.word, item.depth)
	w.res.Expanded++

	for _, n := range w.src.Neighbors(item.word) {
		if _, seen := w.visited[n]; seen {
			continue
		}
		w.visited[n] = visit{kind: visitReached, parent: item.word}
		w.res.Discovered++
		w.queue = append(w.queue, queueItem{word: n, depth: next})
	}
}

// backtrack walks parent links from the target back to the origin.
func (w *walker) backtrack() []string {
	path := []string{w.target}
	for cur := w.visited[w.target]; cur.kind == visitReached; cur = w.visited[cur.parent] {
		path = append(path, cur.parent)
	}
	slices.Reverse(path)
	return path
}

// Overlay returns a Neighborer that answers like src but also treats extra
// as known words. It lets a query end at a word missing from the dictionary.
func Overlay(src Neighborer, extra ...string) Neighborer {
	return &overlay{src: src, extra: extra}
}

type overlay struct {
	src   Neighborer
	extra []string
}

func (o *overlay) Neighbors(word string) []string {
	out := o.src.Neighbors(word)
	added := false
	for _, e := range o.extra {
		if wordgraph.Adjacent(word, e) && !slices.Contains(out, e) {
			out = append(slices.Clip(out), e)
			added = true
		}
	}
	if added {
		slices.Sort(out)
	}
	return out
}
