package ladder

import (
	"errors"
	"fmt"
)

// Sentinel errors for Search.
var (
	// ErrNilSource is returned when Search is given a nil neighbor source.
	ErrNilSource = errors.New("ladder: neighbor source is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ladder: invalid option supplied")
)

// Neighborer yields the words adjacent to a word. Implementations must return
// the same sequence for the same word on every call and must not include the
// word itself. [wordgraph.WordGraph] and [wordgraph.Index] both qualify.
type Neighborer interface {
	Neighbors(word string) []string
}

// Option configures Search.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunables of a search.
type Options struct {
	// MaxDepth, if > 0, stops discovering words more than MaxDepth steps
	// from the origin. A ladder of n words has depth n-1.
	MaxDepth int

	// OnExpand is called each time a word is dequeued and expanded,
	// with its distance from the origin.
	OnExpand func(word string, depth int)

	err error
}

// DefaultOptions returns options with no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnExpand: func(string, int) {},
	}
}

// WithMaxDepth bounds the ladder length.
//
//	d > 0:  ladders of at most d steps
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnExpand registers a callback run before each word is expanded.
func WithOnExpand(fn func(word string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result is the outcome of a Search.
type Result struct {
	// Path is the ladder from origin to target, nil when Found is false.
	Path []string
	// Found reports whether a ladder exists.
	Found bool
	// Expanded counts the words whose neighbors were computed.
	Expanded int
	// Discovered counts the words reached, origin included.
	Discovered int
}

// Steps returns the number of substitutions in the ladder, or -1 if none was found.
func (r *Result) Steps() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}
