// Package pipeline answers word ladder queries end to end.
//
// A query runs in three stages:
//
//  1. Load: read the dictionary, keeping only words as long as the origin
//  2. Build: index the words for neighbor lookups (scan or bucket)
//  3. Search: breadth-first search from origin to target
//
// Results are cached by dictionary content and query, so repeating a query
// against an unchanged dictionary skips the search. The CLI and tests share
// this package so they cannot drift apart.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Solve(ctx, pipeline.Options{
//	    Dictionary: "/usr/share/dict/words",
//	    Origin:     "cold",
//	    Target:     "warm",
//	    FoldCase:   true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path)
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/wordladder/pkg/cache"
	"github.com/matzehuels/wordladder/pkg/config"
	"github.com/matzehuels/wordladder/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultIndex is the neighbor lookup strategy used when none is given.
	DefaultIndex = config.IndexBucket

	// DefaultCacheTTL is how long a solved query stays cached.
	DefaultCacheTTL = 7 * 24 * time.Hour
)

// ValidIndexes is the set of supported neighbor lookup strategies.
var ValidIndexes = map[string]bool{
	config.IndexScan:   true,
	config.IndexBucket: true,
}

// =============================================================================
// Options and Results
// =============================================================================

// Options describes one ladder query.
type Options struct {
	Dictionary string `json:"dictionary"`
	Origin     string `json:"origin"`
	Target     string `json:"target"`

	FoldCase           bool   `json:"fold_case,omitempty"`
	Index              string `json:"index,omitempty"`
	MaxDepth           int    `json:"max_depth,omitempty"`
	AllowUnknownTarget bool   `json:"allow_unknown_target,omitempty"`

	Refresh  bool          `json:"refresh,omitempty"` // skip the cache lookup, still store
	CacheTTL time.Duration `json:"-"`

	validated bool
}

// Result is the answer to a query.
type Result struct {
	// Origin and Target are the endpoints after case folding.
	Origin string
	Target string

	// Path is the ladder from Origin to Target, nil when Found is false.
	Path  []string
	Found bool

	// Cached reports whether the answer came from the cache.
	Cached bool

	Stats Stats
}

// Steps returns the number of substitutions in the ladder, or -1 if none was found.
func (r *Result) Steps() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}

// Stats contains query execution statistics.
type Stats struct {
	Words      int // dictionary words of the origin's length
	Expanded   int // words expanded by the search, 0 on a cache hit
	LoadTime   time.Duration
	SearchTime time.Duration
}

// =============================================================================
// Validation
// =============================================================================

// ValidateIndex checks that an index strategy is supported.
func ValidateIndex(index string) error {
	if !ValidIndexes[index] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid index: %q (must be one of: scan, bucket)", index)
	}
	return nil
}

// ValidateAndSetDefaults checks the query, applies defaults and folds the
// endpoints to upper case when FoldCase is set. Calling it again is a no-op.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidatePath(o.Dictionary); err != nil {
		return err
	}
	if err := errors.ValidateWord(o.Origin); err != nil {
		return errors.New(errors.ErrCodeInvalidWord, "origin: %s", errors.UserMessage(err))
	}
	if err := errors.ValidateWord(o.Target); err != nil {
		return errors.New(errors.ErrCodeInvalidWord, "target: %s", errors.UserMessage(err))
	}
	if o.MaxDepth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max depth cannot be negative (%d)", o.MaxDepth)
	}
	if o.Index == "" {
		o.Index = DefaultIndex
	}
	if err := ValidateIndex(o.Index); err != nil {
		return err
	}
	if o.CacheTTL <= 0 {
		o.CacheTTL = DefaultCacheTTL
	}
	if o.FoldCase {
		o.Origin = strings.ToUpper(o.Origin)
		o.Target = strings.ToUpper(o.Target)
	}
	o.validated = true
	return nil
}

// KeyOpts returns the cache key options for this query.
func (o *Options) KeyOpts() cache.LadderKeyOpts {
	return cache.LadderKeyOpts{
		FoldCase:           o.FoldCase,
		MaxDepth:           o.MaxDepth,
		AllowUnknownTarget: o.AllowUnknownTarget,
		Index:              o.Index,
	}
}

func (o *Options) String() string {
	return fmt.Sprintf("%s -> %s (%s)", o.Origin, o.Target, o.Dictionary)
}
