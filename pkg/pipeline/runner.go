package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordladder/pkg/cache"
	"github.com/matzehuels/wordladder/pkg/config"
	"github.com/matzehuels/wordladder/pkg/dictionary"
	"github.com/matzehuels/wordladder/pkg/httputil"
	"github.com/matzehuels/wordladder/pkg/ladder"
	"github.com/matzehuels/wordladder/pkg/observability"
	"github.com/matzehuels/wordladder/pkg/wordgraph"
)

// keyTypeLadder labels ladder entries in cache hooks.
const keyTypeLadder = "ladder"

// Runner encapsulates query execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache   cache.Cache
	Keyer   cache.Keyer
	Logger  *log.Logger
	Fetcher *httputil.Fetcher // downloads http(s) dictionaries
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:   c,
		Keyer:   keyer,
		Logger:  logger,
		Fetcher: httputil.NewFetcher(),
	}
}

// cachedLadder is the cache representation of a search outcome.
type cachedLadder struct {
	Path  []string `json:"path"`
	Found bool     `json:"found"`
}

// source is a neighbor lookup that also knows its own words.
type source interface {
	ladder.Neighborer
	Contains(word string) bool
}

// Solve runs load → build → search for one query, consulting the cache
// between load and build. A missing ladder is a normal result with
// Found == false.
func (r *Runner) Solve(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	hooks := observability.Search()
	hooks.OnSearchStart(ctx, opts.Origin, opts.Target)

	result := &Result{Origin: opts.Origin, Target: opts.Target}

	// Stage 1: Load
	loadStart := time.Now()
	dict, err := r.Load(ctx, opts.Dictionary, dictionary.Options{
		FoldCase: opts.FoldCase,
		Length:   utf8.RuneCountInString(opts.Origin),
	})
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Words = len(dict.Words)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	words := slices.Clone(dict.Words)
	slices.Sort(words)
	cacheKey := r.Keyer.LadderKey(cache.HashWords(words), opts.Origin, opts.Target, opts.KeyOpts())

	if !opts.Refresh {
		if cached, ok := r.lookup(ctx, cacheKey); ok {
			result.Path = cached.Path
			result.Found = cached.Found
			result.Cached = true
			r.Logger.Debug("ladder from cache", "origin", opts.Origin, "target", opts.Target)
			hooks.OnSearchComplete(ctx, opts.Origin, opts.Target, observability.SearchStats{
				Found:  result.Found,
				Steps:  result.Steps(),
				Cached: true,
			})
			return result, nil
		}
	}

	// Stage 2: Build
	src := r.build(words, opts)

	// Stage 3: Search
	searchStart := time.Now()
	res, err := search(src, opts)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	result.Stats.SearchTime = time.Since(searchStart)
	result.Stats.Expanded = res.Expanded
	result.Path = res.Path
	result.Found = res.Found

	r.Logger.Debug("search complete",
		"found", res.Found,
		"expanded", res.Expanded,
		"discovered", res.Discovered,
		"duration", result.Stats.SearchTime)
	hooks.OnSearchComplete(ctx, opts.Origin, opts.Target, observability.SearchStats{
		Found:    res.Found,
		Steps:    res.Steps(),
		Expanded: res.Expanded,
		Duration: result.Stats.SearchTime,
	})

	r.store(ctx, cacheKey, cachedLadder{Path: res.Path, Found: res.Found}, opts.CacheTTL)
	return result, nil
}

// Load reads a dictionary file or http(s) URL and reports it to the search
// hooks.
func (r *Runner) Load(ctx context.Context, path string, opts dictionary.Options) (*dictionary.Dictionary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	dict, err := r.readDictionary(ctx, path, opts)
	elapsed := time.Since(start)

	words := 0
	if dict != nil {
		words = len(dict.Words)
	}
	observability.Search().OnLoad(ctx, path, words, elapsed, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("dictionary loaded",
		"path", path,
		"words", dict.Stats.Words,
		"duplicates", dict.Stats.Duplicates,
		"skipped", dict.Stats.Skipped,
		"duration", elapsed)
	return dict, nil
}

// readDictionary opens path, downloading it first when it is a URL.
func (r *Runner) readDictionary(ctx context.Context, path string, opts dictionary.Options) (*dictionary.Dictionary, error) {
	if !httputil.IsURL(path) {
		return dictionary.ReadFile(path, opts)
	}
	f := r.Fetcher
	if f == nil {
		f = httputil.NewFetcher()
	}
	data, err := f.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("dictionary downloaded", "url", path, "bytes", len(data))
	return dictionary.Read(bytes.NewReader(data), opts)
}

// Neighbors returns the dictionary words one substitution away from word,
// in ascending order. The word itself need not be in the dictionary.
func (r *Runner) Neighbors(ctx context.Context, path, word string, foldCase bool) ([]string, error) {
	if foldCase {
		word = strings.ToUpper(word)
	}
	dict, err := r.Load(ctx, path, dictionary.Options{
		FoldCase: foldCase,
		Length:   utf8.RuneCountInString(word),
	})
	if err != nil {
		return nil, err
	}
	return wordgraph.NewIndex(dict.Words).Neighbors(word), nil
}

// build indexes words with the requested strategy. With AllowUnknownTarget
// a target missing from the dictionary is overlaid as an extra word.
func (r *Runner) build(words []string, opts Options) ladder.Neighborer {
	var src source
	switch opts.Index {
	case config.IndexScan:
		src = wordgraph.FromWords(words)
	default:
		src = wordgraph.NewIndex(words)
	}
	if opts.AllowUnknownTarget && !src.Contains(opts.Target) {
		r.Logger.Debug("target not in dictionary, adding it", "target", opts.Target)
		return ladder.Overlay(src, opts.Target)
	}
	return src
}

// search runs the parent-link Ladder when src is a plain WordGraph and no
// depth limit applies, and the non-destructive Search otherwise. Ladder does
// not count expansions, so Expanded stays zero on that path.
func search(src ladder.Neighborer, opts Options) (*ladder.Result, error) {
	if g, ok := src.(*wordgraph.WordGraph); ok && opts.MaxDepth == 0 {
		path, found := ladder.Ladder(g, opts.Origin, opts.Target)
		return &ladder.Result{Path: path, Found: found}, nil
	}
	return ladder.Search(src, opts.Origin, opts.Target, ladder.WithMaxDepth(opts.MaxDepth))
}

// lookup returns a cached outcome. Read and decode failures count as misses.
func (r *Runner) lookup(ctx context.Context, key string) (cachedLadder, bool) {
	var out cachedLadder
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "error", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyTypeLadder)
		return out, false
	}
	if err := json.Unmarshal(data, &out); err != nil {
		observability.Cache().OnCacheMiss(ctx, keyTypeLadder)
		return out, false
	}
	observability.Cache().OnCacheHit(ctx, keyTypeLadder)
	return out, true
}

// store writes an outcome to the cache. Failures are logged, not returned.
func (r *Runner) store(ctx context.Context, key string, v cachedLadder, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyTypeLadder, len(data))
}
