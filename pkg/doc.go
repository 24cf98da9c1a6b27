// Package pkg provides the core libraries for wordladder.
//
// # Overview
//
// A word ladder connects two words of equal length through dictionary words,
// changing exactly one letter per step:
//
//	COLD → CORD → CARD → WARD → WARM
//
// The pkg directory is organized into three areas:
//
//  1. Domain logic: [wordgraph], [ladder], [dictionary]
//  2. Orchestration: [pipeline]
//  3. Infrastructure: [cache], [config], [errors], [httputil], [observability], [render]
//
// # Architecture
//
// The data flow for a single query:
//
//	Dictionary file or URL
//	         ↓
//	    [dictionary] package (read, de-duplicate, filter by length)
//	         ↓
//	    [wordgraph] package (word set, adjacency, parent links)
//	         ↓
//	    [ladder] package (breadth-first search, path reconstruction)
//	         ↓
//	    path, text/JSON/DOT/SVG output
//
// [pipeline] runs these stages and caches the outcome keyed by the
// dictionary content, the endpoints and the search options.
//
// # Quick Start
//
// Find a ladder with the destructive search on a [wordgraph.WordGraph]:
//
//	g := wordgraph.FromWords([]string{"COG", "COT", "CAT"})
//	path, ok := ladder.Ladder(g, "DOG", "CAT")
//	// path == [DOG COG COT CAT], ok == true
//
// Or leave the graph untouched and bound the depth:
//
//	idx := wordgraph.NewIndex(words)
//	res, err := ladder.Search(idx, "DOG", "CAT", ladder.WithMaxDepth(5))
//
// # Main Packages
//
// ## Domain Logic
//
// [wordgraph] - The word set. [wordgraph.WordGraph] holds the dictionary and
// the parent link of every word; [wordgraph.Index] answers neighbor queries
// through wildcard buckets for large dictionaries.
//
// [ladder] - Shortest ladders. [ladder.Ladder] records parents in the graph;
// [ladder.Search] keeps its own bookkeeping and supports depth limits.
//
// [dictionary] - Word list parsing with case folding and length filtering.
//
// ## Orchestration
//
// [pipeline] - Load, build, search and cache. Used by every CLI command.
//
// ## Infrastructure
//
// [cache] - File, Redis and null caches plus deterministic cache keys.
//
// [config] - TOML configuration with XDG paths.
//
// [errors] - Coded errors and input validation.
//
// [httputil] - Dictionary downloads with retry.
//
// [observability] - Hooks for loads, searches and cache operations.
//
// [render] - Node-link diagrams (DOT, SVG) and PNG/PDF conversion.
//
// # Testing
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/ladder/...       # Specific package
//	go test -run Example ./pkg/... # Examples only
//
// [wordgraph]: https://pkg.go.dev/github.com/matzehuels/wordladder/pkg/wordgraph
// [ladder]: https://pkg.go.dev/github.com/matzehuels/wordladder/pkg/ladder
// [dictionary]: https://pkg.go.dev/github.com/matzehuels/wordladder/pkg/dictionary
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/wordladder/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/wordladder/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/wordladder/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/wordladder/pkg/errors
// [httputil]: https://pkg.go.dev/github.com/matzehuels/wordladder/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/matzehuels/wordladder/pkg/observability
// [render]: https://pkg.go.dev/github.com/matzehuels/wordladder/pkg/render
package pkg
