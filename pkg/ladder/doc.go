// Package ladder finds shortest word ladders with breadth-first search.
//
// A ladder is a sequence of words where each consecutive pair differs in
// exactly one character position. Because every step has the same cost,
// breadth-first search discovers each word at its minimal distance from the
// origin, and the first time the target is dequeued its parent chain spells
// out a shortest ladder.
//
// Paths are not stored per queue entry. Each discovered word records the word
// it was discovered from, and the ladder is rebuilt by walking those parent
// links backward from the target and reversing.
//
// # Two Forms
//
// [Ladder] runs on a [wordgraph.WordGraph] and records parent links inside
// the graph itself, using "a word is its own parent" as the unvisited marker.
// The graph's parent state is consumed by the search and reset before the
// next one.
//
// [Search] leaves its neighbor source untouched and keeps a visit map per
// query, so a single dictionary (a WordGraph or a [wordgraph.Index]) can serve
// any number of queries, including concurrent ones as long as nothing mutates
// the source meanwhile. Ladder calls must not overlap on the same graph:
//
//	idx := wordgraph.NewIndex(words)
//	res, err := ladder.Search(idx, "COLD", "WARM")
//	if err != nil {
//	    return err
//	}
//	if res.Found {
//	    fmt.Println(res.Path) // [COLD CORD CARD WARD WARM]
//	}
//
// # Failure Semantics
//
// The absence of a ladder is a normal outcome. Ladder reports it with a false
// second return value, Search with [Result.Found] set to false. Errors are
// reserved for invalid arguments such as a nil source or a bad option.
package ladder
