// Package wordgraph provides the word-adjacency graph used to solve word ladders.
//
// # Overview
//
// Two words are adjacent when they have the same length and differ in exactly
// one character position (Hamming distance 1). The graph is implicit: no edges
// are stored, and neighbors are computed on demand from the dictionary.
//
// [WordGraph] holds the dictionary as a mapping from word to parent word. Every
// word starts as its own parent, which marks it as unvisited. A breadth-first
// search records visitation by overwriting the parent link the first time a
// word is discovered, so the same map serves as both the visited set and the
// backtracking structure for path reconstruction:
//
//	g := wordgraph.FromWords([]string{"DOG", "COG", "COT"})
//	g.Neighbors("DOG") // [COG]
//	g.SetParent("COG", "DOG")
//	g.ParentOf("COG")  // "DOG", true
//
// Keys iterate in ascending byte order, so [WordGraph.Neighbors] returns the
// same sequence for the same dictionary on every run.
//
// # Index
//
// [WordGraph.Neighbors] scans every key, costing O(V·L) per call. For large
// dictionaries, [Index] buckets words by each single-wildcard pattern
// ("D*G", "*OG", "DO*") and answers the same query in time proportional to
// the bucket sizes. Both types satisfy the same neighbor contract.
//
// # Concurrency
//
// WordGraph reads (Contains, Neighbors, Words, ParentOf, Visited) are safe to
// run concurrently. Insert, Remove, SetParent and Reset are not, and must not
// overlap with any other call. Index is immutable after construction and safe
// for concurrent reads.
package wordgraph
