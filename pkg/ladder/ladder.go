package ladder

import (
	"slices"

	"github.com/matzehuels/wordladder/pkg/wordgraph"
)

// Ladder returns a shortest ladder from origin to target over the words of g,
// and false if none exists.
//
// The search stores parent links in g: every word is reset to be its own
// parent, origin is inserted if absent, and each word's parent is set once
// when it is first discovered. After Ladder returns, g still holds the parent
// links of this search; a later call resets them.
//
// The target is only reachable if it is a word of g, or equal to origin.
// A nil graph holds no words.
func Ladder(g *wordgraph.WordGraph, origin, target string) ([]string, bool) {
	if origin == target {
		return []string{origin}, true
	}
	if g == nil {
		return nil, false
	}

	g.Reset()
	g.Insert(origin)

	queue := []string{origin}
	for len(queue) > 0 {
		w := queue[0]
		queue = queue[1:]

		if w == target {
			return backtrack(g, target), true
		}

		for _, n := range g.Neighbors(w) {
			// The origin is self-parented too, but is already visited.
			if n == origin || g.Visited(n) {
				continue
			}
			if err := g.SetParent(n, w); err != nil {
				// Neighbors only yields keys of g.
				panic(err)
			}
			queue = append(queue, n)
		}
	}
	return nil, false
}

// backtrack follows parent links from target until it reaches the
// self-parented origin, then returns the walk in origin-to-target order.
func backtrack(g *wordgraph.WordGraph, target string) []string {
	path := []string{target}
	for cur := target; ; {
		p, ok := g.ParentOf(cur)
		if !ok || p == cur {
			break
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)
	return path
}
