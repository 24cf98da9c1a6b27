package wordgraph_test

import (
	"fmt"

	"github.com/matzehuels/wordladder/pkg/wordgraph"
)

func ExampleWordGraph_Neighbors() {
	g := wordgraph.FromWords([]string{"DOG", "FOG", "BOG", "COG", "CAT", "QUX"})

	fmt.Println(g.Neighbors("DOG"))
	fmt.Println(g.Neighbors("QUX"))
	// Output:
	// [BOG COG FOG]
	// []
}

func ExampleWordGraph_SetParent() {
	g := wordgraph.FromWords([]string{"DOG", "COG"})
	_ = g.SetParent("COG", "DOG")

	p, _ := g.ParentOf("COG")
	fmt.Println("parent of COG:", p)
	fmt.Println("COG visited:", g.Visited("COG"))
	fmt.Println("DOG visited:", g.Visited("DOG"))
	// Output:
	// parent of COG: DOG
	// COG visited: true
	// DOG visited: false
}

func ExampleIndex() {
	idx := wordgraph.NewIndex([]string{"COLD", "CORD", "CARD", "WARD", "WARM", "WORM"})

	fmt.Println(idx.Neighbors("CORD"))
	fmt.Println(idx.Neighbors("WORD"))
	// Output:
	// [CARD COLD]
	// [CORD WARD WORM]
}
