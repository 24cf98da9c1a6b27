package nodelink

import (
	"context"
	"strings"
	"testing"
)

func TestLadderDOT(t *testing.T) {
	dot := LadderDOT([]string{"DOG", "COG", "COT"}, Options{})

	for _, want := range []string{
		"digraph ladder {",
		`"DOG" [label="DOG", fillcolor="#d9f2ef", penwidth=2];`,
		`"COG" [label="COG"];`,
		`"COT" [label="COT", fillcolor="#d9f2ef", penwidth=2];`,
		`"DOG" -> "COG";`,
		`"COG" -> "COT";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "→") {
		t.Error("non-detailed DOT should not label edges")
	}
}

func TestLadderDOTDetailed(t *testing.T) {
	dot := LadderDOT([]string{"DOG", "COG", "COT"}, Options{Detailed: true})

	if !strings.Contains(dot, `"DOG" -> "COG" [label="1: D→C"];`) {
		t.Errorf("missing first edge label:\n%s", dot)
	}
	if !strings.Contains(dot, `"COG" -> "COT" [label="3: G→T"];`) {
		t.Errorf("missing second edge label:\n%s", dot)
	}
}

func TestLadderDOTEmpty(t *testing.T) {
	dot := LadderDOT(nil, Options{})
	if strings.Contains(dot, "->") {
		t.Errorf("empty ladder should have no edges:\n%s", dot)
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Errorf("DOT should be closed:\n%s", dot)
	}
}

func TestNeighborhoodDOT(t *testing.T) {
	dot := NeighborhoodDOT("DOG", []string{"BOG", "COG"}, Options{Detailed: true})

	for _, want := range []string{
		"graph neighborhood {",
		`"DOG" -- "BOG" [label="1: D→B"];`,
		`"DOG" -- "COG" [label="1: D→C"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q\n%s", want, dot)
		}
	}
}

func TestEdgeLabel(t *testing.T) {
	if got := edgeLabel("café", "cafe"); got != "4: é→e" {
		t.Errorf("edgeLabel = %q, want %q", got, "4: é→e")
	}
	if got := edgeLabel("DOG", "CAT"); got != "" {
		t.Errorf("edgeLabel of non-adjacent words = %q, want empty", got)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))

	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50">`
	if !strings.HasPrefix(out, want) {
		t.Errorf("normalizeViewBox = %s, want prefix %s", out, want)
	}

	plain := []byte("<svg><g/></svg>")
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("svg without viewBox should be unchanged")
	}
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the wasm graphviz engine")
	}
	svg, err := RenderSVG(context.Background(), LadderDOT([]string{"DOG", "COG"}, Options{Detailed: true}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("output should be SVG")
	}
	if !strings.Contains(string(svg), "DOG") {
		t.Error("SVG should contain node labels")
	}
}
