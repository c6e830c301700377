package nodelink

import (
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/tiegraph/pkg/edgelist"
	"github.com/matzehuels/tiegraph/pkg/graph"
	"github.com/matzehuels/tiegraph/pkg/path"
)

var r = edgelist.R

func TestToDOT(t *testing.T) {
	g := graph.Build([]edgelist.Relation{
		r("Ada", "Cora", 1),
		r("Cora", "Ada", 2),
	})

	want := `digraph G {
  rankdir=LR;
  bgcolor="transparent";
  node [shape=box, style="rounded,filled", fillcolor=white, fontsize=14, margin="0.2,0.1"];
  edge [color="#555555"];

  n0 [label="Ada"];
  n1 [label="Cora"];

  n0 -> n1;
  n1 -> n0;
}
`
	if got := ToDOT(g, Options{}); got != want {
		t.Errorf("ToDOT() =\n%s\nwant\n%s", got, want)
	}
}

func TestToDOTWeights(t *testing.T) {
	g := graph.Build([]edgelist.Relation{r("A", "B", 7)})

	dot := ToDOT(g, Options{Weights: true})
	if !strings.Contains(dot, `n0 -> n1 [label="7"];`) {
		t.Errorf("expected weight label, got:\n%s", dot)
	}
}

func TestToDOTHighlight(t *testing.T) {
	g := graph.Build([]edgelist.Relation{
		r("A", "B", 1),
		r("A", "B", 1),
		r("B", "C", 1),
		r("C", "A", 1),
	})
	p, ok := path.ShortestPath(g, 0, 2)
	if !ok {
		t.Fatal("expected path A -> C")
	}

	dot := ToDOT(g, Options{Highlight: p})

	for i, label := range []string{"A", "B", "C"} {
		line := fmt.Sprintf(`n%d [label=%q, color=%q, fillcolor=%q, penwidth=2];`, i, label, highlightColor, highlightFill)
		if !strings.Contains(dot, line) {
			t.Errorf("node %s should be highlighted:\n%s", label, dot)
		}
	}
	if n := strings.Count(dot, `n0 -> n1 [color="`+highlightColor+`"`); n != 1 {
		t.Errorf("highlighted A -> B edges = %d, want 1 of the parallel pair", n)
	}
	if !strings.Contains(dot, "  n0 -> n1;\n") {
		t.Errorf("second parallel edge should stay plain:\n%s", dot)
	}
	if !strings.Contains(dot, "  n2 -> n0;\n") {
		t.Errorf("off-path edge should stay plain:\n%s", dot)
	}
}

func TestToDOTEscapesLabels(t *testing.T) {
	g := graph.Build([]edgelist.Relation{r(`Say "hi"`, `back\slash`, 1)})

	dot := ToDOT(g, Options{})
	if !strings.Contains(dot, `n0 [label="Say \"hi\""];`) {
		t.Errorf("quotes not escaped:\n%s", dot)
	}
	if !strings.Contains(dot, `n1 [label="back\\slash"];`) {
		t.Errorf("backslash not escaped:\n%s", dot)
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(graph.Build(nil), Options{})
	if strings.Contains(dot, "->") {
		t.Errorf("empty graph should have no edges:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 116.00" width="62" height="116"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}

	plain := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("svg without viewBox should be unchanged, got %s", got)
	}
}
