package path

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/tiegraph/pkg/edgelist"
	"github.com/matzehuels/tiegraph/pkg/graph"
)

var r = edgelist.R

// query resolves labels and runs ShortestPath, returning the path as labels.
func query(t *testing.T, g *graph.Graph, from, to string) ([]string, bool) {
	t.Helper()
	src, ok := g.Resolve(from)
	require.True(t, ok, "resolve %s", from)
	dst, ok := g.Resolve(to)
	require.True(t, ok, "resolve %s", to)

	p, found := ShortestPath(g, src, dst)
	if !found {
		assert.Nil(t, p)
		return nil, false
	}
	return p.Labels(g), true
}

func TestShortestPath(t *testing.T) {
	tests := []struct {
		name      string
		rels      []edgelist.Relation
		from, to  string
		want      []string
		wantFound bool
	}{
		{
			name:      "direct edge",
			rels:      []edgelist.Relation{r("Eva", "Maxine", 1)},
			from:      "Eva",
			to:        "Maxine",
			want:      []string{"Eva", "Maxine"},
			wantFound: true,
		},
		{
			name:      "two hops",
			rels:      []edgelist.Relation{r("A", "B", 1), r("B", "C", 1)},
			from:      "A",
			to:        "C",
			want:      []string{"A", "B", "C"},
			wantFound: true,
		},
		{
			name:      "direct edge beats cycle",
			rels:      []edgelist.Relation{r("A", "B", 1), r("B", "A", 1)},
			from:      "B",
			to:        "A",
			want:      []string{"B", "A"},
			wantFound: true,
		},
		{
			name:      "disconnected components",
			rels:      []edgelist.Relation{r("A", "B", 1), r("C", "D", 1)},
			from:      "A",
			to:        "D",
			wantFound: false,
		},
		{
			name:      "edges are not traversed backwards",
			rels:      []edgelist.Relation{r("A", "B", 1)},
			from:      "B",
			to:        "A",
			wantFound: false,
		},
		{
			name:      "source equals target",
			rels:      []edgelist.Relation{r("A", "B", 1)},
			from:      "A",
			to:        "A",
			want:      []string{"A"},
			wantFound: true,
		},
		{
			name:      "source equals target with self loop",
			rels:      []edgelist.Relation{r("A", "A", 1)},
			from:      "A",
			to:        "A",
			want:      []string{"A"},
			wantFound: true,
		},
		{
			name:      "weights are ignored",
			rels:      []edgelist.Relation{r("A", "B", 1), r("B", "C", 1), r("A", "C", 100)},
			from:      "A",
			to:        "C",
			want:      []string{"A", "C"},
			wantFound: true,
		},
		{
			name:      "tie broken by first declared edge",
			rels:      []edgelist.Relation{r("A", "B", 1), r("A", "C", 1), r("B", "D", 1), r("C", "D", 1)},
			from:      "A",
			to:        "D",
			want:      []string{"A", "B", "D"},
			wantFound: true,
		},
		{
			name:      "tie broken by declaration order not label",
			rels:      []edgelist.Relation{r("A", "C", 1), r("A", "B", 1), r("B", "D", 1), r("C", "D", 1)},
			from:      "A",
			to:        "D",
			want:      []string{"A", "C", "D"},
			wantFound: true,
		},
		{
			name:      "parallel edges",
			rels:      []edgelist.Relation{r("A", "B", 1), r("A", "B", 2), r("B", "C", 1)},
			from:      "A",
			to:        "C",
			want:      []string{"A", "B", "C"},
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := graph.Build(tt.rels)
			got, found := query(t, g, tt.from, tt.to)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShortestPathUnknownIDs(t *testing.T) {
	g := graph.Build([]edgelist.Relation{r("A", "B", 1)})

	for _, tc := range []struct{ src, dst graph.NodeID }{{-1, 0}, {0, 5}, {7, 7}} {
		p, ok := ShortestPath(g, tc.src, tc.dst)
		assert.False(t, ok, "%d -> %d", tc.src, tc.dst)
		assert.Nil(t, p)
	}

	p, ok := ShortestPath(graph.Build(nil), 0, 0)
	assert.False(t, ok)
	assert.Nil(t, p)
}

func TestSelfPathForEveryNode(t *testing.T) {
	g := graph.Build([]edgelist.Relation{r("A", "B", 1), r("B", "C", 1), r("C", "A", 1), r("D", "D", 1)})
	for _, n := range g.Nodes() {
		p, ok := ShortestPath(g, n.ID, n.ID)
		require.True(t, ok, n.Label)
		assert.Equal(t, Path{n.ID}, p)
		assert.Equal(t, 0, p.Hops())
	}
}

func TestPathHelpers(t *testing.T) {
	g := graph.Build([]edgelist.Relation{r("Eva", "Maxine", 1), r("Maxine", "Adele", 1)})
	eva, _ := g.Resolve("Eva")
	adele, _ := g.Resolve("Adele")

	p, ok := ShortestPath(g, eva, adele)
	require.True(t, ok)
	assert.Equal(t, 2, p.Hops())
	assert.Equal(t, []string{"Eva", "Maxine", "Adele"}, p.Labels(g))
	assert.Equal(t, "Eva → Maxine → Adele", p.Format(g))

	assert.Equal(t, 0, Path(nil).Hops())
}

// minHops computes all-pairs minimum hop counts by repeated relaxation.
// It is independent of the breadth-first implementation under test.
func minHops(g *graph.Graph) [][]int {
	const inf = 1 << 30
	n := g.NodeCount()
	d := make([][]int, n)
	for i := range d {
		d[i] = make([]int, n)
		for j := range d[i] {
			d[i][j] = inf
		}
		d[i][i] = 0
	}
	for _, e := range g.Edges() {
		if e.From != e.To {
			d[e.From][e.To] = 1
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}
	for i := range d {
		for j := range d[i] {
			if d[i][j] >= inf {
				d[i][j] = -1
			}
		}
	}
	return d
}

func TestShortestPathMatchesBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for trial := 0; trial < 40; trial++ {
		nodes := 1 + rnd.Intn(10)
		rels := make([]edgelist.Relation, rnd.Intn(25))
		for i := range rels {
			rels[i] = r(fmt.Sprintf("n%d", rnd.Intn(nodes)), fmt.Sprintf("n%d", rnd.Intn(nodes)), rnd.Intn(10))
		}
		g := graph.Build(rels)
		want := minHops(g)

		for _, src := range g.Nodes() {
			for _, dst := range g.Nodes() {
				p, ok := ShortestPath(g, src.ID, dst.ID)
				expected := want[src.ID][dst.ID]
				if expected < 0 {
					assert.False(t, ok, "trial %d: %s -> %s should be unreachable", trial, src.Label, dst.Label)
					continue
				}
				require.True(t, ok, "trial %d: %s -> %s should be reachable", trial, src.Label, dst.Label)
				assert.Equal(t, expected, p.Hops(), "trial %d: %s -> %s", trial, src.Label, dst.Label)
				assert.Equal(t, src.ID, p[0])
				assert.Equal(t, dst.ID, p[len(p)-1])
				for i := 0; i+1 < len(p); i++ {
					assert.True(t, slices.Contains(g.Neighbors(p[i]), p[i+1]),
						"trial %d: %d -> %d is not an edge", trial, p[i], p[i+1])
				}
			}
		}
	}
}

func BenchmarkShortestPath_Chain(b *testing.B) {
	const n = 10000
	rels := make([]edgelist.Relation, n)
	for i := range rels {
		rels[i] = r(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
	}
	g := graph.Build(rels)
	src, _ := g.Resolve("v0")
	dst, _ := g.Resolve(fmt.Sprintf("v%d", n))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ShortestPath(g, src, dst)
	}
}
