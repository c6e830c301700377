package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/tiegraph/pkg/graph"
	"github.com/matzehuels/tiegraph/pkg/path"
)

const (
	highlightColor = "#e4572e"
	highlightFill  = "#fde2d9"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Highlight is drawn in color on top of the graph. Nil draws nothing extra.
	Highlight path.Path

	// Weights labels every edge with its weight.
	Weights bool
}

// ToDOT converts a Graph to Graphviz DOT format for node-link visualization.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
//
// Nodes appear in NodeID order and edges in insertion order, so the output is
// deterministic for a given edge list.
func ToDOT(g *graph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [color=\"#555555\"];\n")
	buf.WriteString("\n")

	onPath := make(map[graph.NodeID]bool, len(opts.Highlight))
	for _, id := range opts.Highlight {
		onPath[id] = true
	}

	for _, n := range g.Nodes() {
		attrs := []string{"label=" + quote(n.Label)}
		if onPath[n.ID] {
			attrs = append(attrs, fmt.Sprintf("color=%q", highlightColor), fmt.Sprintf("fillcolor=%q", highlightFill), "penwidth=2")
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	hops := pathHops(opts.Highlight)
	for _, e := range g.Edges() {
		var attrs []string
		if opts.Weights {
			attrs = append(attrs, "label="+quote(strconv.Itoa(e.Weight)))
		}
		// One edge per hop, even when the hop has parallel edges.
		key := hop{e.From, e.To}
		if hops[key] {
			delete(hops, key)
			attrs = append(attrs, fmt.Sprintf("color=%q", highlightColor), "penwidth=2.5")
		}
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  n%d -> n%d;\n", e.From, e.To)
			continue
		}
		fmt.Fprintf(&buf, "  n%d -> n%d [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

type hop struct{ from, to graph.NodeID }

func pathHops(p path.Path) map[hop]bool {
	hops := make(map[hop]bool, p.Hops())
	for i := 1; i < len(p); i++ {
		hops[hop{p[i-1], p[i]}] = true
	}
	return hops
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func quote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized svg element with one whose
// viewBox starts at the origin and whose size is in plain pixels.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
