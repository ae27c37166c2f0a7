package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/adjgraph/pkg/graph"
)

// ToDOT converts g to an undirected Graphviz DOT graph.
func ToDOT(g *graph.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	if m := g.Matrix(); m.Size() > 0 {
		writeMatrix(&buf, m)
	} else {
		writeTable(&buf, g)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeMatrix(buf *bytes.Buffer, m graph.Matrix) {
	n := m.Size()
	for i := range n {
		fmt.Fprintf(buf, "  %d;\n", i)
	}
	buf.WriteString("\n")
	for i := range n {
		for j := i; j < n; j++ {
			if m.At(i, j) != 0 || m.At(j, i) != 0 {
				fmt.Fprintf(buf, "  %d -- %d;\n", i, j)
			}
		}
	}
}

func writeTable(buf *bytes.Buffer, g *graph.Graph) {
	for _, id := range g.NodeIDs() {
		fmt.Fprintf(buf, "  %q [label=%q];\n", id.String(), label(id))
	}
	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(buf, "  %q -- %q;\n", e.Source.String(), e.Target.String())
	}
}

func label(id graph.NodeID) string {
	if v, ok := id.Int(); ok {
		return strconv.FormatUint(v, 10)
	}
	s, _ := id.Text()
	return s
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

// normalizeViewBox rewrites the root element so the drawing scales from a
// zero origin with explicit pixel dimensions.
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

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
