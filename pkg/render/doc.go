// Package render turns graphs into Graphviz DOT and SVG.
//
// [ToDOT] emits an undirected DOT graph. When the graph carries a non-empty
// adjacency matrix the matrix is the source: nodes are named by row index and
// every non-zero cell in or above the diagonal becomes one edge. Otherwise the
// node table and edge list are used, with nodes named by their tagged
// identifier.
//
//	dot := render.ToDOT(g)
//	svg, err := render.RenderSVG(ctx, dot)
//
// [RenderSVG] uses the WebAssembly build of Graphviz shipped with
// github.com/goccy/go-graphviz, so no system Graphviz install is needed.
package render
