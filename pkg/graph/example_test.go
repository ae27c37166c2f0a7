package graph_test

import (
	"fmt"
	"os"

	"github.com/matzehuels/adjgraph/pkg/graph"
)

func ExampleGraph_AddEdgesFrom() {
	g := graph.New()
	g.AddEdgesFrom([]graph.Edge{
		{Source: graph.IntID(1), Target: graph.IntID(2)},
		{Source: graph.IntID(2), Target: graph.IntID(3)},
		{Source: graph.IntID(1), Target: graph.IntID(3)},
	})

	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Nodes:", g.NodeIDs())
	// Output:
	// Edges: 3
	// Nodes: [int:1 int:2 int:3]
}

func ExampleGraph_EnsureNode() {
	g := graph.New()
	g.Connect(graph.TextID("a"), graph.TextID("b"), graph.IntEdgeID(0))

	// Ensuring an existing node keeps its adjacency data.
	inserted := g.EnsureNode(graph.TextID("a"))
	n, _ := g.Node(graph.TextID("a"))

	fmt.Println("Inserted:", inserted)
	fmt.Println("Adjacency:", len(n.Adjacency))
	// Output:
	// Inserted: false
	// Adjacency: 1
}

func ExampleGraph_PutNode() {
	g := graph.New()
	g.Connect(graph.TextID("a"), graph.TextID("b"), graph.IntEdgeID(0))

	// A full node replaces whatever was stored under its identifier.
	g.PutNode(graph.TextNode("a"))
	n, _ := g.Node(graph.TextID("a"))

	fmt.Println("Adjacency:", len(n.Adjacency))
	// Output:
	// Adjacency: 0
}

func ExampleGraph_MaterializeMatrix() {
	g := graph.New()
	g.AddEdgesFrom([]graph.Edge{
		{Source: graph.IntID(1), Target: graph.IntID(2)},
		{Source: graph.IntID(2), Target: graph.IntID(3)},
	})

	// Insertion leaves the stored matrix empty.
	g.Print(os.Stdout)

	m, ids := g.MaterializeMatrix()
	g.SetMatrix(m)
	fmt.Println(ids)
	g.Print(os.Stdout)
	// Output:
	// []
	// [int:1 int:2 int:3]
	// [[0, 1, 0],
	//  [1, 0, 1],
	//  [0, 1, 0]]
}
