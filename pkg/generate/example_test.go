package generate_test

import (
	"fmt"

	"github.com/matzehuels/adjgraph/pkg/generate"
)

func ExampleGenerator_Generate() {
	g := generate.New(42).Generate(5)
	m := g.Matrix()

	rows, cols := m.Shape()
	fmt.Println("Shape:", rows, cols)
	fmt.Println("Symmetric:", m.IsSymmetric())
	fmt.Println("Nodes:", g.NodeCount())
	// Output:
	// Shape: 5 5
	// Symmetric: true
	// Nodes: 0
}
