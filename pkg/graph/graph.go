package graph

import (
	"fmt"
	"io"
	"maps"
	"slices"
)

// Adjacency is one entry in a node's adjacency list: the neighbor at the
// other end and the identifier of the edge that connects them.
type Adjacency struct {
	Neighbor NodeID
	Edge     EdgeID
}

// Node is a node's full state. Its identity is entirely its ID; two Node
// values with the same ID are the same logical node.
type Node struct {
	ID        NodeID
	Adjacency []Adjacency // may be empty
}

// NewNode returns a node with the given ID and no adjacency data.
func NewNode(id NodeID) Node { return Node{ID: id} }

// IntNode returns a node with an integer identifier.
func IntNode(v uint64) Node { return NewNode(IntID(v)) }

// TextNode returns a node with a text identifier.
func TextNode(s string) Node { return NewNode(TextID(s)) }

// Edge is an undirected connection between two nodes. The edge list keeps
// edges exactly as inserted, so (a,b) and (b,a) are stored separately even
// though SameConnection reports them as equal.
type Edge struct {
	Source NodeID
	Target NodeID
}

// EdgeBetween returns the edge connecting the identifiers of a and b.
func EdgeBetween(a, b Node) Edge { return Edge{Source: a.ID, Target: b.ID} }

// SameConnection reports whether e and o connect the same pair of nodes,
// regardless of orientation.
func (e Edge) SameConnection(o Edge) bool {
	return (e.Source == o.Source && e.Target == o.Target) ||
		(e.Source == o.Target && e.Target == o.Source)
}

// Reversed returns the edge with source and target swapped.
func (e Edge) Reversed() Edge { return Edge{Source: e.Target, Target: e.Source} }

func (e Edge) String() string { return fmt.Sprintf("%s -- %s", e.Source, e.Target) }

// Graph is an undirected graph made of a node table, an edge list and a dense
// adjacency matrix.
//
// Insertion operations update the node table and edge list only; they never
// resize or otherwise touch the matrix. The generator fills only the matrix.
// Callers that need the two views in agreement call MaterializeMatrix and
// SetMatrix explicitly.
//
// The zero value is not usable - use New. Graph is not safe for concurrent
// use without external synchronization.
type Graph struct {
	matrix Matrix
	nodes  map[NodeID]*Node
	edges  []Edge
}

// New returns an empty graph: zero nodes, zero edges and a 0×0 matrix.
func New() *Graph {
	return &Graph{
		matrix: NewMatrix(0),
		nodes:  make(map[NodeID]*Node),
	}
}

// NewWithMatrix returns a graph carrying m as its adjacency matrix and an
// empty node table and edge list.
func NewWithMatrix(m Matrix) *Graph {
	g := New()
	g.matrix = m
	return g
}

// Matrix returns a copy of the adjacency matrix.
func (g *Graph) Matrix() Matrix { return g.matrix.Clone() }

// SetMatrix replaces the adjacency matrix. The node table and edge list are
// left untouched.
func (g *Graph) SetMatrix(m Matrix) { g.matrix = m.Clone() }

// EnsureNode inserts a node with the given ID only if none exists. An existing
// node and its adjacency data are left untouched. It reports whether a node
// was inserted. The zero NodeID is never inserted.
func (g *Graph) EnsureNode(id NodeID) bool {
	if id.IsZero() {
		return false
	}
	if _, ok := g.nodes[id]; ok {
		return false
	}
	g.nodes[id] = &Node{ID: id}
	return true
}

// PutNode inserts n unconditionally, replacing any stored node with the same
// ID and discarding its prior adjacency data.
//
// A node with the zero ID is ignored, and adjacency entries whose neighbor or
// edge identifier is zero are dropped.
func (g *Graph) PutNode(n Node) {
	if n.ID.IsZero() {
		return
	}
	n.Adjacency = slices.DeleteFunc(slices.Clone(n.Adjacency), func(a Adjacency) bool {
		return a.Neighbor.IsZero() || a.Edge.IsZero()
	})
	g.nodes[n.ID] = &n
}

// AddNode applies in through EnsureNode or PutNode depending on its variant.
// The zero NodeInput refers to the zero NodeID and is a no-op.
func (g *Graph) AddNode(in NodeInput) {
	switch in.kind {
	case inputFullNode:
		g.PutNode(in.node)
	case inputIdentifierOnly:
		g.EnsureNode(in.id)
	}
}

// AddNodesFrom applies AddNode to each input in order, so later inputs can
// overwrite the effect of earlier ones.
func (g *Graph) AddNodesFrom(inputs []NodeInput) {
	for _, in := range inputs {
		g.AddNode(in)
	}
}

// AddEdgesFrom appends every edge to the edge list, then ensures a node exists
// for both endpoints of every edge. Edges with a zero endpoint are skipped.
func (g *Graph) AddEdgesFrom(edges []Edge) {
	for _, e := range edges {
		if e.Source.IsZero() || e.Target.IsZero() {
			continue
		}
		g.edges = append(g.edges, e)
		g.EnsureNode(e.Source)
		g.EnsureNode(e.Target)
	}
}

// Connect appends the edge (a,b), ensures both nodes exist, and records the
// connection in both nodes' adjacency lists under edge identifier e. A
// self-loop is recorded once. Connect does nothing if any identifier is zero.
func (g *Graph) Connect(a, b NodeID, e EdgeID) {
	if a.IsZero() || b.IsZero() || e.IsZero() {
		return
	}
	g.AddEdgesFrom([]Edge{{Source: a, Target: b}})
	src := g.nodes[a]
	src.Adjacency = append(src.Adjacency, Adjacency{Neighbor: b, Edge: e})
	if a == b {
		return
	}
	dst := g.nodes[b]
	dst.Adjacency = append(dst.Adjacency, Adjacency{Neighbor: a, Edge: e})
}

// Node returns the node with the given ID and true, or nil and false if not
// found. The returned pointer refers to the stored node.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

// NodeIDs returns every node identifier, integers ascending first and then
// texts in lexical order.
func (g *Graph) NodeIDs() []NodeID {
	return slices.SortedFunc(maps.Keys(g.nodes), NodeID.Compare)
}

// Nodes returns every node in NodeIDs order. The pointers refer to the
// stored nodes.
func (g *Graph) Nodes() []*Node {
	ids := g.NodeIDs()
	nodes := make([]*Node, len(ids))
	for i, id := range ids {
		nodes[i] = g.nodes[id]
	}
	return nodes
}

// NodeCount returns the number of nodes in the node table.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Edges returns a copy of the edge list in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// EdgeCount returns the length of the edge list.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// MaterializeMatrix builds a symmetric adjacency matrix from the node table
// and edge list. Row and column i correspond to the i-th identifier of the
// returned slice, which is in NodeIDs order. The graph's stored matrix is not
// modified; pass the result to SetMatrix to adopt it.
func (g *Graph) MaterializeMatrix() (Matrix, []NodeID) {
	ids := g.NodeIDs()
	pos := make(map[NodeID]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	m := NewMatrix(len(ids))
	for _, e := range g.edges {
		i, okS := pos[e.Source]
		j, okT := pos[e.Target]
		if !okS || !okT {
			continue
		}
		m.Set(i, j, 1)
		m.Set(j, i, 1)
	}
	return m, ids
}

// Print writes a human-readable rendering of the adjacency matrix to w.
func (g *Graph) Print(w io.Writer) {
	fmt.Fprintln(w, g.matrix.String())
}

type inputKind uint8

const (
	inputIdentifierOnly inputKind = iota
	inputFullNode
)

// NodeInput is either a bare identifier or a full node, as accepted by
// AddNode. Identifier inputs mean "ensure exists"; full-node inputs mean
// "set or replace".
type NodeInput struct {
	kind inputKind
	id   NodeID
	node Node
}

// ByID returns an identifier-only input.
func ByID(id NodeID) NodeInput { return NodeInput{kind: inputIdentifierOnly, id: id} }

// Full returns a full-node input.
func Full(n Node) NodeInput { return NodeInput{kind: inputFullNode, id: n.ID, node: n} }

// IDs wraps each identifier as an identifier-only input.
func IDs(ids ...NodeID) []NodeInput {
	out := make([]NodeInput, len(ids))
	for i, id := range ids {
		out[i] = ByID(id)
	}
	return out
}

// Fulls wraps each node as a full-node input.
func Fulls(nodes ...Node) []NodeInput {
	out := make([]NodeInput, len(nodes))
	for i, n := range nodes {
		out[i] = Full(n)
	}
	return out
}

// ID returns the identifier the input refers to.
func (in NodeInput) ID() NodeID { return in.id }

// IsFullNode reports whether the input replaces the stored node.
func (in NodeInput) IsFullNode() bool { return in.kind == inputFullNode }
