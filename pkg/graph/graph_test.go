package graph

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsEmpty(t *testing.T) {
	g := New()

	rows, cols := g.Matrix().Shape()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 0, cols)
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestEnsureNodeIsIdempotent(t *testing.T) {
	g := New()

	assert.True(t, g.EnsureNode(IntID(1)))
	assert.False(t, g.EnsureNode(IntID(1)))
	assert.Equal(t, 1, g.NodeCount())
}

func TestEnsureNodeKeepsAdjacency(t *testing.T) {
	g := New()
	g.PutNode(Node{ID: IntID(1), Adjacency: []Adjacency{{Neighbor: IntID(2), Edge: IntEdgeID(0)}}})

	g.AddNode(ByID(IntID(1)))

	n, ok := g.Node(IntID(1))
	require.True(t, ok)
	assert.Len(t, n.Adjacency, 1)
}

func TestPutNodeOverwrites(t *testing.T) {
	g := New()
	g.AddNode(Full(Node{ID: IntID(1), Adjacency: []Adjacency{{Neighbor: IntID(2), Edge: IntEdgeID(7)}}}))
	g.AddNode(Full(Node{ID: IntID(1)}))

	n, ok := g.Node(IntID(1))
	require.True(t, ok)
	assert.Empty(t, n.Adjacency)
	assert.Equal(t, 1, g.NodeCount())
}

func TestPutNodeCopiesAdjacency(t *testing.T) {
	adj := []Adjacency{{Neighbor: IntID(2), Edge: IntEdgeID(0)}}
	g := New()
	g.PutNode(Node{ID: IntID(1), Adjacency: adj})

	adj[0].Neighbor = IntID(99)

	n, _ := g.Node(IntID(1))
	assert.Equal(t, IntID(2), n.Adjacency[0].Neighbor)
}

func TestAddNodesFrom(t *testing.T) {
	g := New()
	g.AddNodesFrom(Fulls(IntNode(1), IntNode(2), IntNode(3)))
	assert.Equal(t, 3, g.NodeCount())

	g.AddNodesFrom(Fulls(TextNode("a"), TextNode("b"), TextNode("c")))
	assert.Equal(t, 6, g.NodeCount())

	g.AddNode(Full(TextNode("foo")))
	assert.Equal(t, 7, g.NodeCount())
}

func TestAddNodesFromLaterWins(t *testing.T) {
	g := New()
	withAdj := Node{ID: TextID("a"), Adjacency: []Adjacency{{Neighbor: TextID("b"), Edge: TextEdgeID("ab")}}}

	g.AddNodesFrom([]NodeInput{Full(withAdj), ByID(TextID("a"))})
	n, _ := g.Node(TextID("a"))
	assert.Len(t, n.Adjacency, 1, "identifier input must not clear adjacency")

	g.AddNodesFrom([]NodeInput{ByID(TextID("a")), Full(TextNode("a"))})
	n, _ = g.Node(TextID("a"))
	assert.Empty(t, n.Adjacency, "full node input must replace")
}

func TestAddEdgesFrom(t *testing.T) {
	g := New()
	pairs := [][2]uint64{{1, 2}, {2, 3}, {1, 3}}
	edges := make([]Edge, 0, len(pairs))
	for _, p := range pairs {
		edges = append(edges, EdgeBetween(IntNode(p[0]), IntNode(p[1])))
	}

	g.AddEdgesFrom(edges)

	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []NodeID{IntID(1), IntID(2), IntID(3)}, g.NodeIDs())
	assert.Equal(t, edges, g.Edges())
}

func TestAddEdgesFromKeepsOrientationDuplicates(t *testing.T) {
	g := New()
	e := Edge{Source: IntID(1), Target: IntID(2)}
	g.AddEdgesFrom([]Edge{e, e.Reversed()})

	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.Edges()[0].SameConnection(g.Edges()[1]))
}

func TestAddEdgesFromDoesNotTouchMatrix(t *testing.T) {
	g := New()
	g.AddEdgesFrom([]Edge{{Source: IntID(1), Target: IntID(2)}})
	assert.Equal(t, 0, g.Matrix().Size())

	m := NewMatrix(2)
	m.Set(0, 1, 1)
	g.SetMatrix(m)
	g.AddEdgesFrom([]Edge{{Source: IntID(3), Target: IntID(4)}})
	assert.True(t, g.Matrix().Equal(m), "matrix must stay stale after insertion")
}

func TestConnect(t *testing.T) {
	g := New()
	g.Connect(TextID("foo"), TextID("bar"), IntEdgeID(1))

	foo, _ := g.Node(TextID("foo"))
	bar, _ := g.Node(TextID("bar"))
	assert.Equal(t, []Adjacency{{Neighbor: TextID("bar"), Edge: IntEdgeID(1)}}, foo.Adjacency)
	assert.Equal(t, []Adjacency{{Neighbor: TextID("foo"), Edge: IntEdgeID(1)}}, bar.Adjacency)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestConnectSelfLoop(t *testing.T) {
	g := New()
	g.Connect(IntID(5), IntID(5), TextEdgeID("loop"))

	n, _ := g.Node(IntID(5))
	assert.Len(t, n.Adjacency, 1)
	assert.Equal(t, 1, g.NodeCount())
}

func TestNodeIDsOrder(t *testing.T) {
	g := New()
	g.AddNodesFrom(IDs(TextID("b"), IntID(10), TextID("a"), IntID(2)))

	assert.Equal(t, []NodeID{IntID(2), IntID(10), TextID("a"), TextID("b")}, g.NodeIDs())
	nodes := g.Nodes()
	require.Len(t, nodes, 4)
	assert.Equal(t, IntID(2), nodes[0].ID)
}

func TestMaterializeMatrix(t *testing.T) {
	g := New()
	g.AddEdgesFrom([]Edge{
		{Source: TextID("a"), Target: IntID(1)},
		{Source: IntID(1), Target: IntID(1)},
	})
	g.EnsureNode(TextID("z"))

	m, ids := g.MaterializeMatrix()

	assert.Equal(t, []NodeID{IntID(1), TextID("a"), TextID("z")}, ids)
	assert.Equal(t, [][]uint8{{1, 1, 0}, {1, 0, 0}, {0, 0, 0}}, m.Rows())
	assert.True(t, m.IsSymmetric())
	assert.Equal(t, 0, g.Matrix().Size(), "materializing must not store the matrix")
}

func TestPrint(t *testing.T) {
	m, err := MatrixFromRows([][]uint8{{0, 1}, {1, 0}})
	require.NoError(t, err)
	g := NewWithMatrix(m)

	var buf bytes.Buffer
	g.Print(&buf)

	assert.Equal(t, "[[0, 1],\n [1, 0]]\n", buf.String())
	assert.Equal(t, 0, g.NodeCount())
}

func TestIdentifierEquality(t *testing.T) {
	assert.NotEqual(t, IntID(1), TextID("1"))
	assert.Equal(t, IntID(1), IntID(1))
	assert.Equal(t, TextID("x"), TextID("x"))

	set := map[NodeID]bool{IntID(1): true, TextID("1"): true}
	assert.Len(t, set, 2)
}

func TestParseNodeID(t *testing.T) {
	tests := []struct {
		in      string
		want    NodeID
		wantErr error
	}{
		{in: "int:42", want: IntID(42)},
		{in: "text:hello", want: TextID("hello")},
		{in: "text:", want: TextID("")},
		{in: "text:a:b", want: TextID("a:b")},
		{in: "int:-1", wantErr: ErrInvalidID},
		{in: "int:x", wantErr: ErrInvalidID},
		{in: "42", wantErr: ErrInvalidID},
		{in: "float:1.5", wantErr: ErrUnknownIDTag},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseNodeID(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestIdentifierAccessors(t *testing.T) {
	v, ok := IntID(3).Int()
	assert.True(t, ok)
	assert.Equal(t, uint64(3), v)

	_, ok = IntID(3).Text()
	assert.False(t, ok)

	s, ok := TextID("n").Text()
	assert.True(t, ok)
	assert.Equal(t, "n", s)

	assert.Equal(t, KindText, TextID("n").Kind())
	assert.True(t, NodeID{}.IsZero())
}

func TestIdentifierAsJSONKey(t *testing.T) {
	in := map[NodeID]EdgeID{IntID(1): TextEdgeID("e"), TextID("1"): IntEdgeID(2)}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"int:1":"text:e","text:1":"int:2"}`, string(data))

	var out map[NodeID]EdgeID
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestZeroIdentifierDoesNotMarshal(t *testing.T) {
	_, err := json.Marshal(NodeID{})
	assert.Error(t, err)
}

func TestZeroIdentifierInsertionIsNoop(t *testing.T) {
	g := New()

	assert.False(t, g.EnsureNode(NodeID{}))
	g.PutNode(Node{})
	g.AddNode(NodeInput{})
	g.AddNodesFrom(Fulls(Node{}))
	g.AddEdgesFrom([]Edge{{Source: IntID(1)}, {Target: IntID(2)}})
	g.Connect(IntID(1), IntID(2), EdgeID{})
	g.Connect(NodeID{}, IntID(2), IntEdgeID(1))

	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.HasNode(NodeID{}))
}

func TestPutNodeDropsZeroAdjacency(t *testing.T) {
	g := New()
	g.PutNode(Node{ID: IntID(1), Adjacency: []Adjacency{
		{Neighbor: IntID(2)},
		{Edge: IntEdgeID(3)},
		{Neighbor: IntID(2), Edge: IntEdgeID(4)},
	}})

	n, ok := g.Node(IntID(1))
	require.True(t, ok)
	assert.Equal(t, []Adjacency{{Neighbor: IntID(2), Edge: IntEdgeID(4)}}, n.Adjacency)
}
