// Package graph provides the undirected graph model: a node table keyed by
// identifier, an ordered edge list and a dense adjacency matrix.
//
// # Identifiers
//
// Nodes are identified by [NodeID], a two-variant value that is either an
// integer ([IntID]) or a text label ([TextID]). Identifiers are comparable
// and variant-aware, so IntID(1) and TextID("1") are different nodes. Their
// tagged text form ("int:1", "text:a") is stable and is used by the
// persisted format.
//
// # Insertion
//
// The graph has two distinct node insertion paths:
//
//   - [Graph.EnsureNode]: inserts a node only if the identifier is absent.
//     Repeating the call is a no-op and never touches existing adjacency data.
//   - [Graph.PutNode]: inserts unconditionally, replacing the stored node.
//
// [NodeInput] wraps either form ([ByID], [Full]) so a mixed batch can be fed
// to [Graph.AddNodesFrom]. [Graph.AddEdgesFrom] appends edges and then ensures
// both endpoints of every edge exist.
//
//	g := graph.New()
//	g.AddEdgesFrom([]graph.Edge{
//	    {Source: graph.IntID(1), Target: graph.IntID(2)},
//	    {Source: graph.IntID(2), Target: graph.IntID(3)},
//	})
//	g.NodeCount() // 3
//
// # Adjacency Matrix
//
// Insertion never resizes or edits the matrix, and the random generator in
// package generate fills only the matrix. [Graph.MaterializeMatrix] derives a
// matrix from the node table and edge list on request; [Graph.SetMatrix]
// stores it.
//
// # Concurrency
//
// A Graph has a single owner. Callers that share one across goroutines must
// guard the whole value with their own lock.
package graph
