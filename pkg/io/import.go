package io

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/adjgraph/pkg/errors"
	"github.com/matzehuels/adjgraph/pkg/graph"
	"github.com/matzehuels/adjgraph/pkg/store"
)

// Read reads the whole of r and decodes it into a Graph.
//
// Read distinguishes two failure kinds:
//   - IO_FAILURE: reading from r failed
//   - DECODE_FAILURE: the content is not valid JSON, or does not match the
//     graph shape (missing field or identifier, unknown identifier tag,
//     non-square matrix, node key that disagrees with its record)
//
// On failure no Graph is returned. Read does not close r.
func Read(r io.Reader) (*graph.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read graph")
	}
	return Unmarshal(data)
}

// Unmarshal decodes a graph from its persisted JSON form.
func Unmarshal(data []byte) (*graph.Graph, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "decode graph")
	}
	g, err := fromDocument(doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "decode graph")
	}
	return g, nil
}

func fromDocument(doc document) (*graph.Graph, error) {
	switch {
	case doc.Matrix == nil:
		return nil, fmt.Errorf("missing field %q", fieldMatrix)
	case doc.Nodes == nil:
		return nil, fmt.Errorf("missing field %q", fieldNodes)
	case doc.Edges == nil:
		return nil, fmt.Errorf("missing field %q", fieldEdges)
	}

	g := graph.NewWithMatrix(*doc.Matrix)
	for key, rec := range doc.Nodes {
		if rec.Identifier != key {
			return nil, fmt.Errorf("node %s: identifier %q does not match key", key, rec.Identifier.String())
		}
		n := graph.Node{ID: key}
		for i, a := range rec.Adjacency {
			if a.Neighbor.IsZero() || a.Edge.IsZero() {
				return nil, fmt.Errorf("node %s: adjacency %d: missing identifier", key, i)
			}
			n.Adjacency = append(n.Adjacency, graph.Adjacency{Neighbor: a.Neighbor, Edge: a.Edge})
		}
		g.PutNode(n)
	}

	edges := make([]graph.Edge, len(doc.Edges))
	for i, e := range doc.Edges {
		if e.Source.IsZero() || e.Target.IsZero() {
			return nil, fmt.Errorf("edge %d: missing endpoint", i)
		}
		edges[i] = graph.Edge{Source: e.Source, Target: e.Target}
	}
	g.AddEdgesFrom(edges)
	return g, nil
}

// Load reads a JSON file at path and returns the decoded Graph.
//
// Load returns an IO_FAILURE error if the file cannot be opened or read and
// the same DECODE_FAILURE errors as [Read] for malformed content.
func Load(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}

// Get loads the graph stored under key. A missing key is reported as a
// NOT_FOUND error.
func Get(ctx context.Context, s store.Store, key string) (*graph.Graph, error) {
	if err := errors.ValidateStoreKey(key); err != nil {
		return nil, err
	}
	data, ok, err := s.Get(ctx, key)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "fetch graph %s", key)
	}
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "graph %s not found", key)
	}
	return Unmarshal(data)
}
