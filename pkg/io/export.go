package io

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/adjgraph/pkg/errors"
	"github.com/matzehuels/adjgraph/pkg/graph"
	"github.com/matzehuels/adjgraph/pkg/store"
)

// Field names of the persisted object. They are part of the format.
const (
	fieldMatrix = "adjacency_matrix"
	fieldNodes  = "nodes"
	fieldEdges  = "edges"
)

type document struct {
	Matrix *graph.Matrix           `json:"adjacency_matrix"`
	Nodes  map[graph.NodeID]record `json:"nodes"`
	Edges  []edge                  `json:"edges"`
}

type record struct {
	Identifier graph.NodeID `json:"identifier"`
	Adjacency  []adjacency  `json:"adjacency"`
}

type adjacency struct {
	Neighbor graph.NodeID `json:"neighbor"`
	Edge     graph.EdgeID `json:"edge"`
}

type edge struct {
	Source graph.NodeID `json:"source"`
	Target graph.NodeID `json:"target"`
}

func toDocument(g *graph.Graph) document {
	m := g.Matrix()
	doc := document{
		Matrix: &m,
		Nodes:  make(map[graph.NodeID]record, g.NodeCount()),
		Edges:  make([]edge, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		rec := record{Identifier: n.ID, Adjacency: make([]adjacency, len(n.Adjacency))}
		for i, a := range n.Adjacency {
			rec.Adjacency[i] = adjacency{Neighbor: a.Neighbor, Edge: a.Edge}
		}
		doc.Nodes[n.ID] = rec
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, edge{Source: e.Source, Target: e.Target})
	}
	return doc
}

// Marshal encodes g in the persisted JSON format. Map keys are emitted in
// sorted order, so equal graphs produce identical bytes.
func Marshal(g *graph.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes g as JSON and writes it to w. Failures of w are reported as
// IO_FAILURE errors. Write does not close w.
func Write(g *graph.Graph, w io.Writer) error {
	data, err := Marshal(g)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write graph")
	}
	return nil
}

func encode(g *graph.Graph, buf *bytes.Buffer) error {
	enc := json.NewEncoder(buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toDocument(g)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode graph")
	}
	return nil
}

// Save writes g to a JSON file at path, creating or truncating it.
// This is a convenience wrapper around [Write] for file-based output.
func Save(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	if err := Write(g, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", path)
	}
	return nil
}

// Put encodes g and stores it under key.
func Put(ctx context.Context, s store.Store, key string, g *graph.Graph) error {
	if err := errors.ValidateStoreKey(key); err != nil {
		return err
	}
	data, err := Marshal(g)
	if err != nil {
		return err
	}
	if err := s.Put(ctx, key, data); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "store graph %s", key)
	}
	return nil
}
