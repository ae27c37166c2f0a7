// Package io persists graphs as JSON and reads them back.
//
// # JSON Format
//
// A graph is one object with three required fields:
//
//	{
//	  "adjacency_matrix": [[0, 1], [1, 0]],
//	  "nodes": {
//	    "int:1":  {"identifier": "int:1",  "adjacency": [{"neighbor": "text:a", "edge": "int:0"}]},
//	    "text:a": {"identifier": "text:a", "adjacency": [{"neighbor": "int:1",  "edge": "int:0"}]}
//	  },
//	  "edges": [{"source": "int:1", "target": "text:a"}]
//	}
//
// Identifiers are written in their tagged text form: "int:<n>" for integer
// identifiers and "text:<label>" for text identifiers. The tags and field
// names are stable, so a graph written by [Write] is read back by [Read] with
// the same matrix, node keys, adjacency lists and edge order.
//
// # Errors
//
// Failures carry a code from package errors:
//
//   - IO_FAILURE: the writer, reader, file or store failed
//   - DECODE_FAILURE: the content is not JSON or not a graph
//   - NOT_FOUND: [Get] found no graph under the key
//
// Nothing in this package terminates the process; callers decide how fatal a
// failure is.
//
// # Sinks and Sources
//
// [Write] and [Read] work on any io.Writer and io.Reader. [Save] and [Load]
// wrap them for files, and [Put] and [Get] for a store.Store.
package io
