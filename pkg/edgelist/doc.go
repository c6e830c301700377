// Package edgelist defines the raw input of tiegraph: an ordered list of
// labeled, weighted, directed relationships between entities.
//
// # Relations
//
// A [Relation] is a (Source, Target, Weight) triple. Labels are opaque
// strings; the same label always names the same entity. Duplicate relations
// and self-loops are allowed, and the order of the list is significant: the
// graph builder assigns node identities in first-seen order and keeps
// adjacency in declaration order.
//
// # File Formats
//
// Edge lists can be decoded from JSON, TOML and YAML. All three share the
// same shape, a top-level "edges" array of objects:
//
//	{
//	  "edges": [
//	    {"source": "Ada", "target": "Cora", "weight": 1},
//	    {"source": "Cora", "target": "Ada"}
//	  ]
//	}
//
// The TOML equivalent uses an array of tables:
//
//	[[edges]]
//	source = "Ada"
//	target = "Cora"
//	weight = 1
//
// An omitted weight defaults to [DefaultWeight]. Labels are checked with
// [errors.ValidateLabel]; decoding and validation failures are reported as
// structured errors with INVALID_FORMAT or INVALID_INPUT codes.
//
// Use [Load] to read a file with the format chosen from its extension, or
// [Read] to decode from any io.Reader.
//
// [errors.ValidateLabel]: github.com/matzehuels/tiegraph/pkg/errors.ValidateLabel
package edgelist
