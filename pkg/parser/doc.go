// Package parser reads the indentation-based configuration dialect used by
// the council protocol files into a tree.Value.
//
// # Dialect
//
// The dialect is a subset of YAML:
//
//	# comments, full-line or trailing
//	resource_budget:
//	  time:
//	    total: {quick: 60, standard: 180, deep: 300}
//	    strict: false
//	modes:
//	  - deep
//	  - standard
//	members:
//	  - id: claude
//	    weight: 1.5
//	prompt: |
//	  Multi-line text kept verbatim.
//
// Anchors, aliases, multiple documents and tags are not part of the
// dialect. An empty "key:" opens a sequence when the next non-blank,
// non-comment line is a list item and a mapping otherwise.
//
// # Pipeline
//
// Each physical line is classified by the scanner (blank, comment, list
// item, key/value, block continuation). The builder consumes the records in
// order with an explicit stack of (indent, container) frames: lines pop the
// stack back to their nearest shallower ancestor and then add to it. Inline
// [..] and {..} collections are split on top-level commas only, so quoted
// commas and nested collections survive.
//
// # Backends
//
// Two interchangeable implementations satisfy Parser: Native, which needs no
// external library, and YAMLv3, which delegates to gopkg.in/yaml.v3. Select
// picks one at startup; "auto" uses yaml.v3 only if it reproduces the native
// tree for a probe document.
//
// # Errors
//
// Structural problems fail the parse with an *Error of kind
// KindMalformedStructure carrying the line number. A block scalar that runs
// into the end of input is closed implicitly and reported as a
// KindUnterminatedBlockScalar warning in Result.Warnings.
package parser
