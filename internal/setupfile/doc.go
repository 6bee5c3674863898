// Package setupfile parses, queries, and rewrites the synopsys_sim.setup
// library-mapping file.
//
// The file is a legacy line-oriented format. Library declarations have the
// shape
//
//	MAP : <name> <path>
//
// with whitespace-delimited fields. Every other line (comments starting with
// "--", toolchain directives this package does not understand, blank lines)
// is pass-through content: it is preserved verbatim and in its original
// order across a parse/write cycle.
//
// # Key properties
//
//   - Skip-and-preserve parsing: a malformed declaration never aborts the
//     parse, it is kept as pass-through content and reported via the
//     optional logger.
//   - No duplication: repeated Set calls for the same name produce exactly
//     one declaration line on write.
//   - Deterministic emission: existing declarations keep their original
//     position in the document, new names are appended at the end.
//   - Round-trip stability: parsing a freshly written file and writing it
//     again produces byte-identical output.
//
// Duplicate declarations for one name in an input file are resolved by a
// configurable policy; LastWins is the default for compatibility with
// hand-edited files.
package setupfile
