// Package diagnostic provides structured warnings and errors collected while
// validating a project description and running a build session.
//
// Key capabilities:
//   - Project validation errors (duplicate libraries, missing paths)
//   - Per-file compile failure reports carrying library and file context
//   - Aggregation into a single error for CLI exit handling
package diagnostic
