// Package argfile builds the line-oriented argument files consumed by the
// vendor tools through their -f/-file options.
//
// A List is an ordered sequence of entries with a single serialization
// function, so every call site formats flags and values the same way.
// Emission order is insertion order; callers adding map-derived entries must
// iterate sorted keys to keep the generated files deterministic.
package argfile

import (
	"fmt"
	"os"
	"strings"
)

const filePerm = 0o644

// List is an ordered argument list destined for an args file.
type List struct {
	entries []string
}

// Add appends a bare flag or token.
func (l *List) Add(flag string) {
	l.entries = append(l.entries, flag)
}

// Addf appends a formatted entry.
func (l *List) Addf(format string, args ...any) {
	l.entries = append(l.entries, fmt.Sprintf(format, args...))
}

// AddValue appends a flag with a value, separated by a single space on one
// line (the form the vendor tools expect inside args files).
func (l *List) AddValue(flag, value string) {
	l.entries = append(l.entries, flag+" "+value)
}

// AddAll appends all given entries in order.
func (l *List) AddAll(entries []string) {
	l.entries = append(l.entries, entries...)
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// Lines returns a copy of the entries in emission order.
func (l *List) Lines() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)

	return out
}

// Bytes serializes the list, one entry per line with a trailing newline.
func (l *List) Bytes() []byte {
	if len(l.entries) == 0 {
		return nil
	}

	return []byte(strings.Join(l.entries, "\n") + "\n")
}

// WriteFile writes the serialized list to path, overwriting any existing
// file. Creating the parent directory is the caller's responsibility.
func (l *List) WriteFile(path string) error {
	if err := os.WriteFile(path, l.Bytes(), filePerm); err != nil {
		return fmt.Errorf("writing args file %s: %w", path, err)
	}

	return nil
}

// EscapeDefine formats a Verilog +define+ entry, escaping embedded double
// quotes in the value.
func EscapeDefine(key, value string) string {
	return fmt.Sprintf("+define+%s=%s", key, strings.ReplaceAll(value, `"`, `\"`))
}
