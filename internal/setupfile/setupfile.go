package setupfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vcsmx-driver/internal/logging"
)

// Declaration syntax tokens.
const (
	declKeyword   = "MAP"
	declDelimiter = ":"
)

// File permission for written setup files.
const filePerm = 0o644

// DuplicatePolicy selects how duplicate declarations for the same library
// name are resolved during parsing.
type DuplicatePolicy int

const (
	// LastWins keeps the path from the last declaration of a name. This is
	// the default, matching how the consuming toolchain treats hand-edited
	// files.
	LastWins DuplicatePolicy = iota
	// FirstWins keeps the path from the first declaration of a name.
	FirstWins
)

// ParseConfig controls parsing behavior.
type ParseConfig struct {
	// Duplicates selects the resolution policy for repeated declarations
	// of the same library name.
	Duplicates DuplicatePolicy

	// Logger receives warnings about skipped malformed declarations.
	// May be nil.
	Logger *logging.Logger
}

// DefaultParseConfig returns the standard parse configuration.
func DefaultParseConfig() ParseConfig {
	return ParseConfig{Duplicates: LastWins}
}

// line is a single document line: either pass-through text or a declaration
// slot for a library name whose current path lives in SetupFile.decls.
type line struct {
	text string // pass-through content, meaningful when name is empty
	name string // declaration slot when non-empty
}

// SetupFile is the in-memory form of one setup document. Declared names and
// their paths are decoupled from the surrounding pass-through text so that a
// write always emits exactly one declaration per known name.
type SetupFile struct {
	lines []line
	decls map[string]string
}

// Parse parses setup file contents. It never fails: lines that are not
// well-formed declarations are retained as pass-through content.
func Parse(data []byte, cfg ParseConfig) *SetupFile {
	s := &SetupFile{decls: make(map[string]string)}

	if len(data) == 0 {
		return s
	}

	text := strings.TrimSuffix(string(data), "\n")

	for _, raw := range strings.Split(text, "\n") {
		name, path, ok := parseDecl(raw)
		if !ok {
			if looksLikeDecl(raw) && cfg.Logger != nil {
				cfg.Logger.Warn("skipping malformed library declaration: %q", raw)
			}
			s.lines = append(s.lines, line{text: raw})
			continue
		}

		if _, seen := s.decls[name]; seen {
			// Keep the first slot; the policy decides which path survives.
			if cfg.Duplicates == LastWins {
				s.decls[name] = path
			}
			continue
		}

		s.lines = append(s.lines, line{name: name})
		s.decls[name] = path
	}

	return s
}

// ParseFile reads and parses the setup file at path. The error wraps the
// underlying I/O failure; use os.IsNotExist (or errors.Is with fs.ErrNotExist)
// to detect a missing file.
func ParseFile(path string, cfg ParseConfig) (*SetupFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading setup file %s: %w", path, err)
	}

	return Parse(data, cfg), nil
}

// parseDecl recognizes a declaration line. The line must consist of exactly
// the keyword, the delimiter, a non-empty name and a non-empty path.
func parseDecl(raw string) (name, path string, ok bool) {
	fields := strings.Fields(raw)
	if len(fields) != 4 {
		return "", "", false
	}

	if fields[0] != declKeyword || fields[1] != declDelimiter {
		return "", "", false
	}

	return fields[2], fields[3], true
}

// looksLikeDecl reports whether a non-declaration line starts with the
// declaration keyword, i.e. was probably intended as a declaration.
func looksLikeDecl(raw string) bool {
	fields := strings.Fields(raw)
	return len(fields) > 0 && fields[0] == declKeyword
}

// Get returns the path currently bound to name. It only consults the parsed
// in-memory state, never the filesystem.
func (s *SetupFile) Get(name string) (string, bool) {
	path, ok := s.decls[name]
	return path, ok
}

// Set inserts or updates the binding for name. An existing name keeps its
// position in the document; a new name is appended at the end.
func (s *SetupFile) Set(name, path string) {
	if _, ok := s.decls[name]; !ok {
		s.lines = append(s.lines, line{name: name})
	}

	s.decls[name] = path
}

// Names returns the declared library names in emission order.
func (s *SetupFile) Names() []string {
	var names []string
	for _, l := range s.lines {
		if l.name != "" {
			names = append(names, l.name)
		}
	}

	return names
}

// Mappings returns a copy of the name to path map.
func (s *SetupFile) Mappings() map[string]string {
	m := make(map[string]string, len(s.decls))
	for name, path := range s.decls {
		m[name] = path
	}

	return m
}

// Bytes serializes the document. Output always ends with a newline when the
// document is non-empty.
func (s *SetupFile) Bytes() []byte {
	if len(s.lines) == 0 {
		return nil
	}

	var b strings.Builder
	for _, l := range s.lines {
		if l.name != "" {
			b.WriteString(declKeyword)
			b.WriteString(" " + declDelimiter + " ")
			b.WriteString(l.name)
			b.WriteString(" ")
			b.WriteString(s.decls[l.name])
		} else {
			b.WriteString(l.text)
		}

		b.WriteString("\n")
	}

	return []byte(b.String())
}

// WriteFile serializes the document to path, overwriting any existing file.
// The content is written to a temporary file in the same directory and
// renamed into place so a crash cannot leave a truncated setup file.
func (s *SetupFile) WriteFile(path string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("creating temporary setup file in %s: %w", dir, err)
	}

	tmpName := tmp.Name()
	if _, err := tmp.Write(s.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temporary setup file %s: %w", tmpName, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temporary setup file %s: %w", tmpName, err)
	}

	if err := os.Chmod(tmpName, filePerm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting permissions on %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming setup file into place at %s: %w", path, err)
	}

	return nil
}

// DefaultContents returns the template for a fresh setup file. All template
// lines are comments, so they survive parse/write cycles as pass-through
// content.
func DefaultContents(outputPath string) []byte {
	return []byte(fmt.Sprintf(`-- synopsys_sim.setup: defines the locations of compiled libraries.
-- Library mappings in this file are maintained by vcsmx-driver; other lines are kept intact.
-- WORK > DEFAULT
-- DEFAULT : %s/libraries/work
-- TIMEBASE = NS
`, outputPath))
}
