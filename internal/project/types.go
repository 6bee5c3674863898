package project

import (
	"fmt"
	"strings"
)

// VHDLStandard is the VHDL language revision a source file is written
// against.
type VHDLStandard string

const (
	VHDL87   VHDLStandard = "87"
	VHDL93   VHDLStandard = "93"
	VHDL2002 VHDLStandard = "2002"
	VHDL2008 VHDLStandard = "2008"
)

// DefaultVHDLStandard is applied to VHDL sources that do not pin a revision.
const DefaultVHDLStandard = VHDL2008

// Valid reports whether s is a revision this driver knows how to map to a
// tool flag.
func (s VHDLStandard) Valid() bool {
	switch s {
	case VHDL87, VHDL93, VHDL2002, VHDL2008:
		return true
	default:
		return false
	}
}

// SourceFile is one HDL source file together with its per-file tool options.
type SourceFile struct {
	// Path to the source file, relative to the project file's directory or
	// absolute.
	Path string `yaml:"path"`

	// Kind discriminates the HDL variant. Inferred from the extension when
	// omitted in the project file.
	Kind FileKind `yaml:"kind,omitempty"`

	// Standard is the VHDL revision. Only meaningful for VHDL sources;
	// defaults to DefaultVHDLStandard.
	Standard VHDLStandard `yaml:"standard,omitempty"`

	// Defines are Verilog preprocessor definitions passed as +define+K=V.
	Defines map[string]string `yaml:"defines,omitempty"`

	// IncludeDirs are Verilog include directories passed as +incdir+<dir>.
	IncludeDirs []string `yaml:"include_dirs,omitempty"`

	// VHDLFlags are extra vhdlan flags for this file.
	VHDLFlags []string `yaml:"vhdl_flags,omitempty"`

	// VerilogFlags are extra vlogan flags for this file.
	VerilogFlags []string `yaml:"verilog_flags,omitempty"`

	// Library is the name of the owning library. Populated during load.
	Library string `yaml:"-"`
}

// Library is a named, directory-backed compilation unit grouping.
type Library struct {
	Name      string       `yaml:"name"`
	Directory string       `yaml:"directory"`
	Sources   []SourceFile `yaml:"sources"`
}

// SimConfig describes the simulation to run after compilation.
type SimConfig struct {
	// Top is the design top in "library.entity" form.
	Top string `yaml:"top"`

	// Generics are top-level generic/parameter assignments.
	Generics map[string]GenericValue `yaml:"generics,omitempty"`

	// Flags are extra flags for the elaboration step.
	Flags []string `yaml:"flags,omitempty"`
}

// SplitTop splits Top into its library and entity parts.
func (c SimConfig) SplitTop() (library, entity string, err error) {
	library, entity, ok := strings.Cut(c.Top, ".")
	if !ok || library == "" || entity == "" {
		return "", "", fmt.Errorf("top %q is not of the form library.entity", c.Top)
	}

	return library, entity, nil
}

// Project is the full build description: an ordered list of libraries and an
// optional simulation configuration.
type Project struct {
	Version   string     `yaml:"version,omitempty"`
	Libraries []Library  `yaml:"libraries"`
	Sim       *SimConfig `yaml:"sim,omitempty"`
}

// Library returns the library with the given name.
func (p *Project) Library(name string) (*Library, bool) {
	for i := range p.Libraries {
		if p.Libraries[i].Name == name {
			return &p.Libraries[i], true
		}
	}

	return nil, false
}
