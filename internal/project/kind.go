package project

import (
	"fmt"
	"path/filepath"
	"strings"
)

//go:generate go tool stringer -type=FileKind -output=kind_string.go

// FileKind discriminates the HDL variant of a source file. The zero value is
// invalid; compile sites switch exhaustively over the known kinds and treat
// anything else as an unrecoverable configuration error.
type FileKind int

const (
	KindUnknown FileKind = iota
	KindVHDL
	KindVerilog

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// ParseFileKind converts the YAML spelling of a kind to a FileKind.
func ParseFileKind(s string) (FileKind, error) {
	switch strings.ToLower(s) {
	case "vhdl":
		return KindVHDL, nil
	case "verilog", "systemverilog":
		return KindVerilog, nil
	default:
		return KindUnknown, fmt.Errorf("unknown file kind %q", s)
	}
}

// KindFromPath infers the file kind from a source path's extension.
// Returns KindUnknown for extensions this driver does not recognize.
func KindFromPath(path string) FileKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vhd", ".vhdl":
		return KindVHDL
	case ".v", ".sv", ".svh", ".vp":
		return KindVerilog
	default:
		return KindUnknown
	}
}
