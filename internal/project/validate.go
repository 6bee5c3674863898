package project

import (
	"fmt"

	"vcsmx-driver/internal/diagnostic"
)

// Diagnostic codes emitted by Validate.
const (
	CodeEmptyLibraryName = "empty-library-name"
	CodeDupLibrary       = "duplicate-library"
	CodeNoDirectory      = "missing-library-directory"
	CodeNoSourcePath     = "missing-source-path"
	CodeUnknownKind      = "unknown-file-kind"
	CodeBadStandard      = "invalid-vhdl-standard"
	CodeStandardIgnored  = "standard-ignored"
	CodeBadTop           = "invalid-sim-top"
	CodeUnknownTopLib    = "unknown-sim-library"
)

// Validate checks a loaded project for configuration errors. It never stops
// at the first problem; callers report the full set of diagnostics.
func Validate(p *Project) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	seen := make(map[string]bool)
	for _, lib := range p.Libraries {
		if lib.Name == "" {
			diags.AddError(CodeEmptyLibraryName, "library has no name", "", "")
			continue
		}

		if seen[lib.Name] {
			diags.AddError(CodeDupLibrary,
				fmt.Sprintf("library %q is declared more than once", lib.Name), lib.Name, "")
		}

		seen[lib.Name] = true

		if lib.Directory == "" {
			diags.AddError(CodeNoDirectory,
				fmt.Sprintf("library %q has no target directory", lib.Name), lib.Name, "")
		}

		for _, src := range lib.Sources {
			validateSource(&diags, lib.Name, src)
		}
	}

	if p.Sim != nil {
		validateSim(&diags, p, p.Sim)
	}

	return diags
}

func validateSource(diags *diagnostic.Diagnostics, library string, src SourceFile) {
	if src.Path == "" {
		diags.AddError(CodeNoSourcePath, "source file has no path", library, "")
		return
	}

	if src.Kind == KindUnknown {
		diags.AddError(CodeUnknownKind,
			fmt.Sprintf("cannot determine file kind of %q; set kind explicitly", src.Path),
			library, src.Path)
	}

	if src.Kind == KindVHDL && !src.Standard.Valid() {
		diags.AddError(CodeBadStandard,
			fmt.Sprintf("VHDL standard %q is not supported", src.Standard),
			library, src.Path)
	}

	if src.Kind == KindVerilog && src.Standard != "" {
		diags.AddWarning(CodeStandardIgnored,
			fmt.Sprintf("VHDL standard %q has no effect on a Verilog source", src.Standard),
			library, src.Path)
	}
}

func validateSim(diags *diagnostic.Diagnostics, p *Project, sim *SimConfig) {
	library, _, err := sim.SplitTop()
	if err != nil {
		diags.AddError(CodeBadTop, err.Error(), "", "")
		return
	}

	if _, ok := p.Library(library); !ok {
		diags.AddError(CodeUnknownTopLib,
			fmt.Sprintf("sim top refers to library %q, which is not declared", library),
			library, "")
	}
}
