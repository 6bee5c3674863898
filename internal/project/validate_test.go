package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorCodes(t *testing.T, p *Project) []string {
	t.Helper()

	diags := Validate(p)

	var out []string
	for _, e := range diags.Errors {
		out = append(out, e.Code)
	}

	return out
}

func TestValidateOK(t *testing.T) {
	p := &Project{
		Libraries: []Library{{
			Name:      "work",
			Directory: "./work",
			Sources: []SourceFile{{
				Path:     "a.vhd",
				Kind:     KindVHDL,
				Standard: VHDL2008,
				Library:  "work",
			}},
		}},
		Sim: &SimConfig{Top: "work.tb"},
	}

	diags := Validate(p)
	assert.True(t, diags.IsValid())
	assert.NoError(t, diags.Error())
}

func TestValidateDuplicateLibrary(t *testing.T) {
	p := &Project{Libraries: []Library{
		{Name: "work", Directory: "./a"},
		{Name: "work", Directory: "./b"},
	}}

	assert.Contains(t, errorCodes(t, p), CodeDupLibrary)
}

func TestValidateEmptyNameAndDirectory(t *testing.T) {
	p := &Project{Libraries: []Library{
		{Name: "", Directory: "./a"},
		{Name: "nodir"},
	}}

	got := errorCodes(t, p)
	assert.Contains(t, got, CodeEmptyLibraryName)
	assert.Contains(t, got, CodeNoDirectory)
}

func TestValidateSources(t *testing.T) {
	p := &Project{Libraries: []Library{{
		Name:      "work",
		Directory: "./work",
		Sources: []SourceFile{
			{Path: "", Library: "work"},
			{Path: "mystery.txt", Kind: KindUnknown, Library: "work"},
			{Path: "old.vhd", Kind: KindVHDL, Standard: VHDLStandard("1993"), Library: "work"},
		},
	}}}

	got := errorCodes(t, p)
	assert.Contains(t, got, CodeNoSourcePath)
	assert.Contains(t, got, CodeUnknownKind)
	assert.Contains(t, got, CodeBadStandard)
}

func TestValidateWarnsAboutIgnoredStandard(t *testing.T) {
	p := &Project{Libraries: []Library{{
		Name:      "work",
		Directory: "./work",
		Sources: []SourceFile{{
			Path:     "tb.sv",
			Kind:     KindVerilog,
			Standard: VHDL2008,
			Library:  "work",
		}},
	}}}

	diags := Validate(p)
	assert.True(t, diags.IsValid())
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, CodeStandardIgnored, diags.Warnings[0].Code)
}

func TestValidateSimTop(t *testing.T) {
	p := &Project{
		Libraries: []Library{{Name: "work", Directory: "./work"}},
		Sim:       &SimConfig{Top: "noseparator"},
	}
	assert.Contains(t, errorCodes(t, p), CodeBadTop)

	p.Sim.Top = "ghost.tb"
	assert.Contains(t, errorCodes(t, p), CodeUnknownTopLib)
}

func TestValidateErrorMessageCarriesContext(t *testing.T) {
	p := &Project{Libraries: []Library{{
		Name:      "work",
		Directory: "./work",
		Sources:   []SourceFile{{Path: "mystery.txt", Library: "work"}},
	}}}

	diags := Validate(p)
	require.True(t, diags.HasErrors())

	msg := diags.Errors[0].String()
	assert.Contains(t, msg, "[work]")
	assert.Contains(t, msg, "mystery.txt")
}
