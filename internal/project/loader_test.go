package project

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
libraries:
  - name: work
    directory: ./libraries/work
    sources:
      - path: src/counter.vhd
        standard: "93"
        vhdl_flags: [-smart_order]
      - path: src/tb_counter.sv
        defines:
          WIDTH: "8"
        include_dirs:
          - include
        verilog_flags: [-timescale=1ns/1ps]
  - name: extras
    directory: ./libraries/extras
    sources:
      - path: src/pkg.vhd
sim:
  top: work.tb_counter
  generics:
    depth: 4
    ratio: 0.5
    dump: true
    name: smoke
  flags: [-no_save]
`

	p, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "1", p.Version)
	require.Len(t, p.Libraries, 2)

	work := p.Libraries[0]
	assert.Equal(t, "work", work.Name)
	assert.Equal(t, "./libraries/work", work.Directory)
	require.Len(t, work.Sources, 2)

	vhd := work.Sources[0]
	assert.Equal(t, KindVHDL, vhd.Kind)
	assert.Equal(t, VHDL93, vhd.Standard)
	assert.Equal(t, "work", vhd.Library)
	assert.Equal(t, []string{"-smart_order"}, vhd.VHDLFlags)

	sv := work.Sources[1]
	assert.Equal(t, KindVerilog, sv.Kind)
	assert.Equal(t, "8", sv.Defines["WIDTH"])
	assert.Equal(t, []string{"include"}, sv.IncludeDirs)
	assert.Equal(t, []string{"-timescale=1ns/1ps"}, sv.VerilogFlags)

	// Defaults: kind inferred from extension, standard defaulted.
	pkg := p.Libraries[1].Sources[0]
	assert.Equal(t, KindVHDL, pkg.Kind)
	assert.Equal(t, DefaultVHDLStandard, pkg.Standard)
	assert.Equal(t, "extras", pkg.Library)

	require.NotNil(t, p.Sim)
	assert.Equal(t, "work.tb_counter", p.Sim.Top)
	assert.Equal(t, []string{"-no_save"}, p.Sim.Flags)

	// Generic kinds follow the YAML spelling.
	assert.Equal(t, IntGeneric(4), p.Sim.Generics["depth"])
	assert.Equal(t, RealGeneric(0.5), p.Sim.Generics["ratio"])
	assert.Equal(t, BoolGeneric(true), p.Sim.Generics["dump"])
	assert.Equal(t, StringGeneric("smoke"), p.Sim.Generics["name"])
}

func TestParseMinimal(t *testing.T) {
	yaml := `
libraries:
  - name: work
    directory: ./work
`

	p, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "1", p.Version)
	require.Len(t, p.Libraries, 1)
	assert.Nil(t, p.Sim)
}

func TestParseExplicitKindOverridesExtension(t *testing.T) {
	yaml := `
libraries:
  - name: work
    directory: ./work
    sources:
      - path: src/wrapper.vhd
        kind: verilog
`

	p, err := Parse([]byte(yaml))
	require.NoError(t, err)
	assert.Equal(t, KindVerilog, p.Libraries[0].Sources[0].Kind)
}

func TestParseRejectsBadKind(t *testing.T) {
	yaml := `
libraries:
  - name: work
    directory: ./work
    sources:
      - path: src/a.vhd
        kind: cobol
`

	_, err := Parse([]byte(yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown file kind")
}

func TestDebugDumpProject(t *testing.T) {
	yaml := `
libraries:
  - name: work
    directory: ./work
    sources:
      - path: src/a.vhd
`

	p, err := Parse([]byte(yaml))
	require.NoError(t, err)

	if testing.Verbose() {
		spew.Dump(p)
	}
}

func TestLibraryLookup(t *testing.T) {
	p := &Project{Libraries: []Library{
		{Name: "work", Directory: "./work"},
		{Name: "extras", Directory: "./extras"},
	}}

	lib, ok := p.Library("extras")
	require.True(t, ok)
	assert.Equal(t, "./extras", lib.Directory)

	_, ok = p.Library("missing")
	assert.False(t, ok)
}

func TestSplitTop(t *testing.T) {
	_, _, err := SimConfig{Top: "justentity"}.SplitTop()
	require.Error(t, err)

	lib, entity, err := SimConfig{Top: "work.tb_top"}.SplitTop()
	require.NoError(t, err)
	assert.Equal(t, "work", lib)
	assert.Equal(t, "tb_top", entity)
}
