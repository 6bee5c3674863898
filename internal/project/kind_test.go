package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFileKind(t *testing.T) {
	cases := []struct {
		in   string
		want FileKind
	}{
		{"vhdl", KindVHDL},
		{"VHDL", KindVHDL},
		{"verilog", KindVerilog},
		{"systemverilog", KindVerilog},
	}

	for _, c := range cases {
		got, err := ParseFileKind(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	_, err := ParseFileKind("ada")
	assert.Error(t, err)
}

func TestKindFromPath(t *testing.T) {
	cases := []struct {
		path string
		want FileKind
	}{
		{"rtl/top.vhd", KindVHDL},
		{"rtl/top.VHDL", KindVHDL},
		{"rtl/top.v", KindVerilog},
		{"tb/tb_top.sv", KindVerilog},
		{"docs/readme.md", KindUnknown},
		{"Makefile", KindUnknown},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, KindFromPath(c.path), c.path)
	}
}

func TestFileKindString(t *testing.T) {
	assert.Equal(t, "KindVHDL", KindVHDL.String())
	assert.Equal(t, "KindVerilog", KindVerilog.String())
	assert.Equal(t, "FileKind(17)", FileKind(17).String())
}

func TestGenericValueLiteral(t *testing.T) {
	assert.Equal(t, "hello", StringGeneric("hello").Literal())
	assert.Equal(t, "true", BoolGeneric(true).Literal())
	assert.Equal(t, "-42", IntGeneric(-42).Literal())
	assert.Equal(t, "0.5", RealGeneric(0.5).Literal())
}

func TestGenericValueQuoting(t *testing.T) {
	assert.True(t, StringGeneric("x").NeedsQuoting())
	assert.True(t, BoolGeneric(false).NeedsQuoting())
	assert.False(t, IntGeneric(1).NeedsQuoting())
	assert.False(t, RealGeneric(1.5).NeedsQuoting())

	// A numeric-looking string stays a string and keeps its quoting.
	assert.True(t, StringGeneric("42").NeedsQuoting())
}
