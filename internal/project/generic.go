package project

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// GenericKind tags the declared type of a generic value.
type GenericKind int

const (
	GenericInvalid GenericKind = iota
	GenericString
	GenericBool
	GenericInteger
	GenericReal
)

// GenericValue is a top-level generic/parameter assignment. The kind is the
// type spelled in the project file, not guessed from the text: a YAML string
// "42" stays a string generic and is quoted on the simulator command line,
// while a bare 42 is an integer generic and is not.
type GenericValue struct {
	Kind GenericKind

	Str  string
	Bool bool
	Int  int64
	Real float64
}

// StringGeneric returns a string-kinded generic value.
func StringGeneric(v string) GenericValue {
	return GenericValue{Kind: GenericString, Str: v}
}

// BoolGeneric returns a bool-kinded generic value.
func BoolGeneric(v bool) GenericValue {
	return GenericValue{Kind: GenericBool, Bool: v}
}

// IntGeneric returns an integer-kinded generic value.
func IntGeneric(v int64) GenericValue {
	return GenericValue{Kind: GenericInteger, Int: v}
}

// RealGeneric returns a real-kinded generic value.
func RealGeneric(v float64) GenericValue {
	return GenericValue{Kind: GenericReal, Real: v}
}

// Literal returns the value's text form without any quoting applied.
func (v GenericValue) Literal() string {
	switch v.Kind {
	case GenericString:
		return v.Str
	case GenericBool:
		return strconv.FormatBool(v.Bool)
	case GenericInteger:
		return strconv.FormatInt(v.Int, 10)
	case GenericReal:
		return strconv.FormatFloat(v.Real, 'g', -1, 64)
	default:
		return ""
	}
}

// NeedsQuoting reports whether the value must be quoted in the simulator's
// generics file. Strings and booleans are quoted, numeric values are not.
func (v GenericValue) NeedsQuoting() bool {
	return v.Kind == GenericString || v.Kind == GenericBool
}

// UnmarshalYAML implements custom YAML unmarshaling for GenericValue.
// The YAML scalar tag decides the kind.
func (v *GenericValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("generic value must be a scalar, got %v", node.Kind)
	}

	switch node.Tag {
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}

		*v = BoolGeneric(b)

		return nil

	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return err
		}

		*v = IntGeneric(i)

		return nil

	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}

		*v = RealGeneric(f)

		return nil

	default:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}

		*v = StringGeneric(s)

		return nil
	}
}

// MarshalYAML implements custom YAML marshaling for GenericValue.
func (v GenericValue) MarshalYAML() (any, error) {
	switch v.Kind {
	case GenericString:
		return v.Str, nil
	case GenericBool:
		return v.Bool, nil
	case GenericInteger:
		return v.Int, nil
	case GenericReal:
		return v.Real, nil
	default:
		return nil, fmt.Errorf("cannot marshal invalid generic value")
	}
}

// UnmarshalYAML implements custom YAML unmarshaling for FileKind, accepting
// the lowercase spellings used in project files.
func (k *FileKind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := ParseFileKind(s)
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}

// MarshalYAML implements custom YAML marshaling for FileKind.
func (k FileKind) MarshalYAML() (any, error) {
	switch k {
	case KindVHDL:
		return "vhdl", nil
	case KindVerilog:
		return "verilog", nil
	default:
		return nil, fmt.Errorf("cannot marshal %s", k)
	}
}
