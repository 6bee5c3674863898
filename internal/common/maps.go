// Package common holds tiny helpers shared across vcsmx-driver packages.
package common

import (
	"cmp"
	"slices"
)

// UnknownStr is the placeholder for values outside an enum's known range.
const UnknownStr = "<unknown>"

// SortedKeys returns the keys of m in ascending order. Map-derived content in
// generated argument files must be emitted through this helper so output is
// deterministic.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
