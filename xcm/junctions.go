// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"strings"

	"golang.org/x/exp/slices"
)

// MaxJunctions is the longest interior any supported xcm version can encode.
const MaxJunctions = 8

// Junctions is an ordered path. Index 0 is the hop closest to the root.
type Junctions []Junction

// Append returns a copy of j with components added at the leaf end.
func (j Junctions) Append(components ...Junction) Junctions {
	result := make(Junctions, 0, len(j)+len(components))
	result = append(result, j...)
	return append(result, components...)
}

// Prepend returns a copy of j with components added at the root end.
func (j Junctions) Prepend(components ...Junction) Junctions {
	result := make(Junctions, 0, len(j)+len(components))
	result = append(result, components...)
	return append(result, j...)
}

// CommonPrefixLength returns the number of leading junctions j and other agree on.
func (j Junctions) CommonPrefixLength(other Junctions) int {
	n := len(j)
	if len(other) < n {
		n = len(other)
	}

	for i := 0; i < n; i++ {
		if !j[i].Equal(other[i]) {
			return i
		}
	}
	return n
}

func (j Junctions) Equal(other Junctions) bool {
	return slices.EqualFunc(j, other, func(a, b Junction) bool { return a.Equal(b) })
}

func (j Junctions) String() string {
	parts := make([]string, len(j))
	for i, junction := range j {
		parts[i] = junction.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
