// Package mechanism maps abstract signature scheme identities, a family
// plus a NIST security level, to the concrete mechanism names understood
// by post-quantum signature backends.
//
// The same scheme has been published under different identifiers over
// time: ML-DSA-65 is the FIPS 204 name for what backends long called
// Dilithium3, and SLH-DSA-SHA2-192f is the FIPS 205 name for
// SPHINCS+-SHA2-192f-simple. Resolution tries the modern name first and
// falls back to the legacy ones, so the library works against both
// current and older backends.
package mechanism

import (
	"fmt"
	"sort"
)

// Family identifies a signature scheme family. The string value is also
// the domain label used in deterministic mock key derivation, so it must
// stay stable across releases.
type Family string

const (
	// Dilithium is the lattice-based CRYSTALS-Dilithium family (ML-DSA).
	Dilithium Family = "dilithium"
	// Sphincs is the hash-based SPHINCS+ family (SLH-DSA).
	Sphincs Family = "sphincs"
)

// variants lists the acceptable mechanism names for each (family, level),
// preferred modern name first, legacy names after.
var variants = map[Family]map[int][]string{
	Dilithium: {
		2: {"ML-DSA-44", "Dilithium2"},
		3: {"ML-DSA-65", "Dilithium3"},
		5: {"ML-DSA-87", "Dilithium5"},
	},
	Sphincs: {
		1: {"SLH-DSA-SHA2-128f", "SPHINCS+-SHA2-128f-simple"},
		3: {"SLH-DSA-SHA2-192f", "SPHINCS+-SHA2-192f-simple"},
		5: {"SLH-DSA-SHA2-256f", "SPHINCS+-SHA2-256f-simple"},
	},
}

// Variants returns the ordered mechanism name candidates for the given
// family and security level, preferred name first.
func Variants(family Family, level int) ([]string, error) {
	byLevel, ok := variants[family]
	if !ok {
		return nil, fmt.Errorf("unknown scheme family %q", family)
	}
	names, ok := byLevel[level]
	if !ok {
		return nil, fmt.Errorf("invalid security level: %d (must be one of %v)", level, Levels(family))
	}
	out := make([]string, len(names))
	copy(out, names)
	return out, nil
}

// Levels returns the valid security levels for a family in ascending order.
func Levels(family Family) []int {
	byLevel := variants[family]
	levels := make([]int, 0, len(byLevel))
	for l := range byLevel {
		levels = append(levels, l)
	}
	sort.Ints(levels)
	return levels
}

// Supported reports whether the family defines the given security level.
func Supported(family Family, level int) bool {
	_, ok := variants[family][level]
	return ok
}

// Resolve returns the first variant for (family, level) that appears in
// the enabled mechanism list. It returns false when the level is not
// defined for the family or none of the variants are enabled.
func Resolve(family Family, level int, enabled []string) (string, bool) {
	names, ok := variants[family][level]
	if !ok {
		return "", false
	}
	for _, candidate := range names {
		for _, mech := range enabled {
			if mech == candidate {
				return candidate, true
			}
		}
	}
	return "", false
}
