// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

// Package taxonomy provides lineage strings,
// the pipe-delimited taxonomic classifications
// (kingdom through species)
// used to bin genomes by species.
package taxonomy

import (
	"fmt"
	"strings"
)

// A Lineage is a pipe-delimited taxonomic classification
// in which each level is prefixed by its rank,
// for example:
//
//	k__Bacteria|p__Proteobacteria|c__Betaproteobacteria|o__Burkholderiales|f__Burkholderiaceae|g__Burkholderia|s__Burkholderia_stagnalis
type Lineage string

// Rank prefixes of a lineage,
// from kingdom to species.
var rankPrefix = []string{"k__", "p__", "c__", "o__", "f__", "g__", "s__"}

// Kingdoms accepted as valid
// at the root of a lineage.
var kingdoms = map[string]bool{
	"k__Bacteria": true,
	"k__Archaea":  true,
	"k__Viruses":  true,
	"k__Viroids":  true,
}

// Parse validates a lineage string.
// A valid lineage starts at the kingdom level
// and each level carries its rank prefix,
// in order,
// down to the species level.
func Parse(s string) (Lineage, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty lineage")
	}

	levels := strings.Split(s, "|")
	if len(levels) > len(rankPrefix) {
		return "", fmt.Errorf("lineage %q: too many levels", s)
	}
	for i, lv := range levels {
		if !strings.HasPrefix(lv, rankPrefix[i]) {
			return "", fmt.Errorf("lineage %q: level %d: expecting prefix %q", s, i+1, rankPrefix[i])
		}
	}
	return Lineage(s), nil
}

// HasKingdom returns true if the lineage starts
// with one of the accepted kingdoms.
func (l Lineage) HasKingdom() bool {
	k, _, _ := strings.Cut(string(l), "|")
	return kingdoms[k]
}

// HasSpecies returns true if the lineage is resolved
// down to the species level.
func (l Lineage) HasSpecies() bool {
	levels := strings.Split(string(l), "|")
	last := levels[len(levels)-1]
	return strings.HasPrefix(last, "s__") && last != "s__"
}

// Species returns the species name of a lineage,
// without its rank prefix
// and with underscores replaced by spaces.
// It returns an empty string
// if the lineage is not resolved to species level.
func (l Lineage) Species() string {
	if !l.HasSpecies() {
		return ""
	}
	levels := strings.Split(string(l), "|")
	sp := strings.TrimPrefix(levels[len(levels)-1], "s__")
	return strings.ReplaceAll(sp, "_", " ")
}

// DirName returns the lineage as a file system friendly name,
// with each pipe replaced by a dot.
func (l Lineage) DirName() string {
	return strings.ReplaceAll(string(l), "|", ".")
}

// FromDirName is the inverse of DirName.
func FromDirName(s string) Lineage {
	return Lineage(strings.ReplaceAll(s, ".", "|"))
}

// IsSpecies returns true if the lineage matches
// the given species identifier,
// either a full lineage string,
// a lineage directory name,
// or a bare species name
// (with spaces or underscores).
func (l Lineage) IsSpecies(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}
	if Lineage(id) == l {
		return true
	}
	if FromDirName(id) == l {
		return true
	}
	id = strings.ReplaceAll(id, "_", " ")
	return strings.EqualFold(id, l.Species())
}
