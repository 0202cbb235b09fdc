// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

package distmat

import (
	"fmt"

	"github.com/js-arias/timetree"
)

// Scale used by timetree
// to store branch lengths as ages.
const millionYears = 1_000_000

// FromTree calculates the patristic distance matrix
// of a phylogenetic tree,
// the sum of the branch lengths
// on the path between each pair of terminals.
// Distances are reported in the units
// of the source tree branch lengths.
func FromTree(t *timetree.Tree) (*Matrix, error) {
	terms := t.Terms()
	if len(terms) == 0 {
		return nil, fmt.Errorf("tree %q: without terminals", t.Name())
	}

	m, err := New(terms...)
	if err != nil {
		return nil, fmt.Errorf("tree %q: %v", t.Name(), err)
	}

	nodes := make(map[string]int, len(terms))
	for _, tax := range terms {
		id, ok := t.TaxNode(tax)
		if !ok {
			return nil, fmt.Errorf("tree %q: terminal %q: not in tree", t.Name(), tax)
		}
		nodes[tax] = id
	}

	for i, a := range terms {
		anc := ancestors(t, nodes[a])
		for _, b := range terms[i+1:] {
			mrca := -1
			for n := nodes[b]; n >= 0; n = t.Parent(n) {
				if _, ok := anc[n]; ok {
					mrca = n
					break
				}
			}
			if mrca < 0 {
				return nil, fmt.Errorf("tree %q: terminals %q, %q: disconnected", t.Name(), a, b)
			}

			age := t.Age(mrca)
			d := float64(age-t.Age(nodes[a])) + float64(age-t.Age(nodes[b]))
			if err := m.Set(a, b, d/millionYears); err != nil {
				return nil, fmt.Errorf("tree %q: %v", t.Name(), err)
			}
		}
	}
	return m, nil
}

// Ancestors returns the nodes on the path
// from a node to the root,
// including the node itself.
func ancestors(t *timetree.Tree, id int) map[int]bool {
	anc := make(map[int]bool)
	for n := id; n >= 0; n = t.Parent(n) {
		anc[n] = true
	}
	return anc
}
