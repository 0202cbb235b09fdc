// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

// Package msa provides multiple sequence alignments
// and their serialization
// as FASTA and PHYLIP files.
package msa

import (
	"fmt"
)

// A Sequence is an aligned sequence:
// an identifier
// and its residues,
// including gap characters.
type Sequence struct {
	ID  string
	Seq string
}

// An Alignment is an ordered collection
// of aligned sequences.
type Alignment struct {
	seqs []Sequence
	ids  map[string]int
}

// New creates a new empty alignment.
func New() *Alignment {
	return &Alignment{
		ids: make(map[string]int),
	}
}

// Add appends a sequence to the alignment.
// Sequence identifiers must be unique
// and non-empty.
func (a *Alignment) Add(id, seq string) error {
	if id == "" {
		return fmt.Errorf("sequence %d: empty identifier", len(a.seqs)+1)
	}
	if _, dup := a.ids[id]; dup {
		return fmt.Errorf("sequence %q: duplicate identifier", id)
	}
	a.ids[id] = len(a.seqs)
	a.seqs = append(a.seqs, Sequence{ID: id, Seq: seq})
	return nil
}

// Len returns the number of sequences
// in the alignment.
func (a *Alignment) Len() int {
	return len(a.seqs)
}

// Columns returns the number of alignment columns,
// that is the length of the first sequence.
func (a *Alignment) Columns() int {
	if len(a.seqs) == 0 {
		return 0
	}
	return len(a.seqs[0].Seq)
}

// Sequence returns a sequence by its identifier.
func (a *Alignment) Sequence(id string) (string, bool) {
	i, ok := a.ids[id]
	if !ok {
		return "", false
	}
	return a.seqs[i].Seq, true
}

// Sequences returns the sequences of the alignment
// in their original order.
func (a *Alignment) Sequences() []Sequence {
	seqs := make([]Sequence, len(a.seqs))
	copy(seqs, a.seqs)
	return seqs
}

// IDs returns the sequence identifiers
// in their original order.
func (a *Alignment) IDs() []string {
	ids := make([]string, 0, len(a.seqs))
	for _, s := range a.seqs {
		ids = append(ids, s.ID)
	}
	return ids
}

// Validate returns an error
// if the alignment is empty,
// or if the sequences do not have
// the same number of columns.
func (a *Alignment) Validate() error {
	if len(a.seqs) == 0 {
		return fmt.Errorf("empty alignment")
	}
	cols := len(a.seqs[0].Seq)
	if cols == 0 {
		return fmt.Errorf("sequence %q: empty sequence", a.seqs[0].ID)
	}
	for _, s := range a.seqs[1:] {
		if len(s.Seq) != cols {
			return fmt.Errorf("sequence %q: got %d columns, want %d", s.ID, len(s.Seq), cols)
		}
	}
	return nil
}
