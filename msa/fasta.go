// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

package msa

import (
	"bufio"
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// ReadFasta reads an alignment from a FASTA file.
// The sequence identifier is the first
// whitespace-delimited token
// of the description line.
func ReadFasta(r io.Reader) (*Alignment, error) {
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.Protein)))

	a := New()
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		if err := a.Add(s.Name(), s.Seq.String()); err != nil {
			return nil, err
		}
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("while reading fasta: %v", err)
	}
	if a.Len() == 0 {
		return nil, fmt.Errorf("empty alignment")
	}
	return a, nil
}

// Fasta writes the alignment as a FASTA file,
// with the sequences wrapped at 60 columns.
func (a *Alignment) Fasta(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, s := range a.seqs {
		sq := linear.NewSeq(s.ID, alphabet.BytesToLetters([]byte(s.Seq)), alphabet.Protein)
		if _, err := fmt.Fprintf(bw, "%60a\n", sq); err != nil {
			return fmt.Errorf("while writing sequence %q: %v", s.ID, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing fasta: %v", err)
	}
	return nil
}
