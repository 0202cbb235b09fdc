// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

package msa

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadPhylip reads an alignment
// from a sequential PHYLIP file.
// The first line is a header
// with the number of sequences
// and the number of alignment columns.
// Each sequence starts with its identifier,
// and its residues can be wrapped
// over multiple lines
// and grouped with spaces.
func ReadPhylip(r io.Reader) (*Alignment, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024*1024), 64*1024*1024)

	n, cols, err := phylipHeader(sc)
	if err != nil {
		return nil, err
	}

	a := New()
	for i := 0; i < n; i++ {
		id, seq, err := phylipSequence(sc, cols)
		if err != nil {
			return nil, fmt.Errorf("sequence %d: %v", i+1, err)
		}
		if err := a.Add(id, seq); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("while reading phylip: %v", err)
	}
	return a, nil
}

func phylipHeader(sc *bufio.Scanner) (n, cols int, err error) {
	for sc.Scan() {
		ln := strings.TrimSpace(sc.Text())
		if ln == "" {
			continue
		}
		f := strings.Fields(ln)
		if len(f) != 2 {
			return 0, 0, fmt.Errorf("header: expecting sequence and column numbers, got %q", ln)
		}
		n, err = strconv.Atoi(f[0])
		if err != nil {
			return 0, 0, fmt.Errorf("header: sequence number: %v", err)
		}
		cols, err = strconv.Atoi(f[1])
		if err != nil {
			return 0, 0, fmt.Errorf("header: column number: %v", err)
		}
		if n <= 0 || cols <= 0 {
			return 0, 0, fmt.Errorf("header: invalid dimensions %d x %d", n, cols)
		}
		return n, cols, nil
	}
	if err := sc.Err(); err != nil {
		return 0, 0, err
	}
	return 0, 0, fmt.Errorf("header: unexpected end of file")
}

func phylipSequence(sc *bufio.Scanner, cols int) (id, seq string, err error) {
	var sb strings.Builder
	for sc.Scan() {
		ln := strings.TrimSpace(sc.Text())
		if ln == "" {
			continue
		}
		f := strings.Fields(ln)
		if id == "" {
			id = f[0]
			f = f[1:]
		}
		sb.WriteString(strings.Join(f, ""))
		if sb.Len() >= cols {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return "", "", err
	}
	if id == "" {
		return "", "", fmt.Errorf("unexpected end of file")
	}
	if sb.Len() != cols {
		return "", "", fmt.Errorf("identifier %q: got %d columns, want %d", id, sb.Len(), cols)
	}
	return id, sb.String(), nil
}

// Phylip writes the alignment
// as a sequential PHYLIP file,
// with full identifiers
// padded to a common column.
// The alignment is validated first
// so an invalid alignment
// never produces an output.
func (a *Alignment) Phylip(w io.Writer) error {
	if err := a.Validate(); err != nil {
		return err
	}

	pad := 10
	for _, s := range a.seqs {
		if len(s.ID)+2 > pad {
			pad = len(s.ID) + 2
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", a.Len(), a.Columns())
	for _, s := range a.seqs {
		if _, err := fmt.Fprintf(bw, "%-*s%s\n", pad, s.ID, s.Seq); err != nil {
			return fmt.Errorf("while writing sequence %q: %v", s.ID, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing phylip: %v", err)
	}
	return nil
}
