// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

// Package distmat provides pairwise distance matrices
// between the genomes of a species,
// read from the output of a distance tool
// or calculated from the branch lengths
// of a phylogenetic tree.
package distmat

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// A Matrix is a symmetric matrix
// of pairwise distances
// between named sequences.
type Matrix struct {
	labels []string
	ids    map[string]int
	d      *mat.SymDense
}

// New creates a new zero distance matrix
// for the given sequence labels.
// Labels must be unique and non-empty.
func New(labels ...string) (*Matrix, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("expecting at least one label")
	}

	ids := make(map[string]int, len(labels))
	for i, l := range labels {
		if l == "" {
			return nil, fmt.Errorf("label %d: empty label", i+1)
		}
		if _, dup := ids[l]; dup {
			return nil, fmt.Errorf("label %q: duplicate label", l)
		}
		ids[l] = i
	}

	return &Matrix{
		labels: append([]string(nil), labels...),
		ids:    ids,
		d:      mat.NewSymDense(len(labels), nil),
	}, nil
}

// Labels returns the sequence labels
// in matrix order.
func (m *Matrix) Labels() []string {
	return append([]string(nil), m.labels...)
}

// Len returns the number of sequences
// in the matrix.
func (m *Matrix) Len() int {
	return len(m.labels)
}

// Set sets the distance between two labels.
func (m *Matrix) Set(a, b string, v float64) error {
	i, ok := m.ids[a]
	if !ok {
		return fmt.Errorf("label %q: not in matrix", a)
	}
	j, ok := m.ids[b]
	if !ok {
		return fmt.Errorf("label %q: not in matrix", b)
	}
	if i == j {
		if v != 0 {
			return fmt.Errorf("label %q: non-zero distance to itself", a)
		}
		return nil
	}
	if v < 0 {
		return fmt.Errorf("labels %q, %q: negative distance", a, b)
	}
	m.d.SetSym(i, j, v)
	return nil
}

// Distance returns the distance between two labels.
func (m *Matrix) Distance(a, b string) float64 {
	i, ok := m.ids[a]
	if !ok {
		return 0
	}
	j, ok := m.ids[b]
	if !ok {
		return 0
	}
	return m.d.At(i, j)
}

// Max returns the largest distance
// in the matrix.
func (m *Matrix) Max() float64 {
	var max float64
	n := m.d.SymmetricDim()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d := m.d.At(i, j); d > max {
				max = d
			}
		}
	}
	return max
}

// Sym returns the distances
// as a gonum symmetric matrix.
func (m *Matrix) Sym() *mat.SymDense {
	v := mat.NewSymDense(m.d.SymmetricDim(), nil)
	v.CopySym(m.d)
	return v
}

var header = []string{
	"taxon_a",
	"taxon_b",
	"distance",
}

// ReadTSV reads a distance matrix from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - taxon_a, the label of the first sequence
//   - taxon_b, the label of the second sequence
//   - distance, the distance between the pair
//
// Labels are added in their order of appearance.
func ReadTSV(r io.Reader) (*Matrix, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	type pair struct {
		a, b string
		d    float64
	}
	var pairs []pair
	var labels []string
	seen := make(map[string]bool)
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		a := row[fields["taxon_a"]]
		b := row[fields["taxon_b"]]

		f := "distance"
		d, err := strconv.ParseFloat(row[fields[f]], 64)
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %q: %v", ln, f, row[fields[f]], err)
		}

		for _, l := range []string{a, b} {
			if !seen[l] {
				seen[l] = true
				labels = append(labels, l)
			}
		}
		pairs = append(pairs, pair{a: a, b: b, d: d})
	}

	m, err := New(labels...)
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		if err := m.Set(p.a, p.b, p.d); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// TSV writes a distance matrix to a TSV file,
// one row per unordered pair of labels,
// including the zero diagonal.
func (m *Matrix) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for i, a := range m.labels {
		for j := i; j < len(m.labels); j++ {
			row := []string{
				a,
				m.labels[j],
				strconv.FormatFloat(m.d.At(i, j), 'f', 6, 64),
			}
			if err := tab.Write(row); err != nil {
				return fmt.Errorf("when writing data: %v", err)
			}
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
