// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

package distmat

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ReadProtdist reads a distance matrix
// in the format written by the PHYLIP distance tools
// (protdist, dnadist):
// a first line with the number of sequences,
// then one record per sequence,
// a label followed by its distances,
// possibly wrapped over several lines.
// Both the square and the lower-triangle forms
// are accepted.
// A square matrix must be symmetric.
func ReadProtdist(r io.Reader) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024*1024), 64*1024*1024)

	n, err := protdistHeader(sc)
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, n)
	rows := make([][]float64, 0, n)
	for sc.Scan() {
		for _, f := range strings.Fields(sc.Text()) {
			v, err := strconv.ParseFloat(f, 64)

			// A new record starts with its label:
			// at the first token of the record section,
			// at any token that is not a number,
			// or, in the square form,
			// when the current record is already full.
			// Labels that look like numbers
			// are then accepted.
			label := err != nil || len(rows) == 0
			if !label && len(rows[len(rows)-1]) == n {
				label = true
			}
			if label {
				labels = append(labels, f)
				rows = append(rows, nil)
				continue
			}
			i := len(rows) - 1
			rows[i] = append(rows[i], v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("while reading distances: %v", err)
	}
	if len(labels) != n {
		return nil, fmt.Errorf("got %d records, want %d", len(labels), n)
	}

	m, err := New(labels...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		switch len(row) {
		case n:
			// square matrix
			for j, v := range row {
				if j > i {
					continue
				}
				if err := setChecked(m, labels, i, j, v); err != nil {
					return nil, err
				}
			}
		case i:
			// lower triangle without the diagonal
			for j, v := range row {
				if err := setChecked(m, labels, i, j, v); err != nil {
					return nil, err
				}
			}
		case i + 1:
			// lower triangle with the diagonal
			for j, v := range row {
				if err := setChecked(m, labels, i, j, v); err != nil {
					return nil, err
				}
			}
		default:
			return nil, fmt.Errorf("record %q: got %d distances, want %d", labels[i], len(row), n)
		}
	}

	// upper triangle of the square form
	for i, row := range rows {
		if len(row) != n {
			continue
		}
		for j := i + 1; j < n; j++ {
			v := row[j]
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("records %q, %q: undefined distance", labels[i], labels[j])
			}
			d := v - m.Distance(labels[i], labels[j])
			if d > 1e-4 || d < -1e-4 {
				return nil, fmt.Errorf("records %q, %q: asymmetric distances", labels[i], labels[j])
			}
		}
	}

	return m, nil
}

func protdistHeader(sc *bufio.Scanner) (int, error) {
	for sc.Scan() {
		ln := strings.TrimSpace(sc.Text())
		if ln == "" {
			continue
		}
		n, err := strconv.Atoi(ln)
		if err != nil {
			return 0, fmt.Errorf("header: sequence number: %q: %v", ln, err)
		}
		if n <= 0 {
			return 0, fmt.Errorf("header: invalid sequence number %d", n)
		}
		return n, nil
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("header: unexpected end of file")
}

func setChecked(m *Matrix, labels []string, i, j int, v float64) error {
	if i == j {
		if v != 0 {
			return fmt.Errorf("record %q: non-zero distance to itself", labels[i])
		}
		return nil
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		// the PHYLIP tools report distances
		// they can not compute as -1
		// or, on some builds, as nan
		return fmt.Errorf("records %q, %q: undefined distance", labels[i], labels[j])
	}
	return m.Set(labels[i], labels[j], v)
}
