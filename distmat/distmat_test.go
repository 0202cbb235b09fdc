// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

package distmat_test

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/ekopylova/subtrees/distmat"
)

var labels = []string{"G000009225", "G000129014", "G000237915"}

// Distances between labels i and j.
var dist = [3][3]float64{
	{0, 0.61, 1.23},
	{0.61, 0, 0.98},
	{1.23, 0.98, 0},
}

func newMatrix(t testing.TB) *distmat.Matrix {
	t.Helper()

	m, err := distmat.New(labels...)
	if err != nil {
		t.Fatalf("unexpected error when creating matrix: %v", err)
	}
	for i, a := range labels {
		for j, b := range labels {
			if j <= i {
				continue
			}
			if err := m.Set(a, b, dist[i][j]); err != nil {
				t.Fatalf("unexpected error when setting %q-%q: %v", a, b, err)
			}
		}
	}
	return m
}

func testMatrix(t testing.TB, m *distmat.Matrix) {
	t.Helper()

	if !reflect.DeepEqual(m.Labels(), labels) {
		t.Errorf("got labels %v, want %v", m.Labels(), labels)
	}
	if m.Len() != len(labels) {
		t.Errorf("got %d labels, want %d", m.Len(), len(labels))
	}
	for i, a := range labels {
		for j, b := range labels {
			d := m.Distance(a, b)
			if math.Abs(d-dist[i][j]) > 1e-6 {
				t.Errorf("distance %q-%q: got %.6f, want %.6f", a, b, d, dist[i][j])
			}
		}
	}
}

func TestMatrix(t *testing.T) {
	m := newMatrix(t)
	testMatrix(t, m)

	if max := m.Max(); math.Abs(max-1.23) > 1e-6 {
		t.Errorf("max: got %.6f, want %.6f", max, 1.23)
	}

	s := m.Sym()
	if n := s.SymmetricDim(); n != len(labels) {
		t.Errorf("sym: got dimension %d, want %d", n, len(labels))
	}
	if d := s.At(0, 2); math.Abs(d-1.23) > 1e-6 {
		t.Errorf("sym: got %.6f at 0,2, want %.6f", d, 1.23)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := distmat.New(); err == nil {
		t.Errorf("expecting error for an empty label list")
	}
	if _, err := distmat.New("A", ""); err == nil {
		t.Errorf("expecting error for an empty label")
	}
	if _, err := distmat.New("A", "B", "A"); err == nil {
		t.Errorf("expecting error for a duplicate label")
	}
}

func TestSetErrors(t *testing.T) {
	m := newMatrix(t)
	if err := m.Set("G000009225", "unknown", 1); err == nil {
		t.Errorf("expecting error for an unknown label")
	}
	if err := m.Set("G000009225", "G000129014", -1); err == nil {
		t.Errorf("expecting error for a negative distance")
	}
	if err := m.Set("G000009225", "G000009225", 1); err == nil {
		t.Errorf("expecting error for a non-zero distance to itself")
	}
}

func TestTSV(t *testing.T) {
	m := newMatrix(t)

	var buf bytes.Buffer
	if err := m.TSV(&buf); err != nil {
		t.Fatalf("unexpected error when writing matrix: %v", err)
	}

	nm, err := distmat.ReadTSV(&buf)
	if err != nil {
		t.Fatalf("unexpected error when reading matrix: %v", err)
	}
	testMatrix(t, nm)
}

func TestReadProtdistSquare(t *testing.T) {
	in := "    3\n" +
		"G000009225  0.000000  0.610000\n" +
		"  1.230000\n" +
		"G000129014  0.610000  0.000000  0.980000\n" +
		"G000237915  1.230000  0.980000  0.000000\n"

	m, err := distmat.ReadProtdist(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error when reading distances: %v", err)
	}
	testMatrix(t, m)
}

func TestReadProtdistLower(t *testing.T) {
	in := "3\n" +
		"G000009225\n" +
		"G000129014  0.610000\n" +
		"G000237915  1.230000  0.980000\n"

	m, err := distmat.ReadProtdist(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error when reading distances: %v", err)
	}
	testMatrix(t, m)
}

func TestReadProtdistNumericLabels(t *testing.T) {
	in := "2\n" +
		"1000  0.000000  0.610000\n" +
		"2000  0.610000  0.000000\n"

	m, err := distmat.ReadProtdist(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error when reading distances: %v", err)
	}
	if ls := m.Labels(); !reflect.DeepEqual(ls, []string{"1000", "2000"}) {
		t.Errorf("labels: got %v", ls)
	}
	if d := m.Distance("1000", "2000"); d != 0.61 {
		t.Errorf("distance: got %.6f, want %.6f", d, 0.61)
	}
}

func TestReadProtdistErrors(t *testing.T) {
	tests := map[string]string{
		"empty":          "",
		"bad header":     "three\n",
		"missing record": "3\nG000009225  0.000000  0.610000  1.230000\n",
		"short record":   "2\nG000009225  0.000000\nG000129014  0.610000  0.000000  0.980000\n",
		"asymmetric": "2\n" +
			"G000009225  0.000000  0.610000\n" +
			"G000129014  0.250000  0.000000\n",
		"undefined distance": "2\n" +
			"G000009225  0.000000  -1.000000\n" +
			"G000129014  -1.000000  0.000000\n",
		"nan distance": "2\n" +
			"G000009225  0.000000  nan\n" +
			"G000129014  nan  0.000000\n",
		"infinite distance": "2\n" +
			"G000009225\n" +
			"G000129014  inf\n",
	}
	for name, in := range tests {
		if _, err := distmat.ReadProtdist(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}
