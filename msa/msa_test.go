// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

package msa_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/ekopylova/subtrees/msa"
)

var seqs = []msa.Sequence{
	{ID: "G000009225", Seq: "MKV-LADWQTRE"},
	{ID: "G000129014", Seq: "MKVALAD--TRE"},
	{ID: "G000237915", Seq: "MQVALADWQT--"},
}

func newAlignment(t testing.TB) *msa.Alignment {
	t.Helper()

	a := msa.New()
	for _, s := range seqs {
		if err := a.Add(s.ID, s.Seq); err != nil {
			t.Fatalf("unexpected error when adding %q: %v", s.ID, err)
		}
	}
	return a
}

func TestAlignment(t *testing.T) {
	a := newAlignment(t)

	if a.Len() != len(seqs) {
		t.Errorf("got %d sequences, want %d", a.Len(), len(seqs))
	}
	if a.Columns() != 12 {
		t.Errorf("got %d columns, want %d", a.Columns(), 12)
	}
	if !reflect.DeepEqual(a.Sequences(), seqs) {
		t.Errorf("got sequences %v, want %v", a.Sequences(), seqs)
	}
	if err := a.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}

	s, ok := a.Sequence("G000129014")
	if !ok {
		t.Fatalf("sequence G000129014: not found")
	}
	if s != seqs[1].Seq {
		t.Errorf("sequence G000129014: got %q, want %q", s, seqs[1].Seq)
	}
}

func TestAddErrors(t *testing.T) {
	a := newAlignment(t)
	if err := a.Add("G000009225", "MKV-LADWQTRE"); err == nil {
		t.Errorf("expecting error for a duplicate identifier")
	}
	if err := a.Add("", "MKV-LADWQTRE"); err == nil {
		t.Errorf("expecting error for an empty identifier")
	}
}

func TestValidateUnequal(t *testing.T) {
	a := msa.New()
	a.Add("G000009225", "MKV-LADWQTRE")
	a.Add("G000129014", "MKVALAD")

	if err := a.Validate(); err == nil {
		t.Errorf("expecting error for unequal sequence lengths")
	}
}

func TestReadFasta(t *testing.T) {
	in := ">G000009225 Pseudomonas fluorescens A506\n" +
		"MKV-LA\nDWQTRE\n" +
		">G000129014\nMKVALAD--TRE\n" +
		">G000237915\nMQVALADWQT--\n"

	a, err := msa.ReadFasta(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error when reading fasta: %v", err)
	}
	if !reflect.DeepEqual(a.Sequences(), seqs) {
		t.Errorf("got sequences %v, want %v", a.Sequences(), seqs)
	}
}

func TestReadFastaEmpty(t *testing.T) {
	if _, err := msa.ReadFasta(strings.NewReader("")); err == nil {
		t.Errorf("expecting error for an empty file")
	}
}

func TestFastaRoundTrip(t *testing.T) {
	a := newAlignment(t)

	var buf bytes.Buffer
	if err := a.Fasta(&buf); err != nil {
		t.Fatalf("unexpected error when writing fasta: %v", err)
	}

	na, err := msa.ReadFasta(&buf)
	if err != nil {
		t.Fatalf("unexpected error when reading fasta: %v", err)
	}
	if !reflect.DeepEqual(na.Sequences(), seqs) {
		t.Errorf("round trip: got %v, want %v", na.Sequences(), seqs)
	}
}

func TestPhylip(t *testing.T) {
	a := newAlignment(t)

	var buf bytes.Buffer
	if err := a.Phylip(&buf); err != nil {
		t.Fatalf("unexpected error when writing phylip: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(seqs)+1 {
		t.Fatalf("got %d lines, want %d", len(lines), len(seqs)+1)
	}
	if lines[0] != "3 12" {
		t.Errorf("header: got %q, want %q", lines[0], "3 12")
	}
	for i, s := range seqs {
		want := s.ID + "  " + s.Seq
		if lines[i+1] != want {
			t.Errorf("row %d: got %q, want %q", i+1, lines[i+1], want)
		}
	}
}

func TestPhylipRoundTrip(t *testing.T) {
	a := newAlignment(t)

	var buf bytes.Buffer
	if err := a.Phylip(&buf); err != nil {
		t.Fatalf("unexpected error when writing phylip: %v", err)
	}

	na, err := msa.ReadPhylip(&buf)
	if err != nil {
		t.Fatalf("unexpected error when reading phylip: %v", err)
	}
	if !reflect.DeepEqual(na.Sequences(), seqs) {
		t.Errorf("round trip: got %v, want %v", na.Sequences(), seqs)
	}
}

func TestPhylipUnequal(t *testing.T) {
	a := msa.New()
	a.Add("G000009225", "MKV-LADWQTRE")
	a.Add("G000129014", "MKVALAD")

	var buf bytes.Buffer
	if err := a.Phylip(&buf); err == nil {
		t.Fatalf("expecting error for unequal sequence lengths")
	}
	if buf.Len() != 0 {
		t.Errorf("an invalid alignment must not produce output, got %q", buf.String())
	}
}

func TestReadPhylipWrapped(t *testing.T) {
	in := " 3 12\n" +
		"G000009225  MKV-LA\n" +
		"DWQ TRE\n" +
		"G000129014  MKVALAD --TRE\n" +
		"G000237915\n" +
		"MQVALADWQT--\n"

	a, err := msa.ReadPhylip(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error when reading phylip: %v", err)
	}
	if !reflect.DeepEqual(a.Sequences(), seqs) {
		t.Errorf("got sequences %v, want %v", a.Sequences(), seqs)
	}
}

func TestReadPhylipErrors(t *testing.T) {
	tests := map[string]string{
		"empty":              "",
		"bad header":         "three 12\nG000009225  MKV-LADWQTRE\n",
		"missing sequences":  "3 12\nG000009225  MKV-LADWQTRE\n",
		"short sequence":     "1 12\nG000009225  MKV-LAD\n",
		"duplicate sequence": "2 12\nG000009225  MKV-LADWQTRE\nG000009225  MKV-LADWQTRE\n",
	}
	for name, in := range tests {
		if _, err := msa.ReadPhylip(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}
