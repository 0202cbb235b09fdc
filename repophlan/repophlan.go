// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

// Package repophlan reads RepoPhlAn genome quality score tables
// and bins the screened genomes by their taxonomy.
//
// Two tables are expected:
// the full score table
// (the output of RepoPhlAn's screening),
// which assigns a taxonomy to each genome,
// and the averaged score table,
// which contains only the genomes
// that passed the quality filter,
// with the path of the sequence file of each genome.
package repophlan

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/ekopylova/subtrees/taxonomy"
)

// A Genome is a quality screened genome:
// an identifier,
// the path of its FASTA sequence file
// (possibly bzip2 compressed),
// and its taxonomy.
type Genome struct {
	ID       string
	Path     string
	Taxonomy taxonomy.Lineage
}

// Scores is a collection of quality screened genomes,
// binned by taxonomy.
type Scores struct {
	genomes map[string]*Genome
	bins    map[taxonomy.Lineage][]string

	// genomes without a valid kingdom
	// in their taxonomy string
	noKingdom []string
}

// ReadTSV reads the averaged score table
// and the full score table,
// and returns the genomes of the averaged table
// binned by the taxonomy assigned in the full table.
//
// Both tables are tab-delimited with a header row.
// In the averaged table the first column is the genome ID
// and the second column the path of the sequence file.
// In the full table the first column is the genome ID
// and the taxonomy is taken from the column
// labeled "taxonomy" in the header.
func ReadTSV(average, scores io.Reader) (*Scores, error) {
	s := &Scores{
		genomes: make(map[string]*Genome),
		bins:    make(map[taxonomy.Lineage][]string),
	}

	if err := s.readAverage(average); err != nil {
		return nil, err
	}
	if err := s.readScores(scores); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scores) readAverage(r io.Reader) error {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.FieldsPerRecord = -1

	// The header is skipped by position:
	// RepoPhlAn tables start the header with a '#'
	// so it can not be used as a field map.
	if _, err := tab.Read(); err != nil {
		return fmt.Errorf("average scores: header: %v", err)
	}

	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return fmt.Errorf("average scores: on row %d: %v", ln, err)
		}
		if len(row) < 2 {
			return fmt.Errorf("average scores: on row %d: expecting 2 columns", ln)
		}

		id := strings.TrimSpace(row[0])
		if id == "" {
			continue
		}
		if _, dup := s.genomes[id]; dup {
			return fmt.Errorf("average scores: on row %d: duplicate genome ID %q", ln, id)
		}
		s.genomes[id] = &Genome{
			ID:   id,
			Path: strings.TrimSpace(row[1]),
		}
	}
	return nil
}

func (s *Scores) readScores(r io.Reader) error {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.FieldsPerRecord = -1

	head, err := tab.Read()
	if err != nil {
		return fmt.Errorf("scores: header: %v", err)
	}
	taxCol := -1
	for i, h := range head {
		if strings.ToLower(strings.TrimSpace(h)) == "taxonomy" {
			taxCol = i
		}
	}
	if taxCol < 0 {
		return fmt.Errorf("scores: expecting field %q", "taxonomy")
	}

	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return fmt.Errorf("scores: on row %d: %v", ln, err)
		}
		if len(row) <= taxCol {
			return fmt.Errorf("scores: on row %d: expecting %d columns", ln, taxCol+1)
		}

		id := strings.TrimSpace(row[0])
		g, ok := s.genomes[id]
		if !ok {
			// genome did not pass the quality filter
			continue
		}

		tax := taxonomy.Lineage(strings.TrimSpace(row[taxCol]))
		g.Taxonomy = tax
		if !tax.HasKingdom() {
			s.noKingdom = append(s.noKingdom, id)
		}
		s.bins[tax] = append(s.bins[tax], id)
	}

	for _, ids := range s.bins {
		slices.Sort(ids)
	}
	slices.Sort(s.noKingdom)
	return nil
}

// Genome returns a screened genome by its ID.
func (s *Scores) Genome(id string) (Genome, bool) {
	g, ok := s.genomes[id]
	if !ok {
		return Genome{}, false
	}
	return *g, true
}

// Bin returns the IDs of the genomes
// of a given taxonomy.
func (s *Scores) Bin(l taxonomy.Lineage) []string {
	ids := s.bins[l]
	return slices.Clone(ids)
}

// Find returns the taxonomy bin
// that matches a species identifier,
// either a full lineage,
// a lineage directory name,
// or a bare species name.
func (s *Scores) Find(id string) (taxonomy.Lineage, bool) {
	for l := range s.bins {
		if l.IsSpecies(id) {
			return l, true
		}
	}
	return "", false
}

// Taxonomies returns the taxonomy bins,
// sorted by increasing number of genomes.
func (s *Scores) Taxonomies() []taxonomy.Lineage {
	ls := make([]taxonomy.Lineage, 0, len(s.bins))
	for l := range s.bins {
		ls = append(ls, l)
	}
	slices.SortFunc(ls, func(a, b taxonomy.Lineage) int {
		if d := len(s.bins[a]) - len(s.bins[b]); d != 0 {
			return d
		}
		return strings.Compare(string(a), string(b))
	})
	return ls
}

// NoKingdom returns the IDs of the screened genomes
// whose taxonomy does not start
// with a valid kingdom.
func (s *Scores) NoKingdom() []string {
	return slices.Clone(s.noKingdom)
}
