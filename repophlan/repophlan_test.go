// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

package repophlan_test

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ekopylova/subtrees/repophlan"
	"github.com/ekopylova/subtrees/taxonomy"
)

const fluorescens = taxonomy.Lineage("k__Bacteria|p__Proteobacteria|c__Gammaproteobacteria|o__Pseudomonadales|f__Pseudomonadaceae|g__Pseudomonas|s__Pseudomonas_fluorescens")
const stagnalis = taxonomy.Lineage("k__Bacteria|p__Proteobacteria|c__Betaproteobacteria|o__Burkholderiales|f__Burkholderiaceae|g__Burkholderia|s__Burkholderia_stagnalis")

func scoreTables(dir string) (average, scores string) {
	var avg strings.Builder
	avg.WriteString("#genome\tfaa_lname\tscore\n")
	fmt.Fprintf(&avg, "G001\t%s\t0.91\n", filepath.Join(dir, "G001.faa"))
	fmt.Fprintf(&avg, "G002\t%s\t0.88\n", filepath.Join(dir, "G002.faa"))
	fmt.Fprintf(&avg, "G003\t%s\t0.85\n", filepath.Join(dir, "G003.faa"))
	avg.WriteString("G004\t\t0.79\n")
	avg.WriteString("G005\t\t0.90\n")

	var sc strings.Builder
	sc.WriteString("#genome\tscore\ttaxonomy\n")
	fmt.Fprintf(&sc, "G001\t0.91\t%s\n", fluorescens)
	fmt.Fprintf(&sc, "G002\t0.88\t%s\n", fluorescens)
	fmt.Fprintf(&sc, "G003\t0.85\t%s\n", stagnalis)
	fmt.Fprintf(&sc, "G004\t0.79\t%s\n", stagnalis)
	sc.WriteString("G005\t0.90\tunclassified\n")
	// did not pass the quality filter
	fmt.Fprintf(&sc, "G006\t0.21\t%s\n", stagnalis)

	return avg.String(), sc.String()
}

func readScores(t testing.TB, dir string) *repophlan.Scores {
	t.Helper()

	avg, sc := scoreTables(dir)
	s, err := repophlan.ReadTSV(strings.NewReader(avg), strings.NewReader(sc))
	if err != nil {
		t.Fatalf("unexpected error when reading tables: %v", err)
	}
	return s
}

func TestReadTSV(t *testing.T) {
	s := readScores(t, "genomes")

	if ids := s.Bin(fluorescens); !reflect.DeepEqual(ids, []string{"G001", "G002"}) {
		t.Errorf("bin %q: got %v", fluorescens.Species(), ids)
	}
	if ids := s.Bin(stagnalis); !reflect.DeepEqual(ids, []string{"G003", "G004"}) {
		t.Errorf("bin %q: got %v", stagnalis.Species(), ids)
	}

	g, ok := s.Genome("G001")
	if !ok {
		t.Fatalf("genome G001: not found")
	}
	if g.Taxonomy != fluorescens {
		t.Errorf("genome G001: got taxonomy %q, want %q", g.Taxonomy, fluorescens)
	}
	if g.Path == "" {
		t.Errorf("genome G001: expecting a sequence file path")
	}

	if nk := s.NoKingdom(); !reflect.DeepEqual(nk, []string{"G005"}) {
		t.Errorf("no kingdom: got %v, want %v", nk, []string{"G005"})
	}

	// G006 did not pass the quality filter
	if _, ok := s.Genome("G006"); ok {
		t.Errorf("genome G006: should not be in the collection")
	}
}

func TestReadTSVDuplicate(t *testing.T) {
	avg := "#genome\tfaa_lname\nG001\ta.faa\nG001\tb.faa\n"
	sc := "#genome\ttaxonomy\n"
	if _, err := repophlan.ReadTSV(strings.NewReader(avg), strings.NewReader(sc)); err == nil {
		t.Errorf("expecting error for a duplicate genome ID")
	}
}

func TestReadTSVNoTaxonomyField(t *testing.T) {
	avg := "#genome\tfaa_lname\nG001\ta.faa\n"
	sc := "#genome\tscore\nG001\t0.9\n"
	if _, err := repophlan.ReadTSV(strings.NewReader(avg), strings.NewReader(sc)); err == nil {
		t.Errorf("expecting error for a missing taxonomy field")
	}
}

func TestFind(t *testing.T) {
	s := readScores(t, "genomes")

	for _, id := range []string{
		string(stagnalis),
		stagnalis.DirName(),
		"Burkholderia stagnalis",
	} {
		l, ok := s.Find(id)
		if !ok {
			t.Errorf("find %q: no bin found", id)
			continue
		}
		if l != stagnalis {
			t.Errorf("find %q: got %q, want %q", id, l, stagnalis)
		}
	}

	if _, ok := s.Find("Streptococcus pneumoniae"); ok {
		t.Errorf("find: unexpected bin for an absent species")
	}
}

func TestTaxonomies(t *testing.T) {
	s := readScores(t, "genomes")

	ls := s.Taxonomies()
	want := []taxonomy.Lineage{"unclassified", stagnalis, fluorescens}
	if !reflect.DeepEqual(ls, want) {
		t.Errorf("taxonomies: got %v, want %v", ls, want)
	}
}

// Bzip2 compression of ">G001\nMKVLAD\n".
var g1bz2 = []byte{
	66, 90, 104, 57, 49, 65, 89, 38, 83, 89, 240, 16, 132, 128, 0, 0,
	2, 206, 0, 0, 16, 96, 1, 36, 142, 1, 0, 32, 0, 34, 1, 166,
	141, 8, 6, 154, 104, 21, 150, 215, 164, 242, 11, 197, 220, 145, 78, 20,
	36, 60, 4, 33, 32, 0,
}

func TestExtractBin(t *testing.T) {
	src := t.TempDir()
	if err := os.WriteFile(filepath.Join(src, "G001.faa.bz2"), g1bz2, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "G002.faa"), []byte(">G002\nMKVLAE\n"), 0644); err != nil {
		t.Fatal(err)
	}

	avg := "#genome\tfaa_lname\n" +
		"G001\t" + filepath.Join(src, "G001.faa.bz2") + "\n" +
		"G002\t" + filepath.Join(src, "G002.faa") + "\n" +
		"G003\t\n"
	sc := "#genome\ttaxonomy\n" +
		"G001\t" + string(fluorescens) + "\n" +
		"G002\t" + string(fluorescens) + "\n" +
		"G003\t" + string(fluorescens) + "\n"
	s, err := repophlan.ReadTSV(strings.NewReader(avg), strings.NewReader(sc))
	if err != nil {
		t.Fatalf("unexpected error when reading tables: %v", err)
	}

	dir := filepath.Join(t.TempDir(), fluorescens.DirName())
	files, err := s.ExtractBin(io.Discard, fluorescens, dir)
	if err != nil {
		t.Fatalf("unexpected error when extracting: %v", err)
	}

	// genome G003 has no sequence file
	want := []string{
		filepath.Join(dir, "G001.faa"),
		filepath.Join(dir, "G002.faa"),
	}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("extract: got %v, want %v", files, want)
	}

	data, err := os.ReadFile(filepath.Join(dir, "G001.faa"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, []byte(">G001\nMKVLAD\n")) {
		t.Errorf("extract G001.faa: got %q", data)
	}

	ls, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(ls) != len(want) {
		t.Errorf("extract: %d files in %q, want %d", len(ls), dir, len(want))
	}
}

func TestExtractBinEmpty(t *testing.T) {
	s := readScores(t, "genomes")

	dir := t.TempDir()
	if _, err := s.ExtractBin(io.Discard, "k__Bacteria|s__none", filepath.Join(dir, "none")); err == nil {
		t.Errorf("expecting error for an unknown taxonomy")
	}
}
