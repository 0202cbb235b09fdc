// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

package repophlan

import (
	"compress/bzip2"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ekopylova/subtrees/taxonomy"
)

// ExtractBin writes the genomes of a taxonomy bin
// into a directory,
// one FASTA file per genome,
// decompressing bzip2 compressed source files.
// The destination file keeps the base name
// of the source file,
// without the compression suffix.
// It returns the names of the written files.
//
// Genomes without a sequence file path are skipped
// and reported on w.
// A bin that would produce an empty directory
// is an error.
func (s *Scores) ExtractBin(w io.Writer, l taxonomy.Lineage, dir string) ([]string, error) {
	ids := s.bins[l]
	if len(ids) == 0 {
		return nil, fmt.Errorf("taxonomy %q: no genomes found", l)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	var files []string
	for i, id := range ids {
		g := s.genomes[id]
		if g.Path == "" {
			fmt.Fprintf(w, "%d. skipping %s\n", i, id)
			continue
		}
		name := filepath.Join(dir, strings.TrimSuffix(filepath.Base(g.Path), ".bz2"))
		fmt.Fprintf(w, "%d. writing %s\n", i, name)
		if err := extractFile(g.Path, name); err != nil {
			return nil, fmt.Errorf("genome %q: %v", id, err)
		}
		files = append(files, name)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("taxonomy %q: no genome files found", l)
	}
	return files, nil
}

func extractFile(src, dst string) (err error) {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(src, ".bz2") {
		r = bzip2.NewReader(f)
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		e := out.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if _, err := io.Copy(out, r); err != nil {
		return fmt.Errorf("while writing %q: %v", dst, err)
	}
	return nil
}
