// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

// Package distcmd implements a command to run
// the external distance tool
// on the PHYLIP alignment of a project.
package distcmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ekopylova/subtrees/distmat"
	"github.com/ekopylova/subtrees/msa"
	"github.com/ekopylova/subtrees/pipeline"
	"github.com/ekopylova/subtrees/project"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "dist [-o|--output <matrix-file>] <project-file>",
	Short: "run the pairwise distance tool",
	Long: `
Command dist runs the external distance tool on the PHYLIP alignment of a
project and imports the resulting distance matrix. The tool is defined by
the tools dataset of the project; by default PHYLIP protdist is used (see
the guide "tools").

The first argument of the command is the name of the project file. The
project must define a PHYLIP alignment (see the command "aln phylip").

The PHYLIP tools read the file 'infile' and write the file 'outfile' in
their working directory; the command prepares a temporary working directory
with a copy of the alignment, runs the tool, and reads the matrix back. The
matrix must be square, symmetric, and contain every sequence of the
alignment.

By default the matrix is written as a TSV file named 'dist.tab'; use the
flag --output, or -o, to set a different file name. The output file is
stored as the distances dataset of the project.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "dist.tab", "")
	c.Flags().StringVar(&output, "o", "dist.tab", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	a, err := p.PhylipAlignment()
	if err != nil {
		return err
	}

	cfg, err := p.Tools()
	if err != nil {
		return err
	}

	m, err := Distances(context.Background(), c.Stdout(), &cfg.Dist, p.Path(project.Phylip), a)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Stdout(), "%s: %d x %d distances\n", output, m.Len(), m.Len())

	if err := writeMatrix(m, output); err != nil {
		return err
	}
	p.Add(project.Distances, output)
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

// Distances runs the distance tool
// on a PHYLIP alignment file
// and returns the validated matrix:
// the matrix must contain a distance
// for every sequence pair of the alignment.
func Distances(ctx context.Context, w io.Writer, tool *pipeline.Tool, phylip string, a *msa.Alignment) (*distmat.Matrix, error) {
	wd, err := os.MkdirTemp("", "protdist-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(wd)

	inFile := filepath.Join(wd, "infile")
	if err := copyFile(phylip, inFile); err != nil {
		return nil, err
	}
	outFile := filepath.Join(wd, "outfile")

	vars := map[string]string{
		"dir": wd,
		"in":  inFile,
		"out": outFile,
	}
	if err := tool.Run(ctx, w, vars); err != nil {
		return nil, err
	}

	f, err := os.Open(outFile)
	if err != nil {
		return nil, fmt.Errorf("distance tool did not produce %q: %v", outFile, err)
	}
	defer f.Close()

	m, err := distmat.ReadProtdist(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", outFile, err)
	}

	if m.Len() != a.Len() {
		return nil, fmt.Errorf("matrix with %d sequences, alignment with %d", m.Len(), a.Len())
	}
	for _, id := range a.IDs() {
		if _, err := matrixLabel(m, id); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// matrixLabel checks that a sequence identifier
// is a label of the matrix.
// The PHYLIP tools truncate long identifiers,
// so the check accepts a label
// that is a prefix of the identifier.
func matrixLabel(m *distmat.Matrix, id string) (string, error) {
	for _, l := range m.Labels() {
		if l == id {
			return l, nil
		}
	}
	for _, l := range m.Labels() {
		if len(l) >= 10 && len(id) > len(l) && id[:len(l)] == l {
			return l, nil
		}
	}
	return "", fmt.Errorf("sequence %q: not in matrix", id)
}

func copyFile(src, dst string) (err error) {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

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

	if _, err := io.Copy(out, f); err != nil {
		return fmt.Errorf("while writing %q: %v", dst, err)
	}
	return nil
}

func writeMatrix(m *distmat.Matrix, name string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := m.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
