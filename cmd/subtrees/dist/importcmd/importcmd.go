// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

// Package importcmd implements a command to import
// a distance matrix in the PHYLIP output format
// into a subtrees project.
package importcmd

import (
	"fmt"
	"os"

	"github.com/ekopylova/subtrees/distmat"
	"github.com/ekopylova/subtrees/project"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "import [-o|--output <matrix-file>] <project-file> <protdist-file>",
	Short: "import a PHYLIP distance matrix",
	Long: `
Command import reads a distance matrix in the output format of the PHYLIP
distance programs, such as protdist, and stores it in a subtrees project as
a TSV file. Use it when the distance tool was run by hand, outside of the
command "run dist".

The first argument of the command is the name of the project file. The
second argument is the name of the PHYLIP matrix file; both the square and
the lower triangular layouts are accepted. The matrix must be symmetric and
all of its distances must be defined.

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
	if len(args) < 2 {
		return c.UsageError("expecting project and matrix files")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	m, err := readProtdist(args[1])
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

func readProtdist(name string) (*distmat.Matrix, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := distmat.ReadProtdist(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return m, nil
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
