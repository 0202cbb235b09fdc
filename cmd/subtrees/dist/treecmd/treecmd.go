// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

// Package treecmd implements a command to build
// a patristic distance matrix
// from the inferred tree of a subtrees project.
package treecmd

import (
	"fmt"
	"os"

	"github.com/ekopylova/subtrees/distmat"
	"github.com/ekopylova/subtrees/project"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "tree [-o|--output <matrix-file>] <project-file>",
	Short: "build a patristic distance matrix",
	Long: `
Command tree reads the inferred tree from a subtrees project and writes the
matrix of patristic distances between its terminals, that is, the sum of
the branch lengths on the path between each pair of terminals. The matrix
can be compared with the matrix of the distance tool (see the command "run
dist").

The argument of the command is the name of the project file. The project
must define a tree (see the command "run align").

By default the matrix is written as a TSV file named 'tree-dist.tab'; use
the flag --output, or -o, to set a different file name. The distances
dataset of the project is left untouched.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "tree-dist.tab", "")
	c.Flags().StringVar(&output, "o", "tree-dist.tab", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	coll, err := p.TreeCollection()
	if err != nil {
		return err
	}
	names := coll.Names()
	if len(names) == 0 {
		return fmt.Errorf("tree file of project %q without trees", args[0])
	}

	t := coll.Tree(names[0])
	m, err := distmat.FromTree(t)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Stdout(), "%s: %d x %d distances\n", output, m.Len(), m.Len())

	if err := writeMatrix(m, output); err != nil {
		return err
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
