// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

// Package terms implements a command to print
// the list of the terminals in the tree of a subtrees project.
package terms

import (
	"fmt"
	"slices"

	"github.com/ekopylova/subtrees/project"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "terms [--count] <project-file>",
	Short: "print a list of tree terminals",
	Long: `
Command terms reads the inferred tree from a subtrees project and print the
name of the terminals in the standard output. The terminals are the genome
sequence identifiers of the species bin.

The argument of the command is the name of the project file.

If the flag --count is set, only the number of terminals will be printed.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var count bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&count, "count", false, "")
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

	terms := make(map[string]bool)
	for _, tn := range coll.Names() {
		t := coll.Tree(tn)
		if t == nil {
			continue
		}
		for _, tax := range t.Terms() {
			terms[tax] = true
		}
	}

	if count {
		fmt.Fprintf(c.Stdout(), "%d\n", len(terms))
		return nil
	}

	ls := make([]string, 0, len(terms))
	for tax := range terms {
		ls = append(ls, tax)
	}
	slices.Sort(ls)
	for _, term := range ls {
		fmt.Fprintf(c.Stdout(), "%s\n", term)
	}
	return nil
}
