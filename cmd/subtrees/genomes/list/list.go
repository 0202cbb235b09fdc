// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

// Package list implements a command to print
// the species bins of a project.
package list

import (
	"fmt"

	"github.com/ekopylova/subtrees/project"
	"github.com/ekopylova/subtrees/taxonomy"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "list [--min <number>] [<project-file>]",
	Short: "print a list of species bins",
	Long: `
Command list reads the RepoPhlAn score tables of a project and prints the
species bins with their genome counts in the standard output, sorted by
increasing number of genomes. Taxonomies not resolved to the species level
are skipped.

The argument of the command is the name of the project file. Without a
project file, the documented reference datasets are printed.

With the flag --min, only species with more than the indicated number of
genomes are printed.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var minFlag int

func setFlags(c *command.Command) {
	c.Flags().IntVar(&minFlag, "min", 0, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		for _, d := range taxonomy.Reference() {
			if d.Genomes <= minFlag {
				continue
			}
			fmt.Fprintf(c.Stdout(), "%d\t%s\n", d.Genomes, d.Lineage)
		}
		return nil
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	s, err := p.Scores()
	if err != nil {
		return err
	}

	for _, l := range s.Taxonomies() {
		if !l.HasSpecies() {
			continue
		}
		n := len(s.Bin(l))
		if n <= minFlag {
			continue
		}
		fmt.Fprintf(c.Stdout(), "%d\t%s\n", n, l)
	}
	return nil
}
