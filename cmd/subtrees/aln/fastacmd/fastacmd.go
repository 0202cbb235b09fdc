// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

// Package fastacmd implements a command to convert
// a PHYLIP alignment back into FASTA format.
package fastacmd

import (
	"fmt"
	"os"

	"github.com/ekopylova/subtrees/msa"
	"github.com/ekopylova/subtrees/project"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: `fasta [-i|--input <phylip-file>] [-o|--output <fasta-file>]
	<project-file>`,
	Short: "convert a PHYLIP alignment to FASTA format",
	Long: `
Command fasta reads the PHYLIP alignment of a project and writes it back as
a FASTA file, preserving the sequence identifiers and the aligned residues
exactly, so a conversion to PHYLIP followed by a conversion to FASTA is a
round trip.

The first argument of the command is the name of the project file.

By default the phylip dataset of the project is converted. A different
PHYLIP file can be defined with the flag --input, or -i.

By default the output is written to the file 'aln-rt.fasta'; use the flag
--output, or -o, to set a different file name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var input string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&input, "input", "", "")
	c.Flags().StringVar(&input, "i", "", "")
	c.Flags().StringVar(&output, "output", "aln-rt.fasta", "")
	c.Flags().StringVar(&output, "o", "aln-rt.fasta", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	if input != "" {
		p.Add(project.Phylip, input)
	}

	a, err := p.PhylipAlignment()
	if err != nil {
		return err
	}

	if err := writeFasta(a); err != nil {
		return err
	}
	fmt.Fprintf(c.Stdout(), "%s: %d sequences, %d columns\n", output, a.Len(), a.Columns())
	return nil
}

func writeFasta(a *msa.Alignment) (err error) {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := a.Fasta(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	return nil
}
