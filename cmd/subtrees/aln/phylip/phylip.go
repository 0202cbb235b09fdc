// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

// Package phylip implements a command to convert
// a FASTA alignment into PHYLIP format.
package phylip

import (
	"fmt"
	"os"

	"github.com/ekopylova/subtrees/msa"
	"github.com/ekopylova/subtrees/project"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: `phylip [-i|--input <fasta-file>] [-o|--output <phylip-file>]
	<project-file>`,
	Short: "convert a FASTA alignment to PHYLIP format",
	Long: `
Command phylip reads the concatenated FASTA alignment of a project and
writes it as a PHYLIP file, preserving the sequence identifiers and the
aligned residues exactly.

The first argument of the command is the name of the project file.

By default the alignment defined in the project is converted. A different
alignment file can be defined with the flag --input, or -i; if this flag is
used the file will be stored as the alignment of the project.

By default the output is written to the file 'aln.phylip'; use the flag
--output, or -o, to set a different file name. The output file is stored as
the phylip dataset of the project.

An alignment with sequences of unequal lengths is not a valid alignment:
the conversion fails and no output file is written.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var input string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&input, "input", "", "")
	c.Flags().StringVar(&input, "i", "", "")
	c.Flags().StringVar(&output, "output", "aln.phylip", "")
	c.Flags().StringVar(&output, "o", "aln.phylip", "")
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
		p.Add(project.Alignment, input)
	}

	a, err := p.Alignment()
	if err != nil {
		return err
	}
	if err := a.Validate(); err != nil {
		return fmt.Errorf("alignment %q: %v", p.Path(project.Alignment), err)
	}

	if err := writePhylip(a); err != nil {
		return err
	}
	fmt.Fprintf(c.Stdout(), "%s: %d sequences, %d columns\n", output, a.Len(), a.Columns())

	p.Add(project.Phylip, output)
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func writePhylip(a *msa.Alignment) (err error) {
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

	if err := a.Phylip(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	return nil
}
