// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

// Package aligncmd implements a command to run
// the external alignment and tree inference tool
// on a species genome directory.
package aligncmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ekopylova/subtrees/project"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: `align [--alignment <fasta-file>] [--tree <newick-file>]
	<project-file>`,
	Short: "run the alignment and tree inference tool",
	Long: `
Command align runs the external alignment and tree inference tool on the
genome directory of a project. The tool is defined by the tools dataset of
the project; by default PhyloPhlAn is used (see the guide "tools").

The first argument of the command is the name of the project file. The
project must define a genome directory (see the command "genomes bin").

After the run, the concatenated alignment is expected at the file
'aln.fasta' and the inferred tree at the file 'tree.nwk', both inside the
genome directory; use the flags --alignment and --tree if the configured
tool leaves them elsewhere. The alignment is required and stored in the
project; the tree is stored only if the file exists.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var alnFile string
var treeFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&alnFile, "alignment", "", "")
	c.Flags().StringVar(&treeFile, "tree", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	gd := p.Path(project.Genomes)
	if gd == "" {
		return fmt.Errorf("genome directory not defined in project %q", args[0])
	}

	cfg, err := p.Tools()
	if err != nil {
		return err
	}

	if alnFile == "" {
		alnFile = filepath.Join(gd, "aln.fasta")
	}
	if treeFile == "" {
		treeFile = filepath.Join(gd, "tree.nwk")
	}

	vars := map[string]string{
		"dir": gd,
		"in":  gd,
		"out": alnFile,
	}
	if err := cfg.Align.Run(context.Background(), c.Stdout(), vars); err != nil {
		return err
	}

	if _, err := os.Stat(alnFile); err != nil {
		return fmt.Errorf("alignment tool did not produce %q: %v", alnFile, err)
	}
	p.Add(project.Alignment, alnFile)

	if _, err := os.Stat(treeFile); err == nil {
		p.Add(project.Tree, treeFile)
	}

	if err := p.Write(); err != nil {
		return err
	}
	return nil
}
