// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

// Package all implements a command to run
// the whole distance matrix workflow
// on one or several species bins.
package all

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ekopylova/subtrees/cmd/subtrees/run/distcmd"
	"github.com/ekopylova/subtrees/distmat"
	"github.com/ekopylova/subtrees/msa"
	"github.com/ekopylova/subtrees/pipeline"
	"github.com/ekopylova/subtrees/project"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: `all [--batch <dir>] [--cpu <number>]
	[--tools <tool-file>] [<project-file>]`,
	Short: "run the whole workflow",
	Long: `
Command all runs the whole distance matrix workflow on one or several
species bins. For each bin it runs the alignment and tree inference tool,
converts the concatenated alignment to PHYLIP format, and runs the pairwise
distance tool (see the guide "tools").

The argument of the command is the name of the project file. The project
must define a genome directory (see the command "genomes bin"). The
artifacts are written inside the genome directory: the alignment at
'aln.fasta', the PHYLIP alignment at 'aln.phylip', the tree at 'tree.nwk',
and the distance matrix at 'dist.tab'.

If the flag --batch is defined with a parent directory, every sub-directory
will be processed as an independent species bin, each with its own project
file named 'project.tab' inside the bin. In batch runs the flag --cpu sets
the number of bins processed in parallel; the default is one. Use the flag
--tools to set a tool configuration file shared by all the bins.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var batchDir string
var toolFile string
var cpu int

func setFlags(c *command.Command) {
	c.Flags().StringVar(&batchDir, "batch", "", "")
	c.Flags().StringVar(&toolFile, "tools", "", "")
	c.Flags().IntVar(&cpu, "cpu", 1, "")
}

func run(c *command.Command, args []string) error {
	if batchDir != "" {
		return runBatch(c)
	}

	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	if toolFile != "" {
		p.Add(project.Tools, toolFile)
	}
	if p.Path(project.Genomes) == "" {
		return fmt.Errorf("genome directory not defined in project %q", args[0])
	}
	return runBin(context.Background(), c.Stdout(), p)
}

func runBatch(c *command.Command) error {
	ls, err := os.ReadDir(batchDir)
	if err != nil {
		return err
	}
	var dirs []string
	for _, e := range ls {
		if !e.IsDir() {
			continue
		}
		dirs = append(dirs, filepath.Join(batchDir, e.Name()))
	}
	if len(dirs) == 0 {
		return fmt.Errorf("no species bins in %q", batchDir)
	}

	return pipeline.Batch(context.Background(), cpu, dirs, func(ctx context.Context, dir string) error {
		p := project.New()
		p.SetName(filepath.Join(dir, "project.tab"))
		p.Add(project.Genomes, dir)
		if toolFile != "" {
			p.Add(project.Tools, toolFile)
		}
		return runBin(ctx, c.Stdout(), p)
	})
}

// RunBin runs the three workflow stages on a species bin
// and records every artifact in the project file.
func runBin(ctx context.Context, w io.Writer, p *project.Project) error {
	cfg, err := p.Tools()
	if err != nil {
		return err
	}
	gd := p.Path(project.Genomes)

	alnFile := filepath.Join(gd, "aln.fasta")
	phyFile := filepath.Join(gd, "aln.phylip")
	treeFile := filepath.Join(gd, "tree.nwk")
	distFile := filepath.Join(gd, "dist.tab")

	var a *msa.Alignment
	stages := []pipeline.Stage{
		{
			Name: "align",
			Run: func(ctx context.Context) error {
				vars := map[string]string{
					"dir": gd,
					"in":  gd,
					"out": alnFile,
				}
				if err := cfg.Align.Run(ctx, w, vars); err != nil {
					return err
				}
				if _, err := os.Stat(alnFile); err != nil {
					return fmt.Errorf("alignment tool did not produce %q: %v", alnFile, err)
				}
				p.Add(project.Alignment, alnFile)
				if _, err := os.Stat(treeFile); err == nil {
					p.Add(project.Tree, treeFile)
				}
				return p.Write()
			},
		},
		{
			Name: "phylip",
			Run: func(ctx context.Context) error {
				var err error
				a, err = p.Alignment()
				if err != nil {
					return err
				}
				if err := writePhylip(a, phyFile); err != nil {
					return err
				}
				p.Add(project.Phylip, phyFile)
				return p.Write()
			},
		},
		{
			Name: "dist",
			Run: func(ctx context.Context) error {
				m, err := distcmd.Distances(ctx, w, &cfg.Dist, phyFile, a)
				if err != nil {
					return err
				}
				if err := writeMatrix(m, distFile); err != nil {
					return err
				}
				p.Add(project.Distances, distFile)
				return p.Write()
			},
		},
	}
	return pipeline.Run(ctx, w, stages)
}

func writePhylip(a *msa.Alignment, name string) (err error) {
	if err := a.Validate(); err != nil {
		return err
	}

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

	if err := a.Phylip(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
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
