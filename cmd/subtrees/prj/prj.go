// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

// Package prj implements a command to print
// the basic information of a project.
package prj

import (
	"fmt"
	"io"
	"os"

	"github.com/ekopylova/subtrees/project"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "prj <project-file>",
	Short: "print information about a project",
	Long: `
Command prj reads a subtrees project and prints the information of the
different project elements into the standard output.

The argument of the command is the name of the project file.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	if p.Path(project.Scores) != "" && p.Path(project.AvgScores) != "" {
		if err := readScores(c.Stdout(), p); err != nil {
			return err
		}
	}

	if gd := p.Path(project.Genomes); gd != "" {
		if err := readGenomes(c.Stdout(), gd); err != nil {
			return err
		}
	}

	if p.Path(project.Alignment) != "" {
		if err := readAlignment(c.Stdout(), p, project.Alignment); err != nil {
			return err
		}
	}
	if p.Path(project.Phylip) != "" {
		if err := readAlignment(c.Stdout(), p, project.Phylip); err != nil {
			return err
		}
	}

	if p.Path(project.Tree) != "" {
		if err := readTree(c.Stdout(), p); err != nil {
			return err
		}
	}

	if p.Path(project.Distances) != "" {
		if err := readDistances(c.Stdout(), p); err != nil {
			return err
		}
	}

	if tf := p.Path(project.Tools); tf != "" {
		fmt.Fprintf(c.Stdout(), "External tools:\n")
		fmt.Fprintf(c.Stdout(), "\tfile: %s\n", tf)
		fmt.Fprintf(c.Stdout(), "\n")
	}

	return nil
}

func readScores(w io.Writer, p *project.Project) error {
	s, err := p.Scores()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Genome scores:\n")
	fmt.Fprintf(w, "\tscore file: %s\n", p.Path(project.Scores))
	fmt.Fprintf(w, "\taveraged score file: %s\n", p.Path(project.AvgScores))
	fmt.Fprintf(w, "\tspecies: %d\n", len(s.Taxonomies()))
	if nk := s.NoKingdom(); len(nk) > 0 {
		fmt.Fprintf(w, "\tgenomes without kingdom: %d\n", len(nk))
	}
	fmt.Fprintf(w, "\n")

	return nil
}

func readGenomes(w io.Writer, dir string) error {
	ls, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var files int
	for _, e := range ls {
		if e.IsDir() {
			continue
		}
		files++
	}

	fmt.Fprintf(w, "Genome directory:\n")
	fmt.Fprintf(w, "\tpath: %s\n", dir)
	fmt.Fprintf(w, "\tfiles: %d\n", files)
	fmt.Fprintf(w, "\n")

	return nil
}

func readAlignment(w io.Writer, p *project.Project, set project.Dataset) error {
	var err error
	var a interface {
		Len() int
		Columns() int
	}
	title := "Alignment"
	if set == project.Phylip {
		title = "PHYLIP alignment"
		a, err = p.PhylipAlignment()
	} else {
		a, err = p.Alignment()
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s:\n", title)
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(set))
	fmt.Fprintf(w, "\tsequences: %d\n", a.Len())
	fmt.Fprintf(w, "\tcolumns: %d\n", a.Columns())
	fmt.Fprintf(w, "\n")

	return nil
}

func readTree(w io.Writer, p *project.Project) error {
	coll, err := p.TreeCollection()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Tree:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Tree))
	for _, tn := range coll.Names() {
		t := coll.Tree(tn)
		if t == nil {
			continue
		}
		fmt.Fprintf(w, "\ttree %s: %d terminals\n", tn, len(t.Terms()))
	}
	fmt.Fprintf(w, "\n")

	return nil
}

func readDistances(w io.Writer, p *project.Project) error {
	m, err := p.Distances()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Distance matrix:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Distances))
	fmt.Fprintf(w, "\tsequences: %d\n", m.Len())
	fmt.Fprintf(w, "\tmaximum distance: %.6f\n", m.Max())
	fmt.Fprintf(w, "\n")

	return nil
}
