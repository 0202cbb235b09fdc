// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

// Package bin implements a command to bin genomes by species
// and materialize a species genome directory.
package bin

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ekopylova/subtrees/project"
	"github.com/ekopylova/subtrees/repophlan"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: `bin [--scores <score-file>] [--average <score-file>]
	[--dir <path>] [--species <name>] [--min <number>]
	<project-file>`,
	Short: "bin genomes by species",
	Long: `
Command bin reads the RepoPhlAn quality score tables, bins the genomes that
passed the quality filter by their taxonomy, and writes one FASTA file per
genome of a species into a per species directory. Bzip2 compressed genome
files are decompressed on writing.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

The flags --scores and --average define the paths of the RepoPhlAn score
table and the averaged score table, and are stored in the project. If the
project already defines the tables the flags can be omitted.

With the flag --species, the genomes of the indicated species are written
into a directory named after the lineage of the species (with each pipe
replaced by a dot), and the directory is stored in the project as the
genome dataset. The species can be indicated by its full lineage, by its
lineage directory name, or by its bare species name. An unknown species, or
a species without any genome file, is an error.

With the flag --min, every species with more than the indicated number of
genomes is written into its own directory. This form is intended to prepare
the bins for a batch run (see the command "run all"), and does not store a
genome directory in the project.

The flag --dir defines the parent directory for the species directories; by
default the current directory is used.

Genomes whose taxonomy does not start with a valid kingdom are reported on
the standard output.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var scoresFlag string
var averageFlag string
var dirFlag string
var speciesFlag string
var minFlag int

func setFlags(c *command.Command) {
	c.Flags().StringVar(&scoresFlag, "scores", "", "")
	c.Flags().StringVar(&averageFlag, "average", "", "")
	c.Flags().StringVar(&dirFlag, "dir", "", "")
	c.Flags().StringVar(&speciesFlag, "species", "", "")
	c.Flags().IntVar(&minFlag, "min", 0, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if speciesFlag == "" && minFlag == 0 {
		return c.UsageError("expecting flag --species or --min")
	}

	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	if scoresFlag != "" {
		p.Add(project.Scores, scoresFlag)
	}
	if averageFlag != "" {
		p.Add(project.AvgScores, averageFlag)
	}

	s, err := p.Scores()
	if err != nil {
		return err
	}
	if nk := s.NoKingdom(); len(nk) > 0 {
		fmt.Fprintf(c.Stdout(), "genomes without a valid kingdom: %d\n", len(nk))
	}

	if speciesFlag != "" {
		if err := binSpecies(c, s, p); err != nil {
			return err
		}
	} else if err := binAll(c, s); err != nil {
		return err
	}

	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func binSpecies(c *command.Command, s *repophlan.Scores, p *project.Project) error {
	l, ok := s.Find(speciesFlag)
	if !ok {
		return fmt.Errorf("species %q: not found in scores", speciesFlag)
	}

	dir := filepath.Join(dirFlag, l.DirName())
	files, err := s.ExtractBin(c.Stdout(), l, dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Stdout(), "%s: %d genomes\n", l.Species(), len(files))

	p.Add(project.Genomes, dir)
	return nil
}

func binAll(c *command.Command, s *repophlan.Scores) error {
	var bins int
	for _, l := range s.Taxonomies() {
		if len(s.Bin(l)) <= minFlag {
			continue
		}
		if !l.HasSpecies() {
			continue
		}

		dir := filepath.Join(dirFlag, l.DirName())
		files, err := s.ExtractBin(c.Stdout(), l, dir)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.Stdout(), "%s: %d genomes\n", l.Species(), len(files))
		bins++
	}
	if bins == 0 {
		return fmt.Errorf("no species with more than %d genomes", minFlag)
	}
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}
