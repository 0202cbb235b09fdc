// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ekopylova/subtrees/distmat"
	"github.com/ekopylova/subtrees/msa"
	"github.com/ekopylova/subtrees/pipeline"
	"github.com/ekopylova/subtrees/repophlan"
	"github.com/js-arias/timetree"
)

// Scores reads the RepoPhlAn score tables
// as defined in a project.
func (p *Project) Scores() (*repophlan.Scores, error) {
	avgName := p.Path(AvgScores)
	if avgName == "" {
		return nil, fmt.Errorf("averaged scores not defined in project %q", p.name)
	}
	scName := p.Path(Scores)
	if scName == "" {
		return nil, fmt.Errorf("scores not defined in project %q", p.name)
	}

	avg, err := os.Open(avgName)
	if err != nil {
		return nil, err
	}
	defer avg.Close()

	sc, err := os.Open(scName)
	if err != nil {
		return nil, err
	}
	defer sc.Close()

	s, err := repophlan.ReadTSV(avg, sc)
	if err != nil {
		return nil, fmt.Errorf("when reading %q, %q: %v", avgName, scName, err)
	}
	return s, nil
}

// Alignment reads the concatenated FASTA alignment
// as defined in a project.
func (p *Project) Alignment() (*msa.Alignment, error) {
	name := p.Path(Alignment)
	if name == "" {
		return nil, fmt.Errorf("alignment not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	a, err := msa.ReadFasta(f)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return a, nil
}

// PhylipAlignment reads the PHYLIP alignment
// as defined in a project.
func (p *Project) PhylipAlignment() (*msa.Alignment, error) {
	name := p.Path(Phylip)
	if name == "" {
		return nil, fmt.Errorf("phylip alignment not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	a, err := msa.ReadPhylip(f)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return a, nil
}

// TreeCollection reads the inferred newick tree
// as defined in a project.
// The tree is named after the tree file.
func (p *Project) TreeCollection() (*timetree.Collection, error) {
	name := p.Path(Tree)
	if name == "" {
		return nil, fmt.Errorf("tree not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tn := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	c, err := timetree.Newick(f, tn, 0)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}

// Distances reads the distance matrix
// as defined in a project.
func (p *Project) Distances() (*distmat.Matrix, error) {
	name := p.Path(Distances)
	if name == "" {
		return nil, fmt.Errorf("distances not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := distmat.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return m, nil
}

// Tools reads the external tool configuration
// as defined in a project.
// A project without a tool file
// uses the default configuration.
func (p *Project) Tools() (*pipeline.Config, error) {
	name := p.Path(Tools)
	if name == "" {
		return pipeline.Default(), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := pipeline.ReadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return c, nil
}
