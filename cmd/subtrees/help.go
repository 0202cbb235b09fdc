// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(formatsGuide)
	app.Add(projectsGuide)
	app.Add(toolsGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
Subtrees tracks the artifacts of a species analysis in a single project file,
so each command knows where the previous stage left its output. This guide
explains the structure of the file, but most of the time, the best and most
secure way to edit or view this file is by using subtrees commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of artifact
	- path     for the path of the artifact

Here is an example file:

	# subtrees project files
	dataset	path
	scores	repophlan_microbes.txt
	avgscores	repophlan_microbes_wscores.tsv
	genomes	k__Bacteria.p__Proteobacteria.c__Betaproteobacteria.o__Burkholderiales.f__Burkholderiaceae.g__Burkholderia.s__Burkholderia_stagnalis
	alignment	aln.fasta
	phylip	aln.phylip
	tree	tree.nwk
	distances	dist.tab

The valid dataset keywords are:

	scores     the RepoPhlAn genome quality score table,
	           with the taxonomy of each genome
	avgscores  the averaged quality scores of the genomes
	           that passed the quality filter,
	           with the path of each genome sequence file
	genomes    the directory with one FASTA file
	           per genome of the species
	alignment  the concatenated alignment in FASTA format
	phylip     the concatenated alignment in PHYLIP format
	tree       the inferred tree in newick format
	distances  the pairwise distance matrix as a TSV file
	tools      the external tool configuration as a YAML file
	`,
}

var formatsGuide = &command.Command{
	Usage: "formats",
	Short: "about sequence and matrix file formats",
	Long: `
The artifacts of a species analysis move between three plain text formats.

FASTA files store one or more sequences, each preceded by a single
description line starting with '>'. The sequence identifier is the first
whitespace-delimited token of the description line. Genome files and the
concatenated alignment produced by the alignment tool are FASTA files.

PHYLIP files store an alignment for the PHYLIP programs. The first line is a
header with the number of sequences and the number of alignment columns;
each following record is a sequence identifier padded to a common column
followed by the aligned residues:

	3 12
	G000009225  MKV-LADWQTRE
	G000129014  MKVALAD--TRE
	G000237915  MQVALADWQT--

All sequences of an alignment must have the same number of columns; a FASTA
file with unequal sequence lengths is not a valid alignment and will be
rejected by the conversion.

Distance matrices are stored as TSV files with the fields taxon_a, taxon_b,
and distance, one row per unordered pair. The square matrix output of the
PHYLIP distance tools can be imported with the command "dist import".
	`,
}

var toolsGuide = &command.Command{
	Usage: "tools",
	Short: "about external tool configuration",
	Long: `
The alignment and tree inference tool and the pairwise distance tool are
external programs. Their invocations are declared in a YAML file so site
specific installations can be used without code changes. The file has two
entries, align and dist, each with the fields:

	bin      the name or path of the program
	args     the argument list of the program
	stdin    text written to the standard input of the program,
	         used to answer the menus of the interactive PHYLIP tools
	workdir  the working directory of the program

Argument and working directory templates accept the placeholders {dir} for
the genome or working directory, {in} for the input file, and {out} for the
output file. The default configuration is:

	align:
	  bin: phylophlan.py
	  args:
	    - -u
	    - '{dir}'
	    - --nproc
	    - "1"
	dist:
	  bin: protdist
	  stdin: |
	    Y
	  workdir: '{dir}'

Use the dataset keyword tools to add a configuration file to a project.
	`,
}
