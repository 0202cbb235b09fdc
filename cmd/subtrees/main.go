// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

// Subtrees is a tool to compute pairwise distance matrices
// between the genomes of bacterial species.
package main

import (
	"github.com/ekopylova/subtrees/cmd/subtrees/aln"
	"github.com/ekopylova/subtrees/cmd/subtrees/dist"
	"github.com/ekopylova/subtrees/cmd/subtrees/genomes"
	"github.com/ekopylova/subtrees/cmd/subtrees/prj"
	"github.com/ekopylova/subtrees/cmd/subtrees/run"
	"github.com/ekopylova/subtrees/cmd/subtrees/tree"
	"github.com/js-arias/command"
)

var app = &command.Command{
	Usage: "subtrees <command> [<argument>...]",
	Short: "a tool for species genome distance matrices",
}

func init() {
	app.Add(aln.Command)
	app.Add(dist.Command)
	app.Add(genomes.Command)
	app.Add(prj.Command)
	app.Add(run.Command)
	app.Add(tree.Command)
}

func main() {
	app.Main()
}
