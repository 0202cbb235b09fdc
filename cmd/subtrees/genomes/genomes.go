// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

// Package genomes is a metapackage for commands
// that dealt with species genome bins.
package genomes

import (
	"github.com/ekopylova/subtrees/cmd/subtrees/genomes/bin"
	"github.com/ekopylova/subtrees/cmd/subtrees/genomes/list"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "genomes <command> [<argument>...]",
	Short: "commands for species genome bins",
}

func init() {
	Command.Add(bin.Command)
	Command.Add(list.Command)
}
