// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

// Package dist is a metapackage for commands
// that dealt with pairwise distance matrices.
package dist

import (
	"github.com/ekopylova/subtrees/cmd/subtrees/dist/draw"
	"github.com/ekopylova/subtrees/cmd/subtrees/dist/importcmd"
	"github.com/ekopylova/subtrees/cmd/subtrees/dist/treecmd"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "dist <command> [<argument>...]",
	Short: "commands for pairwise distance matrices",
}

func init() {
	Command.Add(draw.Command)
	Command.Add(importcmd.Command)
	Command.Add(treecmd.Command)
}
