// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

// Package run is a metapackage for commands
// that invoke the external tools of the workflow.
package run

import (
	"github.com/ekopylova/subtrees/cmd/subtrees/run/aligncmd"
	"github.com/ekopylova/subtrees/cmd/subtrees/run/all"
	"github.com/ekopylova/subtrees/cmd/subtrees/run/distcmd"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "run <command> [<argument>...]",
	Short: "commands to run the external tools",
}

func init() {
	Command.Add(aligncmd.Command)
	Command.Add(all.Command)
	Command.Add(distcmd.Command)
}
