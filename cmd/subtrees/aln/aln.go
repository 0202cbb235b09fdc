// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

// Package aln is a metapackage for commands
// that dealt with alignment files.
package aln

import (
	"github.com/ekopylova/subtrees/cmd/subtrees/aln/fastacmd"
	"github.com/ekopylova/subtrees/cmd/subtrees/aln/phylip"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "aln <command> [<argument>...]",
	Short: "commands for alignment files",
}

func init() {
	Command.Add(fastacmd.Command)
	Command.Add(phylip.Command)
}
