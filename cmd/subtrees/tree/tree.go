// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

// Package tree is a metapackage for commands
// that dealt with the inferred species trees.
package tree

import (
	"github.com/ekopylova/subtrees/cmd/subtrees/tree/terms"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "tree <command> [<argument>...]",
	Short: "commands for inferred species trees",
}

func init() {
	Command.Add(terms.Command)
}
