// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// the distance matrix of a subtrees project
// as a heat map image.
package draw

import (
	"fmt"

	"github.com/ekopylova/subtrees/project"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "draw [-o|--output <png-file>] <project-file>",
	Short: "draw the distance matrix as a heat map",
	Long: `
Command draw reads the distance matrix from a subtrees project and renders
it as a heat map, with one cell per sequence pair, colored from the
smallest to the largest distance of the matrix. The image is useful as a
quick check of the matrix, as related sequence groups appear as blocks
along the diagonal.

The argument of the command is the name of the project file. The project
must define a distance matrix (see the commands "run dist" and "dist
import").

By default the image is written as a PNG file named 'dist.png'; use the
flag --output, or -o, to set a different file name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "dist.png", "")
	c.Flags().StringVar(&output, "o", "dist.png", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	m, err := p.Distances()
	if err != nil {
		return err
	}

	if err := m.Draw(output); err != nil {
		return err
	}
	fmt.Fprintf(c.Stdout(), "%s: %d x %d cells\n", output, m.Len(), m.Len())
	return nil
}
