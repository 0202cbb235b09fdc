// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// A Stage is a named step of the workflow.
type Stage struct {
	Name string
	Run  func(ctx context.Context) error
}

// Run runs the stages in order,
// reporting each stage on w.
// A failed stage halts the run.
func Run(ctx context.Context, w io.Writer, stages []Stage) error {
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(w, "stage %s\n", st.Name)
		if err := st.Run(ctx); err != nil {
			return errors.Wrapf(err, "stage %s", st.Name)
		}
	}
	return nil
}

// Batch runs fn over several species bin directories,
// with up to cpu runs in flight.
// The bins are independent pipelines:
// the first error cancels the runs
// not yet started
// and is returned.
func Batch(ctx context.Context, cpu int, dirs []string, fn func(ctx context.Context, dir string) error) error {
	if cpu < 1 {
		cpu = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cpu)
	for _, dir := range dirs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx, dir); err != nil {
				return errors.Wrapf(err, "bin %q", dir)
			}
			return nil
		})
	}
	return g.Wait()
}
