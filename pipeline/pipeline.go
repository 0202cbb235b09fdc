// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

// Package pipeline invokes the external tools
// of the distance matrix workflow:
// the alignment and tree inference tool
// and the pairwise distance tool.
//
// Tools are declared in a YAML configuration file
// so site specific installations
// can be used without code changes.
// Argument templates accept the placeholders
// {dir} for the genome or working directory,
// {in} for the input file,
// and {out} for the output file.
package pipeline

import (
	"context"
	"io"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A Tool is the invocation template
// of an external program.
type Tool struct {
	// Name of the program binary.
	Bin string `yaml:"bin"`

	// Argument templates,
	// expanded with the placeholder values
	// before the execution.
	Args []string `yaml:"args,omitempty"`

	// Text written to the standard input
	// of the program.
	// The PHYLIP tools are interactive
	// and expect their menu answers here.
	Stdin string `yaml:"stdin,omitempty"`

	// Working directory template.
	// The PHYLIP tools read and write
	// fixed file names
	// in their working directory.
	Workdir string `yaml:"workdir,omitempty"`
}

// A Config is the set of external tools
// used by the workflow.
type Config struct {
	// Alignment and tree inference tool.
	Align Tool `yaml:"align"`

	// Pairwise distance tool.
	Dist Tool `yaml:"dist"`
}

// Default returns the default tool configuration:
// PhyloPhlAn for the alignment and the tree,
// and PHYLIP protdist for the distances.
func Default() *Config {
	return &Config{
		Align: Tool{
			Bin:  "phylophlan.py",
			Args: []string{"-u", "{dir}", "--nproc", "1"},
		},
		Dist: Tool{
			Bin:     "protdist",
			Stdin:   "Y\n",
			Workdir: "{dir}",
		},
	}
}

// ReadConfig reads a tool configuration
// from a YAML file.
// Tools not declared in the file
// keep their default values.
func ReadConfig(r io.Reader) (*Config, error) {
	c := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return nil, errors.Wrap(err, "unable to decode tool configuration")
	}
	if c.Align.Bin == "" {
		return nil, errors.New("align tool: empty binary name")
	}
	if c.Dist.Bin == "" {
		return nil, errors.New("dist tool: empty binary name")
	}
	return c, nil
}

// Write writes a tool configuration
// as a YAML file.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(err, "unable to encode tool configuration")
	}
	return errors.Wrap(enc.Close(), "unable to encode tool configuration")
}

// Expand replaces the argument placeholders
// with their values.
func expand(s string, vars map[string]string) string {
	pairs := make([]string, 0, 2*len(vars))
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// Command builds the executable command of a tool,
// with the placeholders of the argument
// and working directory templates
// replaced by the values in vars.
func (t *Tool) Command(ctx context.Context, vars map[string]string) *exec.Cmd {
	args := make([]string, 0, len(t.Args))
	for _, a := range t.Args {
		args = append(args, expand(a, vars))
	}

	cmd := exec.CommandContext(ctx, t.Bin, args...)
	cmd.Dir = expand(t.Workdir, vars)
	if t.Stdin != "" {
		cmd.Stdin = strings.NewReader(t.Stdin)
	}
	return cmd
}

// Run executes a tool,
// streaming its combined output to w.
// The error reports the expanded command line
// of a failed execution.
func (t *Tool) Run(ctx context.Context, w io.Writer, vars map[string]string) error {
	cmd := t.Command(ctx, vars)
	cmd.Stdout = w
	cmd.Stderr = w

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "tool %q", strings.Join(cmd.Args, " "))
	}
	return nil
}
