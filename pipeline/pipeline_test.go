// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "phylophlan.py", c.Align.Bin)
	assert.Equal(t, "protdist", c.Dist.Bin)
	assert.Equal(t, "Y\n", c.Dist.Stdin)
}

func TestReadConfig(t *testing.T) {
	in := `
align:
  bin: phylophlan
  args: ["-i", "{dir}", "--nproc", "8"]
dist:
  bin: /opt/phylip/protdist
  stdin: "Y\n"
  workdir: "{dir}"
`
	c, err := ReadConfig(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "phylophlan", c.Align.Bin)
	assert.Equal(t, []string{"-i", "{dir}", "--nproc", "8"}, c.Align.Args)
	assert.Equal(t, "/opt/phylip/protdist", c.Dist.Bin)
	assert.Equal(t, "{dir}", c.Dist.Workdir)
}

func TestReadConfigPartial(t *testing.T) {
	in := "align:\n  bin: mafft\n"
	c, err := ReadConfig(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "mafft", c.Align.Bin)
	// the dist tool keeps its default
	assert.Equal(t, "protdist", c.Dist.Bin)
}

func TestReadConfigErrors(t *testing.T) {
	_, err := ReadConfig(strings.NewReader("align:\n  binary: mafft\n"))
	assert.Error(t, err, "unknown fields must be rejected")

	_, err = ReadConfig(strings.NewReader("align:\n  bin: \"\"\n"))
	assert.Error(t, err, "an empty binary name must be rejected")
}

func TestConfigWrite(t *testing.T) {
	c := Default()

	var buf bytes.Buffer
	require.NoError(t, c.Write(&buf))

	nc, err := ReadConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, c, nc)
}

func TestToolCommand(t *testing.T) {
	tool := Tool{
		Bin:     "protdist",
		Args:    []string{"-in", "{in}", "-out", "{out}"},
		Workdir: "{dir}",
	}
	vars := map[string]string{
		"in":  "aln.phylip",
		"out": "dist.txt",
		"dir": "/tmp/burkholderia",
	}

	cmd := tool.Command(context.Background(), vars)
	assert.Equal(t, []string{"protdist", "-in", "aln.phylip", "-out", "dist.txt"}, cmd.Args)
	assert.Equal(t, "/tmp/burkholderia", cmd.Dir)
}

func TestToolRun(t *testing.T) {
	tool := Tool{
		Bin:  "sh",
		Args: []string{"-c", "echo running {in}"},
	}

	var buf bytes.Buffer
	err := tool.Run(context.Background(), &buf, map[string]string{"in": "aln.fasta"})
	require.NoError(t, err)
	assert.Equal(t, "running aln.fasta\n", buf.String())
}

func TestToolRunError(t *testing.T) {
	tool := Tool{
		Bin:  "sh",
		Args: []string{"-c", "exit 3"},
	}

	var buf bytes.Buffer
	err := tool.Run(context.Background(), &buf, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sh -c")
}
