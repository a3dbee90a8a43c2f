// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gblocks wraps the external Gblocks program, which removes
// poorly aligned blocks from a multiple sequence alignment.
package gblocks

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/biogo/external"

	"github.com/biogo/msaprep/align"
)

// Gblocks describes a Gblocks invocation. Zero-valued option fields
// are omitted from the command line.
type Gblocks struct {
	// Usage: Gblocks <infile> [options]
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}Gblocks{{end}}"` // Gblocks

	// Files:
	InFile string `buildarg:"{{with .}}{{.}}{{end}}"` // <infile>

	// Options:
	Type            string `buildarg:"{{with .}}-t={{.}}{{end}}"`  // -t=<p|d|c>
	MinForConserved int    `buildarg:"{{with .}}-b1={{.}}{{end}}"` // -b1=<n>
	MinForFlank     int    `buildarg:"{{with .}}-b2={{.}}{{end}}"` // -b2=<n>
	MaxContiguous   int    `buildarg:"{{with .}}-b3={{.}}{{end}}"` // -b3=<n>
	MinBlock        int    `buildarg:"{{with .}}-b4={{.}}{{end}}"` // -b4=<n>
	AllowedGaps     string `buildarg:"{{with .}}-b5={{.}}{{end}}"` // -b5=<n|h|a>
	Report          string `buildarg:"{{with .}}-p={{.}}{{end}}"`  // -p=<y|n|t|s>
}

// BuildCommand builds the Gblocks command line.
func (g Gblocks) BuildCommand() (*exec.Cmd, error) {
	cl, err := external.Build(g)
	if err != nil {
		return nil, err
	}
	return exec.Command(cl[0], cl[1:]...), nil
}

// Clean writes aln to g.InFile as FASTA, runs Gblocks on it and reads
// the trimmed alignment back from the output file Gblocks leaves
// alongside the input. Unset parameters are defaulted for a DNA run:
// the conserved and flank sequence minimums to half the taxon count
// plus one, the minimum block length to five, gap allowance to h and
// report to n.
func Clean(g Gblocks, aln *align.Alignment) (*align.Alignment, error) {
	if g.InFile == "" {
		return nil, errors.New("gblocks: no input file")
	}
	if g.Type == "" {
		g.Type = "d"
	}
	if g.MinForConserved == 0 {
		g.MinForConserved = aln.Rows()/2 + 1
	}
	if g.MinForFlank == 0 {
		g.MinForFlank = aln.Rows()/2 + 1
	}
	if g.MinBlock == 0 {
		g.MinBlock = 5
	}
	if g.AllowedGaps == "" {
		g.AllowedGaps = "h"
	}
	if g.Report == "" {
		g.Report = "n"
	}

	f, err := os.Create(g.InFile)
	if err != nil {
		return nil, err
	}
	if err := aln.Write(f, align.FASTA); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}

	cmd, err := g.BuildCommand()
	if err != nil {
		return nil, err
	}
	err = cmd.Run()
	if err != nil {
		// Gblocks exits non-zero in batch mode even on success,
		// so only failure to start or to produce output is fatal.
		var exit *exec.ExitError
		if !errors.As(err, &exit) {
			return nil, fmt.Errorf("gblocks: %v", err)
		}
	}

	out, err := os.Open(g.InFile + "-gb")
	if err != nil {
		return nil, fmt.Errorf("gblocks: no output for %q: %v", g.InFile, err)
	}
	defer out.Close()
	return align.ReadFASTA(out, nil)
}
