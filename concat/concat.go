// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package concat folds a sequence of single-gene alignments into one
// supermatrix with an ordered partition registry, and serialises the
// result for the common tree-building programs.
package concat

import (
	"errors"
	"fmt"
	"sort"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"

	"github.com/biogo/msaprep/align"
)

// ErrDuplicatePartition is returned when a partition name repeats
// across the files of a concatenation run.
var ErrDuplicatePartition = errors.New("concat: duplicate partition name")

// A RegistryEntry records one absorbed partition.
type RegistryEntry struct {
	Name   string
	Length int
}

// A Concatenator accumulates gene alignments into a supermatrix, one
// partition per input file, in the order the files are given. After
// every Add, each supermatrix sequence has length equal to the sum of
// the registered partition lengths.
type Concatenator struct {
	fillEnds bool

	registry []RegistryEntry
	matrix   map[string][]alphabet.Letter
	total    int
}

// New returns an empty Concatenator. When fillEnds is true, filler
// blocks for taxa missing from a file are written as N rather than as
// gaps.
func New(fillEnds bool) *Concatenator {
	return &Concatenator{fillEnds: fillEnds, matrix: make(map[string][]alphabet.Letter)}
}

// Add absorbs aln as the partition named name, conventionally the
// source file's stem. Taxa new to the supermatrix are back-filled with
// placeholder blocks covering the partitions already absorbed; taxa
// absent from aln receive a placeholder block of this partition's
// length. Alignments with no rows or no columns register no partition.
// The alignment is not retained.
func (c *Concatenator) Add(name string, aln *align.Alignment) error {
	length, err := aln.Columns()
	if err != nil {
		return err
	}
	if aln.Rows() == 0 || length == 0 {
		return nil
	}
	for _, e := range c.registry {
		if e.Name == name {
			return fmt.Errorf("%w: %q", ErrDuplicatePartition, name)
		}
	}
	c.registry = append(c.registry, RegistryEntry{Name: name, Length: length})

	seen := make(map[string]bool, aln.Rows())
	for _, s := range aln.Seqs {
		if seen[s.Name()] {
			return fmt.Errorf("concat: taxon %q repeated in partition %q", s.Name(), name)
		}
		seen[s.Name()] = true
		row, ok := c.matrix[s.Name()]
		if !ok {
			row = c.filler(c.total)
		}
		c.matrix[s.Name()] = append(row, s.Seq...)
	}
	for taxon, row := range c.matrix {
		if !seen[taxon] {
			c.matrix[taxon] = append(row, c.filler(length)...)
		}
	}
	c.total += length
	return nil
}

// Registry returns the absorbed partitions in input order.
func (c *Concatenator) Registry() []RegistryEntry { return c.registry }

// Total returns the accumulated supermatrix length.
func (c *Concatenator) Total() int { return c.total }

// Taxa returns the supermatrix taxon names in alphabetical order.
func (c *Concatenator) Taxa() []string {
	names := make([]string, 0, len(c.matrix))
	for n := range c.matrix {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Alignment returns the supermatrix as an alignment with taxa in
// alphabetical order. The rows share storage with the concatenator, so
// this is intended for finalisation only.
func (c *Concatenator) Alignment() *align.Alignment {
	a := align.New()
	for _, n := range c.Taxa() {
		a.Append(linear.NewSeq(n, c.matrix[n], alphabet.DNA))
	}
	return a
}

func (c *Concatenator) filler(n int) []alphabet.Letter {
	l := alphabet.Letter('-')
	if c.fillEnds {
		l = 'N'
	}
	b := make([]alphabet.Letter, n)
	for i := range b {
		b[i] = l
	}
	return b
}
