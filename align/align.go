// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package align provides the in-memory representation of a multiple
// sequence alignment and the editing operations used to prepare
// alignments for phylogenetic tree-building: column trimming, gap and
// end filling, ambiguity normalisation, taxon renaming, codon and
// partition splitting, and serialisation to the common tree-builder
// input formats.
package align

import (
	"errors"
	"fmt"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
)

var (
	// ErrMalformedInput is returned when input text cannot be parsed
	// as FASTA.
	ErrMalformedInput = errors.New("align: malformed input")

	// ErrRaggedAlignment is returned by column-oriented operations
	// when rows do not all have the same length.
	ErrRaggedAlignment = errors.New("align: unequal sequence lengths")
)

// An Alignment is an ordered collection of named, aligned sequences.
// Column-oriented operations require every row to have equal length;
// an input violating this is a caller error reported as
// ErrRaggedAlignment.
type Alignment struct {
	Seqs []*linear.Seq
}

// New returns an empty Alignment.
func New() *Alignment { return &Alignment{} }

// Append adds a row to the alignment.
func (a *Alignment) Append(s *linear.Seq) { a.Seqs = append(a.Seqs, s) }

// Rows returns the number of sequences in the alignment.
func (a *Alignment) Rows() int { return len(a.Seqs) }

// Columns returns the common row length of the alignment. It returns
// ErrRaggedAlignment if rows differ in length. An empty alignment has
// zero columns.
func (a *Alignment) Columns() (int, error) {
	if len(a.Seqs) == 0 {
		return 0, nil
	}
	n := a.Seqs[0].Len()
	for _, s := range a.Seqs[1:] {
		if s.Len() != n {
			return 0, fmt.Errorf("%w: %q is %d long, want %d", ErrRaggedAlignment, s.Name(), s.Len(), n)
		}
	}
	return n, nil
}

// Names returns the taxon names in row order.
func (a *Alignment) Names() []string {
	names := make([]string, len(a.Seqs))
	for i, s := range a.Seqs {
		names[i] = s.Name()
	}
	return names
}

// Row returns the sequence for the named taxon, or nil if the taxon is
// not present.
func (a *Alignment) Row(name string) *linear.Seq {
	for _, s := range a.Seqs {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

// isMissing reports whether l carries no sequence information. These
// are the letters that make a column eligible for trimming.
func isMissing(l alphabet.Letter) bool {
	return l == '-' || l == 'N' || l == '?'
}
