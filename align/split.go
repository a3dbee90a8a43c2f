// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"fmt"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
)

// A Range selects the 1-based inclusive columns start, start+stride,
// start+2*stride, … up to end. A stride below one is taken as one.
type Range struct {
	Start, End, Stride int
}

// A Partition names a set of column ranges.
type Partition struct {
	Name   string
	Ranges []Range
}

// A PartitionTable is an ordered list of named partitions.
type PartitionTable []Partition

// Split builds one alignment per partition in t. Each output row holds
// the columns selected by the partition's ranges, concatenated in
// range-then-stride order; taxon order is preserved. A range referring
// to a column outside the alignment is a configuration error.
func (a *Alignment) Split(t PartitionTable) ([]*Alignment, error) {
	n, err := a.Columns()
	if err != nil {
		return nil, err
	}
	out := make([]*Alignment, 0, len(t))
	for _, p := range t {
		sub := New()
		for _, s := range a.Seqs {
			var letters []alphabet.Letter
			for _, r := range p.Ranges {
				stride := r.Stride
				if stride < 1 {
					stride = 1
				}
				for col := r.Start; col <= r.End; col += stride {
					if col < 1 || col > n {
						return nil, fmt.Errorf("align: partition %q: column %d outside alignment of %d columns", p.Name, col, n)
					}
					letters = append(letters, s.Seq[col-1])
				}
			}
			sub.Append(linear.NewSeq(s.Name(), letters, alphabet.DNA))
		}
		out = append(out, sub)
	}
	return out, nil
}

// Codons splits the alignment into its three codon position
// alignments, taking the first column as codon position one. Taxon
// names and row order are preserved; rows whose length is not a
// multiple of three give shorter trailing frames without padding.
func (a *Alignment) Codons() [3]*Alignment {
	var out [3]*Alignment
	for k := range out {
		out[k] = New()
	}
	for _, s := range a.Seqs {
		for k := range out {
			var letters []alphabet.Letter
			for i := k; i < len(s.Seq); i += 3 {
				letters = append(letters, s.Seq[i])
			}
			out[k].Append(linear.NewSeq(s.Name(), letters, alphabet.DNA))
		}
	}
	return out
}
