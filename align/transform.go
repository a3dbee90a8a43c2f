// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"fmt"
	"sort"
)

// DefaultGapCutoff is the minimum interior gap run length replaced by
// gap filling when Options leaves the cutoff unset.
const DefaultGapCutoff = 10

// A NameMap maps original taxon names to replacements.
type NameMap map[string]string

// A NamePair records a single taxon renaming.
type NamePair struct {
	Name, Original string
}

// Options selects the editing operations performed by Apply. The
// operations run in a fixed order: column trim, then per-row edits
// (unalign, or ambiguity normalisation, end fill and interior gap fill
// in that order), then renaming, then sort. Unalign discards the
// column structure, so it excludes the fill operations; numerize
// excludes sorting, since the generated names would sort away from the
// side mapping's read order.
type Options struct {
	Trim      bool
	Unalign   bool
	Ambiguity bool
	FillEnds  bool
	FillGaps  bool
	GapCutoff int
	Numerize  bool
	Translate NameMap
	Sort      bool
}

// Apply performs the operations selected by opt on a. It returns the
// renaming pairs produced by numerization, if any.
func (a *Alignment) Apply(opt Options) ([]NamePair, error) {
	if opt.Trim {
		a.Trim()
	}
	if opt.Unalign {
		a.Unalign()
	} else {
		if opt.Ambiguity {
			a.NormalizeAmbiguity()
		}
		if opt.FillEnds {
			a.FillEnds()
		}
		if opt.FillGaps {
			c := opt.GapCutoff
			if c <= 0 {
				c = DefaultGapCutoff
			}
			a.FillGaps(c)
		}
	}
	var pairs []NamePair
	switch {
	case opt.Numerize:
		pairs = a.Numerize()
	case opt.Translate != nil:
		a.Translate(opt.Translate)
	}
	if opt.Sort && !opt.Numerize {
		a.Sort()
	}
	return pairs, nil
}

// Trim removes every column in which all rows hold a gap, N or ?.
// Rows shorter than the longest row are treated as gap-extended during
// the scan, so ragged alignments are handled without error. Columns to
// keep are marked in a first pass and rows rebuilt in a second,
// avoiding index shifts during removal.
func (a *Alignment) Trim() {
	var max int
	for _, s := range a.Seqs {
		if s.Len() > max {
			max = s.Len()
		}
	}
	keep := make([]bool, max)
	for col := 0; col < max; col++ {
		for _, s := range a.Seqs {
			if col < s.Len() && !isMissing(s.Seq[col]) {
				keep[col] = true
				break
			}
		}
	}
	for _, s := range a.Seqs {
		out := s.Seq[:0]
		for i, l := range s.Seq {
			if keep[i] {
				out = append(out, l)
			}
		}
		s.Seq = out
	}
}

// Unalign strips all gap characters from every row, discarding the
// column structure.
func (a *Alignment) Unalign() {
	for _, s := range a.Seqs {
		out := s.Seq[:0]
		for _, l := range s.Seq {
			if l != '-' {
				out = append(out, l)
			}
		}
		s.Seq = out
	}
}

// ambiguity is the set of IUPAC ambiguity codes collapsed to N by
// NormalizeAmbiguity.
var ambiguity = func() [256]bool {
	var t [256]bool
	for _, c := range []byte("RYMKWSBDHV") {
		t[c] = true
	}
	return t
}()

// NormalizeAmbiguity replaces each IUPAC ambiguity code with N in
// every row.
func (a *Alignment) NormalizeAmbiguity() {
	for _, s := range a.Seqs {
		for i, l := range s.Seq {
			if ambiguity[byte(l)] {
				s.Seq[i] = 'N'
			}
		}
	}
}

// FillEnds replaces the leading and the trailing gap run of each row
// with N. Interior gaps are left untouched, even when adjacent to a
// run boundary.
func (a *Alignment) FillEnds() {
	for _, s := range a.Seqs {
		i := 0
		for i < len(s.Seq) && s.Seq[i] == '-' {
			s.Seq[i] = 'N'
			i++
		}
		j := len(s.Seq) - 1
		for j >= i && s.Seq[j] == '-' {
			s.Seq[j] = 'N'
			j--
		}
	}
}

// FillGaps replaces every interior run of at least cutoff gap
// characters with the same number of Ns. Leading and trailing runs are
// never filled here; they belong to FillEnds. Row lengths are
// unchanged.
func (a *Alignment) FillGaps(cutoff int) {
	for _, s := range a.Seqs {
		start := 0
		for start < len(s.Seq) && s.Seq[start] == '-' {
			start++
		}
		end := len(s.Seq)
		for end > start && s.Seq[end-1] == '-' {
			end--
		}
		for i := start; i < end; {
			if s.Seq[i] != '-' {
				i++
				continue
			}
			j := i
			for j < end && s.Seq[j] == '-' {
				j++
			}
			if j-i >= cutoff {
				for k := i; k < j; k++ {
					s.Seq[k] = 'N'
				}
			}
			i = j
		}
	}
}

// Numerize replaces each taxon name with taxon{n} in row order,
// returning the mapping from generated name to original for the caller
// to persist.
func (a *Alignment) Numerize() []NamePair {
	pairs := make([]NamePair, len(a.Seqs))
	for i, s := range a.Seqs {
		name := fmt.Sprintf("taxon%d", i+1)
		pairs[i] = NamePair{Name: name, Original: s.Name()}
		s.ID = name
	}
	return pairs
}

// Translate renames each taxon present in m. Names absent from the map
// are left unchanged.
func (a *Alignment) Translate(m NameMap) {
	for _, s := range a.Seqs {
		if to, ok := m[s.Name()]; ok {
			s.ID = to
		}
	}
}

// Sort orders the rows by taxon name.
func (a *Alignment) Sort() {
	sort.Slice(a.Seqs, func(i, j int) bool { return a.Seqs[i].Name() < a.Seqs[j].Name() })
}
