// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Stats summarises an alignment for progress reporting.
type Stats struct {
	Rows    int
	Columns int // longest row for ragged alignments

	GapFrac      float64 // mean per-row fraction of -, N and ?
	GapFracSigma float64
	GC           float64 // mean per-row GC content over unambiguous bases
	GCSigma      float64
}

// Describe computes summary statistics for a.
func (a *Alignment) Describe() Stats {
	var st Stats
	st.Rows = a.Rows()
	gaps := make([]float64, 0, len(a.Seqs))
	gc := make([]float64, 0, len(a.Seqs))
	for _, s := range a.Seqs {
		if s.Len() > st.Columns {
			st.Columns = s.Len()
		}
		if s.Len() == 0 {
			continue
		}
		var missing, strong, bases int
		for _, l := range s.Seq {
			switch l {
			case '-', 'N', '?':
				missing++
			case 'G', 'C':
				strong++
				bases++
			case 'A', 'T':
				bases++
			}
		}
		gaps = append(gaps, float64(missing)/float64(s.Len()))
		if bases > 0 {
			gc = append(gc, float64(strong)/float64(bases))
		}
	}
	if len(gaps) > 0 {
		st.GapFrac = stat.Mean(gaps, nil)
		if len(gaps) > 1 {
			st.GapFracSigma = stat.StdDev(gaps, nil)
		}
	}
	if len(gc) > 0 {
		st.GC = stat.Mean(gc, nil)
		if len(gc) > 1 {
			st.GCSigma = stat.StdDev(gc, nil)
		}
	}
	return st
}

func (s Stats) String() string {
	return fmt.Sprintf("%d taxa, %d columns, gap %.3f (sd %.3f), GC %.3f (sd %.3f)",
		s.Rows, s.Columns, s.GapFrac, s.GapFracSigma, s.GC, s.GCSigma)
}
