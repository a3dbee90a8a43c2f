// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	check "gopkg.in/check.v1"
)

func (s *S) TestTrim(c *check.C) {
	for _, t := range []struct {
		in, want [][2]string
	}{
		{
			// No column is missing in every row, so nothing moves.
			in:   [][2]string{{"a", "AC-GT"}, {"b", "-CGGT"}},
			want: [][2]string{{"a", "AC-GT"}, {"b", "-CGGT"}},
		},
		{
			in:   [][2]string{{"a", "A-NG"}, {"b", "T-?C"}, {"c", "G--A"}},
			want: [][2]string{{"a", "AG"}, {"b", "TC"}, {"c", "GA"}},
		},
		{
			// Rows shorter than the scan are treated as gap padded.
			in:   [][2]string{{"a", "AC--"}, {"b", "TG"}},
			want: [][2]string{{"a", "AC"}, {"b", "TG"}},
		},
	} {
		a := newAln(t.in...)
		a.Trim()
		c.Check(strs(a), check.DeepEquals, t.want)

		// Trimming is idempotent.
		a.Trim()
		c.Check(strs(a), check.DeepEquals, t.want)
	}
}

func (s *S) TestUnalign(c *check.C) {
	a := newAln([2]string{"a", "-AC--GT-"}, [2]string{"b", "TTTT"})
	a.Unalign()
	c.Check(strs(a), check.DeepEquals, [][2]string{{"a", "ACGT"}, {"b", "TTTT"}})
}

func (s *S) TestNormalizeAmbiguity(c *check.C) {
	a := newAln([2]string{"a", "ARYMKWSBDHVT-N?"})
	a.NormalizeAmbiguity()
	c.Check(a.Seqs[0].Seq.String(), check.Equals, "ANNNNNNNNNNT-N?")
}

func (s *S) TestFillEnds(c *check.C) {
	for _, t := range []struct {
		in, want string
	}{
		{"---ACGT---", "NNNACGTNNN"},
		{"AC--GT", "AC--GT"},
		{"-A--T-", "NA--TN"},
		{"----", "NNNN"},
		{"", ""},
	} {
		a := newAln([2]string{"a", t.in})
		a.FillEnds()
		c.Check(a.Seqs[0].Seq.String(), check.Equals, t.want)
		c.Check(a.Seqs[0].Len(), check.Equals, len(t.in))
	}
}

func (s *S) TestFillGaps(c *check.C) {
	for _, t := range []struct {
		in     string
		cutoff int
		want   string
	}{
		{"AC----------GT", 10, "ACNNNNNNNNNNGT"},
		{"AC---------GT", 10, "AC---------GT"},
		{"A--G----C", 2, "ANNGNNNNC"},
		// Terminal runs are never filled here.
		{"---AC----------GT---", 10, "---ACNNNNNNNNNNGT---"},
		{"----------", 10, "----------"},
	} {
		a := newAln([2]string{"a", t.in})
		a.FillGaps(t.cutoff)
		c.Check(a.Seqs[0].Seq.String(), check.Equals, t.want)
		c.Check(a.Seqs[0].Len(), check.Equals, len(t.in))
	}
}

func (s *S) TestNumerize(c *check.C) {
	a := newAln([2]string{"zebra", "ACGT"}, [2]string{"ant", "TTTT"})
	pairs := a.Numerize()
	c.Check(a.Names(), check.DeepEquals, []string{"taxon1", "taxon2"})
	c.Check(pairs, check.DeepEquals, []NamePair{
		{Name: "taxon1", Original: "zebra"},
		{Name: "taxon2", Original: "ant"},
	})
}

func (s *S) TestTranslate(c *check.C) {
	a := newAln([2]string{"a", "ACGT"}, [2]string{"b", "TTTT"})
	a.Translate(NameMap{"b": "beta", "missing": "ignored"})
	c.Check(a.Names(), check.DeepEquals, []string{"a", "beta"})
}

func (s *S) TestSort(c *check.C) {
	a := newAln([2]string{"c", "CC"}, [2]string{"a", "AA"}, [2]string{"b", "BB"})
	a.Sort()
	c.Check(a.Names(), check.DeepEquals, []string{"a", "b", "c"})
}

func (s *S) TestApplyOrder(c *check.C) {
	// Trim removes the all-gap column before the end fill runs, and
	// numerize suppresses sorting.
	a := newAln([2]string{"b", "--ACRT-"}, [2]string{"a", "-TTG-A-"})
	pairs, err := a.Apply(Options{Trim: true, Ambiguity: true, FillEnds: true, Numerize: true, Sort: true})
	c.Assert(err, check.Equals, nil)
	c.Check(strs(a), check.DeepEquals, [][2]string{
		{"taxon1", "NACNT"},
		{"taxon2", "TTG-A"},
	})
	c.Check(pairs, check.DeepEquals, []NamePair{
		{Name: "taxon1", Original: "b"},
		{Name: "taxon2", Original: "a"},
	})
}

func (s *S) TestApplyUnalignExcludesFills(c *check.C) {
	a := newAln([2]string{"a", "--AC-GT--"})
	_, err := a.Apply(Options{Unalign: true, FillEnds: true, FillGaps: true})
	c.Assert(err, check.Equals, nil)
	c.Check(a.Seqs[0].Seq.String(), check.Equals, "ACGT")
}
