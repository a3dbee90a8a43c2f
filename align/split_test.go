// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	check "gopkg.in/check.v1"
)

func (s *S) TestSplit(c *check.C) {
	a := newAln([2]string{"a", "ACGTACGTA"}, [2]string{"b", "TTTGGGCCC"})

	// A strided range selects columns 1, 4 and 7.
	got, err := a.Split(PartitionTable{{Name: "p1", Ranges: []Range{{Start: 1, End: 9, Stride: 3}}}})
	c.Assert(err, check.Equals, nil)
	c.Assert(got, check.HasLen, 1)
	c.Check(strs(got[0]), check.DeepEquals, [][2]string{{"a", "ATG"}, {"b", "TGC"}})

	// Ranges concatenate in table order; stride defaults to one.
	got, err = a.Split(PartitionTable{
		{Name: "head", Ranges: []Range{{Start: 1, End: 3}, {Start: 8, End: 9}}},
		{Name: "tail", Ranges: []Range{{Start: 4, End: 7}}},
	})
	c.Assert(err, check.Equals, nil)
	c.Assert(got, check.HasLen, 2)
	c.Check(strs(got[0]), check.DeepEquals, [][2]string{{"a", "ACGTA"}, {"b", "TTTCC"}})
	c.Check(strs(got[1]), check.DeepEquals, [][2]string{{"a", "TACG"}, {"b", "GGGC"}})
}

func (s *S) TestSplitOutOfRange(c *check.C) {
	a := newAln([2]string{"a", "ACGT"})
	_, err := a.Split(PartitionTable{{Name: "p1", Ranges: []Range{{Start: 2, End: 5}}}})
	c.Check(err, check.ErrorMatches, `align: partition "p1": column 5 outside alignment of 4 columns`)
}

func (s *S) TestCodons(c *check.C) {
	a := newAln([2]string{"a", "ACGTAGG"}, [2]string{"b", "TTTCCCG"})
	frames := a.Codons()
	c.Check(strs(frames[0]), check.DeepEquals, [][2]string{{"a", "ATG"}, {"b", "TCG"}})
	c.Check(strs(frames[1]), check.DeepEquals, [][2]string{{"a", "CA"}, {"b", "TC"}})
	c.Check(strs(frames[2]), check.DeepEquals, [][2]string{{"a", "GG"}, {"b", "TC"}})

	// The frames partition the columns and reassemble the original
	// triplets.
	n, err := a.Columns()
	c.Assert(err, check.Equals, nil)
	for r := range a.Seqs {
		var f [3]string
		total := 0
		for k := range frames {
			f[k] = frames[k].Seqs[r].Seq.String()
			total += len(f[k])
		}
		c.Check(total, check.Equals, n)
		for j := 0; j+2 < len(f[0])*3 && j < len(f[1])*3 && j < len(f[2])*3; j += 3 {
			triplet := string([]byte{f[0][j/3], f[1][j/3], f[2][j/3]})
			c.Check(triplet, check.Equals, a.Seqs[r].Seq[j:j+3].String())
		}
	}
}
