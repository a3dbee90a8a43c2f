// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"bytes"
	"errors"

	check "gopkg.in/check.v1"
)

func (s *S) TestParseFormat(c *check.C) {
	for _, t := range []struct {
		in   string
		want Format
	}{
		{"fasta", FASTA},
		{"NEXUS", NEXUS},
		{"phylip", Phylip},
		{"pir", PIR},
	} {
		got, err := ParseFormat(t.in)
		c.Check(err, check.Equals, nil)
		c.Check(got, check.Equals, t.want)
	}
	_, err := ParseFormat("stockholm")
	c.Check(err, check.ErrorMatches, `align: unknown format "stockholm"`)
}

func (s *S) TestWriteNexus(c *check.C) {
	a := newAln([2]string{"a", "ACN-T"}, [2]string{"b", "TT--N"})
	var buf bytes.Buffer
	c.Assert(a.Write(&buf, NEXUS), check.Equals, nil)
	c.Check(buf.String(), check.Equals, "#NEXUS\n"+
		"begin data;\n"+
		"dimensions ntax=2 nchar=5;\n"+
		"format datatype=dna missing=? gap=-;\n"+
		"matrix\n"+
		"[1] a\tAC?-T\n"+
		"[2] b\tTT--?\n"+
		";\n"+
		"end;\n")
}

func (s *S) TestWritePhylip(c *check.C) {
	a := newAln([2]string{"short", "ACGT"}, [2]string{"averylongtaxonname", "TTTT"})
	var buf bytes.Buffer
	c.Assert(a.Write(&buf, Phylip), check.Equals, nil)
	c.Check(buf.String(), check.Equals, " 2 4\n"+
		"short        ACGT\n"+
		"averylongt   TTTT\n")
}

func (s *S) TestWritePIR(c *check.C) {
	a := newAln([2]string{"a", "ACGT"})
	var buf bytes.Buffer
	c.Assert(a.Write(&buf, PIR), check.Equals, nil)
	c.Check(buf.String(), check.Equals, ">DL; a\na.\nACGT*\n")
}

func (s *S) TestWriteRagged(c *check.C) {
	a := newAln([2]string{"a", "ACGT"}, [2]string{"b", "AC"})
	var buf bytes.Buffer
	err := a.Write(&buf, NEXUS)
	c.Check(errors.Is(err, ErrRaggedAlignment), check.Equals, true)
	err = a.Write(&buf, Phylip)
	c.Check(errors.Is(err, ErrRaggedAlignment), check.Equals, true)
}

func (s *S) TestMaskUnknown(c *check.C) {
	a := newAln([2]string{"a", "AN-N?"})
	c.Check(MaskUnknown(a.Seqs[0].Seq), check.Equals, "A?-??")
}
