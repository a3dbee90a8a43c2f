// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	check "gopkg.in/check.v1"
)

func (s *S) TestDescribe(c *check.C) {
	a := newAln([2]string{"a", "GGCC"}, [2]string{"b", "AT--"})
	st := a.Describe()
	c.Check(st.Rows, check.Equals, 2)
	c.Check(st.Columns, check.Equals, 4)
	// Row gap fractions are 0 and 0.5.
	c.Check(st.GapFrac, check.Equals, 0.25)
	// Row GC fractions over unambiguous bases are 1 and 0.
	c.Check(st.GC, check.Equals, 0.5)
}

func (s *S) TestDescribeEmpty(c *check.C) {
	st := New().Describe()
	c.Check(st, check.DeepEquals, Stats{})
}
