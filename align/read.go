// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// A TaxonFilter restricts reading to a set of taxon names.
type TaxonFilter map[string]bool

// ReadFASTA parses FASTA text from r into an Alignment. Blank lines
// and lines starting with '#' are ignored, whitespace embedded in
// sequence lines is stripped and sequence letters are upper-cased. The
// taxon name is the header token up to the first whitespace. When
// filter is non-nil, records whose name is not in the filter are
// skipped whole, sequence lines included. Text whose first significant
// line is not a '>' header fails with ErrMalformedInput.
func ReadFASTA(r io.Reader, filter TaxonFilter) (*Alignment, error) {
	buf, err := normalize(r)
	if err != nil {
		return nil, err
	}
	in := fasta.NewReader(buf, linear.NewSeq("", nil, alphabet.DNA))
	a := New()
	sc := seqio.NewScanner(in)
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		if filter != nil && !filter[s.Name()] {
			continue
		}
		a.Append(s)
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return a, nil
}

// normalize copies FASTA text into a buffer ready for parsing,
// dropping comment and blank lines, stripping whitespace embedded in
// sequence lines and upper-casing sequence data. Gblocks output, which
// space-chunks and wraps its sequences, collapses back to one sequence
// per record through this pass.
func normalize(r io.Reader) (*bytes.Buffer, error) {
	var (
		buf    bytes.Buffer
		header bool
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<16), 1<<26)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
		case strings.HasPrefix(line, ">"):
			header = true
			buf.WriteString(line)
			buf.WriteByte('\n')
		case !header:
			return nil, fmt.Errorf("%w: expected '>' header, got %q", ErrMalformedInput, line)
		default:
			for _, f := range strings.Fields(line) {
				buf.WriteString(strings.ToUpper(f))
			}
			buf.WriteByte('\n')
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &buf, nil
}
