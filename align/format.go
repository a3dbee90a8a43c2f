// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
)

// Format is an alignment serialisation format.
type Format int

const (
	FASTA Format = iota
	NEXUS
	Phylip
	PIR
)

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "fasta":
		return FASTA, nil
	case "nexus":
		return NEXUS, nil
	case "phylip":
		return Phylip, nil
	case "pir":
		return PIR, nil
	}
	return 0, fmt.Errorf("align: unknown format %q", s)
}

func (f Format) String() string {
	switch f {
	case FASTA:
		return "fasta"
	case NEXUS:
		return "nexus"
	case Phylip:
		return "phylip"
	case PIR:
		return "pir"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Ext returns the conventional file extension for f.
func (f Format) Ext() string {
	switch f {
	case NEXUS:
		return ".nex"
	case Phylip:
		return ".phy"
	case PIR:
		return ".pir"
	}
	return ".fas"
}

// Write renders a to w in format f. NEXUS and Phylip declare the
// column count and so require equal row lengths. A write failure
// aborts the whole serialisation.
func (a *Alignment) Write(w io.Writer, f Format) error {
	switch f {
	case FASTA:
		return a.writeFasta(w)
	case NEXUS:
		return a.writeNexus(w)
	case Phylip:
		return a.writePhylip(w)
	case PIR:
		return a.writePir(w)
	}
	return fmt.Errorf("align: unknown format %v", f)
}

// MaskUnknown renders a sequence with every N re-encoded as the NEXUS
// unknown character '?'. NEXUS has no distinct N symbol for filled
// positions, while '-' remains a true gap, so the remapping is lossy
// on purpose.
func MaskUnknown(l alphabet.Letters) string {
	b := make([]byte, len(l))
	for i, c := range l {
		if c == 'N' {
			b[i] = '?'
		} else {
			b[i] = byte(c)
		}
	}
	return string(b)
}

func (a *Alignment) writeFasta(w io.Writer) error {
	width := 0
	for _, s := range a.Seqs {
		if s.Len() > width {
			width = s.Len()
		}
	}
	if width == 0 {
		width = 60
	}
	// Full-row width keeps one sequence line per taxon, so output
	// round-trips through ReadFASTA unchanged.
	fw := fasta.NewWriter(w, width)
	for _, s := range a.Seqs {
		if _, err := fw.Write(s); err != nil {
			return err
		}
	}
	return nil
}

func (a *Alignment) writeNexus(w io.Writer) error {
	n, err := a.Columns()
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "#NEXUS\nbegin data;\ndimensions ntax=%d nchar=%d;\nformat datatype=dna missing=? gap=-;\nmatrix\n", a.Rows(), n)
	for i, s := range a.Seqs {
		fmt.Fprintf(bw, "[%d] %s\t%s\n", i+1, s.Name(), MaskUnknown(s.Seq))
	}
	fmt.Fprint(bw, ";\nend;\n")
	return bw.Flush()
}

func (a *Alignment) writePhylip(w io.Writer) error {
	n, err := a.Columns()
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, " %d %d\n", a.Rows(), n)
	for _, s := range a.Seqs {
		name := s.Name()
		if len(name) > 10 {
			name = name[:10]
		}
		fmt.Fprintf(bw, "%-10s   %s\n", name, s.Seq)
	}
	return bw.Flush()
}

func (a *Alignment) writePir(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, s := range a.Seqs {
		fmt.Fprintf(bw, ">DL; %s\n%s.\n%s*\n", s.Name(), s.Name(), s.Seq)
	}
	return bw.Flush()
}
