// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package concat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/biogo/msaprep/align"
)

// Scheme selects the concatenated output form.
type Scheme int

const (
	None Scheme = iota // concatenated FASTA only
	RAxML
	BEAST
	MrBayes
)

// ParseScheme returns the Scheme named by s.
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(s) {
	case "none":
		return None, nil
	case "raxml":
		return RAxML, nil
	case "beast":
		return BEAST, nil
	case "mrbayes":
		return MrBayes, nil
	}
	return 0, fmt.Errorf("concat: unknown output scheme %q", s)
}

func (s Scheme) String() string {
	switch s {
	case None:
		return "none"
	case RAxML:
		return "raxml"
	case BEAST:
		return "beast"
	case MrBayes:
		return "mrbayes"
	}
	return fmt.Sprintf("Scheme(%d)", int(s))
}

// ribosomal matches partition names such as 16S or 28S that denote
// ribosomal genes. These are not partitioned by codon position in
// RAxML output. The heuristic is deliberately literal.
var ribosomal = regexp.MustCompile(`[0-9][0-9]S`)

// WriteFasta writes the supermatrix as FASTA, taxa in alphabetical
// order.
func (c *Concatenator) WriteFasta(w io.Writer) error {
	return c.Alignment().Write(w, align.FASTA)
}

// WritePhylip writes the supermatrix as fixed-width Phylip, taxa in
// alphabetical order.
func (c *Concatenator) WritePhylip(w io.Writer) error {
	return c.Alignment().Write(w, align.Phylip)
}

// WriteRAxMLPartitions writes RAxML partition declarations for the
// registry, in registry order. Ribosomal partitions get a single DNA
// line; all others are declared by codon position with a stride of
// three.
func (c *Concatenator) WriteRAxMLPartitions(w io.Writer) error {
	bw := bufio.NewWriter(w)
	start := 1
	for _, e := range c.registry {
		end := start + e.Length - 1
		if ribosomal.MatchString(e.Name) {
			fmt.Fprintf(bw, "DNA, %s = %d-%d\n", e.Name, start, end)
		} else {
			for k := 0; k < 3; k++ {
				fmt.Fprintf(bw, "DNA, %s-%d = %d-%d\\3\n", e.Name, k+1, start+k, end)
			}
		}
		start = end + 1
	}
	return bw.Flush()
}

// WriteBEAST writes the supermatrix as a BEAST-style NEXUS file: a
// taxa block with sorted labels, a characters block with N re-encoded
// as ?, and an assumptions block declaring one charset per partition
// in registry order.
func (c *Concatenator) WriteBEAST(w io.Writer) error {
	bw := bufio.NewWriter(w)
	taxa := c.Taxa()
	fmt.Fprintf(bw, "#NEXUS\n\nbegin taxa;\n\tdimensions ntax=%d;\n\ttaxlabels\n", len(taxa))
	for _, n := range taxa {
		fmt.Fprintf(bw, "\t%s\n", n)
	}
	fmt.Fprint(bw, "\t;\nend;\n\n")
	fmt.Fprintf(bw, "begin characters;\n\tdimensions nchar=%d;\n\tformat datatype=dna missing=? gap=-;\n\tmatrix\n", c.total)
	for _, n := range taxa {
		fmt.Fprintf(bw, "\t%s\t%s\n", n, align.MaskUnknown(c.matrix[n]))
	}
	fmt.Fprint(bw, "\t;\nend;\n\n")
	fmt.Fprint(bw, "begin assumptions;\n")
	c.charsets(bw)
	fmt.Fprint(bw, "end;\n")
	return bw.Flush()
}

// WriteMrBayes writes the supermatrix as a MrBayes-ready NEXUS file: a
// data block with N re-encoded as ?, and a mrbayes block declaring the
// charsets, a partition scheme over all of them in registry order, and
// the MCMC model setup for a mixed-partition DNA analysis.
func (c *Concatenator) WriteMrBayes(w io.Writer) error {
	bw := bufio.NewWriter(w)
	taxa := c.Taxa()
	fmt.Fprintf(bw, "#NEXUS\n\nbegin data;\n\tdimensions ntax=%d nchar=%d;\n\tformat datatype=dna missing=? gap=-;\n\tmatrix\n", len(taxa), c.total)
	for _, n := range taxa {
		fmt.Fprintf(bw, "\t%s\t%s\n", n, align.MaskUnknown(c.matrix[n]))
	}
	fmt.Fprint(bw, "\t;\nend;\n\n")
	fmt.Fprint(bw, "begin mrbayes;\n")
	c.charsets(bw)
	names := make([]string, len(c.registry))
	for i, e := range c.registry {
		names[i] = e.Name
	}
	fmt.Fprintf(bw, "\tpartition genes = %d: %s;\n", len(names), strings.Join(names, ", "))
	fmt.Fprint(bw, "\tset partition = genes;\n")
	fmt.Fprint(bw, "\tlset applyto=(all) nst=6 rates=invgamma;\n")
	fmt.Fprint(bw, "\tunlink statefreq=(all) revmat=(all) shape=(all) pinvar=(all);\n")
	fmt.Fprint(bw, "\tprset applyto=(all) ratepr=variable;\n")
	fmt.Fprint(bw, "end;\n")
	return bw.Flush()
}

func (c *Concatenator) charsets(w io.Writer) {
	start := 1
	for _, e := range c.registry {
		end := start + e.Length - 1
		fmt.Fprintf(w, "\tcharset %s = %d-%d;\n", e.Name, start, end)
		start = end + 1
	}
}

// WriteFiles writes the finalised outputs for the chosen scheme into
// dir, returning the paths written. RAxML runs with a single partition
// omit the partition file.
func (c *Concatenator) WriteFiles(dir string, scheme Scheme) ([]string, error) {
	var paths []string
	write := func(name string, fn func(io.Writer) error) error {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := fn(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		paths = append(paths, path)
		return nil
	}
	switch scheme {
	case None:
		if err := write("output.fasta", c.WriteFasta); err != nil {
			return nil, err
		}
	case RAxML:
		if err := write("output.phy", c.WritePhylip); err != nil {
			return nil, err
		}
		if len(c.registry) > 1 {
			if err := write("output_partitions.txt", c.WriteRAxMLPartitions); err != nil {
				return nil, err
			}
		}
	case BEAST:
		if err := write("output.nex", c.WriteBEAST); err != nil {
			return nil, err
		}
	case MrBayes:
		if err := write("output.nex", c.WriteMrBayes); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("concat: unknown output scheme %v", scheme)
	}
	return paths, nil
}
