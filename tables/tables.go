// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tables reads the auxiliary input files used when preparing
// alignments: taxon filter lists, taxon translation dictionaries and
// RAxML-style partition tables. Blank lines and lines starting with
// '#' are ignored in all three file kinds.
package tables

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/biogo/msaprep/align"
)

// ReadTaxonFilter reads a taxon list from r. If the first significant
// line starts with '>' the input is read as FASTA headers, names taken
// up to the first whitespace; otherwise it is read as tab-delimited
// text whose first column is the taxon name.
func ReadTaxonFilter(r io.Reader) (align.TaxonFilter, error) {
	filter := align.TaxonFilter{}
	var (
		headers bool
		first   = true
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if first {
			headers = strings.HasPrefix(line, ">")
			first = false
		}
		if headers {
			if !strings.HasPrefix(line, ">") {
				continue
			}
			f := strings.Fields(line[1:])
			if len(f) > 0 {
				filter[f[0]] = true
			}
			continue
		}
		if name := strings.TrimSpace(strings.Split(line, "\t")[0]); name != "" {
			filter[name] = true
		}
	}
	return filter, sc.Err()
}

// ReadNameMap reads a tab-delimited original→replacement taxon
// dictionary from r.
func ReadNameMap(r io.Reader) (align.NameMap, error) {
	m := align.NameMap{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.SplitN(line, "\t", 3)
		if len(f) < 2 || strings.TrimSpace(f[0]) == "" || strings.TrimSpace(f[1]) == "" {
			return nil, fmt.Errorf("tables: bad dictionary line %q", line)
		}
		m[strings.TrimSpace(f[0])] = strings.TrimSpace(f[1])
	}
	return m, sc.Err()
}

// ReadPartitions reads a RAxML-style partition table from r: one
//  DNA, name = start-end[\stride][, start-end[\stride] ...]
// line per partition. Coordinates are 1-based inclusive; a stride of
// one is implied when absent.
func ReadPartitions(r io.Reader) (align.PartitionTable, error) {
	var t align.PartitionTable
	seen := map[string]bool{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		comma := strings.Index(line, ",")
		if comma < 0 {
			return nil, fmt.Errorf("tables: bad partition line %q", line)
		}
		rest := line[comma+1:]
		eq := strings.Index(rest, "=")
		if eq < 0 {
			return nil, fmt.Errorf("tables: bad partition line %q", line)
		}
		name := strings.TrimSpace(rest[:eq])
		if name == "" {
			return nil, fmt.Errorf("tables: bad partition line %q", line)
		}
		if seen[name] {
			return nil, fmt.Errorf("tables: duplicate partition %q", name)
		}
		seen[name] = true
		p := align.Partition{Name: name}
		for _, rs := range strings.Split(rest[eq+1:], ",") {
			rg, err := parseRange(strings.TrimSpace(rs))
			if err != nil {
				return nil, fmt.Errorf("tables: partition %q: %v", name, err)
			}
			p.Ranges = append(p.Ranges, rg)
		}
		t = append(t, p)
	}
	return t, sc.Err()
}

func parseRange(s string) (align.Range, error) {
	rg := align.Range{Stride: 1}
	if i := strings.Index(s, `\`); i >= 0 {
		stride, err := strconv.Atoi(strings.TrimSpace(s[i+1:]))
		if err != nil || stride < 1 {
			return rg, fmt.Errorf("bad stride in range %q", s)
		}
		rg.Stride = stride
		s = s[:i]
	}
	i := strings.Index(s, "-")
	if i < 0 {
		return rg, fmt.Errorf("bad range %q", s)
	}
	start, err := strconv.Atoi(strings.TrimSpace(s[:i]))
	if err != nil {
		return rg, fmt.Errorf("bad range %q", s)
	}
	end, err := strconv.Atoi(strings.TrimSpace(s[i+1:]))
	if err != nil {
		return rg, fmt.Errorf("bad range %q", s)
	}
	if start < 1 || end < start {
		return rg, fmt.Errorf("bad range %q", s)
	}
	rg.Start, rg.End = start, end
	return rg, nil
}
