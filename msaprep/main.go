// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// msaprep prepares multiple sequence alignments for phylogenetic
// tree-building. For each input FASTA alignment it can remove empty
// columns, normalise IUPAC ambiguity codes, replace terminal and long
// interior gap runs with N, strip gaps entirely, rename taxa from a
// dictionary or to numbered labels, sort taxa, run Gblocks, and write
// the result as FASTA, NEXUS, Phylip or PIR. Each alignment can also
// be split by codon position or by a RAxML-style partition table.
//
// With -concat the per-file outputs are replaced by a single
// supermatrix accumulated over all inputs in the order given, written
// as concatenated FASTA (none), Phylip with a RAxML partition file
// (raxml), or NEXUS for BEAST or MrBayes. Taxa missing from a file
// contribute a placeholder block of that file's length, gaps by
// default or N with -fillends.
//
// Input files are processed strictly in the order given; any fatal
// error aborts the whole run without producing the concatenated
// output.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/msaprep/align"
	"github.com/biogo/msaprep/concat"
	"github.com/biogo/msaprep/gblocks"
	"github.com/biogo/msaprep/tables"
)

var (
	format     = flag.String("format", "fasta", "per-file output format: fasta, nexus, phylip or pir")
	trim       = flag.Bool("trim", false, "remove columns holding only gaps, N or ?")
	unalign    = flag.Bool("unalign", false, "strip all gap characters (excludes the fill options)")
	ambig      = flag.Bool("ambig", false, "replace IUPAC ambiguity codes with N")
	fillEnds   = flag.Bool("fillends", false, "replace leading and trailing gap runs with N")
	fillGaps   = flag.Bool("fillgaps", false, "replace long interior gap runs with N")
	gapCutoff  = flag.Int("gapcutoff", align.DefaultGapCutoff, "minimum interior gap run replaced by -fillgaps")
	numerize   = flag.Bool("numerize", false, "rename taxa to taxon{n} and write a <stem>_names.tsv side file")
	sortTaxa   = flag.Bool("sort", false, "sort taxa by name (ignored with -numerize)")
	taxaFile   = flag.String("taxa", "", "taxon filter file: FASTA headers or tab-delimited first column")
	dictFile   = flag.String("dict", "", "tab-delimited original<TAB>replacement taxon dictionary")
	partFile   = flag.String("partitions", "", "RAxML-style partition table; split each alignment by partition")
	codon      = flag.Bool("codon", false, "split each alignment into the three codon position alignments")
	concatSch  = flag.String("concat", "", "concatenate inputs to a supermatrix: none, raxml, beast or mrbayes")
	outDir     = flag.String("outdir", "", "directory for output files, defaults to alongside each input")
	useGblocks = flag.Bool("gblocks", false, "run Gblocks on each alignment after the edits")
	gblocksCmd = flag.String("gblocks-cmd", "", "Gblocks executable, defaults to Gblocks on PATH")
	help       = flag.Bool("help", false, "help prints this message")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Need at least one input alignment.")
		flag.Usage()
		os.Exit(1)
	}

	var (
		filter align.TaxonFilter
		dict   align.NameMap
		table  align.PartitionTable
		err    error
	)
	if *taxaFile != "" {
		f := mustOpen(*taxaFile)
		filter, err = tables.ReadTaxonFilter(f)
		f.Close()
		if err != nil {
			log.Fatalf("failed to read %q: %v", *taxaFile, err)
		}
	}
	if *dictFile != "" {
		f := mustOpen(*dictFile)
		dict, err = tables.ReadNameMap(f)
		f.Close()
		if err != nil {
			log.Fatalf("failed to read %q: %v", *dictFile, err)
		}
	}
	if *partFile != "" {
		f := mustOpen(*partFile)
		table, err = tables.ReadPartitions(f)
		f.Close()
		if err != nil {
			log.Fatalf("failed to read %q: %v", *partFile, err)
		}
	}

	outFormat, err := align.ParseFormat(*format)
	if err != nil {
		log.Fatalf("failed to parse -format: %v", err)
	}

	var (
		cc     *concat.Concatenator
		scheme concat.Scheme
	)
	if *concatSch != "" {
		scheme, err = concat.ParseScheme(*concatSch)
		if err != nil {
			log.Fatalf("failed to parse -concat: %v", err)
		}
		cc = concat.New(*fillEnds)
	}

	opt := align.Options{
		Trim:      *trim,
		Unalign:   *unalign,
		Ambiguity: *ambig,
		FillEnds:  *fillEnds,
		FillGaps:  *fillGaps,
		GapCutoff: *gapCutoff,
		Numerize:  *numerize,
		Translate: dict,
		Sort:      *sortTaxa,
	}

	for _, path := range flag.Args() {
		process(path, filter, opt, table, outFormat, cc)
	}

	if cc != nil {
		dir := *outDir
		if dir == "" {
			dir = "."
		}
		paths, err := cc.WriteFiles(dir, scheme)
		if err != nil {
			log.Fatalf("failed to write concatenated output: %v", err)
		}
		log.Printf("wrote %s (%d partitions, %d columns)", strings.Join(paths, ", "), len(cc.Registry()), cc.Total())
	}
}

// process runs the per-file pipeline: read, transform, optionally
// Gblocks, then either fold into the concatenator or write the codon,
// partition or whole-alignment outputs.
func process(path string, filter align.TaxonFilter, opt align.Options, table align.PartitionTable, outFormat align.Format, cc *concat.Concatenator) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("failed to open %q: %v", path, err)
	}
	aln, err := align.ReadFASTA(f, filter)
	f.Close()
	if err != nil {
		log.Fatalf("failed to read %q: %v", path, err)
	}

	pairs, err := aln.Apply(opt)
	if err != nil {
		log.Fatalf("failed to transform %q: %v", path, err)
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if len(pairs) != 0 {
		writeNames(outPath(path, stem+"_names.tsv"), pairs)
	}

	if *useGblocks {
		mode := "d"
		if *codon {
			mode = "c"
		}
		aln, err = gblocks.Clean(gblocks.Gblocks{
			Cmd:    *gblocksCmd,
			InFile: outPath(path, stem+"_gb.fas"),
			Type:   mode,
		}, aln)
		if err != nil {
			log.Fatalf("failed to run Gblocks on %q: %v", path, err)
		}
	}

	log.Printf("%s: %v", filepath.Base(path), aln.Describe())

	switch {
	case cc != nil:
		if err := cc.Add(stem, aln); err != nil {
			log.Fatalf("failed to concatenate %q: %v", path, err)
		}
	case *codon:
		for k, sub := range aln.Codons() {
			writeAlignment(outPath(path, fmt.Sprintf("%s_pos%d%s", stem, k+1, outFormat.Ext())), sub, outFormat)
		}
	case table != nil:
		subs, err := aln.Split(table)
		if err != nil {
			log.Fatalf("failed to split %q: %v", path, err)
		}
		for i, sub := range subs {
			writeAlignment(outPath(path, stem+"_"+table[i].Name+outFormat.Ext()), sub, outFormat)
		}
	default:
		writeAlignment(outPath(path, stem+outFormat.Ext()), aln, outFormat)
	}
}

// outPath places name in -outdir when set, otherwise alongside the
// input file.
func outPath(in, name string) string {
	if *outDir != "" {
		return filepath.Join(*outDir, name)
	}
	return filepath.Join(filepath.Dir(in), name)
}

func writeAlignment(path string, aln *align.Alignment, f align.Format) {
	out, err := os.Create(path)
	if err != nil {
		log.Fatalf("failed to create %q: %v", path, err)
	}
	if err := aln.Write(out, f); err != nil {
		out.Close()
		log.Fatalf("failed to write %q: %v", path, err)
	}
	if err := out.Close(); err != nil {
		log.Fatalf("failed to write %q: %v", path, err)
	}
	log.Printf("wrote %s", path)
}

func writeNames(path string, pairs []align.NamePair) {
	out, err := os.Create(path)
	if err != nil {
		log.Fatalf("failed to create %q: %v", path, err)
	}
	for _, p := range pairs {
		fmt.Fprintf(out, "%s\t%s\n", p.Name, p.Original)
	}
	if err := out.Close(); err != nil {
		log.Fatalf("failed to write %q: %v", path, err)
	}
	log.Printf("wrote %s", path)
}

func mustOpen(path string) *os.File {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("failed to open %q: %v", path, err)
	}
	return f
}
