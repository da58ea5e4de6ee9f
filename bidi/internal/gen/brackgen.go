// Command brackgen generates the bracket pair table of package bidi from
// BidiBrackets.txt (see internal/testdata for downloading it):
//
//	go run brackgen.go -o ../../brackettable.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/uba/internal/testdata"
	"github.com/npillmayer/uba/internal/ucdparse"
)

// tracer traces with key 'uax.bidi.gen'
func tracer() tracing.Trace {
	return tracing.Select("uax.bidi.gen")
}

type bracket struct {
	char    rune
	partner rune
	open    bool
	name    string
}

func main() {
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	inf := flag.String("i", testdata.UCDPath("BidiBrackets.txt"), "Input file name")
	outf := flag.String("o", "brackettable.go", "Output file name")
	pkg := flag.String("pkg", "bidi", "Package name to use in output file")
	flag.Parse()
	initTracing(*tlevel)
	tracer().Infof("Generating Unicode bracket pairs")
	if *inf == testdata.UCDPath("BidiBrackets.txt") && !testdata.Available("BidiBrackets.txt") {
		tracer().Errorf("BidiBrackets.txt not present, run internal/testdata/download.go first")
		os.Exit(1)
	}
	brackets, err := readBrackets(*inf)
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(1)
	}
	tracer().Infof("Read %d paired brackets", brackets.Size())
	if brackets.Empty() {
		tracer().Errorf("Did not read any bracket pairs, exiting")
		os.Exit(1)
	}
	src, err := generate(*pkg, brackets)
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	if err := os.WriteFile(*outf, src, 0644); err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	tracer().Infof("Wrote %s", *outf)
}

func initTracing(level string) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.uax.bidi.gen": level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintf(os.Stderr, "error configuring tracing: %v\n", err)
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

// readBrackets reads both opening and closing brackets, sorted by character.
func readBrackets(filename string) (*arraylist.List, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	tracer().Debugf("Found file %s ...", filename)
	list := arraylist.New()
	var perr error
	err = ucdparse.Parse(file, func(t *ucdparse.Token) {
		partner, err := ucdparse.ParseCodePoint(t.Field(1))
		if err != nil {
			perr = fmt.Errorf("line %d: %w", t.LineNo, err)
			return
		}
		char, _ := t.Range()
		b := bracket{char: char, partner: partner, open: t.Field(2) == "o", name: t.Comment}
		list.Add(b)
		tracer().Debugf("%#U -> %#U %s", b.char, b.partner, t.Comment)
	})
	if err == nil {
		err = perr
	}
	list.Sort(func(a, b interface{}) int {
		return utils.IntComparator(int(a.(bracket).char), int(b.(bracket).char))
	})
	return list, err
}

func generate(pkg string, brackets *arraylist.List) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by brackgen from BidiBrackets.txt; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	buf.WriteString("// bracketTable lists the paired brackets of UAX#9 (property Bidi_Paired_Bracket),\n")
	buf.WriteString("// sorted by character. Every pair appears twice, once for each bracket.\n")
	buf.WriteString("var bracketTable = [...]bracketEntry{\n")
	it := brackets.Iterator()
	for it.Next() {
		b := it.Value().(bracket)
		typ := "BracketClose"
		if b.open {
			typ = "BracketOpen"
		}
		fmt.Fprintf(&buf, "\t{0x%04X, 0x%04X, %s}, // %s\n", b.char, b.partner, typ, b.name)
	}
	buf.WriteString("}\n")
	return format.Source(buf.Bytes())
}
