package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/uba/bidi"
	"github.com/pterm/pterm"
	"github.com/rivo/uniseg"
)

func printCharacters(bc *bidi.Context, paragraph []rune) {
	levels := bc.Levels()
	classes := bc.Classes()
	lineLevels, _ := bc.ReorderLine(0, len(paragraph))
	data := [][]string{
		{"Index", "Char", "Code", "Class", "Level", "Line"},
	}
	for i, r := range paragraph {
		data = append(data, []string{
			strconv.Itoa(i),
			display(r),
			fmt.Sprintf("%04X", r),
			bidi.ClassString(classes[i]),
			levels[i].String(),
			lineLevels[i].String(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// printVisualLine prints the paragraph in visual order, with a ruler of
// embedding levels below it.
func printVisualLine(bc *bidi.Context, paragraph []rune) {
	levels, visual := bc.ReorderLine(0, len(paragraph))
	var line, ruler strings.Builder
	for _, pos := range visual {
		s := display(paragraph[pos])
		w := uniseg.StringWidth(s)
		l := levels[pos].String()
		line.WriteString(s)
		// a level needs at least one cell; pad the text if it is narrower
		if n := uniseg.StringWidth(l); n > w {
			line.WriteString(strings.Repeat(" ", n-w))
			w = n
		}
		ruler.WriteString(l)
		ruler.WriteString(strings.Repeat(" ", w-uniseg.StringWidth(l)))
	}
	pterm.Info.Printf("visual order (paragraph level %d)\n", bc.BaseLevel())
	pterm.Println(line.String())
	pterm.Println(ruler.String())
}

func printRuns(bc *bidi.Context) {
	data := [][]string{
		{"Visual", "From", "To", "Level", "Direction", "Positions"},
	}
	for i, run := range bc.ReorderedRuns(0, bc.Len()) {
		data = append(data, []string{
			strconv.Itoa(i),
			strconv.Itoa(run.L),
			strconv.Itoa(run.R),
			run.Level.String(),
			run.Dir.String(),
			fmt.Sprint(run.Indices),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// display returns a printable representation of r. Zero-width characters are
// shown by name, combining marks on a dotted circle.
func display(r rune) string {
	s := string(r)
	switch {
	case unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r):
		return "◌" + s
	case r == '\t':
		return "<TAB>"
	case uniseg.StringWidth(s) == 0 || !unicode.IsPrint(r):
		if name, ok := controlNames[r]; ok {
			return "<" + name + ">"
		}
		return fmt.Sprintf("<%04X>", r)
	}
	return s
}

var controlNames = map[rune]string{
	0x200E: "LRM", 0x200F: "RLM", 0x061C: "ALM",
	0x202A: "LRE", 0x202B: "RLE", 0x202C: "PDF", 0x202D: "LRO", 0x202E: "RLO",
	0x2066: "LRI", 0x2067: "RLI", 0x2068: "FSI", 0x2069: "PDI",
	0x200B: "ZWSP", 0x200C: "ZWNJ", 0x200D: "ZWJ", 0xFEFF: "BOM",
}
