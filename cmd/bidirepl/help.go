package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	switch strings.ToLower(topic) {
	case "level", "levels":
		pterm.Info.Println("Embedding levels")
		pterm.Println(`
	Every character gets an embedding level. Even levels are left-to-right,
	odd levels are right-to-left. Column 'Level' shows the resolved level of
	the paragraph, column 'Line' the level after applying rule L1 to the
	whole paragraph as a single line. Characters removed by rule X9
	(embedding controls, BN) have level 'x' and no visual position.
	`)
	case "test", "testing":
		pterm.Info.Println("Test mode")
		pterm.Println(`
	In test mode, uppercase ASCII letters are treated as strong right-to-left
	characters (class R). This makes it easy to type
	examples like "car means CAR." on a keyboard without Hebrew letters.
	`)
	default:
		pterm.Info.Println("Commands")
		data := [][]string{
			{"Command", "Meaning"},
			{":ltr", "paragraph direction left-to-right"},
			{":rtl", "paragraph direction right-to-left"},
			{":auto", "detect direction, fall back to left-to-right"},
			{":autortl", "detect direction, fall back to right-to-left"},
			{":env", "detect direction, fallback from user locale"},
			{":nsm", "toggle re-ordering of non-spacing marks (L3)"},
			{":test", "toggle test mode (uppercase is RTL), see ':help test'"},
			{":runs", "toggle display of visual runs"},
			{":help [topic]", "this help, topics: levels, test"},
			{":quit", "leave the REPL"},
		}
		pterm.DefaultTable.WithHasHeader().WithData(data).Render()
		pterm.Println("Any other input is resolved as a paragraph.")
	}
}
