package bidi

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/unicode/bidi"
)

type ContextTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uax.bidi")
	defer teardown()
	suite.Run(t, new(ContextTestEnviron))
}

func levels(ll ...int) []Level {
	levels := make([]Level, len(ll))
	for i, l := range ll {
		levels[i] = Level(l)
	}
	return levels
}

func repeat(l Level, n int) []Level {
	levels := make([]Level, n)
	for i := range levels {
		levels[i] = l
	}
	return levels
}

// --- Paragraph level -------------------------------------------------------

func (env *ContextTestEnviron) TestEmptyParagraph() {
	bc := NewContext()
	bc.ResolveString("", HintAutoRightToLeft)
	env.Equal(0, bc.Len())
	env.Equal(Level(1), bc.BaseLevel())
	env.Empty(bc.Runs())
	lv, visual := bc.ReorderLine(0, 0)
	env.Empty(lv)
	env.Empty(visual)
	env.Empty(bc.ReorderedRuns(0, 10))
}

func (env *ContextTestEnviron) TestParagraphLevel() {
	bc := NewContext()
	bc.ResolveString("123 abc", HintAutoRightToLeft)
	env.Equal(Level(0), bc.BaseLevel(), "first strong is L")
	bc.ResolveString("123 ...", HintAutoRightToLeft)
	env.Equal(Level(1), bc.BaseLevel(), "no strong character, fall back to RTL")
	bc.ResolveString("123 ...", HintAutoLeftToRight)
	env.Equal(Level(0), bc.BaseLevel())
	bc.ResolveString("\u2067abc\u2069 \u05D0", HintAutoLeftToRight)
	env.Equal(Level(1), bc.BaseLevel(), "isolate content should be skipped")
	bc.ResolveString("\u2067abc \u05D0", HintAutoLeftToRight)
	env.Equal(Level(0), bc.BaseLevel(), "unterminated isolate hides all strong characters")
	bc.ResolveString("abc", HintRightToLeft)
	env.Equal(Level(1), bc.BaseLevel(), "explicit direction wins")
}

func (env *ContextTestEnviron) TestRLMPrefix() {
	bc := NewContext()
	bc.ResolveString("\u200F\u200F\u200Fabc", HintAutoLeftToRight)
	env.Equal(Level(1), bc.BaseLevel())
	runs := bc.Runs()
	env.Require().Len(runs, 2)
	env.Equal(Run{Dir: RightToLeft, Level: 1, L: 0, R: 3}, runs[0])
	env.Equal(Run{Dir: LeftToRight, Level: 2, L: 3, R: 6}, runs[1])
}

// --- Resolving levels ------------------------------------------------------

func (env *ContextTestEnviron) TestLeftToRightWithRTLWord() {
	bc := NewContext(Testing(true))
	bc.ResolveString("car means CAR.", HintLeftToRight)
	expected := append(repeat(0, 10), 1, 1, 1, 0)
	env.Equal(expected, bc.Levels())
	_, visual := bc.ReorderLine(0, bc.Len())
	env.Equal([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 12, 11, 10, 13}, visual)
}

func (env *ContextTestEnviron) TestRightToLeftWithLTRWord() {
	bc := NewContext(Testing(true))
	bc.ResolveString("CAR MEANS car.", HintRightToLeft)
	expected := append(repeat(1, 10), 2, 2, 2, 1)
	env.Equal(expected, bc.Levels())
	_, visual := bc.ReorderLine(0, bc.Len())
	env.Equal([]int{13, 10, 11, 12, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, visual)
	runs := bc.ReorderedRuns(0, bc.Len())
	env.Require().Len(runs, 3)
	env.Equal(ReorderedRun{Dir: RightToLeft, Level: 1, L: 13, R: 14, Indices: []int{13}}, runs[0])
	env.Equal(ReorderedRun{Dir: LeftToRight, Level: 2, L: 10, R: 13, Indices: []int{10, 11, 12}}, runs[1])
	env.Equal(Level(1), runs[2].Level)
	env.Equal([]int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, runs[2].Indices)
}

func (env *ContextTestEnviron) TestArabicWithNumbers() {
	bc := NewContext()
	bc.ResolveString("\u0627\u0644 123", HintAutoLeftToRight)
	env.Equal(Level(1), bc.BaseLevel())
	env.Equal(levels(1, 1, 1, 2, 2, 2), bc.Levels())
	_, visual := bc.ReorderLine(0, bc.Len())
	env.Equal([]int{3, 4, 5, 2, 1, 0}, visual)
}

func (env *ContextTestEnviron) TestPairedBrackets() {
	bc := NewContext(Testing(true))
	// N0, example 1 of UAX#9
	bc.ResolveString("AB(CD[&ef]!)gh", HintRightToLeft)
	env.Equal(levels(1, 1, 1, 1, 1, 1, 1, 2, 2, 1, 1, 1, 2, 2), bc.Levels())
	// N0, example 2 of UAX#9
	bc.ResolveString("smith (fabrikam ARABIC) HEBREW", HintRightToLeft)
	expected := append(append(append(repeat(2, 5), 1, 1), repeat(2, 8)...), repeat(1, 15)...)
	env.Equal(expected, bc.Levels())
}

func (env *ContextTestEnviron) TestIsolates() {
	bc := NewContext(Testing(true))
	bc.ResolveString("a\u2067B\u2069c", HintLeftToRight)
	env.Equal(levels(0, 0, 1, 0, 0), bc.Levels())
	bc.ResolveString("\u2068ABC\u2069", HintLeftToRight)
	env.Equal(levels(0, 1, 1, 1, 0), bc.Levels(), "FSI should resolve to RTL")
	_, visual := bc.ReorderLine(0, bc.Len())
	env.Equal([]int{0, 3, 2, 1, 4}, visual)
}

func (env *ContextTestEnviron) TestEmbeddingsRemovedByX9() {
	bc := NewContext()
	bc.ResolveString("a\u202Bb\u202Cc", HintLeftToRight)
	env.Equal(levels(0, -1, 2, -1, 0), bc.Levels())
	runs := bc.Runs()
	env.Require().Len(runs, 3)
	env.Equal([]int{1}, runs[0].Removed)
	env.Equal(0, runs[0].L)
	env.Equal(2, runs[0].R)
	env.Equal([]int{0}, runs[0].Indices())
	env.Equal([]int{3}, runs[1].Removed)
	env.Equal(4, runs[2].L)
	lv, visual := bc.ReorderLine(0, bc.Len())
	env.Equal(NoLevel, lv[1])
	env.Equal([]int{0, 2, 4}, visual)
}

func (env *ContextTestEnviron) TestDeepNesting() {
	var b strings.Builder
	for i := 0; i < 130; i++ {
		b.WriteRune('\u202B') // RLE
	}
	b.WriteRune('a')
	for i := 0; i < 130; i++ {
		b.WriteRune('\u202C') // PDF
	}
	bc := NewContext()
	bc.ResolveString(b.String(), HintLeftToRight)
	env.Equal(261, bc.Len())
	env.Equal(Level(MaxDepth+1), bc.Levels()[130])
	runs := bc.Runs()
	env.Require().Len(runs, 1)
	env.Equal(0, runs[0].L)
	env.Equal(261, runs[0].R)
	env.Len(runs[0].Removed, 260)
	_, visual := bc.ReorderLine(0, bc.Len())
	env.Equal([]int{130}, visual)
}

func (env *ContextTestEnviron) TestOnlyRemovedCharacters() {
	bc := NewContext()
	bc.ResolveString("\u202B\u202C", HintRightToLeft)
	runs := bc.Runs()
	env.Require().Len(runs, 1)
	env.Equal(Run{Dir: RightToLeft, Level: 1, L: 0, R: 2, Removed: []int{0, 1}}, runs[0])
	_, visual := bc.ReorderLine(0, 2)
	env.Empty(visual)
}

func (env *ContextTestEnviron) TestBracketOverflow() {
	var b strings.Builder
	b.WriteString("ABC ")
	for i := 0; i < 70; i++ {
		b.WriteRune('(')
	}
	b.WriteString("x")
	for i := 0; i < 70; i++ {
		b.WriteRune(')')
	}
	bc := NewContext(Testing(true))
	bc.ResolveString(b.String(), HintRightToLeft)
	env.Equal(145, bc.Len(), "should resolve without panicking")
	env.Empty(bc.brackets.pairs, "overflow at 64th bracket stops pairing before any pair is found")
}

func (env *ContextTestEnviron) TestSetCharTypes() {
	bc := NewContext()
	bc.SetCharTypes([]Class{bidi.R, bidi.WS, bidi.EN}, HintAutoLeftToRight)
	env.Equal(levels(1, 1, 2), bc.Levels())
	bc.SetCharTypes(nil, HintAutoLeftToRight)
	env.Equal(0, bc.Len())
}

// --- Line rules ------------------------------------------------------------

func (env *ContextTestEnviron) TestTrailingWhitespace() {
	bc := NewContext(Testing(true))
	bc.ResolveString("ABC DEF", HintLeftToRight)
	env.Equal(Level(1), bc.Levels()[3])
	lv, visual := bc.ReorderLine(0, 4)
	env.Equal(levels(1, 1, 1, 0), lv, "L1 resets whitespace at end of line")
	env.Equal([]int{2, 1, 0, 3}, visual)
	runs := bc.LineRuns(0, 4)
	env.Require().Len(runs, 2)
	env.Equal(Run{Dir: RightToLeft, Level: 1, L: 0, R: 3}, runs[0])
	env.Equal(Run{Dir: LeftToRight, Level: 0, L: 3, R: 4}, runs[1])
	env.Equal(Level(1), bc.Levels()[3], "paragraph levels must not change")
}

func (env *ContextTestEnviron) TestSegmentSeparator() {
	bc := NewContext(Testing(true))
	bc.ResolveString("ABC\tDEF", HintLeftToRight)
	env.Equal(Level(1), bc.Levels()[3])
	lv, visual := bc.ReorderLine(0, bc.Len())
	env.Equal(levels(1, 1, 1, 0, 1, 1, 1), lv)
	env.Equal([]int{2, 1, 0, 3, 6, 5, 4}, visual)
}

func (env *ContextTestEnviron) TestLineClamping() {
	bc := NewContext(Testing(true))
	bc.ResolveString("ABC", HintLeftToRight)
	_, visual := bc.ReorderLine(-5, 50)
	env.Equal([]int{2, 1, 0}, visual)
	_, visual = bc.ReorderLine(2, 1)
	env.Empty(visual)
	runs := bc.ReorderedRuns(1, 3)
	env.Require().Len(runs, 1)
	env.Equal([]int{2, 1}, runs[0].Indices)
	env.Equal(1, runs[0].L)
	env.Equal(3, runs[0].R)
}

func (env *ContextTestEnviron) TestNonSpacingMarks() {
	shalom := []rune{0x05E9, 0x05B8, 0x05C1, 0x05DC, 0x05D5, 0x05B9, 0x05DD}
	bc := NewContext(ReorderNonSpacingMarks(true))
	bc.ResolveParagraph(shalom, HintLeftToRight)
	lv := bc.Levels()
	env.Equal(repeat(1, 7), lv)
	_, visual := bc.ReorderLine(0, bc.Len())
	env.Equal([]int{6, 4, 5, 3, 0, 1, 2}, visual)
	bc.SetReorderNonSpacingMarks(false)
	_, visual = bc.ReorderLine(0, bc.Len())
	env.Equal([]int{6, 5, 4, 3, 2, 1, 0}, visual)
	env.Equal(lv, bc.Levels(), "L3 must not alter resolved levels")
}

func (env *ContextTestEnviron) TestReuseContext() {
	bc := NewContext(Testing(true))
	bc.ResolveString("a much longer paragraph with SOME RTL TEXT in it", HintAutoLeftToRight)
	long := bc.Levels()
	bc.ResolveString("AB", HintAutoLeftToRight)
	env.Equal(levels(1, 1), bc.Levels())
	bc.ResolveString("a much longer paragraph with SOME RTL TEXT in it", HintAutoLeftToRight)
	env.Equal(long, bc.Levels())
}

func (env *ContextTestEnviron) TestTestingModeASCIIOnly() {
	bc := NewContext(Testing(true))
	bc.ResolveString("A\u00C9b", HintLeftToRight)
	env.Equal([]Class{bidi.R, bidi.L, bidi.L}, bc.Classes())
	env.Equal(levels(1, 0, 0), bc.Levels())
	bc = NewContext()
	bc.ResolveString("A\u05D0", HintLeftToRight)
	env.Equal([]Class{bidi.L, bidi.R}, bc.Classes())
}

func (env *ContextTestEnviron) TestNoReversalWithoutOddLevels() {
	var b strings.Builder
	b.WriteRune('a')
	for i := 0; i < 62; i++ {
		b.WriteRune('\u202A') // LRE
	}
	b.WriteString("\u0661\u0662")
	bc := NewContext()
	bc.ResolveString(b.String(), HintLeftToRight)
	lv := bc.Levels()
	env.Equal(Level(0), lv[0])
	env.Equal(Level(MaxDepth+1), lv[63])
	env.Equal(Level(MaxDepth+1), lv[64])
	_, visual := bc.ReorderLine(0, bc.Len())
	env.Equal([]int{0, 63, 64}, visual, "even levels only: nothing to reverse")
	bc.ResolveString("a\u0661\u0662", HintLeftToRight)
	env.Equal(levels(0, 2, 2), bc.Levels())
	_, visual = bc.ReorderLine(0, bc.Len())
	env.Equal([]int{0, 1, 2}, visual)
}

func (env *ContextTestEnviron) TestIsolateOverflow() {
	var b strings.Builder
	for i := 0; i < 130; i++ {
		b.WriteRune('\u2067') // RLI
	}
	b.WriteRune('a')
	for i := 0; i < 130; i++ {
		b.WriteRune('\u2069') // PDI
	}
	bc := NewContext()
	bc.ResolveString(b.String(), HintLeftToRight)
	lv := bc.Levels()
	env.Require().Len(lv, 261)
	env.Equal(Level(MaxDepth+1), lv[130], "only 63 isolates are valid, the rest overflow")
	env.Equal(Level(0), lv[0])
	env.Equal(Level(0), lv[260], "trailing PDIs reset to paragraph level")
	for i, l := range lv {
		env.True(l >= 0 && l <= MaxDepth+1, "level %d at %d", l, i)
	}
	// an overflowing isolate blocks embeddings until it is closed
	var c strings.Builder
	for i := 0; i < 63; i++ {
		c.WriteRune('\u2067')
	}
	c.WriteString("\u2066\u202Bx\u202C\u2069")
	bc.ResolveString(c.String(), HintLeftToRight)
	env.Equal(Level(MaxDepth+1), bc.Levels()[65], "RLE inside overflow isolate is ignored")
	_, visual := bc.ReorderLine(0, bc.Len())
	env.Len(visual, 66)
}

func (env *ContextTestEnviron) TestSeparatorsAndTerminators() {
	tests := []struct {
		text   string
		levels []Level
	}{
		{"1,2", levels(2, 2, 2)},           // W4: CS between EN
		{"1+2", levels(2, 2, 2)},           // W4: ES between EN
		{"1,,2", levels(2, 1, 1, 2)},       // W4 needs a single separator
		{"\u0661,\u0662", levels(2, 2, 2)}, // W4: CS between AN
		{"\u0661+\u0662", levels(2, 1, 2)}, // W4: ES does not join AN
		{"$1", levels(2, 2)},               // W5: ET before EN
		{"1%", levels(2, 2)},               // W5: ET after EN
		{"$$1%%", levels(2, 2, 2, 2, 2)},   // W5: sequences of ET
		{"$", levels(1)},                   // W6: ET alone becomes ON
	}
	bc := NewContext()
	for _, test := range tests {
		bc.ResolveString(test.text, HintRightToLeft)
		env.Equal(test.levels, bc.Levels(), "%+q", test.text)
	}
}

func (env *ContextTestEnviron) TestBracketPairResolution() {
	tests := []struct {
		text   string
		levels []Level
	}{
		// N0 c1: opposite direction inside, preceded by the opposite direction
		{"AB(CD)ef", levels(1, 1, 1, 1, 1, 1, 0, 0)},
		// N0 c2: opposite direction inside, preceded by the embedding direction
		{"ab(CD)EF", levels(0, 0, 0, 1, 1, 0, 1, 1)},
		// N0 b: embedding direction inside
		{"AB(cD)EF", levels(1, 1, 0, 0, 1, 0, 1, 1)},
		// combining mark after a bracket follows the bracket
		{"AB(CD)\u0301ef", levels(1, 1, 1, 1, 1, 1, 1, 0, 0)},
		{"ab(CD)\u0301EF", levels(0, 0, 0, 1, 1, 0, 0, 1, 1)},
	}
	bc := NewContext(Testing(true))
	for _, test := range tests {
		bc.ResolveString(test.text, HintLeftToRight)
		env.Equal(test.levels, bc.Levels(), "%+q", test.text)
	}
}

func (env *ContextTestEnviron) TestIsolateInsideOverride() {
	bc := NewContext()
	bc.ResolveString("\u202Ea\u2066b\u2069c\u202C", HintLeftToRight) // RLO a LRI b PDI c PDF
	lv := bc.Levels()
	env.Require().Len(lv, 7)
	env.Equal(levels(1, 1, 2, 1, 1), lv[1:6], "override applies to the isolate initiator, not inside the isolate")
	_, visual := bc.ReorderLine(0, bc.Len())
	env.Equal([]int{5, 4, 3, 2, 1}, visual)
}
