package bidi

import (
	"fmt"
	"sort"
)

// BD16MaxNesting is the maximum stack depth for rule BD16 as defined in UAX#9.
const BD16MaxNesting = 63

// BracketType tells if a paired bracket is an opening or a closing bracket.
type BracketType int8

// Bracket types of Unicode property Bidi_Paired_Bracket_Type.
const (
	BracketOpen BracketType = iota
	BracketClose
)

func (bt BracketType) String() string {
	if bt == BracketOpen {
		return "Open"
	}
	return "Close"
}

type bracketEntry struct {
	char    rune
	partner rune
	typ     BracketType
}

// LookupBracket checks if r is a paired bracket. If it is, LookupBracket returns
// the bracket's counterpart and its type.
//
//	LookupBracket('[')  =>  ']', BracketOpen, true
//	LookupBracket(']')  =>  '[', BracketClose, true
func LookupBracket(r rune) (rune, BracketType, bool) {
	i := sort.Search(len(bracketTable), func(i int) bool {
		return bracketTable[i].char >= r
	})
	if i < len(bracketTable) && bracketTable[i].char == r {
		return bracketTable[i].partner, bracketTable[i].typ, true
	}
	return 0, BracketOpen, false
}

// --- Brackets and bracket stack --------------------------------------------

// Brackets require a disproportionate amount of work in UAX#9. BD16 reads:
//
// * Create a fixed-size stack for exactly 63 elements each consisting of a bracket
//   character and a text position. Initialize it to empty.
// * Inspect each character in the isolating run sequence in logical order.
//   - If an opening paired bracket is found and there is room in the stack, push its
//     Bidi_Paired_Bracket property value and its text position onto the stack.
//   - If an opening paired bracket is found and there is no room in the stack, stop
//     processing BD16 for the remainder of the isolating run sequence.
//   - If a closing paired bracket is found, compare it (or its canonical equivalent)
//     to the stack elements from top to bottom. On a match, record the pair and
//     pop the stack through the matching element inclusively. Otherwise continue
//     without popping.
// * Sort the list of pairs in ascending order of the opening position.
//
// Examples of bracket pairs:
//
//	Text                Pairings
//	1 2 3 4 5 6 7 8
//	a ) b ( c           None
//	a ( b ] c           None
//	a ( b ) c           2-4
//	a ( b [ c ) d ]     2-6
//	a ( b ] c ) d       2-6
//	a ( b ) c ) d       2-4
//	a ( b ( c ) d       4-6
//	a ( b ( c ) d )     2-8, 4-6
//	a ( b { c } d )     2-8, 4-6

// Pair is a pair of matching brackets. Positions are indices into the text
// chain of an isolating run sequence.
type Pair struct {
	Open, Close int
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p.Open, p.Close)
}

type bracketPos struct {
	closing rune // closing bracket expected to match
	pos     int
}

// bracketStack implements BD16 for one isolating run sequence at a time.
type bracketStack struct {
	stack [BD16MaxNesting]bracketPos
	depth int
	pairs []Pair
}

func (bs *bracketStack) clear() {
	bs.depth = 0
	bs.pairs = bs.pairs[:0]
}

// push records an opening bracket by its expected closing counterpart.
// It returns false if the stack is full.
func (bs *bracketStack) push(closing rune, pos int) bool {
	if bs.depth >= BD16MaxNesting {
		return false
	}
	bs.stack[bs.depth] = bracketPos{closing: closing, pos: pos}
	bs.depth++
	return true
}

// seekMatchingOpen looks for an opening bracket for closing, starting at
// the top of the stack. If found, a pair is recorded and the stack is popped
// through the matching entry.
func (bs *bracketStack) seekMatchingOpen(closing rune, pos int) bool {
	for d := bs.depth - 1; d >= 0; d-- {
		if bracketsMatch(bs.stack[d].closing, closing) {
			bs.pairs = append(bs.pairs, Pair{Open: bs.stack[d].pos, Close: pos})
			bs.depth = d
			return true
		}
	}
	return false
}

// sortPairs sorts the recorded pairs by position of the opening bracket.
func (bs *bracketStack) sortPairs() {
	sort.Slice(bs.pairs, func(i, j int) bool {
		return bs.pairs[i].Open < bs.pairs[j].Open
	})
}

// U+2329/U+232A are canonically equivalent to U+3008/U+3009.
func bracketsMatch(expected, closing rune) bool {
	if expected == closing {
		return true
	}
	switch {
	case expected == 0x232A && closing == 0x3009, expected == 0x3009 && closing == 0x232A:
		return true
	}
	return false
}
