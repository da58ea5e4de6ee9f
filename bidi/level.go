package bidi

import (
	"strconv"

	"golang.org/x/text/unicode/bidi"
)

// Direction is the direction of a run of text, either left-to-right or
// right-to-left.
type Direction int8

// Directions for runs of text.
const (
	LeftToRight Direction = iota
	RightToLeft
)

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	if d == LeftToRight {
		return RightToLeft
	}
	return LeftToRight
}

// Class returns the strong bidi class for a direction, i.e. L or R.
func (d Direction) Class() Class {
	if d == LeftToRight {
		return bidi.L
	}
	return bidi.R
}

func (d Direction) String() string {
	if d == LeftToRight {
		return "LeftToRight"
	}
	return "RightToLeft"
}

// Level is an embedding level as defined by UAX#9. Even levels are
// left-to-right, odd levels are right-to-left.
type Level int8

// MaxDepth is the maximum explicit embedding level (BD2).
const MaxDepth = 125

// NoLevel marks characters which have been removed by rule X9.
// It compares lower than any valid level.
const NoLevel Level = -1

// RemovedByX9 is true for characters which have been removed from further
// processing by rule X9 (explicit formatting characters and boundary neutrals).
func (l Level) RemovedByX9() bool {
	return l == NoLevel
}

// Direction returns the direction implied by the level's parity.
func (l Level) Direction() Direction {
	if l%2 == 0 {
		return LeftToRight
	}
	return RightToLeft
}

// Class returns the strong bidi class implied by the level's parity
// (embedding direction).
func (l Level) Class() Class {
	return l.Direction().Class()
}

// LeastGreaterOdd returns the least odd level greater than l.
// If this would exceed MaxDepth, false is returned.
func (l Level) LeastGreaterOdd() (Level, bool) {
	next := l + 1
	if l%2 != 0 {
		next = l + 2
	}
	if next > MaxDepth {
		return l, false
	}
	return next, true
}

// LeastGreaterEven returns the least even level greater than l.
// If this would exceed MaxDepth, false is returned.
func (l Level) LeastGreaterEven() (Level, bool) {
	next := l + 2
	if l%2 != 0 {
		next = l + 1
	}
	if next > MaxDepth {
		return l, false
	}
	return next, true
}

func (l Level) String() string {
	if l == NoLevel {
		return "x"
	}
	return strconv.Itoa(int(l))
}

// level of the paragraph for a direction
func levelFor(d Direction) Level {
	if d == RightToLeft {
		return 1
	}
	return 0
}
