package bidi

import (
	"golang.org/x/text/unicode/bidi"
)

// --- Paired brackets -------------------------------------------------------

// resolvePairedBrackets applies rule N0 to a sequence. It needs the
// characters of the paragraph to identify brackets and therefore does nothing
// if the context has been set up from classes only.
func (bc *Context) resolvePairedBrackets(seq *isolatingRunSequence) {
	if len(bc.paragraph) == 0 {
		return
	}
	bs := &bc.brackets
	bs.clear()
	for k, i := range seq.indices {
		if bc.types[i] != bidi.ON {
			continue
		}
		partner, typ, ok := LookupBracket(bc.paragraph[i])
		if !ok {
			continue
		}
		if typ == BracketOpen {
			if !bs.push(partner, k) {
				tracer().Debugf("bracket stack overflow at position %d, stop BD16 for sequence", i)
				break
			}
		} else {
			bs.seekMatchingOpen(bc.paragraph[i], k)
		}
	}
	if len(bs.pairs) == 0 {
		return
	}
	bs.sortPairs()
	for _, pair := range bs.pairs {
		bc.resolveOnePair(pair, seq)
	}
}

// resolveOnePair resolves the classes of a pair of brackets.
//
// If a strong type matching the embedding direction is found between the
// brackets, the brackets take the embedding direction (N0 b). Otherwise, if a
// strong type of the opposite direction is found, the preceding context
// decides: if it has the opposite direction as well, the brackets get the
// opposite direction (N0 c1), else the embedding direction (N0 c2).
// Without any strong type between them, brackets are left alone (N0 d).
// EN and AN count as R.
func (bc *Context) resolveOnePair(pair Pair, seq *isolatingRunSequence) {
	embedding := seq.level.Direction()
	opposite := embedding.Opposite()
	oppositeFound := false
	for k := pair.Open + 1; k < pair.Close; k++ {
		c := bc.types[seq.indices[k]]
		var dir Direction
		switch {
		case c == bidi.L:
			dir = LeftToRight
		case isRTLContext(c):
			dir = RightToLeft
		default:
			continue
		}
		if dir == embedding {
			bc.setBracketPairClass(pair, seq, embedding)
			return
		}
		oppositeFound = true
	}
	if !oppositeFound {
		return
	}
	var priorOpposite bool
	if opposite == LeftToRight {
		priorOpposite = bc.isPriorContextLeft(seq, pair.Open)
	} else {
		priorOpposite = bc.isPriorContextRight(seq, pair.Open)
	}
	if priorOpposite {
		bc.setBracketPairClass(pair, seq, opposite)
	} else {
		bc.setBracketPairClass(pair, seq, embedding)
	}
}

// setBracketPairClass sets both brackets of a pair to a strong class.
// Combining marks following either bracket (by original class, skipping
// characters removed by X9) take the new class as well, echoing W1.
func (bc *Context) setBracketPairClass(pair Pair, seq *isolatingRunSequence, dir Direction) {
	c := dir.Class()
	bc.types[seq.indices[pair.Open]] = c
	bc.types[seq.indices[pair.Close]] = c
	bc.glueMarks(seq, pair.Open+1, pair.Close, c)
	bc.glueMarks(seq, pair.Close+1, len(seq.indices), c)
}

func (bc *Context) glueMarks(seq *isolatingRunSequence, from, to int, c Class) {
	for k := from; k < to; k++ {
		i := seq.indices[k]
		if bc.origTypes[i] == bidi.NSM {
			bc.types[i] = c
		} else if !bc.levels[i].RemovedByX9() {
			break
		}
	}
}

// --- Neutrals --------------------------------------------------------------

// resolveNeutralsByContext applies rule N1: a sequence of neutrals takes the
// direction of the surrounding strong text if both sides agree.
//
//	L  N  L   →  L  L  L
//	R  N  R   →  R  R  R     (EN and AN count as R)
func (bc *Context) resolveNeutralsByContext(seq *isolatingRunSequence) {
	for k := len(seq.indices) - 1; k >= 0; k-- {
		i := seq.indices[k]
		if !isNeutral(bc.types[i]) {
			continue
		}
		if bc.isPriorContextLeft(seq, k) && bc.isFollowingContextLeft(seq, k) {
			bc.types[i] = bidi.L
		} else if bc.isPriorContextRight(seq, k) && bc.isFollowingContextRight(seq, k) {
			bc.types[i] = bidi.R
		}
	}
}

// resolveNeutralsByLevel applies rule N2: remaining neutrals take the
// embedding direction.
func (bc *Context) resolveNeutralsByLevel(seq *isolatingRunSequence) {
	for _, i := range seq.indices {
		if isNeutral(bc.types[i]) {
			bc.types[i] = bc.levels[i].Class()
		}
	}
}

// The context scans skip removed characters and neutrals, and look at the first
// remaining class. At the edges of the sequence, sos and eos are used.

func (bc *Context) isPriorContextLeft(seq *isolatingRunSequence, k int) bool {
	return bc.priorContext(seq, k, func(c Class) bool { return c == bidi.L }, bidi.L)
}

func (bc *Context) isPriorContextRight(seq *isolatingRunSequence, k int) bool {
	return bc.priorContext(seq, k, isRTLContext, bidi.R)
}

func (bc *Context) isFollowingContextLeft(seq *isolatingRunSequence, k int) bool {
	return bc.followingContext(seq, k, func(c Class) bool { return c == bidi.L }, bidi.L)
}

func (bc *Context) isFollowingContextRight(seq *isolatingRunSequence, k int) bool {
	return bc.followingContext(seq, k, isRTLContext, bidi.R)
}

func (bc *Context) priorContext(seq *isolatingRunSequence, k int, match func(Class) bool, edge Class) bool {
	for j := k - 1; j >= 0; j-- {
		i := seq.indices[j]
		if match(bc.types[i]) {
			return true
		}
		if bc.levels[i].RemovedByX9() || isNeutral(bc.types[i]) {
			continue
		}
		return false
	}
	return seq.sos == edge
}

func (bc *Context) followingContext(seq *isolatingRunSequence, k int, match func(Class) bool, edge Class) bool {
	for j := k + 1; j < len(seq.indices); j++ {
		i := seq.indices[j]
		if match(bc.types[i]) {
			return true
		}
		if bc.levels[i].RemovedByX9() || isNeutral(bc.types[i]) {
			continue
		}
		return false
	}
	return seq.eos == edge
}

// --- Implicit levels -------------------------------------------------------

// resolveImplicitLevels applies rules I1 and I2.
//
//	level   L    R    AN   EN
//	even    –    +1   +2   +2
//	odd     +1   –    +1   +1
func (bc *Context) resolveImplicitLevels() {
	for i, level := range bc.levels {
		if level.RemovedByX9() {
			continue
		}
		c := bc.types[i]
		if level.Direction() == LeftToRight {
			switch c {
			case bidi.R:
				bc.levels[i] = level + 1
			case bidi.AN, bidi.EN:
				bc.levels[i] = level + 2
			}
		} else {
			switch c {
			case bidi.L, bidi.AN, bidi.EN:
				bc.levels[i] = level + 1
			}
		}
	}
}
