package bidi

import (
	"golang.org/x/text/unicode/bidi"
)

// --- Weak types ------------------------------------------------------------

// Rules W1 to W7 operate on the text chain of an isolating run sequence.
// Characters removed by X9 are skipped whenever we look for context.

// resolveWeakTypes applies W1–W7 to a sequence.
func (bc *Context) resolveWeakTypes(seq *isolatingRunSequence) {
	bc.resolveCombiningMarks(seq)  // W1
	bc.resolveEuropeanNumbers(seq) // W2
	bc.resolveArabicLetters(seq)   // W3
	bc.resolveSeparators(seq)      // W4
	bc.resolveTerminators(seq)     // W5
	bc.resolveRemainingWeak(seq)   // W6
	bc.resolveENToL(seq)           // W7
}

// W1: NSM gets the class of the preceding character, or sos at the start of
// the sequence. After an isolate initiator or PDI, NSM changes to ON.
func (bc *Context) resolveCombiningMarks(seq *isolatingRunSequence) {
	prior := seq.sos
	for _, i := range seq.indices {
		if bc.types[i] == bidi.NSM {
			if isIsolateControl(prior) {
				bc.types[i] = bidi.ON
			} else {
				bc.types[i] = prior
			}
		} else if !bc.levels[i].RemovedByX9() {
			prior = bc.types[i]
		}
	}
}

// W2: EN preceded (through any non-strong characters) by AL becomes AN.
func (bc *Context) resolveEuropeanNumbers(seq *isolatingRunSequence) {
	for k, i := range seq.indices {
		if bc.types[i] != bidi.EN {
			continue
		}
		if bc.precedingStrong(seq, k, true) == bidi.AL {
			bc.types[i] = bidi.AN
		}
	}
}

// W3: AL becomes R.
func (bc *Context) resolveArabicLetters(seq *isolatingRunSequence) {
	for _, i := range seq.indices {
		if bc.types[i] == bidi.AL {
			bc.types[i] = bidi.R
		}
	}
}

// W4: a single ES between two ENs becomes EN, a single CS between two numbers
// of the same type becomes that type.
func (bc *Context) resolveSeparators(seq *isolatingRunSequence) {
	for k, i := range seq.indices {
		switch bc.types[i] {
		case bidi.ES:
			if bc.isInContext(seq, k, bidi.EN) {
				bc.types[i] = bidi.EN
			}
		case bidi.CS:
			if bc.isInContext(seq, k, bidi.EN) {
				bc.types[i] = bidi.EN
			} else if bc.isInContext(seq, k, bidi.AN) {
				bc.types[i] = bidi.AN
			}
		}
	}
}

// W5: a sequence of ETs adjacent to an EN becomes EN.
func (bc *Context) resolveTerminators(seq *isolatingRunSequence) {
	for k, i := range seq.indices {
		if bc.types[i] != bidi.EN {
			continue
		}
		for j := k - 1; j >= 0; j-- {
			p := seq.indices[j]
			if bc.types[p] == bidi.ET {
				bc.types[p] = bidi.EN
			} else if !bc.levels[p].RemovedByX9() {
				break
			}
		}
		for j := k + 1; j < len(seq.indices); j++ {
			n := seq.indices[j]
			if bc.types[n] == bidi.ET {
				bc.types[n] = bidi.EN
			} else if !bc.levels[n].RemovedByX9() {
				break
			}
		}
	}
}

// W6: remaining separators and terminators become ON.
func (bc *Context) resolveRemainingWeak(seq *isolatingRunSequence) {
	for _, i := range seq.indices {
		switch bc.types[i] {
		case bidi.ES, bidi.CS, bidi.ET:
			bc.types[i] = bidi.ON
		}
	}
}

// W7: EN preceded (through any non-strong characters) by L becomes L.
func (bc *Context) resolveENToL(seq *isolatingRunSequence) {
	for k := len(seq.indices) - 1; k >= 0; k-- {
		i := seq.indices[k]
		if bc.types[i] != bidi.EN {
			continue
		}
		if bc.precedingStrong(seq, k, false) == bidi.L {
			bc.types[i] = bidi.L
		}
	}
}

// precedingStrong scans backwards from text chain position k for the first
// strong class. AL is considered only if withAL is set. If there is none,
// sos is returned.
func (bc *Context) precedingStrong(seq *isolatingRunSequence, k int, withAL bool) Class {
	for j := k - 1; j >= 0; j-- {
		switch c := bc.types[seq.indices[j]]; c {
		case bidi.L, bidi.R:
			return c
		case bidi.AL:
			if withAL {
				return c
			}
		}
	}
	return seq.sos
}

// isInContext is true if the closest non-removed neighbours of text chain
// position k on either side are of class c.
func (bc *Context) isInContext(seq *isolatingRunSequence, k int, c Class) bool {
	return bc.priorIs(seq, k, c) && bc.followingIs(seq, k, c)
}

func (bc *Context) priorIs(seq *isolatingRunSequence, k int, c Class) bool {
	for j := k - 1; j >= 0; j-- {
		i := seq.indices[j]
		if bc.types[i] == c {
			return true
		}
		if !bc.levels[i].RemovedByX9() {
			break
		}
	}
	return false
}

func (bc *Context) followingIs(seq *isolatingRunSequence, k int, c Class) bool {
	for j := k + 1; j < len(seq.indices); j++ {
		i := seq.indices[j]
		if bc.types[i] == c {
			return true
		}
		if !bc.levels[i].RemovedByX9() {
			break
		}
	}
	return false
}
