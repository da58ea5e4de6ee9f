package bidi

import (
	"strconv"

	"golang.org/x/text/unicode/bidi"
)

// Class is the bidi class of a character, as defined by UAX#9.
// We re-use the definitions of package golang.org/x/text/unicode/bidi.
type Class = bidi.Class

// Classify returns the bidi class of a rune. The class is looked up in the
// Unicode tables of package golang.org/x/text/unicode/bidi, which already contain
// the default values for unassigned code points. Invalid runes (surrogates or
// values beyond the Unicode range) get class ON, as does U+FFFD.
func Classify(r rune) Class {
	props, _ := bidi.LookupRune(r)
	return props.Class()
}

// ClassifyRunes appends the classes of a paragraph of runes to dst and returns
// the extended slice.
func ClassifyRunes(dst []Class, paragraph []rune) []Class {
	for _, r := range paragraph {
		dst = append(dst, Classify(r))
	}
	return dst
}

// Class names, in the order of the class constants of x/text. Value 15 is
// unused by x/text and has an empty name.
const claszname = "LRENESETANCSBSWSONBNNSMALControlLRORLOLRERLEPDFLRIRLIFSIPDI"

var claszindex = [...]uint8{0, 1, 2, 4, 6, 8, 10, 12, 13, 14, 16, 18, 20, 23, 25, 32, 32, 35, 38, 41, 44, 47, 50, 53, 56, 59}

// ClassString returns the short UAX#9 name of a bidi class, e.g. "AL" or "NSM".
func ClassString(c Class) string {
	if uint(c) >= uint(len(claszindex)-1) || claszindex[c] == claszindex[c+1] {
		return "bidi_class(" + strconv.FormatUint(uint64(c), 10) + ")"
	}
	return claszname[claszindex[c]:claszindex[c+1]]
}

// the 23 classes of UAX#9
var uaxClasses = [...]Class{
	bidi.L, bidi.R, bidi.EN, bidi.ES, bidi.ET, bidi.AN, bidi.CS, bidi.B, bidi.S,
	bidi.WS, bidi.ON, bidi.BN, bidi.NSM, bidi.AL, bidi.LRO, bidi.RLO, bidi.LRE,
	bidi.RLE, bidi.PDF, bidi.LRI, bidi.RLI, bidi.FSI, bidi.PDI,
}

var classByName = map[string]Class{}

func init() {
	for _, c := range uaxClasses {
		classByName[ClassString(c)] = c
	}
}

// ClassFromString returns the bidi class for a short UAX#9 class name, as used
// in the Unicode Character Database, e.g. "RLI".
func ClassFromString(name string) (Class, bool) {
	c, ok := classByName[name]
	return c, ok
}

// --- Class predicates ------------------------------------------------------

func isIsolateInitiator(c Class) bool {
	return c == bidi.LRI || c == bidi.RLI || c == bidi.FSI
}

func isIsolateControl(c Class) bool {
	return isIsolateInitiator(c) || c == bidi.PDI
}

// Neutrals and isolate formatting characters (NI in UAX#9 terminology).
func isNeutral(c Class) bool {
	switch c {
	case bidi.ON, bidi.WS, bidi.S, bidi.B:
		return true
	}
	return isIsolateControl(c)
}

// Classes removed by rule X9.
func isRemovedByX9(c Class) bool {
	switch c {
	case bidi.LRE, bidi.RLE, bidi.LRO, bidi.RLO, bidi.PDF, bidi.BN:
		return true
	}
	return false
}

// R, EN and AN count as strong right-to-left for rules N0 and N1.
func isRTLContext(c Class) bool {
	return c == bidi.R || c == bidi.EN || c == bidi.AN
}
