package bidi

import (
	"golang.org/x/text/unicode/bidi"
)

// Context resolves paragraphs of text according to UAX#9. It holds the
// buffers for one paragraph at a time and is meant to be re-used for
// subsequent paragraphs. Every call to ResolveParagraph or SetCharTypes
// overwrites the results of the previous call.
//
// A Context must not be used concurrently. For concurrent processing, use one
// context per goroutine, e.g. by borrowing contexts from a ContextPool.
type Context struct {
	paragraph []rune                 // may be empty if classes have been set directly
	origTypes []Class                // classes as looked up
	types     []Class                // resolved classes
	levels    []Level                // resolved levels, NoLevel for characters removed by X9
	baseLevel Level                  // paragraph embedding level
	runs      []levelRun             // level runs of the current paragraph
	sequences []isolatingRunSequence // isolating run sequences of the current paragraph
	stack     levelStack             // directional status stack for X1–X8
	brackets  bracketStack           // bracket stack for N0
	mode      uint                   // options
}

// Option configures a Context.
type Option func(bc *Context)

const (
	optionReorderNSM uint = 1 << 1 // apply rule L3
	optionTesting    uint = 1 << 2 // test mode: recognize uppercase as class R
)

// ReorderNonSpacingMarks enables or disables rule L3, re-ordering combining
// marks to follow their base character in visual order.
func ReorderNonSpacingMarks(b bool) Option {
	return func(bc *Context) {
		bc.setMode(optionReorderNSM, b)
	}
}

// Testing will set up the context to recognize uppercase ASCII letters as
// having class R. This is a common pattern in bidi algorithm development.
// Applies to ResolveParagraph and ResolveString only.
func Testing(b bool) Option {
	return func(bc *Context) {
		bc.setMode(optionTesting, b)
	}
}

// NewContext creates a context for resolving paragraphs.
func NewContext(opts ...Option) *Context {
	bc := &Context{}
	bc.configure(opts...)
	return bc
}

func (bc *Context) configure(opts ...Option) {
	for _, opt := range opts {
		opt(bc)
	}
}

func (bc *Context) setMode(m uint, on bool) {
	if on {
		bc.mode |= m
	} else {
		bc.mode &^= m
	}
}

func (bc *Context) hasMode(m uint) bool {
	return bc.mode&m > 0
}

// SetReorderNonSpacingMarks enables or disables rule L3 for subsequent
// calls to ReorderLine and ReorderedRuns. Resolved levels are not affected.
func (bc *Context) SetReorderNonSpacingMarks(b bool) {
	bc.setMode(optionReorderNSM, b)
}

// BaseLevel returns the paragraph embedding level of the paragraph most
// recently resolved.
func (bc *Context) BaseLevel() Level {
	return bc.baseLevel
}

// Levels returns a copy of the resolved embedding levels of the paragraph,
// in logical order. Characters removed by rule X9 have level NoLevel.
// Line-related rules L1–L3 are not reflected, see ReorderLine.
func (bc *Context) Levels() []Level {
	levels := make([]Level, len(bc.levels))
	copy(levels, bc.levels)
	return levels
}

// Classes returns a copy of the bidi classes of the paragraph most recently
// resolved, as looked up before any rule has been applied. In testing mode,
// uppercase ASCII letters have class R.
func (bc *Context) Classes() []Class {
	classes := make([]Class, len(bc.origTypes))
	copy(classes, bc.origTypes)
	return classes
}

// Len returns the length of the paragraph most recently resolved.
func (bc *Context) Len() int {
	return len(bc.levels)
}

// ResolveParagraph resolves the embedding levels for a paragraph of text.
// The paragraph should not contain paragraph separators other than at its
// end (rule P1 is the client's responsibility).
func (bc *Context) ResolveParagraph(paragraph []rune, hint ParagraphDirectionHint) {
	bc.paragraph = append(bc.paragraph[:0], paragraph...)
	bc.origTypes = bc.origTypes[:0]
	for _, r := range paragraph {
		if bc.hasMode(optionTesting) && 'A' <= r && r <= 'Z' {
			bc.origTypes = append(bc.origTypes, bidi.R) // during testing, UPPERCASE is R2L
			continue
		}
		bc.origTypes = append(bc.origTypes, Classify(r))
	}
	bc.resolve(hint)
}

// ResolveString is a convenience wrapper for ResolveParagraph. Positions in
// results refer to runes of s, not to bytes.
func (bc *Context) ResolveString(s string, hint ParagraphDirectionHint) {
	bc.ResolveParagraph([]rune(s), hint)
}

// SetCharTypes resolves the embedding levels for a paragraph given as a
// sequence of bidi classes. As there are no characters to check for brackets,
// rule N0 is skipped.
func (bc *Context) SetCharTypes(classes []Class, hint ParagraphDirectionHint) {
	bc.paragraph = bc.paragraph[:0]
	bc.origTypes = append(bc.origTypes[:0], classes...)
	bc.resolve(hint)
}

func (bc *Context) resolve(hint ParagraphDirectionHint) {
	bc.types = append(bc.types[:0], bc.origTypes...)
	switch hint {
	case HintLeftToRight:
		bc.baseLevel = 0
	case HintRightToLeft:
		bc.baseLevel = 1
	case HintAutoRightToLeft:
		bc.baseLevel = paragraphLevel(bc.types, false, RightToLeft)
	default:
		bc.baseLevel = paragraphLevel(bc.types, false, LeftToRight)
	}
	n := len(bc.types)
	if cap(bc.levels) < n {
		bc.levels = make([]Level, n)
	} else {
		bc.levels = bc.levels[:n]
		clear(bc.levels)
	}
	tracer().Debugf("resolving paragraph of length %d, base level = %d", n, bc.baseLevel)
	bc.explicitEmbeddingLevels() // X1–X8
	bc.deleteFormatCharacters()  // X9
	bc.identifyRuns()            // X10
	bc.identifyIsolatingRunSequences()
	tracer().Debugf("%d level runs in %d isolating run sequences", len(bc.runs), len(bc.sequences))
	for i := range bc.sequences {
		seq := &bc.sequences[i]
		bc.resolveWeakTypes(seq)         // W1–W7
		bc.resolvePairedBrackets(seq)    // N0
		bc.resolveNeutralsByContext(seq) // N1
		bc.resolveNeutralsByLevel(seq)   // N2
	}
	bc.resolveImplicitLevels() // I1, I2
}
