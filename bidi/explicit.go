package bidi

import (
	"golang.org/x/text/unicode/bidi"
)

// --- Paragraph level -------------------------------------------------------

// paragraphLevel implements rules P2 and P3: find the first strong character,
// skipping characters between an isolate initiator and its matching PDI.
// If respectPDI is set, an unmatched PDI ends the scan. This is used for
// FSI, where we look for the first strong character up to the matching PDI.
func paragraphLevel(types []Class, respectPDI bool, fallback Direction) Level {
	isolates := 0
	for _, c := range types {
		switch c {
		case bidi.LRI, bidi.RLI, bidi.FSI:
			isolates++
		case bidi.PDI:
			if isolates > 0 {
				isolates--
			} else if respectPDI {
				return levelFor(fallback)
			}
		case bidi.L:
			if isolates == 0 {
				return 0
			}
		case bidi.R, bidi.AL:
			if isolates == 0 {
				return 1
			}
		}
	}
	return levelFor(fallback)
}

// --- Explicit levels and directions ----------------------------------------

// explicitEmbeddingLevels applies rules X1 to X8.
//
// Explicit embeddings and overrides (X2–X5) do not receive a level here, as
// they will be removed by X9 anyway. Isolate initiators get the level of the
// surrounding text, as does the matching PDI.
//
// Overflow handling follows X1: embeddings beyond MaxDepth are counted, but
// never pushed, and subsequent PDFs and PDIs balance these counts first.
func (bc *Context) explicitEmbeddingLevels() {
	stack := &bc.stack
	stack.reset(bc.baseLevel)
	overflowIsolate, overflowEmbedding, validIsolate := 0, 0, 0
	for i := range bc.types {
		c := bc.types[i]
		switch c {
		case bidi.RLE, bidi.LRE, bidi.RLO, bidi.LRO: // X2–X5
			var next Level
			var ok bool
			if c == bidi.RLE || c == bidi.RLO {
				next, ok = stack.embeddingLevel().LeastGreaterOdd()
			} else {
				next, ok = stack.embeddingLevel().LeastGreaterEven()
			}
			if ok && overflowIsolate == 0 && overflowEmbedding == 0 {
				ovr := overrideNeutral
				if c == bidi.RLO {
					ovr = overrideRTL
				} else if c == bidi.LRO {
					ovr = overrideLTR
				}
				stack.push(next, ovr, false)
				continue
			}
			if overflowIsolate == 0 {
				overflowEmbedding++
			}
		case bidi.RLI, bidi.LRI, bidi.FSI: // X5a–X5c
			rtl := c == bidi.RLI
			if c == bidi.FSI {
				rtl = paragraphLevel(bc.types[i+1:], true, LeftToRight) == 1
			}
			bc.levels[i] = stack.embeddingLevel()
			stack.applyOverride(&bc.types[i])
			var next Level
			var ok bool
			if rtl {
				next, ok = stack.embeddingLevel().LeastGreaterOdd()
			} else {
				next, ok = stack.embeddingLevel().LeastGreaterEven()
			}
			if ok && overflowIsolate == 0 && overflowEmbedding == 0 {
				validIsolate++
				stack.push(next, overrideNeutral, true)
				continue
			}
			overflowIsolate++
		case bidi.PDI: // X6a
			if overflowIsolate > 0 {
				overflowIsolate--
			} else if validIsolate > 0 {
				overflowEmbedding = 0
				for !stack.isolateStatus() {
					stack.pop()
				}
				stack.pop()
				validIsolate--
			}
			bc.levels[i] = stack.embeddingLevel()
			stack.applyOverride(&bc.types[i])
		case bidi.PDF: // X7
			if overflowIsolate > 0 {
				// do nothing
			} else if overflowEmbedding > 0 {
				overflowEmbedding--
			} else if !stack.isolateStatus() && stack.depth() >= 2 {
				stack.pop()
			}
		case bidi.BN:
			// ignored, will be removed by X9
		case bidi.B: // X8
			bc.levels[i] = bc.baseLevel
		default: // X6
			bc.levels[i] = stack.embeddingLevel()
			stack.applyOverride(&bc.types[i])
		}
	}
}

// deleteFormatCharacters applies rule X9. Removed characters stay in place,
// but get level NoLevel.
func (bc *Context) deleteFormatCharacters() {
	for i, c := range bc.types {
		if isRemovedByX9(c) {
			bc.levels[i] = NoLevel
		}
	}
}
