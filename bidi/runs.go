package bidi

import (
	"fmt"

	"golang.org/x/text/unicode/bidi"
)

// --- Level runs ------------------------------------------------------------

// levelRun is a level run as defined by BD7. Characters removed by X9 are
// part of the run they are embedded in, but never start a run.
type levelRun struct {
	start, end int   // [start, end) in paragraph positions
	level      Level //
	sor, eor   Class // start-of-run and end-of-run classes, either L or R
	seq        int   // id of isolating run sequence, 0 = unassigned
}

func (r levelRun) String() string {
	return fmt.Sprintf("run[%d-%d level=%d sor=%s eor=%s]", r.start, r.end, r.level,
		ClassString(r.sor), ClassString(r.eor))
}

// isolatingRunSequence is a chain of level runs as defined by BD13.
// All weak and neutral rules operate on the text chain of a sequence, i.e. on
// the concatenated paragraph positions of all its runs.
type isolatingRunSequence struct {
	runs     []int // indices into the context's level runs
	level    Level
	sos, eos Class
	indices  []int // text chain
}

// identifyRuns partitions the paragraph into level runs (X10, BD7).
func (bc *Context) identifyRuns() {
	bc.runs = bc.runs[:0]
	for start := 0; start < len(bc.levels); {
		level, n := bc.spanOneRun(start)
		if !level.RemovedByX9() {
			bc.runs = append(bc.runs, levelRun{start: start, end: start + n, level: level})
		}
		start += n
	}
	bc.calculateSorEor()
}

// spanOneRun finds the length of the level run starting at position start.
// A run ends after an isolate initiator, even if the following character has
// the same level.
func (bc *Context) spanOneRun(start int) (Level, int) {
	spanLevel := NoLevel
	spanLen := 0
	for i := start; i < len(bc.levels); i++ {
		level := bc.levels[i]
		initiator := false
		if !level.RemovedByX9() {
			initiator = isIsolateInitiator(bc.types[i])
			if spanLevel.RemovedByX9() {
				spanLevel = level
			} else if level != spanLevel {
				break
			}
		}
		spanLen = i - start
		if initiator {
			break
		}
	}
	return spanLevel, spanLen + 1
}

// sor and eor are derived from the higher of the levels on either side of a
// run boundary, using the paragraph level at the paragraph's edges.
func (bc *Context) calculateSorEor() {
	prior := bc.baseLevel
	for i := range bc.runs {
		next := bc.baseLevel
		if i+1 < len(bc.runs) {
			next = bc.runs[i+1].level
		}
		r := &bc.runs[i]
		r.sor = max(prior, r.level).Class()
		r.eor = max(next, r.level).Class()
		prior = r.level
	}
}

func (bc *Context) endsWithIsolateInitiator(r *levelRun) bool {
	return isIsolateInitiator(bc.types[r.end-1])
}

func (bc *Context) firstSignificantClass(r *levelRun) (Class, bool) {
	for i := r.start; i < r.end; i++ {
		if !bc.levels[i].RemovedByX9() {
			return bc.types[i], true
		}
	}
	return bidi.ON, false
}

// --- Isolating run sequences -----------------------------------------------

// identifyIsolatingRunSequences assigns every level run to exactly one
// isolating run sequence (BD13).
//
// Level runs are scanned in order. A run not yet assigned starts a new
// sequence. If it ends with an isolate initiator, we look ahead for the next
// unassigned run of the same level starting with a PDI and append it to the
// sequence, repeating this as long as appended runs end with an isolate
// initiator as well.
func (bc *Context) identifyIsolatingRunSequences() {
	bc.sequences = bc.sequences[:0]
	seqID := 0
	for i := range bc.runs {
		if bc.runs[i].seq != 0 {
			continue
		}
		seqID++
		bc.runs[i].seq = seqID
		seq := isolatingRunSequence{
			runs:  []int{i},
			level: bc.runs[i].level,
		}
		if bc.endsWithIsolateInitiator(&bc.runs[i]) {
			for j := i + 1; j < len(bc.runs); j++ {
				r := &bc.runs[j]
				if r.seq != 0 || r.level != seq.level {
					continue
				}
				if c, ok := bc.firstSignificantClass(r); !ok || c != bidi.PDI {
					continue
				}
				seq.runs = append(seq.runs, j)
				r.seq = seqID
				if !bc.endsWithIsolateInitiator(r) {
					break
				}
			}
		}
		bc.sequences = append(bc.sequences, seq)
	}
	bc.calculateSosEos()
	bc.buildTextChains()
}

// sos and eos are inherited from the sor of the first run and the eor of the
// last run of a sequence. A sequence ending with an isolate initiator lacks a
// matching PDI; for these, eos is calculated from the paragraph level instead.
//
//	   R  RLI    R
//	<L-----R> <RR>
//	<L------[          <== eos is L, not R
//	          <RR>
func (bc *Context) calculateSosEos() {
	for i := range bc.sequences {
		seq := &bc.sequences[i]
		first := &bc.runs[seq.runs[0]]
		last := &bc.runs[seq.runs[len(seq.runs)-1]]
		seq.sos = first.sor
		seq.eos = last.eor
		if bc.endsWithIsolateInitiator(last) {
			seq.eos = max(bc.baseLevel, seq.level).Class()
		}
	}
}

func (bc *Context) buildTextChains() {
	for i := range bc.sequences {
		seq := &bc.sequences[i]
		n := 0
		for _, r := range seq.runs {
			n += bc.runs[r].end - bc.runs[r].start
		}
		seq.indices = make([]int, 0, n)
		for _, r := range seq.runs {
			for pos := bc.runs[r].start; pos < bc.runs[r].end; pos++ {
				seq.indices = append(seq.indices, pos)
			}
		}
	}
}
