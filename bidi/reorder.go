package bidi

import (
	"fmt"
	"slices"

	"golang.org/x/text/unicode/bidi"
)

// Run is a run of characters in logical order, sharing the same embedding level.
// L and R denote the half-open range [L, R) of paragraph positions. Characters
// removed by rule X9 do not break runs; their positions are listed in Removed.
type Run struct {
	Dir     Direction
	Level   Level
	L, R    int
	Removed []int // positions removed by X9, within [L, R)
}

// Len returns the number of paragraph positions covered by the run,
// including removed ones.
func (r Run) Len() int {
	return r.R - r.L
}

// Indices returns the paragraph positions of the run, omitting positions
// removed by rule X9.
func (r Run) Indices() []int {
	indices := make([]int, 0, r.Len()-len(r.Removed))
	k := 0
	for i := r.L; i < r.R; i++ {
		if k < len(r.Removed) && r.Removed[k] == i {
			k++
			continue
		}
		indices = append(indices, i)
	}
	return indices
}

func (r Run) String() string {
	return fmt.Sprintf("[%d-%d %s level=%d]", r.L, r.R, r.Dir, r.Level)
}

// ReorderedRun is a run of characters in visual order. Indices lists the
// paragraph positions of the run's characters, in visual order. [L, R) is the
// range of positions covered.
type ReorderedRun struct {
	Dir     Direction
	Level   Level
	L, R    int
	Indices []int
}

func (r ReorderedRun) String() string {
	return fmt.Sprintf("[%d-%d %s level=%d %v]", r.L, r.R, r.Dir, r.Level, r.Indices)
}

// Runs returns the runs of the paragraph in logical order, partitioning all
// positions of the paragraph. Rule L1 is not applied, see LineRuns.
func (bc *Context) Runs() []Run {
	return runsFromLevels(bc.levels, 0, bc.baseLevel)
}

// LineRuns returns the runs for a line of the paragraph, in logical order.
// The line is the range [start, end) of paragraph positions, clamped to the
// paragraph. Rule L1 is applied to the line before building the runs.
func (bc *Context) LineRuns(start, end int) []Run {
	start, end = bc.clampLine(start, end)
	levels := bc.resetWhitespaceLevels(start, end)
	return runsFromLevels(levels, start, bc.baseLevel)
}

// ReorderLine applies rules L1 and L2 (and L3, if enabled) to a line of the
// paragraph, i.e. to the range [start, end) of paragraph positions.
// It returns the line's levels in logical order, with NoLevel for characters
// removed by X9, and the paragraph positions of the line in visual order.
// Characters removed by X9 are not part of the visual order.
func (bc *Context) ReorderLine(start, end int) ([]Level, []int) {
	start, end = bc.clampLine(start, end)
	levels := bc.resetWhitespaceLevels(start, end)
	visual := bc.reverseLevels(start, levels)
	return levels, visual
}

// ReorderedRuns reorders a line (see ReorderLine) and groups the visual order
// into runs of equal level.
func (bc *Context) ReorderedRuns(start, end int) []ReorderedRun {
	start, end = bc.clampLine(start, end)
	levels, visual := bc.ReorderLine(start, end)
	var runs []ReorderedRun
	for i := 0; i < len(visual); {
		level := levels[visual[i]-start]
		j := i + 1
		for j < len(visual) && levels[visual[j]-start] == level {
			j++
		}
		indices := slices.Clone(visual[i:j])
		runs = append(runs, ReorderedRun{
			Dir:     level.Direction(),
			Level:   level,
			L:       slices.Min(indices),
			R:       slices.Max(indices) + 1,
			Indices: indices,
		})
		i = j
	}
	return runs
}

func (bc *Context) clampLine(start, end int) (int, int) {
	n := len(bc.levels)
	start = min(max(start, 0), n)
	end = min(max(end, start), n)
	return start, end
}

// runsFromLevels groups levels into runs. Positions removed by X9 are
// attached to the run they follow, or to the first run if they lead the line.
// A line consisting of removed positions only makes up a single run at the
// paragraph level.
func runsFromLevels(levels []Level, offset int, base Level) []Run {
	var runs []Run
	var cur *Run
	var pending []int
	for i, level := range levels {
		pos := offset + i
		if level.RemovedByX9() {
			if cur != nil {
				cur.R = pos + 1
				cur.Removed = append(cur.Removed, pos)
			} else {
				pending = append(pending, pos)
			}
			continue
		}
		if cur != nil && cur.Level == level {
			cur.R = pos + 1
			continue
		}
		if cur != nil {
			runs = append(runs, *cur)
		}
		cur = &Run{Dir: level.Direction(), Level: level, L: pos, R: pos + 1}
		if len(pending) > 0 {
			cur.L = pending[0]
			cur.Removed = pending
			pending = nil
		}
	}
	if cur != nil {
		runs = append(runs, *cur)
	} else if len(pending) > 0 {
		runs = append(runs, Run{
			Dir:     base.Direction(),
			Level:   base,
			L:       pending[0],
			R:       offset + len(levels),
			Removed: pending,
		})
	}
	return runs
}

// --- Line rules ------------------------------------------------------------

// resetWhitespaceLevels applies rule L1 to the line [start, end) and returns
// the line's levels.
//
// Segment separators and paragraph separators are reset to the paragraph
// embedding level, as is any sequence of whitespace and isolate formatting
// characters preceding them or ending the line. The checks are done on the
// original classes of the characters. Characters removed by X9 are skipped.
func (bc *Context) resetWhitespaceLevels(start, end int) []Level {
	levels := slices.Clone(bc.levels[start:end])
	resetBefore := func(to int) { // to is exclusive, in line coordinates
		for i := to - 1; i >= 0; i-- {
			c := bc.origTypes[start+i]
			if c == bidi.WS || isIsolateControl(c) {
				levels[i] = bc.baseLevel
			} else if !levels[i].RemovedByX9() {
				break
			}
		}
	}
	for i := range levels {
		switch bc.origTypes[start+i] {
		case bidi.S, bidi.B:
			levels[i] = bc.baseLevel
			resetBefore(i)
		}
	}
	resetBefore(len(levels))
	return levels
}

// deleted marks positions removed by X9 in a visual order.
const deleted = -1

// reverseLevels applies rule L2 to the levels of a line starting at paragraph
// position first: from the highest level down to the lowest odd level, reverse
// any contiguous sequence of characters at that level or higher.
// Characters removed by X9 are transparent and will not be part of the
// resulting visual order.
func (bc *Context) reverseLevels(first int, levels []Level) []int {
	highest, lowestOdd := Level(0), Level(MaxDepth+2) // I2 may raise levels to MaxDepth+1
	found := false
	for _, l := range levels {
		if l.RemovedByX9() {
			continue
		}
		found = true
		highest = max(highest, l)
		if l%2 == 1 && l < lowestOdd {
			lowestOdd = l
		}
	}
	if !found {
		return []int{}
	}
	visual := make([]int, len(levels))
	for i, l := range levels {
		if l.RemovedByX9() {
			visual[i] = deleted
		} else {
			visual[i] = first + i
		}
	}
	// levels in visual positions; differs from levels only if L3 is applied
	vlevels := levels
	if bc.hasMode(optionReorderNSM) {
		// UAX#9 applies L3 after L2. We do it before, as FriBidi does.
		vlevels = slices.Clone(levels)
		bc.reorderNonSpacingMarks(vlevels, visual)
	}
	for level := highest; level >= lowestOdd; level-- {
		from, to := -1, -1 // current range [from, to]
		for i, l := range vlevels {
			if l >= level {
				if from < 0 {
					from = i
				}
				to = i
			} else if l.RemovedByX9() {
				if from >= 0 {
					to = i
				}
			} else if from >= 0 {
				slices.Reverse(visual[from : to+1])
				from, to = -1, -1
			}
		}
		if from >= 0 {
			slices.Reverse(visual[from : to+1])
		}
	}
	return slices.DeleteFunc(visual, func(pos int) bool { return pos == deleted })
}

// reorderNonSpacingMarks applies rule L3: in right-to-left runs, combining
// marks are moved to follow their base character in visual order. levels
// and visual are permuted together.
func (bc *Context) reorderNonSpacingMarks(levels []Level, visual []int) {
	for i := len(levels) - 1; i > 0; i-- {
		if levels[i].RemovedByX9() || levels[i].Direction() != RightToLeft ||
			bc.origTypes[visual[i]] != bidi.NSM {
			continue
		}
		level, end := levels[i], i
		i--
		for i > 0 && (levels[i].RemovedByX9() ||
			(levels[i] == level && isMarkOrFormat(bc.origTypes[visual[i]]))) {
			i--
		}
		if levels[i] != level {
			i++
		}
		if end > i {
			slices.Reverse(visual[i : end+1])
			slices.Reverse(levels[i : end+1])
		}
	}
}

func isMarkOrFormat(c Class) bool {
	return c == bidi.NSM || isRemovedByX9(c)
}
