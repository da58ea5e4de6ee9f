package bidi

import (
	"golang.org/x/text/unicode/bidi"
)

// --- Directional status stack ----------------------------------------------

// override is the directional override status of a stack entry.
type override int8

const (
	overrideNeutral override = iota
	overrideLTR
	overrideRTL
)

// A directional status entry as described in rule X1.
type dirStatus struct {
	level    Level
	override override
	isolate  bool
}

// levelStack is the directional status stack of rules X1–X8. UAX#9 requires it
// to hold at most MaxDepth+2 entries. The floor entry for the paragraph
// embedding level is never popped.
type levelStack struct {
	entries [MaxDepth + 2]dirStatus
	top     int // number of entries
}

// reset empties the stack and pushes the paragraph embedding level.
func (ls *levelStack) reset(base Level) {
	ls.top = 0
	ls.push(base, overrideNeutral, false)
}

// push returns false if the stack is full.
func (ls *levelStack) push(level Level, ovr override, isolate bool) bool {
	if ls.top >= len(ls.entries) {
		return false
	}
	ls.entries[ls.top] = dirStatus{level: level, override: ovr, isolate: isolate}
	ls.top++
	return true
}

// pop never removes the floor entry.
func (ls *levelStack) pop() {
	if ls.top > 1 {
		ls.top--
	}
}

func (ls *levelStack) depth() int {
	return ls.top
}

func (ls *levelStack) last() *dirStatus {
	return &ls.entries[ls.top-1]
}

func (ls *levelStack) embeddingLevel() Level {
	return ls.last().level
}

func (ls *levelStack) isolateStatus() bool {
	return ls.last().isolate
}

// applyOverride resets the class of a character if the top of stack has an
// active directional override (X6).
func (ls *levelStack) applyOverride(c *Class) {
	switch ls.last().override {
	case overrideLTR:
		*c = bidi.L
	case overrideRTL:
		*c = bidi.R
	}
}
