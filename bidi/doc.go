/*
Package bidi implements the Unicode Bidirectional Algorithm as described in UAX#9.

Clients resolve a paragraph of text with a Context. The context computes an
embedding level for every character of the paragraph and offers access to
the resulting directional runs, either in logical order (Runs, LineRuns) or in
visual order (ReorderLine, ReorderedRuns). Line-related rules L1 to L3 are
applied lazily for a line range, as line breaking usually happens after levels
have been resolved.

	ctx := bidi.NewContext()
	ctx.ResolveString("car means CAR.", bidi.HintAutoLeftToRight)
	for _, run := range ctx.ReorderedRuns(0, 14) {
	    ... // shape run.Indices in direction run.Dir
	}

A Context is not safe for concurrent use. Workers may either create a context
each or borrow one from a ContextPool.

Rule L3 (re-ordering of non-spacing marks) is not applied by default. If
enabled, it is applied before L2, thus keeping marks in front of their base
character in visual order, which is what most renderers expect.

Status

Conformance is checked against BidiTest.txt and BidiCharacterTest.txt, if these
files have been downloaded (see package internal/testdata).

BSD License

Copyright (c) 2017–2026, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package bidi

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'uax.bidi'.
func tracer() tracing.Trace {
	return tracing.Select("uax.bidi")
}

// UnicodeVersion is the UAX#9 version this implementation follows.
const UnicodeVersion = "15.0.0"
