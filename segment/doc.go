// Package segment implements the paragraph reflow state machine.
//
// The Reflower consumes input lines in order, classifies each one,
// tracks open dialogue quotes and bracket balance across lines, and
// decides per line whether the paragraph under construction should be
// flushed as a finished segment or the line merged as a soft wrap.
// Decisions are biased conservatively toward not splitting while any
// dialogue quote or bracket remains open, which keeps multi-line direct
// speech in one paragraph even under malformed OCR input.
package segment
