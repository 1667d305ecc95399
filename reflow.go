// Package reflow reconstructs natural paragraph boundaries in raw,
// page-segmented CJK text extracted from PDFs or other OCR/flat-text
// sources.
//
// A naive line join cannot recover paragraphs from extracted text: line
// breaks inside sentences, repeated styling artifacts, page markers, and
// multi-line dialogue all need CJK-aware handling. The engine classifies
// every line, tracks nested dialogue quote depth and bracket balance
// across lines, and merges soft line wraps while keeping headings,
// metadata, and dividers as standalone paragraphs.
//
// Basic usage:
//
//	out := reflow.Text(raw)
//
// With options:
//
//	out := reflow.New().
//	    Compact().
//	    PageHeaders().
//	    Text(raw)
//
// The engine is a pure function from (text, options) to text: no I/O, no
// shared state, total over all UTF-8 input. Invalid byte sequences are
// replaced with U+FFFD, and all-whitespace input is returned verbatim.
// For assembling input from paged sources, see the extract, htmltext,
// and ocr packages; for the lower-level state machine, the segment
// package.
package reflow

import "github.com/zhtext/reflow/segment"

// Reflower provides a fluent interface for configuring and running
// paragraph reflow. Each configuration method returns a new Reflower
// instance, making it safe for concurrent use and allowing method
// chaining.
type Reflower struct {
	options Options
}

// New returns a Reflower with default options: blank-line paragraph
// separation, no page headers, lenient boundary detection.
func New() *Reflower {
	return &Reflower{options: defaultOptions()}
}

// clone creates a copy of the Reflower with a deep copy of options so
// chain methods never mutate their receiver.
func (r *Reflower) clone() *Reflower {
	return &Reflower{options: r.options.clone()}
}

// Compact joins output paragraphs with a single newline instead of a
// blank line.
func (r *Reflower) Compact() *Reflower {
	out := r.clone()
	out.options.compact = true
	return out
}

// PageHeaders declares that the input carries "=== [Page i/N] ===" page
// headers. This only changes the empty-line heuristic: without headers,
// a blank line inside an unfinished sentence is treated as a cross-page
// layout gap and skipped.
func (r *Reflower) PageHeaders() *Reflower {
	out := r.clone()
	out.options.pageHeaders = true
	return out
}

// Level sets the sentence-boundary leniency used for paragraph flush
// decisions. The default is segment.LevelLenient.
func (r *Reflower) Level(level segment.BoundaryLevel) *Reflower {
	out := r.clone()
	out.options.level = level
	return out
}

// CancelHook installs a per-line hook called with the number of lines
// already consumed. Returning true stops the reflow early; paragraphs
// flushed so far are returned. The engine has no other suspension
// points, so this is the only way to bound a single call.
func (r *Reflower) CancelHook(hook func(linesProcessed int) bool) *Reflower {
	out := r.clone()
	out.options.cancelHook = hook
	return out
}

// Text reflows input and returns the joined result. This is a terminal
// operation; the Reflower may be reused afterwards.
func (r *Reflower) Text(input string) string {
	return r.reflower().Reflow(input)
}

// Segments reflows input and returns the ordered paragraph list instead
// of a joined string.
func (r *Reflower) Segments(input string) []string {
	return r.reflower().Segments(input)
}

func (r *Reflower) reflower() *segment.Reflower {
	return segment.NewReflowerWithConfig(segment.Config{
		PageHeaders: r.options.pageHeaders,
		Compact:     r.options.compact,
		Level:       r.options.level,
		CancelHook:  r.options.cancelHook,
	})
}

// Text reflows input with default options.
func Text(input string) string {
	return New().Text(input)
}

// Segments reflows input with default options and returns the ordered
// paragraph list.
func Segments(input string) []string {
	return New().Segments(input)
}
