package segment

import (
	"strings"

	"github.com/zhtext/reflow/cjk"
	"github.com/zhtext/reflow/classify"
	"github.com/zhtext/reflow/noise"
	"github.com/zhtext/reflow/punct"
)

// Config holds configuration for paragraph reflow.
type Config struct {
	// PageHeaders indicates the input carries page-marker headers. When
	// false, an empty line inside an unfinished sentence is treated as a
	// cross-page layout gap and skipped instead of forcing a break.
	PageHeaders bool

	// Compact joins output segments with a single newline instead of a
	// blank line.
	Compact bool

	// Level is the sentence-boundary leniency used for paragraph flush
	// decisions. Default: LevelLenient.
	Level BoundaryLevel

	// CancelHook, if non-nil, is called before each line with the number
	// of lines already consumed. Returning true stops the reflow; the
	// segments flushed so far are returned.
	CancelHook func(linesProcessed int) bool
}

// DefaultConfig returns the default reflow configuration.
func DefaultConfig() Config {
	return Config{
		Level: LevelLenient,
	}
}

// Reflower reconstructs paragraph boundaries in page-segmented text.
// Each call owns its own state, so a Reflower is safe for concurrent use
// on independent inputs.
type Reflower struct {
	config Config
}

// NewReflower creates a Reflower with default configuration.
func NewReflower() *Reflower {
	return &Reflower{config: DefaultConfig()}
}

// NewReflowerWithConfig creates a Reflower with custom configuration.
func NewReflowerWithConfig(config Config) *Reflower {
	if config.Level == 0 {
		config.Level = LevelLenient
	}
	return &Reflower{config: config}
}

// Reflow reconstructs paragraph boundaries in text and returns the joined
// result. It is total over all input: invalid UTF-8 bytes are replaced
// with U+FFFD, and all-whitespace input is returned verbatim.
func (r *Reflower) Reflow(text string) string {
	if isBlank(text) {
		return text
	}
	return Join(r.Segments(text), r.config.Compact)
}

// Segments reconstructs paragraph boundaries in text and returns the
// ordered segment list. All-whitespace input yields no segments.
func (r *Reflower) Segments(text string) []string {
	if isBlank(text) {
		return nil
	}

	e := &engine{config: r.config}

	norm := normalizeNewlines(text)
	processed := 0
	for _, line := range strings.Split(norm, "\n") {
		if r.config.CancelHook != nil && r.config.CancelHook(processed) {
			break
		}
		e.consume([]rune(line))
		processed++
	}
	e.flush()

	return e.segments
}

// Join concatenates segments with a single newline when compact is set,
// otherwise with a blank line. There is no trailing separator.
func Join(segments []string, compact bool) string {
	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return strings.Join(segments, sep)
}

// isBlank reports whether text contains only ASCII layout whitespace.
// Such input is passed through without normalization.
func isBlank(text string) bool {
	return strings.Trim(text, " \t\r\n") == ""
}

// normalizeNewlines converts CRLF and bare CR to LF.
func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// engine is the per-call reflow state: the output list, the paragraph
// under construction, and the dialogue counters tied to it.
type engine struct {
	config   Config
	segments []string
	buf      []rune
	dialog   DialogState
}

// flush finalizes the current buffer into a segment. The buffer and its
// dialogue state are cleared together.
func (e *engine) flush() {
	if len(e.buf) == 0 {
		return
	}
	e.segments = append(e.segments, string(e.buf))
	e.buf = e.buf[:0]
	e.dialog.Reset()
}

// emit appends a standalone segment, bypassing the buffer.
func (e *engine) emit(s []rune) {
	e.segments = append(e.segments, string(s))
}

// consume classifies one raw input line and either flushes, emits a
// standalone segment, or merges the line into the buffer. Rule order is
// significant: earlier rules short-circuit later ones.
func (e *engine) consume(raw []rune) {
	stripped := cjk.TrimRight(raw)
	stripped = noise.CollapseLine(stripped)
	probe := cjk.TrimLeft(stripped)

	// Empty line: without page headers, a gap inside an unfinished
	// sentence is a cross-page artifact and is skipped.
	if len(stripped) == 0 {
		if !e.config.PageHeaders && len(e.buf) > 0 {
			if last, _, ok := cjk.LastNonSpace(e.buf); ok && !punct.IsStrongEnd(last) {
				return
			}
		}
		e.flush()
		return
	}

	// Visual dividers force a hard break and stand alone.
	if classify.IsVisualDivider(probe) {
		e.flush()
		e.emit(probe)
		return
	}

	// Page markers, title headings, and metadata lines always stand
	// alone.
	if classify.IsPageMarker(stripped) {
		e.flush()
		e.emit(stripped)
		return
	}
	if classify.IsTitleHeading(probe) {
		e.flush()
		e.emit(probe)
		return
	}
	if classify.IsMetadataLine(probe) {
		e.flush()
		e.emit(probe)
		return
	}

	// Weak heading-like lines split only when the previous paragraph
	// ended cleanly; otherwise the line falls through to merge handling.
	if classify.IsHeadingLike(probe) && e.headingSplitOK(probe) {
		e.flush()
		e.emit(probe)
		return
	}

	// A buffer that reads like a chapter reference is complete.
	if len(e.buf) > 0 && !e.dialog.Unclosed() &&
		classify.IsChapterEnding(cjk.TrimRight(e.buf)) {
		e.flush()
	}

	// Indentation starts a new paragraph in CJK layouts.
	if len(e.buf) > 0 && !e.dialog.Unclosed() &&
		classify.IsIndented(raw) && !punct.HasUnclosedBracket(e.buf) {
		e.flush()
	}

	// A line opening dialogue closes the paragraph before it, unless the
	// paragraph still reads as unfinished (comma or colon ending, open
	// quote or bracket).
	if len(e.buf) > 0 && punct.BeginsWithDialogOpener(probe) &&
		!e.dialog.Unclosed() && !punct.HasUnclosedBracket(e.buf) {
		if last, _, ok := cjk.LastNonSpace(e.buf); ok &&
			!punct.IsCommaLike(last) && !punct.IsColonLike(last) {
			e.flush()
		}
	}

	if len(e.buf) == 0 {
		e.dialog.Reset()
	}
	lineBracketIssue := punct.HasUnclosedBracket(probe)
	e.buf = append(e.buf, probe...)
	e.dialog.Update(probe)

	// Never flush while dialogue is open.
	if e.dialog.Unclosed() {
		return
	}

	// Dialogue just closed: flush if the speech ended on clause or
	// sentence punctuation and the buffer has no other bracket problem.
	// A bracket problem introduced by this very line is an OCR typo and
	// does not hold the paragraph open.
	if punct.EndsWithDialogCloser(probe) {
		_, lastIdx, _ := cjk.LastNonSpace(probe)
		if prev, _, ok := cjk.PrevNonSpace(probe, lastIdx); ok && punct.IsClauseOrEnd(prev) {
			if !punct.HasUnclosedBracket(e.buf) || lineBracketIssue {
				e.flush()
				return
			}
		}
	}

	// Paragraph boundary after the merge.
	if (EndsWithSentenceBoundary(e.buf, e.config.Level) && !punct.HasUnclosedBracket(e.buf)) ||
		EndsWithBracketBoundary(e.buf) {
		e.flush()
	}
}

// headingSplitOK reports whether a heading-like line may split off as its
// own segment given the buffer before it. A paragraph with open dialogue
// or brackets, or one ending in a comma, keeps the line as continuation;
// a line that itself reads as sentence tail (leading closer or soft
// continuation mark) splits only after finished punctuation.
func (e *engine) headingSplitOK(probe []rune) bool {
	if e.dialog.Unclosed() || punct.HasUnclosedBracket(e.buf) {
		return false
	}

	last, _, ok := cjk.LastNonSpace(e.buf)
	if !ok {
		return true
	}
	if punct.IsCommaLike(last) {
		return false
	}
	if isContinuationMarker(probe) && !punct.IsClauseOrEnd(last) {
		return false
	}
	return true
}

// isContinuationMarker reports whether s begins with a rune that reads as
// the tail of the previous sentence: a quote or bracket closer, or a
// comma/colon-class mark.
func isContinuationMarker(s []rune) bool {
	first, _, ok := cjk.FirstNonSpace(s)
	if !ok {
		return false
	}
	return punct.IsDialogCloser(first) ||
		punct.IsBracketCloser(first) ||
		punct.IsCommaLike(first) ||
		punct.IsColonLike(first)
}
