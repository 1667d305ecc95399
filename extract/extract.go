// Package extract assembles whole-document text from paged sources for
// the reflow engine.
//
// The engine itself is a pure function; everything stateful lives here:
// page iteration, optional "=== [Page i/N] ===" headers, progress
// reporting, and cancellation between pages. A PDF backend, an OCR
// pipeline, or a flat-text file all plug in as a PageSource.
package extract

import (
	"context"
	"fmt"
	"strings"
)

// PageSource supplies per-page text for a document. Implementations own
// whatever backend resources they need and release them in Close.
type PageSource interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// PageText returns the UTF-8 text of the page at index (0-based).
	PageText(index int) (string, error)

	// Close releases resources associated with the source.
	Close() error
}

// ProgressFunc reports extraction progress after each page. pageIndex is
// 0-based, percent runs 0..100, and bar is a rendered progress bar.
type ProgressFunc func(pageIndex, pageCount, percent int, bar string)

// Options holds configuration for document assembly.
type Options struct {
	// PageHeaders prepends "=== [Page i/N] ===" before each page. The
	// reflow engine keeps these markers as standalone paragraphs.
	PageHeaders bool

	// Progress, if non-nil, is called after each extracted page.
	Progress ProgressFunc
}

// Result is the outcome of a document assembly.
type Result struct {
	// Text is the assembled document text. On cancellation it holds the
	// pages extracted so far.
	Text string

	// Cancelled is true when assembly stopped early because the context
	// was done.
	Cancelled bool
}

// PageMarker formats the page-marker line for page index (0-based) of
// pageCount pages.
func PageMarker(index, pageCount int) string {
	return fmt.Sprintf("=== [Page %d/%d] ===", index+1, pageCount)
}

// Text assembles the full document text from src. Cancellation is
// honored between pages, never mid-page: a done context yields a partial
// Result with Cancelled set and a nil error. Page read failures abort
// with an error.
func Text(ctx context.Context, src PageSource, opts Options) (Result, error) {
	pageCount := src.PageCount()
	if pageCount <= 0 {
		return Result{}, nil
	}

	var sb strings.Builder
	for i := 0; i < pageCount; i++ {
		select {
		case <-ctx.Done():
			return Result{Text: sb.String(), Cancelled: true}, nil
		default:
		}

		pageText, err := src.PageText(i)
		if err != nil {
			return Result{Text: sb.String()}, fmt.Errorf("extracting page %d: %w", i+1, err)
		}

		if opts.PageHeaders {
			sb.WriteString(PageMarker(i, pageCount))
			sb.WriteString("\n\n")
		}

		pageText = normalizeNewlines(pageText)
		sb.WriteString(strings.TrimSpace(pageText))
		sb.WriteString("\n\n")

		if opts.Progress != nil {
			percent := ((i + 1) * 100) / pageCount
			opts.Progress(i, pageCount, percent, ProgressBar(percent, 10))
		}
	}

	return Result{Text: sb.String()}, nil
}

// normalizeNewlines converts CRLF and bare CR to LF.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
