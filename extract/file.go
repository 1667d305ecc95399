package extract

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// FileSource is a PageSource over a flat-text dump. Form feeds (U+000C)
// separate pages; a dump without form feeds is a single page.
//
// Text dumps produced by PDF tooling arrive in UTF-8, UTF-16LE, or
// UTF-16BE, usually with a BOM. Decoding is BOM-aware and falls back to
// UTF-8; invalid sequences become U+FFFD rather than errors, matching
// the reflow engine's total-function contract.
type FileSource struct {
	pages []string
}

// Open opens a flat-text file as a page source.
func Open(filename string) (*FileSource, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader reads a flat-text dump from r.
func OpenReader(r io.Reader) (*FileSource, error) {
	decoder := unicode.UTF8.NewDecoder()
	data, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(decoder)))
	if err != nil {
		return nil, fmt.Errorf("decoding text: %w", err)
	}

	return FromString(string(data)), nil
}

// FromString wraps already-decoded text as a page source.
func FromString(text string) *FileSource {
	return &FileSource{pages: strings.Split(text, "\f")}
}

// PageCount returns the number of form-feed-separated pages.
func (s *FileSource) PageCount() int {
	if s == nil {
		return 0
	}
	return len(s.pages)
}

// PageText returns the text of page index.
func (s *FileSource) PageText(index int) (string, error) {
	if s == nil || index < 0 || index >= len(s.pages) {
		return "", fmt.Errorf("page %d out of range", index)
	}
	return s.pages[index], nil
}

// Close releases resources. FileSource keeps no handles open.
func (s *FileSource) Close() error {
	return nil
}
