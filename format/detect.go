// Package format detects the kind of input handed to the reflow pipeline
// so callers can route it to the matching page source.
package format

import (
	"path/filepath"
	"strings"
)

// Format represents a supported input kind.
type Format int

const (
	// Unknown indicates an unrecognized input.
	Unknown Format = iota
	// Text indicates a flat-text dump (UTF-8 or UTF-16, optional BOM).
	Text
	// HTML indicates an HTML or XHTML document.
	HTML
	// Image indicates a scanned page image (PNG, JPEG, or TIFF) that
	// needs OCR before reflow.
	Image
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Text:
		return "Text"
	case HTML:
		return "HTML"
	case Image:
		return "Image"
	default:
		return "Unknown"
	}
}

// Detect determines input kind from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".text":
		return Text
	case ".html", ".htm", ".xhtml":
		return HTML
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		return Image
	default:
		return Unknown
	}
}

// DetectFromMagic determines input kind from leading content bytes. This
// is more reliable than extension-based detection: OCR'd text dumps are
// often saved with no extension at all. Returns Unknown when the content
// is not recognizable; a caller may still treat such input as flat text.
func DetectFromMagic(data []byte) Format {
	if len(data) < 2 {
		return Unknown
	}

	// Unicode BOMs mark a text dump.
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return Text
	}
	if (data[0] == 0xFF && data[1] == 0xFE) || (data[0] == 0xFE && data[1] == 0xFF) {
		return Text
	}

	// PNG magic: \x89PNG
	if len(data) >= 4 && data[0] == 0x89 && data[1] == 'P' && data[2] == 'N' && data[3] == 'G' {
		return Image
	}
	// JPEG magic: \xFF\xD8\xFF
	if len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
		return Image
	}
	// TIFF magic: II*\x00 or MM\x00*
	if len(data) >= 4 {
		if data[0] == 'I' && data[1] == 'I' && data[2] == 0x2A && data[3] == 0x00 {
			return Image
		}
		if data[0] == 'M' && data[1] == 'M' && data[2] == 0x00 && data[3] == 0x2A {
			return Image
		}
	}

	if detectHTMLMagic(data) {
		return HTML
	}

	return Unknown
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	if start >= len(data) {
		return false
	}
	data = data[start:]

	// Common HTML signatures (case-insensitive for DOCTYPE).
	upper := strings.ToUpper(string(data))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML.
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper[:min(500, len(upper))], "<HTML") {
		return true
	}

	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
