//go:build ocr

// Package ocr recognizes text in scanned page images so it can be fed to
// the reflow engine.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// CJK recognition additionally needs the language data packages, e.g.
// tesseract-ocr-chi-sim / tesseract-ocr-chi-tra.
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client. The client should be closed when no
// longer needed to release resources.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for recognition. Multiple languages
// are "+" separated, e.g. "chi_sim+eng". Default is "eng".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// RecognizeImage performs OCR on encoded image data (PNG, TIFF, JPEG).
// Returns the recognized text with surrounding whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// Source is a page source over scanned page images. Each image is one
// page; recognition happens lazily in PageText.
type Source struct {
	client *Client
	images [][]byte
}

// NewSource creates a Source over encoded page images in reading order.
// The Source owns the client and closes it in Close.
func NewSource(images [][]byte, lang string) (*Source, error) {
	client, err := New()
	if err != nil {
		return nil, err
	}
	if lang != "" {
		if err := client.SetLanguage(lang); err != nil {
			client.Close()
			return nil, fmt.Errorf("setting OCR language: %w", err)
		}
	}
	return &Source{client: client, images: images}, nil
}

// PageCount returns the number of page images.
func (s *Source) PageCount() int {
	if s == nil {
		return 0
	}
	return len(s.images)
}

// PageText recognizes and returns the text of page index.
func (s *Source) PageText(index int) (string, error) {
	if s == nil || index < 0 || index >= len(s.images) {
		return "", fmt.Errorf("page %d out of range", index)
	}
	return s.client.RecognizeImage(s.images[index])
}

// Close releases the underlying OCR client.
func (s *Source) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}
