//go:build !ocr

// Package ocr recognizes text in scanned page images so it can be fed to
// the reflow engine.
//
// This is the stub implementation used when the "ocr" build tag is not
// set. All operations return ErrOCRNotEnabled.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import "errors"

// ErrOCRNotEnabled is returned when OCR functions are called but OCR
// support was not compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

// New returns ErrOCRNotEnabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op on the stub client.
func (c *Client) Close() error {
	return nil
}

// SetLanguage returns ErrOCRNotEnabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// RecognizeImage returns ErrOCRNotEnabled.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// Source is a stub page source that cannot be constructed.
type Source struct{}

// NewSource returns ErrOCRNotEnabled.
func NewSource(images [][]byte, lang string) (*Source, error) {
	return nil, ErrOCRNotEnabled
}

// PageCount returns 0 on the stub source.
func (s *Source) PageCount() int {
	return 0
}

// PageText returns ErrOCRNotEnabled.
func (s *Source) PageText(index int) (string, error) {
	return "", ErrOCRNotEnabled
}

// Close is a no-op on the stub source.
func (s *Source) Close() error {
	return nil
}
