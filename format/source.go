package format

import (
	"fmt"
	"os"

	"github.com/zhtext/reflow/extract"
	"github.com/zhtext/reflow/htmltext"
	"github.com/zhtext/reflow/ocr"
)

// defaultOCRLanguages covers simplified and traditional Chinese.
const defaultOCRLanguages = "chi_sim+chi_tra"

// Open routes filename to the page source matching its detected kind:
// flat text to extract.Open, HTML to htmltext.Open, scanned images to the
// OCR pipeline. Content detection wins over the extension; unrecognized
// content is treated as flat text.
//
// Image input requires an OCR-enabled build; without it, Open returns
// ocr.ErrOCRNotEnabled.
func Open(filename string) (extract.PageSource, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}

	kind := DetectFromMagic(data)
	if kind == Unknown {
		kind = Detect(filename)
	}

	switch kind {
	case HTML:
		return htmltext.Open(filename)
	case Image:
		src, err := ocr.NewSource([][]byte{data}, defaultOCRLanguages)
		if err != nil {
			return nil, err
		}
		return src, nil
	default:
		return extract.Open(filename)
	}
}
