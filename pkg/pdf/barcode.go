package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

// ErrBarcode marks failures in barcode generation, reported separately from
// document assembly failures.
var ErrBarcode = errors.New("barcode generation failed")

// code128PNG encodes text as a Code 128 barcode and returns it as PNG bytes.
func code128PNG(text string, width, height int) ([]byte, error) {
	bc, err := code128.Encode(text)
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %v", ErrBarcode, err)
	}

	scaled, err := barcode.Scale(bc, width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: scale: %v", ErrBarcode, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("%w: png: %v", ErrBarcode, err)
	}
	return buf.Bytes(), nil
}
