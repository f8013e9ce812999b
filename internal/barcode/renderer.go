// Package barcode implements the barcode renderer collaborator on top of
// github.com/boombuler/barcode. It encodes EAN-13 and Code-128 payloads and
// returns PNG bitmaps sized for placement on a label page.
package barcode

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/ean"

	"github.com/agetherm/etiquetas/internal/core"
)

// DefaultScale is the pixel width of one barcode module.
const DefaultScale = 3

// pxPerMM converts a millimeter bar height to bitmap pixels. Bars are
// stretched to their final size at placement, so this only needs to give
// the scaler enough resolution.
const pxPerMM = 4

// Renderer renders core.BarcodeSpec values into PNG images.
// The zero value is not usable; call New.
type Renderer struct {
	scale int
}

// New creates a renderer. A scale below 1 falls back to DefaultScale.
func New(scale int) *Renderer {
	if scale < 1 {
		scale = DefaultScale
	}
	return &Renderer{scale: scale}
}

// Render encodes the spec's payload in its symbology and rasterizes it.
// Invalid payloads return a *core.EncodingError so callers can fail the
// row rather than the batch. Rendering is deterministic: the same spec
// always yields the same bytes.
func (r *Renderer) Render(spec core.BarcodeSpec) (core.BarcodeImage, error) {
	var (
		bc  barcode.Barcode
		err error
	)

	switch spec.Symbology {
	case core.EAN13:
		bc, err = ean.Encode(spec.Payload)
	case core.Code128:
		bc, err = code128.Encode(spec.Payload)
	default:
		return core.BarcodeImage{}, fmt.Errorf("unsupported symbology %v", spec.Symbology)
	}
	if err != nil {
		return core.BarcodeImage{}, &core.EncodingError{Symbology: spec.Symbology, Payload: spec.Payload, Err: err}
	}

	widthPx := bc.Bounds().Dx() * r.scale
	heightPx := int(spec.HeightMM * pxPerMM)
	if heightPx < 1 {
		heightPx = pxPerMM
	}

	scaled, err := barcode.Scale(bc, widthPx, heightPx)
	if err != nil {
		return core.BarcodeImage{}, &core.EncodingError{Symbology: spec.Symbology, Payload: spec.Payload, Err: err}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return core.BarcodeImage{}, fmt.Errorf("encoding barcode png: %w", err)
	}

	return core.BarcodeImage{
		Spec:     spec,
		PNG:      buf.Bytes(),
		WidthPx:  widthPx,
		HeightPx: heightPx,
	}, nil
}
