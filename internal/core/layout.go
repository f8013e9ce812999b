package core

import "fmt"

// Align controls horizontal text anchoring at the op's X coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Font styles understood by the document writer.
const (
	StyleRegular = ""
	StyleBold    = "B"
)

// Draw operations. A page is a fixed, ordered list of these; composing a
// page touches no shared state, so identical inputs always produce an
// identical op sequence.

type TextOp struct {
	X, Y  float64
	Size  float64 // font size in points
	Style string
	Align Align
	Text  string
}

type LineOp struct {
	X1, Y1, X2, Y2 float64
	Width          float64
}

type RectOp struct {
	X, Y, W, H float64
	LineWidth  float64
}

type ImageOp struct {
	X, Y, W, H float64
	Image      BarcodeImage
}

// Op is one positioned draw operation on a label page.
type Op interface{ op() }

func (TextOp) op()  {}
func (LineOp) op()  {}
func (RectOp) op()  {}
func (ImageOp) op() {}

// Page is one fully composed label page.
type Page struct {
	Ops []Op
}

// Measurer provides the text metrics layout needs for wrapping and vertical
// centering. The document writer implements it; tests use a stub.
type Measurer interface {
	// SplitText wraps text to maxWidth millimeters at the given font size.
	SplitText(text string, size, maxWidth float64) []string
	// LineHeight returns the line advance in millimeters for a font size.
	LineHeight(size float64) float64
}

// Engine composes label pages from validated records and their rendered
// barcode images. Layout is a pure function of its inputs plus the fixed
// millimeter geometry of the active template.
type Engine struct {
	m Measurer
}

// NewEngine creates a layout engine using m for text measurement.
func NewEngine(m Measurer) *Engine {
	return &Engine{m: m}
}

// Page lays out one label page for rec. The images slice must be in
// BuildRequests order for the record's mode.
func (e *Engine) Page(rec Record, images []BarcodeImage, mode Mode) (Page, error) {
	switch r := rec.(type) {
	case *MasterRecord:
		if mode != ModeMasterCarton {
			return Page{}, fmt.Errorf("master record in %s mode", mode)
		}
		if len(images) < 2 {
			return Page{}, fmt.Errorf("master layout needs 2 barcode images, got %d", len(images))
		}
		return layoutMaster(r, images), nil
	case *ProductRecord:
		if !mode.IsProduct() {
			return Page{}, fmt.Errorf("product record in %s mode", mode)
		}
		if len(images) < 1 {
			return Page{}, fmt.Errorf("product layout needs at least 1 barcode image, got %d", len(images))
		}
		return e.layoutProduct(r, images, mode), nil
	default:
		return Page{}, fmt.Errorf("unsupported record type %T", rec)
	}
}

// truncateRunes shortens s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
