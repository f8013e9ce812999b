// Package pdf implements the document writer collaborator on top of
// github.com/go-pdf/fpdf. Pages are 100x70 mm with no margins; all
// coordinates arriving in draw operations are absolute millimeters.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/agetherm/etiquetas/internal/core"
)

const fontFamily = "Helvetica"

// ptToMM converts a font size in points to millimeters.
const ptToMM = 25.4 / 72

// lineSpacing is the leading factor applied on top of the font size.
const lineSpacing = 1.2

// Writer creates fpdf-backed documents. One Writer can serve any number
// of sequential runs; each run gets a fresh document.
type Writer struct{}

// NewWriter returns a document writer for 100x70 mm label pages.
func NewWriter() *Writer {
	return &Writer{}
}

// NewDocument starts an empty landscape label document.
func (w *Writer) NewDocument() (core.Document, error) {
	// fpdf swaps Wd and Ht for landscape, yielding a 100 mm wide page.
	f := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: core.PageHeight, Ht: core.PageWidth},
	})
	f.SetMargins(0, 0, 0)
	f.SetAutoPageBreak(false, 0)
	f.SetFont(fontFamily, "", 10)
	if f.Err() {
		return nil, f.Error()
	}

	return &document{
		pdf: f,
		// Label text is Portuguese; the cp1252 translator covers its
		// accented characters in the core fonts.
		tr:         f.UnicodeTranslatorFromDescriptor(""),
		registered: make(map[string]bool),
	}, nil
}

type document struct {
	pdf        *fpdf.Fpdf
	tr         func(string) string
	registered map[string]bool
}

var _ core.Document = (*document)(nil)

// AddPage appends one page and plays its draw operations.
func (d *document) AddPage(p core.Page) error {
	d.pdf.AddPage()
	for _, op := range p.Ops {
		switch o := op.(type) {
		case core.TextOp:
			d.drawText(o)
		case core.LineOp:
			d.pdf.SetLineWidth(o.Width)
			d.pdf.Line(o.X1, o.Y1, o.X2, o.Y2)
		case core.RectOp:
			d.pdf.SetLineWidth(o.LineWidth)
			d.pdf.Rect(o.X, o.Y, o.W, o.H, "D")
		case core.ImageOp:
			d.drawImage(o)
		}
	}
	if d.pdf.Err() {
		return fmt.Errorf("drawing page %d: %w", d.pdf.PageCount(), d.pdf.Error())
	}
	return nil
}

// PageCount returns the number of pages added so far.
func (d *document) PageCount() int {
	return d.pdf.PageCount()
}

// Save writes the finished PDF to path and closes the document.
func (d *document) Save(path string) error {
	return d.pdf.OutputFileAndClose(path)
}

// drawText places one string with its baseline at Y, anchored at X per the
// op's alignment.
func (d *document) drawText(o core.TextOp) {
	d.pdf.SetFont(fontFamily, o.Style, o.Size)
	s := d.tr(o.Text)

	x := o.X
	switch o.Align {
	case core.AlignCenter:
		x -= d.pdf.GetStringWidth(s) / 2
	case core.AlignRight:
		x -= d.pdf.GetStringWidth(s)
	}
	d.pdf.Text(x, o.Y, s)
}

// drawImage registers the barcode PNG once per payload and stretches it
// into the op's box. Copies of the same row reuse the registered bitmap.
func (d *document) drawImage(o core.ImageOp) {
	name := fmt.Sprintf("%s-%s", o.Image.Spec.Symbology, o.Image.Spec.Payload)
	opts := fpdf.ImageOptions{ImageType: "png"}

	if !d.registered[name] {
		d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(o.Image.PNG))
		d.registered[name] = true
	}
	d.pdf.ImageOptions(name, o.X, o.Y, o.W, o.H, false, opts, 0, "")
}

// SplitText greedily wraps text into lines no wider than maxWidth
// millimeters at the given font size. Words longer than the width get a
// line of their own rather than being broken mid-word.
func (d *document) SplitText(text string, size, maxWidth float64) []string {
	d.pdf.SetFont(fontFamily, "", size)

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if d.pdf.GetStringWidth(d.tr(candidate)) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// LineHeight returns the line advance in millimeters for a font size.
func (d *document) LineHeight(size float64) float64 {
	return size * ptToMM * lineSpacing
}
