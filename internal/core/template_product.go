package core

// Product template: a bordered card of label/value box pairs. As with the
// master template, the millimeter values are configuration; the boxes line
// up with fixed placeholders on the printed stock.

// box is a rectangle on the label, in millimeters.
type box struct {
	X, Y, W, H float64
}

// centerX returns the horizontal center of the box.
func (b box) centerX() float64 { return b.X + b.W/2 }

// centerY returns the vertical center of the box.
func (b box) centerY() float64 { return b.Y + b.H/2 }

// pair is one label cell with its value cell.
type pair struct {
	Label box
	Value box
}

// descriptionLimit caps the description before word-wrapping; anything
// longer cannot fit the fixed-height box even fully wrapped.
const descriptionLimit = 132

var productGeom = struct {
	Border box

	HeaderY, HeaderSize float64

	Code pair
	EAN  pair
	Desc pair

	// withLot branch: lot box pair (value text + barcode stacked), then an
	// expiry/quantity row splitting the remaining width evenly.
	Lot    pair
	Expiry pair
	Qty    pair

	// withoutLot branch: one large quantity pair over the same span.
	QtyWide pair

	LabelSize, ValueSize float64
	DescSize             float64
	QtyWideSize          float64
	BorderW, CellW       float64
	LotBarcode           box
	EANBarcode           box
	DescPad              float64
}{
	Border: box{X: 2, Y: 2, W: 96, H: 66},

	HeaderY: 9, HeaderSize: 13,

	Code: pair{Label: box{X: 2, Y: 12, W: 24, H: 8}, Value: box{X: 26, Y: 12, W: 72, H: 8}},
	EAN:  pair{Label: box{X: 2, Y: 20, W: 24, H: 12}, Value: box{X: 26, Y: 20, W: 72, H: 12}},
	Desc: pair{Label: box{X: 2, Y: 32, W: 24, H: 14}, Value: box{X: 26, Y: 32, W: 72, H: 14}},

	Lot:    pair{Label: box{X: 2, Y: 46, W: 24, H: 14}, Value: box{X: 26, Y: 46, W: 72, H: 14}},
	Expiry: pair{Label: box{X: 2, Y: 60, W: 20, H: 8}, Value: box{X: 22, Y: 60, W: 28, H: 8}},
	Qty:    pair{Label: box{X: 50, Y: 60, W: 20, H: 8}, Value: box{X: 70, Y: 60, W: 28, H: 8}},

	QtyWide: pair{Label: box{X: 2, Y: 46, W: 24, H: 22}, Value: box{X: 26, Y: 46, W: 72, H: 22}},

	LabelSize:   8,
	ValueSize:   11,
	DescSize:    9,
	QtyWideSize: 20,
	BorderW:     0.4,
	CellW:       0.2,
	LotBarcode:  box{X: 28, Y: 52.5, W: 68, H: 7},
	EANBarcode:  box{X: 28, Y: 21, W: 68, H: 10},
	DescPad:     2,
}

// Product label cell captions.
const (
	productLabelCode   = "CÓDIGO"
	productLabelEAN    = "EAN"
	productLabelDesc   = "DESCRIÇÃO"
	productLabelLot    = "LOTE"
	productLabelExpiry = "VENCIMENTO"
	productLabelQty    = "QUANTIDADE"
)

// layoutProduct composes one product label page. images[0] is the EAN
// Code-128; images[1], when present in lot mode, is the lot Code-128.
func (e *Engine) layoutProduct(r *ProductRecord, images []BarcodeImage, mode Mode) Page {
	g := productGeom
	var ops []Op

	// Outer border and centered client header.
	ops = append(ops,
		RectOp{X: g.Border.X, Y: g.Border.Y, W: g.Border.W, H: g.Border.H, LineWidth: g.BorderW},
		TextOp{X: PageWidth / 2, Y: g.HeaderY, Size: g.HeaderSize, Style: StyleBold, Align: AlignCenter, Text: r.Client},
	)

	// CODE pair.
	ops = append(ops, e.pairCells(g.Code, productLabelCode)...)
	ops = append(ops, TextOp{
		X: g.Code.Value.centerX(), Y: g.Code.Value.centerY() + 1.5,
		Size: g.ValueSize, Style: StyleBold, Align: AlignCenter, Text: r.Code,
	})

	// EAN pair: label cell plus the barcode image, no value text.
	ops = append(ops, e.pairCells(g.EAN, productLabelEAN)...)
	ops = append(ops, ImageOp{X: g.EANBarcode.X, Y: g.EANBarcode.Y, W: g.EANBarcode.W, H: g.EANBarcode.H, Image: images[0]})

	// DESCRIPTION pair: truncated, wrapped, vertically centered.
	ops = append(ops, e.pairCells(g.Desc, productLabelDesc)...)
	ops = append(ops, e.descriptionOps(r.Description)...)

	if mode.WithLot() {
		// LOTE pair: lot number on top, its barcode beneath, one tall box.
		ops = append(ops, e.pairCells(g.Lot, productLabelLot)...)
		ops = append(ops, TextOp{
			X: g.Lot.Value.centerX(), Y: g.Lot.Value.Y + 4.5,
			Size: g.ValueSize, Style: StyleBold, Align: AlignCenter, Text: r.Lot,
		})
		if len(images) > 1 {
			ops = append(ops, ImageOp{X: g.LotBarcode.X, Y: g.LotBarcode.Y, W: g.LotBarcode.W, H: g.LotBarcode.H, Image: images[1]})
		}

		// VENCIMENTO / QUANTIDADE split row.
		ops = append(ops, e.pairCells(g.Expiry, productLabelExpiry)...)
		ops = append(ops, TextOp{
			X: g.Expiry.Value.centerX(), Y: g.Expiry.Value.centerY() + 1.5,
			Size: g.ValueSize, Style: StyleBold, Align: AlignCenter, Text: r.Expiry,
		})
		ops = append(ops, e.pairCells(g.Qty, productLabelQty)...)
		ops = append(ops, TextOp{
			X: g.Qty.Value.centerX(), Y: g.Qty.Value.centerY() + 1.5,
			Size: g.ValueSize, Style: StyleBold, Align: AlignCenter, Text: r.Quantity,
		})
	} else {
		// One large QUANTIDADE pair over the lot branch's span, bigger type.
		ops = append(ops, e.pairCells(g.QtyWide, productLabelQty)...)
		ops = append(ops, TextOp{
			X: g.QtyWide.Value.centerX(), Y: g.QtyWide.Value.centerY() + 2.5,
			Size: g.QtyWideSize, Style: StyleBold, Align: AlignCenter, Text: r.Quantity,
		})
	}

	return Page{Ops: ops}
}

// pairCells draws a pair's two cells and the caption centered in the label
// cell.
func (e *Engine) pairCells(p pair, caption string) []Op {
	g := productGeom
	return []Op{
		RectOp{X: p.Label.X, Y: p.Label.Y, W: p.Label.W, H: p.Label.H, LineWidth: g.CellW},
		RectOp{X: p.Value.X, Y: p.Value.Y, W: p.Value.W, H: p.Value.H, LineWidth: g.CellW},
		TextOp{X: p.Label.centerX(), Y: p.Label.centerY() + 1, Size: g.LabelSize, Style: StyleBold, Align: AlignCenter, Text: caption},
	}
}

// descriptionOps truncates, wraps and vertically centers the description in
// its fixed-height box: startY = boxCenterY - (lineCount-1)*lineHeight/2.
func (e *Engine) descriptionOps(description string) []Op {
	g := productGeom
	text := truncateRunes(description, descriptionLimit)

	width := g.Desc.Value.W - 2*g.DescPad
	lines := e.m.SplitText(text, g.DescSize, width)
	lh := e.m.LineHeight(g.DescSize)
	startY := g.Desc.Value.centerY() - float64(len(lines)-1)*lh/2

	ops := make([]Op, 0, len(lines))
	for i, line := range lines {
		ops = append(ops, TextOp{
			X:    g.Desc.Value.X + g.DescPad,
			Y:    startY + float64(i)*lh,
			Size: g.DescSize,
			Text: line,
		})
	}
	return ops
}
