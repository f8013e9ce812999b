package core

import "fmt"

// Master carton template: no outer border, flat ink-saving style. The
// millimeter values below are the template's real schema; they must match
// the pre-printed stock the labels are applied next to, so treat them as
// configuration, not derived numbers.
var masterGeom = struct {
	TitleX, TitleY, TitleSize    float64
	RuleX1, RuleY, RuleX2, RuleW float64

	LabelX, ValueX                float64
	LabelSize, SubSize, ValueSize float64
	MeasValueSize                 float64
	SubOffset, ValueOffset        float64
	RowY                          [4]float64
	BarcodeX, BarcodeW            float64
	EANY, EANH, DUNY, DUNH        float64
	CaptionSize, CaptionGap       float64
	FooterX, FooterY, FooterSize  float64
}{
	TitleX: PageWidth / 2, TitleY: 11, TitleSize: 26,
	RuleX1: 2, RuleY: 14, RuleX2: PageWidth - 2, RuleW: 0.5,

	LabelX: 4, ValueX: 28,
	LabelSize: 10, SubSize: 7, ValueSize: 14,
	MeasValueSize: 12,
	SubOffset:     3.5, ValueOffset: 1,
	RowY:     [4]float64{26, 38, 50, 62},
	BarcodeX: 50, BarcodeW: 45,
	EANY: 18, EANH: 12, DUNY: 45, DUNH: 12,
	CaptionSize: 6, CaptionGap: 2.5,
	FooterX: PageWidth - 4, FooterY: PageHeight - 3, FooterSize: 10,
}

// masterBrand is the right-aligned footer on every master carton label.
const masterBrand = "AGETHERM"

// masterRows describes the four stacked left-column fields: a bold short
// label, a small descriptive sub-label beneath it, and a bold value to the
// right.
var masterRows = [4]struct {
	Label    string
	Sub      string
	ValueFmt string
}{
	{"QTY.:", "Quantidade Total", "%s unid."},
	{"GW.:", "Peso Bruto", "%s kg"},
	{"NW.:", "Peso Líquido", "%s kg"},
	{"MEAS.:", "Dimensões", "%s mm"},
}

// layoutMaster composes one master carton page. images[0] is the EAN-13,
// images[1] the Code-128 DUN.
func layoutMaster(r *MasterRecord, images []BarcodeImage) Page {
	g := masterGeom
	var ops []Op

	// Title: model name centered, with a thin rule beneath.
	ops = append(ops,
		TextOp{X: g.TitleX, Y: g.TitleY, Size: g.TitleSize, Style: StyleBold, Align: AlignCenter, Text: r.Model},
		LineOp{X1: g.RuleX1, Y1: g.RuleY, X2: g.RuleX2, Y2: g.RuleY, Width: g.RuleW},
	)

	// Left column: QTY / GW / NW / MEAS.
	values := [4]string{r.Quantity, r.GrossWeight, r.NetWeight, r.Dimensions}
	for i, row := range masterRows {
		y := g.RowY[i]
		valueSize := g.ValueSize
		if row.Label == "MEAS.:" {
			valueSize = g.MeasValueSize
		}
		ops = append(ops,
			TextOp{X: g.LabelX, Y: y, Size: g.LabelSize, Style: StyleBold, Text: row.Label},
			TextOp{X: g.LabelX, Y: y + g.SubOffset, Size: g.SubSize, Style: StyleRegular, Text: row.Sub},
			TextOp{X: g.ValueX, Y: y + g.ValueOffset, Size: valueSize, Style: StyleBold, Text: fmt.Sprintf(row.ValueFmt, values[i])},
		)
	}

	// Right column: EAN on top, DUN below.
	ops = append(ops, barcodeWithCaption(images[0], g.BarcodeX, g.EANY, g.BarcodeW, g.EANH, g.CaptionSize, g.CaptionGap)...)
	ops = append(ops, barcodeWithCaption(images[1], g.BarcodeX, g.DUNY, g.BarcodeW, g.DUNH, g.CaptionSize, g.CaptionGap)...)

	// Brand footer, right-aligned.
	ops = append(ops, TextOp{X: g.FooterX, Y: g.FooterY, Size: g.FooterSize, Style: StyleBold, Align: AlignRight, Text: masterBrand})

	return Page{Ops: ops}
}

// barcodeWithCaption places a barcode image and, when the spec asks for it,
// the human-readable payload centered beneath the bars.
func barcodeWithCaption(img BarcodeImage, x, y, w, h, captionSize, captionGap float64) []Op {
	ops := []Op{ImageOp{X: x, Y: y, W: w, H: h, Image: img}}
	if img.Spec.IncludeText {
		ops = append(ops, TextOp{
			X:     x + w/2,
			Y:     y + h + captionGap,
			Size:  captionSize,
			Align: AlignCenter,
			Text:  img.Spec.Payload,
		})
	}
	return ops
}
