package core

// Renderer renders a barcode spec into a bitmap image. Implementations must
// return an *EncodingError (possibly wrapped) when the payload is invalid
// for the symbology, so the orchestrator can fail the row instead of the
// batch.
type Renderer interface {
	Render(spec BarcodeSpec) (BarcodeImage, error)
}

// Barcode target heights in millimeters, per template.
const (
	masterBarcodeHeight = 12.0
	productEANHeight    = 10.0
	productLotHeight    = 7.0
)

// BuildRequests returns the ordered barcode specs a record needs.
//
// Master carton labels carry an EAN-13 on top and a Code-128 DUN below,
// both with human-readable text. Product labels carry a single Code-128
// from the EAN column, plus a Code-128 of the lot number when the lot
// block is active and the row has one; neither shows text.
func BuildRequests(rec Record, mode Mode) []BarcodeSpec {
	switch r := rec.(type) {
	case *MasterRecord:
		return []BarcodeSpec{
			{Symbology: EAN13, Payload: r.EAN, IncludeText: true, HeightMM: masterBarcodeHeight},
			{Symbology: Code128, Payload: r.DUN, IncludeText: true, HeightMM: masterBarcodeHeight},
		}
	case *ProductRecord:
		specs := []BarcodeSpec{
			{Symbology: Code128, Payload: r.EAN, HeightMM: productEANHeight},
		}
		if mode.WithLot() && r.Lot != "" {
			specs = append(specs, BarcodeSpec{Symbology: Code128, Payload: r.Lot, HeightMM: productLotHeight})
		}
		return specs
	default:
		return nil
	}
}
