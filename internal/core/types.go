// Package core implements the label generation engine: row validation,
// barcode request building, page layout, and batch orchestration. It has no
// rendering or UI dependencies; barcode and PDF collaborators are injected
// as interfaces.
package core

import "time"

// Page dimensions in millimeters, landscape. These match the physical
// label stock and never vary.
const (
	PageWidth  = 100.0
	PageHeight = 70.0
)

// Mode selects the required-field schema, the barcode payload mapping and
// the layout template for a run. It is chosen once, before the file is read.
type Mode int

const (
	ModeMasterCarton Mode = iota
	ModeProductWithLot
	ModeProductWithoutLot
)

func (m Mode) String() string {
	switch m {
	case ModeMasterCarton:
		return "master"
	case ModeProductWithLot:
		return "product+lot"
	case ModeProductWithoutLot:
		return "product"
	default:
		return "unknown"
	}
}

// IsProduct reports whether m is one of the product label variants.
func (m Mode) IsProduct() bool {
	return m == ModeProductWithLot || m == ModeProductWithoutLot
}

// WithLot reports whether the lot/expiry block is active.
func (m Mode) WithLot() bool { return m == ModeProductWithLot }

// OutputName returns the fixed output filename for the mode.
func (m Mode) OutputName() string {
	if m == ModeMasterCarton {
		return "etiquetas_master.pdf"
	}
	return "etiquetas.pdf"
}

// Symbology is a barcode encoding scheme with its own payload validity rules.
type Symbology int

const (
	EAN13 Symbology = iota
	Code128
)

func (s Symbology) String() string {
	switch s {
	case EAN13:
		return "ean13"
	case Code128:
		return "code128"
	default:
		return "unknown"
	}
}

// BarcodeSpec describes one barcode a label needs.
type BarcodeSpec struct {
	Symbology   Symbology
	Payload     string
	IncludeText bool    // render the payload as human-readable text under the bars
	HeightMM    float64 // target bar height on the page
}

// BarcodeImage is a rendered barcode bitmap plus the spec it encodes.
// Rendering is idempotent: the same spec always yields an equivalent image.
type BarcodeImage struct {
	Spec     BarcodeSpec
	PNG      []byte
	WidthPx  int
	HeightPx int
}

// Record is one validated input row, immutable once built.
type Record interface {
	// Key identifies the row in error messages and logs.
	Key() string
	// CopyCount is the number of identical pages to emit for the row.
	CopyCount() int
}

// MasterRecord is a validated master carton row.
type MasterRecord struct {
	Model       string `validate:"required"`
	Quantity    string `validate:"required"`
	GrossWeight string `validate:"required"`
	NetWeight   string `validate:"required"`
	Dimensions  string `validate:"required"`
	EAN         string `validate:"required"`
	DUN         string `validate:"required"`
	Copies      int
}

func (r *MasterRecord) Key() string    { return r.Model }
func (r *MasterRecord) CopyCount() int { return r.Copies }

// ProductRecord is a validated product label row. Lot and Expiry are
// required only in lot mode; validation excludes them otherwise.
type ProductRecord struct {
	Client      string `validate:"required"`
	Code        string `validate:"required"`
	EAN         string `validate:"required"`
	Description string `validate:"required"`
	Lot         string `validate:"required"`
	Expiry      string `validate:"required"`
	Quantity    string `validate:"required"`
	Copies      int
}

func (r *ProductRecord) Key() string    { return r.Code }
func (r *ProductRecord) CopyCount() int { return r.Copies }

// Request carries one immutable generation run: the mode and the rows that
// survived validation, in file order.
type Request struct {
	Mode    Mode
	Records []Record
}

// RowError records a recoverable, row-scoped generation failure.
type RowError struct {
	Key string // identifying field of the failed row
	Err error
}

func (e RowError) Error() string {
	return "generating label for " + e.Key + ": " + e.Err.Error()
}

func (e RowError) Unwrap() error { return e.Err }

// Result summarizes a generation run.
type Result struct {
	RunID      string
	Mode       Mode
	Rows       int // validated rows handed to the orchestrator
	Pages      int // pages composed into the document
	Failed     []RowError
	Saved      bool
	OutputPath string
	Duration   time.Duration
}
