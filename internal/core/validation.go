package core

// validation.go maps parsed CSV rows to validated, typed records.
//
// Two levels, per the input contract:
//  1. Column schema: checked once against the file's header row. A missing
//     required column rejects the whole file before any row is accepted.
//  2. Row values: checked per record. A row with an empty required value is
//     dropped from the valid set without stopping the batch.

import (
	"strconv"
	"strings"

	"github.com/agetherm/etiquetas/internal/csv"
	"github.com/agetherm/etiquetas/internal/schema"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Specs returns the column schema for a mode.
func Specs(mode Mode) []schema.FieldSpec {
	if mode == ModeMasterCarton {
		return schema.MasterFieldSpecs
	}
	return schema.ProductFieldSpecs(mode.WithLot())
}

// ValidateColumns checks the file's header row against the mode's schema.
// Returns a *SchemaError naming every missing column.
func ValidateColumns(columns []string, mode Mode) error {
	missing := schema.Missing(columns, Specs(mode))
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

// BuildRecords maps parsed rows to validated records in file order.
// Rows failing row-level checks are dropped, not errored; skipped reports
// how many. Returns ErrNoValidRows when nothing survives.
func BuildRecords(rows []csv.Row, mode Mode) (records []Record, skipped int, err error) {
	for _, row := range rows {
		rec, ok := buildRecord(row, mode)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, skipped, ErrNoValidRows
	}
	return records, skipped, nil
}

// buildRecord converts one row, applying the mode's required-value and
// copy-count rules.
func buildRecord(row csv.Row, mode Mode) (Record, bool) {
	copies, ok := parseCopies(row[schema.ColCopies], mode)
	if !ok {
		return nil, false
	}

	if mode == ModeMasterCarton {
		rec := &MasterRecord{
			Model:       row[schema.ColModel],
			Quantity:    row[schema.ColQuantity],
			GrossWeight: row[schema.ColGrossWeight],
			NetWeight:   row[schema.ColNetWeight],
			Dimensions:  row[schema.ColDimensions],
			EAN:         row[schema.ColEAN],
			DUN:         row[schema.ColDUN],
			Copies:      copies,
		}
		if err := validate.Struct(rec); err != nil {
			return nil, false
		}
		return rec, true
	}

	rec := &ProductRecord{
		Client:      row[schema.ColClient],
		Code:        row[schema.ColCode],
		EAN:         row[schema.ColEAN],
		Description: row[schema.ColDescription],
		Lot:         row[schema.ColLot],
		Expiry:      row[schema.ColExpiry],
		Quantity:    row[schema.ColQuantity],
		Copies:      copies,
	}

	// Lot and Expiry carry required tags; outside lot mode they may be blank.
	var err error
	if mode.WithLot() {
		err = validate.Struct(rec)
	} else {
		err = validate.StructExcept(rec, "Lot", "Expiry")
	}
	if err != nil {
		return nil, false
	}
	return rec, true
}

// parseCopies applies the mode's copy-count policy.
//
// The two label families intentionally disagree: master carton clamps a
// missing or unusable QTD_ETIQUETAS to one label, product mode drops the
// row instead. Unifying them would change operator-visible output.
func parseCopies(raw string, mode Mode) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))

	if mode == ModeMasterCarton {
		if err != nil || n < 1 {
			return 1, true
		}
		return n, true
	}

	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
