package barcode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/agetherm/etiquetas/internal/core"
)

func TestRender_EAN13(t *testing.T) {
	r := New(3)

	img, err := r.Render(core.BarcodeSpec{Symbology: core.EAN13, Payload: "7898663992717", HeightMM: 12})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if len(img.PNG) == 0 {
		t.Error("Render() returned empty PNG")
	}
	if img.Spec.Payload != "7898663992717" {
		t.Errorf("Spec.Payload = %q, want %q", img.Spec.Payload, "7898663992717")
	}
	if img.WidthPx <= 0 || img.HeightPx <= 0 {
		t.Errorf("image dimensions %dx%d, want positive", img.WidthPx, img.HeightPx)
	}
}

func TestRender_Code128(t *testing.T) {
	r := New(3)

	img, err := r.Render(core.BarcodeSpec{Symbology: core.Code128, Payload: "17898663996118", HeightMM: 12})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(img.PNG) == 0 {
		t.Error("Render() returned empty PNG")
	}
}

func TestRender_InvalidEAN(t *testing.T) {
	r := New(3)

	tests := []string{
		"ABC",           // not numeric
		"123",           // wrong length
		"1234567890123", // bad check digit
	}
	for _, payload := range tests {
		_, err := r.Render(core.BarcodeSpec{Symbology: core.EAN13, Payload: payload, HeightMM: 12})
		if err == nil {
			t.Errorf("Render(%q) expected error", payload)
			continue
		}
		var encErr *core.EncodingError
		if !errors.As(err, &encErr) {
			t.Errorf("Render(%q) error = %T, want *core.EncodingError", payload, err)
		}
	}
}

func TestRender_EmptyCode128(t *testing.T) {
	r := New(3)

	_, err := r.Render(core.BarcodeSpec{Symbology: core.Code128, Payload: "", HeightMM: 12})
	if err == nil {
		t.Fatal("Render(\"\") expected error")
	}
	var encErr *core.EncodingError
	if !errors.As(err, &encErr) {
		t.Errorf("error = %T, want *core.EncodingError", err)
	}
}

func TestRender_Deterministic(t *testing.T) {
	r := New(3)
	spec := core.BarcodeSpec{Symbology: core.Code128, Payload: "GCRMK2408012", HeightMM: 7}

	a, err := r.Render(spec)
	if err != nil {
		t.Fatalf("first Render() error = %v", err)
	}
	b, err := r.Render(spec)
	if err != nil {
		t.Fatalf("second Render() error = %v", err)
	}

	if !bytes.Equal(a.PNG, b.PNG) {
		t.Error("identical specs produced different images")
	}
}
