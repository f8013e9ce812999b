package core

import (
	"errors"
	"path/filepath"
	"testing"
)

type fakeRenderer struct {
	failPayload string
}

func (f fakeRenderer) Render(spec BarcodeSpec) (BarcodeImage, error) {
	if spec.Payload == f.failPayload {
		return BarcodeImage{}, &EncodingError{Symbology: spec.Symbology, Payload: spec.Payload, Err: errors.New("bad payload")}
	}
	return BarcodeImage{Spec: spec, PNG: []byte{0x89}, WidthPx: 100, HeightPx: 40}, nil
}

type fakeDocument struct {
	pages     []Page
	savedPath string
	saveErr   error
}

func (d *fakeDocument) SplitText(text string, size, maxWidth float64) []string {
	return []string{text}
}
func (d *fakeDocument) LineHeight(size float64) float64 { return 4 }
func (d *fakeDocument) AddPage(p Page) error {
	d.pages = append(d.pages, p)
	return nil
}
func (d *fakeDocument) PageCount() int { return len(d.pages) }
func (d *fakeDocument) Save(path string) error {
	if d.saveErr != nil {
		return d.saveErr
	}
	d.savedPath = path
	return nil
}

type fakeWriter struct {
	doc *fakeDocument
}

func (w *fakeWriter) NewDocument() (Document, error) {
	w.doc = &fakeDocument{}
	return w.doc, nil
}

func sampleMaster(model string, copies int) *MasterRecord {
	return &MasterRecord{
		Model:       model,
		Quantity:    "20",
		GrossWeight: "14,40",
		NetWeight:   "13,60",
		Dimensions:  "555 x 365 x 385",
		EAN:         "7898663992717",
		DUN:         "17898663996118",
		Copies:      copies,
	}
}

func TestGenerate_CopiesAndOrder(t *testing.T) {
	w := &fakeWriter{}
	gen := NewGenerator(fakeRenderer{}, w, Options{OutputDir: "out"}, nil)

	req := Request{Mode: ModeMasterCarton, Records: []Record{
		sampleMaster("AGT-SFT1", 2),
		sampleMaster("AGT-SFT2", 1),
	}}

	res, err := gen.Generate(req)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if res.Pages != 3 || len(w.doc.pages) != 3 {
		t.Fatalf("pages = %d (doc %d), want 3", res.Pages, len(w.doc.pages))
	}
	if !res.Saved {
		t.Error("Saved = false, want true")
	}
	if want := filepath.Join("out", "etiquetas_master.pdf"); res.OutputPath != want {
		t.Errorf("OutputPath = %q, want %q", res.OutputPath, want)
	}
	if res.RunID == "" {
		t.Error("RunID is empty")
	}

	// The first row's copies are consecutive and identical.
	firstTitle, _ := findText(w.doc.pages[0].Ops, "AGT-SFT1")
	copyTitle, ok := findText(w.doc.pages[1].Ops, "AGT-SFT1")
	if !ok || copyTitle != firstTitle {
		t.Error("second page is not a copy of the first row")
	}
	if _, ok := findText(w.doc.pages[2].Ops, "AGT-SFT2"); !ok {
		t.Error("third page is not the second row")
	}
}

func TestGenerate_RowFailureWithholdsSave(t *testing.T) {
	w := &fakeWriter{}
	gen := NewGenerator(fakeRenderer{failPayload: "17898663996118"}, w, Options{OutputDir: "out"}, nil)

	bad := sampleMaster("AGT-BAD", 1)
	good := sampleMaster("AGT-SFT1", 1)
	good.DUN = "17890000000000"

	res, err := gen.Generate(Request{Mode: ModeMasterCarton, Records: []Record{bad, good}})
	if err == nil {
		t.Fatal("expected error when a row fails")
	}

	var rowErr RowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("error = %T, want RowError", err)
	}
	if rowErr.Key != "AGT-BAD" {
		t.Errorf("RowError.Key = %q, want AGT-BAD", rowErr.Key)
	}
	var encErr *EncodingError
	if !errors.As(err, &encErr) {
		t.Error("RowError does not wrap the encoding failure")
	}

	if res.Saved || w.doc.savedPath != "" {
		t.Error("document was saved despite a failed row")
	}
	if res.Pages != 1 {
		t.Errorf("Pages = %d, want 1 (the good row still composed)", res.Pages)
	}
	if len(res.Failed) != 1 {
		t.Errorf("Failed = %d entries, want 1", len(res.Failed))
	}
}

func TestGenerate_AllowPartialSaves(t *testing.T) {
	w := &fakeWriter{}
	gen := NewGenerator(fakeRenderer{failPayload: "17898663996118"}, w,
		Options{OutputDir: "out", AllowPartial: true}, nil)

	bad := sampleMaster("AGT-BAD", 1)
	good := sampleMaster("AGT-SFT1", 2)
	good.DUN = "17890000000000"

	res, err := gen.Generate(Request{Mode: ModeMasterCarton, Records: []Record{bad, good}})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if !res.Saved || w.doc.savedPath == "" {
		t.Error("partial output was not saved")
	}
	if res.Pages != 2 {
		t.Errorf("Pages = %d, want 2", res.Pages)
	}
	if len(res.Failed) != 1 {
		t.Errorf("Failed = %d entries, want 1", len(res.Failed))
	}
}

func TestGenerate_AllRowsFail(t *testing.T) {
	w := &fakeWriter{}
	gen := NewGenerator(fakeRenderer{failPayload: "17898663996118"}, w,
		Options{OutputDir: "out", AllowPartial: true}, nil)

	res, err := gen.Generate(Request{Mode: ModeMasterCarton, Records: []Record{
		sampleMaster("AGT-SFT1", 1),
	}})
	if !errors.Is(err, ErrNoPages) {
		t.Fatalf("error = %v, want ErrNoPages", err)
	}
	if res.Saved {
		t.Error("empty document was saved")
	}
}

func TestGenerate_EmptyRequest(t *testing.T) {
	gen := NewGenerator(fakeRenderer{}, &fakeWriter{}, Options{}, nil)

	if _, err := gen.Generate(Request{Mode: ModeMasterCarton}); !errors.Is(err, ErrNoValidRows) {
		t.Errorf("error = %v, want ErrNoValidRows", err)
	}
}
