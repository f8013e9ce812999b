package core

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Document is the paginated output artifact under construction. It doubles
// as the text measurer so layout decisions use the same font metrics the
// final render does.
type Document interface {
	Measurer
	// AddPage appends one page and draws its operations.
	AddPage(p Page) error
	// PageCount returns the number of pages added so far.
	PageCount() int
	// Save finalizes the document to path. Called at most once.
	Save(path string) error
}

// Writer creates output documents.
type Writer interface {
	NewDocument() (Document, error)
}

// Options configure a generation run.
type Options struct {
	// OutputDir is where the finished PDF is written; the filename is
	// fixed per mode.
	OutputDir string

	// AllowPartial saves the document even when some rows failed. The
	// default withholds the save so an operator never prints a silently
	// incomplete stack of labels; the last row error is surfaced instead.
	AllowPartial bool
}

// Generator is the batch orchestrator. It owns the output document for the
// duration of one run; rows are processed strictly in input order and
// barcode renders never overlap, so peak memory is one row's images.
type Generator struct {
	renderer Renderer
	writer   Writer
	opts     Options
	log      *slog.Logger
}

// NewGenerator wires the orchestrator with its collaborators. A nil logger
// falls back to slog.Default().
func NewGenerator(renderer Renderer, writer Writer, opts Options, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.Default()
	}
	return &Generator{renderer: renderer, writer: writer, opts: opts, log: log}
}

// Generate runs one batch: renders each row's barcodes, lays out
// CopyCount identical pages per row, and finalizes the document.
//
// A row that fails barcode rendering or layout contributes zero pages and
// is recorded in Result.Failed; remaining rows still run. Whether a failed
// row withholds the final save is governed by Options.AllowPartial.
func (g *Generator) Generate(req Request) (*Result, error) {
	if len(req.Records) == 0 {
		return nil, ErrNoValidRows
	}

	res := &Result{
		RunID: uuid.NewString(),
		Mode:  req.Mode,
		Rows:  len(req.Records),
	}
	log := g.log.With("run_id", res.RunID, "mode", req.Mode.String())
	start := time.Now()

	doc, err := g.writer.NewDocument()
	if err != nil {
		return res, &DependencyError{Dependency: "document writer", Err: err}
	}
	engine := NewEngine(doc)

	log.Info("generation started", "rows", res.Rows)

	for _, rec := range req.Records {
		page, err := g.composePage(engine, rec, req.Mode)
		if err != nil {
			rowErr := RowError{Key: rec.Key(), Err: err}
			res.Failed = append(res.Failed, rowErr)
			log.Warn("row failed", "row", rec.Key(), "error", err)
			continue
		}

		for i := 0; i < rec.CopyCount(); i++ {
			if err := doc.AddPage(page); err != nil {
				res.Failed = append(res.Failed, RowError{Key: rec.Key(), Err: err})
				log.Warn("row failed", "row", rec.Key(), "error", err)
				break
			}
			res.Pages++
		}
	}
	res.Duration = time.Since(start)

	if len(res.Failed) > 0 && !g.opts.AllowPartial {
		last := res.Failed[len(res.Failed)-1]
		log.Error("save withheld after row failures",
			"failed", len(res.Failed), "pages_discarded", res.Pages)
		return res, last
	}

	if res.Pages == 0 {
		return res, ErrNoPages
	}

	path := filepath.Join(g.opts.OutputDir, req.Mode.OutputName())
	if err := doc.Save(path); err != nil {
		return res, fmt.Errorf("saving document %s: %w", path, err)
	}
	res.Saved = true
	res.OutputPath = path

	log.Info("generation finished",
		"pages", res.Pages,
		"failed", len(res.Failed),
		"output", path,
		"duration", res.Duration,
	)
	return res, nil
}

// composePage renders the row's barcodes sequentially and lays out its
// page. Any error here is row-scoped.
func (g *Generator) composePage(engine *Engine, rec Record, mode Mode) (Page, error) {
	specs := BuildRequests(rec, mode)

	images := make([]BarcodeImage, 0, len(specs))
	for _, spec := range specs {
		img, err := g.renderer.Render(spec)
		if err != nil {
			return Page{}, err
		}
		images = append(images, img)
	}

	return engine.Page(rec, images, mode)
}
