// Command etiquetas generates printable 100x70 mm label PDFs from
// semicolon-delimited CSV files.
//
// Usage:
//
//	etiquetas --mode master --input caixas.csv
//	etiquetas --mode product --with-lot --input produtos.csv --out ./labels
//	etiquetas --mode product --template modelo.csv
//
// Configuration comes from the environment (optionally a .env file); flags
// override it per run. On failure the process prints one operator-friendly
// line to stderr and exits nonzero; details go to the structured log.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/agetherm/etiquetas/internal/barcode"
	"github.com/agetherm/etiquetas/internal/config"
	"github.com/agetherm/etiquetas/internal/core"
	"github.com/agetherm/etiquetas/internal/csv"
	"github.com/agetherm/etiquetas/internal/logging"
	"github.com/agetherm/etiquetas/internal/pdf"
)

func main() {
	// A missing .env is fine; explicit environment still applies.
	_ = godotenv.Overload()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Debug("configuration loaded", "config", cfg.String())

	var (
		modeFlag     = pflag.String("mode", "", "label mode: master or product")
		withLot      = pflag.Bool("with-lot", false, "include the lot/expiry block (product mode)")
		input        = pflag.String("input", "", "input CSV file (semicolon-delimited)")
		outDir       = pflag.String("out", cfg.Output.Dir, "output directory for the PDF")
		allowPartial = pflag.Bool("allow-partial", cfg.Generate.AllowPartial, "save the PDF even when some rows failed")
		templatePath = pflag.String("template", "", "write the mode's example CSV to this path and exit")
	)
	pflag.Parse()

	mode, err := parseMode(*modeFlag, *withLot)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		pflag.Usage()
		os.Exit(2)
	}

	if *templatePath != "" {
		path, err := writeTemplate(*templatePath, mode)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("template written to %s\n", path)
		return
	}

	if err := run(cfg, mode, *input, *outDir, *allowPartial); err != nil {
		slog.Error("generation failed", "error", err)
		fmt.Fprintln(os.Stderr, core.FormatUserError(err))
		os.Exit(1)
	}
}

// parseMode maps the flag pair to a mode. The lot switch only exists for
// product labels.
func parseMode(mode string, withLot bool) (core.Mode, error) {
	switch strings.ToLower(mode) {
	case "master":
		if withLot {
			return 0, fmt.Errorf("--with-lot does not apply to master mode")
		}
		return core.ModeMasterCarton, nil
	case "product":
		if withLot {
			return core.ModeProductWithLot, nil
		}
		return core.ModeProductWithoutLot, nil
	case "":
		return 0, fmt.Errorf("--mode is required")
	default:
		return 0, fmt.Errorf("unknown mode %q: use master or product", mode)
	}
}

// writeTemplate writes the mode's example CSV. A directory path gets the
// mode's default filename appended.
func writeTemplate(path string, mode core.Mode) (string, error) {
	content, name := csv.ProductTemplate(), csv.ProductTemplateName
	if mode == core.ModeMasterCarton {
		content, name = csv.MasterTemplate(), csv.MasterTemplateName
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, name)
	}
	return path, csv.WriteTemplate(path, content)
}

// run executes one generation batch end to end.
func run(cfg *config.Config, mode core.Mode, input, outDir string, allowPartial bool) error {
	if input == "" {
		return fmt.Errorf("--input is required")
	}
	if !strings.EqualFold(filepath.Ext(input), ".csv") {
		return fmt.Errorf("input %s: only .csv files are supported", input)
	}

	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	log := logging.WithFields("input", filepath.Base(input))

	file, err := csv.Parse(f)
	if err != nil {
		return err
	}
	for _, rowErr := range file.RowErrors {
		log.Warn("malformed row skipped", "line", rowErr.Line, "error", rowErr.Err)
	}

	if err := core.ValidateColumns(file.Columns, mode); err != nil {
		return err
	}

	records, skipped, err := core.BuildRecords(file.Rows, mode)
	if err != nil {
		return err
	}
	if skipped > 0 {
		log.Warn("rows dropped by validation", "skipped", skipped, "accepted", len(records))
	}

	gen := core.NewGenerator(
		barcode.New(cfg.Generate.BarcodeScale),
		pdf.NewWriter(),
		core.Options{OutputDir: outDir, AllowPartial: allowPartial},
		log,
	)

	res, err := gen.Generate(core.Request{Mode: mode, Records: records})
	if err != nil {
		return err
	}

	fmt.Printf("%d labels written to %s (%d rows, %s)\n",
		res.Pages, res.OutputPath, res.Rows, res.Duration.Round(time.Millisecond))
	return nil
}
