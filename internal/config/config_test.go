package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("OUTPUT_DIR")
	os.Unsetenv("GENERATE_ALLOW_PARTIAL")
	os.Unsetenv("BARCODE_SCALE")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("LOG_FORMAT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output.Dir != "." {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, ".")
	}
	if cfg.Generate.AllowPartial {
		t.Error("Generate.AllowPartial = true, want false")
	}
	if cfg.Generate.BarcodeScale != 3 {
		t.Errorf("Generate.BarcodeScale = %d, want %d", cfg.Generate.BarcodeScale, 3)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "text")
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	os.Setenv("OUTPUT_DIR", "/tmp/labels")
	os.Setenv("GENERATE_ALLOW_PARTIAL", "true")
	os.Setenv("LOG_LEVEL", "debug")
	defer func() {
		os.Unsetenv("OUTPUT_DIR")
		os.Unsetenv("GENERATE_ALLOW_PARTIAL")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output.Dir != "/tmp/labels" {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "/tmp/labels")
	}
	if !cfg.Generate.AllowPartial {
		t.Error("Generate.AllowPartial = false, want true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_InvalidScale(t *testing.T) {
	os.Setenv("BARCODE_SCALE", "0")
	defer os.Unsetenv("BARCODE_SCALE")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for BARCODE_SCALE=0")
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	os.Setenv("LOG_LEVEL", "verbose")
	defer os.Unsetenv("LOG_LEVEL")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for LOG_LEVEL=verbose")
	}
}

func TestLoad_NonBooleanPartial(t *testing.T) {
	os.Setenv("GENERATE_ALLOW_PARTIAL", "maybe")
	defer os.Unsetenv("GENERATE_ALLOW_PARTIAL")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for GENERATE_ALLOW_PARTIAL=maybe")
	}
}
