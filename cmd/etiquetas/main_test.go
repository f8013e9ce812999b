package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agetherm/etiquetas/internal/core"
	"github.com/agetherm/etiquetas/internal/csv"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		mode    string
		withLot bool
		want    core.Mode
		wantErr bool
	}{
		{"master", false, core.ModeMasterCarton, false},
		{"MASTER", false, core.ModeMasterCarton, false},
		{"master", true, 0, true},
		{"product", false, core.ModeProductWithoutLot, false},
		{"product", true, core.ModeProductWithLot, false},
		{"", false, 0, true},
		{"labels", false, 0, true},
	}

	for _, tt := range tests {
		got, err := parseMode(tt.mode, tt.withLot)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseMode(%q, %v): expected error", tt.mode, tt.withLot)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseMode(%q, %v): %v", tt.mode, tt.withLot, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseMode(%q, %v) = %v, want %v", tt.mode, tt.withLot, got, tt.want)
		}
	}
}

func TestWriteTemplate_DirectoryGetsDefaultName(t *testing.T) {
	dir := t.TempDir()

	path, err := writeTemplate(dir, core.ModeMasterCarton)
	if err != nil {
		t.Fatalf("writeTemplate() error = %v", err)
	}
	if want := filepath.Join(dir, csv.MasterTemplateName); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading template: %v", err)
	}
	if !strings.HasPrefix(string(data), "\uFEFF") {
		t.Error("template is not BOM-prefixed")
	}
	if !strings.Contains(string(data), "MODELO;QUANTIDADE") {
		t.Error("template header missing")
	}
}
