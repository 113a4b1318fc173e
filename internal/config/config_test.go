package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := Default()
	if *cfg != *def {
		t.Errorf("got %+v, want defaults %+v", cfg, def)
	}
}

func TestLoad_ReadsManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := "[dump]\njobs = 4\ncolor = \"off\"\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dump.Jobs != 4 {
		t.Errorf("jobs: got %d, want 4", cfg.Dump.Jobs)
	}
	if cfg.Dump.Color != "off" {
		t.Errorf("color: got %q, want %q", cfg.Dump.Color, "off")
	}
}

func TestLoad_PartialManifestKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("[dump]\njobs = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dump.Color != "auto" {
		t.Errorf("color default lost: got %q", cfg.Dump.Color)
	}
}

func TestLoad_RejectsBadColorMode(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("[dump]\ncolor = \"sometimes\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); !errors.Is(err, ErrBadColorMode) {
		t.Errorf("got error %v, want ErrBadColorMode", err)
	}
}

func TestLoad_RejectsBrokenTOML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("[dump\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("expected a parse error")
	}
}
