package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gophlox/glox/internal/config"
)

func TestLoadReturnsDefaultsWhenNoFileExists(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Trace || cfg.DumpAST || cfg.DumpEnv || cfg.JSON {
		t.Errorf("expected all-false defaults, got %+v", cfg)
	}
}

func TestLoadParsesConfigFileInCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	contents := "trace: true\ndump_ast: false\njson: true\n"
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Trace || cfg.DumpAST || !cfg.JSON {
		t.Errorf("got %+v", cfg)
	}
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte("trace: [this is not a bool"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := config.Load(); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(cwd)
	})
}
