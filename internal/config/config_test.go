package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.ToleranceMS != DefaultToleranceMS {
		t.Errorf("tolerance = %d, want %d", cfg.ToleranceMS, DefaultToleranceMS)
	}
	if cfg.PreviewLines != DefaultPreviewLines {
		t.Errorf("preview lines = %d, want %d", cfg.PreviewLines, DefaultPreviewLines)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `media_dir = "/mnt/media"
tolerance_ms = 500
preview_lines = 20
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MediaDir != "/mnt/media" {
		t.Errorf("media_dir = %q", cfg.MediaDir)
	}
	if cfg.ToleranceMS != 500 {
		t.Errorf("tolerance = %d, want 500", cfg.ToleranceMS)
	}
	if cfg.PreviewLines != 20 {
		t.Errorf("preview lines = %d, want 20", cfg.PreviewLines)
	}
}

func TestLoadNormalizesZeroValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("tolerance_ms = 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ToleranceMS != DefaultToleranceMS {
		t.Errorf("zero tolerance should normalize to default, got %d", cfg.ToleranceMS)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("tolerance_ms = {"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("malformed config should error, not fall back silently")
	}
}
