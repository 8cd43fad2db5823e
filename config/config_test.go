package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateClampsBadValues(t *testing.T) {
	c := &Config{
		WindowWidth:   -1,
		WindowHeight:  0,
		CornerPadding: -5,
		PreviewFPS:    500,
		RetryDelayMS:  0,
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if c.WindowWidth != 320 || c.WindowHeight != 240 {
		t.Fatalf("window size not clamped: %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.CornerPadding != 20 {
		t.Fatalf("padding not clamped: %d", c.CornerPadding)
	}
	if c.PreviewFPS != 24 {
		t.Fatalf("fps not clamped: %d", c.PreviewFPS)
	}
	if c.RetryDelayMS != 1000 {
		t.Fatalf("retry delay not clamped: %d", c.RetryDelayMS)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def := DefaultConfig()
	if *cfg != *def {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campip.json")
	cfg := DefaultConfig()
	cfg.PreviewFPS = 30
	cfg.CornerPadding = 12
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.PreviewFPS != 30 || got.CornerPadding != 12 {
		t.Fatalf("round trip lost values: %+v", got)
	}
}

func TestLoadBadJSONReturnsDefaultsAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if cfg == nil || cfg.WindowWidth != 320 {
		t.Fatalf("expected defaults on error, got %+v", cfg)
	}
}
