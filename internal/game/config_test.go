package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("empty path: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Fatalf("default window %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Audio.Enabled || cfg.Audio.MasterVolume != 0.8 {
		t.Fatalf("default audio %+v", cfg.Audio)
	}
	if cfg.SnapshotDir != "levels" {
		t.Fatalf("default snapshot dir %q", cfg.SnapshotDir)
	}
}

func TestLoadConfig_MissingFileFallsBack(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("missing file returned %+v", cfg)
	}
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	body := "window:\n  width: 1024\n  height: 768\nseed: 42\naudio:\n  master_volume: 0.5\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Fatalf("window %dx%d, want 1024x768", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Seed != 42 {
		t.Fatalf("seed %d, want 42", cfg.Seed)
	}
	if cfg.Audio.MasterVolume != 0.5 {
		t.Fatalf("volume %.2f, want 0.5", cfg.Audio.MasterVolume)
	}
	// Untouched keys keep their defaults.
	if cfg.SnapshotDir != "levels" {
		t.Fatalf("snapshot dir %q, want default", cfg.SnapshotDir)
	}
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"tiny window", "window:\n  width: 100\n  height: 100\n"},
		{"volume above one", "audio:\n  master_volume: 1.5\n"},
		{"malformed yaml", "window: [not a map\n"},
	}
	for _, tc := range cases {
		path := filepath.Join(t.TempDir(), "cfg.yaml")
		if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Fatalf("%s: expected an error", tc.name)
		}
	}
}
