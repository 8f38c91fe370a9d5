package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/calbers/startpage/internal/config"
)

func TestLoad_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	defaults := config.DefaultConfig()
	if cfg.SearchURL != defaults.SearchURL {
		t.Errorf("expected default search url, got %s", cfg.SearchURL)
	}
	if cfg.DragThreshold != defaults.DragThreshold {
		t.Errorf("expected default drag threshold, got %d", cfg.DragThreshold)
	}

	// The file should have been created on first load.
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected config file written, got %v", err)
	}
}

func TestLoad_Existing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	raw := `{"searchUrl":"https://duckduckgo.com/?q=","password":"hunter2","dragThreshold":5}`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	if cfg.SearchURL != "https://duckduckgo.com/?q=" {
		t.Errorf("unexpected search url: %s", cfg.SearchURL)
	}
	if cfg.Password != "hunter2" {
		t.Errorf("unexpected password: %s", cfg.Password)
	}
	if cfg.DragThreshold != 5 {
		t.Errorf("unexpected drag threshold: %d", cfg.DragThreshold)
	}
}

func TestLoad_FillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"password":"hunter2"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	defaults := config.DefaultConfig()
	if cfg.SuggestEndpoint != defaults.SuggestEndpoint {
		t.Errorf("expected default suggest endpoint, got %s", cfg.SuggestEndpoint)
	}
	if cfg.ListenAddr != defaults.ListenAddr {
		t.Errorf("expected default listen addr, got %s", cfg.ListenAddr)
	}
	if cfg.LogLevel != defaults.LogLevel {
		t.Errorf("expected default log level, got %s", cfg.LogLevel)
	}
	if cfg.Password != "hunter2" {
		t.Errorf("expected explicit password kept, got %s", cfg.Password)
	}
}

func TestLoad_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := config.Load(path); err == nil {
		t.Error("expected error for corrupt config")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	want := config.DefaultConfig()
	want.Password = "hunter2"
	want.ListenAddr = "127.0.0.1:9999"

	if err := config.Save(path, &want); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if *got != want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *got, want)
	}
}
