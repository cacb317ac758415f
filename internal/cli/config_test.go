package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsUsableStandalone(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Heuristic == "" || cfg.Preprocessor == "" || cfg.ObjectiveTag == "" {
		t.Fatalf("DefaultConfig left required fields empty: %+v", cfg)
	}
	if cfg.TraceEvery <= 0 {
		t.Fatalf("DefaultConfig.TraceEvery must be positive, got %d", cfg.TraceEvery)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layerheur.toml")
	body := `
heuristic = "mcn"
max_iterations = 500
pareto_pair = "bottleneck-total"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Heuristic != "mcn" {
		t.Fatalf("Heuristic = %q, want mcn", cfg.Heuristic)
	}
	if cfg.MaxIterations != 500 {
		t.Fatalf("MaxIterations = %d, want 500", cfg.MaxIterations)
	}
	if cfg.ParetoPair != "bottleneck-total" {
		t.Fatalf("ParetoPair = %q, want bottleneck-total", cfg.ParetoPair)
	}
	// Fields absent from the file keep their DefaultConfig value.
	if cfg.ObjectiveTag != DefaultConfig().ObjectiveTag {
		t.Fatalf("ObjectiveTag = %q, want default %q", cfg.ObjectiveTag, DefaultConfig().ObjectiveTag)
	}
}

func TestLoadConfigMissingFileErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected an error loading a nonexistent config file")
	}
}
