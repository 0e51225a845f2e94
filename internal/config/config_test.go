package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// isolateConfig keeps the loader away from any real user configuration.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if !reflect.DeepEqual(cfg.PipCommand, []string{"pip"}) {
		t.Errorf("PipCommand = %v", cfg.PipCommand)
	}
	if cfg.BatchSize != 10 {
		t.Errorf("BatchSize = %d, want 10", cfg.BatchSize)
	}
	if cfg.Strict {
		t.Error("Strict should default to false")
	}
	if !reflect.DeepEqual(cfg.ProtectPrefixes, []string{"pyobjc-"}) {
		t.Errorf("ProtectPrefixes = %v", cfg.ProtectPrefixes)
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	isolateConfig(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("missing config file must not be an error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load without file should yield defaults, got %+v", cfg)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := isolateConfig(t)
	path := filepath.Join(dir, "custom.yaml")
	content := "batch_size: 5\nstrict: true\nprotect:\n  - internal-tool\npip_command:\n  - python3\n  - -m\n  - pip\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BatchSize != 5 {
		t.Errorf("BatchSize = %d, want 5", cfg.BatchSize)
	}
	if !cfg.Strict {
		t.Error("Strict = false, want true")
	}
	if !reflect.DeepEqual(cfg.Protect, []string{"internal-tool"}) {
		t.Errorf("Protect = %v", cfg.Protect)
	}
	if !reflect.DeepEqual(cfg.PipCommand, []string{"python3", "-m", "pip"}) {
		t.Errorf("PipCommand = %v", cfg.PipCommand)
	}
	// Untouched keys keep their defaults.
	if !reflect.DeepEqual(cfg.ProtectPrefixes, []string{"pyobjc-"}) {
		t.Errorf("ProtectPrefixes = %v", cfg.ProtectPrefixes)
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	dir := isolateConfig(t)

	if _, err := Load(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Error("explicitly named config file must exist")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	isolateConfig(t)
	t.Setenv("PIPSWEEP_BATCH_SIZE", "3")
	t.Setenv("PIPSWEEP_STRICT", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BatchSize != 3 {
		t.Errorf("BatchSize = %d, want 3 from env", cfg.BatchSize)
	}
	if !cfg.Strict {
		t.Error("Strict = false, want true from env")
	}
}

func TestLoad_InvalidBatchSizeFallsBack(t *testing.T) {
	dir := isolateConfig(t)
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("batch_size: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BatchSize != 10 {
		t.Errorf("BatchSize = %d, want default 10", cfg.BatchSize)
	}
}
