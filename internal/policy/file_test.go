package policy

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	content := "protect:\n  - internal-tool\n  - Legacy-Lib\nprotect_prefixes:\n  - mycorp-\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(f.Protect, []string{"internal-tool", "Legacy-Lib"}) {
		t.Errorf("Protect = %v", f.Protect)
	}
	if !reflect.DeepEqual(f.ProtectPrefixes, []string{"mycorp-"}) {
		t.Errorf("ProtectPrefixes = %v", f.ProtectPrefixes)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, []byte("protect: {not valid"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
