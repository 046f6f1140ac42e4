package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	content := `[definitions]
webidl = "out/module.webidl"
tsd = "out/module.d.ts"

[options]
memory64 = true
`
	if err := os.WriteFile(filepath.Join(dir, ManifestName), []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	m, found, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest() error: %v", err)
	}
	if !found {
		t.Fatalf("LoadManifest() found = false, want true")
	}
	if m.Definitions.WebIDL != "out/module.webidl" {
		t.Errorf("Definitions.WebIDL = %q", m.Definitions.WebIDL)
	}
	if m.Definitions.TSD != "out/module.d.ts" {
		t.Errorf("Definitions.TSD = %q", m.Definitions.TSD)
	}
	if m.Options.Memory64 == nil || !*m.Options.Memory64 {
		t.Errorf("Options.Memory64 = %v, want true", m.Options.Memory64)
	}
	if m.Root != dir {
		t.Errorf("Root = %q, want %q", m.Root, dir)
	}
}

func TestLoadManifestAbsent(t *testing.T) {
	m, found, err := LoadManifest(t.TempDir())
	if err != nil {
		t.Fatalf("LoadManifest() error: %v", err)
	}
	if found || m != nil {
		t.Errorf("LoadManifest() = (%+v, %v), want (nil, false)", m, found)
	}
}

func TestLoadManifestUnsetMemory64(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ManifestName), []byte("[definitions]\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	m, found, err := LoadManifest(dir)
	if err != nil || !found {
		t.Fatalf("LoadManifest() = (%v, %v)", found, err)
	}
	if m.Options.Memory64 != nil {
		t.Errorf("Options.Memory64 = %v, want nil when unset", *m.Options.Memory64)
	}
}
