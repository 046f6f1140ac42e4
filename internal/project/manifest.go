// Package project loads the optional asdecl.toml emit manifest.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the emitter looks for in the working directory.
const ManifestName = "asdecl.toml"

// Definitions configures where generated declaration files go.
type Definitions struct {
	WebIDL string `toml:"webidl"`
	TSD    string `toml:"tsd"`
}

// Options overrides module-wide settings recorded in the graph snapshot.
type Options struct {
	// Memory64 forces the addressing width; nil means "use the snapshot's".
	Memory64 *bool `toml:"memory64"`
}

// Manifest is the parsed asdecl.toml.
type Manifest struct {
	Definitions Definitions `toml:"definitions"`
	Options     Options     `toml:"options"`

	// Root is the directory the manifest was loaded from.
	Root string `toml:"-"`
}

// LoadManifest parses asdecl.toml from dir. A missing file is not an error;
// found reports whether one existed.
func LoadManifest(dir string) (m *Manifest, found bool, err error) {
	path := filepath.Join(dir, ManifestName)
	var manifest Manifest
	if _, err := toml.DecodeFile(path, &manifest); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	manifest.Root = dir
	return &manifest, true, nil
}
