// Package config loads the optional .i18ntools.yaml configuration file.
//
// The file is optional. When it is absent every tool runs with the
// built-in defaults, so the standalone executables work with no
// arguments from the project root.
//
// Example:
//
//	catalog: src/i18n/patches/en.json
//	pending: translations-remaining.json
//	dictionary: tools/phrases.yaml   # empty: built-in dictionary
//	lock_file: i18ntools.lock        # empty: no lock file
//	progress_every: 100
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the project root.
const FileName = ".i18ntools.yaml"

// Defaults.
const (
	DefaultCatalog       = "src/i18n/patches/en.json"
	DefaultPending       = "translations-remaining.json"
	DefaultProgressEvery = 100
)

// ---------------------------------------------------------------------------
// YAML schema
// ---------------------------------------------------------------------------

// File is the top-level .i18ntools.yaml structure.
type File struct {
	// Catalog is the JSON catalog relative to the project root.
	Catalog string `yaml:"catalog,omitempty"`
	// Pending is the side artifact written by extract and read by import.
	Pending string `yaml:"pending,omitempty"`
	// Dictionary is an optional phrase file replacing the built-in one.
	Dictionary string `yaml:"dictionary,omitempty"`
	// LockFile enables recording of machine-translated keys.
	LockFile string `yaml:"lock_file,omitempty"`
	// ProgressEvery is the progress reporting interval of translate.
	ProgressEvery int `yaml:"progress_every,omitempty"`

	path string
}

// Default returns the configuration used when no file exists.
func Default() *File {
	return &File{
		Catalog:       DefaultCatalog,
		Pending:       DefaultPending,
		ProgressEvery: DefaultProgressEvery,
	}
}

// Path returns the file the configuration was read from, or "" for defaults.
func (f *File) Path() string {
	return f.path
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// Load loads and validates .i18ntools.yaml from rootDir. A missing file
// yields Default().
func Load(rootDir string) (*File, error) {
	path := filepath.Join(rootDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.path = path
	return f, nil
}

// Parse decodes configuration data, applies defaults and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing: %w", err)
	}

	if f.Catalog == "" {
		f.Catalog = DefaultCatalog
	}
	if f.Pending == "" {
		f.Pending = DefaultPending
	}
	if f.ProgressEvery == 0 {
		f.ProgressEvery = DefaultProgressEvery
	}

	if f.ProgressEvery < 0 {
		return nil, fmt.Errorf("progress_every must be positive, got %d", f.ProgressEvery)
	}

	return &f, nil
}

// ---------------------------------------------------------------------------
// Resolving paths
// ---------------------------------------------------------------------------

// Paths holds the configuration with absolute paths.
type Paths struct {
	Root          string
	Catalog       string
	Pending       string
	Dictionary    string // "" means built-in
	LockFile      string // "" means disabled
	ProgressEvery int
}

// Resolve makes every relative path absolute against projectRoot and
// rejects settings where two outputs would overwrite each other. Call it
// after applying command-line overrides.
func (f *File) Resolve(projectRoot string) (*Paths, error) {
	absRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, err
	}

	p := &Paths{
		Root:          absRoot,
		Catalog:       join(absRoot, f.Catalog),
		Pending:       join(absRoot, f.Pending),
		Dictionary:    join(absRoot, f.Dictionary),
		LockFile:      join(absRoot, f.LockFile),
		ProgressEvery: f.ProgressEvery,
	}

	if p.Catalog == p.Pending {
		return nil, fmt.Errorf("catalog and pending point to the same file %s", p.Catalog)
	}
	if p.LockFile != "" && (p.LockFile == p.Catalog || p.LockFile == p.Pending) {
		return nil, fmt.Errorf("lock_file points to the catalog or pending file %s", p.LockFile)
	}
	return p, nil
}

func join(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
