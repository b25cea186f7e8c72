// Package lockfile implements i18ntools.lock, a record of catalog entries
// whose current value was produced by the heuristic translator rather than
// by a human. Each record stores the MD5 checksum of the value the
// translator wrote, so status can tell untouched machine output from
// entries edited by hand since.
//
// The lock file is opt-in; see the lock_file setting in .i18ntools.yaml.
package lockfile

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the conventional lock file name.
const FileName = "i18ntools.lock"

// Version is the lock file format version.
const Version = 1

// ---------------------------------------------------------------------------
// Types
// ---------------------------------------------------------------------------

// LockFile represents the i18ntools.lock file structure.
type LockFile struct {
	Version int                          `yaml:"version"`
	Entries map[string]map[string]string `yaml:"entries"` // catalog -> key -> md5(value)

	path string
}

// New returns an empty lock file bound to path.
func New(path string) *LockFile {
	return &LockFile{
		Version: Version,
		Entries: make(map[string]map[string]string),
		path:    path,
	}
}

// ---------------------------------------------------------------------------
// Loading and saving
// ---------------------------------------------------------------------------

// Load reads the lock file at path.
// Returns an empty lock file if the file doesn't exist.
func Load(path string) (*LockFile, error) {
	lf := New(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return lf, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, lf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if lf.Version > Version {
		return nil, fmt.Errorf("%s: unsupported lock file version %d", path, lf.Version)
	}
	lf.path = path

	if lf.Entries == nil {
		lf.Entries = make(map[string]map[string]string)
	}

	return lf, nil
}

// Save writes the lock file to disk.
func (lf *LockFile) Save() error {
	if lf.path == "" {
		return fmt.Errorf("lock file path not set")
	}

	data, err := yaml.Marshal(lf)
	if err != nil {
		return fmt.Errorf("marshaling lock file: %w", err)
	}

	if err := os.WriteFile(lf.path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", lf.path, err)
	}

	return nil
}

// Path returns the lock file path.
func (lf *LockFile) Path() string {
	return lf.path
}

// ---------------------------------------------------------------------------
// Records
// ---------------------------------------------------------------------------

// Hash computes the MD5 hex digest of a string.
func Hash(s string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(s)))
}

// TargetKey builds the lock key of a catalog file: its path relative to
// root, with forward slashes. Paths outside root are kept as given.
func TargetKey(root, catalogPath string) string {
	if rel, err := filepath.Rel(root, catalogPath); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(catalogPath)
}

// Record notes that the translator wrote value to key in target.
func (lf *LockFile) Record(target, key, value string) {
	if lf.Entries[target] == nil {
		lf.Entries[target] = make(map[string]string)
	}
	lf.Entries[target][key] = Hash(value)
}

// Recorded reports whether value is exactly what the translator wrote to
// key. A false result for a key that Has a record means it was edited.
func (lf *LockFile) Recorded(target, key, value string) bool {
	h, ok := lf.Entries[target][key]
	return ok && h == Hash(value)
}

// Keys returns the recorded keys of target, sorted.
func (lf *LockFile) Keys(target string) []string {
	keys := make([]string, 0, len(lf.Entries[target]))
	for k := range lf.Entries[target] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether key has any record.
func (lf *LockFile) Has(target, key string) bool {
	_, ok := lf.Entries[target][key]
	return ok
}

// Forget drops the record of key, e.g. after a human translation replaced
// the machine one.
func (lf *LockFile) Forget(target, key string) {
	keys := lf.Entries[target]
	if keys == nil {
		return
	}
	delete(keys, key)
	if len(keys) == 0 {
		delete(lf.Entries, target)
	}
}

// Clean removes records of keys that are no longer in the catalog.
func (lf *LockFile) Clean(target string, currentKeys []string) {
	existing := lf.Entries[target]
	if existing == nil {
		return
	}

	valid := make(map[string]bool, len(currentKeys))
	for _, k := range currentKeys {
		valid[k] = true
	}

	for k := range existing {
		if !valid[k] {
			delete(existing, k)
		}
	}
	if len(existing) == 0 {
		delete(lf.Entries, target)
	}
}

// ---------------------------------------------------------------------------
// Stats
// ---------------------------------------------------------------------------

// Count returns the number of records for target.
func (lf *LockFile) Count(target string) int {
	return len(lf.Entries[target])
}

// Stats returns the number of targets and total records.
func (lf *LockFile) Stats() (targets, keys int) {
	targets = len(lf.Entries)
	for _, m := range lf.Entries {
		keys += len(m)
	}
	return
}

// Targets returns sorted list of target keys.
func (lf *LockFile) Targets() []string {
	targets := make([]string, 0, len(lf.Entries))
	for t := range lf.Entries {
		targets = append(targets, t)
	}
	sort.Strings(targets)
	return targets
}

// Summary returns a human-readable summary string.
func (lf *LockFile) Summary() string {
	targets, keys := lf.Stats()
	if targets == 0 {
		return "empty"
	}

	var parts []string
	for _, t := range lf.Targets() {
		parts = append(parts, fmt.Sprintf("%s: %d keys", t, lf.Count(t)))
	}
	return fmt.Sprintf("%d targets, %d keys (%s)", targets, keys, strings.Join(parts, ", "))
}
