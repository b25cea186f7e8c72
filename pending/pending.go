// Package pending implements the pending-translations file: a JSON object
// mapping source text to its translation, written by extraction, filled in
// by hand and read back by import.
//
//	{
//	  "模型列表": "Model list",
//	  "未知": ""
//	}
package pending

import (
	"github.com/smilit/i18ntools/catalog"
)

// FileName is the default side artifact name, relative to the project root.
const FileName = "translations-remaining.json"

// Set is an ordered, deduplicated mapping of source text to translation.
type Set struct {
	entries *catalog.Catalog
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{entries: catalog.New()}
}

// Load reads a pending-translations file. A missing file yields an error
// matching catalog.ErrNotFound.
func Load(path string) (*Set, error) {
	c, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	return &Set{entries: c}, nil
}

// Save writes the set to path, replacing any existing file.
func (s *Set) Save(path string) error {
	return s.entries.Save(path)
}

// Add records source with an empty translation. Sources already present
// keep their position and translation. It reports whether source was new.
func (s *Set) Add(source string) bool {
	if s.entries.Has(source) {
		return false
	}
	s.entries.SetString(source, "")
	return true
}

// Translation returns the translation of source. ok is false when the
// source is absent or its translation is empty or not a string.
func (s *Set) Translation(source string) (translation string, ok bool) {
	t, isString := s.entries.String(source)
	if !isString || t == "" {
		return "", false
	}
	return t, true
}

// Sources returns the source texts in order.
func (s *Set) Sources() []string {
	return s.entries.Keys()
}

// Len returns the number of sources.
func (s *Set) Len() int {
	return s.entries.Len()
}

// Stats returns (total, translated, untranslated) counts.
func (s *Set) Stats() (total, translated, untranslated int) {
	total = s.Len()
	for _, src := range s.Sources() {
		if _, ok := s.Translation(src); ok {
			translated++
		} else {
			untranslated++
		}
	}
	return
}
