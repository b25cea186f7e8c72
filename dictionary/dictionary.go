// Package dictionary holds the static Chinese to English phrase dictionary
// used by the heuristic translator.
//
// The phrases live in phrases.yaml, embedded into the binary, as an ordered
// list of informal sections:
//
//	- section: "Core Actions"
//	  phrases:
//	    "加载": "Load"
//	    "保存": "Save"
//
// At lookup time the sections form one flat mapping. A phrase defined more
// than once resolves to its last definition; every redefinition is kept as a
// Duplicate so the content can be reviewed.
package dictionary

import (
	_ "embed"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

//go:embed phrases.yaml
var embedded []byte

// Definition is one occurrence of a phrase in the data file.
type Definition struct {
	Section string
	Target  string
	Line    int
}

// Duplicate records a phrase redefined by a later entry.
type Duplicate struct {
	Source   string
	Previous Definition
	Current  Definition
}

// Conflict reports whether the redefinition changed the translation.
func (d Duplicate) Conflict() bool {
	return d.Previous.Target != d.Current.Target
}

// Section is a named group of phrases in file order.
type Section struct {
	Name    string
	Sources []string
}

// Dictionary is a flat phrase lookup table.
type Dictionary struct {
	phrases    map[string]string
	defs       map[string]Definition
	sections   []Section
	duplicates []Duplicate
}

// Default parses the embedded phrase file.
func Default() (*Dictionary, error) {
	d, err := Parse(embedded)
	if err != nil {
		return nil, fmt.Errorf("embedded phrases: %w", err)
	}
	return d, nil
}

// Load reads a phrase file in the embedded format from path.
func Load(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return d, nil
}

// FromMap builds a single-section dictionary, mostly for tests.
func FromMap(phrases map[string]string) *Dictionary {
	d := newDictionary()
	sec := Section{Name: "inline"}
	for src, target := range phrases {
		d.add(&sec, src, target, 0)
	}
	d.sections = append(d.sections, sec)
	return d
}

func newDictionary() *Dictionary {
	return &Dictionary{
		phrases: make(map[string]string),
		defs:    make(map[string]Definition),
	}
}

// Parse parses phrase file data. All format errors are reported together.
func Parse(data []byte) (*Dictionary, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	d := newDictionary()
	if root.Kind == 0 {
		return d, nil
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) != 1 {
		return nil, fmt.Errorf("expected a single YAML document")
	}

	list := root.Content[0]
	if list.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: expected a list of sections", list.Line)
	}

	var errs error
	for _, item := range list.Content {
		errs = multierr.Append(errs, d.parseSection(item))
	}
	if errs != nil {
		return nil, errs
	}
	return d, nil
}

func (d *Dictionary) parseSection(item *yaml.Node) error {
	if item.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: section must be a mapping", item.Line)
	}

	var (
		sec     = Section{}
		phrases *yaml.Node
		errs    error
	)
	for i := 0; i+1 < len(item.Content); i += 2 {
		k, v := item.Content[i], item.Content[i+1]
		switch k.Value {
		case "section":
			sec.Name = v.Value
		case "phrases":
			phrases = v
		default:
			errs = multierr.Append(errs, fmt.Errorf("line %d: unknown section field %q", k.Line, k.Value))
		}
	}

	if phrases == nil {
		return multierr.Append(errs, fmt.Errorf("line %d: section %q has no phrases", item.Line, sec.Name))
	}
	if phrases.Kind != yaml.MappingNode {
		return multierr.Append(errs, fmt.Errorf("line %d: phrases of section %q must be a mapping", phrases.Line, sec.Name))
	}

	for i := 0; i+1 < len(phrases.Content); i += 2 {
		k, v := phrases.Content[i], phrases.Content[i+1]
		if k.Kind != yaml.ScalarNode || k.Value == "" {
			errs = multierr.Append(errs, fmt.Errorf("line %d: phrase must be a non-empty string", k.Line))
			continue
		}
		if v.Kind != yaml.ScalarNode {
			errs = multierr.Append(errs, fmt.Errorf("line %d: translation of %q must be a string", v.Line, k.Value))
			continue
		}
		d.add(&sec, k.Value, v.Value, k.Line)
	}

	d.sections = append(d.sections, sec)
	return errs
}

func (d *Dictionary) add(sec *Section, src, target string, line int) {
	def := Definition{Section: sec.Name, Target: target, Line: line}
	if prev, ok := d.defs[src]; ok {
		d.duplicates = append(d.duplicates, Duplicate{Source: src, Previous: prev, Current: def})
	}
	d.defs[src] = def
	d.phrases[src] = target
	sec.Sources = append(sec.Sources, src)
}

// Lookup returns the translation of an exact phrase.
func (d *Dictionary) Lookup(src string) (string, bool) {
	t, ok := d.phrases[src]
	return t, ok
}

// Has reports whether src is a known phrase.
func (d *Dictionary) Has(src string) bool {
	_, ok := d.phrases[src]
	return ok
}

// Len returns the number of distinct phrases.
func (d *Dictionary) Len() int {
	return len(d.phrases)
}

// Sections returns the sections in file order.
func (d *Dictionary) Sections() []Section {
	return d.sections
}

// Duplicates returns every redefinition in file order.
func (d *Dictionary) Duplicates() []Duplicate {
	return d.duplicates
}

// Conflicts returns the redefinitions that changed a translation.
func (d *Dictionary) Conflicts() []Duplicate {
	var out []Duplicate
	for _, dup := range d.duplicates {
		if dup.Conflict() {
			out = append(out, dup)
		}
	}
	return out
}
