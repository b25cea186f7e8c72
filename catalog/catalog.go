// Package catalog implements reading and writing of flat JSON string
// catalogs such as src/i18n/patches/en.json.
//
// The expected file format is a single JSON object:
//
//	{
//	  "settings.title": "Settings",
//	  "settings.proxy": "[TODO: Translate] 代理设置"
//	}
//
// Key order is preserved at every nesting level and non-ASCII text is
// written literally, so an unmodified catalog survives a load/save cycle.
// Values other than strings are carried through untouched.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	json "github.com/goccy/go-json"
)

// Load errors. They are wrapped with the offending path; test with errors.Is.
var (
	ErrNotFound = errors.New("file not found")
	ErrParse    = errors.New("invalid JSON object")
	ErrEncoding = errors.New("content is not valid UTF-8")
)

// indentUnit matches the indentation of the catalogs in the repository.
const indentUnit = "  "

// Catalog is an ordered JSON object. Values are string, json.Number, bool,
// nil, []any or a nested *Catalog.
type Catalog struct {
	keys   []string
	values map[string]any
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{values: make(map[string]any)}
}

// Load reads and parses the catalog at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse parses catalog JSON data. The root must be an object.
func Parse(data []byte) (*Catalog, error) {
	if !utf8.Valid(data) {
		return nil, ErrEncoding
	}
	if !json.Valid(data) {
		return nil, ErrParse
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	t, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if delim, ok := t.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: expected {, got %v", ErrParse, t)
	}

	c, err := readObject(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if t, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return nil, fmt.Errorf("%w: unexpected %v after root object", ErrParse, t)
	}

	return c, nil
}

// readObject reads object members up to and including the closing brace.
// The opening brace has already been consumed.
func readObject(dec *json.Decoder) (*Catalog, error) {
	c := New()
	for {
		kt, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := kt.(json.Delim); ok && delim == '}' {
			return c, nil
		}
		key, ok := kt.(string)
		if !ok {
			return nil, fmt.Errorf("expected string key, got %v", kt)
		}

		vt, err := dec.Token()
		if err != nil {
			return nil, err
		}
		value, err := readValue(dec, vt)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		// A repeated key keeps its first position and its last value.
		c.Set(key, value)
	}
}

func readArray(dec *json.Decoder) ([]any, error) {
	items := []any{}
	for {
		t, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := t.(json.Delim); ok && delim == ']' {
			return items, nil
		}
		v, err := readValue(dec, t)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
}

func readValue(dec *json.Decoder, t json.Token) (any, error) {
	switch v := t.(type) {
	case json.Delim:
		switch v {
		case '{':
			return readObject(dec)
		case '[':
			return readArray(dec)
		}
		return nil, fmt.Errorf("unexpected %v", v)
	case string:
		return v, nil
	case bool:
		return v, nil
	case json.Number:
		return v, nil
	case float64:
		return json.Number(strconv.FormatFloat(v, 'g', -1, 64)), nil
	case nil:
		return nil, nil
	}
	return nil, fmt.Errorf("unexpected token %v (%T)", t, t)
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

// Keys returns the keys in their original order.
func (c *Catalog) Keys() []string {
	return c.keys
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.keys)
}

// Has reports whether key is present.
func (c *Catalog) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Get returns the raw value stored under key.
func (c *Catalog) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// String returns the value under key if it is a string.
func (c *Catalog) String(key string) (string, bool) {
	s, ok := c.values[key].(string)
	return s, ok
}

// Set stores value under key. New keys are appended; existing keys keep
// their position.
func (c *Catalog) Set(key string, value any) {
	if c.values == nil {
		c.values = make(map[string]any)
	}
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// SetString is Set for string values.
func (c *Catalog) SetString(key, value string) {
	c.Set(key, value)
}

// StringEntries returns the number of entries holding a string value.
func (c *Catalog) StringEntries() int {
	n := 0
	for _, k := range c.keys {
		if _, ok := c.values[k].(string); ok {
			n++
		}
	}
	return n
}

// ---------------------------------------------------------------------------
// Writing
// ---------------------------------------------------------------------------

// Save writes the catalog to path, replacing the file in full.
func (c *Catalog) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	return WriteFile(path, data)
}

// Marshal produces the JSON document with two-space indentation and
// literal non-ASCII characters.
func (c *Catalog) Marshal() ([]byte, error) {
	var b strings.Builder
	if err := writeObject(&b, c, 0); err != nil {
		return nil, err
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func writeObject(b *strings.Builder, c *Catalog, depth int) error {
	if c.Len() == 0 {
		b.WriteString("{}")
		return nil
	}

	b.WriteString("{\n")
	inner := strings.Repeat(indentUnit, depth+1)
	for i, k := range c.keys {
		b.WriteString(inner)
		b.WriteString(jsonString(k))
		b.WriteString(": ")
		if err := writeValue(b, c.values[k], depth+1); err != nil {
			return fmt.Errorf("key %q: %w", k, err)
		}
		if i < len(c.keys)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat(indentUnit, depth))
	b.WriteByte('}')
	return nil
}

func writeArray(b *strings.Builder, items []any, depth int) error {
	if len(items) == 0 {
		b.WriteString("[]")
		return nil
	}

	b.WriteString("[\n")
	inner := strings.Repeat(indentUnit, depth+1)
	for i, v := range items {
		b.WriteString(inner)
		if err := writeValue(b, v, depth+1); err != nil {
			return err
		}
		if i < len(items)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat(indentUnit, depth))
	b.WriteByte(']')
	return nil
}

func writeValue(b *strings.Builder, v any, depth int) error {
	switch v := v.(type) {
	case nil:
		b.WriteString("null")
	case string:
		b.WriteString(jsonString(v))
	case bool:
		b.WriteString(strconv.FormatBool(v))
	case json.Number:
		b.WriteString(v.String())
	case int:
		b.WriteString(strconv.Itoa(v))
	case float64:
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	case *Catalog:
		return writeObject(b, v, depth)
	case []any:
		return writeArray(b, v, depth)
	default:
		return fmt.Errorf("unsupported value type %T", v)
	}
	return nil
}

// jsonString returns s as a JSON string literal without HTML or
// non-ASCII escaping. U+2028 and U+2029 are written literally too.
func jsonString(s string) string {
	data, err := json.MarshalWithOption(s, json.DisableHTMLEscape())
	if err != nil {
		return strconv.Quote(s)
	}
	if strings.ContainsAny(s, "\u2028\u2029") {
		return unescapeSeparators(string(data))
	}
	return string(data)
}

// unescapeSeparators replaces the \u2028 and \u2029 escapes of an encoded
// string literal with the characters themselves.
func unescapeSeparators(lit string) string {
	var b strings.Builder
	for i := 0; i < len(lit); i++ {
		if lit[i] != '\\' || i+1 >= len(lit) {
			b.WriteByte(lit[i])
			continue
		}
		if esc := lit[i:min(i+6, len(lit))]; esc == `\u2028` || esc == `\u2029` {
			if esc == `\u2028` {
				b.WriteRune('\u2028')
			} else {
				b.WriteRune('\u2029')
			}
			i += 5
			continue
		}
		// Any other escape is copied whole so an escaped backslash is not
		// mistaken for the start of the next escape.
		b.WriteString(lit[i : i+2])
		i++
	}
	return b.String()
}

// WriteFile writes data to a temporary file next to path and renames it
// over path, so readers never observe a truncated file.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
