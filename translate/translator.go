// Package translate auto-translates pending catalog entries from Chinese
// to English with a phrase dictionary and a table of decomposition rules.
//
// Resolution of a source text, in order:
//  1. exact dictionary lookup;
//  2. the first matching affix rule (DefaultRules), whose remainder is
//     resolved recursively;
//  3. the first matching particle (DefaultParticles), splitting on its
//     first occurrence and resolving both sides recursively.
//
// Exactly one rule fires per text. The result is a literal substitution,
// not a linguistically correct translation.
package translate

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/smilit/i18ntools/dictionary"
)

// Translator resolves source texts against a dictionary.
type Translator struct {
	dict      *dictionary.Dictionary
	rules     []Rule
	particles []Particle
}

// New returns a Translator using the default rule and particle tables.
func New(dict *dictionary.Dictionary) *Translator {
	return NewWithRules(dict, DefaultRules, DefaultParticles)
}

// NewWithRules returns a Translator with custom tables.
func NewWithRules(dict *dictionary.Dictionary, rules []Rule, particles []Particle) *Translator {
	return &Translator{dict: dict, rules: rules, particles: particles}
}

// Translate resolves src. ok is false when nothing applies.
func (t *Translator) Translate(src string) (string, bool) {
	if src == "" {
		return "", false
	}
	if s, ok := t.dict.Lookup(src); ok {
		return s, true
	}

	for _, r := range t.rules {
		rest, ok := t.match(r, src)
		if !ok {
			continue
		}
		return t.apply(r, rest)
	}

	for _, p := range t.particles {
		left, right, ok := strings.Cut(src, p.Sep)
		if !ok || left == "" || right == "" {
			continue
		}
		tmpl := p.Template
		if p.AltRight[right] {
			tmpl = p.Alt
		}
		r := strings.NewReplacer("{left}", t.segment(left), "{right}", t.segment(right))
		return r.Replace(tmpl), true
	}

	return "", false
}

// segment resolves one side of a particle split, keeping the raw text when
// it cannot be resolved.
func (t *Translator) segment(s string) string {
	if out, ok := t.Translate(s); ok {
		return out
	}
	return s
}

func (t *Translator) apply(r Rule, rest string) (string, bool) {
	resolved, ok := t.Translate(rest)
	if !ok {
		if r.Strict {
			return "", false
		}
		return expand(r.Template, rest), true
	}

	if form, ok := r.Forms[resolved]; ok {
		return form, true
	}
	if r.Lower {
		resolved = lower(resolved)
	}
	return expand(r.Template, resolved), true
}

// match reports whether r applies to src and returns the remainder.
func (t *Translator) match(r Rule, src string) (string, bool) {
	var (
		rest string
		ok   bool
	)
	switch r.Kind {
	case Prefix:
		rest, ok = strings.CutPrefix(src, r.Affix)
	case Suffix:
		rest, ok = strings.CutSuffix(src, r.Affix)
	}
	if !ok || rest == "" || t.embedded(r, src) {
		return "", false
	}
	return rest, true
}

// embedded reports whether the affix of r is part of a longer dictionary
// word at the same edge of src, such as 请 in 请求 or 包 in 钱包. A longer
// word that is itself affix plus a known phrase (请输入) does not count.
func (t *Translator) embedded(r Rule, src string) bool {
	n := len(r.Affix)
	switch r.Kind {
	case Prefix:
		for i := range src {
			if i <= n {
				continue
			}
			if w := src[:i]; t.dict.Has(w) && !t.dict.Has(w[n:]) {
				return true
			}
		}
	case Suffix:
		for i := range src {
			if i == 0 || i >= len(src)-n {
				continue
			}
			if w := src[i:]; t.dict.Has(w) && !t.dict.Has(w[:len(w)-n]) {
				return true
			}
		}
	}
	return false
}

func expand(tmpl, s string) string {
	return strings.Replace(tmpl, "{}", s, 1)
}

func lower(s string) string {
	return cases.Lower(language.English).String(s)
}
