package translate

import (
	"math"

	"github.com/smilit/i18ntools/catalog"
	"github.com/smilit/i18ntools/sentinel"
)

// DefaultProgressEvery is the number of translations between progress
// reports.
const DefaultProgressEvery = 100

// Options controls a catalog pass.
type Options struct {
	// DryRun resolves entries without modifying the catalog.
	DryRun bool
	// ProgressEvery defaults to DefaultProgressEvery.
	ProgressEvery int
	// Progress is called with (translated, total) every ProgressEvery
	// translations.
	Progress func(done, total int)
}

// Resolution is one translated catalog entry.
type Resolution struct {
	Key    string
	Source string
	Result string
}

// Result summarizes a catalog pass.
type Result struct {
	// Total is the number of pending entries before the pass.
	Total       int
	Resolutions []Resolution
}

// Translated returns the number of resolved entries.
func (r Result) Translated() int {
	return len(r.Resolutions)
}

// Remaining returns the number of entries left pending.
func (r Result) Remaining() int {
	return r.Total - r.Translated()
}

// Coverage returns the translated share of pending entries as a rounded
// percentage, 0 when there was nothing to translate.
func (r Result) Coverage() int {
	if r.Total == 0 {
		return 0
	}
	return int(math.Round(float64(r.Translated()) / float64(r.Total) * 100))
}

// Run resolves every pending entry of cat and, unless opts.DryRun is set,
// overwrites resolved entries in place. Unresolved entries stay pending, so
// running again after an interruption picks up where the last run stopped.
func (t *Translator) Run(cat *catalog.Catalog, opts Options) Result {
	every := opts.ProgressEvery
	if every <= 0 {
		every = DefaultProgressEvery
	}

	var res Result
	for _, key := range cat.Keys() {
		if v, _ := cat.Get(key); sentinel.IsPending(v) {
			res.Total++
		}
	}

	for _, key := range cat.Keys() {
		v, _ := cat.Get(key)
		src, ok := sentinel.Source(v)
		if !ok {
			continue
		}
		out, ok := t.Translate(src)
		if !ok {
			continue
		}

		if !opts.DryRun {
			cat.SetString(key, out)
		}
		res.Resolutions = append(res.Resolutions, Resolution{Key: key, Source: src, Result: out})

		if opts.Progress != nil && res.Translated()%every == 0 {
			opts.Progress(res.Translated(), res.Total)
		}
	}

	return res
}
