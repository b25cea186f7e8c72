// Package extract collects catalog entries that still carry the
// translation marker into a pending-translations set for manual work.
package extract

import (
	"github.com/smilit/i18ntools/catalog"
	"github.com/smilit/i18ntools/pending"
	"github.com/smilit/i18ntools/sentinel"
)

// Result holds the outcome of an extraction.
type Result struct {
	// Set holds one empty translation per distinct source text.
	Set *pending.Set
	// Entries is the number of pending catalog entries scanned.
	Entries int
	// Keys lists the pending catalog keys in catalog order.
	Keys []string
}

// Pending scans cat and returns every distinct source text found in
// pending entries, in first-seen order. Entries sharing a source text
// collapse to one set entry. Pending values with no source text are
// counted but not added.
func Pending(cat *catalog.Catalog) *Result {
	res := &Result{Set: pending.NewSet()}

	for _, key := range cat.Keys() {
		v, _ := cat.Get(key)
		src, ok := sentinel.Source(v)
		if !ok {
			continue
		}
		res.Entries++
		res.Keys = append(res.Keys, key)
		if src == "" {
			continue
		}
		res.Set.Add(src)
	}

	return res
}

// Distinct returns the number of distinct source texts.
func (r *Result) Distinct() int {
	return r.Set.Len()
}
