// Package merge applies manually completed translations from a
// pending-translations set back onto a catalog.
package merge

import (
	"github.com/smilit/i18ntools/catalog"
	"github.com/smilit/i18ntools/pending"
	"github.com/smilit/i18ntools/sentinel"
)

// Result describes what Apply changed.
type Result struct {
	// Updated lists the catalog keys that received a translation, in
	// catalog order.
	Updated []string
	// Skipped is the number of pending entries left untouched because the
	// set had no non-empty translation for their source text.
	Skipped int
}

// Count returns the number of updated entries.
func (r Result) Count() int {
	return len(r.Updated)
}

// Apply updates cat in place.
//   - Pending entries whose source text has a non-empty translation in set
//     are replaced by that translation, dropping the marker.
//   - Pending entries with an absent or empty translation are kept as is.
//   - Entries that are not pending are never touched.
func Apply(cat *catalog.Catalog, set *pending.Set) Result {
	var res Result

	for _, key := range cat.Keys() {
		v, _ := cat.Get(key)
		src, ok := sentinel.Source(v)
		if !ok {
			continue
		}

		translation, ok := set.Translation(src)
		if !ok {
			res.Skipped++
			continue
		}

		cat.SetString(key, translation)
		res.Updated = append(res.Updated, key)
	}

	return res
}
