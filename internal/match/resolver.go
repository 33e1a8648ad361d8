package match

import (
	"strings"

	"github.com/kauntidev/kaunti/internal/model"
)

// Resolver matches boundary-dataset names against a record snapshot. It holds
// only the alias table, so a single Resolver serves any number of datasets.
//
// Resolution is deterministic for a fixed record ordering and O(n) per call;
// county counts sit in the tens, so the scan is cheaper than maintaining an
// index would be.
type Resolver struct {
	aliases Aliases
}

// NewResolver creates a resolver over the given alias table. A nil table
// falls back to the curated defaults.
func NewResolver(aliases Aliases) *Resolver {
	if aliases == nil {
		aliases = DefaultAliases()
	}
	return &Resolver{aliases: aliases}
}

// Key returns the effective comparison key for a boundary name: normalized,
// then passed through the alias table.
func (r *Resolver) Key(boundaryName string) string {
	return r.aliases.Apply(Normalize(boundaryName))
}

// Resolve returns the index of the record matching a boundary name, trying in
// order: exact normalized equality, then substring containment in either
// direction. The first hit wins at each stage. A false return means the
// region has no record and should render as no-data; it is never an error.
//
// The containment stage can mismatch nested names ("Tana" inside "Tana
// River"). That behavior is intentional and pinned by tests; known collisions
// are handled with alias entries, not by tightening the fallback.
func (r *Resolver) Resolve(boundaryName string, ds model.Dataset) (int, bool) {
	key := r.Key(boundaryName)
	if key == "" {
		return 0, false
	}

	for i, rec := range ds.Records {
		if Normalize(rec.Name) == key {
			return i, true
		}
	}

	for i, rec := range ds.Records {
		recKey := Normalize(rec.Name)
		if recKey == "" {
			continue
		}
		if strings.Contains(recKey, key) || strings.Contains(key, recKey) {
			return i, true
		}
	}

	return 0, false
}
