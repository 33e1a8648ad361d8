package match

import (
	"github.com/google/uuid"

	"github.com/kauntidev/kaunti/internal/model"
)

// Memo caches resolver results for one dataset version. The cartogram asks
// for the same few dozen boundary names on every render pass, so the memo
// trades a small map for repeated scans.
//
// Entries are keyed by raw boundary name and scoped to Dataset.Version: a new
// snapshot empties the whole cache rather than patching entries in place.
// Memo is not safe for concurrent use; it belongs to a single render loop.
type Memo struct {
	resolver *Resolver
	entries  map[string]memoEntry
	version  uuid.UUID
}

type memoEntry struct {
	index int
	ok    bool
}

// NewMemo wraps a resolver with a version-scoped cache.
func NewMemo(resolver *Resolver) *Memo {
	return &Memo{
		resolver: resolver,
		entries:  make(map[string]memoEntry),
	}
}

// Resolve behaves exactly like Resolver.Resolve for the given dataset.
func (m *Memo) Resolve(boundaryName string, ds model.Dataset) (int, bool) {
	if m.version != ds.Version {
		m.entries = make(map[string]memoEntry)
		m.version = ds.Version
	}

	if e, hit := m.entries[boundaryName]; hit {
		return e.index, e.ok
	}

	index, ok := m.resolver.Resolve(boundaryName, ds)
	m.entries[boundaryName] = memoEntry{index: index, ok: ok}
	return index, ok
}
