package model

import (
	"time"

	"github.com/google/uuid"
)

// Dataset is one immutable snapshot of county records as supplied by the data
// provider. Each refetch produces a new Dataset with a fresh Version; nothing
// mutates Records in place, so the Version doubles as a cache key for anything
// derived from the record list.
type Dataset struct {
	FetchedAt time.Time
	Version   uuid.UUID
	Records   []Record
}

// NewDataset wraps a record list in a versioned snapshot.
func NewDataset(records []Record) Dataset {
	return Dataset{
		FetchedAt: time.Now(),
		Version:   uuid.New(),
		Records:   records,
	}
}

// Len returns the number of records in the snapshot.
func (d Dataset) Len() int {
	return len(d.Records)
}

// Empty reports whether the snapshot holds no records.
func (d Dataset) Empty() bool {
	return len(d.Records) == 0
}

// IndexByID returns the position of the record with the given ID.
func (d Dataset) IndexByID(id string) (int, bool) {
	if id == "" {
		return 0, false
	}
	for i, rec := range d.Records {
		if rec.ID == id {
			return i, true
		}
	}
	return 0, false
}
