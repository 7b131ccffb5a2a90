package dashboard

import (
	"slices"
	"sync"

	"weather-watchlist/internal/domain/entity"
)

// Mirror is the client-side copy of the location collection. It is a snapshot of server state,
// versioned so callers can tell whether the collection changed between two reads.
// Every mutator works on the current state under the lock.
type Mirror struct {
	mu        sync.RWMutex
	locations []entity.Location
	version   uint64
}

// Replace swaps the whole collection and returns the new version.
func (m *Mirror) Replace(locations []entity.Location) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locations = slices.Clone(locations)
	m.version++
	return m.version
}

// Update applies fn to the entry with the given id. It reports whether the entry exists.
func (m *Mirror) Update(id int64, fn func(location *entity.Location)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.locations {
		if m.locations[i].ID == id {
			fn(&m.locations[i])
			m.version++
			return true
		}
	}
	return false
}

// Remove drops the entry with the given id and returns how many entries remain.
func (m *Mirror) Remove(id int64) (remaining int, removed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	before := len(m.locations)
	m.locations = slices.DeleteFunc(m.locations, func(location entity.Location) bool {
		return location.ID == id
	})
	removed = len(m.locations) != before
	if removed {
		m.version++
	}
	return len(m.locations), removed
}

// Get returns a copy of the entry with the given id.
func (m *Mirror) Get(id int64) (entity.Location, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, location := range m.locations {
		if location.ID == id {
			return location, true
		}
	}
	return entity.Location{}, false
}

// Snapshot returns a copy of the collection and its version.
func (m *Mirror) Snapshot() ([]entity.Location, uint64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.locations), m.version
}

// IDs returns the ids in collection order.
func (m *Mirror) IDs() []int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]int64, len(m.locations))
	for i, location := range m.locations {
		ids[i] = location.ID
	}
	return ids
}

// Len returns the number of entries.
func (m *Mirror) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.locations)
}
