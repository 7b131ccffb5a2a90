package dashboard

import (
	"sync"
	"testing"

	"weather-watchlist/internal/domain/entity"
)

func TestMirrorMutationsBumpVersion(t *testing.T) {
	var m Mirror
	v1 := m.Replace([]entity.Location{{ID: 1}, {ID: 2}})

	if !m.Update(2, func(l *entity.Location) { l.IsFavorite = true }) {
		t.Fatal("expected update of existing id")
	}
	if m.Update(9, func(l *entity.Location) {}) {
		t.Fatal("update of unknown id should report false")
	}
	_, v2 := m.Snapshot()
	if v2 <= v1 {
		t.Fatalf("version did not advance: %d -> %d", v1, v2)
	}

	remaining, removed := m.Remove(1)
	if !removed || remaining != 1 {
		t.Fatalf("remove: remaining=%d removed=%v", remaining, removed)
	}
	if _, removed := m.Remove(1); removed {
		t.Fatal("second remove should be a no-op")
	}
	loc, ok := m.Get(2)
	if !ok || !loc.IsFavorite {
		t.Fatalf("unexpected entry %+v", loc)
	}
}

func TestMirrorSnapshotIsACopy(t *testing.T) {
	var m Mirror
	input := []entity.Location{{ID: 1, Name: "Rome"}}
	m.Replace(input)
	input[0].Name = "changed"

	snapshot, _ := m.Snapshot()
	snapshot[0].Name = "also changed"

	if loc, _ := m.Get(1); loc.Name != "Rome" {
		t.Fatalf("mirror shares memory with callers: %q", loc.Name)
	}
}

func TestMirrorConcurrentUpdatesAreNotLost(t *testing.T) {
	var m Mirror
	m.Replace([]entity.Location{{ID: 1}, {ID: 2}})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			m.Update(1, func(l *entity.Location) { l.IsFavorite = !l.IsFavorite })
		}()
		go func() {
			defer wg.Done()
			m.Update(2, func(l *entity.Location) { l.Lat++ })
		}()
	}
	wg.Wait()

	one, _ := m.Get(1)
	two, _ := m.Get(2)
	if one.IsFavorite || two.Lat != 50 {
		t.Fatalf("lost updates: favorite=%v lat=%v", one.IsFavorite, two.Lat)
	}
}
