package session

import (
	"fmt"
	"testing"
)

func TestSnapshotCacheEvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewSnapshotCacheWithSize(2)

	cache.Set(Snapshot{Destination: "/a", Content: []byte("a")})
	cache.Set(Snapshot{Destination: "/b", Content: []byte("b")})

	if _, ok := cache.Get("/a"); !ok {
		t.Fatal("expected /a to be cached")
	}

	cache.Set(Snapshot{Destination: "/c", Content: []byte("c")})

	if _, ok := cache.Get("/b"); ok {
		t.Error("expected /b to be evicted")
	}
	if _, ok := cache.Get("/a"); !ok {
		t.Error("expected /a to survive eviction")
	}
	if cache.Len() != 2 {
		t.Errorf("expected 2 snapshots, got %d", cache.Len())
	}
}

func TestSnapshotCacheUpdate(t *testing.T) {
	cache := NewSnapshotCache()

	cache.Set(Snapshot{Destination: "/a", Content: []byte("old")})
	cache.Set(Snapshot{Destination: "/a", Content: []byte("new")})

	snapshot, ok := cache.Get("/a")
	if !ok || string(snapshot.Content) != "new" {
		t.Errorf("expected updated snapshot, got %q", snapshot.Content)
	}
	if cache.Len() != 1 {
		t.Errorf("expected 1 snapshot, got %d", cache.Len())
	}
}

func TestSnapshotCacheClear(t *testing.T) {
	cache := NewSnapshotCache()
	for i := 0; i < 10; i++ {
		cache.Set(Snapshot{Destination: fmt.Sprintf("/%d", i)})
	}
	if cache.Len() != 5 {
		t.Fatalf("expected default capacity of 5, got %d", cache.Len())
	}

	cache.Clear()

	if cache.Len() != 0 {
		t.Errorf("expected empty cache, got %d", cache.Len())
	}
	if _, ok := cache.Get("/9"); ok {
		t.Error("expected /9 to be gone")
	}
}

func TestSnapshotCacheMinimumSize(t *testing.T) {
	cache := NewSnapshotCacheWithSize(0)
	cache.Set(Snapshot{Destination: "/a"})
	cache.Set(Snapshot{Destination: "/b"})

	if cache.Len() != 1 {
		t.Errorf("expected capacity of 1, got %d", cache.Len())
	}
}
