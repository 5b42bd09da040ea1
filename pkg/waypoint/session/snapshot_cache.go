package session

import "github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"

// Snapshot is the last rendered content of a destination.
type Snapshot struct {
	Destination string
	Content     []byte
}

// SnapshotCache keeps the most recently used snapshots, evicting the oldest.
type SnapshotCache struct {
	snapshots map[string]Snapshot
	order     []string // tracks use order for LRU eviction
	maxSize   int
}

func NewSnapshotCache() *SnapshotCache {
	return NewSnapshotCacheWithSize(constants.DefaultSnapshotCacheSize)
}

func NewSnapshotCacheWithSize(maxSize int) *SnapshotCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &SnapshotCache{
		snapshots: make(map[string]Snapshot),
		order:     make([]string, 0, maxSize),
		maxSize:   maxSize,
	}
}

func (c *SnapshotCache) Get(destination string) (Snapshot, bool) {
	if snapshot, exists := c.snapshots[destination]; exists {
		// Move to end (most recently used)
		c.moveToEnd(destination)
		return snapshot, true
	}
	return Snapshot{}, false
}

func (c *SnapshotCache) Set(snapshot Snapshot) {
	key := snapshot.Destination

	// If key already exists, just update and move to end
	if _, exists := c.snapshots[key]; exists {
		c.snapshots[key] = snapshot
		c.moveToEnd(key)
		return
	}

	// Evict oldest if at capacity
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.snapshots[key] = snapshot
	c.order = append(c.order, key)
}

func (c *SnapshotCache) Len() int {
	return len(c.order)
}

func (c *SnapshotCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *SnapshotCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.snapshots, oldest)
}

func (c *SnapshotCache) Clear() {
	c.snapshots = make(map[string]Snapshot)
	c.order = c.order[:0]
}
