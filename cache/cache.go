package cache

import (
	"fmt"
	"os"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Schema version; bump when the payload layout changes so stale cache files
// invalidate themselves.
const schemaVersion uint16 = 1

type payload struct {
	Schema  uint16
	Entries map[string]msgpack.RawMessage
}

// Cache persists per-digest analysis results between runs. Entries are keyed
// by content digest, so a cache hit is valid regardless of the file's path or
// timestamps. Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	path    string
	entries map[string]msgpack.RawMessage
	dirty   bool
}

// Open loads the cache at path, starting empty when the file is missing or
// carries a different schema.
func Open(path string) (*Cache, error) {
	c := &Cache{path: path, entries: make(map[string]msgpack.RawMessage)}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}
	var p payload
	if err := msgpack.Unmarshal(data, &p); err != nil || p.Schema != schemaVersion {
		// Corrupt or outdated cache files are discarded, not errors.
		return c, nil
	}
	if p.Entries != nil {
		c.entries = p.Entries
	}
	return c, nil
}

// Get decodes the entry for digest into v, reporting whether it existed.
func (c *Cache) Get(digest string, v interface{}) bool {
	c.mu.RLock()
	raw, ok := c.entries[digest]
	c.mu.RUnlock()
	if !ok {
		return false
	}
	if err := msgpack.Unmarshal(raw, v); err != nil {
		return false
	}
	return true
}

// Put stores v under digest.
func (c *Cache) Put(digest string, v interface{}) {
	raw, err := msgpack.Marshal(v)
	if err != nil {
		return
	}
	c.mu.Lock()
	c.entries[digest] = raw
	c.dirty = true
	c.mu.Unlock()
}

// Save writes the cache back to disk when anything changed.
func (c *Cache) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.dirty {
		return nil
	}
	data, err := msgpack.Marshal(payload{Schema: schemaVersion, Entries: c.entries})
	if err != nil {
		return fmt.Errorf("failed to encode cache: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

// Len reports the number of stored entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
