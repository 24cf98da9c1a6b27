package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores each entry as a JSON file holding the data and its expiry.
// Files are spread over 256 subdirectories named by the first byte of the
// key hash.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache in dir, creating it if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// cacheEntry wraps cached data with metadata.
type cacheEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Dir returns the cache directory.
func (c *FileCache) Dir() string { return c.dir }

// Get retrieves a value from the cache. Corrupt and expired entries are
// removed and reported as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}

	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return entry.Data, true, nil
}

// Set stores a value in the cache.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entry := cacheEntry{Data: data}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}

	entryData, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, entryData, 0644)
}

// Delete removes a value from the cache.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Clear removes every entry and returns how many files were deleted.
// The cache directory itself is kept.
func (c *FileCache) Clear() (int, error) {
	entries, err := os.ReadDir(c.dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	count := 0
	for _, e := range entries {
		sub := filepath.Join(c.dir, e.Name())
		if !e.IsDir() {
			if os.Remove(sub) == nil {
				count++
			}
			continue
		}
		files, _ := os.ReadDir(sub)
		for _, f := range files {
			if os.Remove(filepath.Join(sub, f.Name())) == nil {
				count++
			}
		}
		_ = os.Remove(sub)
	}
	return count, nil
}

// Close does nothing for file cache.
func (c *FileCache) Close() error {
	return nil
}

// path converts a cache key to a file path.
func (c *FileCache) path(key string) string {
	hash := Hash([]byte(key))
	return filepath.Join(c.dir, hash[:2], hash[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
