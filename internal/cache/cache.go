// Package cache persists the last detected location so the CLI works
// offline. Prayer times themselves are never cached: recomputing them
// is cheaper than a disk read.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/smokyabdulrahman/salatime/internal/geo"
)

const (
	geoCacheFile = "geolocation.json"
	// geoTTL is the age past which a cached fix counts as stale. A
	// stale fix is still returned (the user probably has not moved);
	// the flag lets the caller warn instead of refusing to answer.
	geoTTL = 24 * time.Hour
)

// Cache provides file-based persistence for the detected location.
type Cache struct {
	dir string
}

// entry stores a cached geolocation result with a timestamp.
type entry struct {
	Location geo.Location `json:"location"`
	CachedAt time.Time    `json:"cached_at"`
}

// New creates a Cache rooted at the given directory.
// If dir is empty, it defaults to ~/.cache/salatime/.
func New(dir string) (*Cache, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".cache", "salatime")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create cache directory %s: %w", dir, err)
	}

	return &Cache{dir: dir}, nil
}

// Load reads the cached location. stale reports whether the fix is
// older than the TTL. Returns (nil, false) when nothing usable is
// cached.
func (c *Cache) Load() (loc *geo.Location, stale bool) {
	return c.loadAt(time.Now())
}

// loadAt is Load with an injectable clock for tests.
func (c *Cache) loadAt(now time.Time) (*geo.Location, bool) {
	path := filepath.Join(c.dir, geoCacheFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, false
	}

	return &e.Location, now.Sub(e.CachedAt) > geoTTL
}

// Save writes a geolocation result to the cache.
func (c *Cache) Save(loc *geo.Location) error {
	path := filepath.Join(c.dir, geoCacheFile)

	e := entry{
		Location: *loc,
		CachedAt: time.Now(),
	}

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal geo cache: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write geo cache: %w", err)
	}

	return nil
}
