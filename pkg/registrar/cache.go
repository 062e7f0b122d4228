package registrar

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// defaultTTL keeps seat counts fresh enough to be useful while sparing the
// registration site from repeated identical lookups.
const defaultTTL = 15 * time.Minute

// Cache is an explicit disk store for live status results, keyed by course
// code. Injecting it (rather than hiding it in package state) keeps repeated
// runs reproducible and lets tests point it at a temp directory.
type Cache struct {
	Dir string
	TTL time.Duration
}

// DefaultCache stores entries under ~/.gryphctl_cache.
func DefaultCache() *Cache {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to the working directory; a broken cache only costs
		// extra fetches.
		return &Cache{Dir: ".gryphctl_cache", TTL: defaultTTL}
	}
	return &Cache{Dir: filepath.Join(home, ".gryphctl_cache"), TTL: defaultTTL}
}

type cacheEntry struct {
	Timestamp time.Time       `json:"timestamp"`
	Statuses  []SectionStatus `json:"statuses"`
}

// path derives a filesystem-safe file name from the course code
// ("CIS*2750" -> "CIS_2750.json").
func (c *Cache) path(code string) string {
	return filepath.Join(c.Dir, strings.ReplaceAll(code, "*", "_")+".json")
}

// read returns a cached, unexpired result for the course.
func (c *Cache) read(code string) ([]SectionStatus, bool) {
	if c == nil {
		return nil, false
	}

	data, err := os.ReadFile(c.path(code))
	if err != nil {
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}
	if time.Since(entry.Timestamp) > c.TTL {
		return nil, false
	}
	return entry.Statuses, true
}

// write saves a result, best-effort: a cache failure never fails the lookup.
func (c *Cache) write(code string, statuses []SectionStatus) {
	if c == nil {
		return
	}
	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return
	}

	entry := cacheEntry{Timestamp: time.Now(), Statuses: statuses}
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(c.path(code), data, 0644)
}
