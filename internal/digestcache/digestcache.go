// Package digestcache memoizes file digests across runs, keyed by path, size,
// modification time, seed and word count.
package digestcache

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.dw1.io/fastcache"
)

// DefaultEntries is the default cache capacity.
const DefaultEntries = 16_384

const keyVersion = "v1|"

// Entry is a cached digest result.
type Entry struct {
	Words []uint64
}

// Cache is a fastcache-backed digest cache, optionally persisted to a file.
type Cache struct {
	c    *fastcache.Cache[string, Entry]
	file string

	saveMu     sync.Mutex
	lastSaveAt time.Time
	writes     int
}

// DefaultPath returns the per-user cache file location.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "go.dw1.io", "compacthash", "digests-v1.cache"), nil
}

// Open loads the cache persisted at file, or starts an empty one if the file
// is missing or unreadable. An empty file name keeps the cache in memory
// only.
func Open(file string, entries int) *Cache {
	if entries <= 0 {
		entries = DefaultEntries
	}

	if file == "" {
		return &Cache{c: fastcache.New[string, Entry](entries)}
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return &Cache{c: fastcache.New[string, Entry](entries)}
	}

	return &Cache{
		c:    fastcache.LoadFromFileOrNew[string, Entry](file, entries),
		file: file,
	}
}

// Key builds the cache key for path hashed with seed into words words (0 for
// the plain single digest). ok is false if path is not a regular file.
func Key(path string, seed uint64, words int) (key string, ok bool) {
	if path == "" {
		return "", false
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	var builder strings.Builder
	builder.Grow(len(path) + 80)
	builder.WriteString(keyVersion)
	builder.WriteString(path)
	builder.WriteByte('|')
	builder.WriteString(strconv.FormatInt(info.Size(), 10))
	builder.WriteByte('|')
	builder.WriteString(strconv.FormatInt(info.ModTime().UnixNano(), 10))
	builder.WriteByte('|')
	builder.WriteString(strconv.FormatUint(seed, 16))
	builder.WriteByte('|')
	builder.WriteString(strconv.Itoa(words))

	return builder.String(), true
}

// Get returns the cached words for key.
func (c *Cache) Get(key string) ([]uint64, bool) {
	e, ok := c.c.Get(key)
	if !ok {
		return nil, false
	}

	return e.Words, true
}

// Set stores words under key and periodically persists the cache.
func (c *Cache) Set(key string, words []uint64) {
	c.c.Set(key, Entry{Words: words})
	c.maybeSave()
}

// Save persists the cache immediately. It is a no-op for in-memory caches.
func (c *Cache) Save() error {
	if c.file == "" {
		return nil
	}

	c.saveMu.Lock()
	defer c.saveMu.Unlock()

	if err := c.c.SaveToFile(c.file); err != nil {
		return err
	}
	c.writes = 0
	c.lastSaveAt = time.Now()

	return nil
}

func (c *Cache) maybeSave() {
	if c.file == "" {
		return
	}

	c.saveMu.Lock()
	defer c.saveMu.Unlock()

	c.writes++
	if c.writes < 32 && time.Since(c.lastSaveAt) < 2*time.Second {
		return
	}

	if err := c.c.SaveToFile(c.file); err == nil {
		c.writes = 0
		c.lastSaveAt = time.Now()
	}
}
