// Package assets resolves, fetches, and decodes terrain images.
package assets

import (
	"context"
	"fmt"
	"image"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/tankterrain/internal/logger"
)

// Manager loads images by source, where a source is a local path or any
// location go-getter understands. Decoded images are cached by source.
type Manager struct {
	cacheDir string
	cache    *Cache
}

// NewManager creates a manager downloading remote sources into cacheDir.
// An empty cacheDir uses DefaultCacheDir.
func NewManager(cacheDir string) *Manager {
	if cacheDir == "" {
		cacheDir = DefaultCacheDir()
	}
	return &Manager{
		cacheDir: cacheDir,
		cache:    NewCache(),
	}
}

// CacheDir returns the download cache directory.
func (m *Manager) CacheDir() string {
	return m.cacheDir
}

// Image returns the decoded image for source.
func (m *Manager) Image(ctx context.Context, source string) (image.Image, error) {
	if img, ok := m.cache.Get(source); ok {
		return img, nil
	}

	path, err := Resolve(ctx, source, m.cacheDir)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(f, path)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", source, err)
	}

	b := img.Bounds()
	logger.Debug("image loaded",
		zap.String("source", source),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()))

	m.cache.Set(source, img)
	return img, nil
}

// Close drops cached images.
func (m *Manager) Close() {
	m.cache.Clear()
}

// Cache is an in-memory image cache.
type Cache struct {
	mu     sync.Mutex
	images map[string]image.Image

	hits   int
	misses int
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{images: make(map[string]image.Image)}
}

// Get retrieves an image from the cache.
func (c *Cache) Get(key string) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	img, ok := c.images[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return img, ok
}

// Set stores an image.
func (c *Cache) Set(key string, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.images[key] = img
}

// Clear empties the cache and resets statistics.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.images = make(map[string]image.Image)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
