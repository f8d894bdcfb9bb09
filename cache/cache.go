package cache

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pankajg09/data-dictionary-system/config"
	"github.com/pankajg09/data-dictionary-system/internal/dictionary"
)

// Cache stores analysis results on disk keyed by a hash of the analyzed
// text, so re-submitting the same SQL or code skips the providers
// entirely.
type Cache struct {
	config *config.Config
}

// Entry is one cached analysis result.
type Entry struct {
	ContentHash string             `json:"content_hash"`
	Timestamp   time.Time          `json:"timestamp"`
	Result      *dictionary.Result `json:"result"`
}

// New creates a cache instance.
func New(cfg *config.Config) *Cache {
	return &Cache{config: cfg}
}

// Get retrieves a cached result if one exists and has not expired.
func (c *Cache) Get(input string) (*dictionary.Result, bool) {
	if !c.config.Cache.Enabled {
		return nil, false
	}

	hash := c.hashContent(input)
	data, err := os.ReadFile(c.entryPath(hash))
	if err != nil {
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if entry.ContentHash != hash || c.isExpired(entry.Timestamp) || entry.Result == nil {
		return nil, false
	}

	return entry.Result, true
}

// Set caches an analysis result.
func (c *Cache) Set(input string, result *dictionary.Result) error {
	if !c.config.Cache.Enabled {
		return nil
	}

	if err := os.MkdirAll(c.config.Cache.Directory, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	hash := c.hashContent(input)
	entry := Entry{
		ContentHash: hash,
		Timestamp:   time.Now(),
		Result:      result,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	if err := os.WriteFile(c.entryPath(hash), data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}

	return nil
}

func (c *Cache) hashContent(content string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(content)))
}

func (c *Cache) entryPath(hash string) string {
	return filepath.Join(c.config.Cache.Directory, hash+".json")
}

func (c *Cache) isExpired(timestamp time.Time) bool {
	return time.Since(timestamp) > c.config.CacheTTL()
}
