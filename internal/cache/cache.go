// Package cache is a content-addressed, TTL-bound store for extraction
// results, keyed by a sha256 of the input bytes. It exists so byte-identical
// uploads do not repeat OCR work.
package cache

import (
	"crypto/sha256"
	"log/slog"
	"sync"
	"time"

	"github.com/Volpestyle/paystub-extractor/internal/entity"
)

type Config struct {
	TTL           time.Duration // default 15m
	Capacity      int           // default 256
	SweepInterval time.Duration // default 5m
}

type entry struct {
	record    *entity.PaystubRecord
	expiresAt time.Time
}

// ResultCache is safe for concurrent Get/Set/sweep. A single mutex around the
// entry map is enough at expected load; this is not a hot path.
type ResultCache struct {
	mu      sync.Mutex
	entries map[[sha256.Size]byte]entry

	ttl      time.Duration
	capacity int

	stop   chan struct{}
	done   chan struct{}
	logger *slog.Logger

	now func() time.Time // swapped in tests
}

func New(cfg Config, logger *slog.Logger) *ResultCache {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 15 * time.Minute
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = 256
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = 5 * time.Minute
	}
	c := &ResultCache{
		entries:  make(map[[sha256.Size]byte]entry),
		ttl:      cfg.TTL,
		capacity: cfg.Capacity,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger,
		now:      time.Now,
	}
	go c.sweepLoop(cfg.SweepInterval)
	return c
}

// Get returns the cached record for byte-identical input, or false. Expiry is
// checked lazily here; expired entries are removed on sight.
func (c *ResultCache) Get(data []byte) (*entity.PaystubRecord, bool) {
	key := sha256.Sum256(data)

	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return e.record, true
}

// Set stores the record keyed by content hash. At capacity, the entry with
// the soonest expiry is evicted first; exactly one eviction per insert.
func (c *ResultCache) Set(data []byte, record *entity.PaystubRecord) {
	key := sha256.Sum256(data)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.capacity {
		c.evictSoonestLocked()
	}
	c.entries[key] = entry{record: record, expiresAt: c.now().Add(c.ttl)}
}

// Len reports the current number of entries.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stop terminates the background sweep. Safe to call once.
func (c *ResultCache) Stop() {
	close(c.stop)
	<-c.done
}

func (c *ResultCache) evictSoonestLocked() {
	var victim [sha256.Size]byte
	var soonest time.Time
	first := true
	for k, e := range c.entries {
		if first || e.expiresAt.Before(soonest) {
			victim = k
			soonest = e.expiresAt
			first = false
		}
	}
	if !first {
		delete(c.entries, victim)
	}
}

func (c *ResultCache) sweepLoop(interval time.Duration) {
	defer close(c.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.sweep()
		case <-c.stop:
			return
		}
	}
}

// sweep removes entries whose expiry has passed, bounding memory growth
// between capacity-triggered evictions. Holds the lock only for the scan.
func (c *ResultCache) sweep() {
	c.mu.Lock()
	now := c.now()
	removed := 0
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
			removed++
		}
	}
	remaining := len(c.entries)
	c.mu.Unlock()

	if removed > 0 {
		c.logger.Debug("cache.sweep", "removed", removed, "remaining", remaining)
	}
}
