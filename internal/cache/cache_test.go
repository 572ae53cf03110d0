package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Volpestyle/paystub-extractor/internal/entity"
)

func rec(provider string) *entity.PaystubRecord {
	return &entity.PaystubRecord{Provider: provider, PayFrequency: entity.FrequencyUnknown}
}

func newTestCache(t *testing.T, cfg Config) *ResultCache {
	t.Helper()
	c := New(cfg, nil)
	t.Cleanup(c.Stop)
	return c
}

func TestGetMissesOnUnknownKey(t *testing.T) {
	c := newTestCache(t, Config{})
	got, ok := c.Get([]byte("never stored"))
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestSetThenGetReturnsSameRecord(t *testing.T) {
	c := newTestCache(t, Config{})
	want := rec("ADP")
	c.Set([]byte("doc-1"), want)

	got, ok := c.Get([]byte("doc-1"))
	require.True(t, ok)
	assert.Same(t, want, got)

	// a different byte stream must not alias
	_, ok = c.Get([]byte("doc-2"))
	assert.False(t, ok)
}

func TestExpiredEntryIsRemovedOnGet(t *testing.T) {
	c := newTestCache(t, Config{TTL: time.Minute})
	current := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	c.Set([]byte("doc"), rec("Gusto"))

	current = current.Add(30 * time.Second)
	_, ok := c.Get([]byte("doc"))
	assert.True(t, ok, "entry should survive within TTL")

	current = current.Add(31 * time.Second)
	_, ok = c.Get([]byte("doc"))
	assert.False(t, ok, "entry should expire after TTL")
	assert.Equal(t, 0, c.Len(), "expired entry should be dropped, not kept")
}

func TestSetAtCapacityEvictsExactlyOne(t *testing.T) {
	c := newTestCache(t, Config{TTL: time.Hour, Capacity: 3})
	current := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	// staggered inserts so expiries are distinct; doc-0 expires soonest
	for i := 0; i < 3; i++ {
		c.Set([]byte(fmt.Sprintf("doc-%d", i)), rec("Generic"))
		current = current.Add(time.Minute)
	}
	require.Equal(t, 3, c.Len())

	c.Set([]byte("doc-3"), rec("Generic"))
	assert.Equal(t, 3, c.Len(), "exactly one eviction per insert")

	_, ok := c.Get([]byte("doc-0"))
	assert.False(t, ok, "the soonest-expiring entry is the victim")
	for i := 1; i <= 3; i++ {
		_, ok := c.Get([]byte(fmt.Sprintf("doc-%d", i)))
		assert.True(t, ok, "doc-%d should survive", i)
	}
}

func TestOverwriteExistingKeyDoesNotEvict(t *testing.T) {
	c := newTestCache(t, Config{TTL: time.Hour, Capacity: 2})
	c.Set([]byte("a"), rec("ADP"))
	c.Set([]byte("b"), rec("Gusto"))

	c.Set([]byte("a"), rec("Paychex"))
	assert.Equal(t, 2, c.Len())

	got, ok := c.Get([]byte("a"))
	require.True(t, ok)
	assert.Equal(t, "Paychex", got.Provider)
	_, ok = c.Get([]byte("b"))
	assert.True(t, ok)
}

func TestSweepDropsOnlyExpiredEntries(t *testing.T) {
	c := newTestCache(t, Config{TTL: time.Minute, SweepInterval: time.Hour})
	current := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	c.Set([]byte("old"), rec("ADP"))
	current = current.Add(45 * time.Second)
	c.Set([]byte("fresh"), rec("Gusto"))
	current = current.Add(30 * time.Second) // "old" is now past TTL, "fresh" is not

	c.sweep()
	assert.Equal(t, 1, c.Len())
	_, ok := c.Get([]byte("fresh"))
	assert.True(t, ok)
}

func TestConcurrentAccess(t *testing.T) {
	c := newTestCache(t, Config{TTL: time.Hour, Capacity: 64})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := []byte(fmt.Sprintf("doc-%d-%d", n, j%10))
				c.Set(key, rec("Generic"))
				c.Get(key)
				c.Len()
			}
		}(i)
	}
	wg.Wait()
}
