package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherDebouncedBurst(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	paths, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 20 * time.Millisecond,
	})
	require.NoError(t, err)

	// A rapid burst of drops interleaves create/write events with the
	// debounce flush; every allowed file must still come out exactly named.
	want := map[string]bool{}
	for i := 0; i < 8; i++ {
		p := filepath.Join(dir, fmt.Sprintf("stub-%d.pdf", i))
		require.NoError(t, os.WriteFile(p, []byte("%PDF-1.4"), 0o644))
		want[p] = true
	}
	skipped := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(skipped, []byte("ignore me"), 0o644))

	got := map[string]bool{}
	deadline := time.After(5 * time.Second)
	for len(got) < len(want) {
		select {
		case p := <-paths:
			got[p] = true
		case <-deadline:
			t.Fatalf("timed out with %d of %d paths", len(got), len(want))
		}
	}
	for p := range want {
		assert.True(t, got[p], "missing %s", p)
	}
	assert.False(t, got[skipped], "disallowed extension must not be emitted")
}

func TestWatcherInitialScan(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "already-there.pdf")
	require.NoError(t, os.WriteFile(existing, []byte("%PDF-1.4"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	paths, _, err := StartWatcher(ctx, WatchConfig{
		Roots:       []string{dir},
		InitialScan: true,
	})
	require.NoError(t, err)

	select {
	case p := <-paths:
		assert.Equal(t, existing, p)
	case <-time.After(2 * time.Second):
		t.Fatal("initial scan emitted nothing")
	}
}

func TestWatcherRequiresRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{})
	assert.Error(t, err)
}
