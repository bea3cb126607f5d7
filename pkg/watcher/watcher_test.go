package watcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcluded(t *testing.T) {
	w, err := New(time.Millisecond, []string{"vendor/**", "*.gen.z"}, func([]string) {})
	require.NoError(t, err)
	defer w.Close()

	assert.True(t, w.excluded("vendor/lib/dep.z"))
	assert.True(t, w.excluded("src/types.gen.z"))
	assert.False(t, w.excluded("src/main.z"))
}

func TestNewRejectsBadPattern(t *testing.T) {
	_, err := New(time.Millisecond, []string{"[unclosed"}, func([]string) {})
	assert.Error(t, err)
}

func TestDebounceBatchesAndSorts(t *testing.T) {
	batches := make(chan []string, 1)
	w, err := New(20*time.Millisecond, nil, func(paths []string) {
		batches <- paths
	})
	require.NoError(t, err)
	defer w.Close()

	w.enqueue("b.z")
	w.enqueue("a.z")
	w.enqueue("a.z")

	select {
	case got := <-batches:
		assert.Equal(t, []string{"a.z", "b.z"}, got)
	case <-time.After(time.Second):
		t.Fatal("debounce never flushed")
	}

	// the timer fires once per burst
	select {
	case got := <-batches:
		t.Fatalf("unexpected second batch %v", got)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestFlushWithNothingPendingIsSilent(t *testing.T) {
	called := false
	w, err := New(time.Millisecond, nil, func([]string) { called = true })
	require.NoError(t, err)
	defer w.Close()

	w.flush()
	assert.False(t, called)
}
