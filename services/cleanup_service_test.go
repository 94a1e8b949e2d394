package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectStore struct {
	keys        []string
	failBatches map[int]bool // batch index -> return error
	batchSizes  []int
	deleted     []string
}

func newFakeObjectStore(n int) *fakeObjectStore {
	s := &fakeObjectStore{failBatches: map[int]bool{}}
	for i := 0; i < n; i++ {
		s.keys = append(s.keys, fmt.Sprintf("uploads/photo-%04d.jpg", i))
	}
	return s
}

func (s *fakeObjectStore) ListPage(_ context.Context, token string, max int) ([]string, string, error) {
	start := 0
	if token != "" {
		fmt.Sscanf(token, "%d", &start)
	}
	end := start + max
	if end >= len(s.keys) {
		return s.keys[start:], "", nil
	}
	return s.keys[start:end], fmt.Sprintf("%d", end), nil
}

func (s *fakeObjectStore) DeleteBatch(_ context.Context, keys []string) (int, int, error) {
	idx := len(s.batchSizes)
	s.batchSizes = append(s.batchSizes, len(keys))
	if s.failBatches[idx] {
		return 0, 0, errors.New("simulated storage outage")
	}
	s.deleted = append(s.deleted, keys...)
	return len(keys), 0, nil
}

func TestCleanupRunDeletesEverythingInBatches(t *testing.T) {
	store := newFakeObjectStore(1500)
	svc := NewCleanupService(store)

	stats, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1500, stats.Total)
	assert.Equal(t, 1500, stats.Deleted)
	assert.Equal(t, 0, stats.Failed)
	assert.Equal(t, stats.Total, stats.Deleted+stats.Failed)

	// 1500 keys across two pages, every delete batch capped at 100
	require.Len(t, store.batchSizes, 15)
	for _, n := range store.batchSizes {
		assert.Equal(t, 100, n)
	}
	assert.Len(t, store.deleted, 1500)
}

func TestCleanupRunCountsFailedBatches(t *testing.T) {
	store := newFakeObjectStore(250)
	store.failBatches[1] = true
	svc := NewCleanupService(store)

	stats, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 250, stats.Total)
	assert.Equal(t, 150, stats.Deleted)
	assert.Equal(t, 100, stats.Failed)
	assert.Equal(t, stats.Total, stats.Deleted+stats.Failed)
}

func TestCleanupRunEmptyBucket(t *testing.T) {
	svc := NewCleanupService(newFakeObjectStore(0))
	stats, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.Deleted)
	assert.Zero(t, stats.Failed)
}
