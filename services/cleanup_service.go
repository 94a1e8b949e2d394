package services

import (
	"context"

	"github.com/sirupsen/logrus"
)

const (
	cleanupPageSize  = 1000
	cleanupBatchSize = 100
)

// ObjectStore is the slice of the storage API the cleanup job needs.
// The production implementation lives in utils (S3); tests inject a fake.
type ObjectStore interface {
	// ListPage returns up to max keys starting at the continuation
	// token; an empty next token means the listing is exhausted.
	ListPage(ctx context.Context, token string, max int) (keys []string, next string, err error)
	// DeleteBatch removes the keys and reports per-batch counts.
	DeleteBatch(ctx context.Context, keys []string) (deleted, failed int, err error)
}

type CleanupService struct{ store ObjectStore }

func NewCleanupService(store ObjectStore) *CleanupService { return &CleanupService{store: store} }

type CleanupStats struct {
	Deleted int `json:"deleted"`
	Failed  int `json:"failed"`
	Total   int `json:"total"`
}

// Run paginates through the whole bucket and deletes everything in
// fixed-size batches. Invariant: Deleted+Failed == Total.
func (s *CleanupService) Run(ctx context.Context) (*CleanupStats, error) {
	stats := &CleanupStats{}
	token := ""
	for {
		keys, next, err := s.store.ListPage(ctx, token, cleanupPageSize)
		if err != nil {
			return stats, err
		}
		stats.Total += len(keys)

		for start := 0; start < len(keys); start += cleanupBatchSize {
			end := start + cleanupBatchSize
			if end > len(keys) {
				end = len(keys)
			}
			batch := keys[start:end]
			deleted, failed, err := s.store.DeleteBatch(ctx, batch)
			if err != nil {
				// the whole batch counts as failed; keep going
				logrus.WithError(err).Warn("cleanup batch delete failed")
				stats.Failed += len(batch)
				continue
			}
			stats.Deleted += deleted
			stats.Failed += failed
		}

		if next == "" {
			break
		}
		token = next
	}
	return stats, nil
}
