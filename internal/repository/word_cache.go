package repository

import (
	"context"

	"github.com/eslsoft/blinkvocab/internal/entity"
)

// WordCacheRepository is the durable tier of the word-detail cache. Entries
// are keyed by word + difficulty and never evicted or expired.
type WordCacheRepository interface {
	Get(ctx context.Context, key string) (*entity.WordDetail, error) // (nil, nil) on miss
	Put(ctx context.Context, key string, detail *entity.WordDetail) error
}
