package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eslsoft/blinkvocab/internal/entity"
	"github.com/eslsoft/blinkvocab/internal/infrastructure/database"
	"github.com/eslsoft/blinkvocab/internal/repository"
)

const wordCacheNamespace = "wordcache"

// WordCacheRepository persists generated word details in the KV store.
// Entries are never evicted.
type WordCacheRepository struct {
	store *database.Store
}

// NewWordCacheRepository constructs a KV-backed word cache.
func NewWordCacheRepository(store *database.Store) repository.WordCacheRepository {
	return &WordCacheRepository{store: store}
}

func (r *WordCacheRepository) Get(ctx context.Context, key string) (*entity.WordDetail, error) {
	raw, err := r.store.Get(ctx, wordCacheNamespace, key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var detail entity.WordDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, fmt.Errorf("decode cached word detail %q: %w", key, err)
	}
	return &detail, nil
}

func (r *WordCacheRepository) Put(ctx context.Context, key string, detail *entity.WordDetail) error {
	raw, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("encode word detail %q: %w", key, err)
	}
	return r.store.Put(ctx, wordCacheNamespace, key, raw)
}
