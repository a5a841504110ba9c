package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/eslsoft/blinkvocab/internal/entity"
	"github.com/eslsoft/blinkvocab/internal/repository"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// WordUsecase serves word learning cards through a two-tier cache: a
// process-memory map in front of the durable KV cache, with the AI provider
// as the source of truth. Lookup never returns a provider error; on failure
// the caller gets a deterministic placeholder card.
type WordUsecase interface {
	Lookup(ctx context.Context, word string, difficulty entity.DifficultyLevel) (*entity.WordDetail, error)
}

// NewWordUsecase constructs the word service. The memory cache is owned by
// this instance; its lifetime is the process session.
func NewWordUsecase(cache repository.WordCacheRepository, provider ContentProvider, logger *logrus.Logger) WordUsecase {
	return &wordUsecase{
		cache:    cache,
		provider: provider,
		logger:   logger,
		memory:   make(map[string]*entity.WordDetail),
	}
}

type wordUsecase struct {
	cache    repository.WordCacheRepository
	provider ContentProvider
	logger   *logrus.Logger

	mu     sync.RWMutex
	memory map[string]*entity.WordDetail
	group  singleflight.Group
}

func (u *wordUsecase) Lookup(ctx context.Context, word string, difficulty entity.DifficultyLevel) (*entity.WordDetail, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, entity.ErrEmptyWord
	}

	key := entity.WordCacheKey(word, difficulty)

	u.mu.RLock()
	cached, ok := u.memory[key]
	u.mu.RUnlock()
	if ok {
		return cached, nil
	}

	// Concurrent lookups for the same (word, difficulty) pair share one
	// in-flight fetch.
	result, err, _ := u.group.Do(key, func() (any, error) {
		return u.fetch(ctx, key, word, difficulty), nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*entity.WordDetail), nil
}

func (u *wordUsecase) fetch(ctx context.Context, key, word string, difficulty entity.DifficultyLevel) *entity.WordDetail {
	if detail, err := u.cache.Get(ctx, key); err != nil {
		u.logger.WithError(err).WithField("key", key).Warn("durable word cache read failed")
	} else if detail != nil {
		u.remember(key, detail)
		return detail
	}

	detail, err := u.provider.FetchWordDetail(ctx, word, difficulty)
	if err != nil {
		// Placeholders are not cached; a later lookup retries the provider.
		u.logger.WithError(err).WithField("word", word).Warn("content provider lookup failed")
		return entity.PlaceholderWordDetail(word, difficulty)
	}
	detail.Word = word

	u.remember(key, detail)
	if err := u.cache.Put(ctx, key, detail); err != nil {
		u.logger.WithError(err).WithField("key", key).Warn("durable word cache write failed")
	}
	return detail
}

func (u *wordUsecase) remember(key string, detail *entity.WordDetail) {
	u.mu.Lock()
	u.memory[key] = detail
	u.mu.Unlock()
}
