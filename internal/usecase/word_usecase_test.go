package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/eslsoft/blinkvocab/internal/entity"
)

type fakeWordCacheRepo struct {
	mu      sync.Mutex
	items   map[string]*entity.WordDetail
	gets    int
	puts    int
	getErr  error
	putErr  error
}

func newFakeWordCacheRepo() *fakeWordCacheRepo {
	return &fakeWordCacheRepo{items: make(map[string]*entity.WordDetail)}
}

func (r *fakeWordCacheRepo) Get(ctx context.Context, key string) (*entity.WordDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gets++
	if r.getErr != nil {
		return nil, r.getErr
	}
	detail, ok := r.items[key]
	if !ok {
		return nil, nil
	}
	copy := *detail
	return &copy, nil
}

func (r *fakeWordCacheRepo) Put(ctx context.Context, key string, detail *entity.WordDetail) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.puts++
	if r.putErr != nil {
		return r.putErr
	}
	copy := *detail
	r.items[key] = &copy
	return nil
}

type fakeProvider struct {
	mu         sync.Mutex
	fetchCalls int32
	fetchErr   error
	imageCalls int32
	imageErr   error
	image      string
	block      chan struct{}
}

func (p *fakeProvider) FetchWordDetail(ctx context.Context, word string, difficulty entity.DifficultyLevel) (*entity.WordDetail, error) {
	atomic.AddInt32(&p.fetchCalls, 1)
	if p.block != nil {
		<-p.block
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fetchErr != nil {
		return nil, p.fetchErr
	}
	return &entity.WordDetail{
		Word:              word,
		ChineseDefinition: "def:" + word,
		DifficultyLevel:   string(difficulty),
	}, nil
}

func (p *fakeProvider) GenerateItemImage(ctx context.Context, itemName string, category entity.ItemCategory) (string, error) {
	atomic.AddInt32(&p.imageCalls, 1)
	if p.block != nil {
		<-p.block
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.imageErr != nil {
		return "", p.imageErr
	}
	if p.image != "" {
		return p.image, nil
	}
	return "data:image/png;base64,AAAA", nil
}

func TestLookupEmptyWord(t *testing.T) {
	uc := NewWordUsecase(newFakeWordCacheRepo(), &fakeProvider{}, testLogger())

	if _, err := uc.Lookup(context.Background(), "   ", entity.DifficultyEasy); !errors.Is(err, entity.ErrEmptyWord) {
		t.Fatalf("expected ErrEmptyWord, got %v", err)
	}
}

func TestLookupFetchesFromProviderAndFillsBothCaches(t *testing.T) {
	cache := newFakeWordCacheRepo()
	provider := &fakeProvider{}
	uc := NewWordUsecase(cache, provider, testLogger())
	ctx := context.Background()

	detail, err := uc.Lookup(ctx, "piano", entity.DifficultyEasy)
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if detail.Word != "piano" || detail.ChineseDefinition != "def:piano" {
		t.Errorf("unexpected detail %+v", detail)
	}
	if cache.puts != 1 {
		t.Errorf("expected one durable cache write, got %d", cache.puts)
	}

	// Second lookup hits the memory tier; neither the durable cache nor the
	// provider sees another call.
	if _, err := uc.Lookup(ctx, "piano", entity.DifficultyEasy); err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if got := atomic.LoadInt32(&provider.fetchCalls); got != 1 {
		t.Errorf("expected one provider call, got %d", got)
	}
	if cache.gets != 1 {
		t.Errorf("expected one durable cache read, got %d", cache.gets)
	}
}

func TestLookupDurableCacheHitSkipsProvider(t *testing.T) {
	cache := newFakeWordCacheRepo()
	cache.items["piano_Easy"] = &entity.WordDetail{Word: "piano", ChineseDefinition: "cached"}
	provider := &fakeProvider{}
	uc := NewWordUsecase(cache, provider, testLogger())

	detail, err := uc.Lookup(context.Background(), "piano", entity.DifficultyEasy)
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if detail.ChineseDefinition != "cached" {
		t.Errorf("expected cached detail, got %+v", detail)
	}
	if got := atomic.LoadInt32(&provider.fetchCalls); got != 0 {
		t.Errorf("expected no provider call, got %d", got)
	}
}

func TestLookupDifficultyKeysAreIndependent(t *testing.T) {
	cache := newFakeWordCacheRepo()
	provider := &fakeProvider{}
	uc := NewWordUsecase(cache, provider, testLogger())
	ctx := context.Background()

	if _, err := uc.Lookup(ctx, "piano", entity.DifficultyEasy); err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if _, err := uc.Lookup(ctx, "piano", entity.DifficultyHard); err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if got := atomic.LoadInt32(&provider.fetchCalls); got != 2 {
		t.Errorf("expected separate fetches per difficulty, got %d", got)
	}
}

func TestLookupProviderFailureYieldsPlaceholderWithoutCaching(t *testing.T) {
	cache := newFakeWordCacheRepo()
	provider := &fakeProvider{fetchErr: errors.New("quota exceeded")}
	uc := NewWordUsecase(cache, provider, testLogger())
	ctx := context.Background()

	detail, err := uc.Lookup(ctx, "piano", entity.DifficultyMedium)
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if detail.ChineseDefinition != "暫時無法取得解釋" {
		t.Errorf("expected placeholder card, got %+v", detail)
	}
	if cache.puts != 0 {
		t.Errorf("placeholder must not reach the durable cache, puts=%d", cache.puts)
	}

	// Once the provider recovers, the next lookup retries and gets real
	// content.
	provider.mu.Lock()
	provider.fetchErr = nil
	provider.mu.Unlock()

	detail, err = uc.Lookup(ctx, "piano", entity.DifficultyMedium)
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if detail.ChineseDefinition != "def:piano" {
		t.Errorf("expected real content after retry, got %+v", detail)
	}
}

func TestLookupConcurrentRequestsShareOneFetch(t *testing.T) {
	cache := newFakeWordCacheRepo()
	provider := &fakeProvider{block: make(chan struct{})}
	uc := NewWordUsecase(cache, provider, testLogger())
	ctx := context.Background()

	const workers = 8
	var wg sync.WaitGroup
	results := make([]*entity.WordDetail, workers)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			detail, err := uc.Lookup(ctx, "piano", entity.DifficultyEasy)
			if err != nil {
				t.Errorf("Lookup returned error: %v", err)
				return
			}
			results[i] = detail
		}(i)
	}

	close(provider.block)
	wg.Wait()

	if got := atomic.LoadInt32(&provider.fetchCalls); got != 1 {
		t.Errorf("expected a single shared fetch, got %d", got)
	}
	for i, detail := range results {
		if detail == nil || detail.Word != "piano" {
			t.Errorf("worker %d got %+v", i, detail)
		}
	}
}
