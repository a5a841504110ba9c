package usecase

import (
	"context"
	"sync"

	"github.com/eslsoft/blinkvocab/internal/entity"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// ItemView decorates a catalog entry with per-user state.
type ItemView struct {
	entity.StoreItem
	Owned    bool `json:"owned"`
	HasImage bool `json:"hasImage"`
}

// StoreUsecase covers the cosmetic store: catalog browsing, purchases and
// AI preview generation. Generated images live in a process-memory cache
// for the lifetime of the process.
type StoreUsecase interface {
	ListItems(category string) []ItemView
	Purchase(ctx context.Context, itemID string) (*entity.StoreItem, error)
	GeneratePreview(ctx context.Context, itemID string) (string, error)
	Image(itemID string) (string, bool)
}

// NewStoreUsecase wires the store to the progress store and the image
// provider.
func NewStoreUsecase(progress ProgressUsecase, provider ContentProvider, logger *logrus.Logger) StoreUsecase {
	return &storeUsecase{
		progress: progress,
		provider: provider,
		logger:   logger,
		images:   make(map[string]string),
		inflight: make(map[string]struct{}),
	}
}

type storeUsecase struct {
	progress ProgressUsecase
	provider ContentProvider
	logger   *logrus.Logger

	mu       sync.Mutex
	images   map[string]string
	inflight map[string]struct{}
}

// ListItems returns the catalog filtered by category. The pseudo-category
// "My Collection" returns only owned items; empty or "All" returns
// everything.
func (u *storeUsecase) ListItems(category string) []ItemView {
	profile := u.progress.Snapshot()

	items := lo.Filter(entity.StoreCatalog, func(item entity.StoreItem, _ int) bool {
		switch category {
		case "", "All":
			return true
		case "My Collection":
			return profile.Owns(item.ID)
		default:
			return string(item.Category) == category
		}
	})

	return lo.Map(items, func(item entity.StoreItem, _ int) ItemView {
		_, hasImage := u.Image(item.ID)
		return ItemView{
			StoreItem: item,
			Owned:     profile.Owns(item.ID),
			HasImage:  hasImage,
		}
	})
}

// Purchase checks affordability and prior ownership before mutating the
// profile. The progress store itself does not enforce either invariant.
func (u *storeUsecase) Purchase(ctx context.Context, itemID string) (*entity.StoreItem, error) {
	item, ok := entity.FindStoreItem(itemID)
	if !ok {
		return nil, entity.ErrItemNotFound
	}

	profile := u.progress.Snapshot()
	if profile.Owns(item.ID) {
		return nil, entity.ErrItemAlreadyOwned
	}
	if profile.Coins < item.Cost {
		return nil, entity.ErrInsufficientFunds
	}

	if err := u.progress.DeductCoins(ctx, item.Cost); err != nil {
		return nil, err
	}
	if err := u.progress.AddToInventory(ctx, item.ID); err != nil {
		return nil, err
	}
	return &item, nil
}

// GeneratePreview produces the item's image, caching it in memory. On
// failure the item simply stays in its locked-preview state and the user may
// retry.
func (u *storeUsecase) GeneratePreview(ctx context.Context, itemID string) (string, error) {
	item, ok := entity.FindStoreItem(itemID)
	if !ok {
		return "", entity.ErrItemNotFound
	}

	u.mu.Lock()
	if image, ok := u.images[item.ID]; ok {
		u.mu.Unlock()
		return image, nil
	}
	if _, busy := u.inflight[item.ID]; busy {
		u.mu.Unlock()
		return "", entity.ErrImageGeneration
	}
	u.inflight[item.ID] = struct{}{}
	u.mu.Unlock()

	defer func() {
		u.mu.Lock()
		delete(u.inflight, item.ID)
		u.mu.Unlock()
	}()

	image, err := u.provider.GenerateItemImage(ctx, item.Name, item.Category)
	if err != nil {
		u.logger.WithError(err).WithField("item", item.ID).Warn("item image generation failed")
		return "", entity.ErrImageGeneration
	}

	u.mu.Lock()
	u.images[item.ID] = image
	u.mu.Unlock()
	return image, nil
}

// Image returns the cached preview for an item, if one was generated this
// session.
func (u *storeUsecase) Image(itemID string) (string, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	image, ok := u.images[itemID]
	return image, ok
}
