package usecase

import (
	"context"

	"github.com/eslsoft/blinkvocab/internal/entity"
)

// ContentProvider abstracts the external AI generation service. Both methods
// may fail freely; callers degrade to placeholders and never surface provider
// errors as blocking failures.
type ContentProvider interface {
	FetchWordDetail(ctx context.Context, word string, difficulty entity.DifficultyLevel) (*entity.WordDetail, error)
	GenerateItemImage(ctx context.Context, itemName string, category entity.ItemCategory) (string, error)
}
