package repository

import (
	"context"

	"github.com/eslsoft/blinkvocab/internal/infrastructure/database"
	"github.com/eslsoft/blinkvocab/internal/repository"
)

const (
	profileNamespace = "profile"
	profileKey       = "user_state"
)

// ProfileSnapshotRepository stores the serialized profile in the KV store
// under a fixed namespaced key.
type ProfileSnapshotRepository struct {
	store *database.Store
}

// NewProfileSnapshotRepository constructs a KV-backed snapshot repository.
func NewProfileSnapshotRepository(store *database.Store) repository.SnapshotRepository {
	return &ProfileSnapshotRepository{store: store}
}

func (r *ProfileSnapshotRepository) Load(ctx context.Context) ([]byte, error) {
	return r.store.Get(ctx, profileNamespace, profileKey)
}

func (r *ProfileSnapshotRepository) Save(ctx context.Context, snapshot []byte) error {
	return r.store.Put(ctx, profileNamespace, profileKey, snapshot)
}
