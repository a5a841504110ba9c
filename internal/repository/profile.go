package repository

import "context"

// SnapshotRepository persists the serialized user profile as a single
// last-write-wins blob. Load returns (nil, nil) when no snapshot exists yet;
// schema migration of the raw bytes is the caller's concern.
type SnapshotRepository interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, snapshot []byte) error
}
