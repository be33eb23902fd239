package repository

import (
	"context"
	"encoding/json"
	"errors"

	"flashdeck/internal/domain"
	"flashdeck/internal/store"
)

// storeProgressRepository persists the singleton user progress record.
type storeProgressRepository struct {
	store domain.Store
}

// NewStoreProgressRepository creates a new progress repository backed by the
// given store.
func NewStoreProgressRepository(s domain.Store) domain.ProgressRepository {
	return &storeProgressRepository{store: s}
}

// Get returns the persisted progress record, or an empty one on first run.
func (r *storeProgressRepository) Get(ctx context.Context) (*domain.UserProgress, error) {
	raw, err := r.store.Get(ctx, store.ProgressKey)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return domain.NewUserProgress(), nil
		}
		return nil, domain.NewStorageError("failed to read user progress", err)
	}

	var progress domain.UserProgress
	if err := json.Unmarshal([]byte(raw), &progress); err != nil {
		return nil, domain.NewStorageError("failed to decode user progress", err)
	}
	if progress.Decks == nil {
		progress.Decks = map[string]domain.DeckStats{}
	}
	return &progress, nil
}

func (r *storeProgressRepository) Save(ctx context.Context, progress *domain.UserProgress) error {
	data, err := json.Marshal(progress)
	if err != nil {
		return domain.NewStorageError("failed to encode user progress", err)
	}
	if err := r.store.Set(ctx, store.ProgressKey, string(data)); err != nil {
		return domain.NewStorageError("failed to write user progress", err)
	}
	return nil
}
