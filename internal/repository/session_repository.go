package repository

import (
	"context"
	"encoding/json"
	"errors"

	"flashdeck/internal/domain"
	"flashdeck/internal/store"
)

// storeSessionRepository persists the singleton current session.
type storeSessionRepository struct {
	store domain.Store
}

// NewStoreSessionRepository creates a new session repository backed by the
// given store.
func NewStoreSessionRepository(s domain.Store) domain.SessionRepository {
	return &storeSessionRepository{store: s}
}

// Get returns the persisted session, or (nil, nil) when none is stored.
func (r *storeSessionRepository) Get(ctx context.Context) (*domain.QuizSession, error) {
	raw, err := r.store.Get(ctx, store.SessionKey)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, domain.NewStorageError("failed to read current session", err)
	}

	var session domain.QuizSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, domain.NewStorageError("failed to decode current session", err)
	}
	return &session, nil
}

func (r *storeSessionRepository) Save(ctx context.Context, session *domain.QuizSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return domain.NewStorageError("failed to encode current session", err)
	}
	if err := r.store.Set(ctx, store.SessionKey, string(data)); err != nil {
		return domain.NewStorageError("failed to write current session", err)
	}
	return nil
}

func (r *storeSessionRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, store.SessionKey); err != nil {
		return domain.NewStorageError("failed to clear current session", err)
	}
	return nil
}
