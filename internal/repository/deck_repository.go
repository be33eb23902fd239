package repository

import (
	"context"
	"encoding/json"
	"errors"

	"flashdeck/internal/domain"
	"flashdeck/internal/store"
)

// storeDeckRepository implements domain.DeckRepository over the generic
// key-value store, persisting the whole deck collection as one JSON document.
type storeDeckRepository struct {
	store domain.Store
}

// NewStoreDeckRepository creates a new deck repository backed by the given
// store.
func NewStoreDeckRepository(s domain.Store) domain.DeckRepository {
	return &storeDeckRepository{store: s}
}

func (r *storeDeckRepository) GetAll(ctx context.Context) ([]domain.Deck, error) {
	raw, err := r.store.Get(ctx, store.DecksKey)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return []domain.Deck{}, nil
		}
		return nil, domain.NewStorageError("failed to read deck collection", err)
	}

	var decks []domain.Deck
	if err := json.Unmarshal([]byte(raw), &decks); err != nil {
		return nil, domain.NewStorageError("failed to decode deck collection", err)
	}
	return decks, nil
}

func (r *storeDeckRepository) GetByID(ctx context.Context, deckID string) (*domain.Deck, error) {
	decks, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range decks {
		if decks[i].ID == deckID {
			return &decks[i], nil
		}
	}
	return nil, nil
}

func (r *storeDeckRepository) Save(ctx context.Context, deck *domain.Deck) error {
	decks, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	decks = append(decks, *deck)
	return r.writeAll(ctx, decks)
}

func (r *storeDeckRepository) Update(ctx context.Context, deck *domain.Deck) error {
	decks, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range decks {
		if decks[i].ID == deck.ID {
			decks[i] = *deck
			return r.writeAll(ctx, decks)
		}
	}
	return domain.NewDeckNotFoundError(deck.ID)
}

func (r *storeDeckRepository) Delete(ctx context.Context, deckID string) error {
	decks, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	remaining := decks[:0]
	found := false
	for _, d := range decks {
		if d.ID == deckID {
			found = true
			continue
		}
		remaining = append(remaining, d)
	}
	if !found {
		return domain.NewDeckNotFoundError(deckID)
	}
	return r.writeAll(ctx, remaining)
}

func (r *storeDeckRepository) writeAll(ctx context.Context, decks []domain.Deck) error {
	data, err := json.Marshal(decks)
	if err != nil {
		return domain.NewStorageError("failed to encode deck collection", err)
	}
	if err := r.store.Set(ctx, store.DecksKey, string(data)); err != nil {
		return domain.NewStorageError("failed to write deck collection", err)
	}
	return nil
}
