package domain

import "context"

// DeckRepository provides CRUD over the deck collection.
type DeckRepository interface {
	GetAll(ctx context.Context) ([]Deck, error)
	GetByID(ctx context.Context, deckID string) (*Deck, error)
	Save(ctx context.Context, deck *Deck) error
	Update(ctx context.Context, deck *Deck) error
	Delete(ctx context.Context, deckID string) error
}

// SessionRepository persists the singleton current session. Get returns
// (nil, nil) when no session is stored.
type SessionRepository interface {
	Get(ctx context.Context) (*QuizSession, error)
	Save(ctx context.Context, session *QuizSession) error
	Clear(ctx context.Context) error
}

// ProgressRepository persists the singleton user progress record. Get returns
// an empty record on first run.
type ProgressRepository interface {
	Get(ctx context.Context) (*UserProgress, error)
	Save(ctx context.Context, progress *UserProgress) error
}
