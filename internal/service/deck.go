package service

import (
	"context"
	"strings"

	"flashdeck/internal/domain"
	"flashdeck/internal/dto"
	"flashdeck/internal/logger"
	"flashdeck/internal/util"

	"go.uber.org/zap"
)

// DeckService defines the interface for deck management operations
type DeckService interface {
	CreateDeckFromFile(ctx context.Context, name, description, content string) (*dto.DeckResponse, error)
	ListDecks(ctx context.Context) ([]*dto.DeckResponse, error)
	GetDeck(ctx context.Context, deckID string) (*domain.Deck, error)
	UpdateDeck(ctx context.Context, deckID string, name, description *string) (*dto.DeckResponse, error)
	DeleteDeck(ctx context.Context, deckID string) error
}

// deckService implements DeckService
type deckService struct {
	deckRepo     domain.DeckRepository
	progressRepo domain.ProgressRepository
}

// NewDeckService creates a new instance of deckService
func NewDeckService(deckRepo domain.DeckRepository, progressRepo domain.ProgressRepository) DeckService {
	return &deckService{
		deckRepo:     deckRepo,
		progressRepo: progressRepo,
	}
}

// CreateDeckFromFile parses uploaded file content and persists a new deck.
func (s *deckService) CreateDeckFromFile(ctx context.Context, name, description, content string) (*dto.DeckResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewInvalidInputError("deck name is required")
	}

	questions, err := ParseQuizFile(content)
	if err != nil {
		return nil, err
	}

	deck := domain.NewDeck(util.NewULID(), name, strings.TrimSpace(description), questions)
	if err := deck.Validate(); err != nil {
		return nil, domain.NewInvalidInputError(err.Error())
	}

	if err := s.deckRepo.Save(ctx, deck); err != nil {
		return nil, err
	}

	logger.Get().Info("Created deck",
		zap.String("deckID", deck.ID),
		zap.String("name", deck.Name),
		zap.Int("questions", len(deck.Questions)))

	return toDeckResponse(deck), nil
}

// ListDecks returns summaries for all decks.
func (s *deckService) ListDecks(ctx context.Context) ([]*dto.DeckResponse, error) {
	decks, err := s.deckRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.DeckResponse, 0, len(decks))
	for i := range decks {
		responses = append(responses, toDeckResponse(&decks[i]))
	}
	return responses, nil
}

// GetDeck returns the full deck, questions included.
func (s *deckService) GetDeck(ctx context.Context, deckID string) (*domain.Deck, error) {
	deck, err := s.deckRepo.GetByID(ctx, deckID)
	if err != nil {
		return nil, err
	}
	if deck == nil {
		return nil, domain.NewDeckNotFoundError(deckID)
	}
	return deck, nil
}

// UpdateDeck applies a partial update to name and description. Questions are
// immutable once the deck is created.
func (s *deckService) UpdateDeck(ctx context.Context, deckID string, name, description *string) (*dto.DeckResponse, error) {
	deck, err := s.GetDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, domain.NewInvalidInputError("deck name is required")
		}
		deck.Name = trimmed
	}
	if description != nil {
		deck.Description = strings.TrimSpace(*description)
	}

	if err := s.deckRepo.Update(ctx, deck); err != nil {
		return nil, err
	}
	return toDeckResponse(deck), nil
}

// DeleteDeck removes the deck and cascades removal of its stats entry from
// the user progress record.
func (s *deckService) DeleteDeck(ctx context.Context, deckID string) error {
	if err := s.deckRepo.Delete(ctx, deckID); err != nil {
		return err
	}

	progress, err := s.progressRepo.Get(ctx)
	if err != nil {
		return err
	}
	progress.RemoveDeck(deckID)
	if err := s.progressRepo.Save(ctx, progress); err != nil {
		return err
	}

	logger.Get().Info("Deleted deck", zap.String("deckID", deckID))
	return nil
}

func toDeckResponse(deck *domain.Deck) *dto.DeckResponse {
	return &dto.DeckResponse{
		ID:            deck.ID,
		Name:          deck.Name,
		Description:   deck.Description,
		QuestionCount: len(deck.Questions),
		CreatedAt:     deck.CreatedAt,
	}
}
