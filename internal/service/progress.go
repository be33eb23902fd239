package service

import (
	"context"
	"sort"

	"flashdeck/internal/domain"
	"flashdeck/internal/dto"
	"flashdeck/internal/util"
)

// ProgressService is the read path over the user progress record. All ratios
// are derived from raw counters here, never read from stored state.
type ProgressService interface {
	GetUserProgress(ctx context.Context) (*dto.ProgressResponse, error)
	GetDeckStats(ctx context.Context, deckID string) (*dto.DeckStatsResponse, error)
	StreakMessage(stats *dto.DeckStatsResponse) string
}

type progressService struct {
	progressRepo domain.ProgressRepository
	deckRepo     domain.DeckRepository
}

// NewProgressService creates a new instance of progressService
func NewProgressService(progressRepo domain.ProgressRepository, deckRepo domain.DeckRepository) ProgressService {
	return &progressService{
		progressRepo: progressRepo,
		deckRepo:     deckRepo,
	}
}

// GetUserProgress returns the overall statistics view, one entry per deck
// with recorded attempts, ordered by deck name where the deck still exists.
func (s *progressService) GetUserProgress(ctx context.Context) (*dto.ProgressResponse, error) {
	progress, err := s.progressRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	names := map[string]string{}
	decks, err := s.deckRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range decks {
		names[decks[i].ID] = decks[i].Name
	}

	entries := make([]dto.DeckStatsResponse, 0, len(progress.Decks))
	for deckID, stats := range progress.Decks {
		entries = append(entries, toDeckStatsResponse(&stats, names[deckID]))
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].DeckName != entries[j].DeckName {
			return entries[i].DeckName < entries[j].DeckName
		}
		return entries[i].DeckID < entries[j].DeckID
	})

	return &dto.ProgressResponse{
		Decks:                  entries,
		TotalQuizzes:           progress.TotalQuizzes,
		TotalQuestionsAnswered: progress.TotalQuestionsAnswered,
		OverallAccuracy:        progress.OverallAccuracy,
		PerformanceLevel:       util.PerformanceLevel(progress.OverallAccuracy),
	}, nil
}

// GetDeckStats returns one deck's statistics. A deck with no attempts yet
// gets a zeroed response rather than an error.
func (s *progressService) GetDeckStats(ctx context.Context, deckID string) (*dto.DeckStatsResponse, error) {
	deck, err := s.deckRepo.GetByID(ctx, deckID)
	if err != nil {
		return nil, err
	}
	if deck == nil {
		return nil, domain.NewDeckNotFoundError(deckID)
	}

	progress, err := s.progressRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	stats, ok := progress.Decks[deckID]
	if !ok {
		stats = domain.DeckStats{DeckID: deckID}
	}
	response := toDeckStatsResponse(&stats, deck.Name)
	return &response, nil
}

// StreakMessage renders an encouragement line for a deck's stats.
func (s *progressService) StreakMessage(stats *dto.DeckStatsResponse) string {
	switch {
	case stats.TotalAttempts == 0:
		return "Start your first quiz!"
	case stats.Accuracy >= 90:
		return "On fire!"
	case stats.Accuracy >= 75:
		return "Great job!"
	case stats.Accuracy >= 60:
		return "Keep it up!"
	default:
		return "Practice makes perfect!"
	}
}

func toDeckStatsResponse(stats *domain.DeckStats, deckName string) dto.DeckStatsResponse {
	accuracy := util.CalculateAccuracy(stats.CorrectAnswers, stats.TotalQuestions)
	return dto.DeckStatsResponse{
		DeckID:           stats.DeckID,
		DeckName:         deckName,
		TotalAttempts:    stats.TotalAttempts,
		CorrectAnswers:   stats.CorrectAnswers,
		TotalQuestions:   stats.TotalQuestions,
		Accuracy:         accuracy,
		PerformanceLevel: util.PerformanceLevel(accuracy),
		LastAttemptDate:  stats.LastAttemptDate,
	}
}
