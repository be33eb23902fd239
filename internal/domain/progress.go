package domain

import (
	"sort"
	"time"

	"flashdeck/internal/util"
)

// DeckStats is the running aggregate for one deck. Accuracy is derived from
// the raw counters on every update and never incrementally drifted.
type DeckStats struct {
	DeckID          string    `json:"deckId"`
	TotalAttempts   int       `json:"totalAttempts"`
	CorrectAnswers  int       `json:"correctAnswers"`
	TotalQuestions  int       `json:"totalQuestions"`
	Accuracy        float64   `json:"accuracy"`
	LastAttemptDate time.Time `json:"lastAttemptDate"`
}

// UserProgress is the process-wide accuracy bookkeeping record, keyed by deck
// id plus global counters. OverallAccuracy is always recomputed as
// sum(CorrectAnswers)/TotalQuestionsAnswered*100.
type UserProgress struct {
	Decks                  map[string]DeckStats `json:"decks"`
	TotalQuizzes           int                  `json:"totalQuizzes"`
	TotalQuestionsAnswered int                  `json:"totalQuestionsAnswered"`
	OverallAccuracy        float64              `json:"overallAccuracy"`
}

// NewUserProgress returns an empty progress record.
func NewUserProgress() *UserProgress {
	return &UserProgress{Decks: map[string]DeckStats{}}
}

// RecordSession folds one completed session into the progress record. The
// attribution maps each contributing deck id to the answers belonging to it;
// single-deck sessions pass a single entry. TotalQuizzes increments once per
// session regardless of how many decks contributed.
func (p *UserProgress) RecordSession(attribution map[string][]UserAnswer, now time.Time) {
	deckIDs := make([]string, 0, len(attribution))
	for deckID := range attribution {
		deckIDs = append(deckIDs, deckID)
	}
	sort.Strings(deckIDs)

	for _, deckID := range deckIDs {
		p.recordAttempt(deckID, attribution[deckID], now)
	}
	p.TotalQuizzes++
}

// recordAttempt folds one deck's share of a session into its stats bucket and
// the global counters.
func (p *UserProgress) recordAttempt(deckID string, answers []UserAnswer, now time.Time) {
	if p.Decks == nil {
		p.Decks = map[string]DeckStats{}
	}

	stats, ok := p.Decks[deckID]
	if !ok {
		stats = DeckStats{DeckID: deckID}
	}

	correctCount := 0
	for _, a := range answers {
		if a.IsCorrect {
			correctCount++
		}
	}

	stats.TotalAttempts++
	stats.CorrectAnswers += correctCount
	stats.TotalQuestions += len(answers)
	stats.Accuracy = util.CalculateAccuracy(stats.CorrectAnswers, stats.TotalQuestions)
	stats.LastAttemptDate = now
	p.Decks[deckID] = stats

	p.TotalQuestionsAnswered += len(answers)
	p.recomputeOverallAccuracy()
}

// RemoveDeck drops a deck's stats entry. The deck's counters are subtracted
// from the global totals so the overall accuracy invariant holds; other
// decks' stats are untouched. TotalQuizzes is a lifetime counter and is kept.
func (p *UserProgress) RemoveDeck(deckID string) {
	stats, ok := p.Decks[deckID]
	if !ok {
		return
	}
	delete(p.Decks, deckID)
	p.TotalQuestionsAnswered -= stats.TotalQuestions
	if p.TotalQuestionsAnswered < 0 {
		p.TotalQuestionsAnswered = 0
	}
	p.recomputeOverallAccuracy()
}

func (p *UserProgress) recomputeOverallAccuracy() {
	totalCorrect := 0
	for _, stats := range p.Decks {
		totalCorrect += stats.CorrectAnswers
	}
	p.OverallAccuracy = util.CalculateAccuracy(totalCorrect, p.TotalQuestionsAnswered)
}
