package domain

import "time"

// CustomDeckID is the sentinel deck id tagging sessions that mix questions
// from several decks.
const CustomDeckID = "custom"

// UserAnswer is an immutable record of one submitted answer. Correctness is
// computed by the caller at submission time and trusted by the engine.
type UserAnswer struct {
	QuestionID     string    `json:"questionId"`
	SelectedAnswer int       `json:"selectedAnswer"`
	IsCorrect      bool      `json:"isCorrect"`
	Timestamp      time.Time `json:"timestamp"`
}

// QuizSession is one quiz attempt, in progress or just finished. At most one
// exists at a time. QuestionIDs is fixed at session start for both modes, so
// the question order never changes underneath an active session.
type QuizSession struct {
	DeckID               string       `json:"deckId"`
	DeckIDs              []string     `json:"deckIds"`
	QuestionIDs          []string     `json:"questionIds"`
	QuestionCount        int          `json:"questionCount,omitempty"`
	CurrentQuestionIndex int          `json:"currentQuestionIndex"`
	Answers              []UserAnswer `json:"answers"`
	StartTime            time.Time    `json:"startTime"`
	Completed            bool         `json:"completed"`
}

// NewSession creates an active single-deck session over the deck's questions
// in insertion order.
func NewSession(deck *Deck) *QuizSession {
	questionIDs := make([]string, 0, len(deck.Questions))
	for i := range deck.Questions {
		questionIDs = append(questionIDs, deck.Questions[i].ID)
	}
	return &QuizSession{
		DeckID:      deck.ID,
		DeckIDs:     []string{deck.ID},
		QuestionIDs: questionIDs,
		StartTime:   time.Now(),
		Answers:     []UserAnswer{},
	}
}

// NewCustomSession creates an active custom session over an already-sampled
// ordered question id list.
func NewCustomSession(deckIDs []string, questionIDs []string, questionCount int) *QuizSession {
	return &QuizSession{
		DeckID:        CustomDeckID,
		DeckIDs:       deckIDs,
		QuestionIDs:   questionIDs,
		QuestionCount: questionCount,
		StartTime:     time.Now(),
		Answers:       []UserAnswer{},
	}
}

// IsCustom reports whether the session mixes questions across decks.
func (s *QuizSession) IsCustom() bool {
	return s.DeckID == CustomDeckID
}

// RecordAnswer appends one answer record. Answers are append-only; submitting
// twice for the same question appends two records.
func (s *QuizSession) RecordAnswer(questionID string, selectedAnswer int, isCorrect bool) UserAnswer {
	answer := UserAnswer{
		QuestionID:     questionID,
		SelectedAnswer: selectedAnswer,
		IsCorrect:      isCorrect,
		Timestamp:      time.Now(),
	}
	s.Answers = append(s.Answers, answer)
	return answer
}

// Advance moves the cursor to the next question. The caller must not advance
// past the last question.
func (s *QuizSession) Advance() {
	s.CurrentQuestionIndex++
}

// CurrentQuestionID returns the question id at the cursor, or "" when the
// cursor is past the end.
func (s *QuizSession) CurrentQuestionID() string {
	if s.CurrentQuestionIndex < 0 || s.CurrentQuestionIndex >= len(s.QuestionIDs) {
		return ""
	}
	return s.QuestionIDs[s.CurrentQuestionIndex]
}

// CorrectCount counts the correct answers recorded so far.
func (s *QuizSession) CorrectCount() int {
	count := 0
	for _, a := range s.Answers {
		if a.IsCorrect {
			count++
		}
	}
	return count
}
