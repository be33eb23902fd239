package domain

import (
	"fmt"
	"time"
)

// Option count bounds for a multiple-choice question.
const (
	MinOptions = 2
	MaxOptions = 6
)

// ValidationError represents a validation error
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

func NewValidationError(message string) error {
	return &ValidationError{message: message}
}

// Question is a single multiple-choice question. Questions are immutable once
// their deck is created.
type Question struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// Validate validates the question
func (q *Question) Validate() error {
	if q.Question == "" {
		return NewValidationError("question text is required")
	}
	if len(q.Options) < MinOptions || len(q.Options) > MaxOptions {
		return NewValidationError(fmt.Sprintf("question must have between %d and %d options, got %d", MinOptions, MaxOptions, len(q.Options)))
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return NewValidationError(fmt.Sprintf("correct answer index %d out of range for %d options", q.CorrectAnswer, len(q.Options)))
	}
	return nil
}

// Deck owns an ordered collection of questions. Insertion order is quiz order
// for single-deck sessions.
type Deck struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// NewDeck creates a new Deck instance. The caller assigns the ID.
func NewDeck(id, name, description string, questions []Question) *Deck {
	return &Deck{
		ID:          id,
		Name:        name,
		Description: description,
		Questions:   questions,
		CreatedAt:   time.Now(),
	}
}

// Validate validates the deck and all of its questions
func (d *Deck) Validate() error {
	if d.Name == "" {
		return NewValidationError("name is required")
	}
	if len(d.Questions) == 0 {
		return NewValidationError("deck must contain at least one question")
	}
	for i := range d.Questions {
		if err := d.Questions[i].Validate(); err != nil {
			return NewValidationError(fmt.Sprintf("question %d: %v", i+1, err))
		}
	}
	return nil
}

// QuestionByID returns the question with the given id, or nil.
func (d *Deck) QuestionByID(questionID string) *Question {
	for i := range d.Questions {
		if d.Questions[i].ID == questionID {
			return &d.Questions[i]
		}
	}
	return nil
}
