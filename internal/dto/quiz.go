package dto

import "time"

// DeckResponse is the summary view of a deck.
type DeckResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuestionResponse is a question as shown during a quiz. The correct index is
// included because the presentation layer computes correctness at submission
// time.
type QuestionResponse struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	DeckID        string   `json:"deck_id"`
}

// SessionResponse is the state of the current session.
type SessionResponse struct {
	DeckID               string    `json:"deck_id"`
	DeckIDs              []string  `json:"deck_ids"`
	TotalQuestions       int       `json:"total_questions"`
	CurrentQuestionIndex int       `json:"current_question_index"`
	AnsweredCount        int       `json:"answered_count"`
	CorrectCount         int       `json:"correct_count"`
	StartTime            time.Time `json:"start_time"`
	Completed            bool      `json:"completed"`
}

// SessionResultResponse is the outcome of a completed session.
type SessionResultResponse struct {
	DeckID        string  `json:"deck_id"`
	CorrectCount  int     `json:"correct_count"`
	AnsweredCount int     `json:"answered_count"`
	Accuracy      float64 `json:"accuracy"`
}

// DeckStatsResponse is the derived per-deck statistics view.
type DeckStatsResponse struct {
	DeckID           string    `json:"deck_id"`
	DeckName         string    `json:"deck_name,omitempty"`
	TotalAttempts    int       `json:"total_attempts"`
	CorrectAnswers   int       `json:"correct_answers"`
	TotalQuestions   int       `json:"total_questions"`
	Accuracy         float64   `json:"accuracy"`
	PerformanceLevel string    `json:"performance_level"`
	LastAttemptDate  time.Time `json:"last_attempt_date"`
}

// ProgressResponse is the derived overall statistics view.
type ProgressResponse struct {
	Decks                  []DeckStatsResponse `json:"decks"`
	TotalQuizzes           int                 `json:"total_quizzes"`
	TotalQuestionsAnswered int                 `json:"total_questions_answered"`
	OverallAccuracy        float64             `json:"overall_accuracy"`
	PerformanceLevel       string              `json:"performance_level"`
}
