package domain

import "testing"

func TestQuestion_Validate(t *testing.T) {
	tests := []struct {
		name     string
		question Question
		wantErr  bool
	}{
		{"valid question", Question{ID: "q1", Question: "2+2?", Options: []string{"3", "4"}, CorrectAnswer: 1}, false},
		{"six options", Question{ID: "q1", Question: "pick", Options: []string{"a", "b", "c", "d", "e", "f"}, CorrectAnswer: 5}, false},
		{"empty text", Question{ID: "q1", Options: []string{"a", "b"}, CorrectAnswer: 0}, true},
		{"one option", Question{ID: "q1", Question: "pick", Options: []string{"a"}, CorrectAnswer: 0}, true},
		{"seven options", Question{ID: "q1", Question: "pick", Options: []string{"a", "b", "c", "d", "e", "f", "g"}, CorrectAnswer: 0}, true},
		{"answer index too large", Question{ID: "q1", Question: "pick", Options: []string{"a", "b"}, CorrectAnswer: 2}, true},
		{"answer index negative", Question{ID: "q1", Question: "pick", Options: []string{"a", "b"}, CorrectAnswer: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.question.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Question.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDeck_Validate(t *testing.T) {
	validQuestion := Question{ID: "q1", Question: "2+2?", Options: []string{"3", "4"}, CorrectAnswer: 1}

	tests := []struct {
		name    string
		deck    Deck
		wantErr bool
	}{
		{"valid deck", Deck{ID: "d1", Name: "Math", Questions: []Question{validQuestion}}, false},
		{"missing name", Deck{ID: "d1", Questions: []Question{validQuestion}}, true},
		{"no questions", Deck{ID: "d1", Name: "Math"}, true},
		{"invalid question", Deck{ID: "d1", Name: "Math", Questions: []Question{{ID: "q1", Question: "bad", Options: []string{"only"}, CorrectAnswer: 0}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.deck.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Deck.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDeck_QuestionByID(t *testing.T) {
	deck := Deck{
		ID:   "d1",
		Name: "Math",
		Questions: []Question{
			{ID: "q1", Question: "a", Options: []string{"x", "y"}, CorrectAnswer: 0},
			{ID: "q2", Question: "b", Options: []string{"x", "y"}, CorrectAnswer: 1},
		},
	}

	if q := deck.QuestionByID("q2"); q == nil || q.Question != "b" {
		t.Errorf("QuestionByID(q2) = %v, want question b", q)
	}
	if q := deck.QuestionByID("missing"); q != nil {
		t.Errorf("QuestionByID(missing) = %v, want nil", q)
	}
}

func TestNewDeck(t *testing.T) {
	questions := []Question{{ID: "q1", Question: "a", Options: []string{"x", "y"}, CorrectAnswer: 0}}
	deck := NewDeck("d1", "Math", "arithmetic drills", questions)

	if deck.ID != "d1" || deck.Name != "Math" || deck.Description != "arithmetic drills" {
		t.Errorf("NewDeck() fields = %+v", deck)
	}
	if len(deck.Questions) != 1 {
		t.Errorf("NewDeck() len(Questions) = %d, want 1", len(deck.Questions))
	}
	if deck.CreatedAt.IsZero() {
		t.Error("NewDeck() CreatedAt is zero, want non-zero")
	}
}
