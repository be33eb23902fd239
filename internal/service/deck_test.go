package service

import (
	"testing"

	"flashdeck/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDeckContent = `What is 2+2? | 3 | 4 | 5 | 1
Capital of France? | London | Paris | Berlin | Madrid | 1
Is water wet? | Yes | No | 0
`

func TestCreateDeckFromFile(t *testing.T) {
	env, ctx := newTestEnv(t)

	deck, err := env.decks.CreateDeckFromFile(ctx, "  General Knowledge  ", " trivia ", sampleDeckContent)
	require.NoError(t, err)
	assert.NotEmpty(t, deck.ID)
	assert.Equal(t, "General Knowledge", deck.Name)
	assert.Equal(t, "trivia", deck.Description)
	assert.Equal(t, 3, deck.QuestionCount)
	assert.False(t, deck.CreatedAt.IsZero())

	stored, err := env.decks.GetDeck(ctx, deck.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Questions, 3)
	assert.Equal(t, "What is 2+2?", stored.Questions[0].Question)
	assert.Equal(t, 1, stored.Questions[0].CorrectAnswer)
}

func TestCreateDeckFromFile_EmptyName(t *testing.T) {
	env, ctx := newTestEnv(t)

	_, err := env.decks.CreateDeckFromFile(ctx, "   ", "", sampleDeckContent)
	assert.True(t, domain.IsCode(err, domain.ErrInvalidInput))
}

func TestCreateDeckFromFile_BadContent(t *testing.T) {
	env, ctx := newTestEnv(t)

	_, err := env.decks.CreateDeckFromFile(ctx, "Broken", "", "no pipes here")
	assert.True(t, domain.IsCode(err, domain.ErrImportFailure))

	decks, listErr := env.decks.ListDecks(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, decks, "failed import must not persist a deck")
}

func TestListDecks(t *testing.T) {
	env, ctx := newTestEnv(t)

	decks, err := env.decks.ListDecks(ctx)
	require.NoError(t, err)
	assert.Empty(t, decks)

	seedDeck(t, env, ctx, "A", []int{0})
	seedDeck(t, env, ctx, "B", []int{1, 2})

	decks, err = env.decks.ListDecks(ctx)
	require.NoError(t, err)
	require.Len(t, decks, 2)
	assert.Equal(t, "A", decks[0].Name)
	assert.Equal(t, 1, decks[0].QuestionCount)
	assert.Equal(t, 2, decks[1].QuestionCount)
}

func TestGetDeck_NotFound(t *testing.T) {
	env, ctx := newTestEnv(t)

	_, err := env.decks.GetDeck(ctx, "missing")
	assert.True(t, domain.IsCode(err, domain.ErrDeckNotFound))
}

func TestUpdateDeck_Partial(t *testing.T) {
	env, ctx := newTestEnv(t)
	deck := seedDeck(t, env, ctx, "Old Name", []int{0})

	newName := "New Name"
	updated, err := env.decks.UpdateDeck(ctx, deck.ID, &newName, nil)
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, deck.Description, updated.Description)

	desc := "  fresh description  "
	updated, err = env.decks.UpdateDeck(ctx, deck.ID, nil, &desc)
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "fresh description", updated.Description)

	blank := "  "
	_, err = env.decks.UpdateDeck(ctx, deck.ID, &blank, nil)
	assert.True(t, domain.IsCode(err, domain.ErrInvalidInput))

	_, err = env.decks.UpdateDeck(ctx, "missing", &newName, nil)
	assert.True(t, domain.IsCode(err, domain.ErrDeckNotFound))
}

// Deleting a deck removes its stats entry but leaves other decks' stats
// untouched.
func TestDeleteDeck_CascadesStats(t *testing.T) {
	env, ctx := newTestEnv(t)
	deckA := seedDeck(t, env, ctx, "A", []int{0})
	deckB := seedDeck(t, env, ctx, "B", []int{0})

	for _, deck := range []*domain.Deck{deckA, deckB} {
		_, err := env.quiz.StartQuiz(ctx, deck.ID)
		require.NoError(t, err)
		require.NoError(t, env.quiz.SubmitAnswer(ctx, deck.Questions[0].ID, 0, true))
		_, err = env.quiz.CompleteQuiz(ctx)
		require.NoError(t, err)
		require.NoError(t, env.quiz.ResetSession(ctx))
	}

	require.NoError(t, env.decks.DeleteDeck(ctx, deckA.ID))

	_, err := env.decks.GetDeck(ctx, deckA.ID)
	assert.True(t, domain.IsCode(err, domain.ErrDeckNotFound))

	_, err = env.progress.GetDeckStats(ctx, deckA.ID)
	assert.True(t, domain.IsCode(err, domain.ErrDeckNotFound))

	statsB, err := env.progress.GetDeckStats(ctx, deckB.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, statsB.TotalAttempts)
	assert.Equal(t, 1, statsB.CorrectAnswers)

	overall, err := env.progress.GetUserProgress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, overall.TotalQuizzes, "quiz count survives deck deletion")
	assert.Equal(t, 1, overall.TotalQuestionsAnswered)
	assert.InDelta(t, 100.0, overall.OverallAccuracy, 0.01)
}

func TestDeleteDeck_NotFound(t *testing.T) {
	env, ctx := newTestEnv(t)

	err := env.decks.DeleteDeck(ctx, "missing")
	assert.True(t, domain.IsCode(err, domain.ErrDeckNotFound))
}
