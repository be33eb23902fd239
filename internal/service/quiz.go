package service

import (
	"context"
	"time"

	"flashdeck/internal/domain"
	"flashdeck/internal/dto"
	"flashdeck/internal/logger"
	"flashdeck/internal/util"

	"go.uber.org/zap"
)

// QuizService defines the interface for the quiz session state machine.
// Every mutation is written through to the store before it returns.
type QuizService interface {
	StartQuiz(ctx context.Context, deckID string) (*dto.SessionResponse, error)
	StartCustomQuiz(ctx context.Context, deckIDs []string, questionCount int) (*dto.SessionResponse, error)
	CurrentSession(ctx context.Context) (*dto.SessionResponse, error)
	CurrentQuestion(ctx context.Context) (*dto.QuestionResponse, error)
	SubmitAnswer(ctx context.Context, questionID string, selectedAnswer int, isCorrect bool) error
	NextQuestion(ctx context.Context) error
	CompleteQuiz(ctx context.Context) (*dto.SessionResultResponse, error)
	ResetSession(ctx context.Context) error
}

// quizService implements QuizService. The in-memory session is the working
// copy; the session repository holds the durable one. State transitions are
// driven by a single-threaded event loop, so no locking is done here.
type quizService struct {
	deckRepo     domain.DeckRepository
	sessionRepo  domain.SessionRepository
	progressRepo domain.ProgressRepository
	session      *domain.QuizSession
}

// NewQuizService creates a new quizService, restoring any persisted session
// so an interrupted quiz survives a restart.
func NewQuizService(
	ctx context.Context,
	deckRepo domain.DeckRepository,
	sessionRepo domain.SessionRepository,
	progressRepo domain.ProgressRepository,
) QuizService {
	s := &quizService{
		deckRepo:     deckRepo,
		sessionRepo:  sessionRepo,
		progressRepo: progressRepo,
	}

	session, err := sessionRepo.Get(ctx)
	if err != nil {
		logger.Get().Warn("Failed to restore persisted session, starting idle", zap.Error(err))
	} else if session != nil {
		s.session = session
		logger.Get().Info("Restored persisted quiz session",
			zap.String("deckID", session.DeckID),
			zap.Int("answered", len(session.Answers)),
			zap.Bool("completed", session.Completed))
	}

	return s
}

// StartQuiz begins a new single-deck session over the deck's questions in
// insertion order. Any existing session is replaced; its unfolded answers are
// discarded by design.
func (s *quizService) StartQuiz(ctx context.Context, deckID string) (*dto.SessionResponse, error) {
	deck, err := s.deckRepo.GetByID(ctx, deckID)
	if err != nil {
		return nil, err
	}
	if deck == nil {
		return nil, domain.NewDeckNotFoundError(deckID)
	}

	session := domain.NewSession(deck)
	if err := s.replaceSession(ctx, session); err != nil {
		return nil, err
	}

	logger.Get().Info("Started quiz",
		zap.String("deckID", deckID),
		zap.Int("questions", len(session.QuestionIDs)))

	return toSessionResponse(session), nil
}

// StartCustomQuiz begins a session over a uniform random sample drawn from
// the pooled questions of the named decks. The sample is fixed at start time
// and stored in the session, so later deck mutations cannot change it.
func (s *quizService) StartCustomQuiz(ctx context.Context, deckIDs []string, questionCount int) (*dto.SessionResponse, error) {
	if len(deckIDs) == 0 {
		return nil, domain.NewInvalidInputError("at least one deck is required for a custom quiz")
	}
	if questionCount <= 0 {
		return nil, domain.NewInvalidInputError("question count must be positive")
	}

	var pool []string
	resolved := make([]string, 0, len(deckIDs))
	for _, deckID := range deckIDs {
		deck, err := s.deckRepo.GetByID(ctx, deckID)
		if err != nil {
			return nil, err
		}
		if deck == nil {
			logger.Get().Warn("Custom quiz references missing deck, skipping", zap.String("deckID", deckID))
			continue
		}
		resolved = append(resolved, deck.ID)
		for i := range deck.Questions {
			pool = append(pool, deck.Questions[i].ID)
		}
	}

	if len(resolved) == 0 {
		return nil, domain.NewInvalidInputError("none of the selected decks exist")
	}
	if len(pool) == 0 {
		return nil, domain.NewInvalidInputError("selected decks contain no questions")
	}

	sampled := util.Sample(pool, questionCount)
	session := domain.NewCustomSession(resolved, sampled, questionCount)
	if err := s.replaceSession(ctx, session); err != nil {
		return nil, err
	}

	logger.Get().Info("Started custom quiz",
		zap.Strings("deckIDs", resolved),
		zap.Int("poolSize", len(pool)),
		zap.Int("sampled", len(sampled)))

	return toSessionResponse(session), nil
}

// CurrentSession returns the state of the current session.
func (s *quizService) CurrentSession(ctx context.Context) (*dto.SessionResponse, error) {
	if s.session == nil {
		return nil, domain.NewNoActiveSessionError()
	}
	return toSessionResponse(s.session), nil
}

// CurrentQuestion resolves the question at the session cursor against live
// deck state. A question whose deck was deleted mid-session is reported, not
// silently skipped.
func (s *quizService) CurrentQuestion(ctx context.Context) (*dto.QuestionResponse, error) {
	if s.session == nil {
		return nil, domain.NewNoActiveSessionError()
	}

	questionID := s.session.CurrentQuestionID()
	if questionID == "" {
		return nil, domain.NewInvalidInputError("session cursor is past the last question")
	}

	for _, deckID := range s.session.DeckIDs {
		deck, err := s.deckRepo.GetByID(ctx, deckID)
		if err != nil {
			return nil, err
		}
		if deck == nil {
			continue
		}
		if q := deck.QuestionByID(questionID); q != nil {
			return &dto.QuestionResponse{
				ID:            q.ID,
				Question:      q.Question,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
				DeckID:        deck.ID,
			}, nil
		}
	}
	return nil, domain.NewQuestionNotFoundError(questionID)
}

// SubmitAnswer appends one answer record. Correctness is computed by the
// caller and trusted here. Submitting twice for the same question appends two
// records; that is the documented policy, not a bug guard.
func (s *quizService) SubmitAnswer(ctx context.Context, questionID string, selectedAnswer int, isCorrect bool) error {
	if s.session == nil {
		return domain.NewNoActiveSessionError()
	}

	s.session.RecordAnswer(questionID, selectedAnswer, isCorrect)
	return s.sessionRepo.Save(ctx, s.session)
}

// NextQuestion advances the cursor. The caller must not advance past the last
// question.
func (s *quizService) NextQuestion(ctx context.Context) error {
	if s.session == nil {
		return domain.NewNoActiveSessionError()
	}

	s.session.Advance()
	return s.sessionRepo.Save(ctx, s.session)
}

// CompleteQuiz folds the session's answers into the user progress record and
// marks the session completed. The session is retained so the result screen
// can read it. Calling CompleteQuiz twice on the same session folds twice and
// double-counts; callers must complete a session exactly once.
func (s *quizService) CompleteQuiz(ctx context.Context) (*dto.SessionResultResponse, error) {
	if s.session == nil {
		return nil, domain.NewNoActiveSessionError()
	}

	attribution, err := s.attributeAnswers(ctx)
	if err != nil {
		return nil, err
	}

	progress, err := s.progressRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	progress.RecordSession(attribution, time.Now())
	if err := s.progressRepo.Save(ctx, progress); err != nil {
		return nil, err
	}

	s.session.Completed = true
	if err := s.sessionRepo.Save(ctx, s.session); err != nil {
		return nil, err
	}

	correctCount := s.session.CorrectCount()
	answeredCount := len(s.session.Answers)

	logger.Get().Info("Completed quiz",
		zap.String("deckID", s.session.DeckID),
		zap.Int("correct", correctCount),
		zap.Int("answered", answeredCount))

	return &dto.SessionResultResponse{
		DeckID:        s.session.DeckID,
		CorrectCount:  correctCount,
		AnsweredCount: answeredCount,
		Accuracy:      util.CalculateAccuracy(correctCount, answeredCount),
	}, nil
}

// ResetSession clears the session to idle unconditionally.
func (s *quizService) ResetSession(ctx context.Context) error {
	s.session = nil
	return s.sessionRepo.Clear(ctx)
}

// replaceSession installs a new session, discarding any previous one.
func (s *quizService) replaceSession(ctx context.Context, session *domain.QuizSession) error {
	if s.session != nil && !s.session.Completed && len(s.session.Answers) > 0 {
		logger.Get().Warn("Replacing unfinished session, in-progress answers are discarded",
			zap.String("deckID", s.session.DeckID),
			zap.Int("answered", len(s.session.Answers)))
	}
	s.session = session
	return s.sessionRepo.Save(ctx, session)
}

// attributeAnswers maps each answer to the deck that owns its question.
// Single-deck sessions attribute everything to the session deck, which must
// still exist. Custom sessions attribute per owning deck; answers whose
// question no longer resolves are excluded so the overall accuracy invariant
// cannot break.
func (s *quizService) attributeAnswers(ctx context.Context) (map[string][]domain.UserAnswer, error) {
	attribution := map[string][]domain.UserAnswer{}

	if !s.session.IsCustom() {
		deck, err := s.deckRepo.GetByID(ctx, s.session.DeckID)
		if err != nil {
			return nil, err
		}
		if deck == nil {
			return nil, domain.NewDeckNotFoundError(s.session.DeckID)
		}
		attribution[deck.ID] = s.session.Answers
		return attribution, nil
	}

	owners := map[string]string{}
	for _, deckID := range s.session.DeckIDs {
		deck, err := s.deckRepo.GetByID(ctx, deckID)
		if err != nil {
			return nil, err
		}
		if deck == nil {
			continue
		}
		for i := range deck.Questions {
			owners[deck.Questions[i].ID] = deck.ID
		}
	}

	for _, answer := range s.session.Answers {
		deckID, ok := owners[answer.QuestionID]
		if !ok {
			logger.Get().Warn("Answer references question with no live deck, excluded from stats",
				zap.String("questionID", answer.QuestionID))
			continue
		}
		attribution[deckID] = append(attribution[deckID], answer)
	}
	return attribution, nil
}

func toSessionResponse(session *domain.QuizSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		DeckID:               session.DeckID,
		DeckIDs:              session.DeckIDs,
		TotalQuestions:       len(session.QuestionIDs),
		CurrentQuestionIndex: session.CurrentQuestionIndex,
		AnsweredCount:        len(session.Answers),
		CorrectCount:         session.CorrectCount(),
		StartTime:            session.StartTime,
		Completed:            session.Completed,
	}
}
