package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"flashdeck/internal/config"
	"flashdeck/internal/dto"
	"flashdeck/internal/logger"
	"flashdeck/internal/repository"
	"flashdeck/internal/service"
	"flashdeck/internal/store"
	"flashdeck/internal/util"

	"go.uber.org/zap"
)

type app struct {
	decks    service.DeckService
	quiz     service.QuizService
	progress service.ProgressService
	reader   *bufio.Reader
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// Logger is not initialized yet, so use fmt for this critical error
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	st, err := store.New(cfg)
	if err != nil {
		logger.Get().Fatal("Failed to initialize storage backend", zap.Error(err))
	}
	defer st.Close()
	logger.Get().Info("Storage backend ready", zap.String("backend", cfg.Storage.Backend))

	ctx := context.Background()
	deckRepo := repository.NewStoreDeckRepository(st)
	sessionRepo := repository.NewStoreSessionRepository(st)
	progressRepo := repository.NewStoreProgressRepository(st)

	a := &app{
		decks:    service.NewDeckService(deckRepo, progressRepo),
		quiz:     service.NewQuizService(ctx, deckRepo, sessionRepo, progressRepo),
		progress: service.NewProgressService(progressRepo, deckRepo),
		reader:   bufio.NewReader(os.Stdin),
	}
	a.run(ctx, cfg.Quiz.DefaultQuestionCount)
}

func (a *app) run(ctx context.Context, defaultQuestionCount int) {
	fmt.Println("flashdeck: flashcard quizzes in your terminal")
	for {
		fmt.Println()
		fmt.Println("1) List decks  2) Import deck  3) Delete deck  4) Start quiz  5) Custom quiz  6) Stats  q) Quit")
		choice := a.prompt("> ")
		switch choice {
		case "1":
			a.listDecks(ctx)
		case "2":
			a.importDeck(ctx)
		case "3":
			a.deleteDeck(ctx)
		case "4":
			a.startQuiz(ctx)
		case "5":
			a.startCustomQuiz(ctx, defaultQuestionCount)
		case "6":
			a.showStats(ctx)
		case "q", "quit", "exit":
			return
		default:
			fmt.Println("Unknown choice.")
		}
	}
}

func (a *app) listDecks(ctx context.Context) {
	decks, err := a.decks.ListDecks(ctx)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(decks) == 0 {
		fmt.Println("No decks yet. Import one from a text file.")
		return
	}
	for i, d := range decks {
		fmt.Printf("%d. %s (%d questions)  %s\n", i+1, d.Name, d.QuestionCount, d.Description)
	}
}

func (a *app) importDeck(ctx context.Context) {
	path := a.prompt("Quiz file path: ")
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Could not read file: %v\n", err)
		return
	}
	name := a.prompt("Deck name: ")
	description := a.prompt("Description (optional): ")

	deck, err := a.decks.CreateDeckFromFile(ctx, name, description, string(content))
	if err != nil {
		// Import failures are recoverable; show the message and let the
		// user fix the file and retry.
		fmt.Printf("Import failed: %v\n", err)
		return
	}
	fmt.Printf("Created deck %q with %d questions.\n", deck.Name, deck.QuestionCount)
}

func (a *app) deleteDeck(ctx context.Context) {
	deck, ok := a.pickDeck(ctx, "Delete which deck?")
	if !ok {
		return
	}
	if a.prompt(fmt.Sprintf("Really delete %q? (y/N) ", deck.Name)) != "y" {
		return
	}
	if err := a.decks.DeleteDeck(ctx, deck.ID); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("Deleted.")
}

func (a *app) startQuiz(ctx context.Context) {
	deck, ok := a.pickDeck(ctx, "Quiz on which deck?")
	if !ok {
		return
	}
	session, err := a.quiz.StartQuiz(ctx, deck.ID)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	a.runSession(ctx, session)
}

func (a *app) startCustomQuiz(ctx context.Context, defaultQuestionCount int) {
	decks, err := a.decks.ListDecks(ctx)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(decks) == 0 {
		fmt.Println("No decks yet.")
		return
	}
	for i, d := range decks {
		fmt.Printf("%d. %s (%d questions)\n", i+1, d.Name, d.QuestionCount)
	}

	var deckIDs []string
	for _, field := range strings.Fields(strings.ReplaceAll(a.prompt("Deck numbers (space separated): "), ",", " ")) {
		idx, err := strconv.Atoi(field)
		if err != nil || idx < 1 || idx > len(decks) {
			fmt.Printf("Skipping invalid deck number %q.\n", field)
			continue
		}
		deckIDs = append(deckIDs, decks[idx-1].ID)
	}

	count := defaultQuestionCount
	if raw := a.prompt(fmt.Sprintf("Question count (default %d): ", defaultQuestionCount)); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			count = n
		}
	}

	session, err := a.quiz.StartCustomQuiz(ctx, deckIDs, count)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	a.runSession(ctx, session)
}

func (a *app) runSession(ctx context.Context, session *dto.SessionResponse) {
	total := session.TotalQuestions
	for i := 0; i < total; i++ {
		question, err := a.quiz.CurrentQuestion(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("\nQuestion %d/%d: %s\n", i+1, total, question.Question)
		for j, option := range question.Options {
			fmt.Printf("  %d) %s\n", j+1, option)
		}

		selected := a.promptAnswer(len(question.Options))
		if selected < 0 {
			fmt.Println("Quiz abandoned; progress for this session is discarded on the next start.")
			return
		}

		// Correctness is computed here, at the presentation layer, and
		// passed into the engine.
		isCorrect := selected == question.CorrectAnswer
		if err := a.quiz.SubmitAnswer(ctx, question.ID, selected, isCorrect); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if isCorrect {
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Wrong. The answer was: %s\n", question.Options[question.CorrectAnswer])
		}

		if i < total-1 {
			if err := a.quiz.NextQuestion(ctx); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
		}
	}

	result, err := a.quiz.CompleteQuiz(ctx)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("\nDone! %d/%d correct (%s)\n",
		result.CorrectCount, result.AnsweredCount, util.FormatAccuracy(result.Accuracy))

	if err := a.quiz.ResetSession(ctx); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

func (a *app) showStats(ctx context.Context) {
	progress, err := a.progress.GetUserProgress(ctx)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Quizzes taken: %d  Questions answered: %d  Overall accuracy: %s (%s)\n",
		progress.TotalQuizzes,
		progress.TotalQuestionsAnswered,
		util.FormatAccuracy(progress.OverallAccuracy),
		progress.PerformanceLevel)
	for _, stats := range progress.Decks {
		name := stats.DeckName
		if name == "" {
			name = stats.DeckID
		}
		fmt.Printf("  %s: %d attempts, %s accuracy, last %s. %s\n",
			name,
			stats.TotalAttempts,
			util.FormatAccuracy(stats.Accuracy),
			util.FormatRelativeDate(stats.LastAttemptDate, time.Now()),
			a.progress.StreakMessage(&stats))
	}
}

func (a *app) pickDeck(ctx context.Context, question string) (*dto.DeckResponse, bool) {
	decks, err := a.decks.ListDecks(ctx)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return nil, false
	}
	if len(decks) == 0 {
		fmt.Println("No decks yet.")
		return nil, false
	}
	for i, d := range decks {
		fmt.Printf("%d. %s (%d questions)\n", i+1, d.Name, d.QuestionCount)
	}
	raw := a.prompt(question + " ")
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 1 || idx > len(decks) {
		fmt.Println("Invalid choice.")
		return nil, false
	}
	return decks[idx-1], true
}

// promptAnswer reads a 1-based option choice, returning the 0-based index or
// -1 when the user abandons the quiz.
func (a *app) promptAnswer(optionCount int) int {
	for {
		raw := a.prompt("Your answer (or q to abandon): ")
		if raw == "q" {
			return -1
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > optionCount {
			fmt.Printf("Enter a number between 1 and %d.\n", optionCount)
			continue
		}
		return n - 1
	}
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	line, err := a.reader.ReadString('\n')
	if err != nil {
		return "q"
	}
	return strings.TrimSpace(line)
}
