package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"flashdeck/internal/config"
	"flashdeck/internal/logger"
	"flashdeck/internal/repository"
	"flashdeck/internal/service"
	"flashdeck/internal/store"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// import_decks bulk-imports every .txt quiz file in a directory as one deck
// per file, named after the file.
func main() {
	dir := flag.String("dir", ".", "directory containing .txt quiz files")
	flag.Parse()

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

	logger.Get().Info("Bulk import starting", zap.String("dir", *dir))

	st, err := store.New(cfg)
	if err != nil {
		logger.Get().Fatal("Failed to initialize storage backend", zap.Error(err))
	}
	defer st.Close()

	deckRepo := repository.NewStoreDeckRepository(st)
	progressRepo := repository.NewStoreProgressRepository(st)
	deckService := service.NewDeckService(deckRepo, progressRepo)

	files, err := filepath.Glob(filepath.Join(*dir, "*.txt"))
	if err != nil {
		logger.Get().Fatal("Failed to list quiz files", zap.Error(err))
	}
	if len(files) == 0 {
		logger.Get().Warn("No .txt files found, nothing to import")
		return
	}

	type parsed struct {
		name    string
		content string
	}

	// Parse concurrently; saving stays sequential because the deck
	// collection is a single read-modify-write document.
	results := make([]parsed, len(files))
	g, ctx := errgroup.WithContext(context.Background())
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			content, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			// Validate up front so one bad file aborts the run before
			// any deck is written.
			if _, err := service.ParseQuizFile(string(content)); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
			results[i] = parsed{name: name, content: string(content)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Get().Fatal("Import aborted, no decks were created", zap.Error(err))
	}

	for i, result := range results {
		deck, err := deckService.CreateDeckFromFile(ctx, result.name, "", result.content)
		if err != nil {
			logger.Get().Fatal("Failed to create deck",
				zap.String("file", files[i]),
				zap.Error(err))
		}
		logger.Get().Info("Imported deck",
			zap.String("name", deck.Name),
			zap.Int("questions", deck.QuestionCount))
	}

	logger.Get().Info("Bulk import finished", zap.Int("decks", len(results)))
}
