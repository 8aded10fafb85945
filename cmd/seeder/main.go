// Command seeder populates the vocabulary catalog from a JSON word list.
// It is intended to be run offline, not as part of the main server.
//
// Flags:
//
//	--file     path to the JSON word list (required)
//	--dry-run  parse and validate the file without writing to DB
//
// The file holds an array of items:
//
//	[{"word": "...", "translation": "...", "category": "...",
//	  "difficulty": "BEGINNER", "tags": ["..."]}]
//
// Exit codes: 0 = success, 1 = error (including partially failed imports).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/wordcurve-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordcurve-backend/internal/adapter/postgres/progress"
	"github.com/heartmarshall/wordcurve-backend/internal/adapter/postgres/vocabulary"
	"github.com/heartmarshall/wordcurve-backend/internal/app"
	"github.com/heartmarshall/wordcurve-backend/internal/config"
	"github.com/heartmarshall/wordcurve-backend/internal/domain"
	"github.com/heartmarshall/wordcurve-backend/internal/service/catalog"
)

// wordEntry is the JSON shape of one word-list item.
type wordEntry struct {
	Word               string   `json:"word"`
	Pronunciation      string   `json:"pronunciation"`
	Translation        string   `json:"translation"`
	PartOfSpeech       string   `json:"partOfSpeech"`
	Example            string   `json:"example"`
	ExampleTranslation string   `json:"exampleTranslation"`
	Difficulty         string   `json:"difficulty"`
	Category           string   `json:"category"`
	Tags               []string `json:"tags"`
}

func main() {
	fileFlag := flag.String("file", "", "path to the JSON word list")
	dryRunFlag := flag.Bool("dry-run", false, "parse and validate without writing to DB")
	flag.Parse()

	if *fileFlag == "" {
		log.Fatal("missing required flag: --file")
	}

	inputs, err := loadWordList(*fileFlag)
	if err != nil {
		log.Fatalf("load word list: %v", err)
	}

	if *dryRunFlag {
		failed := 0
		for _, input := range inputs {
			if err := input.Validate(); err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "invalid entry %q: %v\n", input.Word, err)
			}
		}
		fmt.Printf("dry run: %d entries, %d invalid\n", len(inputs), failed)
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := catalog.NewService(logger,
		vocabulary.New(pool),
		progress.New(pool),
		postgres.NewTxManager(pool),
	)

	result, err := svc.BulkImport(ctx, inputs)
	if err != nil {
		logger.Error("bulk import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, impErr := range result.Errors {
		logger.Warn("import entry failed",
			slog.String("word", impErr.Word),
			slog.String("error", impErr.Err.Error()),
		)
	}

	logger.Info("import finished",
		slog.Int("created", result.Created),
		slog.Int("updated", result.Updated),
		slog.Int("failed", result.Failed),
	)

	if result.Failed > 0 {
		os.Exit(1)
	}
}

func loadWordList(path string) ([]catalog.CreateItemInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []wordEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	inputs := make([]catalog.CreateItemInput, len(entries))
	for i, e := range entries {
		inputs[i] = catalog.CreateItemInput{
			Word:               e.Word,
			Pronunciation:      e.Pronunciation,
			Translation:        e.Translation,
			PartOfSpeech:       e.PartOfSpeech,
			Example:            e.Example,
			ExampleTranslation: e.ExampleTranslation,
			Difficulty:         domain.Difficulty(e.Difficulty),
			Category:           e.Category,
			Tags:               e.Tags,
		}
	}
	return inputs, nil
}
