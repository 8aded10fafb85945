package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordcurve-backend/internal/domain"
)

// ImportResult summarizes a bulk import run.
type ImportResult struct {
	Created int
	Updated int
	Failed  int

	// Errors holds one entry per failed input, keyed by word.
	Errors []ImportError
}

// ImportError describes a single failed import entry.
type ImportError struct {
	Word string
	Err  error
}

// BulkImport upserts a batch of items by word: existing words are updated in
// place, new words are created. Failures are collected per item so one bad
// entry does not abort the batch.
func (s *Service) BulkImport(ctx context.Context, inputs []CreateItemInput) (ImportResult, error) {
	var result ImportResult

	for _, input := range inputs {
		if err := input.Validate(); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, ImportError{Word: input.Word, Err: err})
			continue
		}

		item := input.item()

		existing, err := s.vocabulary.GetByWord(ctx, item.Word)
		switch {
		case err == nil:
			upd := domain.VocabularyUpdate{
				Pronunciation:      &item.Pronunciation,
				Translation:        &item.Translation,
				PartOfSpeech:       &item.PartOfSpeech,
				Example:            &item.Example,
				ExampleTranslation: &item.ExampleTranslation,
				Difficulty:         &item.Difficulty,
				Category:           &item.Category,
				Tags:               item.Tags,
			}
			if _, err := s.vocabulary.Update(ctx, existing.ID, upd); err != nil {
				result.Failed++
				result.Errors = append(result.Errors, ImportError{Word: item.Word, Err: fmt.Errorf("update: %w", err)})
				continue
			}
			result.Updated++

		case errors.Is(err, domain.ErrNotFound):
			if _, err := s.vocabulary.Create(ctx, item); err != nil {
				result.Failed++
				result.Errors = append(result.Errors, ImportError{Word: item.Word, Err: fmt.Errorf("create: %w", err)})
				continue
			}
			result.Created++

		default:
			result.Failed++
			result.Errors = append(result.Errors, ImportError{Word: item.Word, Err: fmt.Errorf("lookup: %w", err)})
		}
	}

	s.log.InfoContext(ctx, "bulk import finished",
		slog.Int("created", result.Created),
		slog.Int("updated", result.Updated),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}
