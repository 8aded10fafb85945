package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordcurve-backend/internal/domain"
)

// CreateItem adds a new item to the catalog. Words are unique; creating an
// existing word returns domain.ErrAlreadyExists.
func (s *Service) CreateItem(ctx context.Context, input CreateItemInput) (domain.VocabularyItem, error) {
	if err := input.Validate(); err != nil {
		return domain.VocabularyItem{}, err
	}

	created, err := s.vocabulary.Create(ctx, input.item())
	if err != nil {
		return domain.VocabularyItem{}, fmt.Errorf("create item: %w", err)
	}

	s.log.InfoContext(ctx, "catalog item created",
		slog.String("id", created.ID.String()),
		slog.String("word", created.Word),
		slog.String("category", created.Category),
	)

	return created, nil
}

// GetItem returns a catalog item by ID.
func (s *Service) GetItem(ctx context.Context, id uuid.UUID) (domain.VocabularyItem, error) {
	if id == uuid.Nil {
		return domain.VocabularyItem{}, domain.NewValidationError("id", "required")
	}

	item, err := s.vocabulary.Get(ctx, id)
	if err != nil {
		return domain.VocabularyItem{}, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// ListItems returns catalog items matching the input filter plus the total
// match count for pagination.
func (s *Service) ListItems(ctx context.Context, input ListItemsInput) ([]domain.VocabularyItem, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	items, total, err := s.vocabulary.Find(ctx, domain.VocabularyFilter{
		Category:   input.Category,
		Difficulty: input.Difficulty,
		Search:     input.Search,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	return items, total, nil
}

// UpdateItem applies a partial update to a catalog item.
func (s *Service) UpdateItem(ctx context.Context, id uuid.UUID, upd domain.VocabularyUpdate) (domain.VocabularyItem, error) {
	if id == uuid.Nil {
		return domain.VocabularyItem{}, domain.NewValidationError("id", "required")
	}
	if upd.Difficulty != nil && !upd.Difficulty.IsValid() {
		return domain.VocabularyItem{}, domain.NewValidationError("difficulty", "must be BEGINNER, INTERMEDIATE, or ADVANCED")
	}

	updated, err := s.vocabulary.Update(ctx, id, upd)
	if err != nil {
		return domain.VocabularyItem{}, fmt.Errorf("update item: %w", err)
	}

	s.log.InfoContext(ctx, "catalog item updated",
		slog.String("id", updated.ID.String()),
		slog.String("word", updated.Word),
	)

	return updated, nil
}

// DeleteItem removes a catalog item together with every learner's progress
// records for it, in one transaction. Without this cleanup the records would
// linger as dangling references until session selection skips them.
func (s *Service) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	var removedRecords int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.progress.DeleteByVocabulary(txCtx, id)
		if err != nil {
			return fmt.Errorf("delete progress records: %w", err)
		}
		removedRecords = n

		if err := s.vocabulary.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "catalog item deleted",
		slog.String("id", id.String()),
		slog.Int64("progress_records_removed", removedRecords),
	)

	return nil
}
