package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/heartmarshall/wordcurve-backend/internal/domain"
)

// SelectDue returns up to Count vocabulary items whose progress records are
// due for review, in random order. Records whose vocabulary item no longer
// exists in the catalog are skipped.
func (s *Service) SelectDue(ctx context.Context, input SelectDueInput) ([]domain.VocabularyItem, error) {
	if err := input.Validate(s.maxSessionSize); err != nil {
		return nil, err
	}

	now := time.Now()

	due, err := s.progress.QueryByUser(ctx, input.UserID, domain.ProgressFilter{
		Statuses: []domain.LearningStatus{
			domain.LearningStatusLearning,
			domain.LearningStatusReviewing,
		},
		NextReviewBefore: &now,
	})
	if err != nil {
		return nil, fmt.Errorf("query due records: %w", err)
	}
	if len(due) == 0 {
		return []domain.VocabularyItem{}, nil
	}

	s.shuffle(len(due), func(i, j int) {
		due[i], due[j] = due[j], due[i]
	})

	if len(due) > input.Count {
		due = due[:input.Count]
	}

	ids := lo.Uniq(lo.Map(due, func(rec domain.ProgressRecord, _ int) uuid.UUID {
		return rec.VocabularyID
	}))

	items, err := s.vocabulary.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get due items: %w", err)
	}

	// Dangling progress records (item deleted from the catalog) are dropped
	// silently from the session; log so drift is visible.
	if len(items) < len(ids) {
		s.log.WarnContext(ctx, "due records reference missing catalog items",
			slog.String("user_id", input.UserID),
			slog.Int("missing", len(ids)-len(items)),
		)
	}

	return items, nil
}
