package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/heartmarshall/wordcurve-backend/internal/domain"
	"github.com/heartmarshall/wordcurve-backend/pkg/dayutil"
)

// SelectNew returns a random sample of catalog items for a learning session,
// excluding items the user already reviewed today. If the exclusion would
// leave nothing to study, the full candidate set is used instead so a session
// is always possible while the catalog is non-empty.
func (s *Service) SelectNew(ctx context.Context, input SelectNewInput) ([]domain.VocabularyItem, error) {
	if err := input.Validate(s.maxSessionSize); err != nil {
		return nil, err
	}

	now := time.Now()
	dayStart := dayutil.DayStart(now, s.tz)
	dayEnd := dayutil.NextDayStart(now, s.tz)

	reviewedToday, err := s.progress.QueryByUser(ctx, input.UserID, domain.ProgressFilter{
		LastReviewedFrom:  &dayStart,
		LastReviewedUntil: &dayEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("query today's reviews: %w", err)
	}

	seen := make(map[uuid.UUID]struct{}, len(reviewedToday))
	for _, rec := range reviewedToday {
		seen[rec.VocabularyID] = struct{}{}
	}

	candidates, _, err := s.vocabulary.Find(ctx, domain.VocabularyFilter{
		Category: input.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("find catalog items: %w", err)
	}
	candidates = lo.UniqBy(candidates, func(it domain.VocabularyItem) uuid.UUID { return it.ID })

	eligible := lo.Filter(candidates, func(it domain.VocabularyItem, _ int) bool {
		_, reviewed := seen[it.ID]
		return !reviewed
	})

	// Everything was already seen today: fall back to the full set rather
	// than returning an empty session.
	if len(eligible) == 0 && len(candidates) > 0 {
		s.log.InfoContext(ctx, "all candidates reviewed today, falling back to full set",
			slog.String("user_id", input.UserID),
			slog.Int("candidates", len(candidates)),
		)
		eligible = candidates
	}

	s.shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})

	if len(eligible) > input.Count {
		eligible = eligible[:input.Count]
	}

	return eligible, nil
}
