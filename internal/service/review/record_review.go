package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordcurve-backend/internal/domain"
)

// RecordReview records a review outcome for a (user, vocabulary item) pair.
// The progress record is created on first review; every call counts as one
// review and reschedules the item on the forgetting curve.
//
// The vocabulary item must exist; reviewing an unknown item returns
// domain.ErrNotFound without creating a record.
func (s *Service) RecordReview(ctx context.Context, input RecordReviewInput) (domain.ProgressRecord, error) {
	if err := input.Validate(); err != nil {
		return domain.ProgressRecord{}, err
	}

	if _, err := s.vocabulary.Get(ctx, input.VocabularyID); err != nil {
		return domain.ProgressRecord{}, fmt.Errorf("get vocabulary item: %w", err)
	}

	now := time.Now()

	var saved domain.ProgressRecord

	// The read-modify-write runs under a row lock so concurrent reviews of
	// the same pair serialize instead of losing counter increments.
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rec, err := s.progress.GetForUpdate(txCtx, input.UserID, input.VocabularyID)
		switch {
		case err == nil:
			// existing record, update in place
		case errors.Is(err, domain.ErrNotFound):
			rec = domain.ProgressRecord{
				ID:           uuid.New(),
				UserID:       input.UserID,
				VocabularyID: input.VocabularyID,
			}
		default:
			return fmt.Errorf("get progress record: %w", err)
		}

		rec.Status = input.Status
		if rec.FirstLearnedAt == nil {
			t := now
			rec.FirstLearnedAt = &t
		}
		t := now
		rec.LastReviewedAt = &t

		rec.ReviewCount++
		if input.IsCorrect != nil {
			if *input.IsCorrect {
				rec.CorrectCount++
			} else {
				rec.IncorrectCount++
			}
		}

		next := s.curve.NextReview(now, rec.ReviewCount, rec.CorrectCount)
		rec.NextReviewDate = &next

		saved, err = s.progress.Upsert(txCtx, rec)
		if err != nil {
			return fmt.Errorf("upsert progress record: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.ProgressRecord{}, err
	}

	s.log.InfoContext(ctx, "review recorded",
		slog.String("user_id", input.UserID),
		slog.String("vocabulary_id", input.VocabularyID.String()),
		slog.String("status", string(saved.Status)),
		slog.Int("review_count", saved.ReviewCount),
		slog.Time("next_review", *saved.NextReviewDate),
	)

	return saved, nil
}

// GetProgress returns the progress record for a pair, or domain.ErrNotFound
// when the item was never reviewed.
func (s *Service) GetProgress(ctx context.Context, userID string, vocabularyID uuid.UUID) (domain.ProgressRecord, error) {
	if userID == "" {
		return domain.ProgressRecord{}, domain.NewValidationError("user_id", "required")
	}
	if vocabularyID == uuid.Nil {
		return domain.ProgressRecord{}, domain.NewValidationError("vocabulary_id", "required")
	}

	rec, err := s.progress.Get(ctx, userID, vocabularyID)
	if err != nil {
		return domain.ProgressRecord{}, fmt.Errorf("get progress record: %w", err)
	}
	return rec, nil
}
