// Package review implements the spaced-repetition review scheduler: it
// records review outcomes, maintains per-learner progress records, and
// computes the next review date from the forgetting curve.
package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordcurve-backend/internal/domain"
	"github.com/heartmarshall/wordcurve-backend/internal/service/review/curve"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type vocabularyRepo interface {
	Get(ctx context.Context, id uuid.UUID) (domain.VocabularyItem, error)
}

type progressRepo interface {
	Get(ctx context.Context, userID string, vocabularyID uuid.UUID) (domain.ProgressRecord, error)
	GetForUpdate(ctx context.Context, userID string, vocabularyID uuid.UUID) (domain.ProgressRecord, error)
	Upsert(ctx context.Context, rec domain.ProgressRecord) (domain.ProgressRecord, error)
	CountByStatus(ctx context.Context, userID string) (domain.StatusCounts, error)
	CountLearnedSince(ctx context.Context, userID string, since time.Time) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the review scheduling business logic.
type Service struct {
	vocabulary vocabularyRepo
	progress   progressRepo
	tx         txManager
	log        *slog.Logger
	curve      curve.Params
	tz         *time.Location
}

// NewService creates a new review service. tz is the location used for
// "today" boundaries in stats; pass time.UTC when unset.
func NewService(
	log *slog.Logger,
	vocabulary vocabularyRepo,
	progress progressRepo,
	tx txManager,
	curveParams curve.Params,
	tz *time.Location,
) *Service {
	if tz == nil {
		tz = time.UTC
	}
	return &Service{
		vocabulary: vocabulary,
		progress:   progress,
		tx:         tx,
		log:        log.With("service", "review"),
		curve:      curveParams,
		tz:         tz,
	}
}
