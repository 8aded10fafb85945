// Package session implements study session selection: sampling unseen
// vocabulary for learning and collecting items due for review.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordcurve-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type vocabularyRepo interface {
	Find(ctx context.Context, filter domain.VocabularyFilter) ([]domain.VocabularyItem, int, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.VocabularyItem, error)
}

type progressRepo interface {
	QueryByUser(ctx context.Context, userID string, filter domain.ProgressFilter) ([]domain.ProgressRecord, error)
}

// shuffler abstracts the randomness source so selection is deterministic in
// tests. *rand.Rand from math/rand/v2 satisfies it.
type shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements session selection business logic.
type Service struct {
	vocabulary     vocabularyRepo
	progress       progressRepo
	log            *slog.Logger
	tz             *time.Location
	maxSessionSize int

	mu  sync.Mutex
	rng shuffler
}

// NewService creates a new session service. rng must not be shared with other
// consumers; the service guards it with its own mutex.
func NewService(
	log *slog.Logger,
	vocabulary vocabularyRepo,
	progress progressRepo,
	rng shuffler,
	tz *time.Location,
	maxSessionSize int,
) *Service {
	if tz == nil {
		tz = time.UTC
	}
	return &Service{
		vocabulary:     vocabulary,
		progress:       progress,
		log:            log.With("service", "session"),
		tz:             tz,
		maxSessionSize: maxSessionSize,
		rng:            rng,
	}
}

// shuffle randomizes indexable data under the service's rng lock.
func (s *Service) shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(n, swap)
}
