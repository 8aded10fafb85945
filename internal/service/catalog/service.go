// Package catalog implements management of the shared vocabulary catalog:
// CRUD for items plus bulk import from word lists.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordcurve-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type vocabularyRepo interface {
	Create(ctx context.Context, item domain.VocabularyItem) (domain.VocabularyItem, error)
	Get(ctx context.Context, id uuid.UUID) (domain.VocabularyItem, error)
	GetByWord(ctx context.Context, word string) (domain.VocabularyItem, error)
	Find(ctx context.Context, filter domain.VocabularyFilter) ([]domain.VocabularyItem, int, error)
	Update(ctx context.Context, id uuid.UUID, upd domain.VocabularyUpdate) (domain.VocabularyItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type progressRepo interface {
	DeleteByVocabulary(ctx context.Context, vocabularyID uuid.UUID) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the catalog business logic.
type Service struct {
	vocabulary vocabularyRepo
	progress   progressRepo
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new catalog service.
func NewService(
	log *slog.Logger,
	vocabulary vocabularyRepo,
	progress progressRepo,
	tx txManager,
) *Service {
	return &Service{
		vocabulary: vocabulary,
		progress:   progress,
		tx:         tx,
		log:        log.With("service", "catalog"),
	}
}
