package review

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/wordcurve-backend/internal/domain"
)

// RecordReviewInput holds the parameters for recording a single review
// outcome.
type RecordReviewInput struct {
	UserID       string
	VocabularyID uuid.UUID

	// Status is the lifecycle status the caller assigns to the record.
	Status domain.LearningStatus

	// IsCorrect reports whether the learner answered correctly. Nil means
	// the outcome carries no correctness signal (e.g. a status-only update);
	// neither counter is incremented but the review itself is still counted.
	IsCorrect *bool
}

// Validate checks all fields and collects all errors.
func (i *RecordReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == "" {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.VocabularyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "vocabulary_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be NEW, LEARNING, REVIEWING, MASTERED, or FORGOTTEN"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
