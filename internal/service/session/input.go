package session

import (
	"fmt"

	"github.com/heartmarshall/wordcurve-backend/internal/domain"
)

// SelectNewInput holds the parameters for sampling unseen vocabulary.
type SelectNewInput struct {
	UserID string

	// Count is the requested session size. The result may be smaller when
	// the catalog has fewer eligible items.
	Count int

	// Category restricts candidates to one catalog category. Nil means the
	// whole catalog.
	Category *string
}

// Validate checks all fields and collects all errors.
func (i *SelectNewInput) Validate(maxSessionSize int) error {
	var errs []domain.FieldError

	if i.UserID == "" {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.Count <= 0 {
		errs = append(errs, domain.FieldError{Field: "count", Message: "must be positive"})
	}
	if i.Count > maxSessionSize {
		errs = append(errs, domain.FieldError{Field: "count", Message: fmt.Sprintf("max %d", maxSessionSize)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SelectDueInput holds the parameters for collecting due reviews.
type SelectDueInput struct {
	UserID string

	// Count is the maximum number of due items to return.
	Count int
}

// Validate checks all fields and collects all errors.
func (i *SelectDueInput) Validate(maxSessionSize int) error {
	var errs []domain.FieldError

	if i.UserID == "" {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.Count <= 0 {
		errs = append(errs, domain.FieldError{Field: "count", Message: "must be positive"})
	}
	if i.Count > maxSessionSize {
		errs = append(errs, domain.FieldError{Field: "count", Message: fmt.Sprintf("max %d", maxSessionSize)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
