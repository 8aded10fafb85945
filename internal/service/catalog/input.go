package catalog

import (
	"strings"

	"github.com/heartmarshall/wordcurve-backend/internal/domain"
)

// DefaultCategory is assigned to items created without an explicit category.
const DefaultCategory = "general"

// CreateItemInput holds the parameters for creating a catalog item.
type CreateItemInput struct {
	Word               string
	Pronunciation      string
	Translation        string
	PartOfSpeech       string
	Example            string
	ExampleTranslation string
	Difficulty         domain.Difficulty // defaults to BEGINNER when empty
	Category           string            // defaults to DefaultCategory when empty
	Tags               []string
}

// Validate checks all fields and collects all errors.
func (i *CreateItemInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Word) == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	}
	if strings.TrimSpace(i.Translation) == "" {
		errs = append(errs, domain.FieldError{Field: "translation", Message: "required"})
	}
	if i.Difficulty != "" && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be BEGINNER, INTERMEDIATE, or ADVANCED"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// item builds the domain item with defaults applied.
func (i *CreateItemInput) item() domain.VocabularyItem {
	difficulty := i.Difficulty
	if difficulty == "" {
		difficulty = domain.DifficultyBeginner
	}
	category := strings.TrimSpace(i.Category)
	if category == "" {
		category = DefaultCategory
	}

	return domain.VocabularyItem{
		Word:               strings.TrimSpace(i.Word),
		Pronunciation:      i.Pronunciation,
		Translation:        strings.TrimSpace(i.Translation),
		PartOfSpeech:       i.PartOfSpeech,
		Example:            i.Example,
		ExampleTranslation: i.ExampleTranslation,
		Difficulty:         difficulty,
		Category:           category,
		Tags:               i.Tags,
	}
}

// ListItemsInput holds the parameters for listing catalog items.
type ListItemsInput struct {
	Category   *string
	Difficulty *domain.Difficulty
	Search     *string
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i *ListItemsInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > 500 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 500"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be BEGINNER, INTERMEDIATE, or ADVANCED"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
