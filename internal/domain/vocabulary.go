package domain

import (
	"time"

	"github.com/google/uuid"
)

// VocabularyItem is a learnable item in the shared catalog.
// Items are created by catalog import and read-only to the scheduler.
type VocabularyItem struct {
	ID                 uuid.UUID
	Word               string
	Pronunciation      string
	Translation        string
	PartOfSpeech       string
	Example            string
	ExampleTranslation string
	Difficulty         Difficulty
	Category           string
	Tags               []string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// VocabularyFilter defines parameters for searching the catalog.
// Nil pointer fields mean "no constraint".
type VocabularyFilter struct {
	// Category matches the grouping key exactly (e.g. "grade7").
	Category *string

	// Difficulty matches the difficulty grade exactly.
	Difficulty *Difficulty

	// Search performs a case-insensitive substring match on word and translation.
	Search *string

	// Limit is the maximum number of items to return; 0 means no limit.
	Limit int

	// Offset is the number of items to skip (offset-based pagination).
	Offset int
}

// VocabularyUpdate holds the mutable fields of a catalog item.
// Nil pointer fields are left unchanged.
type VocabularyUpdate struct {
	Word               *string
	Pronunciation      *string
	Translation        *string
	PartOfSpeech       *string
	Example            *string
	ExampleTranslation *string
	Difficulty         *Difficulty
	Category           *string
	Tags               []string
}
