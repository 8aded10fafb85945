package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProgressRecord is the per-(user, item) learning state. At most one record
// exists per pair; it is created lazily on the first review and mutated only
// by the review scheduler.
type ProgressRecord struct {
	ID           uuid.UUID
	UserID       string
	VocabularyID uuid.UUID
	Status       LearningStatus

	// FirstLearnedAt is set on the first review and never overwritten.
	FirstLearnedAt *time.Time

	// LastReviewedAt is updated on every review.
	LastReviewedAt *time.Time

	ReviewCount    int
	CorrectCount   int
	IncorrectCount int

	// NextReviewDate is the scheduling horizon computed by the forgetting
	// curve. Nil only for records that were never reviewed.
	NextReviewDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Accuracy returns the historical answer accuracy in [0, 1].
// Defined as 1.0 when no reviews exist.
func (r ProgressRecord) Accuracy() float64 {
	if r.ReviewCount == 0 {
		return 1.0
	}
	return float64(r.CorrectCount) / float64(r.ReviewCount)
}

// IsDue reports whether the record is due for review at the given instant.
func (r ProgressRecord) IsDue(now time.Time) bool {
	if !r.Status.IsActive() || r.NextReviewDate == nil {
		return false
	}
	return !r.NextReviewDate.After(now)
}

// ProgressFilter defines parameters for querying a user's progress records.
// Nil/empty fields mean "no constraint".
type ProgressFilter struct {
	// Statuses restricts results to records in any of the given statuses.
	Statuses []LearningStatus

	// LastReviewedFrom / LastReviewedUntil bound last_reviewed_at as the
	// half-open interval [from, until).
	LastReviewedFrom  *time.Time
	LastReviewedUntil *time.Time

	// NextReviewBefore matches records with next_review_date <= the instant.
	NextReviewBefore *time.Time
}

// StatusCounts holds the number of a user's progress records per status.
type StatusCounts struct {
	New       int
	Learning  int
	Reviewing int
	Mastered  int
	Forgotten int
	Total     int
}

// LearnerStats is the aggregated learning progress for a user.
type LearnerStats struct {
	// TotalLearned is the number of MASTERED records.
	TotalLearned int

	// TotalReviewing is the number of REVIEWING records.
	TotalReviewing int

	// TotalNew is the number of stored records with an explicit NEW status.
	// Items without a record are implicitly new and are not counted here.
	TotalNew int

	// TodayLearned is the number of records first learned during the
	// current local day.
	TodayLearned int

	StatusCounts StatusCounts
}
