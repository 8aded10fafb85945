package domain

// LearningStatus represents the lifecycle state of a progress record.
//
// A vocabulary item without a progress record is implicitly NEW; a stored NEW
// status only appears when a caller explicitly records it. Transitions are
// caller-driven: the scheduler validates the supplied status but never infers
// one from accuracy.
type LearningStatus string

const (
	LearningStatusNew       LearningStatus = "NEW"
	LearningStatusLearning  LearningStatus = "LEARNING"
	LearningStatusReviewing LearningStatus = "REVIEWING"
	LearningStatusMastered  LearningStatus = "MASTERED"
	LearningStatusForgotten LearningStatus = "FORGOTTEN"
)

func (s LearningStatus) String() string { return string(s) }

func (s LearningStatus) IsValid() bool {
	switch s {
	case LearningStatusNew, LearningStatusLearning, LearningStatusReviewing,
		LearningStatusMastered, LearningStatusForgotten:
		return true
	}
	return false
}

// IsActive reports whether the status makes a record eligible for due review.
// Only LEARNING and REVIEWING records participate in the due-review pool.
func (s LearningStatus) IsActive() bool {
	return s == LearningStatusLearning || s == LearningStatusReviewing
}

// Difficulty represents the difficulty grade of a vocabulary item.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "BEGINNER"
	DifficultyIntermediate Difficulty = "INTERMEDIATE"
	DifficultyAdvanced     Difficulty = "ADVANCED"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}
