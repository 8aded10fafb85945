package review

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/wordcurve-backend/internal/domain"
	"github.com/heartmarshall/wordcurve-backend/pkg/dayutil"
)

// GetStats returns the aggregated learning progress for a user. A user with
// no records gets all-zero stats.
func (s *Service) GetStats(ctx context.Context, userID string) (domain.LearnerStats, error) {
	if userID == "" {
		return domain.LearnerStats{}, domain.NewValidationError("user_id", "required")
	}

	counts, err := s.progress.CountByStatus(ctx, userID)
	if err != nil {
		return domain.LearnerStats{}, fmt.Errorf("count by status: %w", err)
	}

	dayStart := dayutil.DayStart(time.Now(), s.tz)
	todayLearned, err := s.progress.CountLearnedSince(ctx, userID, dayStart)
	if err != nil {
		return domain.LearnerStats{}, fmt.Errorf("count learned today: %w", err)
	}

	return domain.LearnerStats{
		TotalLearned:   counts.Mastered,
		TotalReviewing: counts.Reviewing,
		TotalNew:       counts.New,
		TodayLearned:   todayLearned,
		StatusCounts:   counts,
	}, nil
}
