// Package curve implements the forgetting-curve interval schedule.
//
// The schedule is a pure function of the post-review counters: accuracy picks
// one of three tiers, the review count scales the interval within the tier.
package curve

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// Accuracy tier boundaries.
const (
	highAccuracy = 0.9
	midAccuracy  = 0.7
)

// Params configures the schedule.
type Params struct {
	// MaxIntervalDays caps the exponential tier. Must be positive.
	MaxIntervalDays int
}

// Interval returns the time until the next review given the counters AFTER
// the current review has been counted.
//
//   - accuracy >= 0.9: 2^reviewCount days (capped at MaxIntervalDays)
//   - 0.7 <= accuracy < 0.9: max(1, reviewCount/2) days
//   - accuracy < 0.7: half a day
func (p Params) Interval(reviewCount, correctCount int) time.Duration {
	accuracy := 1.0
	if reviewCount > 0 {
		accuracy = float64(correctCount) / float64(reviewCount)
	}

	switch {
	case accuracy >= highAccuracy:
		days := math.Pow(2, float64(reviewCount))
		if days > float64(p.MaxIntervalDays) {
			days = float64(p.MaxIntervalDays)
		}
		return time.Duration(days * float64(day))
	case accuracy >= midAccuracy:
		days := reviewCount / 2
		if days < 1 {
			days = 1
		}
		return time.Duration(days) * day
	default:
		return day / 2
	}
}

// NextReview returns the next review instant for a review happening at now.
func (p Params) NextReview(now time.Time, reviewCount, correctCount int) time.Time {
	return now.Add(p.Interval(reviewCount, correctCount))
}
