// Package schedule computes review dates with a fixed interval per level.
//
// There is no review history and no ease factor: repeating a level always
// yields the same interval from the anchor date.
package schedule

import (
	"time"

	"github.com/jungguji/algo-rewind/internal/domain"
)

// IntervalDays returns the number of days until the next review for a level.
// Unknown levels get the shortest interval.
func IntervalDays(level domain.Level) int {
	switch level {
	case domain.LevelHard:
		return 3
	case domain.LevelGood:
		return 7
	case domain.LevelEasy:
		return 30
	default:
		return 1
	}
}

// NextReviewDate returns anchor + IntervalDays(level) as YYYY-MM-DD, reading
// the system clock only when the anchor cannot be parsed.
func NextReviewDate(anchor string, level domain.Level) string {
	return NextReviewDateAt(anchor, level, time.Now())
}

// NextReviewDateAt is NextReviewDate with an explicit current time.
// A malformed anchor is not an error: see fallbackAnchor.
func NextReviewDateAt(anchor string, level domain.Level, now time.Time) string {
	date, err := time.Parse(domain.DateLayout, anchor)
	if err != nil {
		date = fallbackAnchor(now)
	}
	return date.AddDate(0, 0, IntervalDays(level)).Format(domain.DateLayout)
}

// fallbackAnchor is the anchor used when the supplied one is not a valid
// YYYY-MM-DD date: the current UTC calendar day.
func fallbackAnchor(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
