package domain

import "time"

// DateLayout is the calendar date format used for created_at and
// next_review_at. It sorts lexicographically in chronological order.
const DateLayout = "2006-01-02"

// FormatDate renders t as a UTC calendar date.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Problem is one reviewable item, typically a coding exercise.
//
// ID is a millisecond timestamp taken at creation. CreatedAt never changes;
// NextReviewAt is recomputed every time Level changes.
type Problem struct {
	ID           int64
	Name         string
	URL          *string
	Tags         []string
	Memo         string
	Level        Level
	CreatedAt    string
	NextReviewAt string
}

// IsDue returns true if the problem should be reviewed on or before today.
// Both dates are YYYY-MM-DD, so plain string comparison is chronological.
func (p *Problem) IsDue(today string) bool {
	return p.NextReviewAt <= today
}

// Stats summarises a problem list for a given day.
type Stats struct {
	Total   int
	Due     int
	ByLevel map[Level]int
}
