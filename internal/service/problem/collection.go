package problem

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jungguji/algo-rewind/internal/domain"
)

// SelectDue returns the problems due on or before today, in input order.
func SelectDue(problems []domain.Problem, today string) []domain.Problem {
	due := make([]domain.Problem, 0, len(problems))
	for i := range problems {
		if problems[i].IsDue(today) {
			due = append(due, problems[i])
		}
	}
	return due
}

// FilterBySearch returns the problems whose name or any tag contains term,
// ignoring case. An empty term matches every problem. Input order is kept.
func FilterBySearch(problems []domain.Problem, term string) []domain.Problem {
	lower := cases.Lower(language.Und)
	needle := lower.String(term)

	matched := make([]domain.Problem, 0, len(problems))
	for _, p := range problems {
		if matches(lower, p, needle) {
			matched = append(matched, p)
		}
	}
	return matched
}

func matches(lower cases.Caser, p domain.Problem, needle string) bool {
	if strings.Contains(lower.String(p.Name), needle) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(lower.String(tag), needle) {
			return true
		}
	}
	return false
}

// SortBy returns a stably sorted copy of problems. The input slice is never
// reordered, including when the criterion is rejected.
func SortBy(problems []domain.Problem, criterion string) ([]domain.Problem, error) {
	c, err := domain.ParseSortCriterion(criterion)
	if err != nil {
		return nil, err
	}

	sorted := slices.Clone(problems)
	if sorted == nil {
		sorted = []domain.Problem{}
	}

	switch c {
	case domain.SortByNextReview:
		slices.SortStableFunc(sorted, func(a, b domain.Problem) int {
			return strings.Compare(a.NextReviewAt, b.NextReviewAt)
		})
	case domain.SortByCreatedAt:
		slices.SortStableFunc(sorted, func(a, b domain.Problem) int {
			return strings.Compare(b.CreatedAt, a.CreatedAt)
		})
	case domain.SortByName:
		slices.SortStableFunc(sorted, func(a, b domain.Problem) int {
			return strings.Compare(a.Name, b.Name)
		})
	}

	return sorted, nil
}

// ReplaceByID returns a copy of problems with the first record sharing
// updated.ID replaced by updated. Later records with a colliding id are left
// alone. The bool reports whether a record matched.
func ReplaceByID(problems []domain.Problem, updated domain.Problem) ([]domain.Problem, bool) {
	out := slices.Clone(problems)
	i := indexByID(out, updated.ID)
	if i < 0 {
		return out, false
	}
	out[i] = updated
	return out, true
}

// RemoveByID returns a copy of problems without the first record with the
// given id.
func RemoveByID(problems []domain.Problem, id int64) ([]domain.Problem, bool) {
	i := indexByID(problems, id)
	if i < 0 {
		return slices.Clone(problems), false
	}
	out := make([]domain.Problem, 0, len(problems)-1)
	out = append(out, problems[:i]...)
	return append(out, problems[i+1:]...), true
}

func indexByID(problems []domain.Problem, id int64) int {
	return slices.IndexFunc(problems, func(p domain.Problem) bool { return p.ID == id })
}

// FindByID returns the first problem with the given id.
func FindByID(problems []domain.Problem, id int64) (*domain.Problem, error) {
	i := indexByID(problems, id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	p := problems[i]
	return &p, nil
}

// Summarize counts all problems, the ones due by today, and each level.
func Summarize(problems []domain.Problem, today string) domain.Stats {
	stats := domain.Stats{
		Total:   len(problems),
		ByLevel: make(map[domain.Level]int, len(domain.Levels)),
	}
	for _, l := range domain.Levels {
		stats.ByLevel[l] = 0
	}
	for i := range problems {
		if problems[i].IsDue(today) {
			stats.Due++
		}
		stats.ByLevel[problems[i].Level]++
	}
	return stats
}
