// Package jsonapi is the text-in/text-out boundary of the library. Every
// operation takes and returns JSON-encoded problems, so callers (the CLI,
// the HTTP API, or anything else) never handle domain types directly.
//
// Errors are either *domain.DecodingError for malformed input or a domain
// validation error (invalid level, invalid sort criterion). Nothing is
// returned alongside an error.
package jsonapi

import (
	"fmt"

	"github.com/jungguji/algo-rewind/internal/domain"
	"github.com/jungguji/algo-rewind/internal/service/problem"
)

// Operation names attached to decoding errors.
const (
	OpAddProblem      = "add_problem"
	OpGetTodayReviews = "get_today_reviews"
	OpUpdateReview    = "update_review"
	OpFilterProblems  = "filter_problems"
	OpSortProblems    = "sort_problems"
)

type problemService interface {
	Create(input problem.CreateInput) (*domain.Problem, error)
	ApplyReview(p domain.Problem, levelText string) (*domain.Problem, error)
}

// API exposes the problem operations over JSON text.
type API struct {
	problems problemService
}

// New creates an API backed by the given problem service.
func New(problems problemService) *API {
	return &API{problems: problems}
}

// AddProblem creates a problem and returns it encoded.
func (a *API) AddProblem(name string, url *string, tags []string, memo, level string) (string, error) {
	p, err := a.problems.Create(problem.CreateInput{
		Name:  name,
		URL:   url,
		Tags:  tags,
		Memo:  memo,
		Level: level,
	})
	if err != nil {
		return "", err
	}
	return encodeOne(OpAddProblem, *p)
}

// GetTodayReviews returns the problems due on or before today (YYYY-MM-DD).
func (a *API) GetTodayReviews(problemsJSON, today string) (string, error) {
	problems, err := DecodeProblems(OpGetTodayReviews, []byte(problemsJSON))
	if err != nil {
		return "", err
	}
	return encodeMany(OpGetTodayReviews, problem.SelectDue(problems, today))
}

// UpdateReview applies a completed review to one encoded problem.
func (a *API) UpdateReview(problemJSON, newLevel string) (string, error) {
	p, err := DecodeProblem(OpUpdateReview, []byte(problemJSON))
	if err != nil {
		return "", err
	}
	updated, err := a.problems.ApplyReview(p, newLevel)
	if err != nil {
		return "", err
	}
	return encodeOne(OpUpdateReview, *updated)
}

// FilterProblems keeps the problems whose name or tags contain term.
func (a *API) FilterProblems(problemsJSON, term string) (string, error) {
	problems, err := DecodeProblems(OpFilterProblems, []byte(problemsJSON))
	if err != nil {
		return "", err
	}
	return encodeMany(OpFilterProblems, problem.FilterBySearch(problems, term))
}

// SortProblems orders problems by next_review, created_at or name.
func (a *API) SortProblems(problemsJSON, criterion string) (string, error) {
	problems, err := DecodeProblems(OpSortProblems, []byte(problemsJSON))
	if err != nil {
		return "", err
	}
	sorted, err := problem.SortBy(problems, criterion)
	if err != nil {
		return "", err
	}
	return encodeMany(OpSortProblems, sorted)
}

func encodeOne(op string, p domain.Problem) (string, error) {
	data, err := EncodeProblem(p)
	if err != nil {
		return "", fmt.Errorf("%s: encode: %w", op, err)
	}
	return string(data), nil
}

func encodeMany(op string, problems []domain.Problem) (string, error) {
	data, err := EncodeProblems(problems)
	if err != nil {
		return "", fmt.Errorf("%s: encode: %w", op, err)
	}
	return string(data), nil
}
