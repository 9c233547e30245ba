package problem

import (
	"log/slog"

	"github.com/jungguji/algo-rewind/internal/domain"
	"github.com/jungguji/algo-rewind/internal/service/schedule"
)

// ApplyReview records a completed review: it replaces the level and restarts
// the interval from today (UTC). The previous next_review_at is ignored, so a
// late review does not carry over the missed days. ID and CreatedAt are kept.
//
// p is not modified; the updated copy is returned.
func (s *Service) ApplyReview(p domain.Problem, levelText string) (*domain.Problem, error) {
	level, err := domain.ParseLevel(levelText)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	prevLevel := p.Level

	updated := p
	updated.Tags = append([]string(nil), p.Tags...)
	if updated.Tags == nil {
		updated.Tags = []string{}
	}
	updated.Level = level
	updated.NextReviewAt = schedule.NextReviewDateAt(domain.FormatDate(now), level, now)

	s.log.Debug("review applied",
		slog.Int64("id", updated.ID),
		slog.String("prev_level", prevLevel.String()),
		slog.String("level", level.String()),
		slog.String("next_review_at", updated.NextReviewAt),
	)

	return &updated, nil
}
