package problem

import (
	"log/slog"

	"github.com/jungguji/algo-rewind/internal/domain"
	"github.com/jungguji/algo-rewind/internal/service/schedule"
)

// Create builds a new problem stamped with the current time. Only the level
// is validated: empty names, memos and tag lists are accepted as-is.
func (s *Service) Create(input CreateInput) (*domain.Problem, error) {
	level, err := domain.ParseLevel(input.Level)
	if err != nil {
		return nil, err
	}

	createdAt := domain.FormatDate(s.clock())

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	p := &domain.Problem{
		ID:           s.ids.NextID(),
		Name:         input.Name,
		URL:          input.URL,
		Tags:         tags,
		Memo:         input.Memo,
		Level:        level,
		CreatedAt:    createdAt,
		NextReviewAt: schedule.NextReviewDateAt(createdAt, level, s.clock()),
	}

	s.log.Debug("problem created",
		slog.Int64("id", p.ID),
		slog.String("level", p.Level.String()),
		slog.String("next_review_at", p.NextReviewAt),
	)

	return p, nil
}
