package problem

import (
	"log/slog"
	"time"

	"github.com/jungguji/algo-rewind/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type idSource interface {
	NextID() int64
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service creates problems and applies reviews. The collection operations
// (SelectDue, FilterBySearch, SortBy, ...) need no state and are plain
// functions in this package.
type Service struct {
	ids   idSource
	clock func() time.Time
	log   *slog.Logger
}

// NewService creates a new Problem service.
func NewService(log *slog.Logger, ids idSource, clock func() time.Time) *Service {
	return &Service{
		ids:   ids,
		clock: clock,
		log:   log.With("service", "problem"),
	}
}

// Today returns the current UTC calendar date as YYYY-MM-DD.
func (s *Service) Today() string {
	return domain.FormatDate(s.clock())
}
