package rest

import (
	"net/http"

	"github.com/jungguji/algo-rewind/internal/transport/middleware"
)

// NewRouter registers every endpoint and wraps the mux in the given middleware.
func NewRouter(problems *ProblemHandler, health *HealthHandler, mw middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.Live)

	mux.HandleFunc("POST /api/problems", problems.Add)
	mux.HandleFunc("POST /api/problems/due", problems.Due)
	mux.HandleFunc("POST /api/problems/review", problems.Review)
	mux.HandleFunc("POST /api/problems/filter", problems.Filter)
	mux.HandleFunc("POST /api/problems/sort", problems.Sort)

	return mw(mux)
}
