package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jungguji/algo-rewind/internal/domain"
)

// problemAPI is the JSON boundary the handler delegates to.
type problemAPI interface {
	AddProblem(name string, url *string, tags []string, memo, level string) (string, error)
	GetTodayReviews(problemsJSON, today string) (string, error)
	UpdateReview(problemJSON, newLevel string) (string, error)
	FilterProblems(problemsJSON, term string) (string, error)
	SortProblems(problemsJSON, criterion string) (string, error)
}

// ProblemHandler serves the problem REST endpoints. Problem lists travel
// inside the request body as raw JSON and are decoded by the boundary, so
// malformed records surface as decoding errors.
type ProblemHandler struct {
	api          problemAPI
	clock        func() time.Time
	maxBodyBytes int64
	log          *slog.Logger
}

// NewProblemHandler creates a ProblemHandler.
func NewProblemHandler(api problemAPI, clock func() time.Time, maxBodyBytes int64, logger *slog.Logger) *ProblemHandler {
	return &ProblemHandler{
		api:          api,
		clock:        clock,
		maxBodyBytes: maxBodyBytes,
		log:          logger.With("handler", "problem"),
	}
}

type addProblemRequest struct {
	Name  string   `json:"name"`
	URL   *string  `json:"url"`
	Tags  []string `json:"tags"`
	Memo  string   `json:"memo"`
	Level string   `json:"level"`
}

type dueRequest struct {
	Problems json.RawMessage `json:"problems"`
	Today    string          `json:"today"`
}

type reviewRequest struct {
	Problem json.RawMessage `json:"problem"`
	Level   string          `json:"level"`
}

type filterRequest struct {
	Problems json.RawMessage `json:"problems"`
	Term     string          `json:"term"`
}

type sortRequest struct {
	Problems  json.RawMessage `json:"problems"`
	Criterion string          `json:"criterion"`
}

// Add handles POST /api/problems.
func (h *ProblemHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addProblemRequest
	if !h.decode(w, r, &req) {
		return
	}

	out, err := h.api.AddProblem(req.Name, req.URL, req.Tags, req.Memo, req.Level)
	if err != nil {
		handleServiceError(w, r, h.log, err)
		return
	}
	writeRaw(w, http.StatusCreated, out)
}

// Due handles POST /api/problems/due. An omitted "today" means the current
// UTC date.
func (h *ProblemHandler) Due(w http.ResponseWriter, r *http.Request) {
	var req dueRequest
	if !h.decode(w, r, &req) {
		return
	}

	today := req.Today
	if today == "" {
		today = domain.FormatDate(h.clock())
	}

	out, err := h.api.GetTodayReviews(string(req.Problems), today)
	if err != nil {
		handleServiceError(w, r, h.log, err)
		return
	}
	writeRaw(w, http.StatusOK, out)
}

// Review handles POST /api/problems/review.
func (h *ProblemHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if !h.decode(w, r, &req) {
		return
	}

	out, err := h.api.UpdateReview(string(req.Problem), req.Level)
	if err != nil {
		handleServiceError(w, r, h.log, err)
		return
	}
	writeRaw(w, http.StatusOK, out)
}

// Filter handles POST /api/problems/filter.
func (h *ProblemHandler) Filter(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	if !h.decode(w, r, &req) {
		return
	}

	out, err := h.api.FilterProblems(string(req.Problems), req.Term)
	if err != nil {
		handleServiceError(w, r, h.log, err)
		return
	}
	writeRaw(w, http.StatusOK, out)
}

// Sort handles POST /api/problems/sort.
func (h *ProblemHandler) Sort(w http.ResponseWriter, r *http.Request) {
	var req sortRequest
	if !h.decode(w, r, &req) {
		return
	}

	out, err := h.api.SortProblems(string(req.Problems), req.Criterion)
	if err != nil {
		handleServiceError(w, r, h.log, err)
		return
	}
	writeRaw(w, http.StatusOK, out)
}

func (h *ProblemHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, CodeBadRequest,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return false
		}
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body")
		return false
	}
	return true
}

func writeRaw(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
