package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jungguji/algo-rewind/internal/domain"
)

// Error codes returned in the "code" field of error responses.
const (
	CodeBadRequest = "BAD_REQUEST"
	CodeValidation = "VALIDATION"
	CodeInternal   = "INTERNAL"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

// handleServiceError maps boundary errors to HTTP responses. Malformed input
// is a client error distinct from a rejected level or criterion.
func handleServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrDecoding):
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, CodeValidation, err.Error())
	default:
		log.ErrorContext(r.Context(), "unexpected error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
	}
}
