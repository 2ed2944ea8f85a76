package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/voyatra/package-pricing-service/internal/app/pricing/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}

// writeMappedError translates application errors into HTTP statuses.
// Unknown errors become 500 with a generic message so storage details
// never leak to callers.
func writeMappedError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusRequestTimeout, err.Error())

	case domain.IsInvalidInput(err):
		writeError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, domain.ErrBreakdownNotFound):
		writeError(w, http.StatusNotFound, err.Error())

	// Spanner surfaces RPC failures as gRPC status errors.
	case status.Code(err) == codes.NotFound:
		writeError(w, http.StatusNotFound, err.Error())
	case status.Code(err) == codes.Unavailable, status.Code(err) == codes.DeadlineExceeded:
		writeError(w, http.StatusServiceUnavailable, "pricing temporarily unavailable")

	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
