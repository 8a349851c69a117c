package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the JSON body returned for every non-2xx outcome.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "attraction not
// found") because the handler is the layer that knows what was looked up.
func notFoundBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "not_found", Message: message}}
}

// requestBody returns an ErrorResponse for a request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "bad_request", Message: message}}
}

// respondJSON writes payload as a JSON response with the given status.
// Encoding failures are logged, not surfaced — the status line has already
// been written by then.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// respondInternal writes a generic 500 body and logs the underlying error.
// Internal details never leak to the client.
func respondInternal(w http.ResponseWriter, err error) {
	slog.Error("handler error", "error", err)
	respondJSON(w, http.StatusInternalServerError,
		ErrorResponse{Error: ErrorDetail{Code: "internal_error", Message: "internal server error"}})
}
