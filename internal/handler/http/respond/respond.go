// Package respond writes JSON responses: plain payloads, sanitized errors and
// the {success, data} envelope returned by the AJAX endpoints.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"recruitpro/internal/domain/entity"
)

// Envelope is the body of every AJAX response.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// FailureData is the data member of a failed envelope.
type FailureData struct {
	Message string `json:"message"`
}

// JSON writes v as JSON with the given status code.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// headers are already sent
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// Success writes 200 {"success":true,"data":data}.
func Success(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// Failure writes {"success":false,"data":{"message":message}} with code.
func Failure(w http.ResponseWriter, code int, message string) {
	JSON(w, code, Envelope{Success: false, Data: FailureData{Message: message}})
}

// Error writes {"error": err.Error()}.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

var safeFragments = []string{
	"required",
	"invalid",
	"not found",
	"must be",
	"must not",
	"unknown",
}

// SafeError returns validation-style messages to the client verbatim and
// replaces everything else, and every 5xx, with "internal server error".
// Hidden errors are logged with secrets masked.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}
	if code < http.StatusInternalServerError && isSafe(err) {
		JSON(w, code, map[string]string{"error": err.Error()})
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, map[string]string{"error": "internal server error"})
}

func isSafe(err error) bool {
	if errors.Is(err, entity.ErrValidationFailed) || errors.Is(err, entity.ErrInvalidInput) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, fragment := range safeFragments {
		if strings.Contains(msg, fragment) {
			return true
		}
	}
	return false
}
