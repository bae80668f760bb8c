package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"recruitpro/internal/handler/http/respond"
	"recruitpro/internal/observability/logging"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenHandler exchanges the admin email and password for a bearer token.
func TokenHandler(admin *Admin, logger *slog.Logger) http.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := logging.WithRequestID(r.Context(), logger)

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("authentication failed", slog.String("reason", "invalid_request"))
			RecordAuthRequest("unknown", "failure")
			RecordAuthDuration("unknown", time.Since(start).Seconds())
			respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}

		if err := admin.Check(req.Email, req.Password); err != nil {
			log.Warn("authentication failed", slog.String("reason", "invalid_credentials"))
			RecordAuthRequest("unknown", "failure")
			RecordAuthDuration("unknown", time.Since(start).Seconds())
			respond.JSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}

		signed, err := admin.Issue(req.Email)
		if err != nil {
			RecordAuthRequest(RoleAdmin, "failure")
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}

		log.Info("authentication successful",
			slog.String("role", RoleAdmin),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		RecordAuthRequest(RoleAdmin, "success")
		RecordAuthDuration(RoleAdmin, time.Since(start).Seconds())

		respond.JSON(w, http.StatusOK, tokenResponse{
			Token:     signed,
			ExpiresAt: admin.clock().Add(admin.TTL).UTC().Truncate(time.Second),
		})
	}
}
