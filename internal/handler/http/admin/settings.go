// Package admin exposes the pagination settings to administrators: the
// Customizer panel of the service.
package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/samber/lo"

	"recruitpro/internal/domain/entity"
	"recruitpro/internal/handler/http/auth"
	"recruitpro/internal/handler/http/respond"
	"recruitpro/internal/observability/logging"
	"recruitpro/internal/settings"
)

// SettingsService is the part of settings.Service the endpoints use.
type SettingsService interface {
	Current(ctx context.Context) (*settings.Snapshot, error)
	Save(ctx context.Context, input map[string]any) (*settings.Snapshot, []string, error)
}

// Field describes one editable setting.
type Field struct {
	Key     string   `json:"key"`
	Kind    string   `json:"kind"`
	Label   string   `json:"label"`
	Default string   `json:"default"`
	Choices []string `json:"choices,omitempty"`
	Min     *int     `json:"min,omitempty"`
	Max     *int     `json:"max,omitempty"`
}

// SettingsResponse is the body of both endpoints.
type SettingsResponse struct {
	Settings map[string]string `json:"settings"`
	Fields   []Field           `json:"fields,omitempty"`
	Ignored  []string          `json:"ignored,omitempty"`
}

var fields = lo.Map(settings.Schema, func(d settings.Definition, _ int) Field {
	f := Field{Key: d.Key, Kind: d.Kind.String(), Label: d.Label, Default: d.Default, Choices: d.Choices}
	if d.Kind == settings.KindInt {
		f.Min, f.Max = lo.ToPtr(d.Min), lo.ToPtr(d.Max)
	}
	return f
})

// GetHandler returns the effective settings and the field list.
type GetHandler struct {
	Svc    SettingsService
	Logger *slog.Logger
}

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Svc.Current(r.Context())
	if err != nil {
		logging.WithRequestID(r.Context(), orDefault(h.Logger)).Error("failed to load settings", slog.Any("error", err))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, SettingsResponse{Settings: snap.Values(), Fields: fields})
}

// PutHandler saves a JSON object of key → value. Values are sanitized the
// way the Customizer does it: out-of-range numbers are clamped and invalid
// choices fall back to the default. Unknown keys are reported, not saved.
type PutHandler struct {
	Svc    SettingsService
	Logger *slog.Logger
}

func (h PutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), orDefault(h.Logger))

	var input map[string]any
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input == nil {
		respond.SafeError(w, http.StatusBadRequest, fmt.Errorf("%w: request body must be a JSON object", entity.ErrInvalidInput))
		return
	}

	snap, ignored, err := h.Svc.Save(r.Context(), input)
	if err != nil {
		logger.Error("failed to save settings", slog.Any("error", err))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	logger.Info("settings updated",
		slog.String("user", auth.UserFromContext(r.Context())),
		slog.Int("keys", len(input)-len(ignored)))
	respond.JSON(w, http.StatusOK, SettingsResponse{Settings: snap.Values(), Ignored: ignored})
}

func orDefault(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.Default()
}

// Register mounts the settings endpoints behind authz.
func Register(mux *http.ServeMux, svc SettingsService, authz func(http.Handler) http.Handler, logger *slog.Logger) {
	mux.Handle("GET /admin/settings", authz(GetHandler{Svc: svc, Logger: logger}))
	mux.Handle("PUT /admin/settings", authz(PutHandler{Svc: svc, Logger: logger}))
}
