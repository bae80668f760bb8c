package settings

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"recruitpro/internal/repository"
)

// Service loads and saves settings. File holds defaults from SETTINGS_FILE;
// stored values win over them.
type Service struct {
	Repo   repository.SettingsRepository
	File   map[string]string
	Logger *slog.Logger
}

// Current returns the effective settings. It reads the store on every call so
// a save is visible to the next request.
func (s *Service) Current(ctx context.Context) (*Snapshot, error) {
	stored, err := s.Repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return NewSnapshot(s.File, stored), nil
}

// Provider returns Current as a Provider.
func (s *Service) Provider(ctx context.Context) (Provider, error) {
	snap, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Save sanitizes input and persists the known keys. Unknown keys are ignored
// and returned sorted so callers can report them.
func (s *Service) Save(ctx context.Context, input map[string]any) (*Snapshot, []string, error) {
	clean, ignored := SanitizeAll(input)
	sort.Strings(ignored)

	if len(clean) > 0 {
		if err := s.Repo.Save(ctx, clean); err != nil {
			return nil, nil, fmt.Errorf("save settings: %w", err)
		}
	}
	s.logger().InfoContext(ctx, "settings saved",
		slog.Int("saved", len(clean)),
		slog.Any("ignored", ignored))

	snap, err := s.Current(ctx)
	if err != nil {
		return nil, nil, err
	}
	return snap, ignored, nil
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
