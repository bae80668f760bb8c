package settings

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads setting defaults from a YAML file of key: value pairs.
// Values are sanitized; unknown keys are logged and skipped.
// The path is expected to come from trusted configuration.
//
//	pagination_style: load_more
//	jobs_per_page: 24
func LoadFile(path string) (map[string]string, error) {
	// #nosec G304 -- path comes from SETTINGS_FILE, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	clean, ignored := SanitizeAll(raw)
	for _, key := range ignored {
		slog.Warn("ignoring unknown setting in settings file",
			slog.String("path", path),
			slog.String("key", key))
	}
	return clean, nil
}
