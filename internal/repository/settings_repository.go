package repository

import "context"

// SettingsRepository persists site settings as key/value strings.
type SettingsRepository interface {
	// All returns every stored setting. Missing keys are simply absent.
	All(ctx context.Context) (map[string]string, error)
	// Save upserts the given settings; keys not in values are left untouched.
	Save(ctx context.Context, values map[string]string) error
}
