package sqlite

import (
	"context"
	"fmt"
	"sort"

	"recruitpro/internal/repository"
)

type SettingsRepo struct {
	db DBTX
}

func NewSettingsRepo(db DBTX) *SettingsRepo {
	return &SettingsRepo{db: db}
}

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

func (repo *SettingsRepo) All(ctx context.Context) (map[string]string, error) {
	rows, err := repo.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("All: %w", err)
	}
	defer func() { _ = rows.Close() }()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("All: Scan: %w", err)
		}
		values[key] = value
	}
	return values, rows.Err()
}

func (repo *SettingsRepo) Save(ctx context.Context, values map[string]string) error {
	const q = `
INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := repo.db.ExecContext(ctx, q, k, values[k]); err != nil {
			return fmt.Errorf("Save %s: %w", k, err)
		}
	}
	return nil
}
