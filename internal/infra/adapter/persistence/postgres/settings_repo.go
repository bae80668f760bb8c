package postgres

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
	const q = `SELECT key, value FROM settings`
	rows, err := repo.db.QueryContext(ctx, q)
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

// Save upserts values one key at a time, in key order.
func (repo *SettingsRepo) Save(ctx context.Context, values map[string]string) error {
	const q = `
INSERT INTO settings (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

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
