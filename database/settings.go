package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
)

// SettingsStore persists UI settings as owner/key/value rows.
type SettingsStore struct {
	db *sql.DB
}

func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db}
}

func (s *SettingsStore) Load(ctx context.Context, owner string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, value
		FROM ui_setting
		WHERE owner = ?`,
		owner,
	)
	if err != nil {
		return nil, errors.Wrap(err, "db.settings.load")
	}
	defer rows.Close()

	values := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, errors.Wrap(err, "db.settings.load.scan")
		}
		values[key] = value
	}
	return values, errors.Wrap(rows.Err(), "db.settings.load.rows")
}

func (s *SettingsStore) Save(ctx context.Context, owner string, values map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "db.begin_tx")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO ui_setting (owner, name, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (owner, name) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`)
	if err != nil {
		return errors.Wrap(err, "db.settings.save.prepare")
	}
	defer stmt.Close()

	now := time.Now()
	for key, value := range values {
		if _, err := stmt.ExecContext(ctx, owner, key, value, now); err != nil {
			return errors.Wrap(err, "db.settings.save.upsert")
		}
	}

	return errors.Wrap(tx.Commit(), "db.settings.save.commit")
}
