package store

import (
	"context"
	"database/sql"
	"errors"
)

// Preference keys.
const (
	PrefDarkMode = "dark_mode"
)

// PrefsRepo stores small key/value user preferences.
type PrefsRepo interface {
	// Get returns the stored value, or fallback if the key is absent.
	Get(ctx context.Context, key, fallback string) (string, error)

	// Set stores a value, overwriting any previous one.
	Set(ctx context.Context, key, value string) error

	// GetBool reads a boolean preference stored as "true"/"false".
	GetBool(ctx context.Context, key string, fallback bool) (bool, error)

	// SetBool stores a boolean preference.
	SetBool(ctx context.Context, key string, value bool) error
}

type prefsRepo struct {
	db *sql.DB
}

func (r *prefsRepo) Get(ctx context.Context, key, fallback string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return fallback, nil
	}
	if err != nil {
		return fallback, err
	}
	return value, nil
}

func (r *prefsRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO prefs (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

func (r *prefsRepo) GetBool(ctx context.Context, key string, fallback bool) (bool, error) {
	fb := "false"
	if fallback {
		fb = "true"
	}
	v, err := r.Get(ctx, key, fb)
	return v == "true", err
}

func (r *prefsRepo) SetBool(ctx context.Context, key string, value bool) error {
	v := "false"
	if value {
		v = "true"
	}
	return r.Set(ctx, key, v)
}
