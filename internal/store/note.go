package store

import (
	"context"
	"database/sql"
	"time"
)

// Note is a free-text study note attached to a topic.
type Note struct {
	ID         string
	Topic      string
	Body       string
	Difficulty string
	CreatedAt  time.Time
}

// NoteRepo persists study notes.
type NoteRepo interface {
	// Save inserts a note, or replaces it if the ID already exists.
	Save(ctx context.Context, n *Note) error

	// Delete removes a note by ID. Deleting a missing ID is a no-op.
	Delete(ctx context.Context, id string) error

	// All returns every note, most recent first.
	All(ctx context.Context) ([]Note, error)

	// ByTopic returns notes for one topic, most recent first.
	ByTopic(ctx context.Context, topic string) ([]Note, error)
}

type noteRepo struct {
	db *sql.DB
}

func (r *noteRepo) Save(ctx context.Context, n *Note) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO notes (id, topic, body, difficulty, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		n.ID, n.Topic, n.Body, n.Difficulty, n.CreatedAt.UTC().Format(time.RFC3339))
	return err
}

func (r *noteRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	return err
}

func (r *noteRepo) All(ctx context.Context) ([]Note, error) {
	return r.query(ctx,
		`SELECT id, topic, body, difficulty, created_at FROM notes
		 ORDER BY created_at DESC, id DESC`)
}

func (r *noteRepo) ByTopic(ctx context.Context, topic string) ([]Note, error) {
	return r.query(ctx,
		`SELECT id, topic, body, difficulty, created_at FROM notes
		 WHERE topic = ? ORDER BY created_at DESC, id DESC`, topic)
}

func (r *noteRepo) query(ctx context.Context, q string, args ...any) ([]Note, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var n Note
		var createdAt string
		if err := rows.Scan(&n.ID, &n.Topic, &n.Body, &n.Difficulty, &createdAt); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			n.CreatedAt = t
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
