package store

import (
	"context"
	"database/sql"
	"time"
)

// ProgressRecord is one persisted, graded quiz attempt.
type ProgressRecord struct {
	ID         int64
	Topic      string
	Date       string // YYYY-MM-DD
	Score      float64
	Difficulty string
	TimeSpent  string // MM:SS as displayed during the attempt
	UsedNotes  bool
	Subject    string
	Notes      string
	CreatedAt  time.Time
}

// ProgressRepo persists completed quiz attempts.
type ProgressRepo interface {
	// Append stores a new record and sets its ID.
	Append(ctx context.Context, rec *ProgressRecord) error

	// All returns every record, most recent first.
	All(ctx context.Context) ([]ProgressRecord, error)

	// ByTopic returns records for one topic, most recent first.
	ByTopic(ctx context.Context, topic string) ([]ProgressRecord, error)
}

type progressRepo struct {
	db *sql.DB
}

func (r *progressRepo) Append(ctx context.Context, rec *ProgressRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO progress_records
		 (topic, date, score, difficulty, time_spent, used_notes, subject, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Topic, rec.Date, rec.Score, rec.Difficulty, rec.TimeSpent,
		boolToInt(rec.UsedNotes), rec.Subject, rec.Notes,
		rec.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}
	rec.ID, err = res.LastInsertId()
	return err
}

func (r *progressRepo) All(ctx context.Context) ([]ProgressRecord, error) {
	return r.query(ctx,
		`SELECT id, topic, date, score, difficulty, time_spent, used_notes, subject, notes, created_at
		 FROM progress_records ORDER BY created_at DESC, id DESC`)
}

func (r *progressRepo) ByTopic(ctx context.Context, topic string) ([]ProgressRecord, error) {
	return r.query(ctx,
		`SELECT id, topic, date, score, difficulty, time_spent, used_notes, subject, notes, created_at
		 FROM progress_records WHERE topic = ? ORDER BY created_at DESC, id DESC`, topic)
}

func (r *progressRepo) query(ctx context.Context, q string, args ...any) ([]ProgressRecord, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []ProgressRecord
	for rows.Next() {
		var rec ProgressRecord
		var usedNotes int
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.Topic, &rec.Date, &rec.Score, &rec.Difficulty,
			&rec.TimeSpent, &usedNotes, &rec.Subject, &rec.Notes, &createdAt); err != nil {
			return nil, err
		}
		rec.UsedNotes = usedNotes != 0
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			rec.CreatedAt = t
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
