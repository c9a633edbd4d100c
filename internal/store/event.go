package store

import (
	"context"
	"database/sql"
	"time"
)

// RequestEventData captures the data for a single content-service request.
type RequestEventData struct {
	Operation  string // "generate_theory", "generate_quiz", "save_progress", ...
	Objective  string
	Difficulty string
	LatencyMs  int64
	Success    bool
	Error      string
}

// RequestEventRecord is a stored request event.
type RequestEventRecord struct {
	ID        int64
	Timestamp time.Time
	RequestEventData
}

// EventRepo provides append access to request events.
type EventRepo interface {
	// AppendRequest records a content-service API call.
	AppendRequest(ctx context.Context, data RequestEventData) error

	// RecentRequests returns the most recent events, newest first.
	RecentRequests(ctx context.Context, limit int) ([]RequestEventRecord, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendRequest(ctx context.Context, data RequestEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO request_events (operation, objective, difficulty, latency_ms, success, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		data.Operation, data.Objective, data.Difficulty, data.LatencyMs,
		boolToInt(data.Success), data.Error, time.Now().UTC().Format(time.RFC3339))
	return err
}

func (r *eventRepo) RecentRequests(ctx context.Context, limit int) ([]RequestEventRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, operation, objective, difficulty, latency_ms, success, error, created_at
		 FROM request_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []RequestEventRecord
	for rows.Next() {
		var rec RequestEventRecord
		var success int
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.Operation, &rec.Objective, &rec.Difficulty,
			&rec.LatencyMs, &success, &rec.Error, &createdAt); err != nil {
			return nil, err
		}
		rec.Success = success != 0
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			rec.Timestamp = t
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
