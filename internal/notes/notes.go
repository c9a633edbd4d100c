package notes

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mjard/sciquiz/internal/store"
)

// Service owns the study-notes collection: keyed persistence of free-text
// notes per topic. Viewing notes mid-quiz is the session controller's
// concern; this service only stores and retrieves.
type Service struct {
	repo store.NoteRepo
}

// NewService creates a notes service over the given repository.
func NewService(repo store.NoteRepo) *Service {
	return &Service{repo: repo}
}

// Add stores a new note for a topic. Blank bodies are rejected.
func (s *Service) Add(ctx context.Context, topic, body, difficulty string) (*store.Note, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("note text is empty")
	}
	if difficulty == "" {
		difficulty = "medium"
	}

	n := &store.Note{
		ID:         uuid.New().String(),
		Topic:      strings.TrimSpace(topic),
		Body:       body,
		Difficulty: difficulty,
	}
	if err := s.repo.Save(ctx, n); err != nil {
		return nil, fmt.Errorf("save note: %w", err)
	}
	return n, nil
}

// Delete removes a note by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ForTopic returns the notes attached to a topic, most recent first.
func (s *Service) ForTopic(ctx context.Context, topic string) ([]store.Note, error) {
	return s.repo.ByTopic(ctx, strings.TrimSpace(topic))
}

// All returns every note, most recent first.
func (s *Service) All(ctx context.Context) ([]store.Note, error) {
	return s.repo.All(ctx)
}

// CombinedText joins note bodies for inclusion in a progress record.
func CombinedText(ns []store.Note) string {
	var bodies []string
	for _, n := range ns {
		bodies = append(bodies, n.Body)
	}
	return strings.Join(bodies, "\n")
}
