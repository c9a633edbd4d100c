package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HTTPClient talks to the content-generation service over HTTP/JSON.
type HTTPClient struct {
	cfg    Config
	client *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the service at cfg.BaseURL.
func NewHTTPClient(cfg Config) *HTTPClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.TheoryFormat == "" {
		cfg.TheoryFormat = "markdown"
	}
	return &HTTPClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type theoryRequest struct {
	LearningObjective string `json:"learning_objective"`
	Difficulty        string `json:"difficulty"`
	Format            string `json:"format"`
}

type theoryResponse struct {
	SummaryText string         `json:"summary_text"`
	Warning     string         `json:"warning"`
	Metadata    map[string]any `json:"metadata"`
}

func (c *HTTPClient) GenerateTheory(ctx context.Context, objective string, difficulty Difficulty) (*Theory, error) {
	raw, err := c.post(ctx, "/generate_theory", theoryRequest{
		LearningObjective: objective,
		Difficulty:        string(difficulty),
		Format:            c.cfg.TheoryFormat,
	})
	if err != nil {
		return nil, err
	}

	if err := validateShape("theory-response", theorySchema, raw); err != nil {
		return nil, err
	}

	var resp theoryResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &ErrMalformed{Content: raw, Err: err}
	}

	return &Theory{
		Body:          resp.SummaryText,
		Warning:       resp.Warning,
		RelatedTopics: relatedTopicsFromMetadata(resp.Metadata),
	}, nil
}

type quizRequest struct {
	LearningObjective string `json:"learning_objective"`
	Difficulty        string `json:"difficulty"`
	NumQuestions      int    `json:"num_questions"`
}

type quizItem struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type quizResponse struct {
	Questions []quizItem `json:"questions"`
	Warning   string     `json:"warning"`
}

func (c *HTTPClient) GenerateQuiz(ctx context.Context, objective string, difficulty Difficulty) (*QuizSet, error) {
	raw, err := c.post(ctx, "/generate_quiz", quizRequest{
		LearningObjective: objective,
		Difficulty:        string(difficulty),
		NumQuestions:      QuestionCount(difficulty),
	})
	if err != nil {
		return nil, err
	}

	if err := validateShape("quiz-response", quizSchema, raw); err != nil {
		return nil, err
	}

	var resp quizResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &ErrMalformed{Content: raw, Err: err}
	}

	if len(resp.Questions) == 0 {
		return nil, ErrEmptyResult
	}

	set := &QuizSet{
		Objective:  objective,
		Difficulty: difficulty,
		Warning:    resp.Warning,
	}
	for _, q := range resp.Questions {
		set.Questions = append(set.Questions, Question{
			Text:          q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}
	return set, nil
}

type progressRequest struct {
	Topic      string  `json:"topic"`
	Score      float64 `json:"score"`
	Date       string  `json:"date"`
	Notes      string  `json:"notes,omitempty"`
	Difficulty string  `json:"difficulty"`
	TimeSpent  string  `json:"time_spent,omitempty"`
	UsedNotes  bool    `json:"used_notes"`
}

func (c *HTTPClient) SubmitProgress(ctx context.Context, sub ProgressSubmission) error {
	_, err := c.post(ctx, "/save_progress", progressRequest{
		Topic:      sub.Topic,
		Score:      sub.Score,
		Date:       sub.Date,
		Notes:      sub.Notes,
		Difficulty: string(sub.Difficulty),
		TimeSpent:  sub.TimeSpent,
		UsedNotes:  sub.UsedNotes,
	})
	return err
}

type historyResponse struct {
	History []struct {
		Topic      string  `json:"topic"`
		Date       string  `json:"date"`
		Score      float64 `json:"score"`
		Difficulty string  `json:"difficulty"`
		TimeSpent  string  `json:"time_spent"`
	} `json:"history"`
}

func (c *HTTPClient) FetchHistory(ctx context.Context) ([]HistoryItem, error) {
	raw, err := c.get(ctx, "/learning_history")
	if err != nil {
		return nil, err
	}

	var resp historyResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &ErrMalformed{Content: raw, Err: err}
	}

	items := make([]HistoryItem, 0, len(resp.History))
	for _, h := range resp.History {
		items = append(items, HistoryItem{
			Topic:      h.Topic,
			Date:       h.Date,
			Score:      h.Score,
			Difficulty: h.Difficulty,
			TimeSpent:  h.TimeSpent,
		})
	}
	return items, nil
}

type statsResponse struct {
	CompletedTopics int            `json:"completed_topics"`
	TotalQuizzes    int            `json:"total_quizzes"`
	AverageScore    float64        `json:"average_score"`
	TopicsBySubject map[string]int `json:"topics_by_subject"`
}

func (c *HTTPClient) FetchStats(ctx context.Context) (*LearningStats, error) {
	raw, err := c.get(ctx, "/learning_stats")
	if err != nil {
		return nil, err
	}

	var resp statsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &ErrMalformed{Content: raw, Err: err}
	}

	return &LearningStats{
		CompletedTopics: resp.CompletedTopics,
		TotalQuizzes:    resp.TotalQuizzes,
		AverageScore:    resp.AverageScore,
		TopicsBySubject: resp.TopicsBySubject,
	}, nil
}

// post issues a JSON POST and returns the raw success body.
func (c *HTTPClient) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// get issues a GET and returns the raw success body.
func (c *HTTPClient) get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	return c.do(req)
}

func (c *HTTPClient) do(req *http.Request) (json.RawMessage, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ErrNetwork{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ErrNetwork{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ErrServer{Status: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}

func (c *HTTPClient) url(path string) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + path
}

// relatedTopicsFromMetadata extracts the optional related-topics list the
// server tucks into theory metadata.
func relatedTopicsFromMetadata(meta map[string]any) []string {
	raw, ok := meta["related_topics"].([]any)
	if !ok {
		return nil
	}
	var topics []string
	for _, t := range raw {
		if s, ok := t.(string); ok && s != "" {
			topics = append(topics, s)
		}
	}
	return topics
}
