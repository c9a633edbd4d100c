package content

import "context"

// Client is the interface to the external content-generation service.
//
// GenerateTheory and GenerateQuiz fail with *ErrNetwork, *ErrServer or
// *ErrMalformed; GenerateQuiz additionally fails with ErrEmptyResult when
// the server succeeds but returns no questions. On any failure the caller
// must keep its previously fetched content untouched.
type Client interface {
	// GenerateTheory fetches an explanatory passage for the objective.
	GenerateTheory(ctx context.Context, objective string, difficulty Difficulty) (*Theory, error)

	// GenerateQuiz fetches a quiz; the question count follows QuestionCount.
	GenerateQuiz(ctx context.Context, objective string, difficulty Difficulty) (*QuizSet, error)

	// SubmitProgress sends a completed attempt to the server. Best effort:
	// callers log failures and move on.
	SubmitProgress(ctx context.Context, sub ProgressSubmission) error

	// FetchHistory returns the remote learning history, newest first.
	FetchHistory(ctx context.Context) ([]HistoryItem, error)

	// FetchStats returns the remote learning statistics.
	FetchStats(ctx context.Context) (*LearningStats, error)
}
