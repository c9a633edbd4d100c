package content

import (
	"context"
	"sync"
)

// MockResult is a canned result for the MockClient.
type MockResult struct {
	Theory  *Theory
	Quiz    *QuizSet
	History []HistoryItem
	Stats   *LearningStats
	Err     error
}

// MockClient is a deterministic Client for testing. Each operation returns
// canned results in FIFO order and records its calls.
type MockClient struct {
	mu sync.Mutex

	TheoryResults  []MockResult
	QuizResults    []MockResult
	HistoryResults []MockResult
	StatsResults   []MockResult
	SubmitErrs     []error

	TheoryCalls []string // objectives
	QuizCalls   []string
	Submissions []ProgressSubmission
}

var _ Client = (*MockClient)(nil)

func (m *MockClient) GenerateTheory(_ context.Context, objective string, _ Difficulty) (*Theory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TheoryCalls = append(m.TheoryCalls, objective)
	r := shift(&m.TheoryResults)
	return r.Theory, r.Err
}

func (m *MockClient) GenerateQuiz(_ context.Context, objective string, _ Difficulty) (*QuizSet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QuizCalls = append(m.QuizCalls, objective)
	r := shift(&m.QuizResults)
	return r.Quiz, r.Err
}

func (m *MockClient) SubmitProgress(_ context.Context, sub ProgressSubmission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Submissions = append(m.Submissions, sub)
	if len(m.SubmitErrs) == 0 {
		return nil
	}
	err := m.SubmitErrs[0]
	m.SubmitErrs = m.SubmitErrs[1:]
	return err
}

func (m *MockClient) FetchHistory(_ context.Context) ([]HistoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := shift(&m.HistoryResults)
	return r.History, r.Err
}

func (m *MockClient) FetchStats(_ context.Context) (*LearningStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := shift(&m.StatsResults)
	return r.Stats, r.Err
}

// shift pops the next canned result, or an ErrNetwork result when the
// queue is empty.
func shift(queue *[]MockResult) MockResult {
	if len(*queue) == 0 {
		return MockResult{Err: &ErrNetwork{}}
	}
	r := (*queue)[0]
	*queue = (*queue)[1:]
	return r
}
