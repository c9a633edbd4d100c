package content

// Difficulty selects how demanding generated content should be.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists all levels in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// QuestionCount returns how many questions to request for a difficulty.
// The mapping is a client policy, not negotiated with the server.
func QuestionCount(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return 3
	case DifficultyHard:
		return 7
	default:
		return 5
	}
}

// Theory is a generated explanatory passage for a learning objective.
// Immutable once fetched; a new request replaces it wholesale.
type Theory struct {
	// Body is the passage markup (markdown).
	Body string

	// Warning is set when the server could not fully verify the content
	// against its scientific reference material.
	Warning string

	// RelatedTopics suggests follow-up learning objectives.
	RelatedTopics []string
}

// Question is a single multiple-choice question.
type Question struct {
	Text string

	// Options holds the answer choices in display order (at least 2).
	Options []string

	// CorrectAnswer matches one element of Options, possibly after the
	// grader's known-corrections pass.
	CorrectAnswer string

	// Explanation is an optional rationale shown after grading.
	Explanation string
}

// QuizSet is a difficulty-scoped ordered set of questions for an objective.
type QuizSet struct {
	Objective  string
	Difficulty Difficulty
	Questions  []Question
	Warning    string
}

// ProgressSubmission is the fire-and-forget payload sent after grading.
type ProgressSubmission struct {
	Topic      string
	Score      float64 // 0..100
	Date       string  // YYYY-MM-DD
	Notes      string
	Difficulty Difficulty
	TimeSpent  string // MM:SS
	UsedNotes  bool
}

// HistoryItem is one remote learning-history entry.
type HistoryItem struct {
	Topic      string
	Date       string
	Score      float64
	Difficulty string
	TimeSpent  string
}

// LearningStats is the server-side aggregate over the learning history.
type LearningStats struct {
	CompletedTopics int
	TotalQuizzes    int
	AverageScore    float64
	TopicsBySubject map[string]int
}
