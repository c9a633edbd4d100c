package grader

import (
	"regexp"
	"strings"

	"github.com/mjard/sciquiz/internal/content"
)

// optionPrefix matches a leading option letter the server or UI may have
// attached to an answer: "B. Mitosis", "B.Mitosis", "b Mitosis". A bare
// letter with no separator is left alone so words like "Dog" survive.
var optionPrefix = regexp.MustCompile(`^[A-Da-d](\.\s*|\s+)`)

// Normalize produces the comparison form of an answer string: the option
// letter prefix is stripped, whitespace trimmed, and the result lower-cased.
// The stored and displayed values are never mutated.
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	text = optionPrefix.ReplaceAllString(text, "")
	return strings.ToLower(strings.TrimSpace(text))
}

// IsCorrect reports whether the user's choice matches the correct answer.
// Raw string equality is checked first so exact matches never depend on
// normalization; the normalized comparison tolerates option-letter drift
// between what the server labeled correct and what the UI stored.
func IsCorrect(userChoice, correctAnswer string) bool {
	if userChoice == correctAnswer {
		return true
	}
	return Normalize(userChoice) == Normalize(correctAnswer)
}

// Result holds the outcome of grading a full quiz in one pass.
// It is derived data: recompute rather than patch.
type Result struct {
	PerQuestion  []bool
	CorrectCount int
	Total        int
}

// Grade computes correctness for every question against the selected
// answers, applying the correction policy to the answer key first.
// answers must be the same length as quiz.Questions.
func Grade(quiz *content.QuizSet, answers []string, policy CorrectionPolicy) Result {
	questions := quiz.Questions
	if policy != nil {
		questions = policy.Apply(questions, quiz.Objective)
	}

	res := Result{
		PerQuestion: make([]bool, len(questions)),
		Total:       len(questions),
	}
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		if IsCorrect(answers[i], q.CorrectAnswer) {
			res.PerQuestion[i] = true
			res.CorrectCount++
		}
	}
	return res
}

// CorrectedKey returns the answer key after the policy's pass, for display
// alongside graded questions. Returns the original questions when policy
// is nil.
func CorrectedKey(quiz *content.QuizSet, policy CorrectionPolicy) []content.Question {
	if policy == nil {
		return quiz.Questions
	}
	return policy.Apply(quiz.Questions, quiz.Objective)
}
