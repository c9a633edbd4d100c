package grader

import (
	"strings"

	"github.com/mjard/sciquiz/internal/content"
)

// CorrectionPolicy rewrites a quiz's answer key before grading.
//
// This exists to patch known-bad answer labels coming from the generation
// service. It is a data-quality workaround, not a feature: keep tables
// narrow and remove entries once the upstream defect is fixed.
type CorrectionPolicy interface {
	// Apply returns the questions with any known corrections applied.
	// The input slice is not mutated.
	Apply(questions []content.Question, objective string) []content.Question
}

// NoCorrections is a CorrectionPolicy that changes nothing.
type NoCorrections struct{}

func (NoCorrections) Apply(questions []content.Question, _ string) []content.Question {
	return questions
}

// StaticCorrections fixes specific question/answer pairs the server is
// known to mislabel. When the objective contains the marker (case-
// insensitive) and a question's text contains a table key, the option
// whose normalized text contains the mapped answer substring overwrites
// CorrectAnswer.
//
// Matching is substring-based and case-insensitive on both sides, which
// can over-match on short phrases. That mirrors the observed server
// defect handling; tighten only with regression coverage.
type StaticCorrections struct {
	// Marker gates the whole table to objectives about one topic.
	Marker string

	// Table maps question-text substrings to correct-answer substrings.
	Table map[string]string
}

var _ CorrectionPolicy = (*StaticCorrections)(nil)

// KnownServerCorrections returns the corrections for the recurring PCR
// mis-grading defect.
// TODO: drop the "main purpose" entry once the backend regenerates its
// PCR question bank.
func KnownServerCorrections() *StaticCorrections {
	return &StaticCorrections{
		Marker: "pcr",
		Table: map[string]string{
			"What is the main purpose of PCR?":              "To amplify specific DNA regions",
			"Which enzyme is essential for PCR?":            "Taq polymerase",
			"What happens during the denaturation step":     "DNA strands separate",
		},
	}
}

func (s *StaticCorrections) Apply(questions []content.Question, objective string) []content.Question {
	if s == nil || len(s.Table) == 0 {
		return questions
	}
	if !strings.Contains(strings.ToLower(objective), strings.ToLower(s.Marker)) {
		return questions
	}

	out := make([]content.Question, len(questions))
	copy(out, questions)

	for i := range out {
		text := strings.ToLower(out[i].Text)
		for key, answer := range s.Table {
			if !strings.Contains(text, strings.ToLower(key)) {
				continue
			}
			if opt, ok := findOption(out[i].Options, answer); ok && opt != out[i].CorrectAnswer {
				out[i].CorrectAnswer = opt
			}
		}
	}
	return out
}

// findOption returns the first option whose normalized text contains the
// wanted answer substring.
func findOption(options []string, want string) (string, bool) {
	needle := Normalize(want)
	for _, opt := range options {
		if strings.Contains(Normalize(opt), needle) {
			return opt, true
		}
	}
	return "", false
}
