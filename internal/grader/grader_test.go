package grader

import (
	"testing"

	"github.com/mjard/sciquiz/internal/content"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"B. Mitosis", "mitosis"},
		{"Mitosis", "mitosis"},
		{"b.Mitosis", "mitosis"},
		{"C Meiosis", "meiosis"},
		{"  A.  Osmosis  ", "osmosis"},
		{"Dog", "dog"},         // bare letter without separator is not a prefix
		{"D.", ""},             // prefix with nothing after it
		{"E. Mitosis", "e. mitosis"}, // only A-D are option letters
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsCorrect(t *testing.T) {
	tests := []struct {
		user    string
		correct string
		want    bool
	}{
		{"Mitosis", "B. Mitosis", true},
		{"B. Mitosis", "Mitosis", true},
		{"A. X", "B. X", true}, // normalized match despite prefix drift
		{"A. X", "A. Y", false},
		{"mitosis", "MITOSIS", true},
		{"A. X", "A. X", true}, // raw equality short-circuits
		{"", "", true},
		{"X", "Y", false},
	}

	for _, tt := range tests {
		if got := IsCorrect(tt.user, tt.correct); got != tt.want {
			t.Errorf("IsCorrect(%q, %q) = %v, want %v", tt.user, tt.correct, got, tt.want)
		}
	}
}

func pcrQuiz() *content.QuizSet {
	return &content.QuizSet{
		Objective:  "Describe the main steps of PCR",
		Difficulty: content.DifficultyMedium,
		Questions: []content.Question{
			{
				Text: "What is the main purpose of PCR?",
				Options: []string{
					"A. To cut DNA at specific sites",
					"B. To amplify specific DNA regions",
					"C. To stain DNA for imaging",
					"D. To translate DNA into protein",
				},
				// The server mislabels this one.
				CorrectAnswer: "A. To cut DNA at specific sites",
			},
			{
				Text: "Roughly how long is one PCR cycle?",
				Options: []string{
					"A. A few minutes",
					"B. Several hours",
				},
				CorrectAnswer: "A. A few minutes",
			},
		},
	}
}

func TestStaticCorrections_OverwritesKnownBadAnswer(t *testing.T) {
	quiz := pcrQuiz()
	fixed := KnownServerCorrections().Apply(quiz.Questions, quiz.Objective)

	if fixed[0].CorrectAnswer != "B. To amplify specific DNA regions" {
		t.Errorf("CorrectAnswer = %q, want the amplification option", fixed[0].CorrectAnswer)
	}
	if fixed[1].CorrectAnswer != "A. A few minutes" {
		t.Errorf("unrelated question was touched: %q", fixed[1].CorrectAnswer)
	}
	// Input must stay untouched.
	if quiz.Questions[0].CorrectAnswer != "A. To cut DNA at specific sites" {
		t.Error("Apply mutated its input")
	}
}

func TestStaticCorrections_MarkerGatesTable(t *testing.T) {
	quiz := pcrQuiz()
	quiz.Objective = "Explain osmosis"

	fixed := KnownServerCorrections().Apply(quiz.Questions, quiz.Objective)
	if fixed[0].CorrectAnswer != "A. To cut DNA at specific sites" {
		t.Error("correction applied without the objective marker")
	}
}

func TestStaticCorrections_CaseInsensitiveMarker(t *testing.T) {
	quiz := pcrQuiz()
	quiz.Objective = "Describe The Main Steps Of pCr"

	fixed := KnownServerCorrections().Apply(quiz.Questions, quiz.Objective)
	if fixed[0].CorrectAnswer != "B. To amplify specific DNA regions" {
		t.Error("marker match should be case-insensitive")
	}
}

func TestGrade_RecomputesAgainstCorrectedKey(t *testing.T) {
	quiz := pcrQuiz()
	answers := []string{
		"B. To amplify specific DNA regions",
		"B. Several hours",
	}

	res := Grade(quiz, answers, KnownServerCorrections())
	if res.Total != 2 {
		t.Fatalf("Total = %d, want 2", res.Total)
	}
	if !res.PerQuestion[0] {
		t.Error("question 0 should grade correct against the corrected key")
	}
	if res.PerQuestion[1] {
		t.Error("question 1 should grade incorrect")
	}
	if res.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1", res.CorrectCount)
	}
}

func TestGrade_NoPolicy(t *testing.T) {
	quiz := pcrQuiz()
	answers := []string{
		"B. To amplify specific DNA regions",
		"A few minutes", // prefix drift, still correct
	}

	res := Grade(quiz, answers, NoCorrections{})
	if res.PerQuestion[0] {
		t.Error("without corrections the mislabeled key stays wrong")
	}
	if !res.PerQuestion[1] {
		t.Error("normalized match should grade correct")
	}
	if res.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1", res.CorrectCount)
	}
}
