// Package suggest carries the static suggested-objective lists shown on
// the home screen. The active category doubles as the best-effort subject
// hint when a finished attempt is classified.
package suggest

// Category groups suggested learning objectives under a subject.
type Category struct {
	// Subject matches the progress package's subject names.
	Subject string

	// Label is the display name.
	Label string

	Objectives []string
}

// Categories returns the suggestion lists in display order.
func Categories() []Category {
	return []Category{
		{
			Subject: "biology",
			Label:   "Biology",
			Objectives: []string{
				"Describe the main steps of PCR",
				"Explain the phases of mitosis",
				"How does DNA replication work?",
				"Describe osmosis across a cell membrane",
			},
		},
		{
			Subject: "chemistry",
			Label:   "Chemistry",
			Objectives: []string{
				"Balance a simple chemical reaction",
				"Explain the difference between acids and bases",
				"Describe the structure of an atom",
			},
		},
		{
			Subject: "physics",
			Label:   "Physics",
			Objectives: []string{
				"Explain Newton's three laws of motion",
				"Describe the conservation of energy",
				"How do electric circuits work?",
			},
		},
		{
			Subject: "medicine",
			Label:   "Medicine",
			Objectives: []string{
				"How does the heart pump blood?",
				"Describe the respiratory system",
				"Explain how nerve signals travel",
			},
		},
	}
}

// SubjectFor returns the subject of the category containing the objective,
// or "" when the objective is free-typed.
func SubjectFor(objective string) string {
	for _, cat := range Categories() {
		for _, o := range cat.Objectives {
			if o == objective {
				return cat.Subject
			}
		}
	}
	return ""
}
