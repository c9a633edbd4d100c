package progress

import "strings"

// Subject names used for the topics-by-subject distribution.
const (
	SubjectChemistry = "chemistry"
	SubjectBiology   = "biology"
	SubjectPhysics   = "physics"
	SubjectMedicine  = "medicine"
	SubjectOther     = "other"
)

// subjectKeywords mirrors the categorization the stats endpoint applies,
// so local and remote summaries agree. First match wins, in this order.
var subjectKeywords = []struct {
	subject  string
	keywords []string
}{
	{SubjectChemistry, []string{"chemical", "reaction", "atom", "molecule", "acid", "base"}},
	{SubjectBiology, []string{"cell", "dna", "protein", "mitosis", "organism", "pcr"}},
	{SubjectPhysics, []string{"force", "motion", "energy", "newton", "electric", "magnetic"}},
	{SubjectMedicine, []string{"heart", "nerve", "brain", "respiratory", "disease", "organ"}},
}

// Classify assigns a best-effort subject to a topic by keyword matching.
// Classification is inherently fuzzy; unknown topics land in "other".
func Classify(topic string) string {
	topic = strings.ToLower(topic)
	for _, group := range subjectKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(topic, kw) {
				return group.subject
			}
		}
	}
	return SubjectOther
}
