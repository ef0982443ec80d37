// Package quiz synthesizes comprehension questions from repaired text.
// Questions are derived strictly from ranked and rewritten sentences;
// every multiple-choice question carries exactly four well-formed,
// de-duplicated options including the correct answer.
package quiz

// Type identifies the question format.
type Type string

const (
	TypeMCQ       Type = "mcq"
	TypeFillBlank Type = "fill_blank"
	TypeTrueFalse Type = "true_false"
)

// Difficulty labels a question or an inferred reader level.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// ParseDifficulty maps a level name to its Difficulty. Unknown names
// fall back to Intermediate.
func ParseDifficulty(name string) Difficulty {
	switch Difficulty(name) {
	case Beginner, Intermediate, Advanced:
		return Difficulty(name)
	default:
		return Intermediate
	}
}

// Question is a single quiz item. Options is populated for mcq and
// true_false types; fill_blank questions match on Answer alone.
type Question struct {
	ID          int        `json:"id"`
	Type        Type       `json:"type"`
	Question    string     `json:"question"`
	Options     []string   `json:"options,omitempty"`
	Answer      string     `json:"answer"`
	Explanation string     `json:"explanation,omitempty"`
	Difficulty  Difficulty `json:"difficulty"`
	Topic       string     `json:"topic,omitempty"`

	// quality orders questions before truncation; it is never exposed.
	quality float64
}
