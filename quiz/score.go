package quiz

import (
	"fmt"
	"sort"
	"strings"
)

// Answer is a reader's response to one question.
type Answer struct {
	QuestionID int    `json:"question_id"`
	Response   string `json:"response"`
}

// Detail records how a single question was judged.
type Detail struct {
	QuestionID int    `json:"question_id"`
	Type       Type   `json:"type"`
	Correct    bool   `json:"correct"`
	Expected   string `json:"expected"`
	Given      string `json:"given"`
}

// Assessment summarizes a scored quiz attempt.
type Assessment struct {
	OverallScore    float64            `json:"overall_score"`
	Correct         int                `json:"correct"`
	Total           int                `json:"total"`
	InferredLevel   Difficulty         `json:"inferred_level"`
	SkillMeters     map[string]float64 `json:"skill_meters"`
	WeakAreas       []string           `json:"weak_areas"`
	StrongAreas     []string           `json:"strong_areas"`
	Details         []Detail           `json:"details"`
	Recommendations []string           `json:"recommendations"`
}

const (
	advancedThreshold     = 75.0
	intermediateThreshold = 45.0
	weakSkillThreshold    = 50.0
	strongSkillThreshold  = 80.0
)

var typeSkills = map[Type]string{
	TypeMCQ:       "comprehension",
	TypeFillBlank: "recall",
	TypeTrueFalse: "fact-checking",
}

var skillAdvice = map[string]string{
	"comprehension": "Re-read the summary before answering and look for the statement that covers the most ground.",
	"recall":        "Note names, numbers, and key verbs while reading; these are what fill-in questions target.",
	"fact-checking": "Compare each statement word by word against the text before judging it true or false.",
}

// Score judges answers against questions with flexible matching.
// Answers are matched by question ID; missing answers count as wrong.
func Score(answers []Answer, questions []Question) Assessment {
	given := make(map[int]string, len(answers))
	for _, a := range answers {
		given[a.QuestionID] = a.Response
	}

	a := Assessment{
		Total:         len(questions),
		SkillMeters:   map[string]float64{},
		InferredLevel: Beginner,
	}
	skillTotal := map[string]int{}
	skillCorrect := map[string]int{}

	for _, q := range questions {
		response := given[q.ID]
		correct := matches(response, q.Answer)
		if correct {
			a.Correct++
		}
		skill := typeSkills[q.Type]
		skillTotal[skill]++
		if correct {
			skillCorrect[skill]++
		}
		a.Details = append(a.Details, Detail{
			QuestionID: q.ID,
			Type:       q.Type,
			Correct:    correct,
			Expected:   q.Answer,
			Given:      response,
		})
	}

	if a.Total > 0 {
		a.OverallScore = 100 * float64(a.Correct) / float64(a.Total)
	}
	switch {
	case a.OverallScore >= advancedThreshold:
		a.InferredLevel = Advanced
	case a.OverallScore >= intermediateThreshold:
		a.InferredLevel = Intermediate
	}

	skills := make([]string, 0, len(skillTotal))
	for skill := range skillTotal {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	for _, skill := range skills {
		pct := 100 * float64(skillCorrect[skill]) / float64(skillTotal[skill])
		a.SkillMeters[skill] = pct
		switch {
		case pct < weakSkillThreshold:
			a.WeakAreas = append(a.WeakAreas, skill)
			if advice, ok := skillAdvice[skill]; ok {
				a.Recommendations = append(a.Recommendations, advice)
			}
		case pct >= strongSkillThreshold:
			a.StrongAreas = append(a.StrongAreas, skill)
		}
	}
	if len(a.Recommendations) == 0 && a.Total > 0 {
		a.Recommendations = append(a.Recommendations,
			fmt.Sprintf("Strong result across the board; try a quiz at the %s level next.", nextLevel(a.InferredLevel)))
	}
	return a
}

// matches compares a response to the expected answer loosely: exact
// match after normalization, or containment in either direction for
// answers long enough that containment is meaningful.
func matches(response, expected string) bool {
	r := normalizeAnswer(response)
	e := normalizeAnswer(expected)
	if r == "" || e == "" {
		return false
	}
	if r == e {
		return true
	}
	if len(e) >= 4 && strings.Contains(r, e) {
		return true
	}
	if len(r) >= 4 && strings.Contains(e, r) {
		return true
	}
	return false
}

func normalizeAnswer(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.Trim(strings.TrimSpace(s), ".,;:!?\"'"))), " ")
}

func nextLevel(level Difficulty) Difficulty {
	switch level {
	case Beginner:
		return Intermediate
	default:
		return Advanced
	}
}
