package quiz

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

const (
	maxComprehension    = 3
	maxFillBlank        = 5
	maxTrueFalse        = 4
	maxKeywordContext   = 4
	minFactWords        = 7
	minClauseWords      = 3
	causalDistractWidth = 120
	minBlankScore       = 2
)

// comprehensionQuestions asks the reader to pick the genuinely central
// statement out of plausible peripheral ones.
func (g *Generator) comprehensionQuestions(m material) []Question {
	factSet := make(map[string]struct{}, len(m.facts))
	for _, f := range m.facts {
		factSet[f] = struct{}{}
	}

	var out []Question
	for _, fact := range m.facts {
		if len(out) == maxComprehension {
			break
		}
		words := len(strings.Fields(fact))
		if words < minFactWords {
			continue
		}
		distractors := closestByWordCount(m.sentences, factSet, words, 3)
		q := Question{
			Type:        TypeMCQ,
			Question:    "Which of the following statements is a key point from the text?",
			Options:     append([]string{fact}, distractors...),
			Answer:      fact,
			Explanation: "This statement ranked as one of the most central points of the document.",
			Difficulty:  m.level,
			Topic:       m.theme,
			quality:     0.9 + 0.01*float64(words),
		}
		g.normalizeMCQ(&q)
		out = append(out, q)
	}
	return out
}

// closestByWordCount picks up to n sentences outside the key-fact set
// whose word counts are nearest to target.
func closestByWordCount(sentences []string, exclude map[string]struct{}, target, n int) []string {
	type cand struct {
		text string
		dist int
	}
	var cands []cand
	for _, s := range sentences {
		if _, key := exclude[s]; key {
			continue
		}
		d := len(strings.Fields(s)) - target
		if d < 0 {
			d = -d
		}
		cands = append(cands, cand{s, d})
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })
	if len(cands) > n {
		cands = cands[:n]
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.text
	}
	return out
}

// actionVerbs are narrative verbs worth blanking in a fill-in question.
var actionVerbs = map[string]struct{}{
	"found": {}, "built": {}, "carried": {}, "discovered": {}, "decided": {},
	"promised": {}, "refused": {}, "walked": {}, "worked": {}, "won": {},
	"lost": {}, "began": {}, "ended": {}, "opened": {}, "closed": {},
	"agreed": {}, "returned": {}, "bought": {}, "sold": {}, "wrote": {},
}

func (g *Generator) fillBlankQuestions(m material) []Question {
	var out []Question
	for _, fact := range m.facts {
		if len(out) == maxFillBlank {
			break
		}
		words := strings.Fields(fact)
		bestIdx, bestScore := -1, 0
		for i, w := range words {
			score := blankScore(w, i)
			if score > bestScore {
				bestIdx, bestScore = i, score
			}
		}
		if bestIdx < 0 || bestScore < minBlankScore {
			continue
		}
		answer := strings.Trim(words[bestIdx], ".,;:!?\"'")
		blanked := make([]string, len(words))
		copy(blanked, words)
		blanked[bestIdx] = strings.Replace(words[bestIdx], answer, "_____", 1)

		difficulty := m.level
		if bestScore <= 3 {
			difficulty = Beginner
		}
		out = append(out, Question{
			Type:        TypeFillBlank,
			Question:    "Fill in the blank: " + strings.Join(blanked, " "),
			Answer:      answer,
			Explanation: fmt.Sprintf("The missing word is %q.", answer),
			Difficulty:  difficulty,
			Topic:       m.theme,
			quality:     0.7 + 0.05*float64(bestScore),
		})
	}
	return out
}

// blankScore rates how quiz-worthy a word is when blanked out.
func blankScore(word string, position int) int {
	w := strings.Trim(word, ".,;:!?\"'")
	if w == "" {
		return 0
	}
	score := 0
	r := []rune(w)
	if position > 0 && unicode.IsUpper(r[0]) {
		score += 4
	}
	if _, ok := actionVerbs[strings.ToLower(w)]; ok {
		score += 3
	}
	if len(r) >= 5 {
		score += 2
	}
	if unicode.IsDigit(r[0]) {
		score += 2
	}
	return score
}

// antonyms drives the targeted mutation behind False statements. Both
// directions of every pair are listed.
var antonyms = map[string]string{
	"before": "after", "after": "before",
	"found": "lost", "lost": "found",
	"agreed": "refused", "refused": "agreed",
	"increased": "decreased", "decreased": "increased",
	"more": "less", "less": "more",
	"first": "last", "last": "first",
	"began": "ended", "ended": "began",
	"opened": "closed", "closed": "opened",
	"early": "late", "late": "early",
	"won": "lost",
	"always": "never", "never": "always",
	"everyone": "nobody", "nobody": "everyone",
	"best": "worst", "worst": "best",
	"full": "empty", "empty": "full",
}

func (g *Generator) trueFalseQuestions(m material) []Question {
	var out []Question
	for i, fact := range m.facts {
		if i == maxTrueFalse {
			break
		}
		out = append(out, Question{
			Type:        TypeTrueFalse,
			Question:    "True or False: " + fact,
			Options:     []string{"True", "False"},
			Answer:      "True",
			Explanation: "The statement appears in the text as written.",
			Difficulty:  m.level,
			Topic:       m.theme,
			quality:     0.6,
		})
		if mutated, ok := g.mutateFact(fact, m.facts); ok {
			out = append(out, Question{
				Type:        TypeTrueFalse,
				Question:    "True or False: " + mutated,
				Options:     []string{"True", "False"},
				Answer:      "False",
				Explanation: "The statement was altered; the text says: " + fact,
				Difficulty:  m.level,
				Topic:       m.theme,
				quality:     0.65,
			})
		}
	}
	return out
}

// mutateFact flips one word via the antonym table, falling back to
// swapping a proper noun for one found in another fact. ok is false
// when no substitution changed the text.
func (g *Generator) mutateFact(fact string, facts []string) (string, bool) {
	words := strings.Fields(fact)
	for i, w := range words {
		core := strings.Trim(strings.ToLower(w), ".,;:!?\"'")
		opposite, ok := antonyms[core]
		if !ok {
			continue
		}
		if unicode.IsUpper([]rune(strings.Trim(w, "\"'"))[0]) {
			opposite = strings.ToUpper(opposite[:1]) + opposite[1:]
		}
		mutated := make([]string, len(words))
		copy(mutated, words)
		mutated[i] = strings.Replace(w, strings.Trim(w, ".,;:!?\"'"), opposite, 1)
		return strings.Join(mutated, " "), true
	}

	// character swap: replace a proper noun with one from another fact
	own := properNouns(fact)
	if len(own) == 0 {
		return fact, false
	}
	for _, other := range facts {
		if other == fact {
			continue
		}
		for _, noun := range properNouns(other) {
			if noun == own[0] {
				continue
			}
			mutated := strings.Replace(fact, own[0], noun, 1)
			if mutated != fact {
				return mutated, true
			}
		}
	}
	return fact, false
}

func properNouns(sentence string) []string {
	var nouns []string
	for i, w := range strings.Fields(sentence) {
		if i == 0 {
			continue
		}
		w = strings.Trim(w, ".,;:!?\"'")
		r := []rune(w)
		if len(r) > 1 && unicode.IsUpper(r[0]) && unicode.IsLower(r[1]) {
			nouns = append(nouns, w)
		}
	}
	return nouns
}

// causalPatterns split a sentence into cause and effect clauses.
// causeFirst reports whether the text before the connective is the
// cause.
var causalPatterns = []struct {
	re         *regexp.Regexp
	causeFirst bool
}{
	{regexp.MustCompile(`(?i)^(.+?)\s+because\s+(.+)$`), false},
	{regexp.MustCompile(`(?i)^(.+?)[,;]?\s+therefore\s+(.+)$`), true},
	{regexp.MustCompile(`(?i)^(.+?)[,;]?\s+thus\s+(.+)$`), true},
	{regexp.MustCompile(`(?i)^(.+?)[,;]?\s+as a result[,;]?\s+(.+)$`), true},
	{regexp.MustCompile(`(?i)^(.+?)\s+led to\s+(.+)$`), true},
	{regexp.MustCompile(`(?i)^(.+?)\s+so that\s+(.+)$`), true},
}

func (g *Generator) causalQuestions(m material) []Question {
	var out []Question
	for _, sentence := range m.sentences {
		cause, effect, ok := splitCausal(sentence)
		if !ok {
			continue
		}
		question := "According to the text, what is the result of: " + cause + "?"
		answer := effect
		if strings.Contains(strings.ToLower(sentence), "because") {
			question = "According to the text, what caused: " + effect + "?"
			answer = cause
		}
		distractors := causalDistractors(m.sentences, sentence, 3)
		q := Question{
			Type:        TypeMCQ,
			Question:    question,
			Options:     append([]string{answer}, distractors...),
			Answer:      answer,
			Explanation: "The text links these directly: " + sentence,
			Difficulty:  m.level,
			Topic:       m.theme,
			quality:     0.8,
		}
		g.normalizeMCQ(&q)
		out = append(out, q)
	}
	return out
}

func splitCausal(sentence string) (cause, effect string, ok bool) {
	for _, p := range causalPatterns {
		match := p.re.FindStringSubmatch(sentence)
		if match == nil {
			continue
		}
		first := strings.TrimSpace(match[1])
		second := strings.Trim(strings.TrimSpace(match[2]), ".")
		if len(strings.Fields(first)) < minClauseWords || len(strings.Fields(second)) < minClauseWords {
			continue
		}
		if p.causeFirst {
			return first, second, true
		}
		return second, first, true
	}
	return "", "", false
}

func causalDistractors(sentences []string, source string, n int) []string {
	var out []string
	for _, s := range sentences {
		if s == source {
			continue
		}
		if r := []rune(s); len(r) > causalDistractWidth {
			s = string(r[:causalDistractWidth])
		}
		out = append(out, s)
		if len(out) == n {
			break
		}
	}
	return out
}

func (g *Generator) keywordQuestions(m material) []Question {
	var out []Question
	for _, kw := range m.keywords {
		if len(out) == maxKeywordContext {
			break
		}
		correct := ""
		var others []string
		for _, fact := range m.facts {
			if containsWord(fact, kw) {
				if correct == "" {
					correct = fact
				}
			} else if len(others) < 3 {
				others = append(others, fact)
			}
		}
		if correct == "" {
			continue
		}
		q := Question{
			Type:        TypeMCQ,
			Question:    fmt.Sprintf("Which statement uses the term %q in its context from the text?", kw),
			Options:     append([]string{correct}, others...),
			Answer:      correct,
			Explanation: fmt.Sprintf("Only this statement contains %q.", kw),
			Difficulty:  m.level,
			Topic:       m.theme,
			quality:     0.75,
		}
		g.normalizeMCQ(&q)
		out = append(out, q)
	}
	return out
}

func containsWord(sentence, word string) bool {
	word = strings.ToLower(word)
	for _, w := range strings.Fields(strings.ToLower(sentence)) {
		if strings.Trim(w, ".,;:!?\"'") == word {
			return true
		}
	}
	return false
}

// mainIdeaQuestion tests whether the overall synthesized theme can be
// told apart from a single supporting detail.
func (g *Generator) mainIdeaQuestion(m material) []Question {
	if len(m.facts) < 3 || m.core == "" {
		return nil
	}
	q := Question{
		Type:        TypeMCQ,
		Question:    "Which option best captures the main idea of the text?",
		Options:     append([]string{m.core}, m.facts[:3]...),
		Answer:      m.core,
		Explanation: "The other options are individual details, not the overall idea.",
		Difficulty:  m.level,
		Topic:       m.theme,
		quality:     0.95,
	}
	g.normalizeMCQ(&q)
	return []Question{q}
}
