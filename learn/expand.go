package learn

import (
	"fmt"
	"regexp"
	"strings"
)

// Level is the reader level an expansion is targeted at.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// ParseLevel maps a level name to a Level, defaulting to intermediate.
func ParseLevel(name string) Level {
	switch Level(strings.ToLower(strings.TrimSpace(name))) {
	case LevelBeginner:
		return LevelBeginner
	case LevelAdvanced:
		return LevelAdvanced
	default:
		return LevelIntermediate
	}
}

// GlossaryEntry explains one term at the reader's level.
type GlossaryEntry struct {
	Term        string `json:"term"`
	Type        string `json:"type"`
	FullForm    string `json:"full_form,omitempty"`
	Explanation string `json:"explanation"`
	Context     string `json:"context,omitempty"`
}

// PreReadingItem is a concept worth understanding before reading.
type PreReadingItem struct {
	Term        string `json:"term"`
	WhyNeeded   string `json:"why_needed"`
	Explanation string `json:"explanation"`
}

// Expansion is a document enriched for a particular reader level.
type Expansion struct {
	Annotated  string           `json:"annotated_text"`
	Glossary   []GlossaryEntry  `json:"glossary"`
	PreReading []PreReadingItem `json:"pre_reading"`
	Simplified string           `json:"simplified_summary"`
	Level      Level            `json:"level"`
	TermCount  int              `json:"total_terms_explained"`
}

const (
	maxGlossary    = 30
	maxPreReading  = 8
	simplifiedCap  = 1500
	annotationMark = "†" // dagger after explained terms
)

// simplifications replace hard terms with plain language for beginner
// readers.
var simplifications = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\bpreprocessing\b`), "cleaning up the data"},
	{regexp.MustCompile(`(?i)\bbinarization\b`), "converting to black and white"},
	{regexp.MustCompile(`(?i)\bsegmentation\b`), "splitting into parts"},
	{regexp.MustCompile(`(?i)\btokenization\b`), "breaking into words"},
	{regexp.MustCompile(`(?i)\bnormalization\b`), "standardizing"},
	{regexp.MustCompile(`(?i)\barchitecture\b`), "design/structure"},
	{regexp.MustCompile(`(?i)\bpipeline\b`), "series of steps"},
	{regexp.MustCompile(`(?i)\balgorithm\b`), "step-by-step process"},
	{regexp.MustCompile(`(?i)\bconfidence score\b`), "how sure the model is"},
	{regexp.MustCompile(`(?i)\bfine-tuning\b`), "further training"},
	{regexp.MustCompile(`(?i)\bparameter\b`), "setting/option"},
	{regexp.MustCompile(`(?i)\bthreshold\b`), "cutoff point"},
}

var nonLetter = regexp.MustCompile(`[^a-zA-Z]`)

// Expander enriches text with explanations drawn from the built-in
// term knowledge base.
type Expander struct{}

// NewExpander returns a ready Expander.
func NewExpander() *Expander { return &Expander{} }

// Expand builds the glossary, annotated text, pre-reading list, and
// (for beginners) a simplified rendition of text.
func (e *Expander) Expand(text string, level Level, concepts Concepts) Expansion {
	glossary := e.buildGlossary(concepts, level)
	return Expansion{
		Annotated:  e.annotate(text, glossary, level),
		Glossary:   glossary,
		PreReading: e.preReading(concepts, level),
		Simplified: e.simplify(text, level),
		Level:      level,
		TermCount:  len(glossary),
	}
}

func (e *Expander) buildGlossary(concepts Concepts, level Level) []GlossaryEntry {
	seen := make(map[string]struct{})
	var glossary []GlossaryEntry

	for _, item := range concepts.Acronyms {
		if _, dup := seen[item.Term]; dup {
			continue
		}
		seen[item.Term] = struct{}{}
		entry := GlossaryEntry{Term: item.Term, Type: "acronym", Context: item.Context}
		if kb, ok := LookupTerm(item.Term); ok {
			entry.FullForm = kb.Full
			entry.Explanation = kb.At(level)
		} else {
			entry.FullForm = fmt.Sprintf("[%s] acronym found in document", item.Term)
			entry.Explanation = "Technical term used in this document."
		}
		glossary = append(glossary, entry)
	}

	for _, item := range concepts.TechnicalTerms {
		key := strings.ToLower(item.Term)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kb, known := LookupTerm(item.Term)
		if !known && item.Difficulty < 3 {
			continue
		}
		entry := GlossaryEntry{Term: item.Term, Type: "technical"}
		if known {
			entry.Explanation = kb.At(level)
		} else {
			entry.Explanation = genericExplanation(item.Term, level)
		}
		glossary = append(glossary, entry)
	}

	if len(glossary) > maxGlossary {
		glossary = glossary[:maxGlossary]
	}
	return glossary
}

func genericExplanation(word string, level Level) string {
	switch level {
	case LevelBeginner:
		return fmt.Sprintf("%q is a technical term used in this field. Look it up if unsure.", word)
	case LevelAdvanced:
		return fmt.Sprintf("Domain-specific term: %s.", word)
	default:
		return fmt.Sprintf("Technical term: %q. See domain references for a precise definition.", word)
	}
}

// annotate appends a dagger to every word the glossary explains.
// Advanced readers get the text untouched.
func (e *Expander) annotate(text string, glossary []GlossaryEntry, level Level) string {
	if level == LevelAdvanced {
		return text
	}
	known := make(map[string]struct{}, len(glossary))
	for _, g := range glossary {
		known[strings.ToLower(g.Term)] = struct{}{}
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		words := strings.Fields(line)
		for j, word := range words {
			clean := strings.ToLower(nonLetter.ReplaceAllString(word, ""))
			if _, ok := known[clean]; ok {
				words[j] = word + annotationMark
			}
		}
		lines[i] = strings.Join(words, " ")
	}
	return strings.Join(lines, "\n")
}

// preReading lists concepts to understand before reading: acronyms for
// beginners, technical terms for intermediate readers, nothing for
// advanced readers.
func (e *Expander) preReading(concepts Concepts, level Level) []PreReadingItem {
	var pre []PreReadingItem
	switch level {
	case LevelBeginner:
		for _, item := range concepts.Acronyms {
			if len(pre) == maxPreReading {
				break
			}
			kb, ok := LookupTerm(item.Term)
			if !ok {
				continue
			}
			pre = append(pre, PreReadingItem{
				Term:        item.Term,
				WhyNeeded:   "This term appears early in the document.",
				Explanation: kb.At(LevelBeginner),
			})
		}
	case LevelIntermediate:
		for _, item := range concepts.TechnicalTerms {
			if len(pre) == maxPreReading {
				break
			}
			kb, ok := LookupTerm(item.Term)
			if !ok {
				continue
			}
			pre = append(pre, PreReadingItem{
				Term:        item.Term,
				WhyNeeded:   "Core concept used throughout the document.",
				Explanation: kb.At(LevelIntermediate),
			})
		}
	}
	return pre
}

// simplify produces a plain-language rendition for beginners, capped
// for display.
func (e *Expander) simplify(text string, level Level) string {
	if level != LevelBeginner {
		return ""
	}
	for _, s := range simplifications {
		text = s.pattern.ReplaceAllString(text, s.replacement)
	}
	if len(text) > simplifiedCap {
		text = text[:simplifiedCap]
	}
	return text
}
