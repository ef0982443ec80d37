// Package textrepair converts raw, noisy OCR output into text clean enough
// for sentence extraction. Repair is a fixed sequence of passes; later
// passes assume earlier ones ran. Repair never fails: unrepairable input
// degrades to an empty string rather than an error.
package textrepair

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Config carries the knowledge tables the repair passes consume. All fields
// are fixed at construction so repairers can be shared read-only and tests
// can substitute fixtures.
type Config struct {
	Encoding   []Rule
	Artifacts  []Rule
	LineBreaks []Rule
	Confusions []Rule
	Spacing    []Rule

	ShortCapsWhitelist []string
	VerbMarkers        []string

	MinLineWords       int
	MinLineAlphaRatio  float64
	MaxNoiseTokenRatio float64
	MaxFragmentWords   int
}

// DefaultConfig returns the standard English repair configuration.
func DefaultConfig() Config {
	return Config{
		Encoding:           DefaultEncodingRules(),
		Artifacts:          DefaultArtifactRules(),
		LineBreaks:         DefaultLineBreakRules(),
		Confusions:         DefaultConfusionRules(),
		Spacing:            DefaultSpacingRules(),
		ShortCapsWhitelist: DefaultShortCapsWhitelist(),
		VerbMarkers:        DefaultVerbMarkers(),
		MinLineWords:       3,
		MinLineAlphaRatio:  0.4,
		MaxNoiseTokenRatio: 0.4,
		MaxFragmentWords:   5,
	}
}

// Repairer applies the repair passes. Instances are stateless after
// construction and safe for concurrent use.
type Repairer struct {
	cfg       Config
	shortCaps map[string]struct{}
	verbs     map[string]struct{}
}

// Option configures a Repairer.
type Option func(*Config)

// WithConfig replaces the entire configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

// New constructs a Repairer with the default configuration, then applies
// options.
func New(opts ...Option) *Repairer {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	r := &Repairer{
		cfg:       cfg,
		shortCaps: make(map[string]struct{}, len(cfg.ShortCapsWhitelist)),
		verbs:     make(map[string]struct{}, len(cfg.VerbMarkers)),
	}
	for _, w := range cfg.ShortCapsWhitelist {
		r.shortCaps[w] = struct{}{}
	}
	for _, v := range cfg.VerbMarkers {
		r.verbs[strings.ToLower(v)] = struct{}{}
	}
	return r
}

// Repair runs all passes in order and returns the cleaned text. Total
// function: any string in, a (possibly empty) string out.
func (r *Repairer) Repair(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	text = r.normalizeEncoding(text)
	text = r.removeArtifacts(text)
	text = applyRules(text, r.cfg.LineBreaks)
	text = applyRules(text, r.cfg.Confusions)
	text = applyRules(text, r.cfg.Spacing)
	text = r.reconstructSentences(text)
	text = r.repairCapitalization(text)
	text = r.filterQuality(text)
	return strings.TrimSpace(text)
}

func (r *Repairer) normalizeEncoding(text string) string {
	text = norm.NFKC.String(text)
	return applyRules(text, r.cfg.Encoding)
}

var shortCapsPattern = regexp.MustCompile(`\b[A-Z]{2,3}\b`)

func (r *Repairer) removeArtifacts(text string) string {
	text = applyRules(text, r.cfg.Artifacts)
	return shortCapsPattern.ReplaceAllStringFunc(text, func(tok string) string {
		if _, ok := r.shortCaps[tok]; ok {
			return tok
		}
		return ""
	})
}

// reconstructSentences merges short verb-less line fragments into the
// following line within each paragraph, undoing bogus splits the recognizer
// introduced at layout boundaries.
func (r *Repairer) reconstructSentences(text string) string {
	paragraphs := strings.Split(text, "\n\n")
	for pi, para := range paragraphs {
		lines := strings.Split(para, "\n")
		var merged []string
		for i := 0; i < len(lines); i++ {
			line := strings.TrimSpace(lines[i])
			if line == "" {
				continue
			}
			for i+1 < len(lines) && r.isFragment(line) {
				next := strings.TrimSpace(lines[i+1])
				i++
				if next == "" {
					break
				}
				line = line + " " + next
			}
			merged = append(merged, line)
		}
		paragraphs[pi] = strings.Join(merged, "\n")
	}
	return strings.Join(paragraphs, "\n\n")
}

func (r *Repairer) isFragment(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 || len(words) > r.cfg.MaxFragmentWords {
		return false
	}
	if hasTerminalPunct(line) {
		return false
	}
	// noise lines are left for the quality filter, not merged into prose
	if !r.lineIsClean(line) {
		return false
	}
	for _, w := range words {
		clean := strings.ToLower(strings.Trim(w, `.,;:!?"'()`))
		if _, ok := r.verbs[clean]; ok {
			return false
		}
	}
	return true
}

func hasTerminalPunct(line string) bool {
	line = strings.TrimRight(line, ` "')`)
	return strings.HasSuffix(line, ".") || strings.HasSuffix(line, "!") || strings.HasSuffix(line, "?")
}

func (r *Repairer) repairCapitalization(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = capitalizeFirstLetter(line)
	}
	return strings.Join(lines, "\n")
}

func capitalizeFirstLetter(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsLetter(r) {
			runes[i] = unicode.ToUpper(r)
			return string(runes)
		}
		if !unicode.IsSpace(r) && r != '"' && r != '\'' && r != '(' {
			break
		}
	}
	return s
}

var blankRuns = regexp.MustCompile(`\n{4,}`)

// filterQuality drops lines that remain too short or too noisy to be prose
// after repair, then collapses excessive blank runs.
func (r *Repairer) filterQuality(text string) string {
	lines := strings.Split(text, "\n")
	var kept []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			kept = append(kept, "")
			continue
		}
		if !r.lineIsClean(trimmed) {
			continue
		}
		kept = append(kept, trimmed)
	}
	return blankRuns.ReplaceAllString(strings.Join(kept, "\n"), "\n\n\n")
}

func (r *Repairer) lineIsClean(line string) bool {
	words := strings.Fields(line)
	if len(words) < r.cfg.MinLineWords {
		return false
	}
	if alphaRatio(line) < r.cfg.MinLineAlphaRatio {
		return false
	}
	noise := 0
	for _, w := range words {
		if len(w) == 1 && !isVowelOrI(rune(w[0])) {
			noise++
		}
	}
	return float64(noise)/float64(len(words)) <= r.cfg.MaxNoiseTokenRatio
}

func isVowelOrI(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func alphaRatio(s string) float64 {
	letters, total := 0, 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(letters) / float64(total)
}
