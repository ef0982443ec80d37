// Package story renders a structured summary as a short narrative.
// It invents nothing: the title comes from the document theme and the
// body is the key facts retold in storytelling order.
package story

import (
	"fmt"
	"strings"

	"github.com/lexkit/lexkit/rewrite"
	"github.com/lexkit/lexkit/summarize"
)

// Story is the narrative rendition of a document.
type Story struct {
	Title   string `json:"title"`
	Opening string `json:"opening"`
	Body    string `json:"body"`
	Moral   string `json:"moral"`
}

// Teller turns structured summaries into stories.
type Teller struct {
	opening string
	moral   string
}

// TellerOption configures a Teller.
type TellerOption func(*Teller)

// WithOpening overrides the opening line template. The document theme
// is substituted for %s.
func WithOpening(template string) TellerOption {
	return func(t *Teller) { t.opening = template }
}

// WithMoral overrides the closing line.
func WithMoral(moral string) TellerOption {
	return func(t *Teller) { t.moral = moral }
}

// NewTeller returns a Teller with default framing lines.
func NewTeller(opts ...TellerOption) *Teller {
	t := &Teller{
		opening: "This is the story of %s.",
		moral:   "And that is what the document had to tell.",
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tell builds the narrative from a structured summary. An empty
// summary yields an empty story rather than an error.
func (t *Teller) Tell(summary summarize.StructuredSummary) Story {
	if len(summary.KeyFacts) == 0 && summary.CoreSummary == "" {
		return Story{}
	}

	theme := summary.MainTheme
	if theme == "" {
		theme = "General Document"
	}

	body := rewrite.Join(summary.KeyFacts, rewrite.StyleStorytelling)
	if body == "" {
		body = summary.CoreSummary
	}

	return Story{
		Title:   "The Story of " + theme,
		Opening: fmt.Sprintf(t.opening, strings.ToLower(theme)),
		Body:    body,
		Moral:   t.moral,
	}
}
