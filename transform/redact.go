package transform

import (
	"fmt"
	"strings"

	"github.com/lexkit/lexkit/nlp"
)

// RedactedItem records one replacement made during redaction.
type RedactedItem struct {
	Type        string `json:"type"`
	Original    string `json:"original"`
	Replacement string `json:"replacement"`
}

// Redaction is the result of masking sensitive spans in a document.
type Redaction struct {
	Text  string         `json:"redacted_text"`
	Log   []RedactedItem `json:"redaction_log"`
	Count int            `json:"items_redacted"`
}

// DefaultRedactTypes are the entity categories masked when the caller
// does not choose.
var DefaultRedactTypes = []string{nlp.EntityEmail, nlp.EntityPhone, nlp.EntityMoney}

// Redact masks every occurrence of the requested entity types with a
// typed placeholder. A nil types slice means DefaultRedactTypes.
func Redact(text string, types []string) Redaction {
	if types == nil {
		types = DefaultRedactTypes
	}
	out := Redaction{Text: text}
	for _, kind := range types {
		pattern := nlp.EntityPattern(kind)
		if pattern == nil {
			continue
		}
		replacement := fmt.Sprintf("[%s_REDACTED]", kind)
		for _, match := range pattern.FindAllString(out.Text, -1) {
			out.Text = strings.Replace(out.Text, match, replacement, 1)
			out.Log = append(out.Log, RedactedItem{
				Type:        kind,
				Original:    match,
				Replacement: replacement,
			})
		}
	}
	out.Count = len(out.Log)
	return out
}
