package transform

import (
	"strings"
	"testing"

	"github.com/lexkit/lexkit/nlp"
)

const reportSample = `Quarterly Harbor Report

The restoration project increased traffic through the harbor by 40 percent this quarter.
Contact the office at harbor@example.com or call 555-123-4567 with questions.
Project Lead: Elias Ward
The council approved an investment of $12,500 for the new bell system.
Revenue from docking fees covered the full balance of the repair work.`

func TestExtractInformation(t *testing.T) {
	info := ExtractInformation(reportSample)
	if len(info.Entities[nlp.EntityEmail]) != 1 {
		t.Fatalf("emails = %v", info.Entities[nlp.EntityEmail])
	}
	if len(info.Entities[nlp.EntityMoney]) == 0 {
		t.Fatal("money entity missed")
	}
	if info.KeyValues["Project Lead"] != "Elias Ward" {
		t.Fatalf("key values = %v", info.KeyValues)
	}
	if len(info.Headings) == 0 || info.Headings[0] != "Quarterly Harbor Report" {
		t.Fatalf("headings = %v", info.Headings)
	}
	if info.WordCount == 0 || info.CharCount == 0 || info.SentenceCount == 0 {
		t.Fatalf("counts = %d/%d/%d", info.WordCount, info.CharCount, info.SentenceCount)
	}
	if len(info.Keywords) == 0 {
		t.Fatal("no keywords extracted")
	}
}

func TestRedactDefaults(t *testing.T) {
	r := Redact(reportSample, nil)
	if strings.Contains(r.Text, "harbor@example.com") {
		t.Fatal("email survived redaction")
	}
	if strings.Contains(r.Text, "555-123-4567") {
		t.Fatal("phone survived redaction")
	}
	if strings.Contains(r.Text, "$12,500") {
		t.Fatal("money survived redaction")
	}
	if !strings.Contains(r.Text, "[EMAIL_REDACTED]") {
		t.Fatalf("placeholder missing: %q", r.Text)
	}
	if r.Count != len(r.Log) || r.Count < 3 {
		t.Fatalf("Count = %d, Log = %d", r.Count, len(r.Log))
	}
}

func TestRedactSelectedTypesOnly(t *testing.T) {
	r := Redact(reportSample, []string{nlp.EntityEmail})
	if strings.Contains(r.Text, "harbor@example.com") {
		t.Fatal("email survived redaction")
	}
	if !strings.Contains(r.Text, "555-123-4567") {
		t.Fatal("phone was redacted without being requested")
	}
}

func TestClassify(t *testing.T) {
	financial := `The fiscal report shows revenue grew while profit margins held.
Investment in assets rose and the balance for the quarter improved.`
	c := Classify(financial)
	if c.DocumentType != "Financial" {
		t.Fatalf("DocumentType = %q (scores %v)", c.DocumentType, c.Scores)
	}
	if c.Confidence <= 0 || c.Confidence > 100 {
		t.Fatalf("Confidence = %v", c.Confidence)
	}
	if c.Language != "English" {
		t.Fatalf("Language = %q", c.Language)
	}
	if len(c.Tags) == 0 {
		t.Fatal("no semantic tags")
	}
	if c.Sentiment != "Positive" {
		t.Fatalf("Sentiment = %q", c.Sentiment)
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		text, want string
	}{
		{"the harbor is open and ready for this season", "English"},
		{"le port est ouvert pour que les bateaux reviennent", "French"},
		{"el puerto es grande para los barcos que llegan", "Spanish"},
		{"der Hafen ist offen und das Licht brennt für alle", "German"},
		{"", "English"},
	}
	for _, tt := range tests {
		if got := DetectLanguage(tt.text); got != tt.want {
			t.Fatalf("DetectLanguage(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestFormatStyles(t *testing.T) {
	text := "The lamp was lit before dusk every evening. The harbor stayed safe through the winter storms."

	bullets := Format(text, FormatBullets)
	if !strings.HasPrefix(bullets, "• ") || strings.Count(bullets, "• ") != 2 {
		t.Fatalf("bullets = %q", bullets)
	}

	numbered := Format(text, FormatNumbered)
	if !strings.HasPrefix(numbered, "1. ") || !strings.Contains(numbered, "\n2. ") {
		t.Fatalf("numbered = %q", numbered)
	}

	clean := Format("  a line  \n\n  another line  ", FormatClean)
	if clean != "a line\nanother line" {
		t.Fatalf("clean = %q", clean)
	}

	md := Format(reportSample, FormatMarkdown)
	if !strings.Contains(md, "## Quarterly Harbor Report") {
		t.Fatalf("markdown missing heading promotion: %q", md)
	}

	if got := Format(text, FormatStyle("bogus")); got != text {
		t.Fatalf("unknown style changed text: %q", got)
	}
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(reportSample)
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	if !strings.Contains(html, "<h2>Quarterly Harbor Report</h2>") {
		t.Fatalf("heading not rendered: %q", html)
	}
	if !strings.Contains(html, "<p>") {
		t.Fatalf("paragraphs not rendered: %q", html)
	}
}

func TestValidateGrammar(t *testing.T) {
	text := "the harvest was delayed for nearly two weeks by heavy rain. " +
		"Workers moved the the equipment into the barn before the storm arrived."
	issues := ValidateGrammar(text)
	if len(issues) != 2 {
		t.Fatalf("ValidateGrammar() returned %d issues, want 2: %v", len(issues), issues)
	}
	if !strings.Contains(issues[0], "sentence may not start correctly") {
		t.Fatalf("missing lowercase-start finding: %q", issues[0])
	}
	if !strings.Contains(issues[1], `"the"`) {
		t.Fatalf("missing duplicate-word finding: %q", issues[1])
	}
}

func TestValidateGrammarCleanText(t *testing.T) {
	text := "The council approved the budget after a short debate. " +
		"Construction on the new bridge begins early next spring."
	if issues := ValidateGrammar(text); len(issues) != 0 {
		t.Fatalf("clean text produced issues: %v", issues)
	}
}

func TestRepeatedWordIgnoresCase(t *testing.T) {
	word, ok := repeatedWord("The the channel carried water all summer long.")
	if !ok || word != "the" {
		t.Fatalf("repeatedWord() = %q, %v", word, ok)
	}
	if _, ok := repeatedWord("The channel carried water all summer long."); ok {
		t.Fatal("false positive on clean sentence")
	}
}
