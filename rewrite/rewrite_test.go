package rewrite

import (
	"strings"
	"testing"
)

func TestSentenceNormalization(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  the   river rose quickly  ", "The river rose quickly."},
		{"and the bridge held", "The bridge held."},
		{"But, nobody crossed that night", "Nobody crossed that night."},
		{"It was over!!!", "It was over!"},
		{"Was it over", "Was it over."},
		{"already ends here.", "Already ends here."},
		{"", ""},
		{"   ", ""},
		{"so it ended", "It ended."},
	}
	for _, tt := range tests {
		if got := Sentence(tt.in); got != tt.want {
			t.Fatalf("Sentence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJoinStorytellingConnectors(t *testing.T) {
	got := Join([]string{
		"the farmer woke at dawn",
		"he walked to the orchard",
		"the trees were heavy with fruit",
	}, StyleStorytelling)
	want := "The farmer woke at dawn. Then, he walked to the orchard. After that, the trees were heavy with fruit."
	if got != want {
		t.Fatalf("Join() = %q, want %q", got, want)
	}
}

func TestJoinFirstSentenceHasNoConnector(t *testing.T) {
	got := Join([]string{"everything begins here"}, StyleAcademic)
	if strings.HasPrefix(got, "Furthermore") {
		t.Fatalf("first sentence got a connector: %q", got)
	}
	if got != "Everything begins here." {
		t.Fatalf("Join() = %q", got)
	}
}

func TestJoinSkipsEmptySentences(t *testing.T) {
	got := Join([]string{"", "the signal returned", "   "}, StyleNeutral)
	if got != "The signal returned." {
		t.Fatalf("Join() = %q", got)
	}
}

func TestJoinPreservesAcronymCase(t *testing.T) {
	got := Join([]string{
		"the pipeline has two stages",
		"OCR output feeds the second stage",
	}, StyleStorytelling)
	if !strings.Contains(got, "Then, OCR output") {
		t.Fatalf("acronym was lowercased after connector: %q", got)
	}
}

func TestJoinConnectorsCycle(t *testing.T) {
	sentences := make([]string, 8)
	for i := range sentences {
		sentences[i] = "something happened again"
	}
	got := Join(sentences, StyleAcademic)
	if !strings.Contains(got, "Finally, something") {
		t.Fatalf("sixth connector missing: %q", got)
	}
	// seventh sentence wraps back to the first connector
	if strings.Count(got, "Furthermore, ") != 2 {
		t.Fatalf("connector list did not cycle: %q", got)
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in   string
		want Style
	}{
		{"storytelling", StyleStorytelling},
		{"Story", StyleStorytelling},
		{"academic", StyleAcademic},
		{"formal", StyleAcademic},
		{"neutral", StyleNeutral},
		{"whatever", StyleNeutral},
	}
	for _, tt := range tests {
		if got := ParseStyle(tt.in); got != tt.want {
			t.Fatalf("ParseStyle(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
