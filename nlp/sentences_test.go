package nlp

import (
	"reflect"
	"testing"
)

func TestExtractSentencesOrderPreserved(t *testing.T) {
	text := "The farmer rode the white horse across the dry valley. " +
		"Nobody in the village believed the story he told that morning. " +
		"Every summer the children waited for the traveling circus to arrive."
	got := ExtractSentences(text)
	want := []string{
		"The farmer rode the white horse across the dry valley.",
		"Nobody in the village believed the story he told that morning.",
		"Every summer the children waited for the traveling circus to arrive.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractSentences() = %#v, want %#v", got, want)
	}
}

func TestExtractSentencesRejectsFragments(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"stopword fragment", "A B C.", 0},
		{"too few words", "Go home now.", 0},
		{"numeric noise", "12 34 .. 56 xx 9 qq 8 zz 77.", 0},
		{"empty", "", 0},
		{"one valid sentence", "The quiet harbor town slept under heavy winter fog.", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractSentences(tc.text)
			if len(got) != tc.want {
				t.Fatalf("ExtractSentences(%q) = %d sentences, want %d (%v)", tc.text, len(got), tc.want, got)
			}
		})
	}
}

func TestExtractSentencesQuoteBoundary(t *testing.T) {
	text := `The old man finished his long story about the war. "Nobody remembers the real ending anymore," he added quietly.`
	got := ExtractSentences(text)
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", len(got), got)
	}
}

func TestExtractSentencesNoSplitOnLowercase(t *testing.T) {
	// period followed by a lowercase word is treated as mid-sentence
	text := "The package from acme.org arrived late but the courier apologized sincerely to everyone."
	got := ExtractSentences(text)
	if len(got) != 1 {
		t.Fatalf("expected 1 sentence, got %d: %v", len(got), got)
	}
}

func TestAlphaRatio(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"abcd", 1.0},
		{"ab12", 0.5},
		{"", 0},
		{"   ", 0},
	}
	for _, tc := range cases {
		if got := AlphaRatio(tc.in); got != tc.want {
			t.Fatalf("AlphaRatio(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
