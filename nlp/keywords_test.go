package nlp

import (
	"strings"
	"testing"
)

func TestKeywordsRanking(t *testing.T) {
	text := strings.Repeat("The telescope observed the nebula carefully. ", 4) +
		"The dog barked once."
	scorer := NewKeywordScorer()
	kws := scorer.Keywords(text, 5)
	if len(kws) == 0 {
		t.Fatal("Keywords() returned nothing")
	}
	top := map[string]bool{}
	for _, k := range kws {
		top[k.Word] = true
	}
	// frequent long content words must outrank the one-off short ones
	if !top["telescope"] || !top["nebula"] {
		t.Fatalf("expected telescope and nebula among top keywords, got %v", kws)
	}
	for i := 1; i < len(kws); i++ {
		if kws[i].Score > kws[i-1].Score {
			t.Fatalf("keywords not in descending score order: %v", kws)
		}
	}
}

func TestKeywordsExcludesStopwords(t *testing.T) {
	scorer := NewKeywordScorer()
	kws := scorer.Keywords("the the the and and because mountain mountain", 10)
	for _, k := range kws {
		if k.Word == "the" || k.Word == "and" || k.Word == "because" {
			t.Fatalf("stopword %q leaked into keywords", k.Word)
		}
	}
}

func TestKeywordsLengthBonus(t *testing.T) {
	// same frequency: the longer word must score higher
	scorer := NewKeywordScorer(WithStopwords(NewStopwords()))
	kws := scorer.Keywords("cat archaeology cat archaeology", 2)
	if len(kws) != 2 {
		t.Fatalf("expected 2 keywords, got %d", len(kws))
	}
	if kws[0].Word != "archaeology" {
		t.Fatalf("length bonus not applied: top keyword = %q", kws[0].Word)
	}
}

func TestKeywordsEmptyInput(t *testing.T) {
	if kws := NewKeywordScorer().Keywords("", 10); kws != nil {
		t.Fatalf("expected nil for empty input, got %v", kws)
	}
}

func TestEntities(t *testing.T) {
	text := "Contact John Smith at john@example.com or visit https://example.com. " +
		"The NASA budget grew 12% to $4,500.00 on January 5, 2024."
	ents := Entities(text)
	checks := map[string]string{
		EntityEmail:      "john@example.com",
		EntityAcronym:    "NASA",
		EntityPercentage: "12%",
		EntityDate:       "January 5, 2024",
	}
	for kind, want := range checks {
		found := false
		for _, v := range ents[kind] {
			if strings.Contains(v, want) {
				found = true
			}
		}
		if !found {
			t.Fatalf("entity %s: want match containing %q, got %v", kind, want, ents[kind])
		}
	}
	if len(ents[EntityCapitalizedPhrase]) == 0 {
		t.Fatal("expected a capitalized phrase entity")
	}
}
