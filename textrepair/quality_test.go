package textrepair

import "testing"

func TestQualityScoreRepairedSample(t *testing.T) {
	r := New()
	repaired := r.Repair(noisyStorySample)
	rep := r.QualityScore(repaired)
	if rep.Label != LabelFair && rep.Label != LabelGood {
		t.Fatalf("repaired sample label = %s (score %d), want FAIR or GOOD\n%s",
			rep.Label, rep.Score, repaired)
	}
	if rep.ValidSentences < 3 {
		t.Fatalf("repaired sample valid sentences = %d, want >= 3", rep.ValidSentences)
	}
}

func TestQualityScoreGarbage(t *testing.T) {
	r := New()
	rep := r.QualityScore("x9 @@ q7 ## z3 $$ w1 %% v5 ^^ k2 !!")
	if rep.Label != LabelNoisy {
		t.Fatalf("garbage label = %s (score %d), want NOISY", rep.Label, rep.Score)
	}
}

func TestQualityScoreEmpty(t *testing.T) {
	rep := New().QualityScore("")
	if rep.Score != 0 || rep.Label != LabelNoisy || rep.TotalWords != 0 {
		t.Fatalf("unexpected empty report: %+v", rep)
	}
}

func TestQualityScoreCleanProse(t *testing.T) {
	text := "The expedition crossed the frozen river at dawn under a pale sky. " +
		"Supplies were running low and the guides argued about the safest route forward. " +
		"By evening the party reached the abandoned station and lit the first fire in weeks."
	rep := New().QualityScore(text)
	if rep.Label != LabelGood {
		t.Fatalf("clean prose label = %s (score %d), want GOOD", rep.Label, rep.Score)
	}
	if rep.ValidSentences != 3 {
		t.Fatalf("valid sentences = %d, want 3", rep.ValidSentences)
	}
}
