package filter

import "testing"

func TestQuickRejectEmpty(t *testing.T) {
	if !QuickReject("") {
		t.Error("expected empty string to be quick-rejected")
	}
}

func TestQuickRejectLowVowelRatio(t *testing.T) {
	if !QuickReject("BCDFGHJKLMNPQRSTVWXYZ") {
		t.Error("expected vowel-less text to be quick-rejected")
	}
}

func TestQuickRejectConsecutiveRun(t *testing.T) {
	if !QuickReject("ZZZZZZZZZZ") {
		t.Error("expected 'ZZZZZZZZZZ' to be quick-rejected on consecutive-letter run")
	}
}

func TestQuickRejectAcceptsPlausibleText(t *testing.T) {
	if QuickReject("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG") {
		t.Error("expected plausible English text to pass quick_reject")
	}
}

func TestAcceptRejectsLongConsonantRun(t *testing.T) {
	text := "AEIOU" + "BCDFGHJKLMN" + "AEIOU" // an 11-letter consonant run
	if Accept(text) {
		t.Error("expected an 11-letter consonant run to fail Accept")
	}
}

func TestAcceptRejectsWhenEveryLanguageChiSquaredTooHigh(t *testing.T) {
	// A long, heavily skewed string of just two letters fails every language's
	// chi-squared ceiling while still passing the vowel/run quick checks.
	text := ""
	for i := 0; i < 40; i++ {
		text += "AEAEAEAEAE"
	}
	if Accept(text) {
		t.Error("expected degenerate AE-repeating text to fail the chi-squared ceiling for every language")
	}
}

func TestQuickRejectImpliesFullFilterRejects(t *testing.T) {
	samples := []string{
		"",
		"BCDFGHJKLMNPQRSTVWXYZ",
		"ZZZZZZZZZZ",
		"THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG",
		"AEIOUBCDFGHJKLMNAEIOU",
	}
	for _, s := range samples {
		if QuickReject(s) && Accept(s) {
			t.Errorf("property P7 violated: QuickReject(%q) rejected but Accept(%q) accepted", s, s)
		}
	}
}
