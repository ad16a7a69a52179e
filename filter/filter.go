// Package filter implements the candidate plausibility filter (C6): a set of
// hard, non-statistical rejections applied before a candidate is allowed into
// the final top-N (spec.md §4.6).
package filter

import "github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/language"

const (
	minVowelRatio       = 0.05
	maxConsecutiveRun   = 5
	maxConsonantRun     = 10
	maxChiSquaredAnyLang = 300.0
)

var vowels = [26]bool{
	'A' - 'A': true, 'E' - 'A': true, 'I' - 'A': true, 'O' - 'A': true, 'U' - 'A': true,
}

// QuickReject runs the first three, cheap checks only (no scoring): empty
// text, low vowel ratio, and long consecutive-letter runs. It never rejects
// more than the full filter (property P7): anything quick_reject accepts may
// still be rejected by Accept on the consonant-run or chi-squared checks.
func QuickReject(canon string) bool {
	if len(canon) == 0 {
		return true
	}
	if vowelRatio(canon) < minVowelRatio {
		return true
	}
	if hasConsecutiveRun(canon, maxConsecutiveRun) {
		return true
	}
	return false
}

// Accept reports whether canon survives every hard rejection rule, including
// the two QuickReject omits: the long-consonant-run check and the
// every-language chi-squared ceiling.
func Accept(canon string) bool {
	if QuickReject(canon) {
		return false
	}
	if longestConsonantRun(canon) > maxConsonantRun {
		return false
	}
	if failsEveryLanguageChiSquared(canon) {
		return false
	}
	return true
}

func vowelRatio(canon string) float64 {
	if len(canon) == 0 {
		return 0
	}
	v := 0
	for i := 0; i < len(canon); i++ {
		if vowels[canon[i]-'A'] {
			v++
		}
	}
	return float64(v) / float64(len(canon))
}

func hasConsecutiveRun(canon string, threshold int) bool {
	run := 1
	for i := 1; i < len(canon); i++ {
		if canon[i] == canon[i-1] {
			run++
			if run >= threshold {
				return true
			}
		} else {
			run = 1
		}
	}
	return len(canon) > 0 && run >= threshold
}

func longestConsonantRun(canon string) int {
	longest, run := 0, 0
	for i := 0; i < len(canon); i++ {
		if vowels[canon[i]-'A'] {
			run = 0
			continue
		}
		run++
		if run > longest {
			longest = run
		}
	}
	return longest
}

func failsEveryLanguageChiSquared(canon string) bool {
	for _, lang := range language.Languages {
		if language.ChiSquared(canon, lang) <= maxChiSquaredAnyLang {
			return false
		}
	}
	return true
}
