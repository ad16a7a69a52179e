// Package language implements the multi-language candidate scorer (C2):
// chi-squared, common-bigram hit rate and common-word hit rate against six
// European reference languages, combined into a single lower-is-better score.
package language

import (
	"sort"
	"strings"
)

// Language identifies one of the six reference languages. Declaration order in
// Languages is the tie-break order used by I5 (best_language ties broken by
// declaration order) and by the final candidate ranking (spec.md §5).
type Language string

const (
	English    Language = "english"
	French     Language = "french"
	German     Language = "german"
	Spanish    Language = "spanish"
	Italian    Language = "italian"
	Portuguese Language = "portuguese"
)

// Languages lists every supported reference language in declaration order.
var Languages = []Language{English, French, German, Spanish, Italian, Portuguese}

const alphabetSize = 26

// Scores is the per-language breakdown attached to a ScoredCandidate (all_scores).
type Scores struct {
	ChiSquared  float64
	BigramScore float64
	WordScore   float64
	Combined    float64
}

// ChiSquared computes chi-squared of canon (already canonicalized A-Z text) against
// lang's reference letter-frequency table, flooring any zero-expected bucket at 0.1%
// of length per spec.md §4.1/§4.2.
func ChiSquared(canon string, lang Language) float64 {
	n := len(canon)
	if n == 0 {
		return 0
	}
	var counts [alphabetSize]int
	for i := 0; i < n; i++ {
		counts[canon[i]-'A']++
	}
	tbl := tables[lang]
	chi := 0.0
	for c := 0; c < alphabetSize; c++ {
		expected := (tbl.freqPercent[c] / 100.0) * float64(n)
		if expected <= 0 {
			expected = 0.001 * float64(n)
		}
		diff := float64(counts[c]) - expected
		chi += (diff * diff) / expected
	}
	return chi
}

// BigramRatio is the fraction of overlapping 2-letter windows of canon that are
// among lang's common bigrams. 0 when len(canon) < 2.
func BigramRatio(canon string, lang Language) float64 {
	n := len(canon)
	if n < 2 {
		return 0
	}
	tbl := tables[lang]
	hits := 0
	for i := 0; i+2 <= n; i++ {
		if tbl.bigrams[canon[i:i+2]] {
			hits++
		}
	}
	return float64(hits) / float64(n-1)
}

// WordHitRatio is the fraction of lang's common words (length >= 3) that occur as a
// substring anywhere in canon. Because canon has no spaces, substring search is the
// specified (not merely expedient) matching strategy.
func WordHitRatio(canon string, lang Language) float64 {
	tbl := tables[lang]
	if len(tbl.words) == 0 {
		return 0
	}
	hits := 0
	for _, w := range tbl.words {
		if len(w) < 3 {
			continue
		}
		if strings.Contains(canon, w) {
			hits++
		}
	}
	return float64(hits) / float64(len(tbl.words))
}

// Combined implements I4: chi_squared - 50*bigram_ratio - 100*word_hit_ratio. Lower is better.
func Combined(canon string, lang Language) float64 {
	chi := ChiSquared(canon, lang)
	bigram := BigramRatio(canon, lang)
	word := WordHitRatio(canon, lang)
	return chi - 50*bigram - 100*word
}

// Score computes Scores for every reference language and returns the full map plus
// the argmin (best) language, ties broken by declaration order (I5).
func Score(canon string) (map[Language]Scores, Language) {
	out := make(map[Language]Scores, len(Languages))
	best := Languages[0]
	bestCombined := 0.0
	for i, lang := range Languages {
		chi := ChiSquared(canon, lang)
		bigram := BigramRatio(canon, lang)
		word := WordHitRatio(canon, lang)
		combined := chi - 50*bigram - 100*word
		out[lang] = Scores{ChiSquared: chi, BigramScore: bigram, WordScore: word, Combined: combined}
		if i == 0 || combined < bestCombined {
			bestCombined = combined
			best = lang
		}
	}
	return out, best
}

// Confidence maps a best chi-squared value onto [0,1] per spec.md §4.2's fixed bands.
func Confidence(bestChiSquared float64) float64 {
	switch {
	case bestChiSquared < 40:
		return 0.95
	case bestChiSquared < 60:
		return 0.85
	case bestChiSquared < 100:
		return 0.70
	case bestChiSquared < 150:
		return 0.50
	case bestChiSquared < 250:
		return 0.30
	default:
		return 0.10
	}
}

// ExpectedIoC returns lang's tabulated expected index of coincidence.
func ExpectedIoC(lang Language) float64 {
	return tables[lang].expectedIoC
}

// SortedLetterFrequencies returns lang's reference per-letter percentages sorted
// descending, used by the classifier's Spearman rank-correlation shape test.
func SortedLetterFrequencies(lang Language) []float64 {
	tbl := tables[lang]
	out := append([]float64(nil), tbl.freqPercent[:]...)
	sort.Sort(sort.Reverse(sort.Float64Slice(out)))
	return out
}

// TopBigramHitPercentage is the fraction of lang's common bigrams (by declaration,
// not position) found anywhere as a substring of canon - used by the classifier's
// bigram-correlation adjustment, distinct from BigramRatio's positional accounting.
func TopBigramHitPercentage(canon string, lang Language) float64 {
	tbl := tables[lang]
	if len(tbl.bigramList) == 0 {
		return 0
	}
	hits := 0
	for _, bg := range tbl.bigramList {
		if strings.Contains(canon, bg) {
			hits++
		}
	}
	return float64(hits) / float64(len(tbl.bigramList))
}

// CommonWords exposes lang's reference word list (used by the corpus tool to draw
// sample plaintext sentences).
func CommonWords(lang Language) []string {
	return tables[lang].words
}
