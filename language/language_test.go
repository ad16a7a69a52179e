package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreIsFiniteForEveryLanguage(t *testing.T) {
	scores, _ := Score("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOGTHEQUICKBROWNFOXJUMPSOVERTHELAZYDOG")
	assert.Len(t, scores, len(Languages))
	for _, lang := range Languages {
		s := scores[lang]
		assert.False(t, isNaN(s.Combined))
		assert.False(t, isInf(s.Combined))
	}
}

func TestEnglishTextScoresBestAsEnglish(t *testing.T) {
	_, best := Score("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOGANDTHENRANAWAYINTOTHEFORESTWITHTHEOTHERANIMALS")
	assert.Equal(t, English, best)
}

func TestBigramRatioEmptyOnShortText(t *testing.T) {
	assert.Equal(t, 0.0, BigramRatio("A", English))
	assert.Equal(t, 0.0, BigramRatio("", English))
}

func TestWordHitRatioFindsSubstrings(t *testing.T) {
	ratio := WordHitRatio("XXXTHEYYYANDZZZ", English)
	assert.Greater(t, ratio, 0.0)
}

func TestConfidenceBands(t *testing.T) {
	assert.Equal(t, 0.95, Confidence(10))
	assert.Equal(t, 0.85, Confidence(50))
	assert.Equal(t, 0.70, Confidence(90))
	assert.Equal(t, 0.50, Confidence(120))
	assert.Equal(t, 0.30, Confidence(200))
	assert.Equal(t, 0.10, Confidence(500))
}

func TestDeclarationOrderTieBreak(t *testing.T) {
	assert.Equal(t, English, Languages[0])
}

func isNaN(f float64) bool { return f != f }
func isInf(f float64) bool { return f > 1e300 || f < -1e300 }
