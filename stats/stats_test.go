package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeUppercasesAndFilters(t *testing.T) {
	assert.Equal(t, "HELLOWORLD", Canonicalize("Hello, World! 123"))
	assert.Equal(t, "", Canonicalize("1234 !@#$"))
}

func TestCanonicalizeIsIdempotent(t *testing.T) {
	once := Canonicalize("Attack At Dawn")
	twice := Canonicalize(once)
	assert.Equal(t, once, twice)
}

func TestComputeEmptyInput(t *testing.T) {
	p := Compute("")
	assert.Equal(t, 0, p.Length)
	assert.False(t, p.ChiSquaredDefined)
	assert.Equal(t, 0.0, p.IndexOfCoincidence)
}

func TestComputeFrequenciesSumToOne(t *testing.T) {
	p := Compute(Canonicalize("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG"))
	sum := 0.0
	for _, f := range p.CharacterFrequencies {
		sum += f.RelativeFrequency
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestIndexOfCoincidenceSingleCharIsZero(t *testing.T) {
	p := Compute("A")
	assert.Equal(t, 0.0, p.IndexOfCoincidence)
}

func TestIndexOfCoincidenceUniformRepeats(t *testing.T) {
	// "AABB": pairs same-letter = 2*(2*1) = 4, total pairs = 4*3=12 -> IoC = 4/12
	p := Compute("AABB")
	assert.InDelta(t, 4.0/12.0, p.IndexOfCoincidence, 1e-9)
}

func TestRepeatedSequencesFindsKasiskiDistances(t *testing.T) {
	text := "ABCXYZABCQRSABC"
	p := Compute(text)
	assert.NotEmpty(t, p.RepeatedSequences)
	assert.Contains(t, p.KasiskiDistances, 6)
	assert.Contains(t, p.KasiskiDistances, 12)
}

func TestFactors(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 6}, Factors(6, 1, 15))
	assert.Equal(t, []int{2, 3}, Factors(6, 2, 5))
}

func TestChiSquaredDefinedOnNonEmpty(t *testing.T) {
	p := Compute(Canonicalize("THERAININSPAINFALLSMAINLYONTHEPLAIN"))
	assert.True(t, p.ChiSquaredDefined)
	assert.GreaterOrEqual(t, p.ChiSquaredEnglish, 0.0)
}
