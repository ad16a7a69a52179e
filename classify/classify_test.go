package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/stats"
)

func TestShortTextGuard(t *testing.T) {
	p := stats.Compute(stats.Canonicalize("HELLO"))
	probs := Classify(p)
	assert.InDelta(t, 1.0/3.0, probs.PMono, 1e-9)
	assert.InDelta(t, 1.0/3.0, probs.PPoly, 1e-9)
	assert.InDelta(t, 1.0/3.0, probs.PTrans, 1e-9)
	assert.Equal(t, 0.1, probs.ClassificationConfidence)
}

func TestProbabilitiesSumToOne(t *testing.T) {
	text := strings.Repeat("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG", 4)
	p := stats.Compute(stats.Canonicalize(text))
	probs := Classify(p)
	assert.InDelta(t, 1.0, probs.PMono+probs.PPoly+probs.PTrans, 1e-6)
	assert.GreaterOrEqual(t, probs.PMono, 0.0)
	assert.GreaterOrEqual(t, probs.PPoly, 0.0)
	assert.GreaterOrEqual(t, probs.PTrans, 0.0)
}

func TestMonoTypesAlwaysLeadsWithCaesar(t *testing.T) {
	text := strings.Repeat("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG", 4)
	p := stats.Compute(stats.Canonicalize(text))
	probs := Classify(p)
	assert.Equal(t, "caesar", probs.MonoTypes[0])
}

func TestTransTypesAlwaysRailFenceThenColumnar(t *testing.T) {
	text := strings.Repeat("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG", 4)
	p := stats.Compute(stats.Canonicalize(text))
	probs := Classify(p)
	assert.Equal(t, []string{"rail_fence", "columnar"}, probs.TransTypes)
}
