// Package classify implements the family classifier (C3): from a statistics
// profile, derive probabilities over {monoalphabetic, polyalphabetic,
// transposition}, ranked cipher-type shortlists per family, candidate key
// lengths, and a human-readable reasoning log.
package classify

import (
	"math"
	"sort"

	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/language"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/stats"
)

// Fixed IoC thresholds (spec.md §4.3).
const (
	iocHigh = 0.060
	iocMid  = 0.050
	iocLow  = 0.042
)

const shortTextThreshold = 20

// Probabilities is the classifier's output (CipherFamilyProbabilities).
type Probabilities struct {
	PMono                   float64
	PPoly                   float64
	PTrans                  float64
	MonoTypes               []string
	PolyTypes               []string
	TransTypes              []string
	EstimatedKeyLengths     []int
	ClassificationConfidence float64
	Reasoning               []string
}

// Classify derives CipherFamilyProbabilities from a StatisticsProfile.
func Classify(p stats.Profile) Probabilities {
	var reasoning []string

	if p.Length < shortTextThreshold {
		reasoning = append(reasoning, "ciphertext shorter than 20 letters: returning flat prior")
		return Probabilities{
			PMono:                   1.0 / 3.0,
			PPoly:                   1.0 / 3.0,
			PTrans:                  1.0 / 3.0,
			MonoTypes:               monoTypes(false),
			PolyTypes:               polyTypes(true),
			TransTypes:              transTypes(),
			EstimatedKeyLengths:     nil,
			ClassificationConfidence: 0.1,
			Reasoning:               reasoning,
		}
	}

	mono, poly, trans := initialPrior(p.IndexOfCoincidence)
	reasoning = append(reasoning, "initial prior chosen from index of coincidence bucket")

	// 1. Frequency-curve shape.
	maxR := bestShapeCorrelation(p)
	switch {
	case maxR > 0.85:
		mono += 0.2
		trans += 0.1
		reasoning = append(reasoning, "letter-frequency shape strongly matches a natural language: +mono, +trans")
	case maxR > 0.6:
		mono += 0.15
		reasoning = append(reasoning, "letter-frequency shape loosely matches a natural language: +mono")
	default:
		poly += 0.2
		reasoning = append(reasoning, "letter-frequency shape is flat: +poly")
	}

	// 2. Bigram correlation.
	bestBigramHit := bestBigramHitPercentage(p.Text)
	switch {
	case bestBigramHit > 0.7:
		trans += 0.2
		reasoning = append(reasoning, "high common-bigram survival rate suggests letters are merely reordered: +trans")
	case bestBigramHit < 0.3:
		trans = floor(trans-0.2, 0.05)
		reasoning = append(reasoning, "low common-bigram survival rate argues against transposition: -trans")
	}

	// 3. Kasiski.
	var keyLengths []int
	if len(p.KasiskiDistances) > 0 {
		poly += 0.2
		mono = floor(mono-0.15, 0.05)
		reasoning = append(reasoning, "repeated substrings found (Kasiski): +poly, -mono")
		keyLengths = keyLengthHint(p.KasiskiDistances)
	}

	// 4. Entropy.
	ratio := p.Entropy / math.Log2(stats.AlphabetSize)
	switch {
	case ratio > 0.95:
		poly += 0.1
		reasoning = append(reasoning, "entropy close to maximal: +poly")
	case ratio < 0.85:
		mono += 0.1
		trans += 0.1
		reasoning = append(reasoning, "entropy below natural-language ceiling: +mono, +trans")
	}

	mono = math.Max(mono, 0)
	poly = math.Max(poly, 0)
	trans = math.Max(trans, 0)

	total := mono + poly + trans
	if total == 0 {
		mono, poly, trans = 1, 1, 1
		total = 3
	}
	mono /= total
	poly /= total
	trans /= total

	sorted := []float64{mono, poly, trans}
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	confidence := sorted[0] - sorted[1]

	return Probabilities{
		PMono:                    mono,
		PPoly:                    poly,
		PTrans:                   trans,
		MonoTypes:                monoTypes(maxR <= 0.8),
		PolyTypes:                polyTypes(len(keyLengths) == 0),
		TransTypes:               transTypes(),
		EstimatedKeyLengths:      keyLengths,
		ClassificationConfidence: confidence,
		Reasoning:                reasoning,
	}
}

func floor(v, min float64) float64 {
	if v < min {
		return min
	}
	return v
}

func initialPrior(ioc float64) (mono, poly, trans float64) {
	switch {
	case ioc >= iocHigh:
		return 0.7, 0.1, 0.6
	case ioc >= iocMid:
		return 0.3, 0.6, 0.2
	case ioc >= iocLow:
		return 0.1, 0.8, 0.1
	default:
		return 0.05, 0.7, 0.05
	}
}

// bestShapeCorrelation returns the maximum Spearman rank correlation between the
// ciphertext's full 26-letter observed-percentage curve (sorted descending) and
// each reference language's sorted frequency curve.
func bestShapeCorrelation(p stats.Profile) float64 {
	var observed [stats.AlphabetSize]float64
	for _, f := range p.CharacterFrequencies {
		observed[f.Letter-'A'] = f.RelativeFrequency * 100
	}
	sortedObserved := append([]float64(nil), observed[:]...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sortedObserved)))

	best := -1.0
	for _, lang := range language.Languages {
		ref := language.SortedLetterFrequencies(lang)
		r := spearman(sortedObserved, ref)
		if r > best {
			best = r
		}
	}
	return best
}

func bestBigramHitPercentage(canon string) float64 {
	best := 0.0
	for i, lang := range language.Languages {
		hit := language.TopBigramHitPercentage(canon, lang)
		if i == 0 || hit > best {
			best = hit
		}
	}
	return best
}

// keyLengthHint ranks factors of every Kasiski distance in [2,15] by multiplicity
// and returns the top 5.
func keyLengthHint(distances []int) []int {
	tally := make(map[int]int)
	for _, d := range distances {
		for _, f := range stats.Factors(d, 2, 15) {
			tally[f]++
		}
	}
	type fc struct {
		factor int
		count  int
	}
	var all []fc
	for f, c := range tally {
		all = append(all, fc{f, c})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].count != all[j].count {
			return all[i].count > all[j].count
		}
		return all[i].factor < all[j].factor
	})
	if len(all) > 5 {
		all = all[:5]
	}
	out := make([]int, len(all))
	for i, v := range all {
		out[i] = v.factor
	}
	return out
}

func monoTypes(includeMore bool) []string {
	types := []string{"caesar"}
	if includeMore {
		types = append(types, "simple_substitution", "affine")
	}
	types = append(types, "atbash", "rot13")
	return types
}

func polyTypes(noKasiskiLength bool) []string {
	if noKasiskiLength {
		return []string{"vigenere", "autokey", "beaufort"}
	}
	return []string{"vigenere", "beaufort", "autokey"}
}

func transTypes() []string {
	return []string{"rail_fence", "columnar"}
}

// spearman computes the Spearman rank correlation coefficient between two
// equal-length sequences, using average ranks to break ties.
func spearman(a, b []float64) float64 {
	n := len(a)
	if n == 0 || n != len(b) {
		return 0
	}
	ra := rank(a)
	rb := rank(b)

	var meanA, meanB float64
	for i := 0; i < n; i++ {
		meanA += ra[i]
		meanB += rb[i]
	}
	meanA /= float64(n)
	meanB /= float64(n)

	var num, denA, denB float64
	for i := 0; i < n; i++ {
		da := ra[i] - meanA
		db := rb[i] - meanB
		num += da * db
		denA += da * da
		denB += db * db
	}
	if denA == 0 || denB == 0 {
		return 0
	}
	return num / math.Sqrt(denA*denB)
}

// rank assigns average ranks (1-based, ascending value = rank 1) to v, handling ties.
func rank(v []float64) []float64 {
	n := len(v)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return v[idx[i]] < v[idx[j]] })

	ranks := make([]float64, n)
	i := 0
	for i < n {
		j := i
		for j+1 < n && v[idx[j+1]] == v[idx[i]] {
			j++
		}
		avgRank := float64(i+j)/2.0 + 1.0
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avgRank
		}
		i = j + 1
	}
	return ranks
}
