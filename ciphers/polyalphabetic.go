package ciphers

import (
	"sort"

	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/stats"
)

// commonPolyalphabeticKeys is tried unconditionally by Vigenère and Beaufort
// cryptanalysis alongside the statistically estimated key lengths (spec.md §4.4).
var commonPolyalphabeticKeys = []string{
	"KEY", "SECRET", "PASSWORD", "CIPHER", "LOVE", "QUEEN", "LONDON", "ENIGMA",
}

// splitColumns partitions text into length columns, column j holding characters
// at positions j, j+length, j+2*length, ...
func splitColumns(text string, length int) []string {
	columns := make([]string, length)
	for i := 0; i < len(text); i++ {
		j := i % length
		columns[j] += string(text[i])
	}
	return columns
}

// estimateKeyLengths ranks candidate key lengths 1..maxKeyLength by average
// column IoC descending, then promotes any length that is also a factor of a
// Kasiski distance to the front of the list (spec.md §4.4 step 1).
func estimateKeyLengths(ciphertext string, p stats.Profile, maxKeyLength int) []int {
	type lengthScore struct {
		length  int
		avgIoC  float64
	}
	var scored []lengthScore
	for l := 1; l <= maxKeyLength && l <= len(ciphertext); l++ {
		columns := splitColumns(ciphertext, l)
		sum := 0.0
		for _, col := range columns {
			sum += stats.IoC(col)
		}
		scored = append(scored, lengthScore{length: l, avgIoC: sum / float64(len(columns))})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].avgIoC > scored[j].avgIoC })

	kasiskiFactors := make(map[int]bool)
	for _, d := range p.KasiskiDistances {
		for _, f := range stats.Factors(d, 1, maxKeyLength) {
			kasiskiFactors[f] = true
		}
	}

	var promoted, rest []int
	for _, s := range scored {
		if kasiskiFactors[s.length] {
			promoted = append(promoted, s.length)
		} else {
			rest = append(rest, s.length)
		}
	}
	return append(promoted, rest...)
}

// solveColumnShift finds the shift in [0,25] that, when applied by apply, yields the
// column text with the best (lowest) language score (spec.md §4.4 step 2). apply
// receives the raw column bytes and a shift and must return the transformed column.
func solveColumnShift(column string, opts Options, apply func(column string, shift int) string) int {
	bestShift := 0
	bestScore := 0.0
	for shift := 0; shift < 26; shift++ {
		candidate := apply(column, shift)
		score, _ := scoreText(candidate, opts)
		if shift == 0 || score < bestScore {
			bestScore = score
			bestShift = shift
		}
	}
	return bestShift
}

func vigenereColumnDecrypt(column string, shift int) string {
	return caesarShift(column, -shift)
}

func beaufortColumnDecrypt(column string, shift int) string {
	// Beaufort: c = k - p (mod 26)  =>  p = k - c (mod 26). For a column where every
	// character was combined with the same key letter k=shift, decrypting means
	// negating-and-shifting: p_i = (shift - c_i) mod 26.
	out := make([]byte, len(column))
	for i := 0; i < len(column); i++ {
		out[i] = byte('A' + mod26(shift-int(column[i]-'A')))
	}
	return string(out)
}
