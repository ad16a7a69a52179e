package ciphers

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/errs"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/stats"
)

// columnarKeywordCandidates is tried before falling back to permutation search
// (spec.md §4.4); a keyword longer than the ciphertext is skipped.
var columnarKeywordCandidates = []string{
	"KEY", "CIPHER", "SECRET", "ZEBRA", "MATRIX", "PUZZLE", "LONDON", "ENIGMA", "QUEEN", "CASTLE",
}

const columnarPadding = 'X'

// ColumnarEngine implements keyword columnar transposition. Key serializes either
// as an uppercase alphabetic word (column order = alphabetical rank of its letters,
// ties broken left-to-right) or as a comma-separated 1-based explicit ordering,
// e.g. "3,1,2" (spec.md §4.4, §6).
type ColumnarEngine struct{}

func (ColumnarEngine) Type() string { return TypeColumnar }

func (ColumnarEngine) Detect(p stats.Profile) float64 {
	if p.IndexOfCoincidence > 0.06 {
		return 0.4
	}
	return 0.1
}

func (e ColumnarEngine) AttemptDecrypt(ciphertext string, _ stats.Profile, opts Options) []Candidate {
	maxKeyLength := opts.MaxKeyLength
	if maxKeyLength <= 0 {
		maxKeyLength = 15
	}
	n := len(ciphertext)
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	var cands []Candidate
	tryOrder := func(order []int, key string, method string) {
		plain := columnarDecryptWithOrder(ciphertext, order)
		score, _ := scoreText(plain, opts)
		cands = append(cands, Candidate{
			Plaintext:     plain,
			CipherType:    TypeColumnar,
			Key:           key,
			Method:        method,
			InternalScore: score,
		})
	}

	for _, word := range columnarKeywordCandidates {
		if len(word) < 2 || len(word) > n {
			continue
		}
		tryOrder(columnOrderFromWord(word), word, "keyword_dictionary")
	}

	maxExhaustive := 6
	if n/2 < maxExhaustive {
		maxExhaustive = n / 2
	}
	for l := 2; l <= maxExhaustive; l++ {
		if cancelled(opts) {
			return topN(cands, 5)
		}
		for _, perm := range permutations(l) {
			tryOrder(perm, formatOrderKey(perm), "exhaustive_permutation")
		}
	}

	for l := maxExhaustive + 1; l <= maxKeyLength && l <= n; l++ {
		if cancelled(opts) {
			break
		}
		for i := 0; i < 1000; i++ {
			order := rng.Perm(l)
			tryOrder(order, formatOrderKey(order), "random_permutation_sample")
		}
	}

	return topN(cands, 5)
}

func (e ColumnarEngine) DecryptWithKey(ciphertext string, key string) (KeyResult, error) {
	order, ok := columnarOrderFromKey(key)
	if !ok {
		return KeyResult{}, errs.ErrInvalidKey
	}
	plain := columnarDecryptWithOrder(ciphertext, order)
	return KeyResult{Plaintext: plain, Key: key, Confidence: 1.0, Explanation: e.Explain(ciphertext, plain, key)}, nil
}

func (e ColumnarEngine) FindKeyAndDecrypt(ciphertext string, p stats.Profile, opts Options) (KeyResult, error) {
	cands := e.AttemptDecrypt(ciphertext, p, opts)
	if len(cands) == 0 {
		return KeyResult{}, errs.ErrDecryptionFailed
	}
	best := cands[0]
	return KeyResult{Plaintext: best.Plaintext, Key: best.Key, Confidence: 1.0, Explanation: e.Explain(ciphertext, best.Plaintext, best.Key)}, nil
}

func (e ColumnarEngine) Encrypt(plaintext string, key string) (string, error) {
	order, ok := columnarOrderFromKey(key)
	if !ok {
		return "", errs.ErrInvalidKey
	}
	l := len(order)
	padded := plaintext
	if rem := len(padded) % l; rem != 0 {
		padded += strings.Repeat(string(rune(columnarPadding)), l-rem)
	}
	numRows := len(padded) / l

	cols := make([][]byte, l)
	for row := 0; row < numRows; row++ {
		for c := 0; c < l; c++ {
			cols[c] = append(cols[c], padded[row*l+c])
		}
	}

	out := make([]byte, 0, len(padded))
	for _, c := range order {
		out = append(out, cols[c]...)
	}
	return string(out), nil
}

func (ColumnarEngine) GenerateRandomKey(rng *rand.Rand) string {
	return randomKeyWord(rng, 3+rng.Intn(6))
}

func (ColumnarEngine) ValidateKey(key string) bool {
	_, ok := columnarOrderFromKey(key)
	return ok
}

func (ColumnarEngine) Explain(_, _, key string) string {
	return "Columnar transposition: plaintext written in rows and columns read in the order defined by key " + key
}

// columnarOrderFromKey parses either an explicit comma-separated ordering (e.g.
// "3,1,2") or an alphabetic keyword into a zero-based column read order.
func columnarOrderFromKey(key string) ([]int, bool) {
	if strings.Contains(key, ",") {
		return parseOrderList(key)
	}
	if len(key) < 2 || !onlyUpperAZ(key) {
		return nil, false
	}
	return columnOrderFromWord(key), true
}

func parseOrderList(key string) ([]int, bool) {
	parts := strings.Split(key, ",")
	l := len(parts)
	if l < 2 {
		return nil, false
	}
	order := make([]int, l)
	seen := make([]bool, l)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v < 1 || v > l || seen[v-1] {
			return nil, false
		}
		seen[v-1] = true
		order[i] = v - 1
	}
	return order, true
}

func formatOrderKey(order []int) string {
	parts := make([]string, len(order))
	for i, v := range order {
		parts[i] = strconv.Itoa(v + 1)
	}
	return strings.Join(parts, ",")
}

// columnOrderFromWord ranks a keyword's letters alphabetically, breaking ties by
// original position, and returns the resulting zero-based column read order.
func columnOrderFromWord(word string) []int {
	type keyed struct {
		letter byte
		index  int
	}
	keys := make([]keyed, len(word))
	for i := 0; i < len(word); i++ {
		keys[i] = keyed{letter: word[i], index: i}
	}
	sort.SliceStable(keys, func(i, j int) bool { return keys[i].letter < keys[j].letter })

	order := make([]int, len(keys))
	for k, kv := range keys {
		order[k] = kv.index
	}
	return order
}

// columnarDecryptWithOrder reverses the column read order against a ciphertext of
// arbitrary length, splitting it into long/short columns by position mod len(order)
// (spec.md §4.4) rather than assuming the caller padded to an exact multiple.
func columnarDecryptWithOrder(ciphertext string, order []int) string {
	l := len(order)
	n := len(ciphertext)
	if l == 0 {
		return ciphertext
	}
	fullRows := n / l
	remainder := n % l

	colLen := make([]int, l)
	for c := 0; c < l; c++ {
		colLen[c] = fullRows
		if c < remainder {
			colLen[c]++
		}
	}

	cols := make([][]byte, l)
	pos := 0
	for _, c := range order {
		cols[c] = []byte(ciphertext[pos : pos+colLen[c]])
		pos += colLen[c]
	}

	out := make([]byte, 0, n)
	for row := 0; row < fullRows+1; row++ {
		for c := 0; c < l; c++ {
			if row < colLen[c] {
				out = append(out, cols[c][row])
			}
		}
	}
	return string(out)
}

// permutations returns every permutation of {0,...,l-1} by recursive
// swap-and-restore backtracking.
func permutations(l int) [][]int {
	if l == 0 {
		return [][]int{{}}
	}
	elems := make([]int, l)
	for i := range elems {
		elems[i] = i
	}
	var result [][]int
	var permute func(k int)
	permute = func(k int) {
		if k == len(elems) {
			cp := make([]int, len(elems))
			copy(cp, elems)
			result = append(result, cp)
			return
		}
		for i := k; i < len(elems); i++ {
			elems[k], elems[i] = elems[i], elems[k]
			permute(k + 1)
			elems[k], elems[i] = elems[i], elems[k]
		}
	}
	permute(0)
	return result
}
