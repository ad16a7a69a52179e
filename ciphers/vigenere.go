package ciphers

import (
	"math/rand"

	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/errs"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/stats"
)

// VigenereEngine implements c_i = p_i + k_{i mod L} (mod 26). Key serializes as an
// uppercase alphabetic word (spec.md §6).
type VigenereEngine struct{}

func (VigenereEngine) Type() string { return TypeVigenere }

func (VigenereEngine) Detect(p stats.Profile) float64 {
	switch {
	case p.IndexOfCoincidence < 0.045:
		return 0.7
	case p.IndexOfCoincidence < 0.055:
		return 0.4
	default:
		return 0.15
	}
}

func (e VigenereEngine) AttemptDecrypt(ciphertext string, p stats.Profile, opts Options) []Candidate {
	maxKeyLength := opts.MaxKeyLength
	if maxKeyLength <= 0 {
		maxKeyLength = 15
	}

	lengths := estimateKeyLengths(ciphertext, p, maxKeyLength)
	if len(lengths) > 5 {
		lengths = lengths[:5]
	}

	var cands []Candidate
	for _, l := range lengths {
		if cancelled(opts) {
			break
		}
		key := solveVigenereKeyForLength(ciphertext, l, opts)
		plain := vigenereDecrypt(ciphertext, key)
		score, _ := scoreText(plain, opts)
		cands = append(cands, Candidate{
			Plaintext:     plain,
			CipherType:    TypeVigenere,
			Key:           key,
			Method:        "kasiski_ioc_column_solve",
			InternalScore: score,
		})
	}

	for _, key := range commonPolyalphabeticKeys {
		plain := vigenereDecrypt(ciphertext, key)
		score, _ := scoreText(plain, opts)
		cands = append(cands, Candidate{
			Plaintext:     plain,
			CipherType:    TypeVigenere,
			Key:           key,
			Method:        "common_key_dictionary",
			InternalScore: score,
		})
	}

	return topN(cands, 5)
}

func solveVigenereKeyForLength(ciphertext string, length int, opts Options) string {
	columns := splitColumns(ciphertext, length)
	key := make([]byte, length)
	for i, col := range columns {
		shift := solveColumnShift(col, opts, vigenereColumnDecrypt)
		key[i] = byte('A' + shift)
	}
	return string(key)
}

func (e VigenereEngine) DecryptWithKey(ciphertext string, key string) (KeyResult, error) {
	if !e.ValidateKey(key) {
		return KeyResult{}, errs.ErrInvalidKey
	}
	plain := vigenereDecrypt(ciphertext, key)
	return KeyResult{Plaintext: plain, Key: key, Confidence: 1.0, Explanation: e.Explain(ciphertext, plain, key)}, nil
}

func (e VigenereEngine) FindKeyAndDecrypt(ciphertext string, p stats.Profile, opts Options) (KeyResult, error) {
	cands := e.AttemptDecrypt(ciphertext, p, opts)
	if len(cands) == 0 {
		return KeyResult{}, errs.ErrDecryptionFailed
	}
	best := cands[0]
	return KeyResult{Plaintext: best.Plaintext, Key: best.Key, Confidence: 1.0, Explanation: e.Explain(ciphertext, best.Plaintext, best.Key)}, nil
}

func (e VigenereEngine) Encrypt(plaintext string, key string) (string, error) {
	if !e.ValidateKey(key) {
		return "", errs.ErrInvalidKey
	}
	out := make([]byte, len(plaintext))
	for i := 0; i < len(plaintext); i++ {
		k := int(key[i%len(key)] - 'A')
		out[i] = shiftLetter(plaintext[i], k)
	}
	return string(out), nil
}

func (VigenereEngine) GenerateRandomKey(rng *rand.Rand) string {
	return randomKeyWord(rng, 1+rng.Intn(10))
}

func (VigenereEngine) ValidateKey(key string) bool {
	return onlyUpperAZ(key)
}

func (VigenereEngine) Explain(_, _, key string) string {
	return "Vigenere cipher: each letter shifted by the repeating key word " + key
}

func vigenereDecrypt(ciphertext string, key string) string {
	out := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i++ {
		k := int(key[i%len(key)] - 'A')
		out[i] = shiftLetter(ciphertext[i], -k)
	}
	return string(out)
}

func randomKeyWord(rng *rand.Rand, length int) string {
	out := make([]byte, length)
	for i := range out {
		out[i] = byte('A' + rng.Intn(26))
	}
	return string(out)
}
