package ciphers

import (
	"math/rand"

	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/errs"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/stats"
)

// BeaufortEngine implements c_i = k_{i mod L} - p_i (mod 26). It is self-inverse:
// applying the same transform twice recovers the original text. Key serializes as
// an uppercase alphabetic word (spec.md §6).
type BeaufortEngine struct{}

func (BeaufortEngine) Type() string { return TypeBeaufort }

func (BeaufortEngine) Detect(p stats.Profile) float64 {
	switch {
	case p.IndexOfCoincidence < 0.045:
		return 0.6
	case p.IndexOfCoincidence < 0.055:
		return 0.35
	default:
		return 0.15
	}
}

func (e BeaufortEngine) AttemptDecrypt(ciphertext string, p stats.Profile, opts Options) []Candidate {
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
		key := solveBeaufortKeyForLength(ciphertext, l, opts)
		plain := beaufortTransform(ciphertext, key)
		score, _ := scoreText(plain, opts)
		cands = append(cands, Candidate{
			Plaintext:     plain,
			CipherType:    TypeBeaufort,
			Key:           key,
			Method:        "kasiski_ioc_column_solve",
			InternalScore: score,
		})
	}

	for _, key := range commonPolyalphabeticKeys {
		plain := beaufortTransform(ciphertext, key)
		score, _ := scoreText(plain, opts)
		cands = append(cands, Candidate{
			Plaintext:     plain,
			CipherType:    TypeBeaufort,
			Key:           key,
			Method:        "common_key_dictionary",
			InternalScore: score,
		})
	}

	return topN(cands, 5)
}

func solveBeaufortKeyForLength(ciphertext string, length int, opts Options) string {
	columns := splitColumns(ciphertext, length)
	key := make([]byte, length)
	for i, col := range columns {
		shift := solveColumnShift(col, opts, beaufortColumnDecrypt)
		key[i] = byte('A' + shift)
	}
	return string(key)
}

func (e BeaufortEngine) DecryptWithKey(ciphertext string, key string) (KeyResult, error) {
	if !e.ValidateKey(key) {
		return KeyResult{}, errs.ErrInvalidKey
	}
	plain := beaufortTransform(ciphertext, key)
	return KeyResult{Plaintext: plain, Key: key, Confidence: 1.0, Explanation: e.Explain(ciphertext, plain, key)}, nil
}

func (e BeaufortEngine) FindKeyAndDecrypt(ciphertext string, p stats.Profile, opts Options) (KeyResult, error) {
	cands := e.AttemptDecrypt(ciphertext, p, opts)
	if len(cands) == 0 {
		return KeyResult{}, errs.ErrDecryptionFailed
	}
	best := cands[0]
	return KeyResult{Plaintext: best.Plaintext, Key: best.Key, Confidence: 1.0, Explanation: e.Explain(ciphertext, best.Plaintext, best.Key)}, nil
}

func (e BeaufortEngine) Encrypt(plaintext string, key string) (string, error) {
	if !e.ValidateKey(key) {
		return "", errs.ErrInvalidKey
	}
	return beaufortTransform(plaintext, key), nil
}

func (BeaufortEngine) GenerateRandomKey(rng *rand.Rand) string {
	return randomKeyWord(rng, 1+rng.Intn(10))
}

func (BeaufortEngine) ValidateKey(key string) bool {
	return onlyUpperAZ(key)
}

func (BeaufortEngine) Explain(_, _, key string) string {
	return "Beaufort cipher: c = key - plaintext (mod 26), self-inverse, key " + key
}

// beaufortTransform is its own inverse: encrypt(p,k)=decrypt(c,k).
func beaufortTransform(text string, key string) string {
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		k := int(key[i%len(key)] - 'A')
		out[i] = byte('A' + mod26(k-int(text[i]-'A')))
	}
	return string(out)
}
