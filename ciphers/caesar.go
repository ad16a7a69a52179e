package ciphers

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/errs"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/stats"
)

// CaesarEngine implements the classic shift cipher. Key serializes as a decimal
// integer in [0,25] (spec.md §6).
type CaesarEngine struct{}

func (CaesarEngine) Type() string { return TypeCaesar }

func (CaesarEngine) Detect(p stats.Profile) float64 {
	switch {
	case p.IndexOfCoincidence > 0.06:
		return 0.7
	case p.IndexOfCoincidence > 0.05:
		return 0.4
	default:
		return 0.1
	}
}

func (e CaesarEngine) AttemptDecrypt(ciphertext string, _ stats.Profile, opts Options) []Candidate {
	var cands []Candidate
	for shift := 0; shift < 26; shift++ {
		plain := caesarShift(ciphertext, -shift)
		score, _ := scoreText(plain, opts)
		cands = append(cands, Candidate{
			Plaintext:     plain,
			CipherType:    TypeCaesar,
			Key:           strconv.Itoa(shift),
			Method:        "brute_force",
			InternalScore: score,
		})
	}
	return topN(cands, 5)
}

func (e CaesarEngine) DecryptWithKey(ciphertext string, key string) (KeyResult, error) {
	shift, err := parseCaesarKey(key)
	if err != nil {
		return KeyResult{}, err
	}
	plain := caesarShift(ciphertext, -shift)
	return KeyResult{
		Plaintext:   plain,
		Key:         key,
		Confidence:  1.0,
		Explanation: e.Explain(ciphertext, plain, key),
	}, nil
}

func (e CaesarEngine) FindKeyAndDecrypt(ciphertext string, p stats.Profile, opts Options) (KeyResult, error) {
	cands := e.AttemptDecrypt(ciphertext, p, opts)
	if len(cands) == 0 {
		return KeyResult{}, errs.ErrDecryptionFailed
	}
	best := cands[0]
	return KeyResult{
		Plaintext:   best.Plaintext,
		Key:         best.Key,
		Confidence:  1.0,
		Explanation: e.Explain(ciphertext, best.Plaintext, best.Key),
	}, nil
}

func (e CaesarEngine) Encrypt(plaintext string, key string) (string, error) {
	shift, err := parseCaesarKey(key)
	if err != nil {
		return "", err
	}
	return caesarShift(plaintext, shift), nil
}

func (CaesarEngine) GenerateRandomKey(rng *rand.Rand) string {
	return strconv.Itoa(rng.Intn(26))
}

func (CaesarEngine) ValidateKey(key string) bool {
	_, err := parseCaesarKey(key)
	return err == nil
}

func (CaesarEngine) Explain(_, _, key string) string {
	return fmt.Sprintf("Caesar cipher: every letter shifted by %s positions", key)
}

func parseCaesarKey(key string) (int, error) {
	shift, err := strconv.Atoi(key)
	if err != nil || shift < 0 || shift > 25 {
		return 0, errs.ErrInvalidKey
	}
	return shift, nil
}

func caesarShift(text string, shift int) string {
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		out[i] = shiftLetter(text[i], shift)
	}
	return string(out)
}
