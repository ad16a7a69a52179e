package ciphers

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/errs"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/stats"
)

// validAffineA lists the 12 values of 'a' coprime with 26.
var validAffineA = []int{1, 3, 5, 7, 9, 11, 15, 17, 19, 21, 23, 25}

// AffineEngine implements c = a*p + b mod 26. Key serializes as "a,b" (spec.md §6).
type AffineEngine struct{}

func (AffineEngine) Type() string { return TypeAffine }

func (AffineEngine) Detect(p stats.Profile) float64 {
	switch {
	case p.IndexOfCoincidence > 0.06:
		return 0.65
	case p.IndexOfCoincidence > 0.05:
		return 0.35
	default:
		return 0.1
	}
}

func (e AffineEngine) AttemptDecrypt(ciphertext string, _ stats.Profile, opts Options) []Candidate {
	var cands []Candidate
	for _, a := range validAffineA {
		aInv, _ := modInverse(a, 26)
		for b := 0; b < 26; b++ {
			plain := affineDecryptRaw(ciphertext, aInv, b)
			score, _ := scoreText(plain, opts)
			cands = append(cands, Candidate{
				Plaintext:     plain,
				CipherType:    TypeAffine,
				Key:           formatAffineKey(a, b),
				Method:        "brute_force",
				InternalScore: score,
			})
		}
	}
	return topN(cands, 5)
}

func (e AffineEngine) DecryptWithKey(ciphertext string, key string) (KeyResult, error) {
	a, b, err := parseAffineKey(key)
	if err != nil {
		return KeyResult{}, err
	}
	aInv, ok := modInverse(a, 26)
	if !ok {
		return KeyResult{}, errs.ErrInvalidKey
	}
	plain := affineDecryptRaw(ciphertext, aInv, b)
	return KeyResult{
		Plaintext:   plain,
		Key:         key,
		Confidence:  1.0,
		Explanation: e.Explain(ciphertext, plain, key),
	}, nil
}

func (e AffineEngine) FindKeyAndDecrypt(ciphertext string, p stats.Profile, opts Options) (KeyResult, error) {
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

func (e AffineEngine) Encrypt(plaintext string, key string) (string, error) {
	a, b, err := parseAffineKey(key)
	if err != nil {
		return "", err
	}
	out := make([]byte, len(plaintext))
	for i := 0; i < len(plaintext); i++ {
		p := int(plaintext[i] - 'A')
		out[i] = byte('A' + mod26(a*p+b))
	}
	return string(out), nil
}

func (AffineEngine) GenerateRandomKey(rng *rand.Rand) string {
	a := validAffineA[rng.Intn(len(validAffineA))]
	b := rng.Intn(26)
	return formatAffineKey(a, b)
}

func (AffineEngine) ValidateKey(key string) bool {
	a, _, err := parseAffineKey(key)
	if err != nil {
		return false
	}
	_, ok := modInverse(a, 26)
	return ok
}

func (AffineEngine) Explain(_, _, key string) string {
	a, b, _ := parseAffineKey(key)
	return fmt.Sprintf("Affine cipher: c = %d*p + %d (mod 26)", a, b)
}

func formatAffineKey(a, b int) string {
	return fmt.Sprintf("%d,%d", a, b)
}

func parseAffineKey(key string) (a, b int, err error) {
	parts := strings.Split(key, ",")
	if len(parts) != 2 {
		return 0, 0, errs.ErrInvalidKey
	}
	a, errA := strconv.Atoi(strings.TrimSpace(parts[0]))
	b, errB := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errA != nil || errB != nil || b < 0 || b > 25 {
		return 0, 0, errs.ErrInvalidKey
	}
	if gcd(a, 26) != 1 {
		return 0, 0, errs.ErrInvalidKey
	}
	return a, b, nil
}

func affineDecryptRaw(ciphertext string, aInv, b int) string {
	out := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i++ {
		c := int(ciphertext[i] - 'A')
		out[i] = byte('A' + mod26(aInv*(c-b)))
	}
	return string(out)
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// modInverse returns the modular multiplicative inverse of a mod m, and whether
// it exists (it exists iff gcd(a,m)=1).
func modInverse(a, m int) (int, bool) {
	a = mod26(a)
	if gcd(a, m) != 1 {
		return 0, false
	}
	for x := 1; x < m; x++ {
		if (a*x)%m == 1 {
			return x, true
		}
	}
	return 0, false
}
