package ciphers

import (
	"math/rand"

	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/errs"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/stats"
)

var autokeyNamedPrimers = []string{"KEY", "SECRET", "THE", "CODE", "CIPHER"}

// restrictedAutokeyAlphabet is used for primer lengths 3-5, where exhaustive search
// over all 26^L combinations would be impractical (spec.md §4.4).
var restrictedAutokeyAlphabet = []byte{'E', 'T', 'A', 'O'}

// AutokeyEngine implements keystream = primer || plaintext; c_i = p_i + keystream_i
// (mod 26). Key serializes as the primer, an uppercase alphabetic word (spec.md §6).
type AutokeyEngine struct{}

func (AutokeyEngine) Type() string { return TypeAutokey }

func (AutokeyEngine) Detect(p stats.Profile) float64 {
	switch {
	case p.IndexOfCoincidence < 0.05:
		return 0.45
	default:
		return 0.15
	}
}

func (e AutokeyEngine) AttemptDecrypt(ciphertext string, _ stats.Profile, opts Options) []Candidate {
	var cands []Candidate
	for _, primer := range autokeyPrimerCandidates() {
		if cancelled(opts) {
			break
		}
		if len(primer) > len(ciphertext) {
			continue
		}
		plain := autokeyDecrypt(ciphertext, primer)
		score, _ := scoreText(plain, opts)
		cands = append(cands, Candidate{
			Plaintext:     plain,
			CipherType:    TypeAutokey,
			Key:           primer,
			Method:        "primer_search",
			InternalScore: score,
		})
	}
	return topN(cands, 5)
}

func autokeyPrimerCandidates() []string {
	var primers []string
	for c := byte('A'); c <= 'Z'; c++ {
		primers = append(primers, string(c))
	}
	primers = append(primers, autokeyNamedPrimers...)

	// Lengths 1 and 2: exhaustive.
	for a := byte('A'); a <= 'Z'; a++ {
		for b := byte('A'); b <= 'Z'; b++ {
			primers = append(primers, string([]byte{a, b}))
		}
	}

	// Lengths 3-5: restricted alphabet.
	for length := 3; length <= 5; length++ {
		primers = append(primers, combinations(restrictedAutokeyAlphabet, length)...)
	}

	return primers
}

// combinations enumerates every string of the given length drawn from alphabet,
// in lexicographic order of alphabet's index positions.
func combinations(alphabet []byte, length int) []string {
	if length == 0 {
		return []string{""}
	}
	total := 1
	for i := 0; i < length; i++ {
		total *= len(alphabet)
	}
	out := make([]string, total)
	buf := make([]byte, length)
	for i := 0; i < total; i++ {
		rem := i
		for pos := length - 1; pos >= 0; pos-- {
			buf[pos] = alphabet[rem%len(alphabet)]
			rem /= len(alphabet)
		}
		out[i] = string(buf)
	}
	return out
}

func (e AutokeyEngine) DecryptWithKey(ciphertext string, key string) (KeyResult, error) {
	if !e.ValidateKey(key) {
		return KeyResult{}, errs.ErrInvalidKey
	}
	plain := autokeyDecrypt(ciphertext, key)
	return KeyResult{Plaintext: plain, Key: key, Confidence: 1.0, Explanation: e.Explain(ciphertext, plain, key)}, nil
}

func (e AutokeyEngine) FindKeyAndDecrypt(ciphertext string, p stats.Profile, opts Options) (KeyResult, error) {
	cands := e.AttemptDecrypt(ciphertext, p, opts)
	if len(cands) == 0 {
		return KeyResult{}, errs.ErrDecryptionFailed
	}
	best := cands[0]
	return KeyResult{Plaintext: best.Plaintext, Key: best.Key, Confidence: 1.0, Explanation: e.Explain(ciphertext, best.Plaintext, best.Key)}, nil
}

func (e AutokeyEngine) Encrypt(plaintext string, key string) (string, error) {
	if !e.ValidateKey(key) {
		return "", errs.ErrInvalidKey
	}
	return autokeyEncrypt(plaintext, key), nil
}

func (AutokeyEngine) GenerateRandomKey(rng *rand.Rand) string {
	return randomKeyWord(rng, 1+rng.Intn(5))
}

func (AutokeyEngine) ValidateKey(key string) bool {
	return onlyUpperAZ(key)
}

func (AutokeyEngine) Explain(_, _, key string) string {
	return "Autokey cipher: keystream is the primer " + key + " followed by the plaintext itself"
}

func autokeyEncrypt(plaintext string, primer string) string {
	keystream := []byte(primer)
	out := make([]byte, len(plaintext))
	for i := 0; i < len(plaintext); i++ {
		k := int(keystream[i] - 'A')
		out[i] = shiftLetter(plaintext[i], k)
		keystream = append(keystream, plaintext[i])
	}
	return string(out)
}

func autokeyDecrypt(ciphertext string, primer string) string {
	keystream := []byte(primer)
	out := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i++ {
		k := int(keystream[i] - 'A')
		p := shiftLetter(ciphertext[i], -k)
		out[i] = p
		keystream = append(keystream, p)
	}
	return string(out)
}
