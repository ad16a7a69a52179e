package ciphers

import (
	"math"
	"math/rand"

	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/errs"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/language"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/stats"
)

// plaintextFrequencyOrder is the classic English letter-frequency ranking used to
// seed the hill climber's initial guess (spec.md §4.4).
var plaintextFrequencyOrder = []byte("ETAOINSHRDLCUMWFGYPBVKJXQZ")

// SimpleSubstitutionEngine implements an arbitrary 26-letter monoalphabetic
// substitution, solved by hill-climbing over the space of permutations. Key
// serializes as a 26-character A-Z permutation string, index i = plaintext letter
// i, value = the ciphertext letter it encrypts to (spec.md §6).
type SimpleSubstitutionEngine struct{}

func (SimpleSubstitutionEngine) Type() string { return TypeSimpleSubstitution }

func (SimpleSubstitutionEngine) Detect(p stats.Profile) float64 {
	if p.IndexOfCoincidence > 0.06 {
		return 0.5
	}
	return 0.2
}

// AttemptDecrypt runs the hill climber and returns exactly one candidate
// (spec.md §4.4), unless the ciphertext is empty.
func (e SimpleSubstitutionEngine) AttemptDecrypt(ciphertext string, p stats.Profile, opts Options) []Candidate {
	if len(ciphertext) == 0 {
		return nil
	}
	plain, key, score := hillClimb(ciphertext, p, opts)
	return []Candidate{{
		Plaintext:     plain,
		CipherType:    TypeSimpleSubstitution,
		Key:           key,
		Method:        "hill_climb",
		InternalScore: score,
	}}
}

func (e SimpleSubstitutionEngine) DecryptWithKey(ciphertext string, key string) (KeyResult, error) {
	if !e.ValidateKey(key) {
		return KeyResult{}, errs.ErrInvalidKey
	}
	decKey := decryptionKeyFromEncryptionKey([]byte(key))
	plain := applyDecryptionKey(ciphertext, decKey)
	return KeyResult{Plaintext: plain, Key: key, Confidence: 1.0, Explanation: e.Explain(ciphertext, plain, key)}, nil
}

func (e SimpleSubstitutionEngine) FindKeyAndDecrypt(ciphertext string, p stats.Profile, opts Options) (KeyResult, error) {
	cands := e.AttemptDecrypt(ciphertext, p, opts)
	if len(cands) == 0 {
		return KeyResult{}, errs.ErrDecryptionFailed
	}
	best := cands[0]
	return KeyResult{Plaintext: best.Plaintext, Key: best.Key, Confidence: 1.0, Explanation: e.Explain(ciphertext, best.Plaintext, best.Key)}, nil
}

func (e SimpleSubstitutionEngine) Encrypt(plaintext string, key string) (string, error) {
	if !e.ValidateKey(key) {
		return "", errs.ErrInvalidKey
	}
	out := make([]byte, len(plaintext))
	for i := 0; i < len(plaintext); i++ {
		out[i] = key[plaintext[i]-'A']
	}
	return string(out), nil
}

func (SimpleSubstitutionEngine) GenerateRandomKey(rng *rand.Rand) string {
	perm := rng.Perm(26)
	out := make([]byte, 26)
	for i, v := range perm {
		out[i] = byte('A' + v)
	}
	return string(out)
}

func (SimpleSubstitutionEngine) ValidateKey(key string) bool {
	if len(key) != 26 {
		return false
	}
	var seen [26]bool
	for i := 0; i < 26; i++ {
		c := key[i]
		if c < 'A' || c > 'Z' || seen[c-'A'] {
			return false
		}
		seen[c-'A'] = true
	}
	return true
}

func (SimpleSubstitutionEngine) Explain(_, _, key string) string {
	return "Simple substitution cipher: plaintext letter i encrypts to key[i] = " + key
}

// decryptionKeyFromEncryptionKey inverts a 26-char encryption permutation (index =
// plaintext letter) into a decryption table (index = ciphertext letter).
func decryptionKeyFromEncryptionKey(encKey []byte) [26]byte {
	var dec [26]byte
	for plainIdx, cipherLetter := range encKey {
		dec[cipherLetter-'A'] = byte('A' + plainIdx)
	}
	return dec
}

// encryptionKeyFromDecryptionKey is the left inverse of decryptionKeyFromEncryptionKey.
func encryptionKeyFromDecryptionKey(dec [26]byte) string {
	var enc [26]byte
	for cipherIdx, plainLetter := range dec {
		enc[plainLetter-'A'] = byte('A' + cipherIdx)
	}
	return string(enc[:])
}

func applyDecryptionKey(ciphertext string, dec [26]byte) string {
	out := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i++ {
		out[i] = dec[ciphertext[i]-'A']
	}
	return string(out)
}

// initialDecryptionKeyGuess maps the observed ciphertext's letter-frequency order
// (most frequent first, ties alphabetical, letters absent from the ciphertext
// appended alphabetically to complete the permutation) onto plaintextFrequencyOrder.
func initialDecryptionKeyGuess(p stats.Profile) [26]byte {
	var used [26]bool
	order := make([]byte, 0, 26)
	for _, f := range p.CharacterFrequencies {
		order = append(order, f.Letter)
		used[f.Letter-'A'] = true
	}
	for c := byte('A'); c <= 'Z'; c++ {
		if !used[c-'A'] {
			order = append(order, c)
		}
	}

	var dec [26]byte
	for i, cipherLetter := range order {
		dec[cipherLetter-'A'] = plaintextFrequencyOrder[i]
	}
	return dec
}

// hillClimb runs R independent restarts of 2-swap local search, each starting from
// the same frequency-order guess, and returns the best (plaintext, key, score) found.
func hillClimb(ciphertext string, p stats.Profile, opts Options) (string, string, float64) {
	restarts := opts.HillClimbRestarts
	if restarts <= 0 {
		restarts = 10
	}
	iterations := opts.HillClimbIterations
	if iterations <= 0 {
		iterations = 5000
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	initial := initialDecryptionKeyGuess(p)

	bestFitness := math.Inf(-1)
	var bestDecKey [26]byte
	var bestPlain string

	patience := iterations / 10
	if patience < 1 {
		patience = 1
	}

	for r := 0; r < restarts; r++ {
		decKey := initial
		plain := applyDecryptionKey(ciphertext, decKey)
		_, lang := scoreText(plain, opts)
		fitness := -language.Combined(plain, lang)
		noImprovement := 0

		for iter := 0; iter < iterations; iter++ {
			if iter%256 == 0 && cancelled(opts) {
				break
			}
			i := rng.Intn(26)
			j := rng.Intn(25)
			if j >= i {
				j++
			}

			decKey[i], decKey[j] = decKey[j], decKey[i]
			candidatePlain := applyDecryptionKey(ciphertext, decKey)
			candidateFitness := -language.Combined(candidatePlain, lang)

			if candidateFitness > fitness {
				fitness = candidateFitness
				plain = candidatePlain
				noImprovement = 0
			} else {
				decKey[i], decKey[j] = decKey[j], decKey[i]
				noImprovement++
			}

			if noImprovement >= patience {
				break
			}
		}

		if fitness > bestFitness {
			bestFitness = fitness
			bestDecKey = decKey
			bestPlain = plain
		}
	}

	bestKey := encryptionKeyFromDecryptionKey(bestDecKey)
	return bestPlain, bestKey, -bestFitness
}
