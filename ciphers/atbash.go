package ciphers

import (
	"math/rand"

	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/errs"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/stats"
)

const atbashKeyMarker = "atbash"

// AtbashEngine implements the self-inverse mapping i <-> 25-i. It has exactly one
// candidate and one valid key: the literal marker "atbash" (spec.md §6).
type AtbashEngine struct{}

func (AtbashEngine) Type() string { return TypeAtbash }

func (AtbashEngine) Detect(p stats.Profile) float64 {
	if p.IndexOfCoincidence > 0.05 {
		return 0.3
	}
	return 0.1
}

func (e AtbashEngine) AttemptDecrypt(ciphertext string, _ stats.Profile, opts Options) []Candidate {
	plain := atbashTransform(ciphertext)
	score, _ := scoreText(plain, opts)
	return []Candidate{{
		Plaintext:     plain,
		CipherType:    TypeAtbash,
		Key:           atbashKeyMarker,
		Method:        "fixed_mapping",
		InternalScore: score,
	}}
}

func (e AtbashEngine) DecryptWithKey(ciphertext string, key string) (KeyResult, error) {
	if key != atbashKeyMarker {
		return KeyResult{}, errs.ErrInvalidKey
	}
	plain := atbashTransform(ciphertext)
	return KeyResult{Plaintext: plain, Key: key, Confidence: 1.0, Explanation: e.Explain(ciphertext, plain, key)}, nil
}

func (e AtbashEngine) FindKeyAndDecrypt(ciphertext string, p stats.Profile, opts Options) (KeyResult, error) {
	cands := e.AttemptDecrypt(ciphertext, p, opts)
	best := cands[0]
	return KeyResult{Plaintext: best.Plaintext, Key: best.Key, Confidence: 1.0, Explanation: e.Explain(ciphertext, best.Plaintext, best.Key)}, nil
}

func (AtbashEngine) Encrypt(plaintext string, key string) (string, error) {
	if key != atbashKeyMarker {
		return "", errs.ErrInvalidKey
	}
	return atbashTransform(plaintext), nil
}

func (AtbashEngine) GenerateRandomKey(_ *rand.Rand) string { return atbashKeyMarker }

func (AtbashEngine) ValidateKey(key string) bool { return key == atbashKeyMarker }

func (AtbashEngine) Explain(_, _, _ string) string {
	return "Atbash cipher: letter at index i maps to letter at index 25-i"
}

func atbashTransform(text string) string {
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		out[i] = byte('A' + (25 - int(text[i]-'A')))
	}
	return string(out)
}

// ROT13Engine is Caesar(13), self-inverse. Key serializes the same way Caesar's
// does (spec.md §6); since the shift is fixed, DecryptWithKey/Encrypt accept only
// "13" or an empty key and reject anything else with ErrInvalidKey.
type ROT13Engine struct{}

func (ROT13Engine) Type() string { return TypeROT13 }

func (ROT13Engine) Detect(p stats.Profile) float64 {
	if p.IndexOfCoincidence > 0.05 {
		return 0.3
	}
	return 0.1
}

func (e ROT13Engine) AttemptDecrypt(ciphertext string, _ stats.Profile, opts Options) []Candidate {
	plain := caesarShift(ciphertext, -13)
	score, _ := scoreText(plain, opts)
	return []Candidate{{
		Plaintext:     plain,
		CipherType:    TypeROT13,
		Key:           "13",
		Method:        "fixed_mapping",
		InternalScore: score,
	}}
}

func (e ROT13Engine) DecryptWithKey(ciphertext string, key string) (KeyResult, error) {
	if !e.ValidateKey(key) {
		return KeyResult{}, errs.ErrInvalidKey
	}
	plain := caesarShift(ciphertext, -13)
	return KeyResult{Plaintext: plain, Key: "13", Confidence: 1.0, Explanation: e.Explain(ciphertext, plain, key)}, nil
}

func (e ROT13Engine) FindKeyAndDecrypt(ciphertext string, p stats.Profile, opts Options) (KeyResult, error) {
	cands := e.AttemptDecrypt(ciphertext, p, opts)
	best := cands[0]
	return KeyResult{Plaintext: best.Plaintext, Key: best.Key, Confidence: 1.0, Explanation: e.Explain(ciphertext, best.Plaintext, best.Key)}, nil
}

func (ROT13Engine) Encrypt(plaintext string, key string) (string, error) {
	if key != "" && key != "13" {
		return "", errs.ErrInvalidKey
	}
	return caesarShift(plaintext, 13), nil
}

func (ROT13Engine) GenerateRandomKey(_ *rand.Rand) string { return "13" }

func (ROT13Engine) ValidateKey(key string) bool { return key == "" || key == "13" }

func (ROT13Engine) Explain(_, _, _ string) string {
	return "ROT13 cipher: Caesar shift of 13, self-inverse"
}
