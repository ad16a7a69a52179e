// Package pipeline is the facade (C8): a single entry point composing
// statistics, classification, orchestration, scoring and filtering behind
// three operations — Analyze, Decrypt, Encrypt (spec.md §4.8, §6).
package pipeline

import (
	"fmt"
	"math/rand"

	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/ciphers"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/errs"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/language"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/orchestrate"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/registry"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/stats"
)

// MaxCiphertextLength is the facade's default input length cap (spec.md §6).
const MaxCiphertextLength = 100000

// Options configures every facade operation. Zero-valued limits and a nil
// Rand fall back to the DefaultOptions values; start from DefaultOptions.
type Options struct {
	MaxCiphertextLength int
	MaxKeyLength        int
	MaxRails            int
	HillClimbIterations int
	HillClimbRestarts   int
	TargetLanguage      *language.Language
	Rand                *rand.Rand
	Cancel              <-chan struct{}
}

// DefaultOptions mirrors ciphers.DefaultOptions with the facade's own input
// length cap layered on top.
func DefaultOptions() Options {
	base := ciphers.DefaultOptions()
	return Options{
		MaxCiphertextLength: MaxCiphertextLength,
		MaxKeyLength:        base.MaxKeyLength,
		MaxRails:            base.MaxRails,
		HillClimbIterations: base.HillClimbIterations,
		HillClimbRestarts:   base.HillClimbRestarts,
		TargetLanguage:      base.TargetLanguage,
		Rand:                base.Rand,
		Cancel:              base.Cancel,
	}
}

func (o Options) toEngineOptions() ciphers.Options {
	opts := ciphers.DefaultOptions()
	if o.MaxKeyLength > 0 {
		opts.MaxKeyLength = o.MaxKeyLength
	}
	if o.MaxRails > 0 {
		opts.MaxRails = o.MaxRails
	}
	if o.HillClimbIterations > 0 {
		opts.HillClimbIterations = o.HillClimbIterations
	}
	if o.HillClimbRestarts > 0 {
		opts.HillClimbRestarts = o.HillClimbRestarts
	}
	opts.TargetLanguage = o.TargetLanguage
	if o.Rand != nil {
		opts.Rand = o.Rand
	}
	opts.Cancel = o.Cancel
	return opts
}

func (o Options) maxLength() int {
	if o.MaxCiphertextLength > 0 {
		return o.MaxCiphertextLength
	}
	return MaxCiphertextLength
}

// DecryptionResult is the outcome of Decrypt, covering both the known-key and
// search paths.
type DecryptionResult struct {
	Plaintext    string
	CipherType   string
	Key          string
	Confidence   float64
	Explanation  string
	BestLanguage language.Language
}

// Analyze canonicalizes ciphertext and runs the full C1->C6 pipeline.
func Analyze(ciphertext string, opts Options) (orchestrate.OrchestrationResult, error) {
	if len(ciphertext) > opts.maxLength() {
		return orchestrate.OrchestrationResult{}, fmt.Errorf("analyze: %w", errs.ErrInputTooLong)
	}
	canon := stats.Canonicalize(ciphertext)
	return orchestrate.Analyze(canon, opts.toEngineOptions()), nil
}

// Decrypt looks up cipherType in the registry and either decrypts with the
// supplied key or searches for one (spec.md §6).
func Decrypt(ciphertext string, cipherType string, key string, opts Options) (DecryptionResult, error) {
	if len(ciphertext) > opts.maxLength() {
		return DecryptionResult{}, fmt.Errorf("decrypt: %w", errs.ErrInputTooLong)
	}
	eng, ok := registry.GetEngine(cipherType)
	if !ok {
		return DecryptionResult{}, fmt.Errorf("decrypt: %w", errs.ErrUnsupportedCipher)
	}

	canon := stats.Canonicalize(ciphertext)

	if key != "" {
		res, err := eng.DecryptWithKey(canon, key)
		if err != nil {
			return DecryptionResult{}, fmt.Errorf("decrypt: %w", err)
		}
		return toDecryptionResult(cipherType, res), nil
	}

	profile := stats.Compute(canon)
	res, err := eng.FindKeyAndDecrypt(canon, profile, opts.toEngineOptions())
	if err != nil {
		return DecryptionResult{}, fmt.Errorf("decrypt: %w", err)
	}
	return toDecryptionResult(cipherType, res), nil
}

// Encrypt looks up cipherType in the registry and encrypts plaintext with key.
func Encrypt(plaintext string, cipherType string, key string) (string, error) {
	if len(plaintext) > MaxCiphertextLength {
		return "", fmt.Errorf("encrypt: %w", errs.ErrInputTooLong)
	}
	eng, ok := registry.GetEngine(cipherType)
	if !ok {
		return "", fmt.Errorf("encrypt: %w", errs.ErrUnsupportedCipher)
	}
	canon := stats.Canonicalize(plaintext)
	out, err := eng.Encrypt(canon, key)
	if err != nil {
		return "", fmt.Errorf("encrypt: %w", err)
	}
	return out, nil
}

func toDecryptionResult(cipherType string, res ciphers.KeyResult) DecryptionResult {
	_, best := language.Score(res.Plaintext)
	return DecryptionResult{
		Plaintext:    res.Plaintext,
		CipherType:   cipherType,
		Key:          res.Key,
		Confidence:   res.Confidence,
		Explanation:  res.Explanation,
		BestLanguage: best,
	}
}
