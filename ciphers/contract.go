// Package ciphers implements the cipher engine contract (C4) and the concrete
// algorithms for Caesar, Affine, Atbash, ROT13, Simple Substitution (hill-climbing),
// Vigenère, Beaufort, Autokey, Rail Fence and Columnar Transposition.
//
// Every engine is stateless; state that would normally live on an engine instance
// (e.g. a cached permutation) is instead threaded through call arguments, so a
// single Engine value can be safely shared and called concurrently (spec.md §5).
package ciphers

import (
	"math/rand"
	"sort"

	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/language"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/stats"
)

// Cipher type identifiers, used as registry keys and in wire/key serialization.
const (
	TypeCaesar             = "caesar"
	TypeAffine             = "affine"
	TypeAtbash             = "atbash"
	TypeROT13              = "rot13"
	TypeSimpleSubstitution = "simple_substitution"
	TypeVigenere           = "vigenere"
	TypeBeaufort           = "beaufort"
	TypeAutokey            = "autokey"
	TypeRailFence          = "rail_fence"
	TypeColumnar           = "columnar"
)

// Candidate is a raw decryption candidate produced by an engine's AttemptDecrypt,
// before the multi-language scorer attaches per-language scores.
type Candidate struct {
	Plaintext  string
	CipherType string
	Key        string
	Method     string
	// InternalScore is the engine's own ascending-is-better ranking signal
	// (e.g. combined language score for the key it tried). AttemptDecrypt's
	// returned slice is sorted ascending by this field.
	InternalScore float64
}

// KeyResult is the outcome of DecryptWithKey / FindKeyAndDecrypt.
type KeyResult struct {
	Plaintext   string
	Key         string
	Confidence  float64
	Explanation string
}

// Options configures cryptanalysis across every engine. Engines substitute the
// DefaultOptions value for any zero-valued limit and a seeded source for a nil
// Rand; start from DefaultOptions and override as needed.
type Options struct {
	MaxKeyLength        int
	MaxRails            int
	HillClimbIterations int
	HillClimbRestarts   int

	// TargetLanguage, when non-nil, pins the per-column Caesar solve in
	// Vigenère/Beaufort (and the hill-climb fitness function) to a single
	// reference language instead of taking the argmin across all of them.
	TargetLanguage *language.Language

	// Rand is the pseudo-random stream used by hill-climbing restarts and
	// Columnar's random-permutation sampling. A fixed
	// seed makes results reproducible for property tests.
	Rand *rand.Rand

	// Cancel, when non-nil and closed, asks long-running engines to stop early
	// and return whatever candidates they have. Checked cooperatively, never
	// preemptively.
	Cancel <-chan struct{}
}

// DefaultOptions returns the facade's documented defaults (spec.md §4.8), seeded
// deterministically so repeated calls without an explicit seed are reproducible.
func DefaultOptions() Options {
	return Options{
		MaxKeyLength:        15,
		MaxRails:            10,
		HillClimbIterations: 5000,
		HillClimbRestarts:   10,
		TargetLanguage:      nil,
		Rand:                rand.New(rand.NewSource(1)),
		Cancel:              nil,
	}
}

// cancelled reports whether opts.Cancel has fired.
func cancelled(opts Options) bool {
	if opts.Cancel == nil {
		return false
	}
	select {
	case <-opts.Cancel:
		return true
	default:
		return false
	}
}

// scoreText scores canon against opts.TargetLanguage when set, else the argmin
// across all reference languages; it returns the combined score (lower is better)
// and the language it was scored against.
func scoreText(canon string, opts Options) (float64, language.Language) {
	if opts.TargetLanguage != nil {
		return language.Combined(canon, *opts.TargetLanguage), *opts.TargetLanguage
	}
	scores, best := language.Score(canon)
	return scores[best].Combined, best
}

// Engine is the uniform per-cipher capability set (spec.md §4.4, §9).
type Engine interface {
	// Type returns this engine's registry key.
	Type() string

	// Detect returns a heuristic applicability score in [0,1] from a statistics profile.
	Detect(p stats.Profile) float64

	// AttemptDecrypt tries to break ciphertext without a known key, returning up to
	// 5 candidates sorted ascending by InternalScore. Never returns an error; a
	// cipher that fails to find anything plausible returns an empty slice.
	AttemptDecrypt(ciphertext string, p stats.Profile, opts Options) []Candidate

	// DecryptWithKey decrypts ciphertext using an explicitly supplied, serialized key.
	DecryptWithKey(ciphertext string, key string) (KeyResult, error)

	// FindKeyAndDecrypt wraps AttemptDecrypt and returns its single best result.
	FindKeyAndDecrypt(ciphertext string, p stats.Profile, opts Options) (KeyResult, error)

	// Encrypt encrypts plaintext (assumed already canonicalized) with key.
	Encrypt(plaintext string, key string) (string, error)

	// GenerateRandomKey produces a uniformly random valid key using rng.
	GenerateRandomKey(rng *rand.Rand) string

	// ValidateKey reports whether key is well-formed and usable by this engine.
	ValidateKey(key string) bool

	// Explain produces a short human-readable description of how key transforms
	// ciphertext into plaintext (or vice versa).
	Explain(ciphertext, plaintext, key string) string
}

// topN sorts candidates ascending by InternalScore and keeps at most n.
func topN(cands []Candidate, n int) []Candidate {
	sortCandidates(cands)
	if len(cands) > n {
		cands = cands[:n]
	}
	return cands
}

func sortCandidates(cands []Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].InternalScore < cands[j].InternalScore
	})
}
