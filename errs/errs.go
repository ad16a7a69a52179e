// Package errs defines the sentinel error kinds surfaced across the cryptanalysis
// pipeline's three user-driven operations (analyze, decrypt, encrypt).
//
// Engine-local failures inside attempt_decrypt are never wrapped in these kinds;
// they are recovered by the orchestrator and folded into its reasoning log instead.
package errs

import "errors"

// Sentinel kinds. Use errors.Is against these after wrapping with fmt.Errorf("...: %w", ...).
var (
	// ErrInputTooLong means the caller-supplied ciphertext/plaintext exceeded MaxCiphertextLength.
	ErrInputTooLong = errors.New("input exceeds maximum allowed length")

	// ErrUnsupportedCipher means decrypt/encrypt was called with a cipher type the registry does not know.
	ErrUnsupportedCipher = errors.New("unsupported cipher type")

	// ErrInvalidKey means a supplied key failed the engine's own validation (bad Affine a, non-permutation
	// substitution key, non-invertible transposition ordering, and so on).
	ErrInvalidKey = errors.New("invalid key for cipher")

	// ErrDecryptionFailed means find_key_and_decrypt produced no candidate on a non-empty ciphertext.
	ErrDecryptionFailed = errors.New("decryption produced no candidate")
)
