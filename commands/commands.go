// Package commands factors the CLI's business logic out of main, mirroring
// the teacher's own commands/commands.go split: every function here takes
// plain Go values and returns (result, error), independent of cli.Context,
// so it is unit-testable without spawning a process (SPEC_FULL.md §4.10).
package commands

import (
	"fmt"
	"os"

	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/orchestrate"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/pipeline"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/secure"
)

// AnalyzeFile reads ciphertext from inpath and runs the pipeline facade's
// Analyze. When archivePath is non-empty, the result is additionally sealed
// behind a passphrase (read via pr) and written there as an armored archive.
func AnalyzeFile(inpath string, opts pipeline.Options, archivePath string, pr secure.PassphraseReader) (orchestrate.OrchestrationResult, error) {
	data, err := os.ReadFile(inpath)
	if err != nil {
		return orchestrate.OrchestrationResult{}, fmt.Errorf("failed to read from %s: %w", inpath, err)
	}

	result, err := pipeline.Analyze(string(data), opts)
	if err != nil {
		return orchestrate.OrchestrationResult{}, err
	}

	if archivePath != "" {
		if pr == nil {
			return result, fmt.Errorf("archive requested but no passphrase reader supplied")
		}
		passphrase, err := pr.ReadPassphrase()
		if err != nil {
			return result, err
		}
		armored, err := secure.EncryptResult(passphrase, &result)
		if err != nil {
			return result, fmt.Errorf("failed to seal archive: %w", err)
		}
		if err := os.WriteFile(archivePath, []byte(armored), 0600); err != nil {
			return result, fmt.Errorf("failed to write archive to %s: %w", archivePath, err)
		}
	}

	return result, nil
}

// DecryptFile reads ciphertext from inpath, decrypts it with the named
// cipher (by key when supplied, else by search), and writes plaintext to outpath.
func DecryptFile(inpath string, outpath string, cipherType string, key string, opts pipeline.Options) (pipeline.DecryptionResult, error) {
	data, err := os.ReadFile(inpath)
	if err != nil {
		return pipeline.DecryptionResult{}, fmt.Errorf("failed to read from %s: %w", inpath, err)
	}

	result, err := pipeline.Decrypt(string(data), cipherType, key, opts)
	if err != nil {
		return pipeline.DecryptionResult{}, err
	}

	if err := os.WriteFile(outpath, []byte(result.Plaintext), 0600); err != nil {
		return result, fmt.Errorf("failed to write to %s: %w", outpath, err)
	}

	return result, nil
}

// EncryptFile reads plaintext from inpath, encrypts it with the named cipher
// and key, and writes ciphertext to outpath.
func EncryptFile(inpath string, outpath string, cipherType string, key string) (string, error) {
	data, err := os.ReadFile(inpath)
	if err != nil {
		return "", fmt.Errorf("failed to read from %s: %w", inpath, err)
	}

	ciphertext, err := pipeline.Encrypt(string(data), cipherType, key)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outpath, []byte(ciphertext), 0600); err != nil {
		return "", fmt.Errorf("failed to write to %s: %w", outpath, err)
	}

	return ciphertext, nil
}
