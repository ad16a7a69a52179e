package secure

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/ssh/terminal"
)

// PassphraseReader reads the passphrase used to seal or open an archive.
type PassphraseReader interface {
	ReadPassphrase() (string, error)
}

// StdinPassphraseReader reads from the terminal when stdin is a TTY, prompting
// on stderr, and falls back to a raw stdin read otherwise (grounded on the
// teacher's preader.StdinPassphraseReader).
type StdinPassphraseReader struct{}

func (StdinPassphraseReader) ReadPassphrase() (string, error) {
	if terminal.IsTerminal(0) {
		if _, err := fmt.Fprint(os.Stderr, "Archive passphrase: "); err != nil {
			return "", err
		}
		phrase, err := terminal.ReadPassword(0)
		if err != nil {
			return "", fmt.Errorf("secure: failure reading passphrase: %w", err)
		}
		return string(phrase), nil
	}

	data, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return "", fmt.Errorf("secure: failure reading passphrase from stdin: %w", err)
	}
	return string(data), nil
}

// CachingPassphraseReader wraps a PassphraseReader with "at most once" read
// semantics, lazily deferring the first invocation until actually needed.
type CachingPassphraseReader struct {
	Upstream PassphraseReader

	cached           bool
	cachedPassphrase string
}

func (r *CachingPassphraseReader) ReadPassphrase() (string, error) {
	if !r.cached {
		phrase, err := r.Upstream.ReadPassphrase()
		if err != nil {
			return "", err
		}
		r.cachedPassphrase = phrase
		r.cached = true
	}
	return r.cachedPassphrase, nil
}
