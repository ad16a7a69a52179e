package secure

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	magicPrefix = "cryptanalysis"
	v1Magic     = "cryptanalysis1:"
)

// wrap armors body as base64 URL-safe text behind a versioned magic prefix,
// grounded on the teacher's varmor.Wrap.
func wrap(body []byte) string {
	return fmt.Sprintf("%s%s", v1Magic, base64.RawURLEncoding.EncodeToString(body))
}

// unwrap reverses wrap. Error conditions mirror varmor.Unwrap: truncated
// input, bad base64, an unsupported version, or input that is not ours at all.
func unwrap(armored string) ([]byte, error) {
	if len(armored) < len(v1Magic) {
		return nil, errors.New("secure: input size smaller than magic marker; likely truncated")
	}
	if strings.HasPrefix(armored, v1Magic) {
		body, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(armored, v1Magic))
		if err != nil {
			return nil, fmt.Errorf("secure: base64 decoding failed: %w", err)
		}
		return body, nil
	}
	if strings.HasPrefix(armored, magicPrefix) {
		return nil, errors.New("secure: input claims to be a cryptanalysis archive, but not a version we support")
	}
	return nil, errors.New("secure: input unrecognized as cryptanalysis archive data")
}
