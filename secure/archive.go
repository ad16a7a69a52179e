// Package secure implements the optional passphrase-protected archive (C11):
// an OrchestrationResult may contain a recovered secret plaintext, so the CLI
// offers to seal it at rest behind a passphrase before it touches disk. The
// crypto primitives are adapted from the teacher's secretcrypt package.
package secure

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"

	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/orchestrate"
)

const (
	archiveVersion = 1

	saltLen            = 8
	scryptN            = 32768
	scryptR            = 8
	scryptP            = 1
	keyLen             = 32
	secretboxNonceLen  = 24
)

// ArchiveEnvelope is the opaque-at-rest container produced by EncryptResult.
// Payload is the scrypt+secretbox-sealed JSON encoding of an
// OrchestrationResult; only passphrase decryption reveals it.
type ArchiveEnvelope struct {
	Version       uint8
	CreatedAtUnix int64
	Payload       []byte
}

func genKey(passphrase string, salt []byte) [keyLen]byte {
	secretKey, err := scrypt.Key([]byte(passphrase), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		panic(err)
	}
	var out [keyLen]byte
	copy(out[:], secretKey)
	return out
}

// encryptBytes seals plaintext behind passphrase using the teacher's
// scrypt-derived-key + NaCl secretbox format: salt || nonce || int64 length || sealed box.
func encryptBytes(passphrase string, plaintext []byte) ([]byte, error) {
	var salt [saltLen]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, fmt.Errorf("secure: generating salt: %w", err)
	}
	key := genKey(passphrase, salt[:])

	var nonce [secretboxNonceLen]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, fmt.Errorf("secure: generating nonce: %w", err)
	}

	sealed := secretbox.Seal(nil, plaintext, &nonce, &key)

	var buf bytes.Buffer
	buf.Write(salt[:])
	buf.Write(nonce[:])
	if err := binary.Write(&buf, binary.BigEndian, int64(len(sealed))); err != nil {
		return nil, fmt.Errorf("secure: writing sealed box length: %w", err)
	}
	buf.Write(sealed)
	return buf.Bytes(), nil
}

func decryptBytes(passphrase string, crypttext []byte) ([]byte, error) {
	r := bytes.NewReader(crypttext)

	var salt [saltLen]byte
	if _, err := io.ReadFull(r, salt[:]); err != nil {
		return nil, fmt.Errorf("secure: input likely truncated while reading salt: %w", err)
	}
	var nonce [secretboxNonceLen]byte
	if _, err := io.ReadFull(r, nonce[:]); err != nil {
		return nil, fmt.Errorf("secure: input likely truncated while reading nonce: %w", err)
	}
	var sealedLen int64
	if err := binary.Read(r, binary.BigEndian, &sealedLen); err != nil {
		return nil, fmt.Errorf("secure: input likely truncated while reading sealed box length: %w", err)
	}
	if sealedLen < 0 || sealedLen > int64(len(crypttext)) {
		return nil, errors.New("secure: truncated or corrupt input; claimed length greater than available input")
	}
	sealed := make([]byte, sealedLen)
	if _, err := io.ReadFull(r, sealed); err != nil {
		return nil, errors.New("secure: truncated or corrupt input (while reading sealed box)")
	}

	key := genKey(passphrase, salt[:])
	plaintext, ok := secretbox.Open(nil, sealed, &nonce, &key)
	if !ok {
		return nil, errors.New("secure: corrupt input, tampered-with data, or bad passphrase")
	}
	return plaintext, nil
}

// EncryptResult JSON-encodes result, seals it behind passphrase, and armors
// the envelope into one URL/shell-safe line of text.
func EncryptResult(passphrase string, result *orchestrate.OrchestrationResult) (string, error) {
	body, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("secure: marshaling result: %w", err)
	}
	payload, err := encryptBytes(passphrase, body)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteByte(archiveVersion)
	if err := binary.Write(&buf, binary.BigEndian, time.Now().Unix()); err != nil {
		return "", fmt.Errorf("secure: writing timestamp: %w", err)
	}
	buf.Write(payload)

	return wrap(buf.Bytes()), nil
}

// DecryptResult reverses EncryptResult, returning the recovered analysis
// result or an error if the passphrase is wrong or the input is corrupt.
func DecryptResult(passphrase string, armored string) (*orchestrate.OrchestrationResult, error) {
	raw, err := unwrap(armored)
	if err != nil {
		return nil, err
	}
	r := bytes.NewReader(raw)

	version, err := r.ReadByte()
	if err != nil {
		return nil, errors.New("secure: truncated archive; missing version byte")
	}
	if version != archiveVersion {
		return nil, fmt.Errorf("secure: unsupported archive version %d", version)
	}

	var createdAt int64
	if err := binary.Read(r, binary.BigEndian, &createdAt); err != nil {
		return nil, errors.New("secure: truncated archive; missing timestamp")
	}

	payload := make([]byte, r.Len())
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, errors.New("secure: truncated archive payload")
	}

	body, err := decryptBytes(passphrase, payload)
	if err != nil {
		return nil, err
	}

	var result orchestrate.OrchestrationResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("secure: unmarshaling decrypted result: %w", err)
	}
	return &result, nil
}
