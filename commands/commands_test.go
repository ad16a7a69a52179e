package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/pipeline"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/secure"
)

type fixedPassphraseReader struct {
	phrase string
}

func (f fixedPassphraseReader) ReadPassphrase() (string, error) {
	return f.phrase, nil
}

func TestEncryptDecryptFileRoundTrips(t *testing.T) {
	dir := t.TempDir()
	plainPath := filepath.Join(dir, "plain.txt")
	cipherPath := filepath.Join(dir, "cipher.txt")
	recoveredPath := filepath.Join(dir, "recovered.txt")

	assert.NoError(t, os.WriteFile(plainPath, []byte("HELLO"), 0600))

	ciphertext, err := EncryptFile(plainPath, cipherPath, "caesar", "7")
	assert.NoError(t, err)
	assert.Equal(t, "OLSSV", ciphertext)

	onDisk, err := os.ReadFile(cipherPath)
	assert.NoError(t, err)
	assert.Equal(t, "OLSSV", string(onDisk))

	result, err := DecryptFile(cipherPath, recoveredPath, "caesar", "7", pipeline.DefaultOptions())
	assert.NoError(t, err)
	assert.Equal(t, "HELLO", result.Plaintext)

	recovered, err := os.ReadFile(recoveredPath)
	assert.NoError(t, err)
	assert.Equal(t, "HELLO", string(recovered))
}

func TestEncryptFileUnsupportedCipher(t *testing.T) {
	dir := t.TempDir()
	plainPath := filepath.Join(dir, "plain.txt")
	assert.NoError(t, os.WriteFile(plainPath, []byte("HELLO"), 0600))

	_, err := EncryptFile(plainPath, filepath.Join(dir, "out.txt"), "nonsense", "7")
	assert.Error(t, err)
}

func TestAnalyzeFileMissingInputFails(t *testing.T) {
	dir := t.TempDir()
	_, err := AnalyzeFile(filepath.Join(dir, "missing.txt"), pipeline.DefaultOptions(), "", nil)
	assert.Error(t, err)
}

func TestAnalyzeFileSealsArchiveWhenRequested(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "cipher.txt")
	archivePath := filepath.Join(dir, "result.archive")

	assert.NoError(t, os.WriteFile(inPath, []byte("OLSSV"), 0600))

	result, err := AnalyzeFile(inPath, pipeline.DefaultOptions(), archivePath, fixedPassphraseReader{phrase: "correcthorse"})
	assert.NoError(t, err)
	assert.NotNil(t, result)

	armored, err := os.ReadFile(archivePath)
	assert.NoError(t, err)
	assert.Contains(t, string(armored), "cryptanalysis1:")

	recovered, err := secure.DecryptResult("correcthorse", string(armored))
	assert.NoError(t, err)
	assert.Equal(t, result.Counters.Generated, recovered.Counters.Generated)
}

func TestAnalyzeFileArchiveWithoutPassphraseReaderFails(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "cipher.txt")
	assert.NoError(t, os.WriteFile(inPath, []byte("OLSSV"), 0600))

	_, err := AnalyzeFile(inPath, pipeline.DefaultOptions(), filepath.Join(dir, "out.archive"), nil)
	assert.Error(t, err)
}
