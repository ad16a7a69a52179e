package ciphers

import (
	"math/rand"
	"testing"

	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/stats"
)

func TestSimpleSubstitutionEncryptDecryptRoundTrip(t *testing.T) {
	e := SimpleSubstitutionEngine{}
	key := e.GenerateRandomKey(rand.New(rand.NewSource(42)))
	ct, err := e.Encrypt("THEQUICKBROWNFOX", key)
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	res, err := e.DecryptWithKey(ct, key)
	if err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	if res.Plaintext != "THEQUICKBROWNFOX" {
		t.Errorf("got %q, want THEQUICKBROWNFOX", res.Plaintext)
	}
}

func TestSimpleSubstitutionValidateKeyRequiresPermutation(t *testing.T) {
	e := SimpleSubstitutionEngine{}
	if e.ValidateKey("ABCDEFGHIJKLMNOPQRSTUVWXY") { // 25 chars
		t.Error("a 25-character key should be invalid")
	}
	repeated := "AACDEFGHIJKLMNOPQRSTUVWXY" + "Z"
	if e.ValidateKey(repeated) {
		t.Error("a key with a repeated letter is not a permutation and should be invalid")
	}
	if !e.ValidateKey("QWERTYUIOPASDFGHJKLZXCVBNM") {
		t.Error("a 26-letter permutation should validate")
	}
}

func TestEncryptionKeyFromDecryptionKeyInvertsDecryptionKey(t *testing.T) {
	enc := []byte("QWERTYUIOPASDFGHJKLZXCVBNM")
	dec := decryptionKeyFromEncryptionKey(enc)
	roundTrip := encryptionKeyFromDecryptionKey(dec)
	if roundTrip != string(enc) {
		t.Errorf("got %q, want %q", roundTrip, string(enc))
	}
}

func TestHillClimbReturnsCandidateForShortSubstitution(t *testing.T) {
	e := SimpleSubstitutionEngine{}
	plain := "THEQUICKBROWNFOXJUMPSOVERTHELAZYDOGANDWANDERSINTOTHEFORESTLOOKINGFORFOOD"
	key := e.GenerateRandomKey(rand.New(rand.NewSource(7)))
	ct, err := e.Encrypt(plain, key)
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}

	opts := DefaultOptions()
	opts.HillClimbIterations = 2000
	opts.HillClimbRestarts = 5
	opts.Rand = rand.New(rand.NewSource(99))

	res, err := e.FindKeyAndDecrypt(ct, stats.Compute(ct), opts)
	if err != nil {
		t.Fatalf("find key failed: %v", err)
	}
	if res.Plaintext == "" {
		t.Error("expected a non-empty recovered plaintext")
	}
}
