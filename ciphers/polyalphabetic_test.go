package ciphers

import (
	"testing"

	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/stats"
)

func TestVigenereEncryptDecryptRoundTrip(t *testing.T) {
	e := VigenereEngine{}
	ct, err := e.Encrypt("ATTACKATDAWN", "LEMON")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if ct != "LXFOPVEFRNHR" {
		t.Fatalf("got %q, want LXFOPVEFRNHR", ct)
	}
	res, err := e.DecryptWithKey(ct, "LEMON")
	if err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	if res.Plaintext != "ATTACKATDAWN" {
		t.Errorf("got %q, want ATTACKATDAWN", res.Plaintext)
	}
}

func TestVigenereFindKeyAndDecryptRecoversKnownKey(t *testing.T) {
	e := VigenereEngine{}
	plain := "THEQUICKBROWNFOXJUMPSOVERTHELAZYDOGANDRUNSINTOTHEFOREST"
	ct, _ := e.Encrypt(plain, "KEY")
	opts := DefaultOptions()
	res, err := e.FindKeyAndDecrypt(ct, stats.Compute(ct), opts)
	if err != nil {
		t.Fatalf("find key failed: %v", err)
	}
	if res.Plaintext != plain {
		t.Errorf("got %q, want %q", res.Plaintext, plain)
	}
}

func TestBeaufortIsSelfInverse(t *testing.T) {
	e := BeaufortEngine{}
	ct, _ := e.Encrypt("ATTACKATDAWN", "LEMON")
	back, _ := e.Encrypt(ct, "LEMON")
	if back != "ATTACKATDAWN" {
		t.Errorf("beaufort applied twice should restore plaintext, got %q", back)
	}
}

func TestAutokeyEncryptDecryptRoundTrip(t *testing.T) {
	e := AutokeyEngine{}
	ct, err := e.Encrypt("ATTACKATDAWN", "QUEENLY")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	res, err := e.DecryptWithKey(ct, "QUEENLY")
	if err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	if res.Plaintext != "ATTACKATDAWN" {
		t.Errorf("got %q, want ATTACKATDAWN", res.Plaintext)
	}
}

func TestPolyalphabeticKeysMustBeAlphabetic(t *testing.T) {
	for _, e := range []Engine{VigenereEngine{}, BeaufortEngine{}, AutokeyEngine{}} {
		if e.ValidateKey("KEY123") {
			t.Errorf("%s: expected digits in key to be rejected", e.Type())
		}
		if !e.ValidateKey("KEY") {
			t.Errorf("%s: expected an uppercase alphabetic key to validate", e.Type())
		}
	}
}

func TestEstimateKeyLengthsPromotesKasiskiFactors(t *testing.T) {
	p := stats.Profile{KasiskiDistances: []int{6, 9}}
	lengths := estimateKeyLengths("ABCDEFGHIJKLMNOPQRSTUVWXYZABCDEFGHIJKLMNOPQRSTUVWXYZ", p, 10)
	if len(lengths) == 0 {
		t.Fatal("expected at least one candidate length")
	}
	limit := 3
	if len(lengths) < limit {
		limit = len(lengths)
	}
	found := false
	for _, l := range lengths[:limit] {
		if l == 3 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected length 3 (a factor of both Kasiski distances) to be promoted near the front, got %v", lengths)
	}
}
