package pipeline

import "testing"

func TestDecryptCaesarKnownKey(t *testing.T) {
	ciphertext, err := Encrypt("HELLO", "caesar", "7")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if ciphertext != "OLSSV" {
		t.Fatalf("got %q, want OLSSV", ciphertext)
	}

	res, err := Decrypt(ciphertext, "caesar", "7", DefaultOptions())
	if err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	if res.Plaintext != "HELLO" {
		t.Errorf("got %q, want HELLO", res.Plaintext)
	}
}

func TestDecryptVigenereKnownKey(t *testing.T) {
	ciphertext, err := Encrypt("ATTACKATDAWN", "vigenere", "LEMON")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if ciphertext != "LXFOPVEFRNHR" {
		t.Fatalf("got %q, want LXFOPVEFRNHR", ciphertext)
	}

	res, err := Decrypt(ciphertext, "vigenere", "LEMON", DefaultOptions())
	if err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	if res.Plaintext != "ATTACKATDAWN" {
		t.Errorf("got %q, want ATTACKATDAWN", res.Plaintext)
	}
}

func TestEncryptUnsupportedCipherType(t *testing.T) {
	if _, err := Encrypt("HELLO", "nonsense", "7"); err == nil {
		t.Error("expected an error for an unregistered cipher type")
	}
}

func TestAnalyzeRejectsOversizedInput(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxCiphertextLength = 5
	if _, err := Analyze("THISISLONGERTHANFIVE", opts); err == nil {
		t.Error("expected ErrInputTooLong for an oversized ciphertext")
	}
}

func TestAnalyzeShortCiphertextDoesNotError(t *testing.T) {
	result, err := Analyze("AB", DefaultOptions())
	if err != nil {
		t.Fatalf("analyze should never fail on a valid-length input, got %v", err)
	}
	if !result.EarlyExit {
		t.Error("expected short input to early-exit rather than error")
	}
}
