package secure

import (
	"testing"

	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/orchestrate"
)

func TestEncryptDecryptResultRoundTrips(t *testing.T) {
	result := &orchestrate.OrchestrationResult{
		TiersExecuted: []string{"T1"},
	}

	armored, err := EncryptResult("testphrase", result)
	if err != nil {
		t.Fatalf("EncryptResult failed: %v", err)
	}

	recovered, err := DecryptResult("testphrase", armored)
	if err != nil {
		t.Fatalf("DecryptResult failed: %v", err)
	}
	if len(recovered.TiersExecuted) != 1 || recovered.TiersExecuted[0] != "T1" {
		t.Errorf("got tiers %v, want [T1]", recovered.TiersExecuted)
	}
}

func TestDecryptResultWrongPassphraseFails(t *testing.T) {
	armored, err := EncryptResult("correct", &orchestrate.OrchestrationResult{})
	if err != nil {
		t.Fatalf("EncryptResult failed: %v", err)
	}
	if _, err := DecryptResult("incorrect", armored); err == nil {
		t.Error("expected a wrong passphrase to fail decryption")
	}
}

func TestDecryptResultRejectsCorruptArmor(t *testing.T) {
	if _, err := DecryptResult("anything", "not an archive"); err == nil {
		t.Error("expected unrecognized input to fail")
	}
}
