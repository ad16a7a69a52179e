package secure

import "testing"

func preserve(t *testing.T, s string) {
	b, err := unwrap(wrap([]byte(s)))
	if err != nil {
		t.Error("unwrap should not have failed")
	}
	if string(b) != s {
		t.Error("wrap/unwrap produced non-equal results")
	}
}

func TestArmorPreservation(t *testing.T) {
	preserve(t, "")
	preserve(t, "test")
}

func TestArmorTruncated(t *testing.T) {
	b, err := unwrap("")
	if b != nil {
		t.Error("truncated input should result in empty bytes")
	}
	if err == nil {
		t.Error("truncated input should result in an error")
	}
}

func TestArmorWrongVersion(t *testing.T) {
	b, err := unwrap("cryptanalysis999999:...")
	if b != nil {
		t.Error("future-versioned input should result in empty bytes")
	}
	if err == nil {
		t.Error("future-versioned input should result in an error")
	}
	if err.Error() != "secure: input claims to be a cryptanalysis archive, but not a version we support" {
		t.Errorf("unexpected error message: %v", err)
	}
}
