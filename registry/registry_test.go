package registry

import "testing"

func TestGetEngineReturnsSameInstance(t *testing.T) {
	a, ok := GetEngine("caesar")
	if !ok {
		t.Fatal("expected caesar to be registered")
	}
	b, _ := GetEngine("caesar")
	if a != b {
		t.Error("expected GetEngine to return the same singleton on repeated calls")
	}
}

func TestGetEngineUnknownType(t *testing.T) {
	if _, ok := GetEngine("not_a_cipher"); ok {
		t.Error("expected unknown cipher type to report ok=false")
	}
}

func TestAllCoversEveryCipherType(t *testing.T) {
	want := []string{
		"caesar", "affine", "atbash", "rot13", "simple_substitution",
		"vigenere", "beaufort", "autokey", "rail_fence", "columnar",
	}
	got := All()
	if len(got) != len(want) {
		t.Fatalf("got %d registered types, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("position %d: got %q, want %q", i, got[i], w)
		}
	}
}

func TestFamilyGrouping(t *testing.T) {
	mono := InFamily(FamilyMonoalphabetic)
	if len(mono) != 5 {
		t.Errorf("expected 5 monoalphabetic engines, got %d", len(mono))
	}
	poly := InFamily(FamilyPolyalphabetic)
	if len(poly) != 3 {
		t.Errorf("expected 3 polyalphabetic engines, got %d", len(poly))
	}
	trans := InFamily(FamilyTransposition)
	if len(trans) != 2 {
		t.Errorf("expected 2 transposition engines, got %d", len(trans))
	}
}

func TestEveryEngineTypeMatchesItsRegistrationKey(t *testing.T) {
	for _, cipherType := range All() {
		e, _ := GetEngine(cipherType)
		if e.Type() != cipherType {
			t.Errorf("engine registered under %q reports Type() = %q", cipherType, e.Type())
		}
	}
}
