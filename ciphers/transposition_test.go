package ciphers

import "testing"

func TestRailFenceEncryptDecryptRoundTrip(t *testing.T) {
	e := RailFenceEngine{}
	ct, err := e.Encrypt("WEAREDISCOVEREDFLEEATONCE", "3")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if ct != "WECRLTEERDSOEEFEAOCAIVDEN" {
		t.Fatalf("got %q, want WECRLTEERDSOEEFEAOCAIVDEN", ct)
	}
	res, err := e.DecryptWithKey(ct, "3")
	if err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	if res.Plaintext != "WEAREDISCOVEREDFLEEATONCE" {
		t.Errorf("got %q, want WEAREDISCOVEREDFLEEATONCE", res.Plaintext)
	}
}

func TestRailFenceValidateKeyRange(t *testing.T) {
	e := RailFenceEngine{}
	if e.ValidateKey("1") || e.ValidateKey("11") || e.ValidateKey("x") {
		t.Error("rail counts outside [2,10] (or non-numeric) should be invalid")
	}
	if !e.ValidateKey("2") || !e.ValidateKey("10") {
		t.Error("2 and 10 are the inclusive boundary and should be valid")
	}
}

func TestRailOfZigzagsBetweenRows(t *testing.T) {
	// 3 rails: cycle length 4, expected row sequence 0,1,2,1,0,1,2,1,...
	want := []int{0, 1, 2, 1, 0, 1, 2, 1}
	for i, w := range want {
		if got := railOf(i, 3); got != w {
			t.Errorf("railOf(%d,3) = %d, want %d", i, got, w)
		}
	}
}

func TestColumnarEncryptDecryptRoundTripWithExplicitOrder(t *testing.T) {
	e := ColumnarEngine{}
	plaintext := "ATTACKATDAWN" // 12 chars, divisible by 3: no padding needed
	ct, err := e.Encrypt(plaintext, "3,1,2")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	res, err := e.DecryptWithKey(ct, "3,1,2")
	if err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	if res.Plaintext != plaintext {
		t.Errorf("got %q, want %q", res.Plaintext, plaintext)
	}
}

func TestColumnarEncryptDecryptRoundTripWithKeyword(t *testing.T) {
	e := ColumnarEngine{}
	plaintext := "THEQUICKBROWNFOXJUMPS" // 21 chars, divisible by len("ZEBRA")=5? no, use KEY (3)
	ct, err := e.Encrypt(plaintext, "KEY")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	res, err := e.DecryptWithKey(ct, "KEY")
	if err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	if res.Plaintext != plaintext {
		t.Errorf("got %q, want %q", res.Plaintext, plaintext)
	}
}

func TestColumnOrderFromWordBreaksTiesByPosition(t *testing.T) {
	// "KEY" -> K=10,E=4,Y=24 -> alphabetical order E,K,Y -> original indices 1,0,2
	order := columnOrderFromWord("KEY")
	want := []int{1, 0, 2}
	for i, w := range want {
		if order[i] != w {
			t.Errorf("columnOrderFromWord(KEY)[%d] = %d, want %d", i, order[i], w)
		}
	}

	// "ABA" ties its two A's: the leftmost A (index 0) is read before index 2.
	tied := columnOrderFromWord("ABA")
	wantTied := []int{0, 2, 1}
	for i, w := range wantTied {
		if tied[i] != w {
			t.Errorf("columnOrderFromWord(ABA)[%d] = %d, want %d", i, tied[i], w)
		}
	}
}

func TestColumnarRejectsDuplicateExplicitOrder(t *testing.T) {
	e := ColumnarEngine{}
	if e.ValidateKey("1,1,2") {
		t.Error("an explicit order with a duplicate index should be invalid")
	}
}

func TestColumnarRejectsShortKeyword(t *testing.T) {
	e := ColumnarEngine{}
	if e.ValidateKey("A") {
		t.Error("a single-letter keyword should be invalid")
	}
}
