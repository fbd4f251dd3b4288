package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	if !Verify("correct horse battery", hash) {
		t.Error("expected password to verify")
	}
	if Verify("wrong password", hash) {
		t.Error("expected wrong password to fail")
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("same password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	h2, err := Hash("same password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if h1 == h2 {
		t.Error("expected different hashes for the same password")
	}
}

func TestHashTokenIsDeterministic(t *testing.T) {
	a := HashToken("refresh-token-value")
	b := HashToken("refresh-token-value")
	if a != b {
		t.Error("expected identical hashes for the same token")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
	if a == HashToken("other-token") {
		t.Error("expected different tokens to hash differently")
	}
}

func TestValidateLength(t *testing.T) {
	if Validate("short") {
		t.Error("expected short password to be rejected")
	}
	if !Validate("longenough") {
		t.Error("expected valid password to be accepted")
	}
}
