package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("super-secret-pw")
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}
	if hash == "super-secret-pw" {
		t.Fatal("hash equals plaintext")
	}

	if !Verify("super-secret-pw", hash) {
		t.Fatal("correct password did not verify")
	}
	if Verify("wrong-password", hash) {
		t.Fatal("wrong password verified")
	}
}

func TestHashToken(t *testing.T) {
	a := HashToken("some-refresh-token")
	b := HashToken("some-refresh-token")
	if a != b {
		t.Fatal("token hash is not deterministic")
	}
	if len(a) != 64 {
		t.Fatalf("hash length = %d, want 64 hex chars", len(a))
	}
	if HashToken("other-token") == a {
		t.Fatal("different tokens produced the same hash")
	}
}

func TestValid(t *testing.T) {
	if Valid("short") {
		t.Fatal("short password accepted")
	}
	if !Valid("12345678") {
		t.Fatal("minimum length password rejected")
	}
}
