package service

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	h := NewPasswordHasher(4) // minimal cost keeps the test fast

	hash, err := h.Hash("s3cret-password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatal("hash equals plaintext")
	}
	if !h.Verify("s3cret-password", hash) {
		t.Error("correct password rejected")
	}
	if h.Verify("wrong-password", hash) {
		t.Error("wrong password accepted")
	}
}

func TestPasswordHashesDiffer(t *testing.T) {
	h := NewPasswordHasher(4)
	a, err := h.Hash("same")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	b, err := h.Hash("same")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password should differ by salt")
	}
}

func TestVerifyGarbageHash(t *testing.T) {
	h := NewPasswordHasher(4)
	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Error("garbage hash verified")
	}
}
