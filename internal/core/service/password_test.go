package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndMatch(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	digest, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if digest == "secret123" {
		t.Fatalf("digest equals plaintext")
	}
	if !h.Matches("secret123", digest) {
		t.Fatalf("expected match")
	}
	if h.Matches("wrong", digest) {
		t.Fatalf("wrong password matched")
	}
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	if h.Matches("secret123", "not-a-bcrypt-digest") {
		t.Fatalf("malformed digest matched")
	}
	if h.Matches("secret123", "") {
		t.Fatalf("empty digest matched")
	}
}

func TestPasswordHasher_SaltedDigestsDiffer(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	d1, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	d2, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if d1 == d2 {
		t.Fatalf("expected distinct salted digests")
	}
}

func TestPasswordHasher_CostOutOfRange(t *testing.T) {
	h := NewPasswordHasher(99)

	digest, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("hash with clamped cost: %v", err)
	}
	if !h.Matches("secret123", digest) {
		t.Fatalf("expected match")
	}
}
