package auth

import (
	"regexp"
	"testing"
)

func TestHashPasswordDeterministic(t *testing.T) {
	first, err := HashPassword("tr3n1nk!")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	second, err := HashPassword("tr3n1nk!")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if first != second {
		t.Fatal("expected identical digests for identical input")
	}
}

func TestHashPasswordShape(t *testing.T) {
	hash, err := HashPassword("password")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(hash) != 128 {
		t.Fatalf("expected 128 hex chars, got %d", len(hash))
	}
	if !regexp.MustCompile(`^[0-9a-f]+$`).MatchString(hash) {
		t.Fatalf("expected lowercase hex, got %q", hash)
	}
	if hash == "password" {
		t.Fatal("expected digest to differ from input")
	}
}

func TestHashPasswordDistinctInputs(t *testing.T) {
	inputs := []string{"", "a", "b", "password", "Password", "password "}
	seen := map[string]string{}
	for _, in := range inputs {
		hash, err := HashPassword(in)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if prev, ok := seen[hash]; ok {
			t.Fatalf("digest collision between %q and %q", prev, in)
		}
		seen[hash] = in
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	ok, err := VerifyPassword(hash, "correct")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !ok {
		t.Fatal("expected password to verify")
	}

	ok, err = VerifyPassword(hash, "wrong")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if ok {
		t.Fatal("expected password mismatch to fail")
	}
}
