package auth

import "testing"

func TestHashPasswordDeterministic(t *testing.T) {
	salt, err := NewSalt()
	if err != nil {
		t.Fatalf("new salt: %v", err)
	}
	if len(salt) != saltBytes*2 {
		t.Fatalf("salt length = %d, want %d hex chars", len(salt), saltBytes*2)
	}

	h1 := HashPassword("correct horse", salt)
	h2 := HashPassword("correct horse", salt)
	if h1 != h2 {
		t.Fatal("same password and salt should hash identically")
	}
	if len(h1) != hashKeyLen*2 {
		t.Fatalf("hash length = %d, want %d hex chars", len(h1), hashKeyLen*2)
	}
}

func TestHashPasswordSaltMatters(t *testing.T) {
	s1, _ := NewSalt()
	s2, _ := NewSalt()
	if s1 == s2 {
		t.Fatal("two fresh salts collided")
	}
	if HashPassword("pw", s1) == HashPassword("pw", s2) {
		t.Fatal("different salts should produce different hashes")
	}
}

func TestVerifyPassword(t *testing.T) {
	salt, _ := NewSalt()
	stored := HashPassword("open sesame", salt)

	if !VerifyPassword("open sesame", salt, stored) {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword("open sesame!", salt, stored) {
		t.Fatal("wrong password accepted")
	}
	if VerifyPassword("open sesame", salt[:10]+"00"+salt[12:], stored) {
		t.Fatal("wrong salt accepted")
	}
}

func TestNewTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := NewToken()
		if err != nil {
			t.Fatalf("new token: %v", err)
		}
		if tok == "" {
			t.Fatal("empty token")
		}
		if seen[tok] {
			t.Fatalf("duplicate token after %d draws", i)
		}
		seen[tok] = true
	}
}
