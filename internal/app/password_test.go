package app

import "testing"

func TestHashPassword_NotPlaintext(t *testing.T) {
	hash, err := HashPassword("kakakaka")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if hash == "kakakaka" {
		t.Error("hash must not equal the plaintext password")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("kakakaka")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := HashPassword("kakakaka")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password should differ")
	}
	if !CheckPassword("kakakaka", first) || !CheckPassword("kakakaka", second) {
		t.Error("both hashes should still verify")
	}
}

func TestCheckPassword_Wrong(t *testing.T) {
	hash, _ := HashPassword("correct")
	if CheckPassword("wrong", hash) {
		t.Error("wrong password should not verify")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	if CheckPassword("anything", "not-a-bcrypt-hash") {
		t.Error("malformed hash should compare as false")
	}
}
