package auth

import (
	"testing"
)

func TestJWTRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "forum-core", 1)

	token, err := svc.GenerateToken(42, 7, true)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != 42 || claims.TenantID != 7 || !claims.IsAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Issuer != "forum-core" {
		t.Fatalf("unexpected issuer: %s", claims.Issuer)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", "forum-core", 1).GenerateToken(1, 1, false)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := NewJWTService("secret-b", "forum-core", 1).ValidateToken(token); err == nil {
		t.Fatal("expected validation failure with wrong secret")
	}
}

func TestJWTRejectsTamperedToken(t *testing.T) {
	svc := NewJWTService("test-secret", "forum-core", 1)
	token, err := svc.GenerateToken(1, 1, false)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := svc.ValidateToken(tampered); err == nil {
		t.Fatal("expected validation failure for tampered token")
	}
}

func TestExtractTokenFromBearer(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi"},
		{"bearer abc.def.ghi", "abc.def.ghi"},
		{"Basic abc", ""},
		{"abc.def.ghi", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ExtractTokenFromBearer(tc.header); got != tc.want {
			t.Fatalf("ExtractTokenFromBearer(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if !CheckPassword(hash, "s3cret-pass") {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Fatal("expected mismatched password to fail")
	}
}
