package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	id := uuid.New()

	token, err := issuer.CreateToken(id, "ada@example.com")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	claims, err := issuer.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != id.String() || claims.Subject != "ada@example.com" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestTokenRejections(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	other, _ := NewTokenIssuer("other", time.Hour).CreateToken(uuid.New(), "a@b.c")
	if _, err := issuer.ValidateToken(other); err == nil {
		t.Fatalf("token signed with another key must be rejected")
	}

	expiring := NewTokenIssuer("secret", time.Hour)
	expiring.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _ := expiring.CreateToken(uuid.New(), "a@b.c")
	if _, err := issuer.ValidateToken(expired); err == nil {
		t.Fatalf("expired token must be rejected")
	}

	noUser, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "a@b.c", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("secret"))
	if _, err := issuer.ValidateToken(noUser); err == nil {
		t.Fatalf("token without user id must be rejected")
	}

	hs512, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{UserID: uuid.NewString()}).SignedString([]byte("secret"))
	if _, err := issuer.ValidateToken(hs512); err == nil {
		t.Fatalf("only HS256 is accepted")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if ComparePasswords(hash, "hunter22") != nil || ComparePasswords(hash, "hunter23") == nil {
		t.Fatalf("password comparison is wrong")
	}
}
