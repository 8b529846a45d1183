package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func TestIssueAndVerify(t *testing.T) {
	s := NewTokenService("secret", time.Hour)

	tok, err := s.Issue(map[string]any{"email": "a@x.com", "name": "A"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	claims, err := s.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got := EmailFromClaims(claims); got != "a@x.com" {
		t.Fatalf("email = %q", got)
	}
	if claims["name"] != "A" {
		t.Fatalf("name claim lost: %v", claims["name"])
	}
}

func TestIssueOverridesExpiry(t *testing.T) {
	s := NewTokenService("secret", 48*time.Hour)
	fixed := time.Now().Truncate(time.Second)
	s.now = func() time.Time { return fixed }

	tok, err := s.Issue(map[string]any{"email": "a@x.com", "exp": 1, "iat": 1})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(tok, claims); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if exp := int64(claims["exp"].(float64)); exp != fixed.Add(48*time.Hour).Unix() {
		t.Fatalf("exp = %d", exp)
	}
	if iat := int64(claims["iat"].(float64)); iat != fixed.Unix() {
		t.Fatalf("iat = %d", iat)
	}
	if _, err := s.Verify(tok); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestIssueRejectsNil(t *testing.T) {
	s := NewTokenService("secret", time.Hour)
	if _, err := s.Issue(nil); !errors.Is(err, ErrEmptyClaims) {
		t.Fatalf("err = %v, want ErrEmptyClaims", err)
	}
}

func TestVerifyRejects(t *testing.T) {
	s := NewTokenService("secret", time.Hour)

	wrongKey, _ := NewTokenService("other", time.Hour).Issue(map[string]any{"email": "a@x.com"})

	expired := NewTokenService("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }
	old, _ := expired.Issue(map[string]any{"email": "a@x.com"})

	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "a@x.com"}).SignedString([]byte("secret"))
	noneAlg, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	cases := map[string]string{
		"empty":     "",
		"garbage":   "not.a.token",
		"wrong key": wrongKey,
		"expired":   old,
		"no exp":    noExp,
		"alg none":  noneAlg,
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Verify(tok); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("err = %v, want ErrInvalidToken", err)
			}
		})
	}
}
