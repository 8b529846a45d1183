package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrEmptyClaims  = errors.New("claims must be a JSON object")
)

// TokenService signs and verifies HS256 access tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 48 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a copy of claims with exp = now+ttl and iat = now.
// Caller-supplied exp/iat are overwritten.
func (s *TokenService) Issue(claims map[string]any) (string, error) {
	if claims == nil {
		return "", ErrEmptyClaims
	}
	now := s.now()
	mc := make(jwt.MapClaims, len(claims)+2)
	for k, v := range claims {
		mc[k] = v
	}
	mc["iat"] = now.Unix()
	mc["exp"] = now.Add(s.ttl).Unix()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify returns the claims of a valid, unexpired HMAC token.
func (s *TokenService) Verify(token string) (jwt.MapClaims, error) {
	token = strings.Trim(strings.TrimSpace(token), "\"'")
	if token == "" {
		return nil, ErrInvalidToken
	}

	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	// jwt/v4 accepts tokens without exp; ours always carry one.
	if _, ok := claims["exp"]; !ok {
		return nil, fmt.Errorf("%w: missing exp", ErrInvalidToken)
	}
	return claims, nil
}

// EmailFromClaims reads the "email" claim.
func EmailFromClaims(claims jwt.MapClaims) string {
	email, _ := claims["email"].(string)
	return strings.TrimSpace(email)
}
