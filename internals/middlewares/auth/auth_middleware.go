package auth

import (
	"context"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	tokenService "summerschool_backend/internals/features/users/auth/service"
	helper "summerschool_backend/internals/helpers"
)

const LocalsEmail = "user_email"

// TokenVerifier is the verifying half of the token service.
type TokenVerifier interface {
	Verify(token string) (jwt.MapClaims, error)
}

// RoleLookup resolves the stored role of a user by email.
type RoleLookup interface {
	RoleOf(ctx context.Context, email string) (role string, found bool, err error)
}

// Guard runs the bearer check and the per-route Policy.
type Guard struct {
	Tokens       TokenVerifier
	Roles        RoleLookup
	EnforceRoles bool
}

func NewGuard(tokens TokenVerifier, roles RoleLookup, enforceRoles bool) *Guard {
	return &Guard{Tokens: tokens, Roles: roles, EnforceRoles: enforceRoles}
}

// authenticate verifies the Authorization header and stores the token email in Locals.
func (g *Guard) authenticate(c *fiber.Ctx) (string, error) {
	token, err := extractBearerToken(c)
	if err != nil {
		return "", err
	}
	claims, err := g.Tokens.Verify(token)
	if err != nil {
		log.Printf("[INFO] rejected token on %s %s: %v", c.Method(), c.Path(), err)
		return "", helper.Unauthorized("unauthorized access")
	}

	email := tokenService.EmailFromClaims(claims)
	c.Locals(LocalsEmail, email)
	return email, nil
}

// extractBearerToken takes the second whitespace-separated field of Authorization.
// The scheme word is not checked.
func extractBearerToken(c *fiber.Ctx) (string, error) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		return "", helper.Unauthorized("unauthorized access")
	}
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return "", helper.Unauthorized("unauthorized access")
	}
	tok := strings.Trim(fields[1], "\"'")
	if tok == "" {
		return "", helper.Unauthorized("unauthorized access")
	}
	return tok, nil
}

// EmailFrom returns the token email, if the guard ran.
func EmailFrom(c *fiber.Ctx) string {
	email, _ := c.Locals(LocalsEmail).(string)
	return email
}
