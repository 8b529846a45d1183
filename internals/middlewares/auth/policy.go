package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	helper "summerschool_backend/internals/helpers"
)

// Policy is the access rule attached to a route.
//
// Authenticated requires a valid bearer token. SelfParam names a path param that
// must equal the token's email. Roles lists the stored roles allowed through; it
// implies authentication and is only checked when the guard enforces roles.
type Policy struct {
	Authenticated bool
	SelfParam     string
	Roles         []string
	Message       string
}

func (p Policy) needsToken(enforceRoles bool) bool {
	return p.Authenticated || p.SelfParam != "" || (enforceRoles && len(p.Roles) > 0)
}

// Require evaluates p before the handler; a failing check ends the request.
func (g *Guard) Require(p Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !p.needsToken(g.EnforceRoles) {
			return c.Next()
		}

		email, err := g.authenticate(c)
		if err != nil {
			return err
		}

		if p.SelfParam != "" {
			if email == "" || helper.PathParam(c, p.SelfParam) != email {
				return helper.Forbidden("forbidden access")
			}
		}

		if g.EnforceRoles && len(p.Roles) > 0 {
			if err := g.checkRole(c, email, p); err != nil {
				return err
			}
		}
		return c.Next()
	}
}

func (g *Guard) checkRole(c *fiber.Ctx, email string, p Policy) error {
	msg := p.Message
	if msg == "" {
		msg = "forbidden access"
	}
	if email == "" || g.Roles == nil {
		return helper.Forbidden(msg)
	}

	role, found, err := g.Roles.RoleOf(c.UserContext(), email)
	if err != nil {
		return helper.Internal("failed to resolve role", fmt.Errorf("role of %s: %w", email, err))
	}
	if !found {
		return helper.Forbidden(msg)
	}
	for _, allowed := range p.Roles {
		if role == allowed {
			return nil
		}
	}
	return helper.Forbidden(msg)
}
