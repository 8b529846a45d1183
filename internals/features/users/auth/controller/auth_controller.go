package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	helper "summerschool_backend/internals/helpers"
)

// TokenIssuer is the signing half of the token service.
type TokenIssuer interface {
	Issue(claims map[string]any) (string, error)
}

type AuthController struct {
	Tokens TokenIssuer
}

func NewAuthController(tokens TokenIssuer) *AuthController {
	return &AuthController{Tokens: tokens}
}

type tokenResponse struct {
	Token string `json:"token"`
}

// IssueToken POST /jwt
// Any JSON object is signed as-is; exp/iat are set by the server.
func (ac *AuthController) IssueToken(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return helper.BadRequest("request body is required")
	}
	var claims map[string]any
	if err := c.App().Config().JSONDecoder(body, &claims); err != nil || claims == nil {
		return helper.BadRequest("body must be a JSON object")
	}

	token, err := ac.Tokens.Issue(claims)
	if err != nil {
		log.Printf("[ERROR] issue token: %v", err)
		return helper.Internal("failed to issue token", err)
	}
	return helper.JsonOK(c, tokenResponse{Token: token})
}
