package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"summerschool_backend/internals/features/users/auth/service"
	helper "summerschool_backend/internals/helpers"
)

func newTestApp() (*fiber.App, *service.TokenService) {
	tokens := service.NewTokenService("test-secret", time.Hour)
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	ctrl := NewAuthController(tokens)
	app.Post("/jwt", ctrl.IssueToken)
	return app, tokens
}

func TestIssueTokenSignsBody(t *testing.T) {
	app, tokens := newTestApp()

	req := httptest.NewRequest("POST", "/jwt", strings.NewReader(`{"email":"a@x.com","exp":1}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var out tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	claims, err := tokens.Verify(out.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if service.EmailFromClaims(claims) != "a@x.com" {
		t.Fatalf("claims = %v", claims)
	}
}

func TestIssueTokenBadBodies(t *testing.T) {
	app, _ := newTestApp()

	for name, body := range map[string]string{
		"empty":     "",
		"array":     `[1,2]`,
		"string":    `"hi"`,
		"malformed": `{"email":`,
		"null":      `null`,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/jwt", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != fiber.StatusBadRequest {
				b, _ := io.ReadAll(resp.Body)
				t.Fatalf("status = %d body=%s", resp.StatusCode, b)
			}
		})
	}
}
