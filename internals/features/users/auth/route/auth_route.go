package route

import (
	"github.com/gofiber/fiber/v2"

	"summerschool_backend/internals/features/users/auth/controller"
)

func AuthRoutes(app fiber.Router, tokens controller.TokenIssuer) {
	ctrl := controller.NewAuthController(tokens)
	app.Post("/jwt", ctrl.IssueToken)
}
