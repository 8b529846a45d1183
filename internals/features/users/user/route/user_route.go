package route

import (
	"github.com/gofiber/fiber/v2"

	"summerschool_backend/internals/constants"
	userController "summerschool_backend/internals/features/users/user/controller"
	authMiddleware "summerschool_backend/internals/middlewares/auth"
)

func UserRoutes(app fiber.Router, repo userController.Repository, guard *authMiddleware.Guard) {
	ctrl := userController.NewUserController(repo)

	admins := authMiddleware.Policy{
		Roles:   constants.AdminOnly,
		Message: constants.RoleErrorAdmin("user management"),
	}
	self := authMiddleware.Policy{Authenticated: true, SelfParam: "email"}

	app.Post("/users", ctrl.CreateUser)
	app.Get("/users", guard.Require(admins), ctrl.GetUsers)
	app.Get("/users/role/:email", guard.Require(self), ctrl.GetRole)
	app.Get("/users/admin/:email", guard.Require(self), ctrl.IsAdmin)
	app.Patch("/users/:role/:id", guard.Require(admins), ctrl.PatchRole)
}
