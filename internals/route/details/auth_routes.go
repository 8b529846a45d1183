package details

import (
	"github.com/gofiber/fiber/v2"

	authRoutes "summerschool_backend/internals/features/users/auth/route"
	tokenService "summerschool_backend/internals/features/users/auth/service"
	userRepo "summerschool_backend/internals/features/users/user/repository"
	userRoutes "summerschool_backend/internals/features/users/user/route"
	authMiddleware "summerschool_backend/internals/middlewares/auth"
)

// AuthRoutes: token issuing and the user directory.
func AuthRoutes(app *fiber.App, tokens *tokenService.TokenService, users *userRepo.UserRepository, guard *authMiddleware.Guard) {
	authRoutes.AuthRoutes(app, tokens)
	userRoutes.UserRoutes(app, users, guard)
}
