package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRepo "summerschool_backend/internals/features/classes/repository"
	classRoutes "summerschool_backend/internals/features/classes/route"
	helperOSS "summerschool_backend/internals/helpers/oss"
	authMiddleware "summerschool_backend/internals/middlewares/auth"
)

func ClassRoutes(app *fiber.App, db *gorm.DB, images helperOSS.ImageStore, guard *authMiddleware.Guard) {
	classRoutes.ClassRoutes(app, classRepo.NewClassRepository(db), images, guard)
}
