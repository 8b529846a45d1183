package route

import (
	"github.com/gofiber/fiber/v2"

	"summerschool_backend/internals/constants"
	classController "summerschool_backend/internals/features/classes/controller"
	helperOSS "summerschool_backend/internals/helpers/oss"
	authMiddleware "summerschool_backend/internals/middlewares/auth"
)

func ClassRoutes(app fiber.Router, repo classController.Repository, images helperOSS.ImageStore, guard *authMiddleware.Guard) {
	ctrl := classController.NewClassController(repo, images)

	instructors := authMiddleware.Policy{
		Roles:   constants.InstructorAndAbove,
		Message: constants.RoleErrorInstructor("class creation"),
	}
	admins := authMiddleware.Policy{
		Roles:   constants.AdminOnly,
		Message: constants.RoleErrorAdmin("class review"),
	}

	app.Get("/class", ctrl.GetClasses)
	app.Get("/class/:id", ctrl.GetClass)
	app.Post("/class", guard.Require(instructors), ctrl.CreateClass)
	app.Post("/class/image", guard.Require(instructors), ctrl.UploadImage)
	app.Patch("/class-state/:state/:id", guard.Require(admins), ctrl.PatchState)
	app.Patch("/class-feedback/:feedback/:id", guard.Require(admins), ctrl.PatchFeedback)
}
