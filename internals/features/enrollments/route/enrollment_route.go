package route

import (
	"github.com/gofiber/fiber/v2"

	enrollController "summerschool_backend/internals/features/enrollments/controller"
)

func EnrollmentRoutes(app fiber.Router, repo enrollController.Repository) {
	ctrl := enrollController.NewEnrollmentController(repo)

	app.Get("/enroll", ctrl.GetEnrollments)
	app.Get("/enroll/export", ctrl.ExportEnrollments)
}
