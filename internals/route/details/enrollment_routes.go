package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cartRepo "summerschool_backend/internals/features/carts/repository"
	cartRoutes "summerschool_backend/internals/features/carts/route"
	checkoutRepo "summerschool_backend/internals/features/checkout/repository"
	checkoutRoutes "summerschool_backend/internals/features/checkout/route"
	checkoutService "summerschool_backend/internals/features/checkout/service"
	classRepo "summerschool_backend/internals/features/classes/repository"
	enrollRepo "summerschool_backend/internals/features/enrollments/repository"
	enrollRoutes "summerschool_backend/internals/features/enrollments/route"
)

// EnrollmentRoutes: cart, checkout and the enrollment ledger.
func EnrollmentRoutes(app *fiber.App, db *gorm.DB, payments checkoutService.PaymentGateway) {
	cartRoutes.CartRoutes(app, cartRepo.NewCartRepository(db))

	svc := checkoutService.NewCheckoutService(
		checkoutRepo.NewCheckoutRepository(db),
		classRepo.NewClassRepository(db),
		payments,
	)
	checkoutRoutes.CheckoutRoutes(app, svc)

	enrollRoutes.EnrollmentRoutes(app, enrollRepo.NewEnrollmentRepository(db))
}
