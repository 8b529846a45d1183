package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"summerschool_backend/internals/configs"
	checkoutService "summerschool_backend/internals/features/checkout/service"
	tokenService "summerschool_backend/internals/features/users/auth/service"
	userRepo "summerschool_backend/internals/features/users/user/repository"
	helperOSS "summerschool_backend/internals/helpers/oss"
	authMiddleware "summerschool_backend/internals/middlewares/auth"
	routeDetails "summerschool_backend/internals/route/details"
)

var startTime time.Time

// Deps are built once in main and shared by every route group.
type Deps struct {
	DB       *gorm.DB
	Config   configs.Config
	Images   helperOSS.ImageStore           // nil without OSS
	Payments checkoutService.PaymentGateway // nil without Midtrans
}

func SetupRoutes(app *fiber.App, deps Deps) {
	startTime = time.Now()

	tokens := tokenService.NewTokenService(deps.Config.JWTSecret, deps.Config.JWTTTL)
	users := userRepo.NewUserRepository(deps.DB)
	guard := authMiddleware.NewGuard(tokens, users, deps.Config.EnforceRoles)

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, deps.DB)

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, tokens, users, guard)

	log.Println("[INFO] Setting up ClassRoutes...")
	routeDetails.ClassRoutes(app, deps.DB, deps.Images, guard)

	log.Println("[INFO] Setting up EnrollmentRoutes...")
	routeDetails.EnrollmentRoutes(app, deps.DB, deps.Payments)

	if deps.Config.EnforceRoles {
		log.Println("[INFO] Role checks enforced")
	} else {
		log.Println("[WARN] Role checks disabled (AUTH_ENFORCE_ROLES=false)")
	}
}
