package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"summerschool_backend/internals/configs"
	"summerschool_backend/internals/middlewares/logger"
)

// ApplyProxyConfig makes c.IP() read X-Forwarded-For only when the socket peer
// is one of trusted; the per-IP limiters key on c.IP().
func ApplyProxyConfig(fc *fiber.Config, trusted []string) {
	fc.ProxyHeader = fiber.HeaderXForwardedFor
	fc.EnableTrustedProxyCheck = true
	fc.TrustedProxies = trusted
}

// SetupMiddlewares installs the global chain, outermost first.
func SetupMiddlewares(app *fiber.App, cfg configs.Config) {
	app.Use(RequestContext(cfg.RequestTimeout))
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware(cfg.CORSOrigins))
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter(cfg.RateLimitPerMinute))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
}
