package route

import (
	"github.com/gofiber/fiber/v2"

	cartController "summerschool_backend/internals/features/carts/controller"
)

func CartRoutes(app fiber.Router, repo cartController.Repository) {
	ctrl := cartController.NewCartController(repo)

	app.Get("/carts", ctrl.GetCart)
	app.Post("/carts", ctrl.AddItem)
	app.Delete("/carts/:id", ctrl.DeleteItem)
}
