package controller

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"summerschool_backend/internals/features/carts/dto"
	"summerschool_backend/internals/features/carts/model"
	helper "summerschool_backend/internals/helpers"
)

type Repository interface {
	ListByEmail(ctx context.Context, email string) ([]model.CartItemModel, error)
	Add(ctx context.Context, item *model.CartItemModel) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type CartController struct {
	Repo Repository
}

func NewCartController(repo Repository) *CartController {
	return &CartController{Repo: repo}
}

// GET /carts?email=
// No email means an empty cart, not an error.
func (cc *CartController) GetCart(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		return helper.JsonArray(c, []model.CartItemModel{})
	}
	items, err := cc.Repo.ListByEmail(c.UserContext(), email)
	if err != nil {
		return helper.Internal("failed to retrieve cart", err)
	}
	return helper.JsonArray(c, items)
}

// POST /carts
func (cc *CartController) AddItem(c *fiber.Ctx) error {
	var req dto.AddCartItemRequest
	if err := helper.BindJSON(c, &req); err != nil {
		return err
	}

	item := req.ToModel()
	if err := cc.Repo.Add(c.UserContext(), item); err != nil {
		return helper.Internal("failed to add cart item", err)
	}
	return helper.JsonInserted(c, item.ID.String())
}

// DELETE /carts/:id
func (cc *CartController) DeleteItem(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	deleted, err := cc.Repo.Delete(c.UserContext(), id)
	if err != nil {
		return helper.Internal("failed to delete cart item", err)
	}
	return helper.JsonDeleted(c, deleted)
}
