package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"summerschool_backend/internals/features/checkout/dto"
	helper "summerschool_backend/internals/helpers"
)

type Service interface {
	Checkout(ctx context.Context, in dto.CheckoutInput) (*dto.CheckoutResult, error)
	CreateIntent(ctx context.Context, req dto.IntentRequest) (*dto.IntentResponse, error)
}

type CheckoutController struct {
	Svc Service
}

func NewCheckoutController(svc Service) *CheckoutController {
	return &CheckoutController{Svc: svc}
}

// POST /checkout
func (cc *CheckoutController) Checkout(c *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := helper.BindJSON(c, &req); err != nil {
		return err
	}
	return cc.run(c, req)
}

// DELETE /pay/:id/:classID/:myEmail?transactionId=
func (cc *CheckoutController) LegacyPay(c *fiber.Ctx) error {
	req := dto.CheckoutRequest{
		CartItemID:    helper.PathParam(c, "id"),
		ClassID:       helper.PathParam(c, "classID"),
		Email:         helper.PathParam(c, "myEmail"),
		TransactionID: c.Query("transactionId"),
	}
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}
	return cc.run(c, req)
}

func (cc *CheckoutController) run(c *fiber.Ctx, req dto.CheckoutRequest) error {
	res, err := cc.Svc.Checkout(c.UserContext(), req.ToInput())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// POST /checkout/intent
func (cc *CheckoutController) CreateIntent(c *fiber.Ctx) error {
	var req dto.IntentRequest
	if err := helper.BindJSON(c, &req); err != nil {
		return err
	}
	res, err := cc.Svc.CreateIntent(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}
