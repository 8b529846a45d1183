package dto

import (
	"strings"

	"github.com/google/uuid"
)

// CheckoutRequest POST /checkout
type CheckoutRequest struct {
	CartItemID    string `json:"cartItemId" validate:"required,uuid"`
	ClassID       string `json:"classId" validate:"required,uuid"`
	Email         string `json:"email" validate:"required,email,max=255"`
	TransactionID string `json:"transactionId" validate:"omitempty,max=255"`
}

func (r *CheckoutRequest) Normalize() {
	r.CartItemID = strings.TrimSpace(r.CartItemID)
	r.ClassID = strings.TrimSpace(r.ClassID)
	r.Email = strings.TrimSpace(r.Email)
	r.TransactionID = strings.TrimSpace(r.TransactionID)
}

// ToInput expects a validated request.
func (r *CheckoutRequest) ToInput() CheckoutInput {
	return CheckoutInput{
		CartItemID:    uuid.MustParse(r.CartItemID),
		ClassID:       uuid.MustParse(r.ClassID),
		Email:         r.Email,
		TransactionID: r.TransactionID,
	}
}

type CheckoutInput struct {
	CartItemID    uuid.UUID
	ClassID       uuid.UUID
	Email         string
	TransactionID string
}

// CheckoutResult keeps the cart delete acknowledgement shape.
type CheckoutResult struct {
	Acknowledged bool   `json:"acknowledged"`
	DeletedCount int64  `json:"deletedCount"`
	EnrollmentID string `json:"enrollmentId"`
}

// IntentRequest POST /checkout/intent
type IntentRequest struct {
	ClassID string `json:"classId" validate:"required,uuid"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Name    string `json:"name" validate:"omitempty,max=255"`
}

func (r *IntentRequest) Normalize() {
	r.ClassID = strings.TrimSpace(r.ClassID)
	r.Email = strings.TrimSpace(r.Email)
	r.Name = strings.TrimSpace(r.Name)
}

type IntentResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirectUrl"`
	OrderID     string `json:"orderId"`
}
