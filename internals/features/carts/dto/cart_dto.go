package dto

import (
	"strings"

	"github.com/google/uuid"

	cartModel "summerschool_backend/internals/features/carts/model"
)

// AddCartItemRequest POST /carts
type AddCartItemRequest struct {
	Email   string   `json:"email" validate:"required,email,max=255"`
	ClassID string   `json:"classId" validate:"required,uuid"`
	Name    string   `json:"name" validate:"required,max=255"`
	Price   *float64 `json:"price" validate:"required,gte=0"`
	Image   string   `json:"image" validate:"omitempty,max=2048"`
}

func (r *AddCartItemRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.ClassID = strings.TrimSpace(r.ClassID)
	r.Name = strings.TrimSpace(r.Name)
	r.Image = strings.TrimSpace(r.Image)
}

// ToModel expects a validated request.
func (r *AddCartItemRequest) ToModel() *cartModel.CartItemModel {
	m := &cartModel.CartItemModel{
		Email:   r.Email,
		ClassID: uuid.MustParse(r.ClassID),
		Name:    r.Name,
		Image:   r.Image,
	}
	if r.Price != nil {
		m.Price = *r.Price
	}
	return m
}
