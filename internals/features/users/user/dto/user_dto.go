package dto

import (
	"strings"

	"summerschool_backend/internals/constants"
	uModel "summerschool_backend/internals/features/users/user/model"
)

// CreateUserRequest is the signup payload. Any role sent by the client is ignored.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Name     string `json:"name" validate:"omitempty,max=255"`
	PhotoURL string `json:"photoURL" validate:"omitempty,max=2048"`
}

func (r *CreateUserRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.Name = strings.TrimSpace(r.Name)
	r.PhotoURL = strings.TrimSpace(r.PhotoURL)
}

func (r *CreateUserRequest) ToModel() *uModel.UserModel {
	return &uModel.UserModel{
		Email:    r.Email,
		Name:     r.Name,
		PhotoURL: r.PhotoURL,
		Role:     constants.RoleStudent,
	}
}

type RoleResponse struct {
	Role string `json:"role"`
}

type AdminResponse struct {
	Admin bool `json:"admin"`
}

// ListQuery: GET /users?role=&sort=
type ListQuery struct {
	Role           string
	SortByEnrolled bool
}
