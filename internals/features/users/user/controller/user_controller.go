package controller

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"summerschool_backend/internals/constants"
	"summerschool_backend/internals/features/users/user/dto"
	"summerschool_backend/internals/features/users/user/model"
	"summerschool_backend/internals/features/users/user/repository"
	helper "summerschool_backend/internals/helpers"
)

type Repository interface {
	List(ctx context.Context, q dto.ListQuery) ([]model.UserModel, error)
	FindByEmail(ctx context.Context, email string) (*model.UserModel, error)
	Create(ctx context.Context, user *model.UserModel) (bool, error)
	PatchRole(ctx context.Context, id uuid.UUID, role string) (matched, modified int64, err error)
}

type UserController struct {
	Repo Repository
}

func NewUserController(repo Repository) *UserController {
	return &UserController{Repo: repo}
}

// GET /users?role=&sort=
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	q := dto.ListQuery{
		Role:           c.Query("role"),
		SortByEnrolled: helper.QueryFlag(c, "sort"),
	}
	if q.Role != "" && !constants.IsValidRole(q.Role) {
		return helper.Validation(map[string][]string{"role": {"oneof"}})
	}

	users, err := uc.Repo.List(c.UserContext(), q)
	if err != nil {
		return helper.Internal("failed to retrieve users", err)
	}
	return helper.JsonArray(c, users)
}

// POST /users
// Signup calls this on every login; an existing email is acknowledged without insert.
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := helper.BindJSON(c, &req); err != nil {
		return err
	}

	user := req.ToModel()
	created, err := uc.Repo.Create(c.UserContext(), user)
	if err != nil {
		return helper.Internal("failed to create user", err)
	}
	if !created {
		return helper.JsonNotInserted(c, "user already exists")
	}

	log.Printf("[SUCCESS] user %s signed up", user.Email)
	return helper.JsonInserted(c, user.ID.String())
}

// GET /users/role/:email
func (uc *UserController) GetRole(c *fiber.Ctx) error {
	user, err := uc.Repo.FindByEmail(c.UserContext(), helper.PathParam(c, "email"))
	if errors.Is(err, repository.ErrNotFound) {
		return helper.NotFound("user not found")
	}
	if err != nil {
		return helper.Internal("failed to retrieve user", err)
	}
	return helper.JsonOK(c, dto.RoleResponse{Role: user.Role})
}

// GET /users/admin/:email
func (uc *UserController) IsAdmin(c *fiber.Ctx) error {
	user, err := uc.Repo.FindByEmail(c.UserContext(), helper.PathParam(c, "email"))
	if errors.Is(err, repository.ErrNotFound) {
		return helper.JsonOK(c, dto.AdminResponse{Admin: false})
	}
	if err != nil {
		return helper.Internal("failed to retrieve user", err)
	}
	return helper.JsonOK(c, dto.AdminResponse{Admin: user.Role == constants.RoleAdmin})
}

// PATCH /users/:role/:id
func (uc *UserController) PatchRole(c *fiber.Ctx) error {
	role := helper.PathParam(c, "role")
	if !constants.IsValidRole(role) {
		return helper.Validation(map[string][]string{"role": {"oneof"}})
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	matched, modified, err := uc.Repo.PatchRole(c.UserContext(), id, role)
	if err != nil {
		return helper.Internal("failed to update role", err)
	}
	if matched == 0 {
		return helper.NotFound("user not found")
	}

	log.Printf("[SUCCESS] user %s role -> %s", id, role)
	return helper.JsonUpdated(c, matched, modified)
}
