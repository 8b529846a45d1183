package controller

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"summerschool_backend/internals/features/enrollments/model"
	"summerschool_backend/internals/features/enrollments/service"
	helper "summerschool_backend/internals/helpers"
)

type Repository interface {
	List(ctx context.Context, email string) ([]model.EnrollmentModel, error)
}

type EnrollmentController struct {
	Repo Repository
}

func NewEnrollmentController(repo Repository) *EnrollmentController {
	return &EnrollmentController{Repo: repo}
}

// GET /enroll?email=
func (ec *EnrollmentController) GetEnrollments(c *fiber.Ctx) error {
	records, err := ec.Repo.List(c.UserContext(), strings.TrimSpace(c.Query("email")))
	if err != nil {
		return helper.Internal("failed to retrieve enrollments", err)
	}
	return helper.JsonArray(c, records)
}

// GET /enroll/export?email=
func (ec *EnrollmentController) ExportEnrollments(c *fiber.Ctx) error {
	records, err := ec.Repo.List(c.UserContext(), strings.TrimSpace(c.Query("email")))
	if err != nil {
		return helper.Internal("failed to retrieve enrollments", err)
	}
	buf, err := service.BuildWorkbook(records)
	if err != nil {
		return helper.Internal("failed to build export", err)
	}

	name := fmt.Sprintf("enrollments-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
