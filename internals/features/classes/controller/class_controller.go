package controller

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"summerschool_backend/internals/constants"
	"summerschool_backend/internals/features/classes/dto"
	"summerschool_backend/internals/features/classes/model"
	"summerschool_backend/internals/features/classes/repository"
	helper "summerschool_backend/internals/helpers"
	helperOSS "summerschool_backend/internals/helpers/oss"
)

type Repository interface {
	List(ctx context.Context, q dto.ListQuery) ([]model.ClassModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.ClassModel, error)
	Create(ctx context.Context, class *model.ClassModel) error
	PatchState(ctx context.Context, id uuid.UUID, state string) (matched, modified int64, err error)
	PatchFeedback(ctx context.Context, id uuid.UUID, feedback string) (matched, modified int64, err error)
}

type ClassController struct {
	Repo   Repository
	Images helperOSS.ImageStore // nil when OSS is not configured
}

func NewClassController(repo Repository, images helperOSS.ImageStore) *ClassController {
	return &ClassController{Repo: repo, Images: images}
}

// GET /class?state=&popular=&email=
func (cc *ClassController) GetClasses(c *fiber.Ctx) error {
	q := dto.ListQuery{
		State:   c.Query("state"),
		Email:   c.Query("email"),
		Popular: helper.QueryFlag(c, "popular"),
	}
	classes, err := cc.Repo.List(c.UserContext(), q)
	if err != nil {
		return helper.Internal("failed to retrieve classes", err)
	}
	return helper.JsonArray(c, classes)
}

// GET /class/:id
func (cc *ClassController) GetClass(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	class, err := cc.Repo.FindByID(c.UserContext(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return helper.NotFound("Class not found")
	}
	if err != nil {
		return helper.Internal("failed to retrieve class", err)
	}
	return helper.JsonOK(c, class)
}

// POST /class
func (cc *ClassController) CreateClass(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := helper.BindJSON(c, &req); err != nil {
		return err
	}

	class := req.ToModel()
	if err := cc.Repo.Create(c.UserContext(), class); err != nil {
		return helper.Internal("failed to create class", err)
	}
	log.Printf("[SUCCESS] class %s created by %s", class.ID, class.Email)
	return helper.JsonInserted(c, class.ID.String())
}

// PATCH /class-state/:state/:id
func (cc *ClassController) PatchState(c *fiber.Ctx) error {
	state := helper.PathParam(c, "state")
	if !constants.IsValidClassState(state) {
		return helper.Validation(map[string][]string{"state": {"oneof=pending approved denied"}})
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	matched, modified, err := cc.Repo.PatchState(c.UserContext(), id, state)
	if err != nil {
		return helper.Internal("failed to update class state", err)
	}
	if matched == 0 {
		return helper.NotFound("Class not found")
	}
	return helper.JsonUpdated(c, matched, modified)
}

// PATCH /class-feedback/:feedback/:id
func (cc *ClassController) PatchFeedback(c *fiber.Ctx) error {
	feedback, ok := dto.NormalizeFeedback(helper.PathParam(c, "feedback"))
	if !ok {
		return helper.Validation(map[string][]string{"feedback": {"required", "max=1000"}})
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	matched, modified, err := cc.Repo.PatchFeedback(c.UserContext(), id, feedback)
	if err != nil {
		return helper.Internal("failed to update class feedback", err)
	}
	if matched == 0 {
		return helper.NotFound("Class not found")
	}
	return helper.JsonUpdated(c, matched, modified)
}

// POST /class/image (multipart, field "image")
func (cc *ClassController) UploadImage(c *fiber.Ctx) error {
	if cc.Images == nil {
		return helper.Unavailable("image storage is not configured")
	}
	fh, err := helperOSS.GetImageFile(c)
	if err != nil {
		return err
	}
	if fh == nil {
		return helper.Validation(map[string][]string{"image": {"required"}})
	}

	url, err := cc.Images.UploadImage(c.UserContext(), fh)
	if errors.Is(err, helperOSS.ErrUnsupportedFormat) {
		return helper.NewAppError(fiber.StatusUnsupportedMediaType, "unsupported image (jpg, png or webp up to 5MB)")
	}
	if err != nil {
		log.Printf("[ERROR] upload class image: %v", err)
		return helper.NewAppError(fiber.StatusBadGateway, "failed to upload image")
	}
	return helper.JsonOK(c, dto.ImageResponse{URL: url})
}
