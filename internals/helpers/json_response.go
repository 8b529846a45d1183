package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error helpers (standard shape)
=================================*/

type ErrorResponse struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code,omitempty"`
	Errors    map[string][]string `json:"errors,omitempty"`
}

func statusToErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return KindBadRequest
	case fiber.StatusUnauthorized:
		return KindUnauthorized
	case fiber.StatusForbidden:
		return KindForbidden
	case fiber.StatusNotFound:
		return KindNotFound
	case fiber.StatusUnprocessableEntity:
		return KindValidation
	case fiber.StatusConflict:
		return KindConflict
	case fiber.StatusTooManyRequests:
		return KindRateLimited
	case fiber.StatusServiceUnavailable:
		return KindUnavailable
	default:
		if status >= 500 {
			return KindInternal
		}
		return "ERROR"
	}
}

// JsonError: generic (non-validation) error
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(ErrorResponse{
		Success:   false,
		Message:   message,
		ErrorCode: statusToErrorCode(status),
	})
}

// JsonAppError renders an AppError with its stable kind.
func JsonAppError(c *fiber.Ctx, e *AppError) error {
	return c.Status(e.Status).JSON(ErrorResponse{
		Success:   false,
		Message:   e.Message,
		ErrorCode: e.Kind,
		Errors:    e.Fields,
	})
}

/* ===============================
   Store acknowledgements
=================================*/

type InsertAck struct {
	Acknowledged bool    `json:"acknowledged"`
	InsertedID   *string `json:"insertedId"`
	Message      string  `json:"message,omitempty"`
}

type UpdateAck struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteAck struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// JsonArray always writes a JSON array, never null.
func JsonArray[T any](c *fiber.Ctx, items []T) error {
	if items == nil {
		items = []T{}
	}
	return c.Status(fiber.StatusOK).JSON(items)
}

// JsonInserted: 201 with the new id.
func JsonInserted(c *fiber.Ctx, id string) error {
	return c.Status(fiber.StatusCreated).JSON(InsertAck{Acknowledged: true, InsertedID: &id})
}

// JsonNotInserted: 200, the store already had the record.
func JsonNotInserted(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(InsertAck{Acknowledged: true, Message: message})
}

func JsonUpdated(c *fiber.Ctx, matched, modified int64) error {
	return c.Status(fiber.StatusOK).JSON(UpdateAck{
		Acknowledged:  true,
		MatchedCount:  matched,
		ModifiedCount: modified,
	})
}

func JsonDeleted(c *fiber.Ctx, deleted int64) error {
	return c.Status(fiber.StatusOK).JSON(DeleteAck{Acknowledged: true, DeletedCount: deleted})
}

// JsonOK: plain 200 with the payload as-is.
func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}
