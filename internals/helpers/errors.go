package helper

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Stable error kinds written to error_code.
const (
	KindBadRequest     = "BAD_REQUEST"
	KindUnauthorized   = "UNAUTHORIZED"
	KindForbidden      = "FORBIDDEN"
	KindNotFound       = "NOT_FOUND"
	KindConflict       = "CONFLICT"
	KindSeatsExhausted = "SEATS_EXHAUSTED"
	KindValidation     = "VALIDATION_ERROR"
	KindRateLimited    = "RATE_LIMITED"
	KindUnavailable    = "UNAVAILABLE"
	KindInternal       = "INTERNAL_ERROR"
)

// AppError is the typed error every handler returns; ErrorHandler renders it.
type AppError struct {
	Kind    string
	Status  int
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return e.Kind + ": " + e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewAppError(status int, message string) *AppError {
	return &AppError{Kind: statusToErrorCode(status), Status: status, Message: message}
}

func BadRequest(msg string) *AppError   { return NewAppError(fiber.StatusBadRequest, msg) }
func Unauthorized(msg string) *AppError { return NewAppError(fiber.StatusUnauthorized, msg) }
func Forbidden(msg string) *AppError    { return NewAppError(fiber.StatusForbidden, msg) }
func NotFound(msg string) *AppError     { return NewAppError(fiber.StatusNotFound, msg) }
func Unavailable(msg string) *AppError  { return NewAppError(fiber.StatusServiceUnavailable, msg) }

func SeatsExhausted(msg string) *AppError {
	return &AppError{Kind: KindSeatsExhausted, Status: fiber.StatusConflict, Message: msg}
}

func Validation(fields map[string][]string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Status:  fiber.StatusUnprocessableEntity,
		Message: "validation failed",
		Fields:  fields,
	}
}

// Internal wraps a store failure; the cause is logged, not sent.
func Internal(msg string, err error) *AppError {
	return &AppError{Kind: KindInternal, Status: fiber.StatusInternalServerError, Message: msg, Err: err}
}

// ErrorHandler is installed as fiber.Config.ErrorHandler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ae *AppError
	if errors.As(err, &ae) {
		if ae.Status >= 500 {
			log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), ae)
		}
		return JsonAppError(c, ae)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}

	if status, msg, ok := mapPGError(err); ok {
		if status >= 500 {
			log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
		}
		return JsonError(c, status, msg)
	}

	log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	return JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
}

// --- PG error mapping (pgx/libpq) ---
func mapPGError(err error) (int, string, bool) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgCode(pgxErr.Code)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pgCode(string(pqErr.Code))
	}
	return 0, "", false
}

func pgCode(code string) (int, string, bool) {
	switch code {
	case "23505":
		return http.StatusConflict, "duplicate record (unique violation)", true
	case "23503":
		return http.StatusBadRequest, "referenced record not found", true
	case "23514":
		return http.StatusUnprocessableEntity, "check constraint violated", true
	default:
		return http.StatusInternalServerError, "database error", true
	}
}
