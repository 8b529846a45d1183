package helper

import (
	"errors"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json names, not Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// ValidateStruct returns a VALIDATION_ERROR AppError or nil.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return BadRequest("invalid input")
	}
	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		tag := fe.Tag()
		if fe.Param() != "" {
			tag += "=" + fe.Param()
		}
		fields[fe.Field()] = append(fields[fe.Field()], tag)
	}
	return Validation(fields)
}

// ParseJSON decodes the body into dst without validating it.
func ParseJSON(c *fiber.Ctx, dst any) error {
	if len(c.Body()) == 0 {
		return BadRequest("request body is required")
	}
	if err := c.BodyParser(dst); err != nil {
		return BadRequest("invalid request body")
	}
	return nil
}

// Normalizer is implemented by request DTOs that trim or default their fields.
type Normalizer interface {
	Normalize()
}

// BindJSON parses the body into dst, normalizes it when dst is a Normalizer and
// validates it before any store access.
func BindJSON(c *fiber.Ctx, dst any) error {
	if err := ParseJSON(c, dst); err != nil {
		return err
	}
	if n, ok := dst.(Normalizer); ok {
		n.Normalize()
	}
	return ValidateStruct(dst)
}

// PathParam returns a path param with percent-escapes decoded.
func PathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if v, err := url.PathUnescape(raw); err == nil {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(raw)
}

// QueryFlag treats any value except "", "0" and "false" as set.
func QueryFlag(c *fiber.Ctx, name string) bool {
	switch strings.ToLower(strings.TrimSpace(c.Query(name))) {
	case "", "0", "false":
		return false
	}
	return true
}

// ParseUUIDParam reads a path param that must be a UUID.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, BadRequest(name + " is not a valid id")
	}
	return id, nil
}
