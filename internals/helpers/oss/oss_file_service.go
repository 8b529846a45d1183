package helper

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ImageStore is what the class controller needs from blob storage.
type ImageStore interface {
	UploadImage(ctx context.Context, fh *multipart.FileHeader) (publicURL string, err error)
}

var _ ImageStore = (*OSSService)(nil)

// IsMultipart reports a multipart/form-data request.
func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, "multipart/form-data")
}

var defaultImageFields = []string{"image", "file", "photo"}

// GetImageFile looks for the upload under the usual field names.
// No file returns (nil, nil).
func GetImageFile(c *fiber.Ctx, fieldNames ...string) (*multipart.FileHeader, error) {
	if !IsMultipart(c) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "use multipart/form-data")
	}
	names := fieldNames
	if len(names) == 0 {
		names = defaultImageFields
	}
	for _, fn := range names {
		if fh, err := c.FormFile(fn); err == nil && fh != nil {
			return fh, nil
		}
	}
	return nil, nil
}

// MockImageStore for unit tests.
type MockImageStore struct {
	UploadImageFn func(ctx context.Context, fh *multipart.FileHeader) (string, error)
}

func (m *MockImageStore) UploadImage(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if m.UploadImageFn == nil {
		return "", errors.New("not implemented")
	}
	return m.UploadImageFn(ctx, fh)
}
