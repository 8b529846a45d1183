package service

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"summerschool_backend/internals/features/checkout/dto"
	"summerschool_backend/internals/features/checkout/repository"
	classModel "summerschool_backend/internals/features/classes/model"
	classRepo "summerschool_backend/internals/features/classes/repository"
	enrollModel "summerschool_backend/internals/features/enrollments/model"
	helper "summerschool_backend/internals/helpers"
	"summerschool_backend/internals/metrics"
)

// Store runs the whole checkout as one unit.
type Store interface {
	Checkout(ctx context.Context, in dto.CheckoutInput) (*enrollModel.EnrollmentModel, error)
}

type ClassFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*classModel.ClassModel, error)
}

type CheckoutService struct {
	Store   Store
	Classes ClassFinder
	Gateway PaymentGateway // nil when payments are not configured
}

func NewCheckoutService(store Store, classes ClassFinder, gateway PaymentGateway) *CheckoutService {
	return &CheckoutService{Store: store, Classes: classes, Gateway: gateway}
}

func (s *CheckoutService) Checkout(ctx context.Context, in dto.CheckoutInput) (*dto.CheckoutResult, error) {
	start := time.Now()
	rec, err := s.Store.Checkout(ctx, in)
	metrics.CheckoutDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		result, appErr := checkoutError(err)
		metrics.CheckoutResults.WithLabelValues(result).Inc()
		if result == metrics.ResultError {
			log.Printf("[ERROR] checkout class=%s cart=%s: %v", in.ClassID, in.CartItemID, err)
		} else {
			log.Printf("[WARN] checkout class=%s cart=%s rejected: %v", in.ClassID, in.CartItemID, err)
		}
		return nil, appErr
	}

	metrics.CheckoutResults.WithLabelValues(metrics.ResultSuccess).Inc()
	log.Printf("[SUCCESS] %s enrolled in class %s (enrollment %s)", in.Email, in.ClassID, rec.ID)
	return &dto.CheckoutResult{
		Acknowledged: true,
		DeletedCount: 1,
		EnrollmentID: rec.ID.String(),
	}, nil
}

func checkoutError(err error) (string, error) {
	switch {
	case errors.Is(err, repository.ErrSeatsExhausted):
		return metrics.ResultSeatsExhausted, helper.SeatsExhausted("No seats available for this class")
	case errors.Is(err, repository.ErrClassNotFound):
		return metrics.ResultNotFound, helper.NotFound("Class not found")
	case errors.Is(err, repository.ErrInstructorNotFound):
		return metrics.ResultNotFound, helper.NotFound("Instructor not found")
	case errors.Is(err, repository.ErrCartItemNotFound):
		return metrics.ResultNotFound, helper.NotFound("Item not found in cart")
	case errors.Is(err, context.DeadlineExceeded):
		return metrics.ResultError, helper.Unavailable("checkout timed out, try again")
	default:
		return metrics.ResultError, helper.Internal("checkout failed", err)
	}
}

// CreateIntent opens a payment page for a class that still has seats.
// The seat itself is only taken by Checkout.
func (s *CheckoutService) CreateIntent(ctx context.Context, req dto.IntentRequest) (*dto.IntentResponse, error) {
	if s.Gateway == nil {
		return nil, helper.Unavailable("payments are not configured")
	}
	id, err := uuid.Parse(req.ClassID)
	if err != nil {
		return nil, helper.BadRequest("invalid classId")
	}

	class, err := s.Classes.FindByID(ctx, id)
	if errors.Is(err, classRepo.ErrNotFound) {
		return nil, helper.NotFound("Class not found")
	}
	if err != nil {
		return nil, helper.Internal("failed to retrieve class", err)
	}
	if class.Seats <= 0 {
		return nil, helper.SeatsExhausted("No seats available for this class")
	}
	// IDR has no minor unit; the gateway takes whole rupiah.
	if class.Price != math.Trunc(class.Price) {
		return nil, helper.BadRequest("class price must be a whole IDR amount")
	}

	resp, err := s.Gateway.CreateIntent(IntentParams{
		OrderID:   "class-" + uuid.NewString(),
		ClassID:   class.ID.String(),
		ClassName: class.Name,
		Amount:    class.Price,
		Email:     req.Email,
		Name:      req.Name,
	})
	if err != nil {
		log.Printf("[ERROR] payment intent for class %s: %v", class.ID, err)
		return nil, helper.NewAppError(fiber.StatusBadGateway, "payment gateway error")
	}
	return resp, nil
}
