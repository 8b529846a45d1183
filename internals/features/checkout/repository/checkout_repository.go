package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	cartModel "summerschool_backend/internals/features/carts/model"
	"summerschool_backend/internals/features/checkout/dto"
	classModel "summerschool_backend/internals/features/classes/model"
	enrollModel "summerschool_backend/internals/features/enrollments/model"
	enrollRepo "summerschool_backend/internals/features/enrollments/repository"
	userModel "summerschool_backend/internals/features/users/user/model"
)

var (
	ErrClassNotFound      = errors.New("class not found")
	ErrSeatsExhausted     = errors.New("no seats left")
	ErrInstructorNotFound = errors.New("instructor not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
)

type CheckoutRepository struct {
	DB *gorm.DB
}

func NewCheckoutRepository(db *gorm.DB) *CheckoutRepository {
	return &CheckoutRepository{DB: db}
}

// Checkout takes a seat, credits the instructor, appends the enrollment and
// removes the cart item. Any failure rolls all of it back.
func (r *CheckoutRepository) Checkout(ctx context.Context, in dto.CheckoutInput) (*enrollModel.EnrollmentModel, error) {
	var rec *enrollModel.EnrollmentModel

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var class classModel.ClassModel
		res := tx.Model(&class).
			Clauses(clause.Returning{}).
			Where("id = ? AND seats > 0", in.ClassID).
			Updates(map[string]any{
				"seats":             gorm.Expr("seats - 1"),
				"enrolled_students": gorm.Expr("enrolled_students + 1"),
			})
		if res.Error != nil {
			return fmt.Errorf("take seat: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return classMiss(tx, in)
		}

		res = tx.Model(&userModel.UserModel{}).
			Where("email = ?", class.Email).
			Update("enrolled_students", gorm.Expr("COALESCE(enrolled_students, 0) + 1"))
		if res.Error != nil {
			return fmt.Errorf("credit instructor: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrInstructorNotFound
		}

		rec = &enrollModel.EnrollmentModel{
			Email:         in.Email,
			ClassID:       class.ID,
			Name:          class.Name,
			Price:         class.Price,
			Image:         class.Image,
			TransactionID: in.TransactionID,
			ClassSnapshot: datatypes.JSONMap(class.Snapshot()),
		}
		if err := enrollRepo.Append(ctx, tx, rec); err != nil {
			return err
		}

		res = tx.Where("id = ?", in.CartItemID).Delete(&cartModel.CartItemModel{})
		if res.Error != nil {
			return fmt.Errorf("remove cart item: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrCartItemNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// classMiss tells a missing class apart from a full one.
func classMiss(tx *gorm.DB, in dto.CheckoutInput) error {
	var n int64
	if err := tx.Model(&classModel.ClassModel{}).Where("id = ?", in.ClassID).Count(&n).Error; err != nil {
		return fmt.Errorf("lookup class: %w", err)
	}
	if n == 0 {
		return ErrClassNotFound
	}
	return ErrSeatsExhausted
}
