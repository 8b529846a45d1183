package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"summerschool_backend/internals/constants"
	"summerschool_backend/internals/features/users/user/dto"
	userModel "summerschool_backend/internals/features/users/user/model"
)

var ErrNotFound = errors.New("user not found")

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

/* ====================== READ ====================== */

func (r *UserRepository) List(ctx context.Context, q dto.ListQuery) ([]userModel.UserModel, error) {
	tx := r.DB.WithContext(ctx).Model(&userModel.UserModel{})
	if q.Role != "" {
		tx = tx.Where("role = ?", q.Role)
	}
	if q.Role == constants.RoleInstructor && q.SortByEnrolled {
		tx = tx.Order("enrolled_students DESC NULLS LAST")
	}
	tx = tx.Order("created_at ASC").Order("id ASC")

	users := make([]userModel.UserModel, 0)
	if err := tx.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// RoleOf lets the access guard resolve roles.
func (r *UserRepository) RoleOf(ctx context.Context, email string) (string, bool, error) {
	user, err := r.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return user.Role, true, nil
}

/* ====================== WRITE ====================== */

// Create inserts the user unless the email exists. created is false on a duplicate.
func (r *UserRepository) Create(ctx context.Context, user *userModel.UserModel) (bool, error) {
	res := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(user)
	if res.Error != nil {
		return false, fmt.Errorf("create user: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// PatchRole sets the role. Promotion to instructor initialises enrolled_students
// to 0 only when it is still NULL.
func (r *UserRepository) PatchRole(ctx context.Context, id uuid.UUID, role string) (matched, modified int64, err error) {
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&userModel.UserModel{}).Where("id = ?", id).Count(&matched).Error; err != nil {
			return fmt.Errorf("count user: %w", err)
		}
		if matched == 0 {
			return nil
		}

		updates := map[string]any{"role": role}
		if role == constants.RoleInstructor {
			updates["enrolled_students"] = gorm.Expr("COALESCE(enrolled_students, 0)")
		}
		res := tx.Model(&userModel.UserModel{}).
			Where("id = ?", id).
			Where("role IS DISTINCT FROM ? OR (? AND enrolled_students IS NULL)", role, role == constants.RoleInstructor).
			Updates(updates)
		if res.Error != nil {
			return fmt.Errorf("patch role: %w", res.Error)
		}
		modified = res.RowsAffected
		return nil
	})
	return matched, modified, err
}
