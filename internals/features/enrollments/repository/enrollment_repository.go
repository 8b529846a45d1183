package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	enrollModel "summerschool_backend/internals/features/enrollments/model"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

// List returns records newest first, optionally for one email.
func (r *EnrollmentRepository) List(ctx context.Context, email string) ([]enrollModel.EnrollmentModel, error) {
	tx := r.DB.WithContext(ctx).Model(&enrollModel.EnrollmentModel{})
	if email != "" {
		tx = tx.Where("email = ?", email)
	}
	records := make([]enrollModel.EnrollmentModel, 0)
	if err := tx.Order("created_at DESC").Order("id DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return records, nil
}

// Append writes one record; pass a transaction handle to join a checkout.
func Append(ctx context.Context, db *gorm.DB, rec *enrollModel.EnrollmentModel) error {
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("append enrollment: %w", err)
	}
	return nil
}
