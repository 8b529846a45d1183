package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"summerschool_backend/internals/features/classes/dto"
	classModel "summerschool_backend/internals/features/classes/model"
)

var ErrNotFound = errors.New("class not found")

type ClassRepository struct {
	DB *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{DB: db}
}

func (r *ClassRepository) List(ctx context.Context, q dto.ListQuery) ([]classModel.ClassModel, error) {
	tx := r.DB.WithContext(ctx).Model(&classModel.ClassModel{})
	if q.State != "" {
		tx = tx.Where("state = ?", q.State)
	}
	if q.Email != "" {
		tx = tx.Where("email = ?", q.Email)
	}
	if q.Popular {
		tx = tx.Order("enrolled_students DESC")
	}
	// stable tie order
	tx = tx.Order("created_at ASC").Order("id ASC")

	classes := make([]classModel.ClassModel, 0)
	if err := tx.Find(&classes).Error; err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

func (r *ClassRepository) FindByID(ctx context.Context, id uuid.UUID) (*classModel.ClassModel, error) {
	var class classModel.ClassModel
	err := r.DB.WithContext(ctx).First(&class, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find class: %w", err)
	}
	return &class, nil
}

func (r *ClassRepository) Create(ctx context.Context, class *classModel.ClassModel) error {
	class.EnrolledStudents = 0
	if err := r.DB.WithContext(ctx).Create(class).Error; err != nil {
		return fmt.Errorf("create class: %w", err)
	}
	return nil
}

func (r *ClassRepository) PatchState(ctx context.Context, id uuid.UUID, state string) (int64, int64, error) {
	return r.patchColumn(ctx, id, "state", state)
}

func (r *ClassRepository) PatchFeedback(ctx context.Context, id uuid.UUID, feedback string) (int64, int64, error) {
	return r.patchColumn(ctx, id, "feedback", feedback)
}

// patchColumn reports matched/modified the way a document store would:
// writing the current value matches but does not modify.
func (r *ClassRepository) patchColumn(ctx context.Context, id uuid.UUID, column string, value any) (matched, modified int64, err error) {
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&classModel.ClassModel{}).Where("id = ?", id).Count(&matched).Error; err != nil {
			return fmt.Errorf("count class: %w", err)
		}
		if matched == 0 {
			return nil
		}
		res := tx.Model(&classModel.ClassModel{}).
			Where("id = ?", id).
			Where(column+" IS DISTINCT FROM ?", value).
			Update(column, value)
		if res.Error != nil {
			return fmt.Errorf("patch class %s: %w", column, res.Error)
		}
		modified = res.RowsAffected
		return nil
	})
	return matched, modified, err
}
