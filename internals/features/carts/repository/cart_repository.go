package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	cartModel "summerschool_backend/internals/features/carts/model"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

func (r *CartRepository) ListByEmail(ctx context.Context, email string) ([]cartModel.CartItemModel, error) {
	items := make([]cartModel.CartItemModel, 0)
	if err := r.DB.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at ASC").Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	return items, nil
}

func (r *CartRepository) Add(ctx context.Context, item *cartModel.CartItemModel) error {
	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	return nil
}

// Delete returns the number of removed rows (0 for an unknown id).
func (r *CartRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&cartModel.CartItemModel{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete cart item: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteOlderThan removes items created before cutoff.
func (r *CartRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.DB.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&cartModel.CartItemModel{})
	if res.Error != nil {
		return 0, fmt.Errorf("sweep carts: %w", res.Error)
	}
	return res.RowsAffected, nil
}
