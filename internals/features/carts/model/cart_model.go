package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItemModel is one class selection waiting for payment. ClassID is not
// checked against classes.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	ClassID   uuid.UUID `gorm:"type:uuid;not null" json:"classId"`
	Name      string    `gorm:"size:255" json:"name"`
	Price     float64   `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	Image     string    `gorm:"type:text" json:"image,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (CartItemModel) TableName() string {
	return "carts"
}
