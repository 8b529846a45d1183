package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EnrollmentModel is an append-only ledger row written by checkout.
type EnrollmentModel struct {
	ID            uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Email         string            `gorm:"size:255;not null;index:idx_enrollments_email_created,priority:1" json:"email"`
	ClassID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"classId"`
	Name          string            `gorm:"size:255;not null" json:"name"`
	Price         float64           `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	Image         string            `gorm:"type:text" json:"image,omitempty"`
	TransactionID string            `gorm:"size:255" json:"transactionId,omitempty"`
	ClassSnapshot datatypes.JSONMap `gorm:"type:jsonb" json:"classSnapshot,omitempty"`
	CreatedAt     time.Time         `gorm:"autoCreateTime;index:idx_enrollments_email_created,priority:2" json:"createdAt"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}
