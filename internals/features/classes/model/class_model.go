package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassModel is a row of classes. Seats is only decremented through checkout,
// which never takes it below zero.
type ClassModel struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Name             string    `gorm:"size:255;not null" json:"name"`
	Email            string    `gorm:"size:255;not null;index" json:"email"`
	InstructorName   string    `gorm:"size:255" json:"instructorName,omitempty"`
	Price            float64   `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	Seats            int       `gorm:"not null;default:0;check:seats >= 0" json:"seats"`
	EnrolledStudents int       `gorm:"not null;default:0;index" json:"enrolledStudents"`
	State            string    `gorm:"type:varchar(20);not null;default:'pending';index" json:"state"`
	Feedback         string    `gorm:"type:text" json:"feedback,omitempty"`
	Image            string    `gorm:"type:text" json:"image,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (ClassModel) TableName() string {
	return "classes"
}

// Snapshot is the denormalized copy kept on enrollment records.
func (m ClassModel) Snapshot() map[string]any {
	return map[string]any{
		"id":             m.ID.String(),
		"name":           m.Name,
		"email":          m.Email,
		"instructorName": m.InstructorName,
		"price":          m.Price,
		"image":          m.Image,
		"state":          m.State,
	}
}
