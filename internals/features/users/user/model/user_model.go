package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is a row of users. EnrolledStudents stays NULL until the user is
// promoted to instructor.
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Email            string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name             string    `gorm:"size:255" json:"name,omitempty"`
	PhotoURL         string    `gorm:"column:photo_url;type:text" json:"photoURL,omitempty"`
	Role             string    `gorm:"type:varchar(20);not null;default:'student';index" json:"role"`
	EnrolledStudents *int      `gorm:"column:enrolled_students" json:"enrolledStudents,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (UserModel) TableName() string {
	return "users"
}
