package dto

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"summerschool_backend/internals/constants"
	classModel "summerschool_backend/internals/features/classes/model"
)

const MaxFeedbackRunes = 1000

// CreateClassRequest POST /class
type CreateClassRequest struct {
	Name           string   `json:"name" validate:"required,max=255"`
	Email          string   `json:"email" validate:"required,email,max=255"`
	InstructorName string   `json:"instructorName" validate:"omitempty,max=255"`
	Price          *float64 `json:"price" validate:"required,gte=0"`
	Seats          *int     `json:"seats" validate:"required,gte=0"`
	Image          string   `json:"image" validate:"omitempty,max=2048"`
	State          string   `json:"state" validate:"omitempty,oneof=pending approved denied"`
}

func (r *CreateClassRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.InstructorName = strings.TrimSpace(r.InstructorName)
	r.Image = strings.TrimSpace(r.Image)
	r.State = strings.ToLower(strings.TrimSpace(r.State))
	if r.State == "" {
		r.State = constants.ClassPending
	}
}

// ToModel: enrolled_students always starts at 0.
func (r *CreateClassRequest) ToModel() *classModel.ClassModel {
	m := &classModel.ClassModel{
		Name:           r.Name,
		Email:          r.Email,
		InstructorName: r.InstructorName,
		Image:          r.Image,
		State:          r.State,
	}
	if r.Price != nil {
		m.Price = *r.Price
	}
	if r.Seats != nil {
		m.Seats = *r.Seats
	}
	return m
}

// ListQuery: GET /class?state=&popular=&email=
type ListQuery struct {
	State   string
	Email   string
	Popular bool
}

// NormalizeFeedback trims and NFC-normalizes; ok is false when empty or too long.
func NormalizeFeedback(raw string) (string, bool) {
	fb := norm.NFC.String(strings.TrimSpace(raw))
	if fb == "" || utf8.RuneCountInString(fb) > MaxFeedbackRunes {
		return "", false
	}
	return fb, true
}

type ImageResponse struct {
	URL string `json:"url"`
}
