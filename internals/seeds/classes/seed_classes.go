package classes

import (
	"fmt"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"summerschool_backend/internals/constants"
	"summerschool_backend/internals/features/classes/model"
)

type ClassSeed struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	InstructorName string  `json:"instructorName"`
	Price          float64 `json:"price"`
	Seats          int     `json:"seats"`
	State          string  `json:"state"`
	Image          string  `json:"image"`
}

func LoadClasses(filePath string) ([]ClassSeed, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filePath, err)
	}
	var seeds []ClassSeed
	if err := sonic.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filePath, err)
	}
	for i := range seeds {
		if seeds[i].State == "" {
			seeds[i].State = constants.ClassPending
		}
		if seeds[i].Name == "" || seeds[i].Seats < 0 || seeds[i].Price < 0 || !constants.IsValidClassState(seeds[i].State) {
			return nil, fmt.Errorf("seed class %q: invalid fields", seeds[i].Name)
		}
	}
	return seeds, nil
}

// SeedClassesFromJSON skips a class when the same instructor already has one with that name.
func SeedClassesFromJSON(db *gorm.DB, filePath string) error {
	log.Println("[SEED] reading classes:", filePath)
	seeds, err := LoadClasses(filePath)
	if err != nil {
		return err
	}

	inserted := 0
	for _, s := range seeds {
		var n int64
		if err := db.Model(&model.ClassModel{}).Where("email = ? AND name = ?", s.Email, s.Name).Count(&n).Error; err != nil {
			return fmt.Errorf("check class %s: %w", s.Name, err)
		}
		if n > 0 {
			continue
		}
		c := model.ClassModel{
			Name:           s.Name,
			Email:          s.Email,
			InstructorName: s.InstructorName,
			Price:          s.Price,
			Seats:          s.Seats,
			State:          s.State,
			Image:          s.Image,
		}
		if err := db.Create(&c).Error; err != nil {
			return fmt.Errorf("seed class %s: %w", s.Name, err)
		}
		inserted++
	}
	log.Printf("[SEED] classes: %d inserted, %d skipped", inserted, len(seeds)-inserted)
	return nil
}
