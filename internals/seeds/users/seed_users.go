package users

import (
	"fmt"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"summerschool_backend/internals/constants"
	"summerschool_backend/internals/features/users/user/model"
)

type UserSeed struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
	Role     string `json:"role"`
}

func LoadUsers(filePath string) ([]UserSeed, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filePath, err)
	}
	var seeds []UserSeed
	if err := sonic.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filePath, err)
	}
	for _, s := range seeds {
		if s.Email == "" || !constants.IsValidRole(s.Role) {
			return nil, fmt.Errorf("seed user %q: invalid email or role %q", s.Email, s.Role)
		}
	}
	return seeds, nil
}

// SeedUsersFromJSON inserts users that do not exist yet; existing emails are left alone.
func SeedUsersFromJSON(db *gorm.DB, filePath string) error {
	log.Println("[SEED] reading users:", filePath)
	seeds, err := LoadUsers(filePath)
	if err != nil {
		return err
	}

	inserted := 0
	for _, s := range seeds {
		u := model.UserModel{Email: s.Email, Name: s.Name, PhotoURL: s.PhotoURL, Role: s.Role}
		if s.Role == constants.RoleInstructor {
			zero := 0
			u.EnrolledStudents = &zero
		}
		res := db.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).Create(&u)
		if res.Error != nil {
			return fmt.Errorf("seed user %s: %w", s.Email, res.Error)
		}
		inserted += int(res.RowsAffected)
	}
	log.Printf("[SEED] users: %d inserted, %d skipped", inserted, len(seeds)-inserted)
	return nil
}
