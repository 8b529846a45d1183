package seeds

import (
	"path/filepath"

	"gorm.io/gorm"

	"summerschool_backend/internals/seeds/classes"
	"summerschool_backend/internals/seeds/users"
)

// RunAllSeeds loads the JSON fixtures under dir (normally internals/seeds).
// Users go first so seeded classes have an instructor to credit.
func RunAllSeeds(db *gorm.DB, dir string) error {
	//* Users
	if err := users.SeedUsersFromJSON(db, filepath.Join(dir, "users", "data_users.json")); err != nil {
		return err
	}

	//* Classes
	return classes.SeedClassesFromJSON(db, filepath.Join(dir, "classes", "data_classes.json"))
}
