package repository

import (
	"context"
	"os"
	"strings"
	"testing"

	"gorm.io/gorm"

	"summerschool_backend/internals/configs"
	"summerschool_backend/internals/constants"
	database "summerschool_backend/internals/databases"
	"summerschool_backend/internals/features/users/user/dto"
	userModel "summerschool_backend/internals/features/users/user/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("Skipping test: TEST_DATABASE_URL not set")
	}
	db, err := database.ConnectDB(configs.Database{URL: url, ConnectAttempts: 1, MaxOpenConns: 5, MaxIdleConns: 2})
	if err != nil {
		t.Skipf("Skipping test: cannot connect to test database: %v", err)
	}
	t.Cleanup(func() { database.Close(db) })

	if err := database.Migrate(db, &userModel.UserModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// other packages share the database; only touch this package's rows
	if err := db.Exec("DELETE FROM users WHERE email LIKE ?", "%@users.test").Error; err != nil {
		t.Fatalf("clean users: %v", err)
	}
	return db
}

func TestUserRepository_CreateIsIdempotentPerEmail(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	first := &userModel.UserModel{Email: "a@users.test", Role: constants.RoleStudent}
	created, err := repo.Create(ctx, first)
	if err != nil || !created {
		t.Fatalf("first create = %v, %v", created, err)
	}

	again := &userModel.UserModel{Email: "a@users.test", Role: constants.RoleStudent}
	created, err = repo.Create(ctx, again)
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if created {
		t.Fatal("duplicate email was inserted")
	}
}

func TestUserRepository_PromotionInitialisesOnce(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &userModel.UserModel{Email: "t@users.test", Role: constants.RoleStudent}
	if _, err := repo.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	matched, modified, err := repo.PatchRole(ctx, u.ID, constants.RoleInstructor)
	if err != nil || matched != 1 || modified != 1 {
		t.Fatalf("promote = %d/%d, %v", matched, modified, err)
	}
	got, _ := repo.FindByEmail(ctx, "t@users.test")
	if got.EnrolledStudents == nil || *got.EnrolledStudents != 0 {
		t.Fatalf("enrolled_students = %v, want 0", got.EnrolledStudents)
	}

	if err := db.Exec("UPDATE users SET enrolled_students = 7 WHERE id = ?", u.ID).Error; err != nil {
		t.Fatalf("seed count: %v", err)
	}

	// patching to the same role matches but changes nothing
	matched, modified, err = repo.PatchRole(ctx, u.ID, constants.RoleInstructor)
	if err != nil || matched != 1 || modified != 0 {
		t.Fatalf("re-promote = %d/%d, %v", matched, modified, err)
	}
	if _, _, err := repo.PatchRole(ctx, u.ID, constants.RoleAdmin); err != nil {
		t.Fatalf("to admin: %v", err)
	}
	if _, _, err := repo.PatchRole(ctx, u.ID, constants.RoleInstructor); err != nil {
		t.Fatalf("back to instructor: %v", err)
	}
	got, _ = repo.FindByEmail(ctx, "t@users.test")
	if got.EnrolledStudents == nil || *got.EnrolledStudents != 7 {
		t.Fatalf("enrolled_students reset to %v", got.EnrolledStudents)
	}
}

func TestUserRepository_ListInstructorsByEnrolled(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for _, seed := range []struct {
		email string
		role  string
		n     any
	}{
		{"low@users.test", constants.RoleInstructor, 1},
		{"high@users.test", constants.RoleInstructor, 9},
		{"s@users.test", constants.RoleStudent, nil},
	} {
		if err := db.Exec("INSERT INTO users (email, role, enrolled_students) VALUES (?, ?, ?)", seed.email, seed.role, seed.n).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	users, err := repo.List(ctx, dto.ListQuery{Role: constants.RoleInstructor, SortByEnrolled: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var mine []string
	for _, u := range users {
		if strings.HasSuffix(u.Email, "@users.test") {
			mine = append(mine, u.Email)
		}
	}
	if len(mine) != 2 || mine[0] != "high@users.test" || mine[1] != "low@users.test" {
		t.Fatalf("unexpected order: %v", mine)
	}

	role, found, err := repo.RoleOf(ctx, "nobody@users.test")
	if err != nil || found || role != "" {
		t.Fatalf("RoleOf unknown = %q %v %v", role, found, err)
	}
}
