package repository

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"summerschool_backend/internals/configs"
	database "summerschool_backend/internals/databases"
	enrollModel "summerschool_backend/internals/features/enrollments/model"
)

const (
	studentA = "a@enrollments.test"
	studentB = "b@enrollments.test"
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

	if err := database.Migrate(db, &enrollModel.EnrollmentModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Exec("DELETE FROM enrollments WHERE email LIKE '%@enrollments.test'").Error; err != nil {
		t.Fatalf("clean: %v", err)
	}
	return db
}

func appendAt(t *testing.T, db *gorm.DB, id, email, name string, at time.Time) {
	t.Helper()
	rec := &enrollModel.EnrollmentModel{
		ID:        uuid.MustParse(id),
		Email:     email,
		ClassID:   uuid.New(),
		Name:      name,
		Price:     25,
		CreatedAt: at,
	}
	if err := Append(context.Background(), db, rec); err != nil {
		t.Fatalf("append %s: %v", name, err)
	}
}

func names(records []enrollModel.EnrollmentModel) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		if strings.HasSuffix(r.Email, "@enrollments.test") {
			out = append(out, r.Name)
		}
	}
	return out
}

func TestListFiltersByEmailNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEnrollmentRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	appendAt(t, db, "00000000-0000-0000-0000-00000000a001", studentA, "a-oldest", base)
	appendAt(t, db, "00000000-0000-0000-0000-00000000a002", studentA, "a-newest", base.Add(2*time.Hour))
	appendAt(t, db, "00000000-0000-0000-0000-00000000b001", studentB, "b-middle", base.Add(time.Hour))
	// same instant as b-middle; the higher id sorts first
	appendAt(t, db, "00000000-0000-0000-0000-00000000b002", studentB, "b-middle-tie", base.Add(time.Hour))

	t.Run("one email", func(t *testing.T) {
		got, err := repo.List(ctx, studentA)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		for _, r := range got {
			if r.Email != studentA {
				t.Fatalf("foreign row %s for %s", r.Name, r.Email)
			}
		}
		if got[0].Name != "a-newest" || got[1].Name != "a-oldest" {
			t.Fatalf("order = %v", names(got))
		}
	})

	t.Run("tie on created_at", func(t *testing.T) {
		got, err := repo.List(ctx, studentB)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if n := names(got); len(n) != 2 || n[0] != "b-middle-tie" || n[1] != "b-middle" {
			t.Fatalf("order = %v", n)
		}
	})

	t.Run("empty email lists everyone", func(t *testing.T) {
		got, err := repo.List(ctx, "")
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		want := []string{"a-newest", "b-middle-tie", "b-middle", "a-oldest"}
		n := names(got)
		if len(n) != len(want) {
			t.Fatalf("rows = %v, want %v", n, want)
		}
		for i := range want {
			if n[i] != want[i] {
				t.Fatalf("rows = %v, want %v", n, want)
			}
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		got, err := repo.List(ctx, "ghost@enrollments.test")
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("got %v, want empty non-nil slice", got)
		}
	})
}
