package repositories

import (
	"context"
	"testing"
	"time"

	"blogapi/internal/domain"
	"blogapi/internal/query"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestUserListPage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users WHERE \(name LIKE \? OR email LIKE \?\)`).
		WithArgs("%ali%", "%ali%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT id, name, email, avatar, created_at, updated_at FROM users WHERE \(name LIKE \? OR email LIKE \?\) ORDER BY created_at DESC LIMIT \? OFFSET \?`).
		WithArgs("%ali%", "%ali%", int64(10), int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "avatar", "created_at", "updated_at"}).
			AddRow(1, "alice", "alice@example.com", nil, now, now))

	repo := UserRepository{DB: db}
	p := query.Params{Page: 1, PerPage: 10, Search: "ali", SortBy: "created_at", SortOrder: "desc"}
	page, err := repo.List(context.Background(), p)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}

	if len(page.Items) != 1 || page.Items[0].Email != "alice@example.com" {
		t.Fatalf("unexpected items: %+v", page.Items)
	}
	if page.Items[0].Avatar != nil {
		t.Fatalf("avatar should be nil for NULL column, got %v", *page.Items[0].Avatar)
	}
	if page.Meta.TotalItems != 1 || page.Meta.TotalPages != 1 {
		t.Fatalf("meta = %+v", page.Meta)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, email, avatar, created_at, updated_at`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "avatar", "created_at", "updated_at"}))

	repo := UserRepository{DB: db}
	if _, err := repo.GetByID(context.Background(), 404); !domain.IsNotFound(err) {
		t.Fatalf("error = %v, want not-found", err)
	}
}

func TestUserCreateReturnsRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(`INSERT INTO users`).
		WithArgs("bob", "bob@example.com", "hashed").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectQuery(`SELECT id, name, email, avatar, created_at, updated_at`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "avatar", "created_at", "updated_at"}).
			AddRow(5, "bob", "bob@example.com", nil, now, now))

	repo := UserRepository{DB: db}
	u, err := repo.Create(context.Background(), "bob", "bob@example.com", "hashed")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if u.ID != 5 || u.Name != "bob" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
