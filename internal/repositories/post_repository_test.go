package repositories

import (
	"context"
	"testing"
	"time"

	"blogapi/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

var postColumns = []string{"id", "user_id", "title", "text", "banner", "created_at", "updated_at"}

func TestPostDeleteReturnsDeletedRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT id, user_id, title, text, banner, created_at, updated_at`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(postColumns).
			AddRow(3, 1, "hello", "world", "banner.png", now, now))
	mock.ExpectExec(`DELETE FROM posts WHERE id = \?`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := PostRepository{DB: db}
	p, err := repo.Delete(context.Background(), 3)
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if p.ID != 3 || p.Title != "hello" {
		t.Fatalf("unexpected post: %+v", p)
	}
	if p.Banner == nil || *p.Banner != "banner.png" {
		t.Fatalf("banner not carried through: %+v", p.Banner)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostDeleteMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, user_id, title, text, banner, created_at, updated_at`).
		WithArgs(int64(44)).
		WillReturnRows(sqlmock.NewRows(postColumns))

	repo := PostRepository{DB: db}
	if _, err := repo.Delete(context.Background(), 44); !domain.IsNotFound(err) {
		t.Fatalf("error = %v, want not-found", err)
	}
}

func TestPostListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT id, user_id, title, text, banner, created_at, updated_at FROM posts WHERE user_id = \? ORDER BY created_at DESC`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(postColumns).
			AddRow(2, 7, "second", "b", nil, now, now).
			AddRow(1, 7, "first", "a", nil, now, now))

	repo := PostRepository{DB: db}
	posts, err := repo.ListByUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(posts) != 2 || posts[0].Title != "second" {
		t.Fatalf("unexpected posts: %+v", posts)
	}
}
