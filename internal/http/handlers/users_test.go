package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogapi/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func userListRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	r := gin.New()
	r.GET("/api/users", UserHandler{Users: repositories.UserRepository{DB: db}}.List)
	return r, mock
}

func TestUserListEnvelope(t *testing.T) {
	r, mock := userListRouter(t)

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery(`SELECT id, name, email, avatar, created_at, updated_at FROM users ORDER BY created_at DESC LIMIT \? OFFSET \?`).
		WithArgs(int64(10), int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "avatar", "created_at", "updated_at"}).
			AddRow(1, "alice", "alice@example.com", nil, now, now))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
		Data    struct {
			Items      []json.RawMessage `json:"items"`
			Pagination struct {
				CurrentPage int64 `json:"current_page"`
				PerPage     int64 `json:"per_page"`
				TotalItems  int64 `json:"total_items"`
				TotalPages  int64 `json:"total_pages"`
			} `json:"pagination"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Status != 200 {
		t.Fatalf("envelope status = %d, want 200", resp.Status)
	}
	if len(resp.Data.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(resp.Data.Items))
	}
	pg := resp.Data.Pagination
	if pg.CurrentPage != 1 || pg.PerPage != 10 || pg.TotalItems != 25 || pg.TotalPages != 3 {
		t.Fatalf("pagination = %+v", pg)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserListBadDateFailsBeforeStorage(t *testing.T) {
	r, mock := userListRouter(t)
	// No DB expectations: a malformed date must be rejected before any query.

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users?start_date=not-a-date", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("storage was touched: %v", err)
	}
}

func TestUserListStorageFailureIsOpaque(t *testing.T) {
	r, mock := userListRouter(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnError(sqlmock.ErrCancelled)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var resp APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Message != "internal server error" {
		t.Fatalf("message = %q, storage detail must not leak", resp.Message)
	}
}
