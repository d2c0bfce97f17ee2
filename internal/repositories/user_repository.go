package repositories

import (
	"context"
	"database/sql"
	"errors"

	"blogapi/internal/domain"
	"blogapi/internal/domain/models"
	"blogapi/internal/query"
)

// UserDescriptor declares which users columns list queries may search and
// sort by. The engine never touches columns outside this set.
var UserDescriptor = query.Descriptor{
	Table:         "users",
	SelectColumns: []string{"id", "name", "email", "avatar", "created_at", "updated_at"},
	Searchable:    []string{"name", "email"},
	Sortable:      []string{"name", "created_at"},
	DefaultSort:   "created_at",
	CreatedColumn: "created_at",
}

type UserRepository struct {
	DB *sql.DB
}

func scanUser(rows *sql.Rows) (models.User, error) {
	var u models.User
	var avatar sql.NullString
	if err := rows.Scan(&u.ID, &u.Name, &u.Email, &avatar, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return models.User{}, err
	}
	if avatar.Valid {
		u.Avatar = &avatar.String
	}
	return u, nil
}

// List returns one page of users honoring the normalized query params.
func (r UserRepository) List(ctx context.Context, p query.Params) (query.Page[models.User], error) {
	return query.FetchPage(ctx, r.DB, UserDescriptor, p, scanUser)
}

func (r UserRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	var u models.User
	var avatar sql.NullString
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, email, avatar, created_at, updated_at
		FROM users WHERE id = ?`, id).
		Scan(&u.ID, &u.Name, &u.Email, &avatar, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
	}
	if err != nil {
		return models.User{}, err
	}
	if avatar.Valid {
		u.Avatar = &avatar.String
	}
	return u, nil
}

// FindByEmail loads a user along with the stored password hash for login.
func (r UserRepository) FindByEmail(ctx context.Context, email string) (models.User, string, error) {
	var u models.User
	var avatar sql.NullString
	var hash string
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, email, password, avatar, created_at, updated_at
		FROM users WHERE email = ?`, email).
		Scan(&u.ID, &u.Name, &u.Email, &hash, &avatar, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, "", domain.NotFoundError{Resource: "user", Err: err}
	}
	if err != nil {
		return models.User{}, "", err
	}
	if avatar.Valid {
		u.Avatar = &avatar.String
	}
	return u, hash, nil
}

func (r UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts a user with an already-hashed password and returns the row.
func (r UserRepository) Create(ctx context.Context, name, email, passwordHash string) (models.User, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO users (name, email, password, created_at, updated_at)
		VALUES (?, ?, ?, NOW(), NOW())`, name, email, passwordHash)
	if err != nil {
		return models.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	return r.GetByID(ctx, id)
}

// UpdateProfile changes the mutable profile fields and returns the fresh row.
func (r UserRepository) UpdateProfile(ctx context.Context, id int64, name string, avatar *string) (models.User, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return models.User{}, err
	}
	_, err := r.DB.ExecContext(ctx, `
		UPDATE users SET name = ?, avatar = ?, updated_at = NOW() WHERE id = ?`,
		name, nullableString(avatar), id)
	if err != nil {
		return models.User{}, err
	}
	return r.GetByID(ctx, id)
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
