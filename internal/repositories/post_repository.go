package repositories

import (
	"context"
	"database/sql"
	"errors"

	"blogapi/internal/domain"
	"blogapi/internal/domain/models"
	"blogapi/internal/query"
)

// PostDescriptor mirrors UserDescriptor for the posts table. Search covers
// the title only; body text is too large for LIKE scans.
var PostDescriptor = query.Descriptor{
	Table:         "posts",
	SelectColumns: []string{"id", "user_id", "title", "text", "banner", "created_at", "updated_at"},
	Searchable:    []string{"title"},
	Sortable:      []string{"title", "created_at"},
	DefaultSort:   "created_at",
	CreatedColumn: "created_at",
}

type PostRepository struct {
	DB *sql.DB
}

func scanPost(rows *sql.Rows) (models.Post, error) {
	var p models.Post
	var banner sql.NullString
	if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Text, &banner, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return models.Post{}, err
	}
	if banner.Valid {
		p.Banner = &banner.String
	}
	return p, nil
}

// List returns one page of posts honoring the normalized query params.
func (r PostRepository) List(ctx context.Context, p query.Params) (query.Page[models.Post], error) {
	return query.FetchPage(ctx, r.DB, PostDescriptor, p, scanPost)
}

func (r PostRepository) GetByID(ctx context.Context, id int64) (models.Post, error) {
	var p models.Post
	var banner sql.NullString
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, title, text, banner, created_at, updated_at
		FROM posts WHERE id = ?`, id).
		Scan(&p.ID, &p.UserID, &p.Title, &p.Text, &banner, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, domain.NotFoundError{Resource: "post", Err: err}
	}
	if err != nil {
		return models.Post{}, err
	}
	if banner.Valid {
		p.Banner = &banner.String
	}
	return p, nil
}

// ListByUser returns every post owned by the given user, newest first.
func (r PostRepository) ListByUser(ctx context.Context, userID int64) ([]models.Post, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, title, text, banner, created_at, updated_at
		FROM posts WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r PostRepository) Create(ctx context.Context, userID int64, title, text string, banner *string) (models.Post, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO posts (user_id, title, text, banner, created_at, updated_at)
		VALUES (?, ?, ?, ?, NOW(), NOW())`,
		userID, title, text, nullableString(banner))
	if err != nil {
		return models.Post{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Post{}, err
	}
	return r.GetByID(ctx, id)
}

func (r PostRepository) Update(ctx context.Context, id int64, title, text string, banner *string) (models.Post, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return models.Post{}, err
	}
	_, err := r.DB.ExecContext(ctx, `
		UPDATE posts SET title = ?, text = ?, banner = ?, updated_at = NOW() WHERE id = ?`,
		title, text, nullableString(banner), id)
	if err != nil {
		return models.Post{}, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a post and returns the row as it was before deletion.
func (r PostRepository) Delete(ctx context.Context, id int64) (models.Post, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return models.Post{}, err
	}
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id); err != nil {
		return models.Post{}, err
	}
	return p, nil
}
