package query

import (
	"context"
	"database/sql"
	"strings"
)

// Descriptor declares, per resource, which table and columns the list engine
// may touch. Column names in generated SQL come exclusively from here; client
// input only ever selects among them or binds as placeholder values.
type Descriptor struct {
	Table         string
	SelectColumns []string
	Searchable    []string
	Sortable      []string
	DefaultSort   string
	CreatedColumn string
}

func (d Descriptor) resolveSort(requested string) string {
	for _, col := range d.Sortable {
		if requested == col {
			return col
		}
	}
	return d.DefaultSort
}

// Meta describes a page's position within the full result set.
type Meta struct {
	CurrentPage int64 `json:"current_page"`
	PerPage     int64 `json:"per_page"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int64 `json:"total_pages"`
}

// Page is the assembled pagination envelope for one list call.
type Page[T any] struct {
	Items []T
	Meta  Meta
}

// FetchPage runs exactly one count and one window fetch for the given params
// and assembles the envelope. A page past the end of the result set yields an
// empty item list with correct totals. Neither query is retried; the first
// storage error propagates and no partial envelope is returned.
func FetchPage[T any](ctx context.Context, db *sql.DB, d Descriptor, p Params, scan func(*sql.Rows) (T, error)) (Page[T], error) {
	where, args := buildWhere(d, p)

	var total int64
	countSQL := "SELECT COUNT(*) FROM " + d.Table + where
	if err := db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return Page[T]{}, err
	}

	fetchSQL := "SELECT " + strings.Join(d.SelectColumns, ", ") + " FROM " + d.Table + where +
		" ORDER BY " + d.resolveSort(p.SortBy) + " " + direction(p.SortOrder) +
		" LIMIT ? OFFSET ?"
	fetchArgs := append(args, p.PerPage, p.Offset())

	rows, err := db.QueryContext(ctx, fetchSQL, fetchArgs...)
	if err != nil {
		return Page[T]{}, err
	}
	defer rows.Close()

	items := make([]T, 0, p.PerPage)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return Page[T]{}, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return Page[T]{}, err
	}

	return Page[T]{
		Items: items,
		Meta: Meta{
			CurrentPage: p.Page,
			PerPage:     p.PerPage,
			TotalItems:  total,
			TotalPages:  totalPages(total, p.PerPage),
		},
	}, nil
}

// buildWhere composes the shared filter for both count and fetch: an OR of
// contains-matches over the searchable columns, AND an inclusive range on the
// creation timestamp.
func buildWhere(d Descriptor, p Params) (string, []any) {
	var conds []string
	var args []any

	if p.Search != "" && len(d.Searchable) > 0 {
		likes := make([]string, len(d.Searchable))
		for i, col := range d.Searchable {
			likes[i] = col + " LIKE ?"
			args = append(args, "%"+p.Search+"%")
		}
		conds = append(conds, "("+strings.Join(likes, " OR ")+")")
	}

	if p.StartDate != nil {
		conds = append(conds, d.CreatedColumn+" >= ?")
		args = append(args, *p.StartDate)
	}
	if p.EndDate != nil {
		conds = append(conds, d.CreatedColumn+" <= ?")
		args = append(args, *p.EndDate)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func direction(order string) string {
	if order == "asc" {
		return "ASC"
	}
	return "DESC"
}

func totalPages(total, perPage int64) int64 {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
