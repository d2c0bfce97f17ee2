// Package query turns untrusted list-endpoint parameters into bounded,
// allow-listed SQL queries and assembles the pagination envelope.
package query

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"blogapi/internal/domain"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
	maxPerPage     = 100

	dateLayout = "2006-01-02"
)

// Params is a normalized list query. Construct it with Parse; every field is
// already clamped and allow-listed, so downstream code can trust it.
type Params struct {
	Page      int64
	PerPage   int64
	Search    string
	SortBy    string
	SortOrder string // "asc" or "desc"
	StartDate *time.Time
	EndDate   *time.Time
}

// Parse normalizes raw query-string values against a resource descriptor.
//
// Out-of-range page/limit values are clamped, never rejected. An unknown
// sort_by falls back to the descriptor's default. Malformed dates are the one
// hard failure: they return a domain.ValidationError before any query runs.
func Parse(values url.Values, d Descriptor) (Params, error) {
	p := Params{
		Page:    defaultPage,
		PerPage: defaultPerPage,
	}

	if raw := strings.TrimSpace(values.Get("page")); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n >= 1 {
			p.Page = n
		}
	}

	if raw := strings.TrimSpace(values.Get("limit")); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n >= 1 {
			p.PerPage = min(n, maxPerPage)
		}
	}

	p.Search = strings.TrimSpace(values.Get("search"))
	p.SortBy = d.resolveSort(values.Get("sort_by"))
	if values.Get("sort_order") == "asc" {
		p.SortOrder = "asc"
	} else {
		p.SortOrder = "desc"
	}

	if raw := strings.TrimSpace(values.Get("start_date")); raw != "" {
		day, err := time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			return Params{}, domain.ValidationError{
				Field: "start_date",
				Msg:   "invalid date format, use YYYY-MM-DD",
				Err:   err,
			}
		}
		p.StartDate = &day
	}

	if raw := strings.TrimSpace(values.Get("end_date")); raw != "" {
		day, err := time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			return Params{}, domain.ValidationError{
				Field: "end_date",
				Msg:   "invalid date format, use YYYY-MM-DD",
				Err:   err,
			}
		}
		end := day.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		p.EndDate = &end
	}

	return p, nil
}

// Offset is the window start for the page fetch.
func (p Params) Offset() int64 {
	return (p.Page - 1) * p.PerPage
}
