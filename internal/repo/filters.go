// Package repo is the data-access layer: gorm repositories over users,
// stores and ratings, including the filter/sort/aggregation query builder
// behind the list endpoints.
package repo

import (
	"strings"

	"gorm.io/gorm"
)

// likeFilter appends a case-insensitive substring predicate. The value is
// always parameter-bound; col is a literal from a call site, never caller
// input.
func likeFilter(q *gorm.DB, col, val string) *gorm.DB {
	v := strings.TrimSpace(val)
	if v == "" {
		return q
	}
	return q.Where("LOWER("+col+") LIKE LOWER(?)", "%"+v+"%")
}

// orderClause resolves a caller-supplied sort against an allow-list of
// column expressions. Unknown sortBy values silently fall back to the
// endpoint default; anything but "desc" sorts ascending.
func orderClause(allow map[string]string, sortBy, sortOrder, fallback string) string {
	expr, ok := allow[sortBy]
	if !ok {
		return fallback
	}
	dir := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		dir = "DESC"
	}
	return expr + " " + dir
}
