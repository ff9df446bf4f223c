// Package query holds gorm scopes shared by list repositories.
package query

import (
	"strings"

	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/shared/constants"
)

// Paginate applies LIMIT/OFFSET. A non-positive pageSize uses the default;
// sizes above the maximum are clamped.
func Paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if page < 1 {
			page = constants.DefaultPage
		}
		if pageSize < 1 {
			pageSize = constants.DefaultPageSize
		}
		if pageSize > constants.MaxPageSize {
			pageSize = constants.MaxPageSize
		}
		return tx.Limit(pageSize).Offset((page - 1) * pageSize)
	}
}

// ContainsPattern builds a case-insensitive LIKE pattern matching term
// anywhere. Wildcards in term are escaped with '!', which reads the same in
// MySQL and SQLite string literals.
func ContainsPattern(term string) string {
	r := strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`)
	return "%" + r.Replace(strings.ToLower(term)) + "%"
}

// Search matches term against any of columns, ignoring case. An empty term
// leaves the query untouched.
func Search(term string, columns ...string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(columns) == 0 {
			return tx
		}
		pattern := ContainsPattern(term)
		clauses := make([]string, len(columns))
		args := make([]any, len(columns))
		for i, col := range columns {
			clauses[i] = "LOWER(" + col + ") LIKE ? ESCAPE '!'"
			args[i] = pattern
		}
		return tx.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
}
