package repositories

import (
	"errors"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Pagination is a resolved page window.
type Pagination struct {
	Limit  int
	Offset int
}

func (p Pagination) apply(db *gorm.DB) *gorm.DB {
	if p.Limit > 0 {
		db = db.Limit(p.Limit)
	}
	if p.Offset > 0 {
		db = db.Offset(p.Offset)
	}
	return db
}

// isUniqueViolation recognises duplicate-key errors from every supported driver,
// translated or not.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}

	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// likeEscaper escapes LIKE metacharacters. '!' is the escape character because
// a backslash literal is read differently by MySQL and Postgres.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// likePattern wraps s for a case-insensitive substring match; wildcards in s match literally.
// Use it with ilike.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(s))) + "%"
}

// ilike is a case-insensitive LIKE condition on column for a likePattern argument.
func ilike(column string) string {
	return "LOWER(" + column + ") LIKE ? ESCAPE '!'"
}
