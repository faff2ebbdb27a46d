package userstore

import (
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Dialect hides the differences between the supported SQL engines.
type Dialect interface {
	// DriverName is the name registered with database/sql.
	DriverName() string

	// RewriteQuery converts ? placeholders where the engine needs another syntax.
	RewriteQuery(query string) string

	// SupportsLastInsertId reports whether sql.Result.LastInsertId works.
	SupportsLastInsertId() bool

	// ConfigureConnection applies pool limits and session settings.
	ConfigureConnection(db *sql.DB) error

	// CreateUsersTableQuery returns the idempotent schema statement.
	CreateUsersTableQuery() string

	// IsUniqueViolation reports whether err is a unique constraint failure.
	IsUniqueViolation(err error) bool
}

// DialectFor maps a configured driver name to its dialect.
func DialectFor(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "sqlite", "sqlite3":
		return NewSQLiteDialect(), nil
	case "postgres", "postgresql":
		return NewPostgresDialect(), nil
	case "mysql":
		return NewMySQLDialect(), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

var placeholderRegexp = regexp.MustCompile(`\?`)

// rewritePlaceholdersToNumbered converts ? placeholders to $1, $2, ...
func rewritePlaceholdersToNumbered(query string) string {
	counter := 0
	return placeholderRegexp.ReplaceAllStringFunc(query, func(string) string {
		counter++
		return "$" + strconv.Itoa(counter)
	})
}
