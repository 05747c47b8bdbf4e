// Package psqlbuilder provides preconfigured squirrel statement builders.
package psqlbuilder

import "github.com/Masterminds/squirrel"

// Supported SQL dialects.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// builder is the default PostgreSQL builder with $1, $2... placeholders.
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ForDialect returns a statement builder with the placeholder format of the dialect.
// Unknown dialects fall back to PostgreSQL.
func ForDialect(dialect string) squirrel.StatementBuilderType {
	if dialect == DialectSQLite {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	}
	return builder
}
