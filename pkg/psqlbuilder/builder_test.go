package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForDialect_Placeholders(t *testing.T) {
	tests := []struct {
		name     string
		dialect  string
		expected string
	}{
		{name: "postgres", dialect: DialectPostgres, expected: "SELECT a FROM t WHERE b > $1 AND c < $2"},
		{name: "sqlite", dialect: DialectSQLite, expected: "SELECT a FROM t WHERE b > ? AND c < ?"},
		{name: "unknown falls back to postgres", dialect: "mysql", expected: "SELECT a FROM t WHERE b > $1 AND c < $2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := ForDialect(tt.dialect).
				Select("a").
				From("t").
				Where(squirrel.Gt{"b": 1}).
				Where(squirrel.Lt{"c": 2}).
				ToSql()

			require.NoError(t, err)
			assert.Equal(t, tt.expected, query)
			assert.Equal(t, []interface{}{1, 2}, args)
		})
	}
}
