package parser_test

import (
	"testing"

	. "github.com/sqlfront/sqlfront/pkg/parser"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, sql string) *Statement {
	t.Helper()

	parsed, err := ParseString(sql)
	require.NoError(t, err)
	require.Len(t, parsed.Statements, 1)
	return parsed.Statements[0]
}

func TestCreateSchema(t *testing.T) {
	t.Parallel()

	t.Run("parsing", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			sql      string
			expected CreateSchemaStmt
		}{
			{
				name: "simple name",
				sql:  "CREATE SCHEMA my_schema;",
				expected: CreateSchemaStmt{
					Clause: &SchemaNameClause{Name: &SchemaName{Name: Ident{Value: "my_schema"}}},
				},
			},
			{
				name: "catalog qualified name",
				sql:  "CREATE SCHEMA my_catalog.my_schema;",
				expected: CreateSchemaStmt{
					Clause: &SchemaNameClause{
						Name: &SchemaName{
							Catalog: &Ident{Value: "my_catalog"},
							Name:    Ident{Value: "my_schema"},
						},
					},
				},
			},
			{
				name: "authorization only",
				sql:  "CREATE SCHEMA AUTHORIZATION bob;",
				expected: CreateSchemaStmt{
					Clause: &SchemaNameClause{Authorization: &Ident{Value: "bob"}},
				},
			},
			{
				name: "name with authorization",
				sql:  "CREATE SCHEMA my_schema AUTHORIZATION bob;",
				expected: CreateSchemaStmt{
					Clause: &SchemaNameClause{
						NamedAuthorization: &NamedSchemaAuthorization{
							Name:          SchemaName{Name: Ident{Value: "my_schema"}},
							Authorization: Ident{Value: "bob"},
						},
					},
				},
			},
			{
				name: "quoted identifiers",
				sql:  `CREATE SCHEMA "my_schema" AUTHORIZATION "bob@example";`,
				expected: CreateSchemaStmt{
					Clause: &SchemaNameClause{
						NamedAuthorization: &NamedSchemaAuthorization{
							Name:          SchemaName{Name: Ident{Value: "my_schema", Quote: QuoteDouble}},
							Authorization: Ident{Value: "bob@example", Quote: QuoteDouble},
						},
					},
				},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				stmt := parseOne(t, tt.sql)
				require.NotNil(t, stmt.CreateSchema)
				require.True(t, stmt.CreateSchema.Equal(&tt.expected))
			})
		}
	})

	t.Run("rendering", func(t *testing.T) {
		t.Parallel()

		// Renders with a trailing semicolon whether or not the input had one.
		tests := []struct {
			sql      string
			expected string
		}{
			{sql: "CREATE SCHEMA my_schema;", expected: "CREATE SCHEMA my_schema;"},
			{sql: "CREATE SCHEMA my_schema", expected: "CREATE SCHEMA my_schema;"},
			{sql: "create schema My_Schema", expected: "CREATE SCHEMA My_Schema;"},
			{sql: "CREATE   SCHEMA   AUTHORIZATION   bob", expected: "CREATE SCHEMA AUTHORIZATION bob;"},
			{sql: "CREATE SCHEMA a.b AUTHORIZATION c;", expected: "CREATE SCHEMA a.b AUTHORIZATION c;"},
		}

		for _, tt := range tests {
			t.Run(tt.sql, func(t *testing.T) {
				t.Parallel()
				require.Equal(t, tt.expected, parseOne(t, tt.sql).String())
			})
		}
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()

		tests := []string{
			"CREATE SCHEMA;",
			"CREATE SCHEMA my_schema AUTHORIZATION;",
			"CREATE SCHEMA a.b.c;",
		}

		for _, sql := range tests {
			t.Run(sql, func(t *testing.T) {
				t.Parallel()

				_, err := ParseString(sql)
				require.Error(t, err)
			})
		}
	})
}

func TestDropSchema(t *testing.T) {
	t.Parallel()

	t.Run("parsing", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			sql      string
			expected DropSchemaStmt
		}{
			{
				name: "cascade",
				sql:  "DROP SCHEMA my_schema CASCADE;",
				expected: DropSchemaStmt{
					Name:     &SchemaName{Name: Ident{Value: "my_schema"}},
					Behavior: BehaviorCascade,
				},
			},
			{
				name: "restrict",
				sql:  "DROP SCHEMA my_schema RESTRICT;",
				expected: DropSchemaStmt{
					Name:     &SchemaName{Name: Ident{Value: "my_schema"}},
					Behavior: BehaviorRestrict,
				},
			},
			{
				name: "catalog qualified",
				sql:  "drop schema my_catalog.my_schema cascade",
				expected: DropSchemaStmt{
					Name: &SchemaName{
						Catalog: &Ident{Value: "my_catalog"},
						Name:    Ident{Value: "my_schema"},
					},
					Behavior: BehaviorCascade,
				},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				stmt := parseOne(t, tt.sql)
				require.NotNil(t, stmt.DropSchema)
				require.True(t, stmt.DropSchema.Equal(&tt.expected))
			})
		}
	})

	t.Run("rendering", func(t *testing.T) {
		t.Parallel()

		stmt := parseOne(t, "drop schema my_schema restrict")
		require.Equal(t, "DROP SCHEMA my_schema RESTRICT;", stmt.String())
	})

	t.Run("behavior is mandatory", func(t *testing.T) {
		t.Parallel()

		_, err := ParseString("DROP SCHEMA my_schema;")
		require.Error(t, err)
	})
}
