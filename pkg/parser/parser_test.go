package parser_test

import (
	"strings"
	"testing"

	. "github.com/sqlfront/sqlfront/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestParseString(t *testing.T) {
	t.Parallel()

	t.Run("multiple statements", func(t *testing.T) {
		t.Parallel()

		sql := `
			CREATE SCHEMA inventory;
			CREATE TABLE inventory.products (id BIGINT, name VARCHAR(100), price NUMERIC(10, 2));
			DROP TABLE inventory.legacy_products CASCADE;
			DROP SCHEMA scratch RESTRICT;
		`

		parsed, err := ParseString(sql)
		require.NoError(t, err)
		require.Len(t, parsed.Statements, 4)
		require.NotNil(t, parsed.Statements[0].CreateSchema)
		require.NotNil(t, parsed.Statements[1].CreateTable)
		require.NotNil(t, parsed.Statements[2].DropTable)
		require.NotNil(t, parsed.Statements[3].DropSchema)
	})

	t.Run("line break separates unterminated statements", func(t *testing.T) {
		t.Parallel()

		parsed, err := ParseString("CREATE SCHEMA a\nCREATE SCHEMA b")
		require.NoError(t, err)
		require.Len(t, parsed.Statements, 2)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		parsed, err := ParseString("")
		require.NoError(t, err)
		require.Empty(t, parsed.Statements)

		parsed, err = ParseString("  \n\t  ")
		require.NoError(t, err)
		require.Empty(t, parsed.Statements)
	})

	t.Run("rendering joins statements with newlines", func(t *testing.T) {
		t.Parallel()

		parsed, err := ParseString("create schema a;\ndrop table t cascade;")
		require.NoError(t, err)
		require.Equal(t, "CREATE SCHEMA a;\nDROP TABLE t CASCADE", parsed.String())
	})

	t.Run("first failing statement aborts the parse", func(t *testing.T) {
		t.Parallel()

		_, err := ParseString("CREATE SCHEMA a;\nNOT A STATEMENT;\nCREATE SCHEMA b;")
		require.Error(t, err)
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	parsed, err := Parse(strings.NewReader("CREATE SCHEMA from_reader;"))
	require.NoError(t, err)
	require.Len(t, parsed.Statements, 1)
	require.Equal(t, "CREATE SCHEMA from_reader;", parsed.String())
}

func TestParseBytes(t *testing.T) {
	t.Parallel()

	parsed, err := ParseBytes([]byte("DROP SCHEMA s CASCADE;"))
	require.NoError(t, err)
	require.Len(t, parsed.Statements, 1)
}

func TestParseStatement(t *testing.T) {
	t.Parallel()

	t.Run("returns the unconsumed remainder", func(t *testing.T) {
		t.Parallel()

		stmt, rest, err := ParseStatement("CREATE SCHEMA a; DROP SCHEMA a CASCADE;")
		require.NoError(t, err)
		require.NotNil(t, stmt.CreateSchema)
		require.Equal(t, "DROP SCHEMA a CASCADE;", rest)

		stmt, rest, err = ParseStatement(rest)
		require.NoError(t, err)
		require.NotNil(t, stmt.DropSchema)
		require.Empty(t, rest)
	})

	t.Run("semicolon is optional at end of input", func(t *testing.T) {
		t.Parallel()

		stmt, rest, err := ParseStatement("CREATE SCHEMA a")
		require.NoError(t, err)
		require.NotNil(t, stmt.CreateSchema)
		require.Empty(t, rest)
	})

	t.Run("trailing tokens on the same line are rejected", func(t *testing.T) {
		t.Parallel()

		_, _, err := ParseStatement("DROP TABLE t CASCADE extra")
		require.Error(t, err)

		var perr *Error
		require.ErrorAs(t, err, &perr)
		require.Equal(t, KindStructural, perr.Kind)
	})

	t.Run("line break terminates a statement", func(t *testing.T) {
		t.Parallel()

		stmt, rest, err := ParseStatement("DROP TABLE t CASCADE\nDROP TABLE u CASCADE")
		require.NoError(t, err)
		require.NotNil(t, stmt.DropTable)
		require.Equal(t, "DROP TABLE u CASCADE", rest)
	})
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	t.Run("unrecognized statement", func(t *testing.T) {
		t.Parallel()

		_, err := ParseString("HELLO WORLD")
		require.Error(t, err)

		var perr *Error
		require.ErrorAs(t, err, &perr)
		require.Equal(t, KindUnrecognized, perr.Kind)
	})

	t.Run("structural failure inside a statement", func(t *testing.T) {
		t.Parallel()

		_, err := ParseString("CREATE TABLE (c INT)")
		require.Error(t, err)

		var perr *Error
		require.ErrorAs(t, err, &perr)
		require.Equal(t, KindStructural, perr.Kind)
	})

	t.Run("lexical failure on an unknown character", func(t *testing.T) {
		t.Parallel()

		_, err := ParseString("CREATE TABLE t (c INT) !")
		require.Error(t, err)

		var perr *Error
		require.ErrorAs(t, err, &perr)
		require.Equal(t, KindLexical, perr.Kind)
	})

	t.Run("errors carry a position", func(t *testing.T) {
		t.Parallel()

		_, err := ParseString("CREATE TABLE t ()")
		require.Error(t, err)

		var perr *Error
		require.ErrorAs(t, err, &perr)
		require.Positive(t, perr.Pos.Column)
		require.Contains(t, err.Error(), perr.Kind.String())
	})
}

func TestRoundTripIdempotence(t *testing.T) {
	t.Parallel()

	// Rendering a parsed statement and parsing it again yields an equal
	// statement, and the second rendering is byte-identical to the first.
	tests := []string{
		"create schema accounting",
		"CREATE SCHEMA accounting AUTHORIZATION alice;",
		"create table accounting.ledger(id bigint,amount numeric(20, 4),posted_at timestamp(6) with time zone)",
		"CREATE GLOBAL TEMPORARY TABLE staging (payload CLOB(20K CHARACTERS))",
		"drop table accounting.ledger restrict",
		"DROP SCHEMA accounting CASCADE;",
	}

	for _, sql := range tests {
		t.Run(sql, func(t *testing.T) {
			t.Parallel()

			first, err := ParseString(sql)
			require.NoError(t, err)
			require.Len(t, first.Statements, 1)

			rendered := first.String()
			second, err := ParseString(rendered)
			require.NoError(t, err)
			require.Len(t, second.Statements, 1)

			require.True(t, first.Statements[0].Equal(second.Statements[0]))
			require.Equal(t, rendered, second.String())
		})
	}
}

func TestStatementEqual(t *testing.T) {
	t.Parallel()

	parse := func(t *testing.T, sql string) *Statement {
		t.Helper()
		return parseOne(t, sql)
	}

	tests := []struct {
		name     string
		a, b     string
		expected bool
	}{
		{name: "same create schema", a: "CREATE SCHEMA a;", b: "CREATE SCHEMA a", expected: true},
		{name: "different schema names", a: "CREATE SCHEMA a;", b: "CREATE SCHEMA b;", expected: false},
		{name: "different variants", a: "CREATE SCHEMA a;", b: "DROP SCHEMA a CASCADE;", expected: false},
		{name: "different behaviors", a: "DROP TABLE t CASCADE", b: "DROP TABLE t RESTRICT", expected: false},
		{name: "same create table", a: "CREATE TABLE t (c INT)", b: "create table t(c int);", expected: true},
		{name: "scope matters", a: "CREATE TABLE t (c INT)", b: "CREATE LOCAL TEMPORARY TABLE t (c INT)", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, parse(t, tt.a).Equal(parse(t, tt.b)))
		})
	}
}
