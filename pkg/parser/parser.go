package parser

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	// sqlLexer defines the token set for the ANSI DDL fragment. Quoted
	// identifiers keep their delimiters; Capture strips them.
	sqlLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "QuotedIdent", Pattern: `"[a-zA-Z0-9_@]+"`},
		{Name: "Number", Pattern: `\d+`},
		{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_@]*`},
		{Name: "Punct", Pattern: `[(),.;]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	// buildOptions is shared by every grammar entry point so that the
	// sub-grammar parsers and the statement parser tokenize identically.
	buildOptions = []participle.Option{
		participle.Lexer(sqlLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(5),
		participle.CaseInsensitive("Ident"),
	}

	stmtParser = newParser[Statement]()
)

// newParser builds a parser for a single grammar production. Every parser
// in the package is constructed eagerly at package init so that a broken
// grammar panics on startup instead of on first parse; the handful of
// builds is cheap enough that lazy construction buys nothing.
func newParser[T any]() *participle.Parser[T] {
	return participle.MustBuild[T](buildOptions...)
}

type (
	// SQL holds the statements parsed from a multi-statement buffer, in
	// source order.
	SQL struct {
		Statements []*Statement
	}

	// Statement is the closed union of supported DDL statements. Exactly
	// one field is non-nil. The alternatives are tried in declaration
	// order.
	Statement struct {
		CreateSchema *CreateSchemaStmt `parser:"@@"`
		DropSchema   *DropSchemaStmt   `parser:"| @@"`
		DropTable    *DropTableStmt    `parser:"| @@"`
		CreateTable  *CreateTableStmt  `parser:"| @@"`

		Pos    lexer.Position
		EndPos lexer.Position
	}
)

// Parse reads all input from r and parses it as a sequence of DDL
// statements. Each statement must end with a semicolon, a line break, or
// the end of the input.
func Parse(r io.Reader) (*SQL, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read SQL input")
	}

	return ParseString(string(buf))
}

// ParseBytes parses a byte slice holding one or more DDL statements.
func ParseBytes(sql []byte) (*SQL, error) {
	return ParseString(string(sql))
}

// ParseString parses a string holding one or more DDL statements. It
// repeatedly consumes single statements until the input is exhausted, so a
// failure reports the position within the first statement that did not
// parse.
func ParseString(sql string) (*SQL, error) {
	result := &SQL{}

	rest := strings.TrimLeft(sql, " \t\r\n")
	for rest != "" {
		stmt, remaining, err := ParseStatement(rest)
		if err != nil {
			return nil, err
		}

		result.Statements = append(result.Statements, stmt)
		rest = remaining
	}

	return result, nil
}

// ParseStatement consumes exactly one statement from the front of sql and
// returns it together with the unconsumed remainder. The statement must be
// followed by a semicolon, a line break, or the end of the input; anything
// else on the same line is a structural error. Positions in returned errors
// are relative to sql.
func ParseStatement(sql string) (*Statement, string, error) {
	start := len(sql) - len(strings.TrimLeft(sql, " \t\r\n"))

	stmt, err := stmtParser.ParseString("", sql, participle.AllowTrailing(true))
	if err != nil {
		return nil, sql, classify(err, start)
	}

	if err := stmt.validate(); err != nil {
		return nil, sql, err
	}

	rest := sql[stmt.EndPos.Offset:]
	if !stmt.terminated() {
		trimmed := strings.TrimLeft(rest, " \t")
		if trimmed != "" && trimmed[0] != '\n' && trimmed[0] != '\r' {
			return nil, sql, &Error{
				Kind:    KindStructural,
				Pos:     stmt.EndPos,
				Message: "expected ';', line break, or end of input after statement",
			}
		}
	}

	return stmt, strings.TrimLeft(rest, " \t\r\n"), nil
}

// String renders all statements in canonical form, one per line.
func (s *SQL) String() string {
	rendered := make([]string, 0, len(s.Statements))
	for _, stmt := range s.Statements {
		rendered = append(rendered, stmt.String())
	}

	return strings.Join(rendered, "\n")
}

// String renders the active statement variant in canonical form.
func (s *Statement) String() string {
	switch {
	case s.CreateSchema != nil:
		return s.CreateSchema.String()
	case s.DropSchema != nil:
		return s.DropSchema.String()
	case s.DropTable != nil:
		return s.DropTable.String()
	case s.CreateTable != nil:
		return s.CreateTable.String()
	default:
		return ""
	}
}

// Equal reports whether both statements hold equal variants.
func (s *Statement) Equal(other *Statement) bool {
	if s == nil || other == nil {
		return s == other
	}

	switch {
	case s.CreateSchema != nil:
		return s.CreateSchema.Equal(other.CreateSchema)
	case s.DropSchema != nil:
		return s.DropSchema.Equal(other.DropSchema)
	case s.DropTable != nil:
		return s.DropTable.Equal(other.DropTable)
	case s.CreateTable != nil:
		return s.CreateTable.Equal(other.CreateTable)
	default:
		return other.CreateSchema == nil && other.DropSchema == nil &&
			other.DropTable == nil && other.CreateTable == nil
	}
}

// terminated reports whether the statement ended with an explicit
// semicolon.
func (s *Statement) terminated() bool {
	switch {
	case s.CreateSchema != nil:
		return s.CreateSchema.Semicolon
	case s.DropSchema != nil:
		return s.DropSchema.Semicolon
	case s.DropTable != nil:
		return s.DropTable.Semicolon
	case s.CreateTable != nil:
		return s.CreateTable.Semicolon
	default:
		return false
	}
}

// validate applies the post-parse checks the grammar cannot express.
func (s *Statement) validate() error {
	if s.CreateTable != nil {
		return s.CreateTable.validate()
	}
	return nil
}
