package format

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/sqlfront/sqlfront/pkg/parser"
)

// Options controls formatting behavior.
type Options struct {
	// IndentSize is the number of spaces used for each indent level.
	IndentSize int

	// AlignTypes pads column names in a CREATE TABLE so the data types
	// start in the same column.
	AlignTypes bool
}

// Defaults is the standard set of formatting options.
var Defaults = Options{
	IndentSize: 4,
	AlignTypes: true,
}

// Formatter writes parsed statements with consistent layout.
type Formatter struct {
	options Options
}

// New creates a Formatter with the specified options. A zero or negative
// indent size falls back to the default.
func New(options Options) *Formatter {
	if options.IndentSize <= 0 {
		options.IndentSize = Defaults.IndentSize
	}
	return &Formatter{options: options}
}

// Format writes the statements to w, separated by blank lines. Every
// statement is semicolon-terminated in the output regardless of how it was
// written in the source.
func Format(w io.Writer, options Options, statements ...*parser.Statement) error {
	return New(options).Format(w, statements...)
}

// FormatSQL writes all statements of a parsed file to w.
func FormatSQL(w io.Writer, options Options, sql *parser.SQL) error {
	if sql == nil {
		return nil
	}
	return Format(w, options, sql.Statements...)
}

// Format writes the statements to w, separated by blank lines.
func (f *Formatter) Format(w io.Writer, statements ...*parser.Statement) error {
	rendered := make([]string, 0, len(statements))
	for _, stmt := range statements {
		s := f.statement(stmt)
		if s == "" {
			continue
		}
		rendered = append(rendered, s)
	}

	if _, err := io.WriteString(w, strings.Join(rendered, "\n\n")); err != nil {
		return errors.Wrap(err, "failed to write formatted SQL")
	}
	return nil
}

func (f *Formatter) statement(stmt *parser.Statement) string {
	if stmt == nil {
		return ""
	}

	if stmt.CreateTable != nil {
		return f.createTable(stmt.CreateTable)
	}

	sql := stmt.String()
	if sql == "" {
		return ""
	}
	if !strings.HasSuffix(sql, ";") {
		sql += ";"
	}
	return sql
}

// createTable lays the element list out one element per line.
func (f *Formatter) createTable(stmt *parser.CreateTableStmt) string {
	var sb strings.Builder
	sb.WriteString("CREATE ")

	if stmt.Scope != nil {
		sb.WriteString(stmt.Scope.String() + " ")
	}

	sb.WriteString("TABLE " + stmt.Name.String() + " (\n")

	indent := strings.Repeat(" ", f.options.IndentSize)
	nameWidth := f.columnNameWidth(stmt.Elements.Elements)

	for i, elem := range stmt.Elements.Elements {
		sb.WriteString(indent + f.element(elem, nameWidth))
		if i < len(stmt.Elements.Elements)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(");")
	return sb.String()
}

func (f *Formatter) element(elem *parser.TableElement, nameWidth int) string {
	col := elem.Column
	if col == nil {
		return elem.String()
	}

	name := col.Name.String()
	if col.Type == nil {
		return name
	}

	if f.options.AlignTypes && len(name) < nameWidth {
		name += strings.Repeat(" ", nameWidth-len(name))
	}
	return name + " " + col.Type.String()
}

// columnNameWidth returns the widest column name among elements that carry
// a data type. Columns without a type do not stretch the alignment.
func (f *Formatter) columnNameWidth(elements []*parser.TableElement) int {
	if !f.options.AlignTypes {
		return 0
	}

	width := 0
	for _, elem := range elements {
		if elem.Column == nil || elem.Column.Type == nil {
			continue
		}
		if n := len(elem.Column.Name.String()); n > width {
			width = n
		}
	}
	return width
}
