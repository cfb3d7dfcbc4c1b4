package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/sqlfront/sqlfront/pkg/compare"
)

type (
	// CreateTableStmt is a CREATE TABLE statement with an optional
	// temporary table scope and a parenthesized element list.
	//
	// Syntax:
	//
	//	CREATE [{GLOBAL | LOCAL} TEMPORARY] TABLE <table name> (<table elements>) [;]
	CreateTableStmt struct {
		Scope     *TableScope       `parser:"'CREATE' @@?"`
		Name      *TableName        `parser:"'TABLE' @@"`
		Elements  *TableElementList `parser:"@@"`
		Semicolon bool              `parser:"@';'?"`
	}

	// TableScope is the {GLOBAL | LOCAL} TEMPORARY prefix of a temporary
	// table.
	TableScope struct {
		Global bool `parser:"( @'GLOBAL'"`
		Local  bool `parser:"| @'LOCAL' ) 'TEMPORARY'"`
	}

	// TableElementList is the parenthesized element list of a CREATE TABLE
	// statement. The grammar admits an empty list so that the violation can
	// be reported as such rather than as a token mismatch; validate rejects
	// it after the parse.
	TableElementList struct {
		Pos lexer.Position

		Elements []*TableElement `parser:"'(' (@@ (',' @@)*)? ')'"`
	}

	// TableElement is one entry in a table element list. Column definitions
	// are the only supported element so far; table constraints would slot in
	// as further alternatives.
	TableElement struct {
		Column *ColumnDefinition `parser:"@@"`
	}

	// ColumnDefinition is a column name with an optional data type.
	ColumnDefinition struct {
		Name Ident     `parser:"@(Ident | QuotedIdent)"`
		Type *DataType `parser:"@@?"`
	}

	// DropTableStmt is a DROP TABLE statement. The drop behavior is
	// mandatory.
	//
	// Syntax:
	//
	//	DROP TABLE <table name> <drop behavior> [;]
	DropTableStmt struct {
		Name      *TableName   `parser:"'DROP' 'TABLE' @@"`
		Behavior  DropBehavior `parser:"@('CASCADE' | 'RESTRICT')"`
		Semicolon bool         `parser:"@';'?"`
	}
)

// String renders the statement in canonical form, without a trailing
// semicolon.
func (c *CreateTableStmt) String() string {
	var sb strings.Builder
	sb.WriteString("CREATE ")

	if c.Scope != nil {
		sb.WriteString(c.Scope.String() + " ")
	}

	sb.WriteString("TABLE " + c.Name.String() + " " + c.Elements.String())

	return sb.String()
}

// Equal reports whether both statements create the same table.
func (c *CreateTableStmt) Equal(other *CreateTableStmt) bool {
	if eq, more := compare.NilCheck(c, other); !more {
		return eq
	}

	return compare.PointersWithEqual(c.Scope, other.Scope, (*TableScope).Equal) &&
		compare.PointersWithEqual(c.Name, other.Name, (*TableName).Equal) &&
		compare.PointersWithEqual(c.Elements, other.Elements, (*TableElementList).Equal)
}

func (c *CreateTableStmt) validate() error {
	if len(c.Elements.Elements) == 0 {
		return &Error{
			Kind:    KindEmptyList,
			Pos:     c.Elements.Pos,
			Message: "table element list must contain at least one element",
		}
	}
	return nil
}

func (t *TableScope) String() string {
	if t.Global {
		return "GLOBAL TEMPORARY"
	}
	return "LOCAL TEMPORARY"
}

func (t *TableScope) Equal(other *TableScope) bool {
	if eq, more := compare.NilCheck(t, other); !more {
		return eq
	}
	return *t == *other
}

func (l *TableElementList) String() string {
	rendered := make([]string, 0, len(l.Elements))
	for _, elem := range l.Elements {
		rendered = append(rendered, elem.String())
	}

	return "(" + strings.Join(rendered, ", ") + ")"
}

func (l *TableElementList) Equal(other *TableElementList) bool {
	if eq, more := compare.NilCheck(l, other); !more {
		return eq
	}
	return compare.Slices(l.Elements, other.Elements, (*TableElement).Equal)
}

func (e *TableElement) String() string {
	if e.Column != nil {
		return e.Column.String()
	}
	return ""
}

func (e *TableElement) Equal(other *TableElement) bool {
	if eq, more := compare.NilCheck(e, other); !more {
		return eq
	}
	return compare.PointersWithEqual(e.Column, other.Column, (*ColumnDefinition).Equal)
}

func (c *ColumnDefinition) String() string {
	if c.Type != nil {
		return c.Name.String() + " " + c.Type.String()
	}
	return c.Name.String()
}

func (c *ColumnDefinition) Equal(other *ColumnDefinition) bool {
	if eq, more := compare.NilCheck(c, other); !more {
		return eq
	}
	return c.Name.Equal(&other.Name) && c.Type.Equal(other.Type)
}

// String renders the statement in canonical form, without a trailing
// semicolon.
func (d *DropTableStmt) String() string {
	return "DROP TABLE " + d.Name.String() + " " + string(d.Behavior)
}

// Equal reports whether both statements drop the same table with the same
// behavior.
func (d *DropTableStmt) Equal(other *DropTableStmt) bool {
	if eq, more := compare.NilCheck(d, other); !more {
		return eq
	}
	return compare.PointersWithEqual(d.Name, other.Name, (*TableName).Equal) && d.Behavior == other.Behavior
}
