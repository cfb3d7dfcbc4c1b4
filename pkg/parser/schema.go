package parser

import (
	"strings"

	"github.com/sqlfront/sqlfront/pkg/compare"
)

type (
	// CreateSchemaStmt is a CREATE SCHEMA statement.
	//
	// Syntax:
	//
	//	CREATE SCHEMA <schema name clause> [;]
	CreateSchemaStmt struct {
		Clause    *SchemaNameClause `parser:"'CREATE' 'SCHEMA' @@"`
		Semicolon bool              `parser:"@';'?"`
	}

	// SchemaNameClause names the schema being created, its owner, or both.
	// Exactly one field is non-nil. The combined form is tried first since
	// its prefix is a valid plain schema name.
	SchemaNameClause struct {
		NamedAuthorization *NamedSchemaAuthorization `parser:"@@"`
		Authorization      *Ident                    `parser:"| 'AUTHORIZATION' @(Ident | QuotedIdent)"`
		Name               *SchemaName               `parser:"| @@"`
	}

	// NamedSchemaAuthorization is the combined <schema name> AUTHORIZATION
	// <authorization identifier> form.
	NamedSchemaAuthorization struct {
		Name          SchemaName `parser:"@@"`
		Authorization Ident      `parser:"'AUTHORIZATION' @(Ident | QuotedIdent)"`
	}

	// DropSchemaStmt is a DROP SCHEMA statement. The drop behavior is
	// mandatory.
	//
	// Syntax:
	//
	//	DROP SCHEMA <schema name> <drop behavior> [;]
	DropSchemaStmt struct {
		Name      *SchemaName  `parser:"'DROP' 'SCHEMA' @@"`
		Behavior  DropBehavior `parser:"@('CASCADE' | 'RESTRICT')"`
		Semicolon bool         `parser:"@';'?"`
	}

	// DropBehavior is CASCADE or RESTRICT.
	DropBehavior string
)

const (
	BehaviorCascade  DropBehavior = "CASCADE"
	BehaviorRestrict DropBehavior = "RESTRICT"
)

// Capture canonicalizes the captured behavior keyword to upper case.
func (b *DropBehavior) Capture(values []string) error {
	*b = DropBehavior(strings.ToUpper(values[0]))
	return nil
}

// String renders the statement in canonical form, semicolon included.
func (c *CreateSchemaStmt) String() string {
	return "CREATE SCHEMA " + c.Clause.String() + ";"
}

// Equal reports whether both statements create the same schema. The
// trailing semicolon is presentation, not identity.
func (c *CreateSchemaStmt) Equal(other *CreateSchemaStmt) bool {
	if eq, more := compare.NilCheck(c, other); !more {
		return eq
	}
	return compare.PointersWithEqual(c.Clause, other.Clause, (*SchemaNameClause).Equal)
}

func (s *SchemaNameClause) String() string {
	switch {
	case s.NamedAuthorization != nil:
		return s.NamedAuthorization.String()
	case s.Authorization != nil:
		return "AUTHORIZATION " + s.Authorization.String()
	case s.Name != nil:
		return s.Name.String()
	default:
		return ""
	}
}

func (s *SchemaNameClause) Equal(other *SchemaNameClause) bool {
	if eq, more := compare.NilCheck(s, other); !more {
		return eq
	}

	return compare.PointersWithEqual(s.NamedAuthorization, other.NamedAuthorization, (*NamedSchemaAuthorization).Equal) &&
		s.Authorization.Equal(other.Authorization) &&
		compare.PointersWithEqual(s.Name, other.Name, (*SchemaName).Equal)
}

func (n *NamedSchemaAuthorization) String() string {
	return n.Name.String() + " AUTHORIZATION " + n.Authorization.String()
}

func (n *NamedSchemaAuthorization) Equal(other *NamedSchemaAuthorization) bool {
	if eq, more := compare.NilCheck(n, other); !more {
		return eq
	}
	return n.Name.Equal(&other.Name) && n.Authorization.Equal(&other.Authorization)
}

// String renders the statement in canonical form, semicolon included.
func (d *DropSchemaStmt) String() string {
	return "DROP SCHEMA " + d.Name.String() + " " + string(d.Behavior) + ";"
}

// Equal reports whether both statements drop the same schema with the same
// behavior.
func (d *DropSchemaStmt) Equal(other *DropSchemaStmt) bool {
	if eq, more := compare.NilCheck(d, other); !more {
		return eq
	}
	return compare.PointersWithEqual(d.Name, other.Name, (*SchemaName).Equal) && d.Behavior == other.Behavior
}
