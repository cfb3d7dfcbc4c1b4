package parser

import "github.com/sqlfront/sqlfront/pkg/compare"

var (
	schemaNameParser = newParser[SchemaName]()
	tableNameParser  = newParser[TableName]()
)

type (
	// SchemaName is a schema identifier with an optional catalog qualifier.
	//
	// Syntax:
	//
	//	[catalog_name.]schema_name
	SchemaName struct {
		Catalog *Ident `parser:"(@(Ident | QuotedIdent) '.')?"`
		Name    Ident  `parser:"@(Ident | QuotedIdent)"`
	}

	// TableName is a table identifier with an optional local or schema
	// qualifier.
	//
	// Syntax:
	//
	//	[<local or schema qualifier>.]table_name
	TableName struct {
		Qualifier *LocalOrSchemaQualifier `parser:"(@@ '.')?"`
		Name      Ident                   `parser:"@(Ident | QuotedIdent)"`
	}

	// LocalOrSchemaQualifier qualifies a table name with either the fixed
	// MODULE keyword or a (possibly catalog-qualified) schema name.
	LocalOrSchemaQualifier struct {
		Module bool                  `parser:"@'MODULE'"`
		Schema *QualifyingSchemaName `parser:"| @@"`
	}

	// QualifyingSchemaName is a schema name in qualifying position inside a
	// table name. A dotted chain of N identifiers is ambiguous between
	// "N-1 qualifiers + table name" and an N-part schema name, so each part
	// commits only after a non-consuming lookahead confirms that a further
	// ".identifier" still follows for the table identifier itself.
	QualifyingSchemaName struct {
		Catalog *Ident `parser:"(@(Ident | QuotedIdent) '.' (?= (Ident | QuotedIdent) '.' (Ident | QuotedIdent)))?"`
		Name    Ident  `parser:"@(Ident | QuotedIdent) (?= '.' (Ident | QuotedIdent))"`
	}
)

// ParseSchemaName parses a bare [catalog.]schema name.
func ParseSchemaName(sql string) (*SchemaName, error) {
	name, err := schemaNameParser.ParseString("", sql)
	if err != nil {
		return nil, classify(err, 0)
	}
	return name, nil
}

// ParseTableName parses a bare [qualifier.]table name.
func ParseTableName(sql string) (*TableName, error) {
	name, err := tableNameParser.ParseString("", sql)
	if err != nil {
		return nil, classify(err, 0)
	}
	return name, nil
}

// String renders the schema name with its catalog qualifier, if any.
func (s *SchemaName) String() string {
	if s.Catalog != nil {
		return s.Catalog.String() + "." + s.Name.String()
	}
	return s.Name.String()
}

// Equal reports whether both schema names have equal catalog and name parts.
func (s *SchemaName) Equal(other *SchemaName) bool {
	if eq, more := compare.NilCheck(s, other); !more {
		return eq
	}
	return s.Catalog.Equal(other.Catalog) && s.Name.Equal(&other.Name)
}

// String renders the table name with its qualifier, if any.
func (t *TableName) String() string {
	if t.Qualifier != nil {
		return t.Qualifier.String() + "." + t.Name.String()
	}
	return t.Name.String()
}

// Equal reports whether both table names have equal qualifiers and names.
func (t *TableName) Equal(other *TableName) bool {
	if eq, more := compare.NilCheck(t, other); !more {
		return eq
	}

	if !compare.PointersWithEqual(t.Qualifier, other.Qualifier, (*LocalOrSchemaQualifier).Equal) {
		return false
	}
	return t.Name.Equal(&other.Name)
}

func (q *LocalOrSchemaQualifier) String() string {
	if q.Module {
		return "MODULE"
	}
	if q.Schema != nil {
		return q.Schema.String()
	}
	return ""
}

func (q *LocalOrSchemaQualifier) Equal(other *LocalOrSchemaQualifier) bool {
	if eq, more := compare.NilCheck(q, other); !more {
		return eq
	}
	if q.Module != other.Module {
		return false
	}
	return compare.PointersWithEqual(q.Schema, other.Schema, (*QualifyingSchemaName).Equal)
}

func (q *QualifyingSchemaName) String() string {
	if q.Catalog != nil {
		return q.Catalog.String() + "." + q.Name.String()
	}
	return q.Name.String()
}

func (q *QualifyingSchemaName) Equal(other *QualifyingSchemaName) bool {
	if eq, more := compare.NilCheck(q, other); !more {
		return eq
	}
	return q.Catalog.Equal(other.Catalog) && q.Name.Equal(&other.Name)
}
