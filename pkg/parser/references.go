package parser

import (
	"strings"

	"github.com/sqlfront/sqlfront/pkg/compare"
)

var (
	referentialActionParser          = newParser[referentialActionProduction]()
	referentialTriggeredActionParser = newParser[ReferentialTriggeredAction]()
	matchTypeParser                  = newParser[matchTypeProduction]()
	columnNameListParser             = newParser[ColumnNameList]()
	referencedPeriodParser           = newParser[ReferencedPeriodSpecification]()
)

type (
	// ReferentialAction is the action taken on the referencing rows when a
	// referenced row is updated or deleted.
	ReferentialAction string

	// UpdateRule is an ON UPDATE <referential action> clause.
	UpdateRule struct {
		Action ReferentialAction `parser:"'ON' 'UPDATE' @('CASCADE' | ('SET' 'NULL') | ('SET' 'DEFAULT') | 'RESTRICT' | ('NO' 'ACTION'))"`
	}

	// DeleteRule is an ON DELETE <referential action> clause.
	DeleteRule struct {
		Action ReferentialAction `parser:"'ON' 'DELETE' @('CASCADE' | ('SET' 'NULL') | ('SET' 'DEFAULT') | 'RESTRICT' | ('NO' 'ACTION'))"`
	}

	// ReferentialTriggeredAction is one or two triggered action clauses in
	// either order, each rule appearing at most once.
	ReferentialTriggeredAction struct {
		UpdateFirst *UpdateTriggeredAction `parser:"@@"`
		DeleteFirst *DeleteTriggeredAction `parser:"| @@"`
	}

	// UpdateTriggeredAction is an update rule optionally followed by a
	// delete rule.
	UpdateTriggeredAction struct {
		Update UpdateRule  `parser:"@@"`
		Delete *DeleteRule `parser:"@@?"`
	}

	// DeleteTriggeredAction is a delete rule optionally followed by an
	// update rule.
	DeleteTriggeredAction struct {
		Delete DeleteRule  `parser:"@@"`
		Update *UpdateRule `parser:"@@?"`
	}

	// MatchType is the FULL, PARTIAL, or SIMPLE marker of a references
	// specification.
	MatchType string

	// ColumnNameList is a non-empty comma-separated list of column names.
	ColumnNameList struct {
		Columns []Ident `parser:"@(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))*"`
	}

	// ReferencedPeriodSpecification names the application time period of the
	// referenced table.
	ReferencedPeriodSpecification struct {
		Period Ident `parser:"'PERIOD' @(Ident | QuotedIdent)"`
	}

	// referentialActionProduction wraps ReferentialAction so it can be
	// parsed standalone.
	referentialActionProduction struct {
		Action ReferentialAction `parser:"@('CASCADE' | ('SET' 'NULL') | ('SET' 'DEFAULT') | 'RESTRICT' | ('NO' 'ACTION'))"`
	}

	// matchTypeProduction wraps MatchType so it can be parsed standalone.
	matchTypeProduction struct {
		Type MatchType `parser:"@('FULL' | 'PARTIAL' | 'SIMPLE')"`
	}
)

const (
	ActionCascade    ReferentialAction = "CASCADE"
	ActionSetNull    ReferentialAction = "SET NULL"
	ActionSetDefault ReferentialAction = "SET DEFAULT"
	ActionRestrict   ReferentialAction = "RESTRICT"
	ActionNoAction   ReferentialAction = "NO ACTION"

	MatchFull    MatchType = "FULL"
	MatchPartial MatchType = "PARTIAL"
	MatchSimple  MatchType = "SIMPLE"
)

// ParseReferentialAction parses a bare referential action, e.g. "SET NULL".
func ParseReferentialAction(sql string) (ReferentialAction, error) {
	prod, err := referentialActionParser.ParseString("", sql)
	if err != nil {
		return "", classify(err, 0)
	}
	return prod.Action, nil
}

// ParseReferentialTriggeredAction parses one or two triggered action
// clauses, e.g. "ON DELETE CASCADE ON UPDATE SET NULL".
func ParseReferentialTriggeredAction(sql string) (*ReferentialTriggeredAction, error) {
	action, err := referentialTriggeredActionParser.ParseString("", sql)
	if err != nil {
		return nil, classify(err, 0)
	}
	return action, nil
}

// ParseMatchType parses a bare match type keyword, e.g. "PARTIAL".
func ParseMatchType(sql string) (MatchType, error) {
	prod, err := matchTypeParser.ParseString("", sql)
	if err != nil {
		return "", classify(err, 0)
	}
	return prod.Type, nil
}

// ParseColumnNameList parses a non-empty comma-separated column name list.
func ParseColumnNameList(sql string) (*ColumnNameList, error) {
	list, err := columnNameListParser.ParseString("", sql)
	if err != nil {
		return nil, classify(err, 0)
	}
	return list, nil
}

// ParseReferencedPeriodSpecification parses a "PERIOD <ident>" fragment.
func ParseReferencedPeriodSpecification(sql string) (*ReferencedPeriodSpecification, error) {
	spec, err := referencedPeriodParser.ParseString("", sql)
	if err != nil {
		return nil, classify(err, 0)
	}
	return spec, nil
}

// Capture joins the captured keywords of a multi-word action into its
// canonical upper-case spelling. Participle may deliver the words across
// several calls, so later words append.
func (r *ReferentialAction) Capture(values []string) error {
	for _, v := range values {
		word := strings.ToUpper(v)
		if *r == "" {
			*r = ReferentialAction(word)
		} else {
			*r += ReferentialAction(" " + word)
		}
	}
	return nil
}

// Capture canonicalizes the captured match type keyword to upper case.
func (m *MatchType) Capture(values []string) error {
	*m = MatchType(strings.ToUpper(values[0]))
	return nil
}

func (u *UpdateRule) String() string {
	return "ON UPDATE " + string(u.Action)
}

func (u *UpdateRule) Equal(other *UpdateRule) bool {
	if eq, more := compare.NilCheck(u, other); !more {
		return eq
	}
	return u.Action == other.Action
}

func (d *DeleteRule) String() string {
	return "ON DELETE " + string(d.Action)
}

func (d *DeleteRule) Equal(other *DeleteRule) bool {
	if eq, more := compare.NilCheck(d, other); !more {
		return eq
	}
	return d.Action == other.Action
}

// String renders the clauses in their source order.
func (r *ReferentialTriggeredAction) String() string {
	switch {
	case r.UpdateFirst != nil:
		return r.UpdateFirst.String()
	case r.DeleteFirst != nil:
		return r.DeleteFirst.String()
	default:
		return ""
	}
}

func (r *ReferentialTriggeredAction) Equal(other *ReferentialTriggeredAction) bool {
	if eq, more := compare.NilCheck(r, other); !more {
		return eq
	}

	return compare.PointersWithEqual(r.UpdateFirst, other.UpdateFirst, (*UpdateTriggeredAction).Equal) &&
		compare.PointersWithEqual(r.DeleteFirst, other.DeleteFirst, (*DeleteTriggeredAction).Equal)
}

func (u *UpdateTriggeredAction) String() string {
	if u.Delete != nil {
		return u.Update.String() + " " + u.Delete.String()
	}
	return u.Update.String()
}

func (u *UpdateTriggeredAction) Equal(other *UpdateTriggeredAction) bool {
	if eq, more := compare.NilCheck(u, other); !more {
		return eq
	}
	return u.Update.Equal(&other.Update) && compare.PointersWithEqual(u.Delete, other.Delete, (*DeleteRule).Equal)
}

func (d *DeleteTriggeredAction) String() string {
	if d.Update != nil {
		return d.Delete.String() + " " + d.Update.String()
	}
	return d.Delete.String()
}

func (d *DeleteTriggeredAction) Equal(other *DeleteTriggeredAction) bool {
	if eq, more := compare.NilCheck(d, other); !more {
		return eq
	}
	return d.Delete.Equal(&other.Delete) && compare.PointersWithEqual(d.Update, other.Update, (*UpdateRule).Equal)
}

// String renders the list with a comma and space between names.
func (c *ColumnNameList) String() string {
	rendered := make([]string, 0, len(c.Columns))
	for _, col := range c.Columns {
		rendered = append(rendered, col.String())
	}
	return strings.Join(rendered, ", ")
}

func (c *ColumnNameList) Equal(other *ColumnNameList) bool {
	if eq, more := compare.NilCheck(c, other); !more {
		return eq
	}
	return compare.Slices(c.Columns, other.Columns, func(a, b Ident) bool { return a.Equal(&b) })
}

func (r *ReferencedPeriodSpecification) String() string {
	return "PERIOD " + r.Period.String()
}

func (r *ReferencedPeriodSpecification) Equal(other *ReferencedPeriodSpecification) bool {
	if eq, more := compare.NilCheck(r, other); !more {
		return eq
	}
	return r.Period.Equal(&other.Period)
}
