package parser

import (
	"strconv"
	"strings"

	"github.com/sqlfront/sqlfront/pkg/compare"
)

var dataTypeParser = newParser[DataType]()

type (
	// DataType is the closed union of supported ANSI scalar data types.
	// Exactly one field is non-nil.
	//
	// The alternatives are tried in declaration order and the order is a
	// correctness invariant: several keywords are prefixes of others (CHAR
	// vs CHARACTER vs CHAR VARYING vs CHAR LARGE OBJECT, DEC vs DECIMAL vs
	// DECFLOAT), so the longest keyword sequences must be tried first and
	// large-object forms before plain character strings.
	DataType struct {
		CharacterLargeObject *CharacterLargeObjectType `parser:"@@"`
		CharacterString      *CharacterStringType      `parser:"| @@"`
		BinaryLargeObject    *BinaryLargeObjectType    `parser:"| @@"`
		BinaryString         *BinaryStringType         `parser:"| @@"`
		DecFloat             *DecFloatType             `parser:"| @@"`
		ExactNumeric         *ExactNumericType         `parser:"| @@"`
		Integer              *IntegerType              `parser:"| @@"`
		ApproximateNumeric   *ApproximateNumericType   `parser:"| @@"`
		Boolean              *BooleanType              `parser:"| @@"`
		Datetime             *DatetimeType             `parser:"| @@"`
	}

	// CharacterLargeObjectType covers CHARACTER LARGE OBJECT,
	// CHAR LARGE OBJECT, and CLOB, each with an optional parenthesized
	// large-object length.
	CharacterLargeObjectType struct {
		CharacterLargeObject bool `parser:"( @('CHARACTER' 'LARGE' 'OBJECT')"`
		CharLargeObject      bool `parser:"| @('CHAR' 'LARGE' 'OBJECT')"`
		Clob                 bool `parser:"| @'CLOB' )"`

		Length *CharacterLargeObjectLength `parser:"('(' @@ ')')?"`
	}

	// CharacterStringType covers the plain character string types with an
	// optional parenthesized character length.
	CharacterStringType struct {
		CharacterVarying bool `parser:"( @('CHARACTER' 'VARYING')"`
		CharVarying      bool `parser:"| @('CHAR' 'VARYING')"`
		Character        bool `parser:"| @'CHARACTER'"`
		Varchar          bool `parser:"| @'VARCHAR'"`
		Char             bool `parser:"| @'CHAR' )"`

		Length *CharacterLength `parser:"('(' @@ ')')?"`
	}

	// BinaryLargeObjectType covers BINARY LARGE OBJECT and BLOB with an
	// optional parenthesized large-object length.
	BinaryLargeObjectType struct {
		BinaryLargeObject bool `parser:"( @('BINARY' 'LARGE' 'OBJECT')"`
		Blob              bool `parser:"| @'BLOB' )"`

		Length *LargeObjectLength `parser:"('(' @@ ')')?"`
	}

	// BinaryStringType covers VARBINARY, BINARY VARYING, and BINARY with an
	// optional plain length.
	BinaryStringType struct {
		Varbinary     bool `parser:"( @'VARBINARY'"`
		BinaryVarying bool `parser:"| @('BINARY' 'VARYING')"`
		Binary        bool `parser:"| @'BINARY' )"`

		Length *uint32 `parser:"('(' @Number ')')?"`
	}

	// DecFloatType is DECFLOAT with an optional precision.
	DecFloatType struct {
		Precision *uint32 `parser:"'DECFLOAT' ('(' @Number ')')?"`
	}

	// ExactNumericType covers DECIMAL, NUMERIC, and DEC. The precision
	// information has three mutually exclusive states: absent, precision
	// only, and precision plus scale (see ExactNumberInfo).
	ExactNumericType struct {
		Decimal bool `parser:"( @'DECIMAL'"`
		Numeric bool `parser:"| @'NUMERIC'"`
		Dec     bool `parser:"| @'DEC' )"`

		Info *ExactNumberInfo `parser:"@@?"`
	}

	// ExactNumberInfo is the parenthesized precision[, scale] suffix of an
	// exact numeric type. A nil *ExactNumberInfo means the suffix was
	// absent; a nil Scale means precision only.
	ExactNumberInfo struct {
		Precision uint32  `parser:"'(' @Number"`
		Scale     *uint32 `parser:"(',' @Number)? ')'"`
	}

	// IntegerType covers the fixed-keyword integer types.
	IntegerType struct {
		Smallint bool `parser:"@'SMALLINT'"`
		Integer  bool `parser:"| @'INTEGER'"`
		Bigint   bool `parser:"| @'BIGINT'"`
		Int      bool `parser:"| @'INT'"`
	}

	// ApproximateNumericType covers FLOAT, REAL, and DOUBLE PRECISION.
	ApproximateNumericType struct {
		Float           bool `parser:"@'FLOAT'"`
		Real            bool `parser:"| @'REAL'"`
		DoublePrecision bool `parser:"| @('DOUBLE' 'PRECISION')"`
	}

	// BooleanType is the BOOLEAN keyword.
	BooleanType struct {
		Boolean bool `parser:"@'BOOLEAN'"`
	}

	// DatetimeType covers DATE, TIMESTAMP, and TIME. Only TIMESTAMP and
	// TIME take a precision and timezone marker.
	DatetimeType struct {
		Date      bool           `parser:"@'DATE'"`
		Timestamp *TimestampType `parser:"| @@"`
		Time      *TimeType      `parser:"| @@"`
	}

	// TimestampType is TIMESTAMP[(precision)] [<timezone marker>].
	TimestampType struct {
		Precision *uint32      `parser:"'TIMESTAMP' ('(' @Number ')')?"`
		TimeZone  TimeZoneSpec `parser:"( @('WITHOUT' 'TIME' 'ZONE') | @('WITH' 'TIME' 'ZONE') )?"`
	}

	// TimeType is TIME[(precision)] [<timezone marker>].
	TimeType struct {
		Precision *uint32      `parser:"'TIME' ('(' @Number ')')?"`
		TimeZone  TimeZoneSpec `parser:"( @('WITHOUT' 'TIME' 'ZONE') | @('WITH' 'TIME' 'ZONE') )?"`
	}

	// CharacterLength is the length [units] payload of a character string
	// type.
	CharacterLength struct {
		Length uint32           `parser:"@Number"`
		Units  *CharLengthUnits `parser:"@( 'CHARACTERS' | 'OCTETS' )?"`
	}

	// CharacterLargeObjectLength is the large-object length [units] payload
	// of a character large object type.
	CharacterLargeObjectLength struct {
		Length LargeObjectLength `parser:"@@"`
		Units  *CharLengthUnits  `parser:"@( 'CHARACTERS' | 'OCTETS' )?"`
	}

	// LargeObjectLength is an unsigned length with an optional K/M/G/T/P
	// multiplier, e.g. 20K.
	LargeObjectLength struct {
		Length     uint32      `parser:"@Number"`
		Multiplier *Multiplier `parser:"@( 'K' | 'M' | 'G' | 'T' | 'P' )?"`
	}

	// CharLengthUnits is CHARACTERS or OCTETS.
	CharLengthUnits string

	// Multiplier scales a large-object length by a power of 1024.
	Multiplier string

	// TimeZoneSpec is the 3-state timezone marker of TIME and TIMESTAMP.
	// The zero value means the marker was absent.
	TimeZoneSpec string
)

const (
	UnitsCharacters CharLengthUnits = "CHARACTERS"
	UnitsOctets     CharLengthUnits = "OCTETS"

	MultiplierK Multiplier = "K"
	MultiplierM Multiplier = "M"
	MultiplierG Multiplier = "G"
	MultiplierT Multiplier = "T"
	MultiplierP Multiplier = "P"

	TimeZoneNone    TimeZoneSpec = ""
	TimeZoneWith    TimeZoneSpec = "WITH TIME ZONE"
	TimeZoneWithout TimeZoneSpec = "WITHOUT TIME ZONE"
)

// ParseDataType parses a bare data type, e.g. "VARCHAR(20 OCTETS)". The
// whole input must be consumed.
func ParseDataType(sql string) (*DataType, error) {
	dt, err := dataTypeParser.ParseString("", sql)
	if err != nil {
		return nil, classify(err, 0)
	}
	return dt, nil
}

// Capture canonicalizes the captured units keyword to upper case.
func (u *CharLengthUnits) Capture(values []string) error {
	*u = CharLengthUnits(strings.ToUpper(values[0]))
	return nil
}

// Capture canonicalizes the captured multiplier letter to upper case.
func (m *Multiplier) Capture(values []string) error {
	*m = Multiplier(strings.ToUpper(values[0]))
	return nil
}

// Capture keys the marker off its first keyword; the trailing TIME ZONE
// tokens carry no information.
func (t *TimeZoneSpec) Capture(values []string) error {
	switch strings.ToUpper(values[0]) {
	case "WITH":
		*t = TimeZoneWith
	case "WITHOUT":
		*t = TimeZoneWithout
	}
	return nil
}

// String renders the active variant in canonical form.
func (d *DataType) String() string {
	switch {
	case d.CharacterLargeObject != nil:
		return d.CharacterLargeObject.String()
	case d.CharacterString != nil:
		return d.CharacterString.String()
	case d.BinaryLargeObject != nil:
		return d.BinaryLargeObject.String()
	case d.BinaryString != nil:
		return d.BinaryString.String()
	case d.DecFloat != nil:
		return d.DecFloat.String()
	case d.ExactNumeric != nil:
		return d.ExactNumeric.String()
	case d.Integer != nil:
		return d.Integer.String()
	case d.ApproximateNumeric != nil:
		return d.ApproximateNumeric.String()
	case d.Boolean != nil:
		return "BOOLEAN"
	case d.Datetime != nil:
		return d.Datetime.String()
	default:
		return ""
	}
}

// Equal reports whether both data types hold equal variants.
func (d *DataType) Equal(other *DataType) bool {
	if eq, more := compare.NilCheck(d, other); !more {
		return eq
	}

	return compare.PointersWithEqual(d.CharacterLargeObject, other.CharacterLargeObject, (*CharacterLargeObjectType).Equal) &&
		compare.PointersWithEqual(d.CharacterString, other.CharacterString, (*CharacterStringType).Equal) &&
		compare.PointersWithEqual(d.BinaryLargeObject, other.BinaryLargeObject, (*BinaryLargeObjectType).Equal) &&
		compare.PointersWithEqual(d.BinaryString, other.BinaryString, (*BinaryStringType).Equal) &&
		compare.PointersWithEqual(d.DecFloat, other.DecFloat, (*DecFloatType).Equal) &&
		compare.PointersWithEqual(d.ExactNumeric, other.ExactNumeric, (*ExactNumericType).Equal) &&
		compare.PointersWithEqual(d.Integer, other.Integer, (*IntegerType).Equal) &&
		compare.PointersWithEqual(d.ApproximateNumeric, other.ApproximateNumeric, (*ApproximateNumericType).Equal) &&
		compare.PointersWithEqual(d.Boolean, other.Boolean, (*BooleanType).Equal) &&
		compare.PointersWithEqual(d.Datetime, other.Datetime, (*DatetimeType).Equal)
}

func (c *CharacterLargeObjectType) String() string {
	var sb strings.Builder

	switch {
	case c.CharacterLargeObject:
		sb.WriteString("CHARACTER LARGE OBJECT")
	case c.CharLargeObject:
		sb.WriteString("CHAR LARGE OBJECT")
	case c.Clob:
		sb.WriteString("CLOB")
	}

	if c.Length != nil {
		sb.WriteString("(" + c.Length.String() + ")")
	}

	return sb.String()
}

func (c *CharacterLargeObjectType) Equal(other *CharacterLargeObjectType) bool {
	if eq, more := compare.NilCheck(c, other); !more {
		return eq
	}

	return c.CharacterLargeObject == other.CharacterLargeObject &&
		c.CharLargeObject == other.CharLargeObject &&
		c.Clob == other.Clob &&
		compare.PointersWithEqual(c.Length, other.Length, (*CharacterLargeObjectLength).Equal)
}

func (c *CharacterStringType) String() string {
	var sb strings.Builder

	switch {
	case c.CharacterVarying:
		sb.WriteString("CHARACTER VARYING")
	case c.CharVarying:
		sb.WriteString("CHAR VARYING")
	case c.Character:
		sb.WriteString("CHARACTER")
	case c.Varchar:
		sb.WriteString("VARCHAR")
	case c.Char:
		sb.WriteString("CHAR")
	}

	if c.Length != nil {
		sb.WriteString("(" + c.Length.String() + ")")
	}

	return sb.String()
}

func (c *CharacterStringType) Equal(other *CharacterStringType) bool {
	if eq, more := compare.NilCheck(c, other); !more {
		return eq
	}

	return c.CharacterVarying == other.CharacterVarying &&
		c.CharVarying == other.CharVarying &&
		c.Character == other.Character &&
		c.Varchar == other.Varchar &&
		c.Char == other.Char &&
		compare.PointersWithEqual(c.Length, other.Length, (*CharacterLength).Equal)
}

func (b *BinaryLargeObjectType) String() string {
	var sb strings.Builder

	if b.BinaryLargeObject {
		sb.WriteString("BINARY LARGE OBJECT")
	} else {
		sb.WriteString("BLOB")
	}

	if b.Length != nil {
		sb.WriteString("(" + b.Length.String() + ")")
	}

	return sb.String()
}

func (b *BinaryLargeObjectType) Equal(other *BinaryLargeObjectType) bool {
	if eq, more := compare.NilCheck(b, other); !more {
		return eq
	}

	return b.BinaryLargeObject == other.BinaryLargeObject &&
		b.Blob == other.Blob &&
		compare.PointersWithEqual(b.Length, other.Length, (*LargeObjectLength).Equal)
}

func (b *BinaryStringType) String() string {
	var sb strings.Builder

	switch {
	case b.Varbinary:
		sb.WriteString("VARBINARY")
	case b.BinaryVarying:
		sb.WriteString("BINARY VARYING")
	case b.Binary:
		sb.WriteString("BINARY")
	}

	if b.Length != nil {
		sb.WriteString("(" + strconv.FormatUint(uint64(*b.Length), 10) + ")")
	}

	return sb.String()
}

func (b *BinaryStringType) Equal(other *BinaryStringType) bool {
	if eq, more := compare.NilCheck(b, other); !more {
		return eq
	}

	return b.Varbinary == other.Varbinary &&
		b.BinaryVarying == other.BinaryVarying &&
		b.Binary == other.Binary &&
		compare.Pointers(b.Length, other.Length)
}

func (d *DecFloatType) String() string {
	if d.Precision != nil {
		return "DECFLOAT(" + strconv.FormatUint(uint64(*d.Precision), 10) + ")"
	}
	return "DECFLOAT"
}

func (d *DecFloatType) Equal(other *DecFloatType) bool {
	if eq, more := compare.NilCheck(d, other); !more {
		return eq
	}
	return compare.Pointers(d.Precision, other.Precision)
}

func (e *ExactNumericType) String() string {
	var sb strings.Builder

	switch {
	case e.Decimal:
		sb.WriteString("DECIMAL")
	case e.Numeric:
		sb.WriteString("NUMERIC")
	case e.Dec:
		sb.WriteString("DEC")
	}

	if e.Info != nil {
		sb.WriteString(e.Info.String())
	}

	return sb.String()
}

func (e *ExactNumericType) Equal(other *ExactNumericType) bool {
	if eq, more := compare.NilCheck(e, other); !more {
		return eq
	}

	return e.Decimal == other.Decimal &&
		e.Numeric == other.Numeric &&
		e.Dec == other.Dec &&
		compare.PointersWithEqual(e.Info, other.Info, (*ExactNumberInfo).Equal)
}

func (e *ExactNumberInfo) String() string {
	if e.Scale != nil {
		return "(" + strconv.FormatUint(uint64(e.Precision), 10) + ", " + strconv.FormatUint(uint64(*e.Scale), 10) + ")"
	}
	return "(" + strconv.FormatUint(uint64(e.Precision), 10) + ")"
}

func (e *ExactNumberInfo) Equal(other *ExactNumberInfo) bool {
	if eq, more := compare.NilCheck(e, other); !more {
		return eq
	}
	return e.Precision == other.Precision && compare.Pointers(e.Scale, other.Scale)
}

func (i *IntegerType) String() string {
	switch {
	case i.Smallint:
		return "SMALLINT"
	case i.Integer:
		return "INTEGER"
	case i.Bigint:
		return "BIGINT"
	case i.Int:
		return "INT"
	default:
		return ""
	}
}

func (i *IntegerType) Equal(other *IntegerType) bool {
	if eq, more := compare.NilCheck(i, other); !more {
		return eq
	}
	return *i == *other
}

func (a *ApproximateNumericType) String() string {
	switch {
	case a.Float:
		return "FLOAT"
	case a.Real:
		return "REAL"
	case a.DoublePrecision:
		return "DOUBLE PRECISION"
	default:
		return ""
	}
}

func (a *ApproximateNumericType) Equal(other *ApproximateNumericType) bool {
	if eq, more := compare.NilCheck(a, other); !more {
		return eq
	}
	return *a == *other
}

func (b *BooleanType) String() string { return "BOOLEAN" }

func (b *BooleanType) Equal(other *BooleanType) bool {
	if eq, more := compare.NilCheck(b, other); !more {
		return eq
	}
	return *b == *other
}

func (d *DatetimeType) String() string {
	switch {
	case d.Date:
		return "DATE"
	case d.Timestamp != nil:
		return d.Timestamp.String()
	case d.Time != nil:
		return d.Time.String()
	default:
		return ""
	}
}

func (d *DatetimeType) Equal(other *DatetimeType) bool {
	if eq, more := compare.NilCheck(d, other); !more {
		return eq
	}

	return d.Date == other.Date &&
		compare.PointersWithEqual(d.Timestamp, other.Timestamp, (*TimestampType).Equal) &&
		compare.PointersWithEqual(d.Time, other.Time, (*TimeType).Equal)
}

func (t *TimestampType) String() string {
	return temporalString("TIMESTAMP", t.Precision, t.TimeZone)
}

func (t *TimestampType) Equal(other *TimestampType) bool {
	if eq, more := compare.NilCheck(t, other); !more {
		return eq
	}
	return compare.Pointers(t.Precision, other.Precision) && t.TimeZone == other.TimeZone
}

func (t *TimeType) String() string {
	return temporalString("TIME", t.Precision, t.TimeZone)
}

func (t *TimeType) Equal(other *TimeType) bool {
	if eq, more := compare.NilCheck(t, other); !more {
		return eq
	}
	return compare.Pointers(t.Precision, other.Precision) && t.TimeZone == other.TimeZone
}

func temporalString(keyword string, precision *uint32, tz TimeZoneSpec) string {
	var sb strings.Builder
	sb.WriteString(keyword)

	if precision != nil {
		sb.WriteString("(" + strconv.FormatUint(uint64(*precision), 10) + ")")
	}
	if tz != TimeZoneNone {
		sb.WriteString(" " + string(tz))
	}

	return sb.String()
}

func (l *CharacterLength) String() string {
	s := strconv.FormatUint(uint64(l.Length), 10)
	if l.Units != nil {
		s += " " + string(*l.Units)
	}
	return s
}

func (l *CharacterLength) Equal(other *CharacterLength) bool {
	if eq, more := compare.NilCheck(l, other); !more {
		return eq
	}
	return l.Length == other.Length && compare.Pointers(l.Units, other.Units)
}

func (l *CharacterLargeObjectLength) String() string {
	s := l.Length.String()
	if l.Units != nil {
		s += " " + string(*l.Units)
	}
	return s
}

func (l *CharacterLargeObjectLength) Equal(other *CharacterLargeObjectLength) bool {
	if eq, more := compare.NilCheck(l, other); !more {
		return eq
	}
	return l.Length.Equal(&other.Length) && compare.Pointers(l.Units, other.Units)
}

func (l *LargeObjectLength) String() string {
	s := strconv.FormatUint(uint64(l.Length), 10)
	if l.Multiplier != nil {
		s += string(*l.Multiplier)
	}
	return s
}

func (l *LargeObjectLength) Equal(other *LargeObjectLength) bool {
	if eq, more := compare.NilCheck(l, other); !more {
		return eq
	}
	return l.Length == other.Length && compare.Pointers(l.Multiplier, other.Multiplier)
}
