package parser

import "strings"

type (
	// QuoteStyle identifies how an identifier was written in the source text.
	QuoteStyle int

	// Ident is a SQL identifier together with its quoting style. Unquoted
	// identifiers must start with a letter; quoted identifiers are any run
	// of identifier characters between double quotes. The style is part of
	// the identifier's identity and is preserved on rendering.
	Ident struct {
		Value string
		Quote QuoteStyle
	}
)

const (
	// QuoteNone marks an identifier written without quotes.
	QuoteNone QuoteStyle = iota

	// QuoteDouble marks an identifier written between double quotes.
	QuoteDouble
)

// Capture implements participle's Capture interface, stripping the
// surrounding double quotes from quoted identifier tokens.
func (i *Ident) Capture(values []string) error {
	v := values[0]
	if strings.HasPrefix(v, `"`) {
		i.Value = strings.Trim(v, `"`)
		i.Quote = QuoteDouble
		return nil
	}

	i.Value = v
	i.Quote = QuoteNone
	return nil
}

// String renders the identifier in its original quoting style.
func (i Ident) String() string {
	if i.Quote == QuoteDouble {
		return `"` + i.Value + `"`
	}
	return i.Value
}

// Equal reports whether both identifiers have the same value and quote style.
func (i *Ident) Equal(other *Ident) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.Value == other.Value && i.Quote == other.Quote
}
