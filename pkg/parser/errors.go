package parser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

type (
	// Kind classifies a parse failure. The set is open: later grammar rules
	// may introduce new kinds without breaking callers that switch on it.
	Kind int

	// Error is a position-tagged parse failure. All entry points in this
	// package report syntax problems as *Error values; panics are reserved
	// for internal invariant violations.
	Error struct {
		Kind    Kind
		Pos     lexer.Position
		Message string
	}
)

const (
	// KindLexical means a token failed to match at the current position.
	KindLexical Kind = iota

	// KindStructural means a rule matched its prefix but a required
	// sub-rule failed (e.g. CREATE SCHEMA seen, no valid name clause).
	KindStructural

	// KindEmptyList means a list rule requiring at least one element
	// received zero.
	KindEmptyList

	// KindUnrecognized means no statement alternative matched at all.
	KindUnrecognized
)

// String returns a short human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindLexical:
		return "lexical mismatch"
	case KindStructural:
		return "structural mismatch"
	case KindEmptyList:
		return "empty list violation"
	case KindUnrecognized:
		return "unrecognized statement"
	default:
		return "unknown"
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Message)
}

// classify converts a participle/lexer error into an *Error. stmtStart is
// the offset of the first token of the statement being parsed: an
// unexpected token exactly there means no alternative consumed any input,
// which surfaces as an unrecognized statement rather than a structural
// failure inside one.
func classify(err error, stmtStart int) error {
	if err == nil {
		return nil
	}

	var perr *Error
	if errors.As(err, &perr) {
		return perr
	}

	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return &Error{Kind: KindLexical, Pos: lexErr.Pos, Message: lexErr.Msg}
	}

	var unexpected *participle.UnexpectedTokenError
	if errors.As(err, &unexpected) {
		kind := KindStructural
		if unexpected.Unexpected.Pos.Offset <= stmtStart {
			kind = KindUnrecognized
		}

		msg := fmt.Sprintf("unexpected token %q", unexpected.Unexpected.Value)
		if expect := strings.TrimSpace(unexpected.Expect); expect != "" {
			msg += fmt.Sprintf(" (expected %s)", expect)
		}

		return &Error{Kind: kind, Pos: unexpected.Unexpected.Pos, Message: msg}
	}

	var parseErr participle.Error
	if errors.As(err, &parseErr) {
		return &Error{Kind: KindStructural, Pos: parseErr.Position(), Message: parseErr.Message()}
	}

	return errors.Wrap(err, "failed to parse SQL")
}
