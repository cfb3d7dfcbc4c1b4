package parser

// SpecialCharacter is one of the special characters of the SQL character
// set. Statement grammars match punctuation at the token level; this
// enumeration names the characters for callers that build or inspect SQL
// text directly.
type SpecialCharacter rune

const (
	CharSpace               SpecialCharacter = ' '
	CharDoubleQuote         SpecialCharacter = '"'
	CharPercent             SpecialCharacter = '%'
	CharAmpersand           SpecialCharacter = '&'
	CharQuote               SpecialCharacter = '\''
	CharLeftParen           SpecialCharacter = '('
	CharRightParen          SpecialCharacter = ')'
	CharAsterisk            SpecialCharacter = '*'
	CharPlusSign            SpecialCharacter = '+'
	CharComma               SpecialCharacter = ','
	CharMinusSign           SpecialCharacter = '-'
	CharPeriod              SpecialCharacter = '.'
	CharSolidus             SpecialCharacter = '/'
	CharColon               SpecialCharacter = ':'
	CharSemicolon           SpecialCharacter = ';'
	CharLessThanOperator    SpecialCharacter = '<'
	CharEqualsOperator      SpecialCharacter = '='
	CharGreaterThanOperator SpecialCharacter = '>'
	CharQuestionMark        SpecialCharacter = '?'
	CharLeftBracket         SpecialCharacter = '['
	CharRightBracket        SpecialCharacter = ']'
	CharCircumflex          SpecialCharacter = '^'
	CharUnderscore          SpecialCharacter = '_'
	CharVerticalBar         SpecialCharacter = '|'
	CharLeftBrace           SpecialCharacter = '{'
	CharRightBrace          SpecialCharacter = '}'
	CharDollarSign          SpecialCharacter = '$'
)

// String returns the character itself.
func (c SpecialCharacter) String() string {
	return string(rune(c))
}
