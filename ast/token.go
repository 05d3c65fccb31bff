package ast

import "text/scanner"

// token runes mirror the lexical grammar's punctuators; names and
// literals reuse text/scanner's own token constants.
const (
	tokEOF      = scanner.EOF
	tokBang     = '!'
	tokDollar   = '$'
	tokParenL   = '('
	tokParenR   = ')'
	tokSpread   = '.'
	tokColon    = ':'
	tokEquals   = '='
	tokAt       = '@'
	tokBracketL = '['
	tokBracketR = ']'
	tokBraceL   = '{'
	tokBraceR   = '}'
	tokName     = scanner.Ident
	tokInt      = scanner.Int
	tokFloat    = scanner.Float
	tokString   = scanner.String
)
