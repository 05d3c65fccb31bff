package ast

import (
	"fmt"
	"strings"
	"text/scanner"

	"github.com/shyptr/gqlcore/errors"
)

// syntaxError is panicked by the lexer/parser and recovered at the
// Parse boundary, matching the teacher's recursive-descent style where
// every parse function can abort without threading an error return
// through the whole call tree.
type syntaxError string

type lexer struct {
	scan *scanner.Scanner
	next rune
}

func newLexer(source string) *lexer {
	scan := &scanner.Scanner{
		Mode: scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats | scanner.ScanStrings,
	}
	scan.Init(strings.NewReader(source))
	return &lexer{scan: scan}
}

func (l *lexer) catchSyntaxError(fn func()) (gqlErr *errors.GraphQLError) {
	defer func() {
		if r := recover(); r != nil {
			if msg, ok := r.(syntaxError); ok {
				gqlErr = errors.At(errors.KindParse, l.location(), "syntax error: %s", string(msg))
				return
			}
			panic(r)
		}
	}()
	fn()
	return
}

func (l *lexer) peek() rune { return l.next }

func (l *lexer) location() Pos {
	return Pos{Line: l.scan.Line, Column: l.scan.Column}
}

// skipWhitespace advances past the next token's leading whitespace,
// commas (insignificant per the grammar), and comments.
func (l *lexer) skipWhitespace() {
	for {
		l.next = l.scan.Scan()
		if l.next == ',' {
			continue
		}
		if l.next == '#' {
			l.skipComment()
			continue
		}
		break
	}
}

func (l *lexer) skipComment() {
	for {
		next := l.scan.Next()
		if next == '\r' || next == '\n' || next == scanner.EOF {
			break
		}
	}
}

// advance requires the current token to be expected, then advances.
func (l *lexer) advance(expected rune) {
	if l.next != expected {
		l.syntaxErrorf("expected %s, found %q", scanner.TokenString(expected), l.tokenText())
	}
	l.skipWhitespace()
}

func (l *lexer) advanceKeyword(keyword string) {
	if l.next != tokName || l.scan.TokenText() != keyword {
		l.syntaxErrorf("expected %q, found %q", keyword, l.tokenText())
	}
	l.skipWhitespace()
}

func (l *lexer) tokenText() string {
	return strings.Trim(l.scan.TokenText(), `"`)
}

func (l *lexer) syntaxErrorf(format string, args ...interface{}) {
	panic(syntaxError(fmt.Sprintf(format, args...)))
}
