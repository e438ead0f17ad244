/*
Package lexer tokenizes Molang source text into a lazy stream of tokens
with byte spans.
*/
package lexer

import "github.com/akashmaji946/molang/token"

// Lexer scans Molang source text byte by byte, producing one Token per
// call to Next. It holds no allocated token buffer; callers that need
// lookahead keep their own one-token buffer (the parser does exactly
// this).
type Lexer struct {
	src       string
	current   byte
	position  uint32
	srcLength uint32
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return &Lexer{
		src:       src,
		current:   current,
		position:  0,
		srcLength: uint32(len(src)),
	}
}

// advance consumes the current byte and moves to the next.
func (l *Lexer) advance() {
	l.position++
	if l.position >= l.srcLength {
		l.current = 0
		l.position = l.srcLength
		return
	}
	l.current = l.src[l.position]
}

// peek returns the byte after current without consuming anything, or 0
// at end of source.
func (l *Lexer) peek() byte {
	next := l.position + 1
	if next >= l.srcLength {
		return 0
	}
	return l.src[next]
}

// atEnd reports whether the cursor has consumed the whole source.
func (l *Lexer) atEnd() bool {
	return l.position >= l.srcLength
}

// skipWhitespace consumes runs of space, tab, newline, and carriage
// return, the only whitespace the grammar recognizes.
func (l *Lexer) skipWhitespace() {
	for !l.atEnd() {
		switch l.current {
		case ' ', '\t', '\n', '\r':
			l.advance()
		default:
			return
		}
	}
}

// Next scans and returns the next token, including exactly one Eof once
// the source is exhausted. Callers must stop calling Next after Eof is
// observed once (further calls keep returning Eof harmlessly).
func (l *Lexer) Next() token.Token {
	l.skipWhitespace()

	start := l.position
	if l.atEnd() {
		return token.Token{Kind: token.Eof, Start: start, End: start}
	}

	c := l.current

	switch {
	case isIdentStart(c):
		return l.readIdentifier(start)
	case isDigit(c) || (c == '.' && isDigit(l.peek())):
		return l.readNumber(start)
	case c == '\'':
		return l.readString(start)
	}

	switch c {
	case '(':
		l.advance()
		return l.tok(token.LeftParen, start)
	case ')':
		l.advance()
		return l.tok(token.RightParen, start)
	case '{':
		l.advance()
		return l.tok(token.LeftBrace, start)
	case '}':
		l.advance()
		return l.tok(token.RightBrace, start)
	case '[':
		l.advance()
		return l.tok(token.LeftBracket, start)
	case ']':
		l.advance()
		return l.tok(token.RightBracket, start)
	case '.':
		l.advance()
		return l.tok(token.Dot, start)
	case ',':
		l.advance()
		return l.tok(token.Comma, start)
	case ':':
		l.advance()
		return l.tok(token.Colon, start)
	case ';':
		l.advance()
		return l.tok(token.Semicolon, start)
	case '=':
		l.advance()
		if l.current == '=' {
			l.advance()
			return l.tok(token.EqEq, start)
		}
		return l.tok(token.Eq, start)
	case '!':
		l.advance()
		if l.current == '=' {
			l.advance()
			return l.tok(token.BangEq, start)
		}
		return l.tok(token.Bang, start)
	case '<':
		l.advance()
		if l.current == '=' {
			l.advance()
			return l.tok(token.LtEq, start)
		}
		if l.current == '<' {
			l.advance()
			if l.current == '=' {
				l.advance()
				return l.tok(token.ShlEq, start)
			}
			return l.tok(token.Shl, start)
		}
		return l.tok(token.Lt, start)
	case '>':
		l.advance()
		if l.current == '=' {
			l.advance()
			return l.tok(token.GtEq, start)
		}
		if l.current == '>' {
			l.advance()
			if l.current == '=' {
				l.advance()
				return l.tok(token.ShrEq, start)
			}
			return l.tok(token.Shr, start)
		}
		return l.tok(token.Gt, start)
	case '-':
		l.advance()
		if l.current == '-' {
			l.advance()
			return l.tok(token.MinusMinus, start)
		}
		if l.current == '>' {
			l.advance()
			return l.tok(token.Arrow, start)
		}
		if l.current == '=' {
			l.advance()
			return l.tok(token.MinusEq, start)
		}
		return l.tok(token.Minus, start)
	case '+':
		l.advance()
		if l.current == '+' {
			l.advance()
			return l.tok(token.PlusPlus, start)
		}
		if l.current == '=' {
			l.advance()
			return l.tok(token.PlusEq, start)
		}
		return l.tok(token.Plus, start)
	case '*':
		l.advance()
		if l.current == '*' {
			l.advance()
			if l.current == '=' {
				l.advance()
				return l.tok(token.StarStarEq, start)
			}
			return l.tok(token.StarStar, start)
		}
		if l.current == '=' {
			l.advance()
			return l.tok(token.StarEq, start)
		}
		return l.tok(token.Star, start)
	case '/':
		l.advance()
		if l.current == '=' {
			l.advance()
			return l.tok(token.SlashEq, start)
		}
		return l.tok(token.Slash, start)
	case '%':
		l.advance()
		if l.current == '=' {
			l.advance()
			return l.tok(token.PercentEq, start)
		}
		return l.tok(token.Percent, start)
	case '?':
		l.advance()
		if l.current == '?' {
			l.advance()
			return l.tok(token.QuestionQuestion, start)
		}
		return l.tok(token.Question, start)
	case '|':
		l.advance()
		if l.current == '|' {
			l.advance()
			if l.current == '=' {
				l.advance()
				return l.tok(token.PipePipeEq, start)
			}
			return l.tok(token.PipePipe, start)
		}
		if l.current == '=' {
			l.advance()
			return l.tok(token.PipeEq, start)
		}
		return l.tok(token.Pipe, start)
	case '&':
		l.advance()
		if l.current == '&' {
			l.advance()
			if l.current == '=' {
				l.advance()
				return l.tok(token.AmpAmpEq, start)
			}
			return l.tok(token.AmpAmp, start)
		}
		if l.current == '=' {
			l.advance()
			return l.tok(token.AmpEq, start)
		}
		return l.tok(token.Amp, start)
	case '^':
		l.advance()
		if l.current == '=' {
			l.advance()
			return l.tok(token.CaretEq, start)
		}
		return l.tok(token.Caret, start)
	}

	// Unrecognized byte: consume it so the lexer always makes progress,
	// and surface it as Invalid; the parser turns this into an
	// UnexpectedToken diagnostic.
	l.advance()
	return l.tok(token.Invalid, start)
}

func (l *Lexer) tok(kind token.Kind, start uint32) token.Token {
	return token.Token{Kind: kind, Start: start, End: l.position}
}

// readIdentifier scans [A-Za-z_][A-Za-z0-9_]* and classifies the result
// as a keyword, a lifetime alias, a namespace, or a plain Identifier.
func (l *Lexer) readIdentifier(start uint32) token.Token {
	for !l.atEnd() && isIdentPart(l.current) {
		l.advance()
	}
	text := l.src[start:l.position]

	if kind, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kind, Start: start, End: l.position}
	}
	if kind, ok := lookupNamespace(text); ok {
		return token.Token{Kind: kind, Start: start, End: l.position}
	}
	return token.Token{Kind: token.Identifier, Start: start, End: l.position}
}

// readNumber scans [0-9]*\.?[0-9]+([eE][+-]?[0-9]+)?f? per the grammar.
func (l *Lexer) readNumber(start uint32) token.Token {
	for !l.atEnd() && isDigit(l.current) {
		l.advance()
	}
	if l.current == '.' && isDigit(l.peek()) {
		l.advance()
		for !l.atEnd() && isDigit(l.current) {
			l.advance()
		}
	}
	if l.current == 'e' || l.current == 'E' {
		mark := l.position
		markCurrent := l.current
		l.advance()
		if l.current == '+' || l.current == '-' {
			l.advance()
		}
		if isDigit(l.current) {
			for !l.atEnd() && isDigit(l.current) {
				l.advance()
			}
		} else {
			// Not actually an exponent; rewind.
			l.position = mark
			l.current = markCurrent
		}
	}
	if l.current == 'f' {
		l.advance()
	}
	return l.tok(token.Number, start)
}

// readString scans '[^']*' and substitutes UnterminatedString when the
// closing quote never appears before EOF.
func (l *Lexer) readString(start uint32) token.Token {
	l.advance() // consume opening '
	for !l.atEnd() && l.current != '\'' {
		l.advance()
	}
	if l.atEnd() {
		return l.tok(token.UnterminatedString, start)
	}
	l.advance() // consume closing '
	return l.tok(token.String, start)
}
