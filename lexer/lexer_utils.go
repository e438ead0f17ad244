package lexer

import "github.com/akashmaji946/molang/token"

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isIdentStart reports whether c can begin an identifier: a letter or
// underscore.
func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isIdentPart reports whether c can continue an identifier after its
// first character: a letter, digit, or underscore.
func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

// namespaceWords lists each namespace keyword in lowercase alongside its
// Kind. lookupNamespace matches the first letter case-insensitively and
// the remainder exactly, per the grammar's `[Mm]ath`, `[Qq]uery`, etc.
// rules — "Math" and "math" are both KwMath, but "MATH" is not.
var namespaceWords = []struct {
	word string
	kind token.Kind
}{
	{"math", token.KwMath},
	{"query", token.KwQuery},
	{"geometry", token.KwGeometry},
	{"material", token.KwMaterial},
	{"texture", token.KwTexture},
	{"array", token.KwArray},
}

// lookupNamespace classifies an identifier-shaped lexeme as a namespace
// keyword.
func lookupNamespace(ident string) (token.Kind, bool) {
	if len(ident) == 0 {
		return token.Invalid, false
	}
	for _, w := range namespaceWords {
		if len(ident) != len(w.word) {
			continue
		}
		if ident[1:] != w.word[1:] {
			continue
		}
		if ident[0] != w.word[0] && ident[0] != w.word[0]-('a'-'A') {
			continue
		}
		return w.kind, true
	}
	return token.Invalid, false
}
