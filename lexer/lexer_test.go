package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/molang/token"
)

// kindRun collects just the Kind of every token Next produces, up to and
// including Eof, to keep test tables terse.
func kindRun(src string) []token.Kind {
	l := New(src)
	var kinds []token.Kind
	for {
		tok := l.Next()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.Eof {
			return kinds
		}
	}
}

func TestLexer_Punctuation(t *testing.T) {
	kinds := kindRun("( ) { } [ ] ; , : . ? ?? = == ! != < > <= >= || && -> + - * / % **")
	assert.Equal(t, []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.LeftBracket, token.RightBracket, token.Semicolon, token.Comma,
		token.Colon, token.Dot, token.Question, token.QuestionQuestion,
		token.Eq, token.EqEq, token.Bang, token.BangEq, token.Lt, token.Gt,
		token.LtEq, token.GtEq, token.PipePipe, token.AmpAmp, token.Arrow,
		token.Plus, token.Minus, token.Star, token.Slash, token.Percent,
		token.StarStar, token.Eof,
	}, kinds)
}

func TestLexer_CompoundAssignment(t *testing.T) {
	kinds := kindRun("++ -- += -= *= /= **= %= ||= &&= | |= & &= ^ ^= << >> <<= >>=")
	assert.Equal(t, []token.Kind{
		token.PlusPlus, token.MinusMinus, token.PlusEq, token.MinusEq,
		token.StarEq, token.SlashEq, token.StarStarEq, token.PercentEq,
		token.PipePipeEq, token.AmpAmpEq, token.Pipe, token.PipeEq,
		token.Amp, token.AmpEq, token.Caret, token.CaretEq,
		token.Shl, token.Shr, token.ShlEq, token.ShrEq, token.Eof,
	}, kinds)
}

func TestLexer_EmptyStringLiteral(t *testing.T) {
	l := New("''")
	tok := l.Next()
	assert.Equal(t, token.String, tok.Kind)
	assert.Equal(t, "''", tok.Span().Slice("''"))
}

func TestLexer_UnterminatedString(t *testing.T) {
	l := New("'abc")
	tok := l.Next()
	assert.Equal(t, token.UnterminatedString, tok.Kind)
	assert.Equal(t, token.Eof, l.Next().Kind)
}

func TestLexer_Numbers(t *testing.T) {
	for _, src := range []string{"1.5f", "1e5", ".456", "1.23E+10", "0", "42"} {
		l := New(src)
		tok := l.Next()
		assert.Equal(t, token.Number, tok.Kind, "source %q", src)
		assert.Equal(t, token.Eof, l.Next().Kind, "source %q", src)
	}
}

func TestLexer_NumberDotDoesNotConsumeMemberAccess(t *testing.T) {
	// "1.foo" is not a valid Molang member access on a literal, but the
	// lexer must still stop the number at the digit run and let the '.'
	// and identifier lex separately rather than over-consuming.
	kinds := kindRun("1.x")
	assert.Equal(t, []token.Kind{token.Number, token.Dot, token.Identifier, token.Eof}, kinds)
}

func TestLexer_LifetimeWords(t *testing.T) {
	kinds := kindRun("temp t variable v context c")
	assert.Equal(t, []token.Kind{
		token.KwTemporary, token.KwTemporary,
		token.KwVariable, token.KwVariable,
		token.KwContext, token.KwContext,
		token.Eof,
	}, kinds)
}

func TestLexer_Namespaces(t *testing.T) {
	kinds := kindRun("math Math query Query q geometry Geometry material Material texture Texture array Array")
	assert.Equal(t, []token.Kind{
		token.KwMath, token.KwMath,
		token.KwQuery, token.KwQuery, token.KwQuery,
		token.KwGeometry, token.KwGeometry,
		token.KwMaterial, token.KwMaterial,
		token.KwTexture, token.KwTexture,
		token.KwArray, token.KwArray,
		token.Eof,
	}, kinds)
}

func TestLexer_NamespaceAllCapsIsPlainIdentifier(t *testing.T) {
	kinds := kindRun("MATH QUERY")
	assert.Equal(t, []token.Kind{token.Identifier, token.Identifier, token.Eof}, kinds)
}

func TestLexer_Keywords(t *testing.T) {
	kinds := kindRun("true false this break continue return loop for_each")
	assert.Equal(t, []token.Kind{
		token.KwTrue, token.KwFalse, token.KwThis, token.KwBreak,
		token.KwContinue, token.KwReturn, token.KwLoop, token.KwForEach,
		token.Eof,
	}, kinds)
}

func TestLexer_WhitespaceIsSkipped(t *testing.T) {
	kinds := kindRun("  \t\n true  \r\n false \t")
	assert.Equal(t, []token.Kind{token.KwTrue, token.KwFalse, token.Eof}, kinds)
}

func TestLexer_LongVariableMemberChain(t *testing.T) {
	kinds := kindRun("v.v.temp.t.context.c.query.q.math.a.b.c")
	assert.Equal(t, []token.Kind{
		token.KwVariable, token.Dot, token.KwVariable, token.Dot,
		token.KwTemporary, token.Dot, token.KwTemporary, token.Dot,
		token.KwContext, token.Dot, token.KwContext, token.Dot,
		token.KwQuery, token.Dot, token.KwQuery, token.Dot,
		token.KwMath, token.Dot, token.Identifier, token.Dot,
		token.Identifier, token.Dot, token.KwContext, token.Eof,
	}, kinds)
}

func TestLexer_SpansAreByteOffsets(t *testing.T) {
	l := New("  v.x")
	tok := l.Next()
	assert.Equal(t, token.KwVariable, tok.Kind)
	assert.Equal(t, uint32(2), tok.Start)
	assert.Equal(t, uint32(3), tok.End)
}
