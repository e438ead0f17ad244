// Package parser implements a Pratt (precedence-climbing) recursive-descent
// parser that turns a token stream from the lexer package into an AST
// Program. Parsing never aborts on a malformed construct: every error is
// recorded as a diag.Diagnostic and the parser resynchronizes and keeps
// going, so a caller always gets a structurally valid (if imperfect) tree
// back alongside whatever diagnostics were collected.
package parser

import (
	"github.com/akashmaji946/molang/ast"
	"github.com/akashmaji946/molang/diag"
	"github.com/akashmaji946/molang/lexer"
	"github.com/akashmaji946/molang/span"
	"github.com/akashmaji946/molang/token"
)

// Parser holds the single-token-lookahead cursor over a lexer along with
// the is_complex tracking that decides whether a Program ends up with a
// Simple or Complex body.
type Parser struct {
	lex    *lexer.Lexer
	source string

	curr token.Token

	// isComplex becomes true the first time the parser consumes a ';',
	// an assignment operator, or a '{' block, at any nesting depth
	// (inside parentheses too) -- mirroring the source grammar's "a
	// program is Complex iff it looks like a statement list" rule.
	isComplex bool

	errors []diag.Diagnostic
}

// newParser constructs a Parser positioned before the first token; the
// caller must call bump once to prime curr.
func newParser(source string) *Parser {
	return &Parser{lex: lexer.New(source), source: source}
}

// Parse lexes and parses source in one pass, always returning a structurally
// valid *ast.Program. Diagnostics collected along the way are returned
// alongside it; an empty slice means the parse was clean.
func Parse(source string) (*ast.Program, []diag.Diagnostic) {
	p := newParser(source)
	p.bump()
	body := p.parseTopLevel()
	prog := &ast.Program{
		SpanVal: span.New(0, uint32(len(source))),
		Source:  source,
		Body:    body,
	}
	return prog, p.errors
}

func (p *Parser) error(d diag.Diagnostic) {
	p.errors = append(p.errors, d)
}

// bump advances curr to the next token from the lexer.
func (p *Parser) bump() {
	p.curr = p.lex.Next()
}

// at reports whether curr is of kind k.
func (p *Parser) at(k token.Kind) bool {
	return p.curr.Kind == k
}

// eat consumes curr and returns true if it is of kind k, otherwise leaves
// curr untouched and returns false.
func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.bump()
		return true
	}
	return false
}

// eatSemi consumes a ';' and marks the program Complex, since any
// top-level or block-level semicolon triggers the Simple/Complex split.
func (p *Parser) eatSemi() bool {
	if p.at(token.Semicolon) {
		p.bump()
		p.isComplex = true
		return true
	}
	return false
}

// expect consumes curr if it is of kind k; otherwise it reports
// ExpectedToken and leaves curr untouched so the caller can attempt
// recovery.
func (p *Parser) expect(k token.Kind) bool {
	if p.eat(k) {
		return true
	}
	p.error(diag.ExpectedToken(p.curr.Span(), k.String(), p.curr.Kind.String()))
	return false
}

// spanFrom builds a Span running from start to the end of the token just
// consumed (curr.Start, since curr is always one token past whatever was
// last consumed).
func (p *Parser) spanFrom(start uint32) span.Span {
	return span.New(start, p.prevEnd())
}

// prevEnd approximates the end of the last consumed token as the start of
// curr, which is exact except across whitespace the lexer already
// skipped -- acceptable for diagnostic spans, which only need to bracket
// the construct, not byte-match it.
func (p *Parser) prevEnd() uint32 {
	return p.curr.Start
}

// text returns the source slice a token occupies.
func (p *Parser) text(tok token.Token) string {
	return tok.Span().Slice(p.source)
}

// parseTopLevel parses the whole token stream into a ProgramBody,
// classifying it as Empty, Simple, or Complex once parsing finishes.
func (p *Parser) parseTopLevel() ast.ProgramBody {
	var statements []ast.Statement
	for !p.at(token.Eof) {
		before := p.curr.Start
		stmt := p.parseStatement()
		statements = append(statements, stmt)
		if p.isComplex {
			if !p.eatSemi() {
				p.error(diag.MissingSemicolon(p.curr.Span()))
			}
		} else {
			p.eatSemi()
		}
		if p.curr.Start == before && !p.at(token.Eof) {
			// No progress was made; force an advance so a pathological
			// input can never hang the parser.
			p.bump()
		}
	}

	if len(statements) == 0 {
		return ast.NewEmptyBody()
	}
	if !p.isComplex && len(statements) == 1 {
		if es, ok := statements[0].(*ast.ExpressionStatement); ok {
			return ast.NewSimpleBody(es.Expr)
		}
	}
	return ast.NewComplexBody(statements)
}

// parseStatement parses one Statement. Loop, for_each, return, break, and
// continue are statement-only constructs; everything else parses as an
// expression and is then reclassified as an AssignmentStatement when a
// variable expression is immediately followed by an assignment operator.
func (p *Parser) parseStatement() ast.Statement {
	start := p.curr.Start
	switch p.curr.Kind {
	case token.Semicolon:
		p.bump()
		p.isComplex = true
		return &ast.EmptyStatement{SpanVal: p.spanFrom(start)}
	case token.KwLoop:
		return p.parseLoopStatement()
	case token.KwForEach:
		return p.parseForEachStatement()
	case token.KwReturn:
		return p.parseReturnStatement()
	case token.KwBreak:
		p.bump()
		return &ast.BreakStatement{SpanVal: p.spanFrom(start)}
	case token.KwContinue:
		p.bump()
		return &ast.ContinueStatement{SpanVal: p.spanFrom(start)}
	}

	expr := p.parseExpression(0)
	if v, ok := expr.(*ast.VariableExpression); ok && p.curr.Kind.IsAssignmentOperator() {
		op := tokenToAssignOp(p.curr.Kind)
		p.bump()
		p.isComplex = true
		right := p.parseExpression(0)
		return &ast.AssignmentStatement{
			SpanVal: p.spanFrom(start),
			Left:    v,
			Op:      op,
			Right:   right,
		}
	}
	return &ast.ExpressionStatement{SpanVal: expr.Span(), Expr: expr}
}

// parseBlock parses a `{ stmt; stmt; ... }` block, consuming both braces.
// Every statement inside a block must be followed by a ';', including the
// last one before '}' -- unlike the top level, there is no Simple-body
// exception here.
func (p *Parser) parseBlock() *ast.Block {
	start := p.curr.Start
	p.expect(token.LeftBrace)
	p.isComplex = true

	var statements []ast.Statement
	for !p.at(token.RightBrace) && !p.at(token.Eof) {
		before := p.curr.Start
		if p.eat(token.Semicolon) {
			statements = append(statements, &ast.EmptyStatement{SpanVal: p.spanFrom(before)})
			continue
		}
		stmt := p.parseStatement()
		statements = append(statements, stmt)
		if !p.eatSemi() {
			p.error(diag.MissingSemicolonInBlock(p.curr.Span()))
		}
		if p.curr.Start == before && !p.at(token.Eof) {
			p.bump()
		}
	}
	p.expect(token.RightBrace)
	return &ast.Block{SpanVal: p.spanFrom(start), Statements: statements}
}

// parseLoopStatement parses `loop ( count , { ... } )`.
func (p *Parser) parseLoopStatement() ast.Statement {
	start := p.curr.Start
	p.bump() // 'loop'
	p.expect(token.LeftParen)
	count := p.parseExpression(0)
	p.expect(token.Comma)
	block := p.parseBlock()
	p.expect(token.RightParen)
	return &ast.LoopStatement{SpanVal: p.spanFrom(start), Count: count, Block: block}
}

// parseForEachStatement parses `for_each ( variable. , array , { ... } )`.
// The first argument must parse as a variable. or temp. VariableExpression;
// anything else -- including context. -- is rejected with ForEachFirstArg.
func (p *Parser) parseForEachStatement() ast.Statement {
	start := p.curr.Start
	p.bump() // 'for_each'
	p.expect(token.LeftParen)

	var variable *ast.VariableExpression
	if p.curr.Kind.IsVariableLifetime() {
		lifetimeStart := p.curr.Start
		lifetime := lifetimeKindToLifetime(p.curr.Kind)
		p.bump()
		variable = p.parseVariableExpressionRest(lifetimeStart, lifetime)
		if lifetime == ast.Context {
			p.error(diag.ForEachFirstArg(variable.Span()))
		}
	} else {
		badStart := p.curr.Start
		_ = p.parseExpression(0)
		sp := p.spanFrom(badStart)
		p.error(diag.ForEachFirstArg(sp))
		variable = ast.NewVariableExpression(sp, ast.Variable, ast.NewPropertyMember("_"))
	}
	p.expect(token.Comma)
	array := p.parseExpression(0)
	p.expect(token.Comma)
	block := p.parseBlock()
	p.expect(token.RightParen)
	return &ast.ForEachStatement{
		SpanVal:  p.spanFrom(start),
		Variable: variable,
		Array:    array,
		Block:    block,
	}
}

// parseReturnStatement parses `return expr`.
func (p *Parser) parseReturnStatement() ast.Statement {
	start := p.curr.Start
	p.bump() // 'return'
	argument := p.parseExpression(0)
	return &ast.ReturnStatement{SpanVal: p.spanFrom(start), Argument: argument}
}
