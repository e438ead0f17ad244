package parser

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/molang/ast"
	"github.com/akashmaji946/molang/diag"
	"github.com/akashmaji946/molang/span"
	"github.com/akashmaji946/molang/token"
)

// ternaryLeftBP/ternaryRightBP are the (left, right) power of both '?'
// forms (ternary and conditional). token.BindingPower lists the same
// values for '?', but the parser handles '?' in its own branch rather
// than the generic infix one, because the ternary/conditional split is a
// parser-level decision (both forms start with the same '?' token).
const (
	ternaryLeftBP  = 3
	ternaryRightBP = 4
)

// parseExpression runs the Pratt loop: parse a prefix (nud), then repeatedly
// fold in infix/postfix operators whose left binding power exceeds minBP.
func (p *Parser) parseExpression(minBP uint8) ast.Expression {
	left := p.parsePrefix()

	for {
		switch p.curr.Kind {
		case token.Arrow:
			p.bump()
			right := p.parseExpression(0)
			left = &ast.ArrowAccessExpression{
				SpanVal: span.New(left.Span().Start, right.Span().End),
				Left:    left,
				Right:   right,
			}
			// The arrow breaks out of the Pratt loop after one use: the
			// result never participates in further infix folding at this
			// level.
			return left

		case token.PlusPlus, token.MinusMinus:
			lbp, _, _ := p.curr.Kind.BindingPower()
			if !(lbp > minBP) {
				return left
			}
			v, ok := left.(*ast.VariableExpression)
			opKind := p.curr.Kind
			end := p.curr.End
			p.bump()
			if !ok {
				p.error(diag.IllegalUpdate(span.New(left.Span().Start, end)))
				continue
			}
			op := ast.Increment
			if opKind == token.MinusMinus {
				op = ast.Decrement
			}
			left = &ast.UpdateExpression{
				SpanVal:  span.New(left.Span().Start, end),
				Variable: v,
				Op:       op,
			}

		case token.Question:
			if !(ternaryLeftBP > minBP) {
				return left
			}
			p.bump()
			consequent := p.parseExpression(ternaryRightBP)
			if p.eat(token.Colon) {
				alternate := p.parseExpression(ternaryRightBP)
				left = &ast.TernaryExpression{
					SpanVal:    span.New(left.Span().Start, alternate.Span().End),
					Test:       left,
					Consequent: consequent,
					Alternate:  alternate,
				}
			} else {
				left = &ast.ConditionalExpression{
					SpanVal:    span.New(left.Span().Start, consequent.Span().End),
					Test:       left,
					Consequent: consequent,
				}
			}

		default:
			lbp, rbp, ok := p.curr.Kind.BindingPower()
			if !ok || !p.curr.Kind.IsBinaryOperator() || !(lbp > minBP) {
				return left
			}
			op := tokenToBinaryOp(p.curr.Kind)
			p.bump()
			right := p.parseExpression(rbp)
			left = &ast.BinaryExpression{
				SpanVal: span.New(left.Span().Start, right.Span().End),
				Left:    left,
				Op:      op,
				Right:   right,
			}
		}
	}
}

// parsePrefix parses a primary/prefix expression: literals, variables,
// calls, resources, array access, parenthesized/block expressions, unary
// operators, and `this`.
func (p *Parser) parsePrefix() ast.Expression {
	start := p.curr.Start
	tok := p.curr

	switch tok.Kind {
	case token.Number:
		p.bump()
		return p.parseNumericLiteral(tok)

	case token.KwTrue:
		p.bump()
		return &ast.BooleanLiteral{SpanVal: p.spanFrom(start), Value: true}

	case token.KwFalse:
		p.bump()
		return &ast.BooleanLiteral{SpanVal: p.spanFrom(start), Value: false}

	case token.String:
		p.bump()
		raw := p.text(tok)
		value := ""
		if len(raw) >= 2 {
			value = raw[1 : len(raw)-1]
		}
		return &ast.StringLiteral{SpanVal: p.spanFrom(start), Value: value}

	case token.UnterminatedString:
		p.bump()
		p.error(diag.UnterminatedString(tok.Span()))
		raw := p.text(tok)
		value := ""
		if len(raw) >= 1 {
			value = raw[1:]
		}
		return &ast.StringLiteral{SpanVal: p.spanFrom(start), Value: value}

	case token.KwThis:
		p.bump()
		return &ast.ThisExpression{SpanVal: p.spanFrom(start)}

	case token.KwTemporary, token.KwVariable, token.KwContext:
		lifetime := lifetimeKindToLifetime(tok.Kind)
		p.bump()
		return p.parseVariableExpressionRest(start, lifetime)

	case token.KwMath, token.KwQuery:
		return p.parseCallExpression(start, tok.Kind)

	case token.KwGeometry, token.KwMaterial, token.KwTexture:
		return p.parseResourceExpression(start, tok.Kind)

	case token.KwArray:
		return p.parseArrayAccessExpression(start)

	case token.LeftParen:
		return p.parseParenthesizedExpression()

	case token.LeftBrace:
		return p.parseBlockExpressionAsExpr()

	case token.Minus:
		p.bump()
		_, rbp, _ := token.Bang.BindingPower()
		argument := p.parseExpression(rbp)
		return &ast.UnaryExpression{SpanVal: p.spanFrom(start), Op: ast.Negate, Argument: argument}

	case token.Bang:
		p.bump()
		_, rbp, _ := token.Bang.BindingPower()
		argument := p.parseExpression(rbp)
		return &ast.UnaryExpression{SpanVal: p.spanFrom(start), Op: ast.Not, Argument: argument}

	case token.KwLoop:
		p.error(diag.LoopInExpression(tok.Span()))
		_ = p.parseLoopStatement()
		return &ast.NumericLiteral{SpanVal: p.spanFrom(start), Value: 0, Raw: "0"}

	default:
		p.error(diag.UnexpectedToken(tok.Span(), tok.Kind.String()))
		if !p.at(token.Eof) {
			p.bump()
		}
		return &ast.NumericLiteral{SpanVal: p.spanFrom(start), Value: 0, Raw: "0"}
	}
}

// parseNumericLiteral converts the Number token's source text to a
// float64, stripping an optional trailing 'f'/'F' suffix.
func (p *Parser) parseNumericLiteral(tok token.Token) *ast.NumericLiteral {
	raw := p.text(tok)
	trimmed := strings.TrimSuffix(strings.TrimSuffix(raw, "f"), "F")
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		p.error(diag.InvalidNumber(tok.Span()))
		value = 0
	}
	return &ast.NumericLiteral{SpanVal: tok.Span(), Value: value, Raw: raw}
}

// parseIdentLike consumes curr and returns its source text, accepting a
// plain Identifier or any keyword token -- Molang property/callee names
// may reuse a reserved word (e.g. `query.this` or `v.query`).
func (p *Parser) parseIdentLike() (string, bool) {
	switch p.curr.Kind {
	case token.Identifier,
		token.KwTrue, token.KwFalse, token.KwThis, token.KwBreak, token.KwContinue,
		token.KwReturn, token.KwLoop, token.KwForEach,
		token.KwTemporary, token.KwVariable, token.KwContext,
		token.KwMath, token.KwQuery, token.KwGeometry, token.KwMaterial,
		token.KwTexture, token.KwArray:
		text := p.text(p.curr)
		p.bump()
		return text, true
	}
	return "", false
}

// parseVariableExpressionRest parses the `.member(.member)*` chain that
// follows a lifetime keyword already consumed by the caller.
func (p *Parser) parseVariableExpressionRest(start uint32, lifetime ast.VariableLifetime) *ast.VariableExpression {
	p.expect(token.Dot)
	first, ok := p.parseIdentLike()
	if !ok {
		p.error(diag.ExpectedToken(p.curr.Span(), "identifier", p.curr.Kind.String()))
		first = ""
	}
	var member ast.VariableMember = ast.NewPropertyMember(first)
	for p.at(token.Dot) {
		p.bump()
		prop, ok := p.parseIdentLike()
		if !ok {
			break
		}
		member = ast.AppendMember(member, prop)
	}
	return ast.NewVariableExpression(p.spanFrom(start), lifetime, member)
}

// parseCallExpression parses `math.callee`/`query.callee`, with or without
// a parenthesized argument list.
func (p *Parser) parseCallExpression(start uint32, kind token.Kind) ast.Expression {
	p.bump() // 'math'/'query'
	p.expect(token.Dot)
	callee, ok := p.parseIdentLike()
	if !ok {
		p.error(diag.ExpectedToken(p.curr.Span(), "identifier", p.curr.Kind.String()))
	}
	callKind := ast.Math
	if kind == token.KwQuery {
		callKind = ast.Query
	}
	if !p.eat(token.LeftParen) {
		return &ast.CallExpression{
			SpanVal:   p.spanFrom(start),
			Kind:      callKind,
			Callee:    callee,
			HasParens: false,
		}
	}
	var args []ast.Expression
	if !p.at(token.RightParen) {
		for {
			args = append(args, p.parseExpression(0))
			if !p.eat(token.Comma) {
				break
			}
			if p.at(token.RightParen) {
				break
			}
		}
	}
	p.expect(token.RightParen)
	return &ast.CallExpression{
		SpanVal:   p.spanFrom(start),
		Kind:      callKind,
		Callee:    callee,
		HasParens: true,
		Arguments: args,
	}
}

// parseResourceExpression parses `geometry.name`/`material.name`/`texture.name`.
func (p *Parser) parseResourceExpression(start uint32, kind token.Kind) ast.Expression {
	p.bump() // 'geometry'/'material'/'texture'
	p.expect(token.Dot)
	name, ok := p.parseIdentLike()
	if !ok {
		p.error(diag.ExpectedToken(p.curr.Span(), "identifier", p.curr.Kind.String()))
	}
	var section ast.ResourceSection
	switch kind {
	case token.KwMaterial:
		section = ast.Material
	case token.KwTexture:
		section = ast.Texture
	default:
		section = ast.Geometry
	}
	return &ast.ResourceExpression{SpanVal: p.spanFrom(start), Section: section, Name: name}
}

// parseArrayAccessExpression parses `array.name[index]`.
func (p *Parser) parseArrayAccessExpression(start uint32) ast.Expression {
	p.bump() // 'array'
	p.expect(token.Dot)
	name, ok := p.parseIdentLike()
	if !ok {
		p.error(diag.ExpectedToken(p.curr.Span(), "identifier", p.curr.Kind.String()))
	}
	p.expect(token.LeftBracket)
	index := p.parseExpression(0)
	p.expect(token.RightBracket)
	return &ast.ArrayAccessExpression{SpanVal: p.spanFrom(start), Name: name, Index: index}
}

// parseParenthesizedExpression parses `(expr)` or `(stmt; stmt; ...)`,
// disambiguating Single from Multiple by whether the first parsed
// statement is followed by a ';'.
func (p *Parser) parseParenthesizedExpression() ast.Expression {
	start := p.curr.Start
	p.bump() // '('

	if p.eat(token.RightParen) {
		p.error(diag.EmptyParens(p.spanFrom(start)))
		return &ast.ParenthesizedExpression{
			SpanVal: p.spanFrom(start),
			Body: ast.ParenthesizedBody{
				Kind:   ast.ParenthesizedSingle,
				Single: &ast.NumericLiteral{SpanVal: p.spanFrom(start), Value: 0, Raw: "0"},
			},
		}
	}

	first := p.parseStatement()
	if p.eatSemi() {
		statements := []ast.Statement{first}
		for !p.at(token.RightParen) && !p.at(token.Eof) {
			before := p.curr.Start
			if p.eat(token.Semicolon) {
				statements = append(statements, &ast.EmptyStatement{SpanVal: p.spanFrom(before)})
				continue
			}
			st := p.parseStatement()
			statements = append(statements, st)
			if !p.at(token.RightParen) {
				if !p.eatSemi() {
					p.error(diag.MissingSemicolonInBlock(p.curr.Span()))
				}
			} else {
				p.eatSemi()
			}
			if p.curr.Start == before && !p.at(token.Eof) {
				p.bump()
			}
		}
		p.expect(token.RightParen)
		return &ast.ParenthesizedExpression{
			SpanVal: p.spanFrom(start),
			Body:    ast.ParenthesizedBody{Kind: ast.ParenthesizedMultiple, Statements: statements},
		}
	}

	if es, ok := first.(*ast.ExpressionStatement); ok {
		p.expect(token.RightParen)
		return &ast.ParenthesizedExpression{
			SpanVal: p.spanFrom(start),
			Body:    ast.ParenthesizedBody{Kind: ast.ParenthesizedSingle, Single: es.Expr},
		}
	}

	// The first statement wasn't a bare expression (e.g. an assignment,
	// loop, or return) and no ';' followed it -- recover as a
	// single-statement Multiple body.
	p.expect(token.RightParen)
	return &ast.ParenthesizedExpression{
		SpanVal: p.spanFrom(start),
		Body:    ast.ParenthesizedBody{Kind: ast.ParenthesizedMultiple, Statements: []ast.Statement{first}},
	}
}

// parseBlockExpressionAsExpr parses a `{ ... }` used directly in
// expression position.
func (p *Parser) parseBlockExpressionAsExpr() ast.Expression {
	start := p.curr.Start
	block := p.parseBlock()
	return &ast.BlockExpression{SpanVal: p.spanFrom(start), Statements: block.Statements}
}
