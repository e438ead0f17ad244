package codegen

import (
	"github.com/akashmaji946/molang/ast"
)

// Generate renders program to text per options. It is infallible over
// any well-formed AST (codegen never fails; a malformed tree -- e.g. a
// nil VariableMember -- is a programmer error upstream, not a
// condition this function detects).
func Generate(program *ast.Program, options Options) string {
	c := New(options)
	c.isComplex = program.Body.IsComplex()
	c.printProgram(program)
	return c.buf.String()
}

// Build is shorthand for Generate(program, Options{Minify: minify}).
func Build(program *ast.Program, minify bool) string {
	return Generate(program, Options{Minify: minify})
}

func (c *Codegen) printProgram(p *ast.Program) {
	switch p.Body.Kind {
	case ast.BodySimple:
		c.printExpression(p.Body.Expr)
	case ast.BodyComplex:
		for _, stmt := range p.Body.Statements {
			c.printStatement(stmt)
		}
	case ast.BodyEmpty:
	}
}

func (c *Codegen) printStatement(s ast.Statement) {
	c.printIndent()
	switch st := s.(type) {
	case *ast.ExpressionStatement:
		c.printExpression(st.Expr)
	case *ast.AssignmentStatement:
		c.printAssignmentStatement(st)
	case *ast.LoopStatement:
		c.printLoopStatement(st)
	case *ast.ForEachStatement:
		c.printForEachStatement(st)
	case *ast.ReturnStatement:
		c.printStr("return ")
		c.printExpression(st.Argument)
	case *ast.BreakStatement:
		c.printStr("break")
	case *ast.ContinueStatement:
		c.printStr("continue")
	case *ast.EmptyStatement:
		// nothing: an empty statement contributes no text and no
		// trailing separator.
		return
	}
	if c.isComplex {
		c.printSemi()
		c.printNewline()
	}
}

func (c *Codegen) printAssignmentStatement(s *ast.AssignmentStatement) {
	c.printVariableExpression(s.Left)
	c.printSpace()
	c.printStr(s.Op.String())
	c.printSpace()
	c.printExpression(s.Right)
}

func (c *Codegen) printLoopStatement(s *ast.LoopStatement) {
	c.printStr("loop")
	c.printWrapped('(', ')', func() {
		c.printExpression(s.Count)
		c.printComma()
		c.printSpace()
		c.printBlock(s.Block)
	})
}

func (c *Codegen) printForEachStatement(s *ast.ForEachStatement) {
	c.printStr("for_each")
	c.printScope('(', ')', func() {
		c.printVariableExpression(s.Variable)
		c.printComma()
		c.printSpace()
		c.printExpression(s.Array)
		c.printComma()
		c.printSpace()
		c.printBlock(s.Block)
	})
}

func (c *Codegen) printBlock(b *ast.Block) {
	c.printScope('{', '}', func() {
		for _, stmt := range b.Statements {
			c.printStatement(stmt)
		}
	})
}

func (c *Codegen) printExpression(e ast.Expression) {
	switch ex := e.(type) {
	case *ast.NumericLiteral:
		c.printStr(ex.Raw)
	case *ast.BooleanLiteral:
		c.printStr(ex.String())
	case *ast.StringLiteral:
		c.printWrapped('\'', '\'', func() { c.printStr(ex.Value) })
	case *ast.VariableExpression:
		c.printVariableExpression(ex)
	case *ast.ParenthesizedExpression:
		c.printParenthesizedExpression(ex)
	case *ast.BlockExpression:
		c.printBlockExpression(ex)
	case *ast.BinaryExpression:
		c.printExpression(ex.Left)
		c.printSpace()
		c.printStr(ex.Op.String())
		c.printSpace()
		c.printExpression(ex.Right)
	case *ast.UnaryExpression:
		c.printStr(ex.Op.String())
		c.printExpression(ex.Argument)
	case *ast.UpdateExpression:
		c.printVariableExpression(ex.Variable)
		c.printStr(ex.Op.String())
	case *ast.TernaryExpression:
		c.printExpression(ex.Test)
		c.printSpace()
		c.printByte('?')
		c.printSpace()
		c.printExpression(ex.Consequent)
		c.printSpace()
		c.printColon()
		c.printSpace()
		c.printExpression(ex.Alternate)
	case *ast.ConditionalExpression:
		c.printExpression(ex.Test)
		c.printSpace()
		c.printByte('?')
		c.printSpace()
		c.printExpression(ex.Consequent)
	case *ast.ResourceExpression:
		c.printStr(ex.Section.String())
		c.printDot()
		c.printStr(ex.Name)
	case *ast.ArrayAccessExpression:
		c.printStr("array")
		c.printDot()
		c.printStr(ex.Name)
		c.printByte('[')
		c.printExpression(ex.Index)
		c.printByte(']')
	case *ast.ArrowAccessExpression:
		c.printExpression(ex.Left)
		c.printStr("->")
		c.printExpression(ex.Right)
	case *ast.CallExpression:
		c.printCallExpression(ex)
	case *ast.ThisExpression:
		c.printStr("this")
	}
}

func (c *Codegen) printVariableExpression(v *ast.VariableExpression) {
	if c.options.Minify {
		c.printStr(v.Lifetime.ShortForm())
	} else {
		c.printStr(v.Lifetime.LongForm())
	}
	c.printDot()
	c.printVariableMember(v.Member)
}

func (c *Codegen) printVariableMember(m ast.VariableMember) {
	switch mem := m.(type) {
	case *ast.ObjectMember:
		c.printVariableMember(mem.Object)
		c.printDot()
		c.printStr(mem.Property)
	case *ast.PropertyMember:
		c.printStr(mem.Property)
	}
}

func (c *Codegen) printParenthesizedExpression(p *ast.ParenthesizedExpression) {
	switch p.Body.Kind {
	case ast.ParenthesizedSingle:
		c.printWrapped('(', ')', func() { c.printExpression(p.Body.Single) })
	case ast.ParenthesizedMultiple:
		c.printScope('(', ')', func() {
			for _, stmt := range p.Body.Statements {
				c.printStatement(stmt)
			}
		})
	}
}

func (c *Codegen) printBlockExpression(b *ast.BlockExpression) {
	c.printScope('{', '}', func() {
		for _, stmt := range b.Statements {
			c.printStatement(stmt)
		}
	})
}

func (c *Codegen) printCallExpression(call *ast.CallExpression) {
	if c.options.Minify {
		c.printStr(call.Kind.ShortForm())
	} else {
		c.printStr(call.Kind.LongForm())
	}
	c.printDot()
	c.printStr(call.Callee)
	if call.HasParens {
		c.printWrapped('(', ')', func() { c.printArgumentList(call.Arguments) })
	}
}

func (c *Codegen) printArgumentList(args []ast.Expression) {
	for i, arg := range args {
		if i != 0 {
			c.printComma()
			c.printSpace()
		}
		c.printExpression(arg)
	}
}
