package ast

import "github.com/akashmaji946/molang/span"

// VariableMember is the Object{object, property} | Property{property}
// union modeling a variable's member chain (v.a.b.c). It is built
// left-folded: the first identifier becomes a PropertyMember leaf, and
// each further '.' ident wraps the chain so far in an ObjectMember.
type VariableMember interface {
	isVariableMember()
	// LeafProperty returns the final (rightmost) property name in the
	// chain.
	LeafProperty() string
}

// PropertyMember is a single-segment member: v.foo.
type PropertyMember struct {
	Property string
}

func (*PropertyMember) isVariableMember() {}

// LeafProperty returns m.Property.
func (m *PropertyMember) LeafProperty() string { return m.Property }

// ObjectMember is a multi-segment member: the chain built so far (Object)
// followed by one more property (v.a.b -> Object{Object: v.a, Property: b}).
type ObjectMember struct {
	Object   VariableMember
	Property string
}

func (*ObjectMember) isVariableMember() {}

// LeafProperty returns m.Property (the rightmost segment).
func (m *ObjectMember) LeafProperty() string { return m.Property }

// NewPropertyMember constructs a single-segment VariableMember.
func NewPropertyMember(property string) VariableMember {
	return &PropertyMember{Property: property}
}

// AppendMember folds one more ".property" onto an existing member chain.
func AppendMember(chain VariableMember, property string) VariableMember {
	return &ObjectMember{Object: chain, Property: property}
}

// VariableExpression is a reference to a variable: its lifetime namespace
// plus a non-empty member chain.
type VariableExpression struct {
	SpanVal  span.Span
	Lifetime VariableLifetime
	Member   VariableMember
}

func (*VariableExpression) isExpression() {}

// Span returns the VariableExpression's source span.
func (v *VariableExpression) Span() span.Span { return v.SpanVal }

// IsStruct reports whether the member chain has more than one segment
// (an ObjectMember), as opposed to a bare v.foo PropertyMember. The
// transformer's compound-assignment lowering uses this to decide whether
// the left-hand side is safe to read directly or must be coalesced with
// "?? 0" to guard against an unset top-level variable.
func (v *VariableExpression) IsStruct() bool {
	_, ok := v.Member.(*ObjectMember)
	return ok
}

// NewVariableExpression constructs a VariableExpression.
func NewVariableExpression(sp span.Span, lifetime VariableLifetime, member VariableMember) *VariableExpression {
	return &VariableExpression{SpanVal: sp, Lifetime: lifetime, Member: member}
}
