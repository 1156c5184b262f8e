package ast

import "github.com/gravelql/gravel/internal/lex"

type Variable struct {
	Dollar lex.Token
	Name   lex.Token
}

func (n *Variable) isValue() {}

func (n *Variable) Traverse(v Visitor) {
	v.VisitVariable(n)
	visitToken(v, n.Dollar)
	visitToken(v, n.Name)
	v.PostVisitVariable(n)
}

type IntValue struct {
	Token lex.Token
}

func (n *IntValue) isValue() {}

func (n *IntValue) Traverse(v Visitor) {
	v.VisitIntValue(n)
	visitToken(v, n.Token)
	v.PostVisitIntValue(n)
}

type FloatValue struct {
	Token lex.Token
}

func (n *FloatValue) isValue() {}

func (n *FloatValue) Traverse(v Visitor) {
	v.VisitFloatValue(n)
	visitToken(v, n.Token)
	v.PostVisitFloatValue(n)
}

type StringValue struct {
	Token lex.Token
}

func (n *StringValue) isValue() {}

func (n *StringValue) Traverse(v Visitor) {
	v.VisitStringValue(n)
	visitToken(v, n.Token)
	v.PostVisitStringValue(n)
}

type BooleanValue struct {
	Token lex.Token
}

func (n *BooleanValue) isValue() {}

// Bool returns the literal's value.
func (n *BooleanValue) Bool() bool {
	return n.Token.Text == "true"
}

func (n *BooleanValue) Traverse(v Visitor) {
	v.VisitBooleanValue(n)
	visitToken(v, n.Token)
	v.PostVisitBooleanValue(n)
}

type NullValue struct {
	Token lex.Token
}

func (n *NullValue) isValue() {}

func (n *NullValue) Traverse(v Visitor) {
	v.VisitNullValue(n)
	visitToken(v, n.Token)
	v.PostVisitNullValue(n)
}

type EnumValue struct {
	Token lex.Token
}

func (n *EnumValue) isValue() {}

func (n *EnumValue) Traverse(v Visitor) {
	v.VisitEnumValue(n)
	visitToken(v, n.Token)
	v.PostVisitEnumValue(n)
}

type ListValue struct {
	Bracket        lex.Token
	Values         []Value
	ClosingBracket Recoverable[lex.Token]
}

func (n *ListValue) isValue() {}

func (n *ListValue) Traverse(v Visitor) {
	v.VisitListValue(n)
	visitToken(v, n.Bracket)
	for _, val := range n.Values {
		traverseValue(v, val)
	}
	traverseRecoverableToken(v, n.ClosingBracket)
	v.PostVisitListValue(n)
}

type ObjectValue struct {
	Brace        lex.Token
	Fields       []*ObjectField
	ClosingBrace Recoverable[lex.Token]
}

func (n *ObjectValue) isValue() {}

func (n *ObjectValue) Traverse(v Visitor) {
	v.VisitObjectValue(n)
	visitToken(v, n.Brace)
	for _, f := range n.Fields {
		f.Traverse(v)
	}
	traverseRecoverableToken(v, n.ClosingBrace)
	v.PostVisitObjectValue(n)
}

type ObjectField struct {
	Name  lex.Token
	Colon Recoverable[lex.Token]
	Value Recoverable[Value]
}

func (n *ObjectField) Traverse(v Visitor) {
	v.VisitObjectField(n)
	visitToken(v, n.Name)
	traverseRecoverableToken(v, n.Colon)
	traverseRecoverableValue(v, n.Value)
	v.PostVisitObjectField(n)
}

type NamedType struct {
	Name lex.Token
}

func (n *NamedType) isType() {}

func (n *NamedType) NameToken() (lex.Token, bool) {
	return n.Name, true
}

func (n *NamedType) Traverse(v Visitor) {
	v.VisitNamedType(n)
	visitToken(v, n.Name)
	v.PostVisitNamedType(n)
}

type ListType struct {
	Bracket        lex.Token
	Type           Recoverable[Type]
	ClosingBracket Recoverable[lex.Token]
}

func (n *ListType) isType() {}

func (n *ListType) NameToken() (lex.Token, bool) {
	if t, ok := n.Type.Ok(); ok {
		return t.NameToken()
	}
	return lex.Token{}, false
}

func (n *ListType) Traverse(v Visitor) {
	v.VisitListType(n)
	visitToken(v, n.Bracket)
	traverseRecoverableType(v, n.Type)
	traverseRecoverableToken(v, n.ClosingBracket)
	v.PostVisitListType(n)
}

type NonNullType struct {
	Type Type
	Bang lex.Token
}

func (n *NonNullType) isType() {}

func (n *NonNullType) NameToken() (lex.Token, bool) {
	if n.Type == nil {
		return lex.Token{}, false
	}
	return n.Type.NameToken()
}

func (n *NonNullType) Traverse(v Visitor) {
	v.VisitNonNullType(n)
	traverseType(v, n.Type)
	visitToken(v, n.Bang)
	v.PostVisitNonNullType(n)
}

// ListItemType unwraps non-null wrappers and returns the element type of a
// list type reference, if t is one.
func ListItemType(t Type) (Type, bool) {
	switch t := t.(type) {
	case *NonNullType:
		return ListItemType(t.Type)
	case *ListType:
		if inner, ok := t.Type.Ok(); ok {
			return inner, true
		}
	}
	return nil, false
}
