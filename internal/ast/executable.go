package ast

import "github.com/gravelql/gravel/internal/lex"

// Document is the root node: any number of definitions.
type Document struct {
	Definitions []Definition
}

func (n *Document) Traverse(v Visitor) {
	v.VisitDocument(n)
	for _, d := range n.Definitions {
		traverseDefinition(v, d)
	}
	v.PostVisitDocument(n)
}

// OperationKind is the kind of an operation: query, mutation or subscription.
type OperationKind int

const (
	Query OperationKind = iota
	Mutation
	Subscription
)

func (k OperationKind) String() string {
	switch k {
	case Mutation:
		return "mutation"
	case Subscription:
		return "subscription"
	default:
		return "query"
	}
}

// OperationType is the leading keyword of an operation definition.
type OperationType struct {
	Kind  OperationKind
	Token lex.Token
}

func (n *OperationType) Traverse(v Visitor) {
	v.VisitOperationType(n)
	visitToken(v, n.Token)
	v.PostVisitOperationType(n)
}

type OperationDefinition struct {
	// OperationType is nil for the query shorthand form.
	OperationType       *OperationType
	Name                lex.Token // optional
	VariableDefinitions *VariableDefinitions
	Directives          *Directives
	SelectionSet        Recoverable[*SelectionSet]
}

func (n *OperationDefinition) isDefinition()           {}
func (n *OperationDefinition) isExecutableDefinition() {}

// Kind returns the operation kind, Query for the shorthand form.
func (n *OperationDefinition) Kind() OperationKind {
	if n.OperationType == nil {
		return Query
	}
	return n.OperationType.Kind
}

func (n *OperationDefinition) Traverse(v Visitor) {
	v.VisitOperationDefinition(n)
	if n.OperationType != nil {
		n.OperationType.Traverse(v)
	}
	visitToken(v, n.Name)
	if n.VariableDefinitions != nil {
		n.VariableDefinitions.Traverse(v)
	}
	if n.Directives != nil {
		n.Directives.Traverse(v)
	}
	traverseRecoverable(v, n.SelectionSet)
	v.PostVisitOperationDefinition(n)
}

type VariableDefinitions struct {
	Paren        lex.Token
	Definitions  []*VariableDefinition
	ClosingParen Recoverable[lex.Token]
}

func (n *VariableDefinitions) Traverse(v Visitor) {
	v.VisitVariableDefinitions(n)
	visitToken(v, n.Paren)
	for _, d := range n.Definitions {
		d.Traverse(v)
	}
	traverseRecoverableToken(v, n.ClosingParen)
	v.PostVisitVariableDefinitions(n)
}

type VariableDefinition struct {
	Variable     *Variable
	Colon        Recoverable[lex.Token]
	Type         Recoverable[Type]
	DefaultValue *DefaultValue
	Directives   *Directives
}

func (n *VariableDefinition) Traverse(v Visitor) {
	v.VisitVariableDefinition(n)
	n.Variable.Traverse(v)
	traverseRecoverableToken(v, n.Colon)
	traverseRecoverableType(v, n.Type)
	if n.DefaultValue != nil {
		n.DefaultValue.Traverse(v)
	}
	if n.Directives != nil {
		n.Directives.Traverse(v)
	}
	v.PostVisitVariableDefinition(n)
}

type DefaultValue struct {
	Eq    lex.Token
	Value Recoverable[Value]
}

func (n *DefaultValue) Traverse(v Visitor) {
	v.VisitDefaultValue(n)
	visitToken(v, n.Eq)
	traverseRecoverableValue(v, n.Value)
	v.PostVisitDefaultValue(n)
}

type SelectionSet struct {
	Brace        lex.Token
	Selections   []Selection
	ClosingBrace Recoverable[lex.Token]
}

func (n *SelectionSet) Traverse(v Visitor) {
	v.VisitSelectionSet(n)
	visitToken(v, n.Brace)
	for _, s := range n.Selections {
		traverseSelection(v, s)
	}
	traverseRecoverableToken(v, n.ClosingBrace)
	v.PostVisitSelectionSet(n)
}

type Field struct {
	Alias        *Alias
	Name         Recoverable[lex.Token]
	Arguments    *Arguments
	Directives   *Directives
	SelectionSet *SelectionSet
}

func (n *Field) isSelection() {}

func (n *Field) Traverse(v Visitor) {
	v.VisitField(n)
	if n.Alias != nil {
		n.Alias.Traverse(v)
	}
	traverseRecoverableToken(v, n.Name)
	if n.Arguments != nil {
		n.Arguments.Traverse(v)
	}
	if n.Directives != nil {
		n.Directives.Traverse(v)
	}
	if n.SelectionSet != nil {
		n.SelectionSet.Traverse(v)
	}
	v.PostVisitField(n)
}

type Alias struct {
	Name  lex.Token
	Colon lex.Token
}

func (n *Alias) Traverse(v Visitor) {
	v.VisitAlias(n)
	visitToken(v, n.Name)
	visitToken(v, n.Colon)
	v.PostVisitAlias(n)
}

type Arguments struct {
	Paren        lex.Token
	Items        []*Argument
	ClosingParen Recoverable[lex.Token]
}

func (n *Arguments) Traverse(v Visitor) {
	v.VisitArguments(n)
	visitToken(v, n.Paren)
	for _, a := range n.Items {
		a.Traverse(v)
	}
	traverseRecoverableToken(v, n.ClosingParen)
	v.PostVisitArguments(n)
}

type Argument struct {
	Name  lex.Token
	Colon Recoverable[lex.Token]
	Value Recoverable[Value]
}

func (n *Argument) Traverse(v Visitor) {
	v.VisitArgument(n)
	visitToken(v, n.Name)
	traverseRecoverableToken(v, n.Colon)
	traverseRecoverableValue(v, n.Value)
	v.PostVisitArgument(n)
}

type FragmentSpread struct {
	Dots         lex.Token
	FragmentName Recoverable[lex.Token]
	Directives   *Directives
}

func (n *FragmentSpread) isSelection() {}

func (n *FragmentSpread) Traverse(v Visitor) {
	v.VisitFragmentSpread(n)
	visitToken(v, n.Dots)
	traverseRecoverableToken(v, n.FragmentName)
	if n.Directives != nil {
		n.Directives.Traverse(v)
	}
	v.PostVisitFragmentSpread(n)
}

type InlineFragment struct {
	Dots          lex.Token
	TypeCondition *TypeCondition
	Directives    *Directives
	SelectionSet  Recoverable[*SelectionSet]
}

func (n *InlineFragment) isSelection() {}

func (n *InlineFragment) Traverse(v Visitor) {
	v.VisitInlineFragment(n)
	visitToken(v, n.Dots)
	if n.TypeCondition != nil {
		n.TypeCondition.Traverse(v)
	}
	if n.Directives != nil {
		n.Directives.Traverse(v)
	}
	traverseRecoverable(v, n.SelectionSet)
	v.PostVisitInlineFragment(n)
}

type FragmentDefinition struct {
	Fragment      lex.Token
	FragmentName  Recoverable[lex.Token]
	TypeCondition Recoverable[*TypeCondition]
	Directives    *Directives
	SelectionSet  Recoverable[*SelectionSet]
}

func (n *FragmentDefinition) isDefinition()           {}
func (n *FragmentDefinition) isExecutableDefinition() {}

func (n *FragmentDefinition) Traverse(v Visitor) {
	v.VisitFragmentDefinition(n)
	visitToken(v, n.Fragment)
	traverseRecoverableToken(v, n.FragmentName)
	traverseRecoverable(v, n.TypeCondition)
	if n.Directives != nil {
		n.Directives.Traverse(v)
	}
	traverseRecoverable(v, n.SelectionSet)
	v.PostVisitFragmentDefinition(n)
}

type TypeCondition struct {
	On        lex.Token
	NamedType Recoverable[*NamedType]
}

func (n *TypeCondition) Traverse(v Visitor) {
	v.VisitTypeCondition(n)
	visitToken(v, n.On)
	traverseRecoverable(v, n.NamedType)
	v.PostVisitTypeCondition(n)
}

type Directives struct {
	Items []*Directive
}

func (n *Directives) Traverse(v Visitor) {
	v.VisitDirectives(n)
	for _, d := range n.Items {
		d.Traverse(v)
	}
	v.PostVisitDirectives(n)
}

type Directive struct {
	At        lex.Token
	Name      Recoverable[lex.Token]
	Arguments *Arguments
}

func (n *Directive) Traverse(v Visitor) {
	v.VisitDirective(n)
	visitToken(v, n.At)
	traverseRecoverableToken(v, n.Name)
	if n.Arguments != nil {
		n.Arguments.Traverse(v)
	}
	v.PostVisitDirective(n)
}
