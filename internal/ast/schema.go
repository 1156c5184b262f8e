package ast

import "github.com/gravelql/gravel/internal/lex"

// Description is the optional string literal preceding a definition.
type Description struct {
	Token lex.Token
}

// Content returns the decoded description text.
func (n *Description) Content() string {
	return n.Token.StringContent()
}

func (n *Description) Traverse(v Visitor) {
	v.VisitDescription(n)
	visitToken(v, n.Token)
	v.PostVisitDescription(n)
}

type SchemaDefinition struct {
	Description              *Description
	Schema                   lex.Token
	Directives               *Directives
	RootOperationDefinitions Recoverable[*RootOperationTypeDefinitions]
}

func (n *SchemaDefinition) isDefinition()           {}
func (n *SchemaDefinition) isTypeSystemDefinition() {}

func (n *SchemaDefinition) Traverse(v Visitor) {
	v.VisitSchemaDefinition(n)
	if n.Description != nil {
		n.Description.Traverse(v)
	}
	visitToken(v, n.Schema)
	if n.Directives != nil {
		n.Directives.Traverse(v)
	}
	traverseRecoverable(v, n.RootOperationDefinitions)
	v.PostVisitSchemaDefinition(n)
}

type RootOperationTypeDefinitions struct {
	Brace        lex.Token
	Definitions  []*RootOperationTypeDefinition
	ClosingBrace Recoverable[lex.Token]
}

func (n *RootOperationTypeDefinitions) Traverse(v Visitor) {
	v.VisitRootOperationTypeDefinitions(n)
	visitToken(v, n.Brace)
	for _, d := range n.Definitions {
		d.Traverse(v)
	}
	traverseRecoverableToken(v, n.ClosingBrace)
	v.PostVisitRootOperationTypeDefinitions(n)
}

type RootOperationTypeDefinition struct {
	OperationType *OperationType
	Colon         Recoverable[lex.Token]
	NamedType     Recoverable[*NamedType]
}

func (n *RootOperationTypeDefinition) Traverse(v Visitor) {
	v.VisitRootOperationTypeDefinition(n)
	n.OperationType.Traverse(v)
	traverseRecoverableToken(v, n.Colon)
	traverseRecoverable(v, n.NamedType)
	v.PostVisitRootOperationTypeDefinition(n)
}

type SchemaExtension struct {
	Extend                   lex.Token
	Schema                   lex.Token
	Directives               *Directives
	RootOperationDefinitions *RootOperationTypeDefinitions
}

func (n *SchemaExtension) isDefinition()          {}
func (n *SchemaExtension) isTypeSystemExtension() {}

func (n *SchemaExtension) Traverse(v Visitor) {
	v.VisitSchemaExtension(n)
	visitToken(v, n.Extend)
	visitToken(v, n.Schema)
	if n.Directives != nil {
		n.Directives.Traverse(v)
	}
	if n.RootOperationDefinitions != nil {
		n.RootOperationDefinitions.Traverse(v)
	}
	v.PostVisitSchemaExtension(n)
}

type ScalarTypeDefinition struct {
	Description *Description
	Scalar      lex.Token
	Name        Recoverable[lex.Token]
	Directives  *Directives
}

func (n *ScalarTypeDefinition) isDefinition()           {}
func (n *ScalarTypeDefinition) isTypeSystemDefinition() {}
func (n *ScalarTypeDefinition) isTypeDefinition()       {}

func (n *ScalarTypeDefinition) NameToken() (lex.Token, bool) {
	return n.Name.Ok()
}

func (n *ScalarTypeDefinition) Traverse(v Visitor) {
	v.VisitScalarTypeDefinition(n)
	if n.Description != nil {
		n.Description.Traverse(v)
	}
	visitToken(v, n.Scalar)
	traverseRecoverableToken(v, n.Name)
	if n.Directives != nil {
		n.Directives.Traverse(v)
	}
	v.PostVisitScalarTypeDefinition(n)
}

type ScalarTypeExtension struct {
	Extend     lex.Token
	Scalar     lex.Token
	Name       Recoverable[lex.Token]
	Directives Recoverable[*Directives]
}

func (n *ScalarTypeExtension) isDefinition()          {}
func (n *ScalarTypeExtension) isTypeSystemExtension() {}
func (n *ScalarTypeExtension) isTypeExtension()       {}

func (n *ScalarTypeExtension) NameToken() (lex.Token, bool) {
	return n.Name.Ok()
}

func (n *ScalarTypeExtension) Traverse(v Visitor) {
	v.VisitScalarTypeExtension(n)
	visitToken(v, n.Extend)
	visitToken(v, n.Scalar)
	traverseRecoverableToken(v, n.Name)
	traverseRecoverable(v, n.Directives)
	v.PostVisitScalarTypeExtension(n)
}

type ObjectTypeDefinition struct {
	Description *Description
	Type        lex.Token
	Name        Recoverable[lex.Token]
	Implements  *ImplementsInterfaces
	Directives  *Directives
	Fields      *FieldsDefinition
}

func (n *ObjectTypeDefinition) isDefinition()           {}
func (n *ObjectTypeDefinition) isTypeSystemDefinition() {}
func (n *ObjectTypeDefinition) isTypeDefinition()       {}

func (n *ObjectTypeDefinition) NameToken() (lex.Token, bool) {
	return n.Name.Ok()
}

func (n *ObjectTypeDefinition) Traverse(v Visitor) {
	v.VisitObjectTypeDefinition(n)
	if n.Description != nil {
		n.Description.Traverse(v)
	}
	visitToken(v, n.Type)
	traverseRecoverableToken(v, n.Name)
	if n.Implements != nil {
		n.Implements.Traverse(v)
	}
	if n.Directives != nil {
		n.Directives.Traverse(v)
	}
	if n.Fields != nil {
		n.Fields.Traverse(v)
	}
	v.PostVisitObjectTypeDefinition(n)
}

type ObjectTypeExtension struct {
	Extend     lex.Token
	Type       lex.Token
	Name       Recoverable[lex.Token]
	Implements *ImplementsInterfaces
	Directives *Directives
	Fields     *FieldsDefinition
}

func (n *ObjectTypeExtension) isDefinition()          {}
func (n *ObjectTypeExtension) isTypeSystemExtension() {}
func (n *ObjectTypeExtension) isTypeExtension()       {}

func (n *ObjectTypeExtension) NameToken() (lex.Token, bool) {
	return n.Name.Ok()
}

func (n *ObjectTypeExtension) Traverse(v Visitor) {
	v.VisitObjectTypeExtension(n)
	visitToken(v, n.Extend)
	visitToken(v, n.Type)
	traverseRecoverableToken(v, n.Name)
	if n.Implements != nil {
		n.Implements.Traverse(v)
	}
	if n.Directives != nil {
		n.Directives.Traverse(v)
	}
	if n.Fields != nil {
		n.Fields.Traverse(v)
	}
	v.PostVisitObjectTypeExtension(n)
}

// NamedTypeListItem is one separator-prefixed entry of an implements clause
// or union member list.
type NamedTypeListItem struct {
	Sep  lex.Token
	Type Recoverable[*NamedType]
}

type ImplementsInterfaces struct {
	Implements lex.Token
	Ampersand  lex.Token // optional leading `&`
	First      Recoverable[*NamedType]
	Rest       []NamedTypeListItem
}

// Names returns the present interface names in declaration order.
func (n *ImplementsInterfaces) Names() []lex.Token {
	var names []lex.Token
	if t, ok := n.First.Ok(); ok {
		names = append(names, t.Name)
	}
	for _, item := range n.Rest {
		if t, ok := item.Type.Ok(); ok {
			names = append(names, t.Name)
		}
	}
	return names
}

func (n *ImplementsInterfaces) Traverse(v Visitor) {
	v.VisitImplementsInterfaces(n)
	visitToken(v, n.Implements)
	visitToken(v, n.Ampersand)
	traverseRecoverable(v, n.First)
	for _, item := range n.Rest {
		visitToken(v, item.Sep)
		traverseRecoverable(v, item.Type)
	}
	v.PostVisitImplementsInterfaces(n)
}

type FieldsDefinition struct {
	Brace        lex.Token
	Definitions  []*FieldDefinition
	ClosingBrace Recoverable[lex.Token]
}

func (n *FieldsDefinition) Traverse(v Visitor) {
	v.VisitFieldsDefinition(n)
	visitToken(v, n.Brace)
	for _, d := range n.Definitions {
		d.Traverse(v)
	}
	traverseRecoverableToken(v, n.ClosingBrace)
	v.PostVisitFieldsDefinition(n)
}

type FieldDefinition struct {
	Description *Description
	Name        lex.Token
	Arguments   *ArgumentsDefinition
	Colon       Recoverable[lex.Token]
	Type        Recoverable[Type]
	Directives  *Directives
}

func (n *FieldDefinition) Traverse(v Visitor) {
	v.VisitFieldDefinition(n)
	if n.Description != nil {
		n.Description.Traverse(v)
	}
	visitToken(v, n.Name)
	if n.Arguments != nil {
		n.Arguments.Traverse(v)
	}
	traverseRecoverableToken(v, n.Colon)
	traverseRecoverableType(v, n.Type)
	if n.Directives != nil {
		n.Directives.Traverse(v)
	}
	v.PostVisitFieldDefinition(n)
}

type ArgumentsDefinition struct {
	Paren        lex.Token
	Definitions  []*InputValueDefinition
	ClosingParen Recoverable[lex.Token]
}

func (n *ArgumentsDefinition) Traverse(v Visitor) {
	v.VisitArgumentsDefinition(n)
	visitToken(v, n.Paren)
	for _, d := range n.Definitions {
		d.Traverse(v)
	}
	traverseRecoverableToken(v, n.ClosingParen)
	v.PostVisitArgumentsDefinition(n)
}

type InputValueDefinition struct {
	Description  *Description
	Name         lex.Token
	Colon        Recoverable[lex.Token]
	Type         Recoverable[Type]
	DefaultValue *DefaultValue
	Directives   *Directives
}

func (n *InputValueDefinition) Traverse(v Visitor) {
	v.VisitInputValueDefinition(n)
	if n.Description != nil {
		n.Description.Traverse(v)
	}
	visitToken(v, n.Name)
	traverseRecoverableToken(v, n.Colon)
	traverseRecoverableType(v, n.Type)
	if n.DefaultValue != nil {
		n.DefaultValue.Traverse(v)
	}
	if n.Directives != nil {
		n.Directives.Traverse(v)
	}
	v.PostVisitInputValueDefinition(n)
}

type InterfaceTypeDefinition struct {
	Description *Description
	Interface   lex.Token
	Name        Recoverable[lex.Token]
	Implements  *ImplementsInterfaces
	Directives  *Directives
	Fields      *FieldsDefinition
}

func (n *InterfaceTypeDefinition) isDefinition()           {}
func (n *InterfaceTypeDefinition) isTypeSystemDefinition() {}
func (n *InterfaceTypeDefinition) isTypeDefinition()       {}

func (n *InterfaceTypeDefinition) NameToken() (lex.Token, bool) {
	return n.Name.Ok()
}

func (n *InterfaceTypeDefinition) Traverse(v Visitor) {
	v.VisitInterfaceTypeDefinition(n)
	if n.Description != nil {
		n.Description.Traverse(v)
	}
	visitToken(v, n.Interface)
	traverseRecoverableToken(v, n.Name)
	if n.Implements != nil {
		n.Implements.Traverse(v)
	}
	if n.Directives != nil {
		n.Directives.Traverse(v)
	}
	if n.Fields != nil {
		n.Fields.Traverse(v)
	}
	v.PostVisitInterfaceTypeDefinition(n)
}

type InterfaceTypeExtension struct {
	Extend     lex.Token
	Interface  lex.Token
	Name       Recoverable[lex.Token]
	Implements *ImplementsInterfaces
	Directives *Directives
	Fields     *FieldsDefinition
}

func (n *InterfaceTypeExtension) isDefinition()          {}
func (n *InterfaceTypeExtension) isTypeSystemExtension() {}
func (n *InterfaceTypeExtension) isTypeExtension()       {}

func (n *InterfaceTypeExtension) NameToken() (lex.Token, bool) {
	return n.Name.Ok()
}

func (n *InterfaceTypeExtension) Traverse(v Visitor) {
	v.VisitInterfaceTypeExtension(n)
	visitToken(v, n.Extend)
	visitToken(v, n.Interface)
	traverseRecoverableToken(v, n.Name)
	if n.Implements != nil {
		n.Implements.Traverse(v)
	}
	if n.Directives != nil {
		n.Directives.Traverse(v)
	}
	if n.Fields != nil {
		n.Fields.Traverse(v)
	}
	v.PostVisitInterfaceTypeExtension(n)
}

type UnionTypeDefinition struct {
	Description *Description
	Union       lex.Token
	Name        Recoverable[lex.Token]
	Directives  *Directives
	MemberTypes *UnionMemberTypes
}

func (n *UnionTypeDefinition) isDefinition()           {}
func (n *UnionTypeDefinition) isTypeSystemDefinition() {}
func (n *UnionTypeDefinition) isTypeDefinition()       {}

func (n *UnionTypeDefinition) NameToken() (lex.Token, bool) {
	return n.Name.Ok()
}

func (n *UnionTypeDefinition) Traverse(v Visitor) {
	v.VisitUnionTypeDefinition(n)
	if n.Description != nil {
		n.Description.Traverse(v)
	}
	visitToken(v, n.Union)
	traverseRecoverableToken(v, n.Name)
	if n.Directives != nil {
		n.Directives.Traverse(v)
	}
	if n.MemberTypes != nil {
		n.MemberTypes.Traverse(v)
	}
	v.PostVisitUnionTypeDefinition(n)
}

type UnionMemberTypes struct {
	Eq    lex.Token
	Pipe  lex.Token // optional leading `|`
	First Recoverable[*NamedType]
	Rest  []NamedTypeListItem
}

// Names returns the present member type names in declaration order.
func (n *UnionMemberTypes) Names() []lex.Token {
	var names []lex.Token
	if t, ok := n.First.Ok(); ok {
		names = append(names, t.Name)
	}
	for _, item := range n.Rest {
		if t, ok := item.Type.Ok(); ok {
			names = append(names, t.Name)
		}
	}
	return names
}

func (n *UnionMemberTypes) Traverse(v Visitor) {
	v.VisitUnionMemberTypes(n)
	visitToken(v, n.Eq)
	visitToken(v, n.Pipe)
	traverseRecoverable(v, n.First)
	for _, item := range n.Rest {
		visitToken(v, item.Sep)
		traverseRecoverable(v, item.Type)
	}
	v.PostVisitUnionMemberTypes(n)
}

type UnionTypeExtension struct {
	Extend      lex.Token
	Union       lex.Token
	Name        Recoverable[lex.Token]
	Directives  *Directives
	MemberTypes *UnionMemberTypes
}

func (n *UnionTypeExtension) isDefinition()          {}
func (n *UnionTypeExtension) isTypeSystemExtension() {}
func (n *UnionTypeExtension) isTypeExtension()       {}

func (n *UnionTypeExtension) NameToken() (lex.Token, bool) {
	return n.Name.Ok()
}

func (n *UnionTypeExtension) Traverse(v Visitor) {
	v.VisitUnionTypeExtension(n)
	visitToken(v, n.Extend)
	visitToken(v, n.Union)
	traverseRecoverableToken(v, n.Name)
	if n.Directives != nil {
		n.Directives.Traverse(v)
	}
	if n.MemberTypes != nil {
		n.MemberTypes.Traverse(v)
	}
	v.PostVisitUnionTypeExtension(n)
}

type EnumTypeDefinition struct {
	Description *Description
	Enum        lex.Token
	Name        Recoverable[lex.Token]
	Directives  *Directives
	Values      *EnumValuesDefinition
}

func (n *EnumTypeDefinition) isDefinition()           {}
func (n *EnumTypeDefinition) isTypeSystemDefinition() {}
func (n *EnumTypeDefinition) isTypeDefinition()       {}

func (n *EnumTypeDefinition) NameToken() (lex.Token, bool) {
	return n.Name.Ok()
}

func (n *EnumTypeDefinition) Traverse(v Visitor) {
	v.VisitEnumTypeDefinition(n)
	if n.Description != nil {
		n.Description.Traverse(v)
	}
	visitToken(v, n.Enum)
	traverseRecoverableToken(v, n.Name)
	if n.Directives != nil {
		n.Directives.Traverse(v)
	}
	if n.Values != nil {
		n.Values.Traverse(v)
	}
	v.PostVisitEnumTypeDefinition(n)
}

type EnumValuesDefinition struct {
	Brace        lex.Token
	Definitions  []*EnumValueDefinition
	ClosingBrace Recoverable[lex.Token]
}

func (n *EnumValuesDefinition) Traverse(v Visitor) {
	v.VisitEnumValuesDefinition(n)
	visitToken(v, n.Brace)
	for _, d := range n.Definitions {
		d.Traverse(v)
	}
	traverseRecoverableToken(v, n.ClosingBrace)
	v.PostVisitEnumValuesDefinition(n)
}

type EnumValueDefinition struct {
	Description *Description
	Value       *EnumValue
	Directives  *Directives
}

func (n *EnumValueDefinition) Traverse(v Visitor) {
	v.VisitEnumValueDefinition(n)
	if n.Description != nil {
		n.Description.Traverse(v)
	}
	n.Value.Traverse(v)
	if n.Directives != nil {
		n.Directives.Traverse(v)
	}
	v.PostVisitEnumValueDefinition(n)
}

type EnumTypeExtension struct {
	Extend     lex.Token
	Enum       lex.Token
	Name       Recoverable[lex.Token]
	Directives *Directives
	Values     *EnumValuesDefinition
}

func (n *EnumTypeExtension) isDefinition()          {}
func (n *EnumTypeExtension) isTypeSystemExtension() {}
func (n *EnumTypeExtension) isTypeExtension()       {}

func (n *EnumTypeExtension) NameToken() (lex.Token, bool) {
	return n.Name.Ok()
}

func (n *EnumTypeExtension) Traverse(v Visitor) {
	v.VisitEnumTypeExtension(n)
	visitToken(v, n.Extend)
	visitToken(v, n.Enum)
	traverseRecoverableToken(v, n.Name)
	if n.Directives != nil {
		n.Directives.Traverse(v)
	}
	if n.Values != nil {
		n.Values.Traverse(v)
	}
	v.PostVisitEnumTypeExtension(n)
}

type InputObjectTypeDefinition struct {
	Description *Description
	Input       lex.Token
	Name        Recoverable[lex.Token]
	Directives  *Directives
	Fields      *InputFieldsDefinition
}

func (n *InputObjectTypeDefinition) isDefinition()           {}
func (n *InputObjectTypeDefinition) isTypeSystemDefinition() {}
func (n *InputObjectTypeDefinition) isTypeDefinition()       {}

func (n *InputObjectTypeDefinition) NameToken() (lex.Token, bool) {
	return n.Name.Ok()
}

func (n *InputObjectTypeDefinition) Traverse(v Visitor) {
	v.VisitInputObjectTypeDefinition(n)
	if n.Description != nil {
		n.Description.Traverse(v)
	}
	visitToken(v, n.Input)
	traverseRecoverableToken(v, n.Name)
	if n.Directives != nil {
		n.Directives.Traverse(v)
	}
	if n.Fields != nil {
		n.Fields.Traverse(v)
	}
	v.PostVisitInputObjectTypeDefinition(n)
}

type InputFieldsDefinition struct {
	Brace        lex.Token
	Definitions  []*InputValueDefinition
	ClosingBrace Recoverable[lex.Token]
}

func (n *InputFieldsDefinition) Traverse(v Visitor) {
	v.VisitInputFieldsDefinition(n)
	visitToken(v, n.Brace)
	for _, d := range n.Definitions {
		d.Traverse(v)
	}
	traverseRecoverableToken(v, n.ClosingBrace)
	v.PostVisitInputFieldsDefinition(n)
}

type InputObjectTypeExtension struct {
	Extend     lex.Token
	Input      lex.Token
	Name       Recoverable[lex.Token]
	Directives *Directives
	Fields     *InputFieldsDefinition
}

func (n *InputObjectTypeExtension) isDefinition()          {}
func (n *InputObjectTypeExtension) isTypeSystemExtension() {}
func (n *InputObjectTypeExtension) isTypeExtension()       {}

func (n *InputObjectTypeExtension) NameToken() (lex.Token, bool) {
	return n.Name.Ok()
}

func (n *InputObjectTypeExtension) Traverse(v Visitor) {
	v.VisitInputObjectTypeExtension(n)
	visitToken(v, n.Extend)
	visitToken(v, n.Input)
	traverseRecoverableToken(v, n.Name)
	if n.Directives != nil {
		n.Directives.Traverse(v)
	}
	if n.Fields != nil {
		n.Fields.Traverse(v)
	}
	v.PostVisitInputObjectTypeExtension(n)
}

type DirectiveDefinition struct {
	Description *Description
	Directive   lex.Token
	At          Recoverable[lex.Token]
	Name        Recoverable[lex.Token]
	Arguments   *ArgumentsDefinition
	Repeatable  lex.Token // optional
	Locations   Recoverable[*DirectiveLocations]
}

func (n *DirectiveDefinition) isDefinition()           {}
func (n *DirectiveDefinition) isTypeSystemDefinition() {}

func (n *DirectiveDefinition) Traverse(v Visitor) {
	v.VisitDirectiveDefinition(n)
	if n.Description != nil {
		n.Description.Traverse(v)
	}
	visitToken(v, n.Directive)
	traverseRecoverableToken(v, n.At)
	traverseRecoverableToken(v, n.Name)
	if n.Arguments != nil {
		n.Arguments.Traverse(v)
	}
	visitToken(v, n.Repeatable)
	traverseRecoverable(v, n.Locations)
	v.PostVisitDirectiveDefinition(n)
}

// DirectiveLocationListItem is one `|`-prefixed entry of a location list.
type DirectiveLocationListItem struct {
	Pipe     lex.Token
	Location Recoverable[*DirectiveLocation]
}

type DirectiveLocations struct {
	On    lex.Token
	Pipe  lex.Token // optional leading `|`
	First Recoverable[*DirectiveLocation]
	Rest  []DirectiveLocationListItem
}

func (n *DirectiveLocations) Traverse(v Visitor) {
	v.VisitDirectiveLocations(n)
	visitToken(v, n.On)
	visitToken(v, n.Pipe)
	traverseRecoverable(v, n.First)
	for _, item := range n.Rest {
		visitToken(v, item.Pipe)
		traverseRecoverable(v, item.Location)
	}
	v.PostVisitDirectiveLocations(n)
}

// DirectiveLocation is one location name such as FIELD or OBJECT.
type DirectiveLocation struct {
	Name lex.Token
}

func (n *DirectiveLocation) Traverse(v Visitor) {
	v.VisitDirectiveLocation(n)
	visitToken(v, n.Name)
	v.PostVisitDirectiveLocation(n)
}
