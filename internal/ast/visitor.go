package ast

import "github.com/gravelql/gravel/internal/lex"

// Visitor receives every node of a traversal. Visit hooks fire before a
// node's children, PostVisit hooks after. The union hooks (VisitDefinition,
// VisitValue, ...) fire before the concrete hook of the same node. VisitSpan
// and VisitToken fire for every token; VisitMissing fires for every
// unfilled Recoverable slot. Embed BaseVisitor for no-op defaults.
type Visitor interface {
	VisitDocument(n *Document)
	PostVisitDocument(n *Document)
	VisitOperationType(n *OperationType)
	PostVisitOperationType(n *OperationType)
	VisitOperationDefinition(n *OperationDefinition)
	PostVisitOperationDefinition(n *OperationDefinition)
	VisitVariableDefinitions(n *VariableDefinitions)
	PostVisitVariableDefinitions(n *VariableDefinitions)
	VisitVariableDefinition(n *VariableDefinition)
	PostVisitVariableDefinition(n *VariableDefinition)
	VisitDefaultValue(n *DefaultValue)
	PostVisitDefaultValue(n *DefaultValue)
	VisitSelectionSet(n *SelectionSet)
	PostVisitSelectionSet(n *SelectionSet)
	VisitField(n *Field)
	PostVisitField(n *Field)
	VisitAlias(n *Alias)
	PostVisitAlias(n *Alias)
	VisitArguments(n *Arguments)
	PostVisitArguments(n *Arguments)
	VisitArgument(n *Argument)
	PostVisitArgument(n *Argument)
	VisitFragmentSpread(n *FragmentSpread)
	PostVisitFragmentSpread(n *FragmentSpread)
	VisitInlineFragment(n *InlineFragment)
	PostVisitInlineFragment(n *InlineFragment)
	VisitFragmentDefinition(n *FragmentDefinition)
	PostVisitFragmentDefinition(n *FragmentDefinition)
	VisitTypeCondition(n *TypeCondition)
	PostVisitTypeCondition(n *TypeCondition)
	VisitDirectives(n *Directives)
	PostVisitDirectives(n *Directives)
	VisitDirective(n *Directive)
	PostVisitDirective(n *Directive)
	VisitVariable(n *Variable)
	PostVisitVariable(n *Variable)
	VisitIntValue(n *IntValue)
	PostVisitIntValue(n *IntValue)
	VisitFloatValue(n *FloatValue)
	PostVisitFloatValue(n *FloatValue)
	VisitStringValue(n *StringValue)
	PostVisitStringValue(n *StringValue)
	VisitBooleanValue(n *BooleanValue)
	PostVisitBooleanValue(n *BooleanValue)
	VisitNullValue(n *NullValue)
	PostVisitNullValue(n *NullValue)
	VisitEnumValue(n *EnumValue)
	PostVisitEnumValue(n *EnumValue)
	VisitListValue(n *ListValue)
	PostVisitListValue(n *ListValue)
	VisitObjectValue(n *ObjectValue)
	PostVisitObjectValue(n *ObjectValue)
	VisitObjectField(n *ObjectField)
	PostVisitObjectField(n *ObjectField)
	VisitNamedType(n *NamedType)
	PostVisitNamedType(n *NamedType)
	VisitListType(n *ListType)
	PostVisitListType(n *ListType)
	VisitNonNullType(n *NonNullType)
	PostVisitNonNullType(n *NonNullType)
	VisitDescription(n *Description)
	PostVisitDescription(n *Description)
	VisitSchemaDefinition(n *SchemaDefinition)
	PostVisitSchemaDefinition(n *SchemaDefinition)
	VisitRootOperationTypeDefinitions(n *RootOperationTypeDefinitions)
	PostVisitRootOperationTypeDefinitions(n *RootOperationTypeDefinitions)
	VisitRootOperationTypeDefinition(n *RootOperationTypeDefinition)
	PostVisitRootOperationTypeDefinition(n *RootOperationTypeDefinition)
	VisitSchemaExtension(n *SchemaExtension)
	PostVisitSchemaExtension(n *SchemaExtension)
	VisitScalarTypeDefinition(n *ScalarTypeDefinition)
	PostVisitScalarTypeDefinition(n *ScalarTypeDefinition)
	VisitScalarTypeExtension(n *ScalarTypeExtension)
	PostVisitScalarTypeExtension(n *ScalarTypeExtension)
	VisitObjectTypeDefinition(n *ObjectTypeDefinition)
	PostVisitObjectTypeDefinition(n *ObjectTypeDefinition)
	VisitObjectTypeExtension(n *ObjectTypeExtension)
	PostVisitObjectTypeExtension(n *ObjectTypeExtension)
	VisitImplementsInterfaces(n *ImplementsInterfaces)
	PostVisitImplementsInterfaces(n *ImplementsInterfaces)
	VisitFieldsDefinition(n *FieldsDefinition)
	PostVisitFieldsDefinition(n *FieldsDefinition)
	VisitFieldDefinition(n *FieldDefinition)
	PostVisitFieldDefinition(n *FieldDefinition)
	VisitArgumentsDefinition(n *ArgumentsDefinition)
	PostVisitArgumentsDefinition(n *ArgumentsDefinition)
	VisitInputValueDefinition(n *InputValueDefinition)
	PostVisitInputValueDefinition(n *InputValueDefinition)
	VisitInterfaceTypeDefinition(n *InterfaceTypeDefinition)
	PostVisitInterfaceTypeDefinition(n *InterfaceTypeDefinition)
	VisitInterfaceTypeExtension(n *InterfaceTypeExtension)
	PostVisitInterfaceTypeExtension(n *InterfaceTypeExtension)
	VisitUnionTypeDefinition(n *UnionTypeDefinition)
	PostVisitUnionTypeDefinition(n *UnionTypeDefinition)
	VisitUnionMemberTypes(n *UnionMemberTypes)
	PostVisitUnionMemberTypes(n *UnionMemberTypes)
	VisitUnionTypeExtension(n *UnionTypeExtension)
	PostVisitUnionTypeExtension(n *UnionTypeExtension)
	VisitEnumTypeDefinition(n *EnumTypeDefinition)
	PostVisitEnumTypeDefinition(n *EnumTypeDefinition)
	VisitEnumValuesDefinition(n *EnumValuesDefinition)
	PostVisitEnumValuesDefinition(n *EnumValuesDefinition)
	VisitEnumValueDefinition(n *EnumValueDefinition)
	PostVisitEnumValueDefinition(n *EnumValueDefinition)
	VisitEnumTypeExtension(n *EnumTypeExtension)
	PostVisitEnumTypeExtension(n *EnumTypeExtension)
	VisitInputObjectTypeDefinition(n *InputObjectTypeDefinition)
	PostVisitInputObjectTypeDefinition(n *InputObjectTypeDefinition)
	VisitInputFieldsDefinition(n *InputFieldsDefinition)
	PostVisitInputFieldsDefinition(n *InputFieldsDefinition)
	VisitInputObjectTypeExtension(n *InputObjectTypeExtension)
	PostVisitInputObjectTypeExtension(n *InputObjectTypeExtension)
	VisitDirectiveDefinition(n *DirectiveDefinition)
	PostVisitDirectiveDefinition(n *DirectiveDefinition)
	VisitDirectiveLocations(n *DirectiveLocations)
	PostVisitDirectiveLocations(n *DirectiveLocations)
	VisitDirectiveLocation(n *DirectiveLocation)
	PostVisitDirectiveLocation(n *DirectiveLocation)

	VisitDefinition(n Definition)
	VisitSelection(n Selection)
	VisitValue(n Value)
	VisitType(n Type)
	VisitTypeDefinition(n TypeDefinition)
	VisitTypeExtension(n TypeExtension)

	VisitToken(t lex.Token)
	VisitSpan(span lex.Span)
	VisitMissing(m *MissingToken)
}

// BaseVisitor implements Visitor with no-ops so visitors override only the
// hooks they need.
type BaseVisitor struct{}

func (BaseVisitor) VisitDocument(*Document) {}
func (BaseVisitor) PostVisitDocument(*Document) {}
func (BaseVisitor) VisitOperationType(*OperationType) {}
func (BaseVisitor) PostVisitOperationType(*OperationType) {}
func (BaseVisitor) VisitOperationDefinition(*OperationDefinition) {}
func (BaseVisitor) PostVisitOperationDefinition(*OperationDefinition) {}
func (BaseVisitor) VisitVariableDefinitions(*VariableDefinitions) {}
func (BaseVisitor) PostVisitVariableDefinitions(*VariableDefinitions) {}
func (BaseVisitor) VisitVariableDefinition(*VariableDefinition) {}
func (BaseVisitor) PostVisitVariableDefinition(*VariableDefinition) {}
func (BaseVisitor) VisitDefaultValue(*DefaultValue) {}
func (BaseVisitor) PostVisitDefaultValue(*DefaultValue) {}
func (BaseVisitor) VisitSelectionSet(*SelectionSet) {}
func (BaseVisitor) PostVisitSelectionSet(*SelectionSet) {}
func (BaseVisitor) VisitField(*Field) {}
func (BaseVisitor) PostVisitField(*Field) {}
func (BaseVisitor) VisitAlias(*Alias) {}
func (BaseVisitor) PostVisitAlias(*Alias) {}
func (BaseVisitor) VisitArguments(*Arguments) {}
func (BaseVisitor) PostVisitArguments(*Arguments) {}
func (BaseVisitor) VisitArgument(*Argument) {}
func (BaseVisitor) PostVisitArgument(*Argument) {}
func (BaseVisitor) VisitFragmentSpread(*FragmentSpread) {}
func (BaseVisitor) PostVisitFragmentSpread(*FragmentSpread) {}
func (BaseVisitor) VisitInlineFragment(*InlineFragment) {}
func (BaseVisitor) PostVisitInlineFragment(*InlineFragment) {}
func (BaseVisitor) VisitFragmentDefinition(*FragmentDefinition) {}
func (BaseVisitor) PostVisitFragmentDefinition(*FragmentDefinition) {}
func (BaseVisitor) VisitTypeCondition(*TypeCondition) {}
func (BaseVisitor) PostVisitTypeCondition(*TypeCondition) {}
func (BaseVisitor) VisitDirectives(*Directives) {}
func (BaseVisitor) PostVisitDirectives(*Directives) {}
func (BaseVisitor) VisitDirective(*Directive) {}
func (BaseVisitor) PostVisitDirective(*Directive) {}
func (BaseVisitor) VisitVariable(*Variable) {}
func (BaseVisitor) PostVisitVariable(*Variable) {}
func (BaseVisitor) VisitIntValue(*IntValue) {}
func (BaseVisitor) PostVisitIntValue(*IntValue) {}
func (BaseVisitor) VisitFloatValue(*FloatValue) {}
func (BaseVisitor) PostVisitFloatValue(*FloatValue) {}
func (BaseVisitor) VisitStringValue(*StringValue) {}
func (BaseVisitor) PostVisitStringValue(*StringValue) {}
func (BaseVisitor) VisitBooleanValue(*BooleanValue) {}
func (BaseVisitor) PostVisitBooleanValue(*BooleanValue) {}
func (BaseVisitor) VisitNullValue(*NullValue) {}
func (BaseVisitor) PostVisitNullValue(*NullValue) {}
func (BaseVisitor) VisitEnumValue(*EnumValue) {}
func (BaseVisitor) PostVisitEnumValue(*EnumValue) {}
func (BaseVisitor) VisitListValue(*ListValue) {}
func (BaseVisitor) PostVisitListValue(*ListValue) {}
func (BaseVisitor) VisitObjectValue(*ObjectValue) {}
func (BaseVisitor) PostVisitObjectValue(*ObjectValue) {}
func (BaseVisitor) VisitObjectField(*ObjectField) {}
func (BaseVisitor) PostVisitObjectField(*ObjectField) {}
func (BaseVisitor) VisitNamedType(*NamedType) {}
func (BaseVisitor) PostVisitNamedType(*NamedType) {}
func (BaseVisitor) VisitListType(*ListType) {}
func (BaseVisitor) PostVisitListType(*ListType) {}
func (BaseVisitor) VisitNonNullType(*NonNullType) {}
func (BaseVisitor) PostVisitNonNullType(*NonNullType) {}
func (BaseVisitor) VisitDescription(*Description) {}
func (BaseVisitor) PostVisitDescription(*Description) {}
func (BaseVisitor) VisitSchemaDefinition(*SchemaDefinition) {}
func (BaseVisitor) PostVisitSchemaDefinition(*SchemaDefinition) {}
func (BaseVisitor) VisitRootOperationTypeDefinitions(*RootOperationTypeDefinitions) {}
func (BaseVisitor) PostVisitRootOperationTypeDefinitions(*RootOperationTypeDefinitions) {}
func (BaseVisitor) VisitRootOperationTypeDefinition(*RootOperationTypeDefinition) {}
func (BaseVisitor) PostVisitRootOperationTypeDefinition(*RootOperationTypeDefinition) {}
func (BaseVisitor) VisitSchemaExtension(*SchemaExtension) {}
func (BaseVisitor) PostVisitSchemaExtension(*SchemaExtension) {}
func (BaseVisitor) VisitScalarTypeDefinition(*ScalarTypeDefinition) {}
func (BaseVisitor) PostVisitScalarTypeDefinition(*ScalarTypeDefinition) {}
func (BaseVisitor) VisitScalarTypeExtension(*ScalarTypeExtension) {}
func (BaseVisitor) PostVisitScalarTypeExtension(*ScalarTypeExtension) {}
func (BaseVisitor) VisitObjectTypeDefinition(*ObjectTypeDefinition) {}
func (BaseVisitor) PostVisitObjectTypeDefinition(*ObjectTypeDefinition) {}
func (BaseVisitor) VisitObjectTypeExtension(*ObjectTypeExtension) {}
func (BaseVisitor) PostVisitObjectTypeExtension(*ObjectTypeExtension) {}
func (BaseVisitor) VisitImplementsInterfaces(*ImplementsInterfaces) {}
func (BaseVisitor) PostVisitImplementsInterfaces(*ImplementsInterfaces) {}
func (BaseVisitor) VisitFieldsDefinition(*FieldsDefinition) {}
func (BaseVisitor) PostVisitFieldsDefinition(*FieldsDefinition) {}
func (BaseVisitor) VisitFieldDefinition(*FieldDefinition) {}
func (BaseVisitor) PostVisitFieldDefinition(*FieldDefinition) {}
func (BaseVisitor) VisitArgumentsDefinition(*ArgumentsDefinition) {}
func (BaseVisitor) PostVisitArgumentsDefinition(*ArgumentsDefinition) {}
func (BaseVisitor) VisitInputValueDefinition(*InputValueDefinition) {}
func (BaseVisitor) PostVisitInputValueDefinition(*InputValueDefinition) {}
func (BaseVisitor) VisitInterfaceTypeDefinition(*InterfaceTypeDefinition) {}
func (BaseVisitor) PostVisitInterfaceTypeDefinition(*InterfaceTypeDefinition) {}
func (BaseVisitor) VisitInterfaceTypeExtension(*InterfaceTypeExtension) {}
func (BaseVisitor) PostVisitInterfaceTypeExtension(*InterfaceTypeExtension) {}
func (BaseVisitor) VisitUnionTypeDefinition(*UnionTypeDefinition) {}
func (BaseVisitor) PostVisitUnionTypeDefinition(*UnionTypeDefinition) {}
func (BaseVisitor) VisitUnionMemberTypes(*UnionMemberTypes) {}
func (BaseVisitor) PostVisitUnionMemberTypes(*UnionMemberTypes) {}
func (BaseVisitor) VisitUnionTypeExtension(*UnionTypeExtension) {}
func (BaseVisitor) PostVisitUnionTypeExtension(*UnionTypeExtension) {}
func (BaseVisitor) VisitEnumTypeDefinition(*EnumTypeDefinition) {}
func (BaseVisitor) PostVisitEnumTypeDefinition(*EnumTypeDefinition) {}
func (BaseVisitor) VisitEnumValuesDefinition(*EnumValuesDefinition) {}
func (BaseVisitor) PostVisitEnumValuesDefinition(*EnumValuesDefinition) {}
func (BaseVisitor) VisitEnumValueDefinition(*EnumValueDefinition) {}
func (BaseVisitor) PostVisitEnumValueDefinition(*EnumValueDefinition) {}
func (BaseVisitor) VisitEnumTypeExtension(*EnumTypeExtension) {}
func (BaseVisitor) PostVisitEnumTypeExtension(*EnumTypeExtension) {}
func (BaseVisitor) VisitInputObjectTypeDefinition(*InputObjectTypeDefinition) {}
func (BaseVisitor) PostVisitInputObjectTypeDefinition(*InputObjectTypeDefinition) {}
func (BaseVisitor) VisitInputFieldsDefinition(*InputFieldsDefinition) {}
func (BaseVisitor) PostVisitInputFieldsDefinition(*InputFieldsDefinition) {}
func (BaseVisitor) VisitInputObjectTypeExtension(*InputObjectTypeExtension) {}
func (BaseVisitor) PostVisitInputObjectTypeExtension(*InputObjectTypeExtension) {}
func (BaseVisitor) VisitDirectiveDefinition(*DirectiveDefinition) {}
func (BaseVisitor) PostVisitDirectiveDefinition(*DirectiveDefinition) {}
func (BaseVisitor) VisitDirectiveLocations(*DirectiveLocations) {}
func (BaseVisitor) PostVisitDirectiveLocations(*DirectiveLocations) {}
func (BaseVisitor) VisitDirectiveLocation(*DirectiveLocation) {}
func (BaseVisitor) PostVisitDirectiveLocation(*DirectiveLocation) {}

func (BaseVisitor) VisitDefinition(Definition) {}
func (BaseVisitor) VisitSelection(Selection) {}
func (BaseVisitor) VisitValue(Value) {}
func (BaseVisitor) VisitType(Type) {}
func (BaseVisitor) VisitTypeDefinition(TypeDefinition) {}
func (BaseVisitor) VisitTypeExtension(TypeExtension) {}

func (BaseVisitor) VisitToken(lex.Token) {}
func (BaseVisitor) VisitSpan(lex.Span) {}
func (BaseVisitor) VisitMissing(*MissingToken) {}
