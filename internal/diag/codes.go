package diag

import "github.com/gravelql/gravel/internal/lex"

// One constructor per code keeps call sites greppable and the code space
// append-only. Unary constructors take the gap span where the slot should
// have been; binary constructors take the opening token's span and the gap
// where the closer should have been.

func UnrecognizedTokens(span lex.Span) Diagnostic {
	return unary("E0001", "Syntax error.", span, "these tokens are unrecognized")
}

func MissingOperationDefinitionSelectionSet(span lex.Span) Diagnostic {
	return unary("E0003", "Operation definition is missing a selection set.", span, "expected a selection set here")
}

func MissingSelectionSetClosingBrace(brace, span lex.Span) Diagnostic {
	return binary("E0004", "Selection set is never closed.",
		brace, "this selection set is opened here", span, "expected `}` here")
}

func MissingFieldName(span lex.Span) Diagnostic {
	return unary("E0005", "Field is missing a name.", span, "expected a field name here")
}

func MissingArgumentsClosingParenthesis(paren, span lex.Span) Diagnostic {
	return binary("E0006", "Argument list is never closed.",
		paren, "this argument list is opened here", span, "expected `)` here")
}

func MissingArgumentColon(span lex.Span) Diagnostic {
	return unary("E0007", "Argument is missing a colon.", span, "expected `:` here")
}

func MissingArgumentValue(span lex.Span) Diagnostic {
	return unary("E0008", "Argument is missing a value.", span, "expected a value here")
}

func MissingInlineFragmentSelectionSet(span lex.Span) Diagnostic {
	return unary("E0009", "Inline fragment is missing a selection set.", span, "expected a selection set here")
}

func MissingFragmentName(span lex.Span) Diagnostic {
	return unary("E0010", "Fragment is missing a name.", span, "expected a fragment name here")
}

func MissingFragmentTypeCondition(span lex.Span) Diagnostic {
	return unary("E0011", "Fragment definition is missing a type condition.", span, "expected `on` here")
}

func MissingFragmentSelectionSet(span lex.Span) Diagnostic {
	return unary("E0012", "Fragment definition is missing a selection set.", span, "expected a selection set here")
}

func MissingTypeConditionNamedType(span lex.Span) Diagnostic {
	return unary("E0013", "Type condition is missing a named type.", span, "expected a type name here")
}

func MissingListValueClosingBracket(bracket, span lex.Span) Diagnostic {
	return binary("E0014", "List value is never closed.",
		bracket, "this list is opened here", span, "expected `]` here")
}

func MissingObjectValueClosingBrace(brace, span lex.Span) Diagnostic {
	return binary("E0015", "Object value is never closed.",
		brace, "this object is opened here", span, "expected `}` here")
}

func MissingObjectFieldColon(span lex.Span) Diagnostic {
	return unary("E0016", "Object field is missing a colon.", span, "expected `:` here")
}

func MissingObjectFieldValue(span lex.Span) Diagnostic {
	return unary("E0017", "Object field is missing a value.", span, "expected a value here")
}

func MissingVariableDefinitionsClosingParenthesis(paren, span lex.Span) Diagnostic {
	return binary("E0018", "Variable definition list is never closed.",
		paren, "this variable definition list is opened here", span, "expected `)` here")
}

func MissingVariableDefinitionColon(span lex.Span) Diagnostic {
	return unary("E0019", "Variable definition is missing a colon.", span, "expected `:` here")
}

func MissingVariableDefinitionType(span lex.Span) Diagnostic {
	return unary("E0020", "Variable definition is missing a type.", span, "expected a type here")
}

func MissingDefaultValue(span lex.Span) Diagnostic {
	return unary("E0021", "Default value is missing a value.", span, "expected a value here")
}

func MissingListTypeClosingBracket(bracket, span lex.Span) Diagnostic {
	return binary("E0022", "List type is never closed.",
		bracket, "this list type is opened here", span, "expected `]` here")
}

func MissingListTypeType(span lex.Span) Diagnostic {
	return unary("E0023", "List type is missing an element type.", span, "expected a type here")
}

func MissingDirectiveName(span lex.Span) Diagnostic {
	return unary("E0024", "Directive is missing a name.", span, "expected a directive name here")
}

func MissingRootOperationTypeDefinitions(span lex.Span) Diagnostic {
	return unary("E0025", "Schema definition is missing root operation type definitions.", span, "expected `{` here")
}

func MissingRootOperationTypeDefinitionsClosingBrace(brace, span lex.Span) Diagnostic {
	return binary("E0026", "Root operation type definition list is never closed.",
		brace, "this list is opened here", span, "expected `}` here")
}

func MissingRootOperationTypeDefinitionColon(span lex.Span) Diagnostic {
	return unary("E0027", "Root operation type definition is missing a colon.", span, "expected `:` here")
}

func MissingRootOperationTypeDefinitionNamedType(span lex.Span) Diagnostic {
	return unary("E0028", "Root operation type definition is missing a named type.", span, "expected a type name here")
}

func MissingScalarTypeDefinitionName(span lex.Span) Diagnostic {
	return unary("E0029", "Scalar type definition is missing a name.", span, "expected a type name here")
}

func MissingScalarTypeExtensionName(span lex.Span) Diagnostic {
	return unary("E0030", "Scalar type extension is missing a name.", span, "expected a type name here")
}

func MissingScalarTypeExtensionDirectives(span lex.Span) Diagnostic {
	return unary("E0031", "Scalar type extension is missing directives.", span, "expected directives here")
}

func MissingObjectTypeDefinitionName(span lex.Span) Diagnostic {
	return unary("E0032", "Object type definition is missing a name.", span, "expected a type name here")
}

func MissingFirstImplementsInterface(span lex.Span) Diagnostic {
	return unary("E0033", "Implements clause is missing an interface name.", span, "expected an interface name here")
}

func MissingImplementsInterface(span lex.Span) Diagnostic {
	return unary("E0034", "Implements clause is missing an interface name after `&`.", span, "expected an interface name here")
}

func MissingFieldsDefinitionClosingBrace(brace, span lex.Span) Diagnostic {
	return binary("E0035", "Fields definition is never closed.",
		brace, "this fields definition is opened here", span, "expected `}` here")
}

func MissingFieldDefinitionColon(span lex.Span) Diagnostic {
	return unary("E0036", "Field definition is missing a colon.", span, "expected `:` here")
}

func MissingFieldDefinitionType(span lex.Span) Diagnostic {
	return unary("E0037", "Field definition is missing a type.", span, "expected a type here")
}

func MissingArgumentsDefinitionClosingParenthesis(paren, span lex.Span) Diagnostic {
	return binary("E0038", "Arguments definition is never closed.",
		paren, "this arguments definition is opened here", span, "expected `)` here")
}

func MissingInputValueDefinitionColon(span lex.Span) Diagnostic {
	return unary("E0039", "Input value definition is missing a colon.", span, "expected `:` here")
}

func MissingInputValueDefinitionType(span lex.Span) Diagnostic {
	return unary("E0040", "Input value definition is missing a type.", span, "expected a type here")
}

func MissingObjectTypeExtensionName(span lex.Span) Diagnostic {
	return unary("E0041", "Object type extension is missing a name.", span, "expected a type name here")
}

func MissingInterfaceTypeDefinitionName(span lex.Span) Diagnostic {
	return unary("E0042", "Interface type definition is missing a name.", span, "expected a type name here")
}

func MissingInterfaceTypeExtensionName(span lex.Span) Diagnostic {
	return unary("E0043", "Interface type extension is missing a name.", span, "expected a type name here")
}

func MissingUnionTypeDefinitionName(span lex.Span) Diagnostic {
	return unary("E0044", "Union type definition is missing a name.", span, "expected a type name here")
}

func MissingFirstUnionMemberType(span lex.Span) Diagnostic {
	return unary("E0045", "Union member type list is missing a type name.", span, "expected a type name here")
}

func MissingUnionMemberType(span lex.Span) Diagnostic {
	return unary("E0046", "Union member type list is missing a type name after `|`.", span, "expected a type name here")
}

func MissingUnionTypeExtensionName(span lex.Span) Diagnostic {
	return unary("E0047", "Union type extension is missing a name.", span, "expected a type name here")
}

func MissingEnumTypeDefinitionName(span lex.Span) Diagnostic {
	return unary("E0048", "Enum type definition is missing a name.", span, "expected a type name here")
}

func MissingEnumValuesDefinitionClosingBrace(brace, span lex.Span) Diagnostic {
	return binary("E0049", "Enum values definition is never closed.",
		brace, "this enum values definition is opened here", span, "expected `}` here")
}

func MissingEnumTypeExtensionName(span lex.Span) Diagnostic {
	return unary("E0050", "Enum type extension is missing a name.", span, "expected a type name here")
}

func MissingInputObjectTypeDefinitionName(span lex.Span) Diagnostic {
	return unary("E0051", "Input object type definition is missing a name.", span, "expected a type name here")
}

func MissingInputFieldsDefinitionClosingBrace(brace, span lex.Span) Diagnostic {
	return binary("E0052", "Input fields definition is never closed.",
		brace, "this input fields definition is opened here", span, "expected `}` here")
}

func MissingInputObjectTypeExtensionName(span lex.Span) Diagnostic {
	return unary("E0053", "Input object type extension is missing a name.", span, "expected a type name here")
}

func MissingDirectiveDefinitionAt(span lex.Span) Diagnostic {
	return unary("E0054", "Directive definition is missing `@`.", span, "expected `@` here")
}

func MissingDirectiveDefinitionName(span lex.Span) Diagnostic {
	return unary("E0055", "Directive definition is missing a name.", span, "expected a directive name here")
}

func MissingDirectiveLocations(span lex.Span) Diagnostic {
	return unary("E0056", "Directive definition is missing locations.", span, "expected `on` here")
}

func MissingFirstDirectiveLocation(span lex.Span) Diagnostic {
	return unary("E0057", "Directive location list is missing a location.", span, "expected a directive location here")
}

func MissingDirectiveLocation(span lex.Span) Diagnostic {
	return unary("E0058", "Directive location list is missing a location after `|`.", span, "expected a directive location here")
}
