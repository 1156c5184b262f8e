package syn

import (
	"github.com/gravelql/gravel/internal/ast"
	"github.com/gravelql/gravel/internal/comb"
	"github.com/gravelql/gravel/internal/diag"
	"github.com/gravelql/gravel/internal/lex"
)

func description() comb.Parser[*ast.Description] {
	return comb.Map(stringToken(), func(t lex.Token) *ast.Description {
		return &ast.Description{Token: t}
	})
}

// described prefixes a definition production with its optional description.
// The recognizer is widened so the production still anchors on its keyword
// when no description is present.
func described[O any](anchor comb.Parser[O], attach func(*ast.Description, O) O) comb.Parser[O] {
	seq := comb.Seq2(comb.Opt(description()), anchor, attach)
	return comb.WithRecognizer(seq, comb.Or(stringToken(), anchor))
}

func schemaDefinition() comb.Parser[*ast.SchemaDefinition] {
	return described(comb.Seq3(
		keyword("schema"),
		comb.Opt(comb.Lazy(directives)),
		comb.Recover(comb.Lazy(rootOperationTypeDefinitions), diag.MissingRootOperationTypeDefinitions),
		func(schema lex.Token, dirs *ast.Directives, roots ast.Recoverable[*ast.RootOperationTypeDefinitions]) *ast.SchemaDefinition {
			return &ast.SchemaDefinition{Schema: schema, Directives: dirs, RootOperationDefinitions: roots}
		},
	), func(d *ast.Description, n *ast.SchemaDefinition) *ast.SchemaDefinition {
		n.Description = d
		return n
	})
}

func rootOperationTypeDefinitions() comb.Parser[*ast.RootOperationTypeDefinitions] {
	return comb.Delimited(
		punctuator("{"),
		comb.Many0(comb.Lazy(rootOperationTypeDefinition)),
		punctuator("}"),
		diag.MissingRootOperationTypeDefinitionsClosingBrace,
		func(open lex.Token, defs []*ast.RootOperationTypeDefinition, closing ast.Recoverable[lex.Token]) *ast.RootOperationTypeDefinitions {
			return &ast.RootOperationTypeDefinitions{Brace: open, Definitions: defs, ClosingBrace: closing}
		},
	)
}

func rootOperationTypeDefinition() comb.Parser[*ast.RootOperationTypeDefinition] {
	return comb.Seq3(
		comb.Lazy(operationType),
		comb.Recover(punctuator(":"), diag.MissingRootOperationTypeDefinitionColon),
		comb.Recover(comb.Lazy(namedType), diag.MissingRootOperationTypeDefinitionNamedType),
		func(ty *ast.OperationType, colon ast.Recoverable[lex.Token], nt ast.Recoverable[*ast.NamedType]) *ast.RootOperationTypeDefinition {
			return &ast.RootOperationTypeDefinition{OperationType: ty, Colon: colon, NamedType: nt}
		},
	)
}

func schemaExtension() comb.Parser[*ast.SchemaExtension] {
	return comb.Seq4(
		keyword("extend"),
		keyword("schema"),
		comb.Opt(comb.Lazy(directives)),
		comb.Opt(comb.Lazy(rootOperationTypeDefinitions)),
		func(extend, schema lex.Token, dirs *ast.Directives, roots *ast.RootOperationTypeDefinitions) *ast.SchemaExtension {
			return &ast.SchemaExtension{Extend: extend, Schema: schema, Directives: dirs, RootOperationDefinitions: roots}
		},
	)
}

func scalarTypeDefinition() comb.Parser[*ast.ScalarTypeDefinition] {
	return described(comb.Seq3(
		keyword("scalar"),
		comb.Recover(name(), diag.MissingScalarTypeDefinitionName),
		comb.Opt(comb.Lazy(directives)),
		func(scalar lex.Token, nm ast.Recoverable[lex.Token], dirs *ast.Directives) *ast.ScalarTypeDefinition {
			return &ast.ScalarTypeDefinition{Scalar: scalar, Name: nm, Directives: dirs}
		},
	), func(d *ast.Description, n *ast.ScalarTypeDefinition) *ast.ScalarTypeDefinition {
		n.Description = d
		return n
	})
}

func scalarTypeExtension() comb.Parser[*ast.ScalarTypeExtension] {
	return comb.Seq4(
		keyword("extend"),
		keyword("scalar"),
		comb.Recover(name(), diag.MissingScalarTypeExtensionName),
		comb.Recover(comb.Lazy(directives), diag.MissingScalarTypeExtensionDirectives),
		func(extend, scalar lex.Token, nm ast.Recoverable[lex.Token], dirs ast.Recoverable[*ast.Directives]) *ast.ScalarTypeExtension {
			return &ast.ScalarTypeExtension{Extend: extend, Scalar: scalar, Name: nm, Directives: dirs}
		},
	)
}

func objectTypeDefinition() comb.Parser[*ast.ObjectTypeDefinition] {
	return described(comb.Seq5(
		keyword("type"),
		comb.Recover(name(), diag.MissingObjectTypeDefinitionName),
		comb.Opt(comb.Lazy(implementsInterfaces)),
		comb.Opt(comb.Lazy(directives)),
		comb.Opt(comb.Lazy(fieldsDefinition)),
		func(ty lex.Token, nm ast.Recoverable[lex.Token], impl *ast.ImplementsInterfaces, dirs *ast.Directives, fields *ast.FieldsDefinition) *ast.ObjectTypeDefinition {
			return &ast.ObjectTypeDefinition{Type: ty, Name: nm, Implements: impl, Directives: dirs, Fields: fields}
		},
	), func(d *ast.Description, n *ast.ObjectTypeDefinition) *ast.ObjectTypeDefinition {
		n.Description = d
		return n
	})
}

func objectTypeExtension() comb.Parser[*ast.ObjectTypeExtension] {
	return comb.Seq6(
		keyword("extend"),
		keyword("type"),
		comb.Recover(name(), diag.MissingObjectTypeExtensionName),
		comb.Opt(comb.Lazy(implementsInterfaces)),
		comb.Opt(comb.Lazy(directives)),
		comb.Opt(comb.Lazy(fieldsDefinition)),
		func(extend, ty lex.Token, nm ast.Recoverable[lex.Token], impl *ast.ImplementsInterfaces, dirs *ast.Directives, fields *ast.FieldsDefinition) *ast.ObjectTypeExtension {
			return &ast.ObjectTypeExtension{Extend: extend, Type: ty, Name: nm, Implements: impl, Directives: dirs, Fields: fields}
		},
	)
}

func implementsInterfaces() comb.Parser[*ast.ImplementsInterfaces] {
	item := comb.Seq2(
		punctuator("&"),
		comb.Recover(comb.Lazy(namedType), diag.MissingImplementsInterface),
		func(amp lex.Token, ty ast.Recoverable[*ast.NamedType]) ast.NamedTypeListItem {
			return ast.NamedTypeListItem{Sep: amp, Type: ty}
		},
	)
	return comb.Seq4(
		keyword("implements"),
		comb.Opt(punctuator("&")),
		comb.Recover(comb.Lazy(namedType), diag.MissingFirstImplementsInterface),
		comb.Many0(item),
		func(impl, amp lex.Token, first ast.Recoverable[*ast.NamedType], rest []ast.NamedTypeListItem) *ast.ImplementsInterfaces {
			return &ast.ImplementsInterfaces{Implements: impl, Ampersand: amp, First: first, Rest: rest}
		},
	)
}

func fieldsDefinition() comb.Parser[*ast.FieldsDefinition] {
	return comb.Delimited(
		punctuator("{"),
		comb.Many0(comb.Lazy(fieldDefinition)),
		punctuator("}"),
		diag.MissingFieldsDefinitionClosingBrace,
		func(open lex.Token, defs []*ast.FieldDefinition, closing ast.Recoverable[lex.Token]) *ast.FieldsDefinition {
			return &ast.FieldsDefinition{Brace: open, Definitions: defs, ClosingBrace: closing}
		},
	)
}

func fieldDefinition() comb.Parser[*ast.FieldDefinition] {
	return described(comb.Seq5(
		name(),
		comb.Opt(comb.Lazy(argumentsDefinition)),
		comb.Recover(punctuator(":"), diag.MissingFieldDefinitionColon),
		comb.Recover(comb.Lazy(typeReference), diag.MissingFieldDefinitionType),
		comb.Opt(comb.Lazy(directives)),
		func(nm lex.Token, args *ast.ArgumentsDefinition, colon ast.Recoverable[lex.Token], ty ast.Recoverable[ast.Type], dirs *ast.Directives) *ast.FieldDefinition {
			return &ast.FieldDefinition{Name: nm, Arguments: args, Colon: colon, Type: ty, Directives: dirs}
		},
	), func(d *ast.Description, n *ast.FieldDefinition) *ast.FieldDefinition {
		n.Description = d
		return n
	})
}

func argumentsDefinition() comb.Parser[*ast.ArgumentsDefinition] {
	return comb.Delimited(
		punctuator("("),
		comb.Many0(comb.Lazy(inputValueDefinition)),
		punctuator(")"),
		diag.MissingArgumentsDefinitionClosingParenthesis,
		func(open lex.Token, defs []*ast.InputValueDefinition, closing ast.Recoverable[lex.Token]) *ast.ArgumentsDefinition {
			return &ast.ArgumentsDefinition{Paren: open, Definitions: defs, ClosingParen: closing}
		},
	)
}

func inputValueDefinition() comb.Parser[*ast.InputValueDefinition] {
	return described(comb.Seq5(
		name(),
		comb.Recover(punctuator(":"), diag.MissingInputValueDefinitionColon),
		comb.Recover(comb.Lazy(typeReference), diag.MissingInputValueDefinitionType),
		comb.Opt(comb.Lazy(defaultValue)),
		comb.Opt(comb.Lazy(directives)),
		func(nm lex.Token, colon ast.Recoverable[lex.Token], ty ast.Recoverable[ast.Type], def *ast.DefaultValue, dirs *ast.Directives) *ast.InputValueDefinition {
			return &ast.InputValueDefinition{Name: nm, Colon: colon, Type: ty, DefaultValue: def, Directives: dirs}
		},
	), func(d *ast.Description, n *ast.InputValueDefinition) *ast.InputValueDefinition {
		n.Description = d
		return n
	})
}

func interfaceTypeDefinition() comb.Parser[*ast.InterfaceTypeDefinition] {
	return described(comb.Seq5(
		keyword("interface"),
		comb.Recover(name(), diag.MissingInterfaceTypeDefinitionName),
		comb.Opt(comb.Lazy(implementsInterfaces)),
		comb.Opt(comb.Lazy(directives)),
		comb.Opt(comb.Lazy(fieldsDefinition)),
		func(iface lex.Token, nm ast.Recoverable[lex.Token], impl *ast.ImplementsInterfaces, dirs *ast.Directives, fields *ast.FieldsDefinition) *ast.InterfaceTypeDefinition {
			return &ast.InterfaceTypeDefinition{Interface: iface, Name: nm, Implements: impl, Directives: dirs, Fields: fields}
		},
	), func(d *ast.Description, n *ast.InterfaceTypeDefinition) *ast.InterfaceTypeDefinition {
		n.Description = d
		return n
	})
}

func interfaceTypeExtension() comb.Parser[*ast.InterfaceTypeExtension] {
	return comb.Seq6(
		keyword("extend"),
		keyword("interface"),
		comb.Recover(name(), diag.MissingInterfaceTypeExtensionName),
		comb.Opt(comb.Lazy(implementsInterfaces)),
		comb.Opt(comb.Lazy(directives)),
		comb.Opt(comb.Lazy(fieldsDefinition)),
		func(extend, iface lex.Token, nm ast.Recoverable[lex.Token], impl *ast.ImplementsInterfaces, dirs *ast.Directives, fields *ast.FieldsDefinition) *ast.InterfaceTypeExtension {
			return &ast.InterfaceTypeExtension{Extend: extend, Interface: iface, Name: nm, Implements: impl, Directives: dirs, Fields: fields}
		},
	)
}

func unionTypeDefinition() comb.Parser[*ast.UnionTypeDefinition] {
	return described(comb.Seq4(
		keyword("union"),
		comb.Recover(name(), diag.MissingUnionTypeDefinitionName),
		comb.Opt(comb.Lazy(directives)),
		comb.Opt(comb.Lazy(unionMemberTypes)),
		func(union lex.Token, nm ast.Recoverable[lex.Token], dirs *ast.Directives, members *ast.UnionMemberTypes) *ast.UnionTypeDefinition {
			return &ast.UnionTypeDefinition{Union: union, Name: nm, Directives: dirs, MemberTypes: members}
		},
	), func(d *ast.Description, n *ast.UnionTypeDefinition) *ast.UnionTypeDefinition {
		n.Description = d
		return n
	})
}

func unionMemberTypes() comb.Parser[*ast.UnionMemberTypes] {
	item := comb.Seq2(
		punctuator("|"),
		comb.Recover(comb.Lazy(namedType), diag.MissingUnionMemberType),
		func(pipe lex.Token, ty ast.Recoverable[*ast.NamedType]) ast.NamedTypeListItem {
			return ast.NamedTypeListItem{Sep: pipe, Type: ty}
		},
	)
	return comb.Seq4(
		punctuator("="),
		comb.Opt(punctuator("|")),
		comb.Recover(comb.Lazy(namedType), diag.MissingFirstUnionMemberType),
		comb.Many0(item),
		func(eq, pipe lex.Token, first ast.Recoverable[*ast.NamedType], rest []ast.NamedTypeListItem) *ast.UnionMemberTypes {
			return &ast.UnionMemberTypes{Eq: eq, Pipe: pipe, First: first, Rest: rest}
		},
	)
}

func unionTypeExtension() comb.Parser[*ast.UnionTypeExtension] {
	return comb.Seq5(
		keyword("extend"),
		keyword("union"),
		comb.Recover(name(), diag.MissingUnionTypeExtensionName),
		comb.Opt(comb.Lazy(directives)),
		comb.Opt(comb.Lazy(unionMemberTypes)),
		func(extend, union lex.Token, nm ast.Recoverable[lex.Token], dirs *ast.Directives, members *ast.UnionMemberTypes) *ast.UnionTypeExtension {
			return &ast.UnionTypeExtension{Extend: extend, Union: union, Name: nm, Directives: dirs, MemberTypes: members}
		},
	)
}

func enumTypeDefinition() comb.Parser[*ast.EnumTypeDefinition] {
	return described(comb.Seq4(
		keyword("enum"),
		comb.Recover(name(), diag.MissingEnumTypeDefinitionName),
		comb.Opt(comb.Lazy(directives)),
		comb.Opt(comb.Lazy(enumValuesDefinition)),
		func(enum lex.Token, nm ast.Recoverable[lex.Token], dirs *ast.Directives, values *ast.EnumValuesDefinition) *ast.EnumTypeDefinition {
			return &ast.EnumTypeDefinition{Enum: enum, Name: nm, Directives: dirs, Values: values}
		},
	), func(d *ast.Description, n *ast.EnumTypeDefinition) *ast.EnumTypeDefinition {
		n.Description = d
		return n
	})
}

func enumValuesDefinition() comb.Parser[*ast.EnumValuesDefinition] {
	return comb.Delimited(
		punctuator("{"),
		comb.Many0(comb.Lazy(enumValueDefinition)),
		punctuator("}"),
		diag.MissingEnumValuesDefinitionClosingBrace,
		func(open lex.Token, defs []*ast.EnumValueDefinition, closing ast.Recoverable[lex.Token]) *ast.EnumValuesDefinition {
			return &ast.EnumValuesDefinition{Brace: open, Definitions: defs, ClosingBrace: closing}
		},
	)
}

func enumValueDefinition() comb.Parser[*ast.EnumValueDefinition] {
	return described(comb.Seq2(
		nameUnless("true", "false", "null"),
		comb.Opt(comb.Lazy(directives)),
		func(nm lex.Token, dirs *ast.Directives) *ast.EnumValueDefinition {
			return &ast.EnumValueDefinition{Value: &ast.EnumValue{Token: nm}, Directives: dirs}
		},
	), func(d *ast.Description, n *ast.EnumValueDefinition) *ast.EnumValueDefinition {
		n.Description = d
		return n
	})
}

func enumTypeExtension() comb.Parser[*ast.EnumTypeExtension] {
	return comb.Seq5(
		keyword("extend"),
		keyword("enum"),
		comb.Recover(name(), diag.MissingEnumTypeExtensionName),
		comb.Opt(comb.Lazy(directives)),
		comb.Opt(comb.Lazy(enumValuesDefinition)),
		func(extend, enum lex.Token, nm ast.Recoverable[lex.Token], dirs *ast.Directives, values *ast.EnumValuesDefinition) *ast.EnumTypeExtension {
			return &ast.EnumTypeExtension{Extend: extend, Enum: enum, Name: nm, Directives: dirs, Values: values}
		},
	)
}

func inputObjectTypeDefinition() comb.Parser[*ast.InputObjectTypeDefinition] {
	return described(comb.Seq4(
		keyword("input"),
		comb.Recover(name(), diag.MissingInputObjectTypeDefinitionName),
		comb.Opt(comb.Lazy(directives)),
		comb.Opt(comb.Lazy(inputFieldsDefinition)),
		func(input lex.Token, nm ast.Recoverable[lex.Token], dirs *ast.Directives, fields *ast.InputFieldsDefinition) *ast.InputObjectTypeDefinition {
			return &ast.InputObjectTypeDefinition{Input: input, Name: nm, Directives: dirs, Fields: fields}
		},
	), func(d *ast.Description, n *ast.InputObjectTypeDefinition) *ast.InputObjectTypeDefinition {
		n.Description = d
		return n
	})
}

func inputFieldsDefinition() comb.Parser[*ast.InputFieldsDefinition] {
	return comb.Delimited(
		punctuator("{"),
		comb.Many0(comb.Lazy(inputValueDefinition)),
		punctuator("}"),
		diag.MissingInputFieldsDefinitionClosingBrace,
		func(open lex.Token, defs []*ast.InputValueDefinition, closing ast.Recoverable[lex.Token]) *ast.InputFieldsDefinition {
			return &ast.InputFieldsDefinition{Brace: open, Definitions: defs, ClosingBrace: closing}
		},
	)
}

func inputObjectTypeExtension() comb.Parser[*ast.InputObjectTypeExtension] {
	return comb.Seq5(
		keyword("extend"),
		keyword("input"),
		comb.Recover(name(), diag.MissingInputObjectTypeExtensionName),
		comb.Opt(comb.Lazy(directives)),
		comb.Opt(comb.Lazy(inputFieldsDefinition)),
		func(extend, input lex.Token, nm ast.Recoverable[lex.Token], dirs *ast.Directives, fields *ast.InputFieldsDefinition) *ast.InputObjectTypeExtension {
			return &ast.InputObjectTypeExtension{Extend: extend, Input: input, Name: nm, Directives: dirs, Fields: fields}
		},
	)
}

func directiveDefinition() comb.Parser[*ast.DirectiveDefinition] {
	return described(comb.Seq6(
		keyword("directive"),
		comb.Recover(punctuator("@"), diag.MissingDirectiveDefinitionAt),
		comb.Recover(name(), diag.MissingDirectiveDefinitionName),
		comb.Opt(comb.Lazy(argumentsDefinition)),
		comb.Opt(keyword("repeatable")),
		comb.Recover(comb.Lazy(directiveLocations), diag.MissingDirectiveLocations),
		func(dir lex.Token, at, nm ast.Recoverable[lex.Token], args *ast.ArgumentsDefinition, repeatable lex.Token, locs ast.Recoverable[*ast.DirectiveLocations]) *ast.DirectiveDefinition {
			return &ast.DirectiveDefinition{Directive: dir, At: at, Name: nm, Arguments: args, Repeatable: repeatable, Locations: locs}
		},
	), func(d *ast.Description, n *ast.DirectiveDefinition) *ast.DirectiveDefinition {
		n.Description = d
		return n
	})
}

func directiveLocations() comb.Parser[*ast.DirectiveLocations] {
	item := comb.Seq2(
		punctuator("|"),
		comb.Recover(comb.Lazy(directiveLocation), diag.MissingDirectiveLocation),
		func(pipe lex.Token, loc ast.Recoverable[*ast.DirectiveLocation]) ast.DirectiveLocationListItem {
			return ast.DirectiveLocationListItem{Pipe: pipe, Location: loc}
		},
	)
	return comb.Seq4(
		keyword("on"),
		comb.Opt(punctuator("|")),
		comb.Recover(comb.Lazy(directiveLocation), diag.MissingFirstDirectiveLocation),
		comb.Many0(item),
		func(on, pipe lex.Token, first ast.Recoverable[*ast.DirectiveLocation], rest []ast.DirectiveLocationListItem) *ast.DirectiveLocations {
			return &ast.DirectiveLocations{On: on, Pipe: pipe, First: first, Rest: rest}
		},
	)
}

var directiveLocationNames = map[string]bool{
	"QUERY": true, "MUTATION": true, "SUBSCRIPTION": true, "FIELD": true,
	"FRAGMENT_DEFINITION": true, "FRAGMENT_SPREAD": true, "INLINE_FRAGMENT": true,
	"VARIABLE_DEFINITION": true, "SCHEMA": true, "SCALAR": true, "OBJECT": true,
	"FIELD_DEFINITION": true, "ARGUMENT_DEFINITION": true, "INTERFACE": true,
	"UNION": true, "ENUM": true, "ENUM_VALUE": true, "INPUT_OBJECT": true,
	"INPUT_FIELD_DEFINITION": true,
}

func directiveLocation() comb.Parser[*ast.DirectiveLocation] {
	p := tok("a directive location", func(t lex.Token) bool {
		return t.Kind == lex.Name && directiveLocationNames[t.Text]
	})
	return comb.Map(p, func(t lex.Token) *ast.DirectiveLocation {
		return &ast.DirectiveLocation{Name: t}
	})
}
