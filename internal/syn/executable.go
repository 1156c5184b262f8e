package syn

import (
	"github.com/gravelql/gravel/internal/ast"
	"github.com/gravelql/gravel/internal/comb"
	"github.com/gravelql/gravel/internal/diag"
	"github.com/gravelql/gravel/internal/lex"
)

func operationType() comb.Parser[*ast.OperationType] {
	build := func(kind ast.OperationKind) func(lex.Token) *ast.OperationType {
		return func(t lex.Token) *ast.OperationType {
			return &ast.OperationType{Kind: kind, Token: t}
		}
	}
	return comb.Alt(
		comb.Map(keyword("query"), build(ast.Query)),
		comb.Map(keyword("mutation"), build(ast.Mutation)),
		comb.Map(keyword("subscription"), build(ast.Subscription)),
	)
}

func operationDefinition() comb.Parser[*ast.OperationDefinition] {
	full := comb.Seq5(
		comb.Lazy(operationType),
		comb.Opt(name()),
		comb.Opt(comb.Lazy(variableDefinitions)),
		comb.Opt(comb.Lazy(directives)),
		comb.Recover(comb.Lazy(selectionSet), diag.MissingOperationDefinitionSelectionSet),
		func(ty *ast.OperationType, nm lex.Token, vars *ast.VariableDefinitions, dirs *ast.Directives, sel ast.Recoverable[*ast.SelectionSet]) *ast.OperationDefinition {
			return &ast.OperationDefinition{
				OperationType:       ty,
				Name:                nm,
				VariableDefinitions: vars,
				Directives:          dirs,
				SelectionSet:        sel,
			}
		},
	)
	shorthand := comb.Map(comb.Lazy(selectionSet), func(sel *ast.SelectionSet) *ast.OperationDefinition {
		return &ast.OperationDefinition{SelectionSet: ast.Present(sel)}
	})
	return comb.Alt(full, shorthand)
}

func variableDefinitions() comb.Parser[*ast.VariableDefinitions] {
	return comb.Delimited(
		punctuator("("),
		comb.Many0(comb.Lazy(variableDefinition)),
		punctuator(")"),
		diag.MissingVariableDefinitionsClosingParenthesis,
		func(open lex.Token, defs []*ast.VariableDefinition, closing ast.Recoverable[lex.Token]) *ast.VariableDefinitions {
			return &ast.VariableDefinitions{Paren: open, Definitions: defs, ClosingParen: closing}
		},
	)
}

func variableDefinition() comb.Parser[*ast.VariableDefinition] {
	return comb.Seq5(
		comb.Lazy(variable),
		comb.Recover(punctuator(":"), diag.MissingVariableDefinitionColon),
		comb.Recover(comb.Lazy(typeReference), diag.MissingVariableDefinitionType),
		comb.Opt(comb.Lazy(defaultValue)),
		comb.Opt(comb.Lazy(directives)),
		func(v *ast.Variable, colon ast.Recoverable[lex.Token], ty ast.Recoverable[ast.Type], def *ast.DefaultValue, dirs *ast.Directives) *ast.VariableDefinition {
			return &ast.VariableDefinition{Variable: v, Colon: colon, Type: ty, DefaultValue: def, Directives: dirs}
		},
	)
}

func variable() comb.Parser[*ast.Variable] {
	return comb.Seq2(punctuator("$"), name(), func(dollar, nm lex.Token) *ast.Variable {
		return &ast.Variable{Dollar: dollar, Name: nm}
	})
}

func defaultValue() comb.Parser[*ast.DefaultValue] {
	return comb.Seq2(
		punctuator("="),
		comb.Recover(comb.Lazy(value), diag.MissingDefaultValue),
		func(eq lex.Token, val ast.Recoverable[ast.Value]) *ast.DefaultValue {
			return &ast.DefaultValue{Eq: eq, Value: val}
		},
	)
}

func selectionSet() comb.Parser[*ast.SelectionSet] {
	return comb.Delimited(
		punctuator("{"),
		comb.Many0(comb.Lazy(selection)),
		punctuator("}"),
		diag.MissingSelectionSetClosingBrace,
		func(open lex.Token, sels []ast.Selection, closing ast.Recoverable[lex.Token]) *ast.SelectionSet {
			return &ast.SelectionSet{Brace: open, Selections: sels, ClosingBrace: closing}
		},
	)
}

func selection() comb.Parser[ast.Selection] {
	return comb.Alt(
		comb.Map(comb.Lazy(field), func(n *ast.Field) ast.Selection { return n }),
		comb.Map(comb.Lazy(fragmentSpread), func(n *ast.FragmentSpread) ast.Selection { return n }),
		comb.Map(comb.Lazy(inlineFragment), func(n *ast.InlineFragment) ast.Selection { return n }),
	)
}

func field() comb.Parser[*ast.Field] {
	aliased := comb.Seq5(
		comb.Lazy(alias),
		comb.Recover(name(), diag.MissingFieldName),
		comb.Opt(comb.Lazy(arguments)),
		comb.Opt(comb.Lazy(directives)),
		comb.Opt(comb.Lazy(selectionSet)),
		func(al *ast.Alias, nm ast.Recoverable[lex.Token], args *ast.Arguments, dirs *ast.Directives, sel *ast.SelectionSet) *ast.Field {
			return &ast.Field{Alias: al, Name: nm, Arguments: args, Directives: dirs, SelectionSet: sel}
		},
	)
	plain := comb.Seq4(
		name(),
		comb.Opt(comb.Lazy(arguments)),
		comb.Opt(comb.Lazy(directives)),
		comb.Opt(comb.Lazy(selectionSet)),
		func(nm lex.Token, args *ast.Arguments, dirs *ast.Directives, sel *ast.SelectionSet) *ast.Field {
			return &ast.Field{Name: ast.Present(nm), Arguments: args, Directives: dirs, SelectionSet: sel}
		},
	)
	return comb.Alt(aliased, plain)
}

func alias() comb.Parser[*ast.Alias] {
	return comb.Seq2(name(), punctuator(":"), func(nm, colon lex.Token) *ast.Alias {
		return &ast.Alias{Name: nm, Colon: colon}
	})
}

func arguments() comb.Parser[*ast.Arguments] {
	return comb.Delimited(
		punctuator("("),
		comb.Many0(comb.Lazy(argument)),
		punctuator(")"),
		diag.MissingArgumentsClosingParenthesis,
		func(open lex.Token, items []*ast.Argument, closing ast.Recoverable[lex.Token]) *ast.Arguments {
			return &ast.Arguments{Paren: open, Items: items, ClosingParen: closing}
		},
	)
}

func argument() comb.Parser[*ast.Argument] {
	return comb.Seq3(
		name(),
		comb.Recover(punctuator(":"), diag.MissingArgumentColon),
		comb.Recover(comb.Lazy(value), diag.MissingArgumentValue),
		func(nm lex.Token, colon ast.Recoverable[lex.Token], val ast.Recoverable[ast.Value]) *ast.Argument {
			return &ast.Argument{Name: nm, Colon: colon, Value: val}
		},
	)
}

func fragmentSpread() comb.Parser[*ast.FragmentSpread] {
	return comb.Seq3(
		punctuator("..."),
		nameUnless("on"),
		comb.Opt(comb.Lazy(directives)),
		func(dots, nm lex.Token, dirs *ast.Directives) *ast.FragmentSpread {
			return &ast.FragmentSpread{Dots: dots, FragmentName: ast.Present(nm), Directives: dirs}
		},
	)
}

func inlineFragment() comb.Parser[*ast.InlineFragment] {
	return comb.Seq4(
		punctuator("..."),
		comb.Opt(comb.Lazy(typeCondition)),
		comb.Opt(comb.Lazy(directives)),
		comb.Recover(comb.Lazy(selectionSet), diag.MissingInlineFragmentSelectionSet),
		func(dots lex.Token, cond *ast.TypeCondition, dirs *ast.Directives, sel ast.Recoverable[*ast.SelectionSet]) *ast.InlineFragment {
			return &ast.InlineFragment{Dots: dots, TypeCondition: cond, Directives: dirs, SelectionSet: sel}
		},
	)
}

func fragmentDefinition() comb.Parser[*ast.FragmentDefinition] {
	return comb.Seq5(
		keyword("fragment"),
		comb.Recover(nameUnless("on"), diag.MissingFragmentName),
		comb.Recover(comb.Lazy(typeCondition), diag.MissingFragmentTypeCondition),
		comb.Opt(comb.Lazy(directives)),
		comb.Recover(comb.Lazy(selectionSet), diag.MissingFragmentSelectionSet),
		func(frag lex.Token, nm ast.Recoverable[lex.Token], cond ast.Recoverable[*ast.TypeCondition], dirs *ast.Directives, sel ast.Recoverable[*ast.SelectionSet]) *ast.FragmentDefinition {
			return &ast.FragmentDefinition{Fragment: frag, FragmentName: nm, TypeCondition: cond, Directives: dirs, SelectionSet: sel}
		},
	)
}

func typeCondition() comb.Parser[*ast.TypeCondition] {
	return comb.Seq2(
		keyword("on"),
		comb.Recover(comb.Lazy(namedType), diag.MissingTypeConditionNamedType),
		func(on lex.Token, ty ast.Recoverable[*ast.NamedType]) *ast.TypeCondition {
			return &ast.TypeCondition{On: on, NamedType: ty}
		},
	)
}

func directives() comb.Parser[*ast.Directives] {
	return comb.Map(comb.Many1(comb.Lazy(directive)), func(items []*ast.Directive) *ast.Directives {
		return &ast.Directives{Items: items}
	})
}

func directive() comb.Parser[*ast.Directive] {
	return comb.Seq3(
		punctuator("@"),
		comb.Recover(name(), diag.MissingDirectiveName),
		comb.Opt(comb.Lazy(arguments)),
		func(at lex.Token, nm ast.Recoverable[lex.Token], args *ast.Arguments) *ast.Directive {
			return &ast.Directive{At: at, Name: nm, Arguments: args}
		},
	)
}

func value() comb.Parser[ast.Value] {
	return comb.Alt(
		comb.Map(comb.Lazy(variable), func(n *ast.Variable) ast.Value { return n }),
		comb.Map(floatToken(), func(t lex.Token) ast.Value { return &ast.FloatValue{Token: t} }),
		comb.Map(intToken(), func(t lex.Token) ast.Value { return &ast.IntValue{Token: t} }),
		comb.Map(stringToken(), func(t lex.Token) ast.Value { return &ast.StringValue{Token: t} }),
		comb.Map(booleanName(), func(t lex.Token) ast.Value { return &ast.BooleanValue{Token: t} }),
		comb.Map(keyword("null"), func(t lex.Token) ast.Value { return &ast.NullValue{Token: t} }),
		comb.Map(nameUnless("true", "false", "null"), func(t lex.Token) ast.Value { return &ast.EnumValue{Token: t} }),
		comb.Map(comb.Lazy(listValue), func(n *ast.ListValue) ast.Value { return n }),
		comb.Map(comb.Lazy(objectValue), func(n *ast.ObjectValue) ast.Value { return n }),
	)
}

func booleanName() comb.Parser[lex.Token] {
	return tok("`true` or `false`", func(t lex.Token) bool {
		return t.Kind == lex.Name && (t.Text == "true" || t.Text == "false")
	})
}

func listValue() comb.Parser[*ast.ListValue] {
	return comb.Delimited(
		punctuator("["),
		comb.Many0(comb.Lazy(value)),
		punctuator("]"),
		diag.MissingListValueClosingBracket,
		func(open lex.Token, vals []ast.Value, closing ast.Recoverable[lex.Token]) *ast.ListValue {
			return &ast.ListValue{Bracket: open, Values: vals, ClosingBracket: closing}
		},
	)
}

func objectValue() comb.Parser[*ast.ObjectValue] {
	return comb.Delimited(
		punctuator("{"),
		comb.Many0(comb.Lazy(objectField)),
		punctuator("}"),
		diag.MissingObjectValueClosingBrace,
		func(open lex.Token, fields []*ast.ObjectField, closing ast.Recoverable[lex.Token]) *ast.ObjectValue {
			return &ast.ObjectValue{Brace: open, Fields: fields, ClosingBrace: closing}
		},
	)
}

func objectField() comb.Parser[*ast.ObjectField] {
	return comb.Seq3(
		name(),
		comb.Recover(punctuator(":"), diag.MissingObjectFieldColon),
		comb.Recover(comb.Lazy(value), diag.MissingObjectFieldValue),
		func(nm lex.Token, colon ast.Recoverable[lex.Token], val ast.Recoverable[ast.Value]) *ast.ObjectField {
			return &ast.ObjectField{Name: nm, Colon: colon, Value: val}
		},
	)
}

func namedType() comb.Parser[*ast.NamedType] {
	return comb.Map(name(), func(t lex.Token) *ast.NamedType {
		return &ast.NamedType{Name: t}
	})
}

func typeReference() comb.Parser[ast.Type] {
	base := comb.Alt(
		comb.Map(comb.Lazy(listType), func(n *ast.ListType) ast.Type { return n }),
		comb.Map(comb.Lazy(namedType), func(n *ast.NamedType) ast.Type { return n }),
	)
	return comb.Seq2(
		base,
		comb.Opt(punctuator("!")),
		func(ty ast.Type, bang lex.Token) ast.Type {
			if bang.IsValid() {
				return &ast.NonNullType{Type: ty, Bang: bang}
			}
			return ty
		},
	)
}

func listType() comb.Parser[*ast.ListType] {
	return comb.Delimited(
		punctuator("["),
		comb.Recover(comb.Lazy(typeReference), diag.MissingListTypeType),
		punctuator("]"),
		diag.MissingListTypeClosingBracket,
		func(open lex.Token, ty ast.Recoverable[ast.Type], closing ast.Recoverable[lex.Token]) *ast.ListType {
			return &ast.ListType{Bracket: open, Type: ty, ClosingBracket: closing}
		},
	)
}
