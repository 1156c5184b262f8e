package types

import "github.com/gravelql/gravel/internal/ast"

// Inference holds the identity-keyed resolutions the Inferencer computes.
// Keys are the use-site nodes themselves, never names.
type Inference struct {
	// FieldDefinitions maps a selected field to its definition.
	FieldDefinitions *Inferred[*ast.Field, *ast.FieldDefinition]
	// SelectionSetTypes maps a selection set to the type it selects on.
	SelectionSetTypes *Inferred[*ast.SelectionSet, string]
	// ArgumentsDefinitions maps an argument list to the arguments
	// definition it must satisfy.
	ArgumentsDefinitions *Inferred[*ast.Arguments, *ast.ArgumentsDefinition]
	// InputValueDefinitions maps one argument to its input value definition.
	InputValueDefinitions *Inferred[*ast.Argument, *ast.InputValueDefinition]
	// ValueTypes maps a value to the type expected at its position,
	// cascading into list elements and object fields.
	ValueTypes *Inferred[ast.Value, ast.Type]
	// DefaultValues maps an argument value to the definition-side default
	// for the same slot.
	DefaultValues *Inferred[ast.Value, ast.Value]
	// DirectiveDefinitions maps a directive use to its definition.
	DirectiveDefinitions *Inferred[*ast.Directive, *ast.DirectiveDefinition]
}

func newInference() *Inference {
	return &Inference{
		FieldDefinitions:      newInferred[*ast.Field, *ast.FieldDefinition](),
		SelectionSetTypes:     newInferred[*ast.SelectionSet, string](),
		ArgumentsDefinitions:  newInferred[*ast.Arguments, *ast.ArgumentsDefinition](),
		InputValueDefinitions: newInferred[*ast.Argument, *ast.InputValueDefinition](),
		ValueTypes:            newInferred[ast.Value, ast.Type](),
		DefaultValues:         newInferred[ast.Value, ast.Value](),
		DirectiveDefinitions:  newInferred[*ast.Directive, *ast.DirectiveDefinition](),
	}
}
