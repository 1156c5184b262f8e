package types

import "github.com/gravelql/gravel/internal/ast"

// scope is one entry of the type-scope stack. ok is false when the
// enclosing context could not be resolved; the false entry still gets
// pushed so that nothing below it resolves against the wrong type.
type scope struct {
	name string
	ok   bool
}

// Inferencer is the second pass: it walks executable documents with a
// type-scope stack and records, per use site, the definition that governs
// it. It never reports errors; unresolved uses are simply not recorded.
type Inferencer struct {
	ast.BaseVisitor
	db        *Database
	typeScope []scope
	argsDefs  []*ast.ArgumentsDefinition
}

func NewInferencer(db *Database) *Inferencer {
	return &Inferencer{db: db}
}

func (in *Inferencer) pushScope(s scope) {
	in.typeScope = append(in.typeScope, s)
}

func (in *Inferencer) popScope() {
	if len(in.typeScope) > 0 {
		in.typeScope = in.typeScope[:len(in.typeScope)-1]
	}
}

func (in *Inferencer) currentScope() scope {
	if len(in.typeScope) == 0 {
		return scope{}
	}
	return in.typeScope[len(in.typeScope)-1]
}

func (in *Inferencer) pushArgs(def *ast.ArgumentsDefinition) {
	in.argsDefs = append(in.argsDefs, def)
}

func (in *Inferencer) popArgs() {
	if len(in.argsDefs) > 0 {
		in.argsDefs = in.argsDefs[:len(in.argsDefs)-1]
	}
}

func (in *Inferencer) currentArgs() *ast.ArgumentsDefinition {
	if len(in.argsDefs) == 0 {
		return nil
	}
	return in.argsDefs[len(in.argsDefs)-1]
}

func (in *Inferencer) VisitOperationDefinition(n *ast.OperationDefinition) {
	in.pushScope(scope{name: in.db.RootTypeName(n.Kind()), ok: true})
}

func (in *Inferencer) PostVisitOperationDefinition(*ast.OperationDefinition) {
	in.popScope()
}

func (in *Inferencer) VisitFragmentDefinition(n *ast.FragmentDefinition) {
	in.pushScope(typeConditionScope(n.TypeCondition))
}

func (in *Inferencer) PostVisitFragmentDefinition(*ast.FragmentDefinition) {
	in.popScope()
}

func (in *Inferencer) VisitInlineFragment(n *ast.InlineFragment) {
	if n.TypeCondition == nil {
		// No type condition narrows nothing; the fragment selects on the
		// enclosing type.
		in.pushScope(in.currentScope())
		return
	}
	in.pushScope(typeConditionScope(ast.Present(n.TypeCondition)))
}

func (in *Inferencer) PostVisitInlineFragment(*ast.InlineFragment) {
	in.popScope()
}

func typeConditionScope(cond ast.Recoverable[*ast.TypeCondition]) scope {
	if c, ok := cond.Ok(); ok {
		if nt, ok := c.NamedType.Ok(); ok {
			return scope{name: nt.Name.Text, ok: true}
		}
	}
	return scope{}
}

func (in *Inferencer) VisitSelectionSet(n *ast.SelectionSet) {
	if s := in.currentScope(); s.ok {
		in.db.Inference.SelectionSetTypes.set(n, s.name)
	}
}

func (in *Inferencer) VisitField(n *ast.Field) {
	s := in.currentScope()
	name, hasName := n.Name.Ok()
	if !s.ok || !hasName {
		in.pushScope(scope{})
		in.pushArgs(nil)
		return
	}
	fd, found := in.db.FieldDefinition(s.name, name.Text)
	if !found {
		in.pushScope(scope{})
		in.pushArgs(nil)
		return
	}
	in.db.Inference.FieldDefinitions.set(n, fd)
	if n.Arguments != nil && fd.Arguments != nil {
		in.db.Inference.ArgumentsDefinitions.set(n.Arguments, fd.Arguments)
	}
	in.pushArgs(fd.Arguments)
	if ty, ok := fd.Type.Ok(); ok {
		if nt, ok := ty.NameToken(); ok {
			in.pushScope(scope{name: nt.Text, ok: true})
			return
		}
	}
	in.pushScope(scope{})
}

func (in *Inferencer) PostVisitField(*ast.Field) {
	in.popScope()
	in.popArgs()
}

func (in *Inferencer) VisitDirective(n *ast.Directive) {
	name, hasName := n.Name.Ok()
	if !hasName {
		in.pushArgs(nil)
		return
	}
	dd, found := in.db.DirectiveDefinition(name.Text)
	if !found {
		in.pushArgs(nil)
		return
	}
	in.db.Inference.DirectiveDefinitions.set(n, dd)
	if n.Arguments != nil && dd.Arguments != nil {
		in.db.Inference.ArgumentsDefinitions.set(n.Arguments, dd.Arguments)
	}
	in.pushArgs(dd.Arguments)
}

func (in *Inferencer) PostVisitDirective(*ast.Directive) {
	in.popArgs()
}

func (in *Inferencer) VisitArgument(n *ast.Argument) {
	argsDef := in.currentArgs()
	if argsDef == nil || !n.Name.IsValid() {
		return
	}
	var ivd *ast.InputValueDefinition
	for _, def := range argsDef.Definitions {
		if def.Name.Text == n.Name.Text {
			ivd = def
			break
		}
	}
	if ivd == nil {
		return
	}
	in.db.Inference.InputValueDefinitions.set(n, ivd)
	val, hasValue := n.Value.Ok()
	if !hasValue {
		return
	}
	if ty, ok := ivd.Type.Ok(); ok {
		in.db.Inference.ValueTypes.set(val, ty)
	}
	if ivd.DefaultValue != nil {
		if def, ok := ivd.DefaultValue.Value.Ok(); ok {
			in.db.Inference.DefaultValues.set(val, def)
		}
	}
}

func (in *Inferencer) VisitListValue(n *ast.ListValue) {
	ty, ok := in.db.Inference.ValueTypes.Get(n)
	if !ok {
		return
	}
	elem, ok := ast.ListItemType(ty)
	if !ok {
		return
	}
	for _, val := range n.Values {
		in.db.Inference.ValueTypes.set(val, elem)
	}
}

func (in *Inferencer) VisitObjectValue(n *ast.ObjectValue) {
	ty, ok := in.db.Inference.ValueTypes.Get(n)
	if !ok {
		return
	}
	name, ok := ty.NameToken()
	if !ok {
		return
	}
	for _, field := range n.Fields {
		ivd, found := in.db.InputValueDefinition(name.Text, field.Name.Text)
		if !found {
			continue
		}
		val, hasValue := field.Value.Ok()
		if !hasValue {
			continue
		}
		if fieldTy, ok := ivd.Type.Ok(); ok {
			in.db.Inference.ValueTypes.set(val, fieldTy)
		}
	}
}

func (in *Inferencer) VisitVariableDefinition(n *ast.VariableDefinition) {
	if n.DefaultValue == nil {
		return
	}
	val, hasValue := n.DefaultValue.Value.Ok()
	if !hasValue {
		return
	}
	if ty, ok := n.Type.Ok(); ok {
		in.db.Inference.ValueTypes.set(val, ty)
	}
}

func (in *Inferencer) VisitFragmentSpread(n *ast.FragmentSpread) {
	if name, ok := n.FragmentName.Ok(); ok {
		in.db.Usages.addFragmentSpread(name.Text, n)
	}
}
