package compiler

import "github.com/gravelql/gravel/internal/ast"

// DependencyKind classifies the values definitions produce and consume.
type DependencyKind int

const (
	DependencySchema DependencyKind = iota
	DependencyType
	DependencyDirective
	// DependencyFragment is the shared executable namespace: named
	// operations and fragments both produce into it.
	DependencyFragment
	DependencyQuery
	DependencyMutation
	DependencySubscription
)

func (k DependencyKind) String() string {
	switch k {
	case DependencySchema:
		return "schema"
	case DependencyType:
		return "type"
	case DependencyDirective:
		return "directive"
	case DependencyFragment:
		return "fragment"
	case DependencyQuery:
		return "query"
	case DependencyMutation:
		return "mutation"
	case DependencySubscription:
		return "subscription"
	}
	return "unknown"
}

// Dependency is one named value a definition produces or consumes. Name is
// empty for the schema and for anonymous operations.
type Dependency struct {
	Kind DependencyKind
	Name string
}

// product returns the dependency a definition produces, if any. Definitions
// whose name is missing produce nothing; nobody can refer to them.
func product(def ast.Definition) (Dependency, bool) {
	switch d := def.(type) {
	case *ast.OperationDefinition:
		if d.Name.IsValid() {
			return Dependency{Kind: DependencyFragment, Name: d.Name.Text}, true
		}
		switch d.Kind() {
		case ast.Mutation:
			return Dependency{Kind: DependencyMutation}, true
		case ast.Subscription:
			return Dependency{Kind: DependencySubscription}, true
		default:
			return Dependency{Kind: DependencyQuery}, true
		}
	case *ast.FragmentDefinition:
		if name, ok := d.FragmentName.Ok(); ok {
			return Dependency{Kind: DependencyFragment, Name: name.Text}, true
		}
	case *ast.SchemaDefinition:
		return Dependency{Kind: DependencySchema}, true
	case *ast.SchemaExtension:
		return Dependency{Kind: DependencySchema}, true
	case *ast.DirectiveDefinition:
		if name, ok := d.Name.Ok(); ok {
			return Dependency{Kind: DependencyDirective, Name: name.Text}, true
		}
	case ast.TypeDefinition:
		if name, ok := d.NameToken(); ok {
			return Dependency{Kind: DependencyType, Name: name.Text}, true
		}
	case ast.TypeExtension:
		if name, ok := d.NameToken(); ok {
			return Dependency{Kind: DependencyType, Name: name.Text}, true
		}
	}
	return Dependency{}, false
}

// tracker collects every value a definition consumes: named type
// references, fragment spreads and directive uses.
type tracker struct {
	ast.BaseVisitor
	deps map[Dependency]struct{}
}

func (t *tracker) add(d Dependency) {
	t.deps[d] = struct{}{}
}

func (t *tracker) VisitNamedType(n *ast.NamedType) {
	t.add(Dependency{Kind: DependencyType, Name: n.Name.Text})
}

func (t *tracker) VisitFragmentSpread(n *ast.FragmentSpread) {
	if name, ok := n.FragmentName.Ok(); ok {
		t.add(Dependency{Kind: DependencyFragment, Name: name.Text})
	}
}

func (t *tracker) VisitDirective(n *ast.Directive) {
	if name, ok := n.Name.Ok(); ok {
		t.add(Dependency{Kind: DependencyDirective, Name: name.Text})
	}
}

// consumed returns the dependencies of one definition. Operations also
// consume the schema: their root types are whatever it binds.
func consumed(def ast.Definition) []Dependency {
	t := &tracker{deps: map[Dependency]struct{}{}}
	def.Traverse(t)
	if _, ok := def.(*ast.OperationDefinition); ok {
		t.add(Dependency{Kind: DependencySchema})
	}
	deps := make([]Dependency, 0, len(t.deps))
	for d := range t.deps {
		deps = append(deps, d)
	}
	return deps
}
