// Package types builds a queryable semantic model from parsed documents:
// name-indexed definition tables, member indexes split by definition versus
// extension, and identity-keyed inference caches resolving uses to the
// definitions that govern them. Lookups never fail; an unresolved name is an
// empty result.
package types

import "github.com/gravelql/gravel/internal/ast"

type Database struct {
	// Definitions and Extensions hold member indexes contributed by type
	// definitions and type extensions respectively.
	Definitions *Bindings
	Extensions  *Bindings
	Inference   *Inference
	Operations  *Operations
	Fragments   *Fragments
	Usages      *Usages

	typeNames            []string
	typeDefinitions      map[string][]ast.TypeDefinition
	typeExtensions       map[string][]ast.TypeExtension
	directiveDefinitions map[string][]*ast.DirectiveDefinition
	schemaDefinitions    []*ast.SchemaDefinition
	schemaExtensions     []*ast.SchemaExtension
	implementations      map[string][]string
}

func NewDatabase() *Database {
	return &Database{
		Definitions:          newBindings(),
		Extensions:           newBindings(),
		Inference:            newInference(),
		Operations:           &Operations{byName: map[string][]*ast.OperationDefinition{}},
		Fragments:            &Fragments{byName: map[string][]*ast.FragmentDefinition{}},
		Usages:               &Usages{fragmentSpreads: newInferredMany[string, *ast.FragmentSpread]()},
		typeDefinitions:      map[string][]ast.TypeDefinition{},
		typeExtensions:       map[string][]ast.TypeExtension{},
		directiveDefinitions: map[string][]*ast.DirectiveDefinition{},
		implementations:      map[string][]string{},
	}
}

// Build indexes and infers every document into a fresh database. Indexing
// runs over all documents before inference so cross-document references
// resolve regardless of order.
func Build(docs ...*ast.Document) *Database {
	db := NewDatabase()
	for _, doc := range docs {
		db.Index(doc)
	}
	for _, doc := range docs {
		db.Infer(doc)
	}
	return db
}

// Index records the names and members defined by doc.
func (db *Database) Index(doc *ast.Document) {
	doc.Traverse(&Indexer{DB: db})
}

// Infer resolves the uses inside doc against the indexed names.
func (db *Database) Infer(doc *ast.Document) {
	doc.Traverse(NewInferencer(db))
}

// TypeNames returns every defined type name in first-definition order.
func (db *Database) TypeNames() []string {
	return db.typeNames
}

// TypeDefinitions returns every definition of name in insertion order;
// duplicates are all retained.
func (db *Database) TypeDefinitions(name string) []ast.TypeDefinition {
	return db.typeDefinitions[name]
}

// TypeExtensions returns every extension of name in insertion order.
func (db *Database) TypeExtensions(name string) []ast.TypeExtension {
	return db.typeExtensions[name]
}

// HasType reports whether name is defined at least once.
func (db *Database) HasType(name string) bool {
	return len(db.typeDefinitions[name]) > 0
}

// DirectiveDefinitions returns every definition of directive name.
func (db *Database) DirectiveDefinitions(name string) []*ast.DirectiveDefinition {
	return db.directiveDefinitions[name]
}

func (db *Database) SchemaDefinitions() []*ast.SchemaDefinition {
	return db.schemaDefinitions
}

func (db *Database) SchemaExtensions() []*ast.SchemaExtension {
	return db.schemaExtensions
}

// Implementations returns the names of types implementing interface name,
// in definition order.
func (db *Database) Implementations(name string) []string {
	return db.implementations[name]
}

// FieldDefinition resolves a field by type and name, preferring definitions
// over extensions and the earliest declaration among duplicates.
func (db *Database) FieldDefinition(ty, name string) (*ast.FieldDefinition, bool) {
	if defs := db.Definitions.FieldDefinitionsByName(ty, name); len(defs) > 0 {
		return defs[0], true
	}
	if defs := db.Extensions.FieldDefinitionsByName(ty, name); len(defs) > 0 {
		return defs[0], true
	}
	return nil, false
}

// InputValueDefinition resolves an input object field by type and name.
func (db *Database) InputValueDefinition(ty, name string) (*ast.InputValueDefinition, bool) {
	if defs := db.Definitions.InputValueDefinitionsByName(ty, name); len(defs) > 0 {
		return defs[0], true
	}
	if defs := db.Extensions.InputValueDefinitionsByName(ty, name); len(defs) > 0 {
		return defs[0], true
	}
	return nil, false
}

// DirectiveDefinition resolves a directive by name.
func (db *Database) DirectiveDefinition(name string) (*ast.DirectiveDefinition, bool) {
	if defs := db.directiveDefinitions[name]; len(defs) > 0 {
		return defs[0], true
	}
	return nil, false
}

// RootTypeName returns the root object type for an operation kind: the name
// bound by a schema definition or extension when one exists, the
// conventional name otherwise.
func (db *Database) RootTypeName(kind ast.OperationKind) string {
	for _, sd := range db.schemaDefinitions {
		if roots, ok := sd.RootOperationDefinitions.Ok(); ok {
			if name, ok := rootNameFor(roots, kind); ok {
				return name
			}
		}
	}
	for _, se := range db.schemaExtensions {
		if se.RootOperationDefinitions != nil {
			if name, ok := rootNameFor(se.RootOperationDefinitions, kind); ok {
				return name
			}
		}
	}
	switch kind {
	case ast.Mutation:
		return "Mutation"
	case ast.Subscription:
		return "Subscription"
	default:
		return "Query"
	}
}

func rootNameFor(roots *ast.RootOperationTypeDefinitions, kind ast.OperationKind) (string, bool) {
	for _, def := range roots.Definitions {
		if def.OperationType.Kind != kind {
			continue
		}
		if nt, ok := def.NamedType.Ok(); ok {
			return nt.Name.Text, true
		}
	}
	return "", false
}

func (db *Database) addTypeDefinition(name string, def ast.TypeDefinition) {
	if len(db.typeDefinitions[name]) == 0 {
		db.typeNames = append(db.typeNames, name)
	}
	db.typeDefinitions[name] = append(db.typeDefinitions[name], def)
}

func (db *Database) addImplementation(iface, ty string) {
	db.implementations[iface] = append(db.implementations[iface], ty)
}

// Operations indexes operation definitions by name; anonymous operations
// appear only in All.
type Operations struct {
	all    []*ast.OperationDefinition
	byName map[string][]*ast.OperationDefinition
}

func (o *Operations) All() []*ast.OperationDefinition {
	return o.all
}

func (o *Operations) ByName(name string) []*ast.OperationDefinition {
	return o.byName[name]
}

func (o *Operations) add(def *ast.OperationDefinition) {
	o.all = append(o.all, def)
	if def.Name.IsValid() {
		o.byName[def.Name.Text] = append(o.byName[def.Name.Text], def)
	}
}

// Fragments indexes fragment definitions by name.
type Fragments struct {
	all    []*ast.FragmentDefinition
	byName map[string][]*ast.FragmentDefinition
}

func (f *Fragments) All() []*ast.FragmentDefinition {
	return f.all
}

func (f *Fragments) ByName(name string) []*ast.FragmentDefinition {
	return f.byName[name]
}

func (f *Fragments) add(def *ast.FragmentDefinition) {
	f.all = append(f.all, def)
	if name, ok := def.FragmentName.Ok(); ok {
		f.byName[name.Text] = append(f.byName[name.Text], def)
	}
}

// Usages records where names are used, keyed by name so lookups survive the
// referenced definition being absent.
type Usages struct {
	fragmentSpreads *InferredMany[string, *ast.FragmentSpread]
}

// FragmentSpreads returns every spread of fragment name in traversal order.
func (u *Usages) FragmentSpreads(name string) []*ast.FragmentSpread {
	return u.fragmentSpreads.Get(name)
}

func (u *Usages) addFragmentSpread(name string, spread *ast.FragmentSpread) {
	u.fragmentSpreads.add(name, spread)
}
