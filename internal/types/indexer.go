package types

import "github.com/gravelql/gravel/internal/ast"

// Indexer is the first pass: it records every named definition and its
// members. Members are read directly off the parent definition so that
// nested occurrences (argument definitions inside fields, for example) are
// attributed to the right owner.
type Indexer struct {
	ast.BaseVisitor
	DB *Database
}

func (ix *Indexer) VisitOperationDefinition(n *ast.OperationDefinition) {
	ix.DB.Operations.add(n)
}

func (ix *Indexer) VisitFragmentDefinition(n *ast.FragmentDefinition) {
	ix.DB.Fragments.add(n)
}

func (ix *Indexer) VisitSchemaDefinition(n *ast.SchemaDefinition) {
	ix.DB.schemaDefinitions = append(ix.DB.schemaDefinitions, n)
}

func (ix *Indexer) VisitSchemaExtension(n *ast.SchemaExtension) {
	ix.DB.schemaExtensions = append(ix.DB.schemaExtensions, n)
}

func (ix *Indexer) VisitDirectiveDefinition(n *ast.DirectiveDefinition) {
	if name, ok := n.Name.Ok(); ok {
		ix.DB.directiveDefinitions[name.Text] = append(ix.DB.directiveDefinitions[name.Text], n)
	}
}

func (ix *Indexer) VisitScalarTypeDefinition(n *ast.ScalarTypeDefinition) {
	if name, ok := n.NameToken(); ok {
		ix.DB.addTypeDefinition(name.Text, n)
	}
}

func (ix *Indexer) VisitObjectTypeDefinition(n *ast.ObjectTypeDefinition) {
	name, ok := n.NameToken()
	if !ok {
		return
	}
	ix.DB.addTypeDefinition(name.Text, n)
	if n.Fields != nil {
		for _, def := range n.Fields.Definitions {
			ix.DB.Definitions.addField(name.Text, def)
		}
	}
	if n.Implements != nil {
		for _, iface := range n.Implements.Names() {
			ix.DB.addImplementation(iface.Text, name.Text)
		}
	}
}

func (ix *Indexer) VisitObjectTypeExtension(n *ast.ObjectTypeExtension) {
	name, ok := n.NameToken()
	if !ok {
		return
	}
	ix.DB.typeExtensions[name.Text] = append(ix.DB.typeExtensions[name.Text], n)
	if n.Fields != nil {
		for _, def := range n.Fields.Definitions {
			ix.DB.Extensions.addField(name.Text, def)
		}
	}
	if n.Implements != nil {
		for _, iface := range n.Implements.Names() {
			ix.DB.addImplementation(iface.Text, name.Text)
		}
	}
}

func (ix *Indexer) VisitInterfaceTypeDefinition(n *ast.InterfaceTypeDefinition) {
	name, ok := n.NameToken()
	if !ok {
		return
	}
	ix.DB.addTypeDefinition(name.Text, n)
	if n.Fields != nil {
		for _, def := range n.Fields.Definitions {
			ix.DB.Definitions.addField(name.Text, def)
		}
	}
	if n.Implements != nil {
		for _, iface := range n.Implements.Names() {
			ix.DB.addImplementation(iface.Text, name.Text)
		}
	}
}

func (ix *Indexer) VisitInterfaceTypeExtension(n *ast.InterfaceTypeExtension) {
	name, ok := n.NameToken()
	if !ok {
		return
	}
	ix.DB.typeExtensions[name.Text] = append(ix.DB.typeExtensions[name.Text], n)
	if n.Fields != nil {
		for _, def := range n.Fields.Definitions {
			ix.DB.Extensions.addField(name.Text, def)
		}
	}
	if n.Implements != nil {
		for _, iface := range n.Implements.Names() {
			ix.DB.addImplementation(iface.Text, name.Text)
		}
	}
}

func (ix *Indexer) VisitUnionTypeDefinition(n *ast.UnionTypeDefinition) {
	name, ok := n.NameToken()
	if !ok {
		return
	}
	ix.DB.addTypeDefinition(name.Text, n)
	if n.MemberTypes != nil {
		addUnionMembers(ix.DB.Definitions, name.Text, n.MemberTypes)
	}
}

func (ix *Indexer) VisitUnionTypeExtension(n *ast.UnionTypeExtension) {
	name, ok := n.NameToken()
	if !ok {
		return
	}
	ix.DB.typeExtensions[name.Text] = append(ix.DB.typeExtensions[name.Text], n)
	if n.MemberTypes != nil {
		addUnionMembers(ix.DB.Extensions, name.Text, n.MemberTypes)
	}
}

func (ix *Indexer) VisitEnumTypeDefinition(n *ast.EnumTypeDefinition) {
	name, ok := n.NameToken()
	if !ok {
		return
	}
	ix.DB.addTypeDefinition(name.Text, n)
	if n.Values != nil {
		for _, def := range n.Values.Definitions {
			ix.DB.Definitions.addEnumValue(name.Text, def)
		}
	}
}

func (ix *Indexer) VisitEnumTypeExtension(n *ast.EnumTypeExtension) {
	name, ok := n.NameToken()
	if !ok {
		return
	}
	ix.DB.typeExtensions[name.Text] = append(ix.DB.typeExtensions[name.Text], n)
	if n.Values != nil {
		for _, def := range n.Values.Definitions {
			ix.DB.Extensions.addEnumValue(name.Text, def)
		}
	}
}

func (ix *Indexer) VisitInputObjectTypeDefinition(n *ast.InputObjectTypeDefinition) {
	name, ok := n.NameToken()
	if !ok {
		return
	}
	ix.DB.addTypeDefinition(name.Text, n)
	if n.Fields != nil {
		for _, def := range n.Fields.Definitions {
			ix.DB.Definitions.addInputValue(name.Text, def)
		}
	}
}

func (ix *Indexer) VisitInputObjectTypeExtension(n *ast.InputObjectTypeExtension) {
	name, ok := n.NameToken()
	if !ok {
		return
	}
	ix.DB.typeExtensions[name.Text] = append(ix.DB.typeExtensions[name.Text], n)
	if n.Fields != nil {
		for _, def := range n.Fields.Definitions {
			ix.DB.Extensions.addInputValue(name.Text, def)
		}
	}
}

func (ix *Indexer) VisitScalarTypeExtension(n *ast.ScalarTypeExtension) {
	if name, ok := n.NameToken(); ok {
		ix.DB.typeExtensions[name.Text] = append(ix.DB.typeExtensions[name.Text], n)
	}
}

func addUnionMembers(b *Bindings, ty string, members *ast.UnionMemberTypes) {
	if first, ok := members.First.Ok(); ok {
		b.addUnionMember(ty, first)
	}
	for _, item := range members.Rest {
		if t, ok := item.Type.Ok(); ok {
			b.addUnionMember(ty, t)
		}
	}
}
