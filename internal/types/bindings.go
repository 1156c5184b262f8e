package types

import "github.com/gravelql/gravel/internal/ast"

// Bindings holds the two-level type → member indexes for one side of the
// definition/extension split. Multi-values keep insertion order, so
// duplicate members are all retrievable and first-wins policies are the
// caller's choice.
type Bindings struct {
	fieldsByType       map[string][]*ast.FieldDefinition
	fieldsByName       map[string]map[string][]*ast.FieldDefinition
	inputValuesByType  map[string][]*ast.InputValueDefinition
	inputValuesByName  map[string]map[string][]*ast.InputValueDefinition
	enumValuesByType   map[string][]*ast.EnumValueDefinition
	enumValuesByName   map[string]map[string][]*ast.EnumValueDefinition
	unionMembersByType map[string][]*ast.NamedType
	unionMembersByName map[string]map[string][]*ast.NamedType
}

func newBindings() *Bindings {
	return &Bindings{
		fieldsByType:       map[string][]*ast.FieldDefinition{},
		fieldsByName:       map[string]map[string][]*ast.FieldDefinition{},
		inputValuesByType:  map[string][]*ast.InputValueDefinition{},
		inputValuesByName:  map[string]map[string][]*ast.InputValueDefinition{},
		enumValuesByType:   map[string][]*ast.EnumValueDefinition{},
		enumValuesByName:   map[string]map[string][]*ast.EnumValueDefinition{},
		unionMembersByType: map[string][]*ast.NamedType{},
		unionMembersByName: map[string]map[string][]*ast.NamedType{},
	}
}

// FieldDefinitions returns the fields declared on ty in declaration order.
func (b *Bindings) FieldDefinitions(ty string) []*ast.FieldDefinition {
	return b.fieldsByType[ty]
}

// FieldDefinitionsByName returns the fields named name on ty.
func (b *Bindings) FieldDefinitionsByName(ty, name string) []*ast.FieldDefinition {
	return b.fieldsByName[ty][name]
}

func (b *Bindings) InputValueDefinitions(ty string) []*ast.InputValueDefinition {
	return b.inputValuesByType[ty]
}

func (b *Bindings) InputValueDefinitionsByName(ty, name string) []*ast.InputValueDefinition {
	return b.inputValuesByName[ty][name]
}

func (b *Bindings) EnumValueDefinitions(ty string) []*ast.EnumValueDefinition {
	return b.enumValuesByType[ty]
}

func (b *Bindings) EnumValueDefinitionsByName(ty, name string) []*ast.EnumValueDefinition {
	return b.enumValuesByName[ty][name]
}

func (b *Bindings) UnionMemberTypes(ty string) []*ast.NamedType {
	return b.unionMembersByType[ty]
}

func (b *Bindings) UnionMemberTypesByName(ty, name string) []*ast.NamedType {
	return b.unionMembersByName[ty][name]
}

func (b *Bindings) addField(ty string, def *ast.FieldDefinition) {
	if !def.Name.IsValid() {
		return
	}
	b.fieldsByType[ty] = append(b.fieldsByType[ty], def)
	if b.fieldsByName[ty] == nil {
		b.fieldsByName[ty] = map[string][]*ast.FieldDefinition{}
	}
	b.fieldsByName[ty][def.Name.Text] = append(b.fieldsByName[ty][def.Name.Text], def)
}

func (b *Bindings) addInputValue(ty string, def *ast.InputValueDefinition) {
	if !def.Name.IsValid() {
		return
	}
	b.inputValuesByType[ty] = append(b.inputValuesByType[ty], def)
	if b.inputValuesByName[ty] == nil {
		b.inputValuesByName[ty] = map[string][]*ast.InputValueDefinition{}
	}
	b.inputValuesByName[ty][def.Name.Text] = append(b.inputValuesByName[ty][def.Name.Text], def)
}

func (b *Bindings) addEnumValue(ty string, def *ast.EnumValueDefinition) {
	if def.Value == nil || !def.Value.Token.IsValid() {
		return
	}
	b.enumValuesByType[ty] = append(b.enumValuesByType[ty], def)
	if b.enumValuesByName[ty] == nil {
		b.enumValuesByName[ty] = map[string][]*ast.EnumValueDefinition{}
	}
	name := def.Value.Token.Text
	b.enumValuesByName[ty][name] = append(b.enumValuesByName[ty][name], def)
}

func (b *Bindings) addUnionMember(ty string, member *ast.NamedType) {
	b.unionMembersByType[ty] = append(b.unionMembersByType[ty], member)
	if b.unionMembersByName[ty] == nil {
		b.unionMembersByName[ty] = map[string][]*ast.NamedType{}
	}
	b.unionMembersByName[ty][member.Name.Text] = append(b.unionMembersByName[ty][member.Name.Text], member)
}
