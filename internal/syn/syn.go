package syn

import (
	"github.com/gravelql/gravel/internal/ast"
	"github.com/gravelql/gravel/internal/comb"
	"github.com/gravelql/gravel/internal/lex"
)

func document() comb.Parser[*ast.Document] {
	return comb.Map(comb.Many0(comb.Lazy(definition)), func(defs []ast.Definition) *ast.Document {
		return &ast.Document{Definitions: defs}
	})
}

// definition tries every kind of definition in order. Specific prefixes come
// first; the `extend` forms are distinguished by their second keyword, so a
// wrong guess fails fast against the surrounding recovery point.
func definition() comb.Parser[ast.Definition] {
	return comb.Alt(
		asDefinition(operationDefinition()),
		asDefinition(fragmentDefinition()),
		asDefinition(schemaDefinition()),
		asDefinition(scalarTypeDefinition()),
		asDefinition(objectTypeDefinition()),
		asDefinition(interfaceTypeDefinition()),
		asDefinition(unionTypeDefinition()),
		asDefinition(enumTypeDefinition()),
		asDefinition(inputObjectTypeDefinition()),
		asDefinition(directiveDefinition()),
		asDefinition(schemaExtension()),
		asDefinition(scalarTypeExtension()),
		asDefinition(objectTypeExtension()),
		asDefinition(interfaceTypeExtension()),
		asDefinition(unionTypeExtension()),
		asDefinition(enumTypeExtension()),
		asDefinition(inputObjectTypeExtension()),
	)
}

func asDefinition[T ast.Definition](p comb.Parser[T]) comb.Parser[ast.Definition] {
	return comb.Map(p, func(n T) ast.Definition { return n })
}

// ParseDocument lexes and parses one document. It never fails: malformed
// regions surface as Missing slots in the tree, and the second return value
// holds every token no production claimed (skipped during recovery or
// trailing after the last definition).
func ParseDocument(source lex.SourceID, text string) (*ast.Document, []lex.Token) {
	return ParseTokens(lex.Lex(source, text))
}

// ParseTokens parses an already-lexed token buffer.
func ParseTokens(tokens []lex.Token) (*ast.Document, []lex.Token) {
	out, doc, err := document().Parse(comb.NewStream(tokens), comb.EOF)
	if err != nil {
		// Many0 at the top level never hard-fails; this is unreachable but
		// keeps the contract total.
		return &ast.Document{}, tokens
	}
	return doc, out.Drain()
}
