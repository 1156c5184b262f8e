package compiler

import (
	"context"
	"embed"
	"io/fs"
	"sort"

	"github.com/gravelql/gravel/internal/lex"
)

//go:embed std/*.graphql
var std embed.FS

// AddBuiltins registers the built-in scalars and directives as library
// documents, interning each file as "std:<name>" in sources.
func (c *Compiler) AddBuiltins(ctx context.Context, sources *lex.SourceMap) error {
	names, err := fs.Glob(std, "std/*.graphql")
	if err != nil {
		return err
	}
	sort.Strings(names)
	for _, name := range names {
		text, err := fs.ReadFile(std, name)
		if err != nil {
			return err
		}
		id := sources.Intern("std:" + name[len("std/"):])
		c.AddDocument(ctx, id, string(text), true)
	}
	return nil
}
