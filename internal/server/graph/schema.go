package graph

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	graphql "github.com/graph-gophers/graphql-go"
)

// Each file under schema/ declares one entity type and extends Query and
// Mutation with that entity's entry points. schema.graphql holds the root
// types and the session fields.
//
//go:embed schema/*.graphql
var schemaFiles embed.FS

var sdl = mustReadSDL(schemaFiles)

func mustReadSDL(fsys fs.FS) string {
	s, err := readSDL(fsys)
	if err != nil {
		panic(err)
	}
	return s
}

func readSDL(fsys fs.FS) (string, error) {
	names, err := fs.Glob(fsys, "schema/*.graphql")
	if err != nil {
		return "", err
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", name, err)
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.Write(data)
	}
	return b.String(), nil
}

// SDL returns the schema document served to clients.
func SDL() string {
	return sdl
}

// NewSchema binds r to the blog schema. Every field must have a resolver
// method, and a root field declared by two entity files is rejected. opts
// are applied after the defaults.
func NewSchema(r *Resolver, opts ...graphql.SchemaOpt) (*graphql.Schema, error) {
	ph := panicHandler{logger: r.logger}
	base := []graphql.SchemaOpt{
		graphql.UseStringDescriptions(),
		graphql.Logger(ph),
		graphql.PanicHandler(ph),
	}
	return parseSchema(sdl, r, append(base, opts...)...)
}

func parseSchema(doc string, root any, opts ...graphql.SchemaOpt) (*graphql.Schema, error) {
	s, err := graphql.ParseSchema(doc, root, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return s, nil
}
