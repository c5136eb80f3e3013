// Package query is the programmatic Builder API (§6.1/C8): constructing
// ast.Query/ast.Pattern/ast.Statement values directly, for callers that
// would rather compose a query in Go than assemble and parse TypeQL text.
// Every constructor here is a thin, validating wrapper over the ast package.
package query

import "github.com/typeql/typeql/ast"

// Var returns a named concept variable reference, `$name`.
func Var(name string) ast.Variable { return ast.NamedConcept{Name: name} }

// ValVar returns a named value variable reference, `?name`.
func ValVar(name string) ast.Variable { return ast.NamedValue{Name: name} }

// Type returns an unscoped type label.
func Type(name string) ast.Label { return ast.Label{Name: name} }

// ScopedType returns a relation-scoped role label, `scope:name`.
func ScopedType(scope, name string) ast.Label { return ast.Label{Scope: scope, Name: name} }

// Anon returns a fresh hidden anonymous variable, `$_`.
func Anon() ast.Variable { return ast.NewAnonymous(false) }
