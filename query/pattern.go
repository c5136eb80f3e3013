package query

import "github.com/typeql/typeql/ast"

// And builds a conjunction of patterns.
func And(patterns ...ast.Pattern) ast.Pattern { return ast.And(patterns) }

// Or builds a disjunction of at least two branches.
func Or(branches ...ast.Pattern) (ast.Pattern, error) { return ast.Or(branches) }

// Not builds a negation of p.
func Not(p ast.Pattern) ast.Pattern { return ast.Not(p) }
