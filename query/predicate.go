package query

import "github.com/typeql/typeql/ast"

func comparison(op ast.ComparatorKind, v any) (ast.ValueOperation, error) {
	if variable, ok := v.(ast.Variable); ok {
		return ast.Comparison{Op: op, Var: variable}, nil
	}
	lit, err := literalFrom(v)
	if err != nil {
		return nil, err
	}
	return ast.Comparison{Op: op, Value: &lit}, nil
}

// Eq builds an `== v` value predicate. v may be a native Go value or an
// ast.Variable.
func Eq(v any) (ast.ValueOperation, error) { return comparison(ast.CmpEq, v) }

// Neq builds a `!== v` value predicate.
func Neq(v any) (ast.ValueOperation, error) { return comparison(ast.CmpNeq, v) }

// Lt builds a `< v` value predicate.
func Lt(v any) (ast.ValueOperation, error) { return comparison(ast.CmpLt, v) }

// Lte builds a `<= v` value predicate.
func Lte(v any) (ast.ValueOperation, error) { return comparison(ast.CmpLte, v) }

// Gt builds a `> v` value predicate.
func Gt(v any) (ast.ValueOperation, error) { return comparison(ast.CmpGt, v) }

// Gte builds a `>= v` value predicate.
func Gte(v any) (ast.ValueOperation, error) { return comparison(ast.CmpGte, v) }

// Contains builds a `contains v` value predicate.
func Contains(v any) (ast.ValueOperation, error) { return comparison(ast.CmpContains, v) }

// Like builds a `like v` regex value predicate.
func Like(v any) (ast.ValueOperation, error) { return comparison(ast.CmpLike, v) }

// Assign builds a direct value assignment, the shorthand form of `== v`
// used by attribute statements and `has` shorthand.
func Assign(v any) (ast.ValueOperation, error) {
	lit, err := literalFrom(v)
	if err != nil {
		return nil, err
	}
	return ast.Assignment{Value: lit}, nil
}
