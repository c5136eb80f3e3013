package query

import (
	"fmt"
	"time"

	"github.com/typeql/typeql/ast"
)

// BuilderError reports a value the Builder API cannot turn into a literal or
// a constraint it cannot assemble.
type BuilderError struct {
	Kind    string
	Message string
}

func (e BuilderError) Error() string {
	return fmt.Sprintf("builder error (%s): %s", e.Kind, e.Message)
}

// literalFrom converts a native Go value into an ast.Literal. Accepted types
// are string, int64 (and int), float64, bool and time.Time (stored as a
// LiteralDateTime).
func literalFrom(v any) (ast.Literal, error) {
	switch val := v.(type) {
	case ast.Literal:
		return val, nil
	case string:
		return ast.Literal{Kind: ast.LiteralString, Str: val}, nil
	case int:
		return ast.Literal{Kind: ast.LiteralLong, Long: int64(val)}, nil
	case int64:
		return ast.Literal{Kind: ast.LiteralLong, Long: val}, nil
	case float64:
		return ast.Literal{Kind: ast.LiteralDouble, Double: val}, nil
	case bool:
		return ast.Literal{Kind: ast.LiteralBool, Bool: val}, nil
	case time.Time:
		return ast.Literal{Kind: ast.LiteralDateTime, Time: val}, nil
	}
	return ast.Literal{}, BuilderError{Kind: "InvalidCasting", Message: fmt.Sprintf("%T is not a supported literal value", v)}
}
