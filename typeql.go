// Package typeql parses, validates and prints TypeQL queries and patterns.
// It performs no I/O and holds no persistent state: every entry point is a
// pure function from source text (or an ast.Query/ast.Pattern) to its
// counterpart.
package typeql

import (
	"github.com/typeql/typeql/ast"
	"github.com/typeql/typeql/internal/construct"
	"github.com/typeql/typeql/internal/grammar"
	"github.com/typeql/typeql/internal/printer"
	"github.com/typeql/typeql/internal/validate"
)

// ParseError reports an input that parsed grammatically but resolves to the
// wrong number of queries or patterns — the EmptyInput/MultipleQueries
// boundary cases §7 calls out separately from a syntax error.
type ParseError struct {
	Kind    string
	Message string
}

func (e ParseError) Error() string {
	return e.Kind + ": " + e.Message
}

// Parse parses exactly one query from text, running construction and
// validation. It returns a MultipleQueries ParseError if text holds more
// than one semicolon-terminated query, and EmptyInput if it holds none.
func Parse(text string) (ast.Query, error) {
	queries, err := ParseList(text)
	if err != nil {
		return nil, err
	}
	switch len(queries) {
	case 0:
		return nil, ParseError{Kind: "EmptyInput", Message: "input contains no query"}
	case 1:
		return queries[0], nil
	default:
		return nil, ParseError{Kind: "MultipleQueries", Message: "input contains more than one query"}
	}
}

// ParseList parses zero or more semicolon-terminated queries from text. Each
// query is validated (rule shape, compute matrix, get/group variable
// binding) before ParseList returns.
func ParseList(text string) ([]ast.Query, error) {
	tree, err := grammar.ParseQueryList(text)
	if err != nil {
		return nil, err
	}
	queries, err := construct.BuildQueryList(tree)
	if err != nil {
		return nil, err
	}
	for _, q := range queries {
		if err := validateQuery(q); err != nil {
			return nil, err
		}
	}
	return queries, nil
}

// ParsePattern parses a single pattern: a `{ ... }` group, a disjunction, a
// negation, or a bare statement.
func ParsePattern(text string) (ast.Pattern, error) {
	patterns, err := ParsePatterns(text)
	if err != nil {
		return nil, err
	}
	if len(patterns) != 1 {
		return nil, ParseError{Kind: "EmptyInput", Message: "expected exactly one pattern"}
	}
	return patterns[0], nil
}

// ParsePatterns parses zero or more semicolon-separated patterns from text.
func ParsePatterns(text string) ([]ast.Pattern, error) {
	tree, err := grammar.ParsePatternList(text)
	if err != nil {
		return nil, err
	}
	return construct.BuildPatternList(tree)
}

// String renders q: pretty-printed (one clause per line) when pretty is
// true, a single compact line otherwise. String(q, true) and
// String(q, false) both round-trip through Parse to an equal query.
func String(q ast.Query, pretty bool) string {
	return printer.Print(q, pretty)
}

// PatternString renders a single pattern the same way String renders a
// query.
func PatternString(p ast.Pattern, pretty bool) string {
	return printer.PrintPattern(p, pretty)
}

func validateQuery(q ast.Query) error {
	switch query := q.(type) {
	case *ast.ComputeQuery:
		return validate.Compute(query)
	case *ast.GetQuery:
		return validate.Get(query)
	case *ast.GroupQuery:
		return validate.Group(query)
	case *ast.AggregateQuery:
		return validate.Get(query.Get)
	case *ast.GroupAggregateQuery:
		return validate.Group(query.Group)
	case *ast.DefineQuery:
		return validateRules(query.Statements)
	case *ast.UndefineQuery:
		return validateRules(query.Statements)
	}
	return nil
}

func validateRules(statements []*ast.TypeStatement) error {
	for _, s := range statements {
		rule, ok := ast.RuleFromStatement(s)
		if !ok {
			continue
		}
		if err := validate.Rule(rule); err != nil {
			return err
		}
	}
	return nil
}
