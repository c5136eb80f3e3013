package validate

import (
	"fmt"

	"github.com/typeql/typeql/ast"
)

// GetError reports a get query whose filter/sort references a variable the
// match clause never binds.
type GetError struct {
	Kind    string
	Message string
}

func (e GetError) Error() string {
	return fmt.Sprintf("invalid get (%s): %s", e.Kind, e.Message)
}

// Get checks that every variable named in a get query's filter clause is
// bound by its match clause, and that its sort variable is in the filter
// (or, when the filter is empty, bound by the match).
func Get(q *ast.GetQuery) error {
	bound := map[string]bool{}
	for _, p := range q.Match.Patterns {
		for name := range ast.NamedVariables(p) {
			bound[name] = true
		}
	}
	for _, name := range q.Filter {
		if !bound[name] {
			return GetError{Kind: "InvalidGet", Message: fmt.Sprintf("get references unbound variable $%s", name)}
		}
	}
	if q.Sort != nil {
		if len(q.Filter) > 0 {
			if !containsString(q.Filter, q.Sort.Var) {
				return GetError{Kind: "InvalidGet", Message: fmt.Sprintf("sort variable $%s must be in the get filter", q.Sort.Var)}
			}
		} else if !bound[q.Sort.Var] {
			return GetError{Kind: "InvalidGet", Message: fmt.Sprintf("sort references unbound variable $%s", q.Sort.Var)}
		}
	}
	return nil
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// Group checks a group query's grouping variable the same way.
func Group(q *ast.GroupQuery) error {
	if err := Get(q.Get); err != nil {
		return err
	}
	bound := map[string]bool{}
	for _, p := range q.Get.Match.Patterns {
		for name := range ast.NamedVariables(p) {
			bound[name] = true
		}
	}
	if !bound[q.Var] {
		return GetError{Kind: "InvalidGet", Message: fmt.Sprintf("group references unbound variable $%s", q.Var)}
	}
	return nil
}
