package validate

import (
	"testing"

	"github.com/typeql/typeql/ast"
)

func personPattern(t *testing.T, name string) ast.Pattern {
	t.Helper()
	s, err := ast.NewThingStatement(ast.NamedConcept{Name: name}, ast.IsaConstraint{Type: ast.Label{Name: "person"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return ast.StatementPattern{Statement: s}
}

func TestGet_FilterBoundVariableOK(t *testing.T) {
	q := &ast.GetQuery{
		Match:  &ast.MatchClause{Patterns: []ast.Pattern{personPattern(t, "x")}},
		Filter: []string{"x"},
	}
	if err := Get(q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGet_FilterUnboundVariableErrors(t *testing.T) {
	q := &ast.GetQuery{
		Match:  &ast.MatchClause{Patterns: []ast.Pattern{personPattern(t, "x")}},
		Filter: []string{"y"},
	}
	if err := Get(q); err == nil {
		t.Fatal("expected an error filtering on an unbound variable")
	}
}

func personWithNamePattern(t *testing.T, concept, attr string) ast.Pattern {
	t.Helper()
	nameLabel := ast.Label{Name: "name"}
	s, err := ast.NewThingStatement(ast.NamedConcept{Name: concept},
		ast.IsaConstraint{Type: ast.Label{Name: "person"}},
		ast.HasConstraint{AttrType: &nameLabel, Attr: ast.NamedConcept{Name: attr}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return ast.StatementPattern{Statement: s}
}

func TestGet_SortExcludedFromNonEmptyFilterErrors(t *testing.T) {
	q := &ast.GetQuery{
		Match:  &ast.MatchClause{Patterns: []ast.Pattern{personWithNamePattern(t, "x", "n")}},
		Filter: []string{"x"},
		Sort:   &ast.SortSpec{Var: "n", Order: ast.SortAsc},
	}
	if err := Get(q); err == nil {
		t.Fatal("expected an error sorting on a variable bound in match but excluded from the get filter")
	}
}

func TestGet_SortInFilterOK(t *testing.T) {
	q := &ast.GetQuery{
		Match:  &ast.MatchClause{Patterns: []ast.Pattern{personWithNamePattern(t, "x", "n")}},
		Filter: []string{"x", "n"},
		Sort:   &ast.SortSpec{Var: "n", Order: ast.SortAsc},
	}
	if err := Get(q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGet_SortUnboundVariableErrors(t *testing.T) {
	q := &ast.GetQuery{
		Match: &ast.MatchClause{Patterns: []ast.Pattern{personPattern(t, "x")}},
		Sort:  &ast.SortSpec{Var: "y", Order: ast.SortAsc},
	}
	if err := Get(q); err == nil {
		t.Fatal("expected an error sorting on an unbound variable")
	}
}

func TestGroup_UnboundGroupVariableErrors(t *testing.T) {
	q := &ast.GroupQuery{
		Get: &ast.GetQuery{Match: &ast.MatchClause{Patterns: []ast.Pattern{personPattern(t, "x")}}},
		Var: "y",
	}
	if err := Group(q); err == nil {
		t.Fatal("expected an error grouping on an unbound variable")
	}
}

func TestGroup_BoundGroupVariableOK(t *testing.T) {
	q := &ast.GroupQuery{
		Get: &ast.GetQuery{Match: &ast.MatchClause{Patterns: []ast.Pattern{personPattern(t, "x")}}},
		Var: "x",
	}
	if err := Group(q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
