package validate

import (
	"testing"

	"github.com/typeql/typeql/ast"
)

func buildTestRule(t *testing.T, when ast.Pattern, then ast.Statement) *ast.Rule {
	t.Helper()
	stmt, err := ast.NewTypeStatement(ast.Label{Name: "my-rule"},
		ast.SubConstraint{Type: ast.Label{Name: "rule"}},
		ast.WhenConstraint{Pattern: when},
		ast.ThenConstraint{Statement: then},
	)
	if err != nil {
		t.Fatalf("unexpected error building rule statement: %v", err)
	}
	rule, ok := ast.RuleFromStatement(stmt)
	if !ok {
		t.Fatal("expected RuleFromStatement to recognize a when/then statement")
	}
	return rule
}

func TestRule_ValidHasConclusion(t *testing.T) {
	when := personPattern(t, "x")
	attr, err := ast.NewAttributeStatement(ast.NewAnonymous(false), ast.ValueConstraint{
		Operation: ast.Assignment{Value: ast.Literal{Kind: ast.LiteralBool, Bool: true}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	then, err := ast.NewThingStatement(ast.NamedConcept{Name: "x"}, ast.HasConstraint{
		AttrType: &ast.Label{Name: "verified"},
		Value:    attr,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rule := buildTestRule(t, when, then)
	if err := Rule(rule); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRule_NegationInWhenRejected(t *testing.T) {
	when := ast.And([]ast.Pattern{personPattern(t, "x"), ast.Not(personPattern(t, "y"))})
	then, err := ast.NewThingStatement(ast.NamedConcept{Name: "x"}, ast.HasConstraint{
		AttrType: &ast.Label{Name: "verified"},
		Attr:     ast.NamedConcept{Name: "x"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rule := buildTestRule(t, when, then)
	if err := Rule(rule); err == nil {
		t.Fatal("expected an error: when clause contains a negation")
	}
}

func TestRule_ThenUnboundVariableRejected(t *testing.T) {
	when := personPattern(t, "x")
	then, err := ast.NewThingStatement(ast.NamedConcept{Name: "z"}, ast.HasConstraint{
		AttrType: &ast.Label{Name: "verified"},
		Attr:     ast.NamedConcept{Name: "z"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rule := buildTestRule(t, when, then)
	if err := Rule(rule); err == nil {
		t.Fatal("expected an error: then references a variable never bound in when")
	}
}

func TestRule_ThenRequiresExplicitRoles(t *testing.T) {
	when := ast.And([]ast.Pattern{personPattern(t, "x"), personPattern(t, "y")})
	then, err := ast.NewRelationStatement(ast.NewAnonymous(false), ast.RelationConstraint{
		RolePlayers: []ast.RolePlayer{
			{Player: ast.NamedConcept{Name: "x"}},
			{Role: &ast.Label{Name: "partner"}, Player: ast.NamedConcept{Name: "y"}},
		},
	}, ast.IsaConstraint{Type: ast.Label{Name: "partnership"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rule := buildTestRule(t, when, then)
	if err := Rule(rule); err == nil {
		t.Fatal("expected an error: relation conclusion has a role player with no explicit role")
	}
}
