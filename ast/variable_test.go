package ast

import "testing"

func TestVariablesEqual_NamedConcept(t *testing.T) {
	a := NamedConcept{Name: "x"}
	b := NamedConcept{Name: "x"}
	if !VariablesEqual(a, b) {
		t.Fatal("two NamedConcept variables with the same name should compare equal")
	}
}

func TestVariablesEqual_DifferentKindsNeverEqual(t *testing.T) {
	concept := NamedConcept{Name: "x"}
	value := NamedValue{Name: "x"}
	if VariablesEqual(concept, value) {
		t.Fatal("a named-concept and a named-value variable sharing a name must not compare equal")
	}
}

func TestVariablesEqual_AnonymousAlwaysDistinct(t *testing.T) {
	a := NewAnonymous(false)
	b := NewAnonymous(false)
	if VariablesEqual(a, b) {
		t.Fatal("two distinct *Anonymous values must never compare equal")
	}
	if !VariablesEqual(a, a) {
		t.Fatal("an *Anonymous value must compare equal to itself")
	}
}

func TestLabel_ScopedName(t *testing.T) {
	unscoped := Label{Name: "spouse"}
	if got := unscoped.ScopedName(); got != "spouse" {
		t.Fatalf("expected unscoped ScopedName %q, got %q", "spouse", got)
	}
	scoped := Label{Name: "spouse", Scope: "marriage"}
	if got := scoped.ScopedName(); got != "marriage:spouse" {
		t.Fatalf("expected scoped ScopedName %q, got %q", "marriage:spouse", got)
	}
}
