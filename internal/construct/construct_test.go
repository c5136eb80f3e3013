package construct

import (
	"testing"

	"github.com/typeql/typeql/ast"
	"github.com/typeql/typeql/internal/grammar"
)

func TestParseDate_RejectsNonISO(t *testing.T) {
	if _, err := parseDate("01/02/2020"); err == nil {
		t.Fatal("expected an error for a non-ISO date")
	}
	tm, err := parseDate("2020-01-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tm.Year() != 2020 || tm.Month() != 1 || tm.Day() != 2 {
		t.Fatalf("unexpected parsed date: %v", tm)
	}
}

func TestParseDateTime_RejectsSubMillisecondPrecision(t *testing.T) {
	_, err := parseDateTime("2020-01-02T03:04:05.123456")
	if err == nil {
		t.Fatal("expected an error for sub-millisecond precision")
	}
	ce, ok := err.(ConstructError)
	if !ok || ce.Kind != "InvalidDateTimeNanos" {
		t.Fatalf("expected InvalidDateTimeNanos, got %#v", err)
	}
}

func TestParseDateTime_AcceptsMillisecondPrecision(t *testing.T) {
	tm, err := parseDateTime("2020-01-02T03:04:05.123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tm.Nanosecond() != 123_000_000 {
		t.Fatalf("expected 123ms, got %v", tm.Nanosecond())
	}
}

func TestParseDateTime_PadsMissingFraction(t *testing.T) {
	tm, err := parseDateTime("2020-01-02T03:04:05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tm.Nanosecond() != 0 {
		t.Fatalf("expected zero nanoseconds for a datetime with no fraction, got %v", tm.Nanosecond())
	}
}

func TestBuildValuePredicate_BareVarOnThingIsNeqVar(t *testing.T) {
	node := &grammar.ValuePredicateNode{
		Var: &grammar.HeadNode{Var: &grammar.VarNode{Concept: "$y"}},
	}
	c, err := buildValuePredicate(node, ctxThingOrRelation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.(ast.NeqVarConstraint); !ok {
		t.Fatalf("expected a bare `!== $other`-shaped predicate on a thing statement to build a NeqVarConstraint, got %#v", c)
	}
}

func TestBuildValuePredicate_ComparatorVarOnAttributeIsComparison(t *testing.T) {
	node := &grammar.ValuePredicateNode{
		Comparator: "==",
		Var:        &grammar.HeadNode{Var: &grammar.VarNode{Value: "?y"}},
	}
	c, err := buildValuePredicate(node, ctxAttribute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vc, ok := c.(ast.ValueConstraint)
	if !ok {
		t.Fatalf("expected a ValueConstraint on an attribute statement, got %#v", c)
	}
	cmp, ok := vc.Operation.(ast.Comparison)
	if !ok || cmp.Op != ast.CmpEq {
		t.Fatalf("expected an == comparison, got %#v", vc.Operation)
	}
}

func TestBuildValuePredicate_BareLiteralIsAssignment(t *testing.T) {
	s := "Alice"
	node := &grammar.ValuePredicateNode{Literal: &grammar.LiteralNode{Str: &s}}
	c, err := buildValuePredicate(node, ctxAttribute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vc, ok := c.(ast.ValueConstraint)
	if !ok {
		t.Fatalf("expected a ValueConstraint, got %#v", c)
	}
	if _, ok := vc.Operation.(ast.Assignment); !ok {
		t.Fatalf("expected a bare literal to build an Assignment, got %#v", vc.Operation)
	}
}
