package typeql_test

import (
	"testing"

	"github.com/typeql/typeql"
)

func mustParse(t *testing.T, text string) {
	t.Helper()
	q, err := typeql.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", text, err)
	}
	printed := typeql.String(q, true)
	again, err := typeql.Parse(printed)
	if err != nil {
		t.Fatalf("re-parsing printed output failed: %v\noutput was:\n%s", err, printed)
	}
	if typeql.String(again, false) != typeql.String(q, false) {
		t.Fatalf("round-trip mismatch:\nfirst:  %s\nsecond: %s", typeql.String(q, false), typeql.String(again, false))
	}
}

func TestParse_Insert(t *testing.T) {
	mustParse(t, `insert $x isa person, has name "Alice";`)
}

func TestParse_MatchGet(t *testing.T) {
	mustParse(t, `match $x isa person, has name $n; get $x, $n; sort $n asc; limit 10;`)
}

func TestParse_MatchGetAggregate(t *testing.T) {
	mustParse(t, `match $x isa person; get $x; count;`)
}

func TestParse_Define(t *testing.T) {
	mustParse(t, `define person sub entity, has name, plays spouse; marriage sub relation, relates spouse;`)
}

func TestParse_DefineRule(t *testing.T) {
	mustParse(t, `define transitive-parentage sub rule, when { ($x, $y) isa parentof; ($y, $z) isa parentof; }, then { ($x, $z) isa parentof; };`)
}

func TestParse_Compute(t *testing.T) {
	mustParse(t, `compute path in [person, relationship] from A to B;`)
}

func TestParse_Negation(t *testing.T) {
	mustParse(t, `match $x isa person; not { $x has name "Bob"; }; get $x;`)
}

func TestParse_Disjunction(t *testing.T) {
	mustParse(t, `match $x isa person; { $x has age 30; } or { $x has age 40; }; get $x;`)
}

func TestParse_EmptyInputError(t *testing.T) {
	_, err := typeql.Parse("")
	if err == nil {
		t.Fatal("expected an error parsing empty input")
	}
	perr, ok := err.(typeql.ParseError)
	if !ok || perr.Kind != "EmptyInput" {
		t.Fatalf("expected EmptyInput ParseError, got %#v", err)
	}
}

func TestParse_MultipleQueriesError(t *testing.T) {
	_, err := typeql.Parse(`insert $x isa person; insert $y isa person;`)
	if err == nil {
		t.Fatal("expected an error parsing two queries through Parse")
	}
	perr, ok := err.(typeql.ParseError)
	if !ok || perr.Kind != "MultipleQueries" {
		t.Fatalf("expected MultipleQueries ParseError, got %#v", err)
	}
}

func TestParseList(t *testing.T) {
	queries, err := typeql.ParseList(`insert $x isa person; insert $y isa company;`)
	if err != nil {
		t.Fatalf("ParseList failed: %v", err)
	}
	if len(queries) != 2 {
		t.Fatalf("expected 2 queries, got %d", len(queries))
	}
}

// ParseList must not blow the Go call stack on a large, flat sequence of
// queries: the grammar's repetition (`@@*`) must be iterative, not one
// recursive descent frame per query.
func TestParseList_StackSafety(t *testing.T) {
	text := ""
	const n = 10000
	for i := 0; i < n; i++ {
		text += `insert $x isa person;`
	}
	queries, err := typeql.ParseList(text)
	if err != nil {
		t.Fatalf("ParseList of %d queries failed: %v", n, err)
	}
	if len(queries) != n {
		t.Fatalf("expected %d queries, got %d", n, len(queries))
	}
}
