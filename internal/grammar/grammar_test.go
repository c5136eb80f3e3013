package grammar

import "testing"

func TestParseQueryList_Insert(t *testing.T) {
	tree, err := ParseQueryList(`insert $x isa person, has name "Alice";`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Queries) != 1 || tree.Queries[0].Insert == nil {
		t.Fatalf("expected a single insert query, got %#v", tree)
	}
}

func TestParseQueryList_MultipleQueries(t *testing.T) {
	tree, err := ParseQueryList(`insert $x isa person; insert $y isa company;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Queries) != 2 {
		t.Fatalf("expected 2 queries, got %d", len(tree.Queries))
	}
}

func TestParseQueryList_SyntaxErrorHasPosition(t *testing.T) {
	_, err := ParseQueryList(`insert $x isa ;`)
	if err == nil {
		t.Fatal("expected a syntax error for a statement with no type after isa")
	}
	se, ok := err.(SyntaxError)
	if !ok {
		t.Fatalf("expected a SyntaxError, got %#v", err)
	}
	if se.Line == 0 || se.Snippet == "" {
		t.Fatalf("expected a populated line/snippet, got %#v", se)
	}
}

func TestParsePatternList_Negation(t *testing.T) {
	tree, err := ParsePatternList(`$x isa person; not { $x has name "Bob"; };`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Patterns) != 2 || tree.Patterns[1].Negation == nil {
		t.Fatalf("expected the second pattern to be a negation, got %#v", tree)
	}
}

func TestParseQueryList_IsaExactPrecedesIsa(t *testing.T) {
	tree, err := ParseQueryList(`insert $x isa! person;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stmt := tree.Queries[0].Insert.Statements[0]
	if stmt.Constraints[0].Isa == nil || stmt.Constraints[0].Isa.Exact != "isa!" {
		t.Fatalf("expected isa! to lex as its own keyword, got %#v", stmt.Constraints[0])
	}
}

func TestParseQueryList_ConceptAndValueVariables(t *testing.T) {
	tree, err := ParseQueryList(`insert $x isa person, has age ?y;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stmt := tree.Queries[0].Insert.Statements[0]
	if stmt.Head.Var.Concept != "$x" {
		t.Fatalf("expected head to be the concept variable $x, got %#v", stmt.Head)
	}
}

func TestParseQueryList_RegexWithBackslashDigitEscape(t *testing.T) {
	tree, err := ParseQueryList(`define name sub attribute, value string, regex "\d+";`)
	if err != nil {
		t.Fatalf("unexpected error parsing a regex literal containing \\d: %v", err)
	}
	stmt := tree.Queries[0].Define.Statements[0]
	regex := stmt.Constraints[2].Regex
	if regex == nil {
		t.Fatalf("expected a regex constraint, got %#v", stmt.Constraints)
	}
	if regex.Pattern != `\d+` {
		t.Fatalf("expected \\d to be preserved verbatim, got %q", regex.Pattern)
	}
}

func TestParseQueryList_StringLiteralEscapes(t *testing.T) {
	tree, err := ParseQueryList(`insert $x isa person, has name "a\/b\tc\nd\\e\"f";`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stmt := tree.Queries[0].Insert.Statements[0]
	lit := stmt.Constraints[1].Has.Literal
	if lit == nil || lit.Str == nil {
		t.Fatalf("expected a string literal, got %#v", stmt.Constraints[1].Has)
	}
	want := "a/b\tc\nd\\e\"f"
	if *lit.Str != want {
		t.Fatalf("expected %q, got %q", want, *lit.Str)
	}
}
