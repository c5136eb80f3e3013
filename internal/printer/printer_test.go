package printer

import (
	"strings"
	"testing"

	"github.com/typeql/typeql/ast"
)

func TestPrint_Insert(t *testing.T) {
	stmt, err := ast.NewThingStatement(ast.NamedConcept{Name: "x"}, ast.IsaConstraint{Type: ast.Label{Name: "person"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := &ast.InsertQuery{Statements: []ast.Statement{stmt}}
	got := Print(q, true)
	if !strings.Contains(got, "insert") || !strings.Contains(got, "$x isa person") {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestPrint_CompactVsPretty(t *testing.T) {
	stmt, err := ast.NewThingStatement(ast.NamedConcept{Name: "x"}, ast.IsaConstraint{Type: ast.Label{Name: "person"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	insert := &ast.InsertQuery{Statements: []ast.Statement{stmt}}
	pretty := Print(insert, true)
	compact := Print(insert, false)
	if !strings.Contains(pretty, "\n") {
		t.Fatalf("expected pretty output to contain newlines, got %q", pretty)
	}
	if strings.Contains(compact, "\n") {
		t.Fatalf("expected compact output to contain no newlines, got %q", compact)
	}
}

func TestPrint_HasLiteralShorthand(t *testing.T) {
	attrStmt, err := ast.NewAttributeStatement(ast.NewAnonymous(false),
		ast.ValueConstraint{Operation: ast.Assignment{Value: ast.Literal{Kind: ast.LiteralString, Str: "Alice"}}},
		ast.IsaConstraint{Type: ast.Label{Name: "name"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stmt, err := ast.NewThingStatement(ast.NamedConcept{Name: "x"}, ast.HasConstraint{
		AttrType: &ast.Label{Name: "name"},
		Value:    attrStmt,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := printStatement(stmt, false)
	if got != `$x has name "Alice"` {
		t.Fatalf("unexpected has-shorthand output: %q", got)
	}
}

func TestTrimFloat(t *testing.T) {
	if got := trimFloat(3); got != "3" {
		t.Fatalf("expected integer-valued float to print without a decimal, got %q", got)
	}
	if got := trimFloat(2.5); got != "2.5" {
		t.Fatalf("expected fractional float to keep its decimal, got %q", got)
	}
}

func TestPrintCompute_LabelSetBracketing(t *testing.T) {
	q := &ast.ComputeQuery{Method: ast.ComputeCount, In: []ast.Label{{Name: "person"}}}
	if got := printCompute(q); got != "compute count in person;" {
		t.Fatalf("expected a bare single-element in-set, got %q", got)
	}
	q.In = append(q.In, ast.Label{Name: "company"})
	if got := printCompute(q); got != "compute count in [person, company];" {
		t.Fatalf("expected a bracketed multi-element in-set, got %q", got)
	}
}
