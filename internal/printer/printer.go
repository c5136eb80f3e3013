// Package printer implements the TypeQL pretty/compact printer (C7),
// satisfying the round-trip invariant of §4.5/§8: parsing the output of
// Print always reconstructs a structurally equal AST, in both pretty (one
// clause per line) and compact (single line) modes.
package printer

import (
	"fmt"
	"strings"

	"github.com/typeql/typeql/ast"
)

// Print renders a full query. pretty selects one-clause-per-line formatting
// over a single compact line.
func Print(q ast.Query, pretty bool) string {
	switch query := q.(type) {
	case *ast.DefineQuery:
		return printDefine(query, pretty)
	case *ast.UndefineQuery:
		return printUndefine(query, pretty)
	case *ast.InsertQuery:
		return printInsert(query, pretty)
	case *ast.DeleteQuery:
		return printDelete(query, pretty)
	case *ast.GetQuery:
		return printGet(query, pretty)
	case *ast.AggregateQuery:
		return printAggregate(query, pretty)
	case *ast.GroupQuery:
		return printGroup(query, pretty)
	case *ast.GroupAggregateQuery:
		return printGroupAggregate(query, pretty)
	case *ast.ComputeQuery:
		return printCompute(query)
	}
	return ""
}

// PrintPattern renders a single pattern, e.g. for the eof_pattern entry
// point or for embedding in error messages.
func PrintPattern(p ast.Pattern, pretty bool) string {
	return printPattern(p, pretty)
}

func joinClauses(items []string, pretty bool) string {
	if pretty {
		return strings.Join(items, "\n")
	}
	return strings.Join(items, " ")
}

func printDefine(q *ast.DefineQuery, pretty bool) string {
	lines := []string{"define"}
	for _, s := range q.Statements {
		lines = append(lines, printStatement(s, pretty)+";")
	}
	return joinClauses(lines, pretty)
}

func printUndefine(q *ast.UndefineQuery, pretty bool) string {
	lines := []string{"undefine"}
	for _, s := range q.Statements {
		lines = append(lines, printStatement(s, pretty)+";")
	}
	return joinClauses(lines, pretty)
}

func printInsertStatements(stmts []ast.Statement, pretty bool) string {
	lines := []string{"insert"}
	for _, s := range stmts {
		lines = append(lines, printStatement(s, pretty)+";")
	}
	return joinClauses(lines, pretty)
}

func printInsert(q *ast.InsertQuery, pretty bool) string {
	if q.Match == nil {
		return printInsertStatements(q.Statements, pretty)
	}
	return joinClauses([]string{printMatchClause(q.Match, pretty), printInsertStatements(q.Statements, pretty)}, pretty)
}

func printDelete(q *ast.DeleteQuery, pretty bool) string {
	lines := []string{"delete"}
	for _, s := range q.Statements {
		lines = append(lines, printStatement(s, pretty)+";")
	}
	return joinClauses([]string{printMatchClause(q.Match, pretty), joinClauses(lines, pretty)}, pretty)
}

func printMatchClause(m *ast.MatchClause, pretty bool) string {
	lines := []string{"match"}
	for _, p := range m.Patterns {
		lines = append(lines, printPattern(p, pretty)+";")
	}
	return joinClauses(lines, pretty)
}

func printGetTail(q *ast.GetQuery, pretty bool) []string {
	var lines []string
	filter := ""
	if len(q.Filter) > 0 {
		vars := make([]string, len(q.Filter))
		for i, v := range q.Filter {
			vars[i] = "$" + v
		}
		filter = " " + strings.Join(vars, ", ")
	}
	lines = append(lines, "get"+filter+";")
	if q.Sort != nil {
		order := "asc"
		if q.Sort.Order == ast.SortDesc {
			order = "desc"
		}
		lines = append(lines, fmt.Sprintf("sort $%s %s;", q.Sort.Var, order))
	}
	if q.Offset != nil {
		lines = append(lines, fmt.Sprintf("offset %d;", *q.Offset))
	}
	if q.Limit != nil {
		lines = append(lines, fmt.Sprintf("limit %d;", *q.Limit))
	}
	return lines
}

func printGet(q *ast.GetQuery, pretty bool) string {
	return joinClauses([]string{printMatchClause(q.Match, pretty), joinClauses(printGetTail(q, pretty), pretty)}, pretty)
}

func printAggMethodLine(method ast.AggregateMethod, v *string) string {
	if v != nil {
		return fmt.Sprintf("%s $%s;", method.String(), *v)
	}
	return method.String() + ";"
}

func printAggregate(q *ast.AggregateQuery, pretty bool) string {
	lines := append(printGetTail(q.Get, pretty), printAggMethodLine(q.Method, q.Var))
	return joinClauses([]string{printMatchClause(q.Get.Match, pretty), joinClauses(lines, pretty)}, pretty)
}

func printGroup(q *ast.GroupQuery, pretty bool) string {
	lines := append(printGetTail(q.Get, pretty), fmt.Sprintf("group $%s;", q.Var))
	return joinClauses([]string{printMatchClause(q.Get.Match, pretty), joinClauses(lines, pretty)}, pretty)
}

func printGroupAggregate(q *ast.GroupAggregateQuery, pretty bool) string {
	lines := append(printGetTail(q.Group.Get, pretty), fmt.Sprintf("group $%s;", q.Group.Var), printAggMethodLine(q.Method, q.Var))
	return joinClauses([]string{printMatchClause(q.Group.Get.Match, pretty), joinClauses(lines, pretty)}, pretty)
}

// ---- compute ----

func printCompute(q *ast.ComputeQuery) string {
	var b strings.Builder
	b.WriteString("compute ")
	b.WriteString(q.Method.String())
	if len(q.In) > 0 {
		b.WriteString(" in ")
		b.WriteString(printLabelSet(q.In))
	}
	if len(q.Of) > 0 {
		b.WriteString(" of ")
		b.WriteString(printLabelSet(q.Of))
	}
	if q.From != nil {
		b.WriteString(" from ")
		b.WriteString(q.From.ScopedName())
	}
	if q.To != nil {
		b.WriteString(" to ")
		b.WriteString(q.To.ScopedName())
	}
	if q.Algorithm != ast.AlgorithmNone {
		b.WriteString(" using ")
		b.WriteString(q.Algorithm.String())
	}
	if len(q.Where) > 0 {
		b.WriteString(" where ")
		b.WriteString(printWhereSet(q.Where))
	}
	b.WriteString(";")
	return b.String()
}

func printLabelSet(labels []ast.Label) string {
	if len(labels) == 1 {
		return labels[0].ScopedName()
	}
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.ScopedName()
	}
	return "[" + strings.Join(names, ", ") + "]"
}

func printWhereSet(args []ast.ComputeArg) string {
	render := func(a ast.ComputeArg) string {
		return fmt.Sprintf("%s=%s", a.Param.String(), trimFloat(a.Value))
	}
	if len(args) == 1 {
		return render(args[0])
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = render(a)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func trimFloat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}

// ---- patterns & statements ----

func printPattern(p ast.Pattern, pretty bool) string {
	switch n := p.(type) {
	case ast.Conjunction:
		parts := make([]string, len(n.Patterns))
		for i, sub := range n.Patterns {
			parts[i] = printPattern(sub, pretty)
			// The caller terminates the last pattern.
			if i < len(n.Patterns)-1 {
				parts[i] += ";"
			}
		}
		return joinClauses(parts, pretty)
	case ast.Disjunction:
		branches := make([]string, len(n.Branches))
		for i, b := range n.Branches {
			branches[i] = "{ " + printPattern(b, false) + "; }"
		}
		return strings.Join(branches, " or ")
	case ast.Negation:
		return "not { " + printPattern(n.Inner, false) + "; }"
	case ast.StatementPattern:
		return printStatement(n.Statement, pretty)
	}
	return ""
}

func printStatement(s ast.Statement, pretty bool) string {
	head := printVariable(s.Head())
	if len(s.Constraints()) == 0 {
		return head
	}
	parts := make([]string, 0, len(s.Constraints()))
	for _, c := range s.Constraints() {
		parts = append(parts, printConstraint(c))
	}
	return head + " " + strings.Join(parts, ", ")
}

func printVariable(v ast.Variable) string {
	switch vv := v.(type) {
	case ast.NamedConcept:
		return "$" + vv.Name
	case ast.NamedValue:
		return "?" + vv.Name
	case ast.Label:
		return vv.ScopedName()
	case *ast.Anonymous:
		return "$_"
	}
	return ""
}

func printConstraint(c ast.Constraint) string {
	switch cc := c.(type) {
	case ast.IsaConstraint:
		if cc.Exact {
			return "isa! " + printVariable(cc.Type)
		}
		return "isa " + printVariable(cc.Type)
	case ast.SubConstraint:
		if cc.Strict {
			return "sub! " + printVariable(cc.Type)
		}
		return "sub " + printVariable(cc.Type)
	case ast.HasConstraint:
		return printHas(cc)
	case ast.PlaysConstraint:
		return "plays " + cc.Role.ScopedName()
	case ast.RelatesConstraint:
		out := "relates " + cc.Role.ScopedName()
		if cc.Overridden != nil {
			out += " as " + cc.Overridden.ScopedName()
		}
		return out
	case ast.RegexConstraint:
		return fmt.Sprintf("regex %q", cc.Pattern)
	case ast.ValueTypeConstraint:
		return "value " + cc.ValueKind.String()
	case ast.AbstractConstraint:
		return "abstract"
	case ast.LabelConstraint:
		return "type " + cc.Label.ScopedName()
	case ast.WhenConstraint:
		return "when { " + printPattern(cc.Pattern, false) + "; }"
	case ast.ThenConstraint:
		return "then { " + printStatement(cc.Statement, false) + "; }"
	case ast.RelationConstraint:
		return printRelation(cc)
	case ast.NeqVarConstraint:
		return "!== " + printVariable(cc.Other)
	case ast.IdConstraint:
		return fmt.Sprintf("id %q", cc.Literal)
	case ast.ValueConstraint:
		return printValueOperation(cc.Operation)
	}
	return ""
}

func printHas(h ast.HasConstraint) string {
	keyword := "has"
	if h.IsKey {
		keyword = "key"
	}
	out := keyword
	if h.AttrType != nil {
		out += " " + h.AttrType.ScopedName()
	}
	switch {
	case h.Attr != nil:
		out += " " + printVariable(h.Attr)
	case h.Value != nil:
		if lit, ok := attributeLiteral(h.Value); ok {
			out += " " + lit.String()
		}
	}
	return out
}

func attributeLiteral(s *ast.AttributeStatement) (ast.Literal, bool) {
	for _, c := range s.Constraints() {
		if vc, ok := c.(ast.ValueConstraint); ok {
			if asn, ok := vc.Operation.(ast.Assignment); ok {
				return asn.Value, true
			}
		}
	}
	return ast.Literal{}, false
}

func printRelation(r ast.RelationConstraint) string {
	parts := make([]string, len(r.RolePlayers))
	for i, rp := range r.RolePlayers {
		if rp.Role != nil {
			parts[i] = rp.Role.ScopedName() + ": " + printVariable(rp.Player)
		} else {
			parts[i] = printVariable(rp.Player)
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func printValueOperation(op ast.ValueOperation) string {
	switch o := op.(type) {
	case ast.Assignment:
		return o.Value.String()
	case ast.Comparison:
		right := ""
		if o.Value != nil {
			right = o.Value.String()
		} else {
			right = printVariable(o.Var)
		}
		return o.Op.String() + " " + right
	}
	return ""
}
