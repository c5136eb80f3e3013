// Package construct walks the internal/grammar parse tree into the typed
// ast package values (C5 of the language pipeline), performing the
// canonicalisations §4.3 describes: isa/isa! and sub/sub! collapse into an
// Exact/Strict flag, key/has unify into a single HasConstraint, attribute
// literal shorthand expands into an anonymous AttributeStatement, and
// grammar productions that are syntactically valid but belong to a
// different query context (a variable head inside a define block, for
// instance) are rejected here rather than in the grammar itself.
package construct

import (
	"fmt"
	"regexp"
	"time"

	"github.com/typeql/typeql/ast"
	"github.com/typeql/typeql/internal/grammar"
)

// ConstructError reports a semantically invalid parse tree: a grammar
// production that parsed but does not belong in its query context, or a
// literal whose text the lexer accepted but which is not a valid value.
type ConstructError struct {
	Kind    string
	Message string
}

func (e ConstructError) Error() string {
	return fmt.Sprintf("construct error (%s): %s", e.Kind, e.Message)
}

// statementCtx tells buildValuePredicate whether a bare comparator-led
// constraint (`!== ...`, a value comparison syntactically identical to a
// concept-identity check) belongs to an attribute statement (a value
// predicate) or a thing/relation statement (a concept inequality).
type statementCtx int

const (
	ctxThingOrRelation statementCtx = iota
	ctxAttribute
)

// BuildQueryList converts every query in tree into its ast.Query.
func BuildQueryList(tree *grammar.QueryListNode) ([]ast.Query, error) {
	out := make([]ast.Query, 0, len(tree.Queries))
	for _, q := range tree.Queries {
		built, err := buildQuery(q)
		if err != nil {
			return nil, err
		}
		out = append(out, built)
	}
	return out, nil
}

// BuildPatternList converts every pattern in tree into its ast.Pattern.
func BuildPatternList(tree *grammar.PatternListNode) ([]ast.Pattern, error) {
	out := make([]ast.Pattern, 0, len(tree.Patterns))
	for _, p := range tree.Patterns {
		built, err := buildPattern(p)
		if err != nil {
			return nil, err
		}
		out = append(out, built)
	}
	return out, nil
}

func buildQuery(q *grammar.QueryNode) (ast.Query, error) {
	switch {
	case q.Define != nil:
		stmts, err := buildTypeStatements(q.Define.Statements)
		if err != nil {
			return nil, err
		}
		return &ast.DefineQuery{Statements: stmts}, nil
	case q.Undefine != nil:
		stmts, err := buildTypeStatements(q.Undefine.Statements)
		if err != nil {
			return nil, err
		}
		return &ast.UndefineQuery{Statements: stmts}, nil
	case q.Compute != nil:
		return buildCompute(q.Compute)
	case q.Match != nil:
		return buildMatchQuery(q.Match)
	case q.Insert != nil:
		stmts, err := buildStatements(q.Insert.Statements)
		if err != nil {
			return nil, err
		}
		return &ast.InsertQuery{Statements: stmts}, nil
	}
	return nil, ConstructError{Kind: "EmptyInput", Message: "empty query"}
}

func buildMatchQuery(m *grammar.MatchQueryNode) (ast.Query, error) {
	match, err := buildMatchClause(m.Patterns)
	if err != nil {
		return nil, err
	}
	switch {
	case m.Insert != nil:
		stmts, err := buildStatements(m.Insert.Statements)
		if err != nil {
			return nil, err
		}
		return &ast.InsertQuery{Match: match, Statements: stmts}, nil
	case m.Delete != nil:
		stmts, err := buildStatements(m.Delete.Statements)
		if err != nil {
			return nil, err
		}
		return &ast.DeleteQuery{Match: match, Statements: stmts}, nil
	case m.Get != nil:
		return buildGetTail(match, m.Get)
	}
	return nil, ConstructError{Kind: "EmptyInput", Message: "match query requires insert, delete or get"}
}

func buildGetTail(match *ast.MatchClause, g *grammar.GetTailNode) (ast.Query, error) {
	get := &ast.GetQuery{Match: match, Filter: dedupeFilter(g.Filter), Offset: g.Offset, Limit: g.Limit}
	if g.Sort != nil {
		order := ast.SortAsc
		if g.Sort.Order == "desc" {
			order = ast.SortDesc
		}
		get.Sort = &ast.SortSpec{Var: trimVarSigil(g.Sort.Var), Order: order}
	}

	if g.GroupVar != nil {
		group := &ast.GroupQuery{Get: get, Var: trimVarSigil(*g.GroupVar)}
		if g.GroupAgg != nil {
			return buildGroupAggregate(group, g.GroupAgg)
		}
		return group, nil
	}
	if g.Agg != nil {
		return buildAggregate(get, g.Agg)
	}
	return get, nil
}

func buildAggregate(get *ast.GetQuery, agg *grammar.AggMethodNode) (ast.Query, error) {
	method, err := aggMethodFromToken(agg.Method)
	if err != nil {
		return nil, err
	}
	return &ast.AggregateQuery{Get: get, Method: method, Var: aggVar(agg.Var)}, nil
}

func buildGroupAggregate(group *ast.GroupQuery, agg *grammar.AggMethodNode) (ast.Query, error) {
	method, err := aggMethodFromToken(agg.Method)
	if err != nil {
		return nil, err
	}
	return &ast.GroupAggregateQuery{Group: group, Method: method, Var: aggVar(agg.Var)}, nil
}

func aggVar(raw *string) *string {
	if raw == nil {
		return nil
	}
	v := trimVarSigil(*raw)
	return &v
}

func buildCompute(c *grammar.ComputeNode) (ast.Query, error) {
	method, err := computeMethodFromToken(c.Method)
	if err != nil {
		return nil, err
	}
	q := &ast.ComputeQuery{Method: method}
	for _, l := range c.In {
		q.In = append(q.In, buildLabel(l))
	}
	for _, l := range c.Of {
		q.Of = append(q.Of, buildLabel(l))
	}
	if c.From != nil {
		lbl := buildLabel(c.From)
		q.From = &lbl
	}
	if c.To != nil {
		lbl := buildLabel(c.To)
		q.To = &lbl
	}
	if c.Using != nil {
		alg, err := algorithmFromToken(*c.Using)
		if err != nil {
			return nil, err
		}
		q.Algorithm = alg
	}
	where := make([]ast.ComputeArg, 0, len(c.Where))
	for _, w := range c.Where {
		param, err := computeParamFromToken(w.Param)
		if err != nil {
			return nil, err
		}
		where = append(where, ast.ComputeArg{Param: param, Value: w.Value})
	}
	q.Where = ast.DedupeWhere(where)
	return q, nil
}

// ---- patterns ----

func buildPattern(p *grammar.PatternNode) (ast.Pattern, error) {
	switch {
	case p.Negation != nil:
		inner, err := buildPatternGroup(p.Negation.Body)
		if err != nil {
			return nil, err
		}
		return ast.Not(inner), nil
	case p.Disjunction != nil:
		branches := make([]ast.Pattern, 0, len(p.Disjunction.Branches))
		for _, b := range p.Disjunction.Branches {
			branch, err := buildPatternGroup(b)
			if err != nil {
				return nil, err
			}
			branches = append(branches, branch)
		}
		return ast.Or(branches)
	case p.Group != nil:
		return buildPatternGroup(p.Group)
	case p.Statement != nil:
		stmt, err := buildStatement(p.Statement)
		if err != nil {
			return nil, err
		}
		return ast.StatementPattern{Statement: stmt}, nil
	}
	return nil, ConstructError{Kind: "EmptyInput", Message: "empty pattern"}
}

func buildPatternGroup(g *grammar.PatternGroupNode) (ast.Pattern, error) {
	patterns := make([]ast.Pattern, 0, len(g.Block.Patterns))
	for _, p := range g.Block.Patterns {
		built, err := buildPattern(p)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, built)
	}
	if len(patterns) == 0 {
		return nil, ConstructError{Kind: "EmptyInput", Message: "pattern group requires at least one pattern"}
	}
	return ast.And(patterns), nil
}

func buildMatchClause(nodes []*grammar.PatternNode) (*ast.MatchClause, error) {
	patterns := make([]ast.Pattern, 0, len(nodes))
	for _, n := range nodes {
		p, err := buildPattern(n)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	if len(patterns) == 0 {
		return nil, ConstructError{Kind: "EmptyInput", Message: "match clause requires at least one pattern"}
	}
	return &ast.MatchClause{Patterns: patterns}, nil
}

// ---- statements ----

func buildStatements(nodes []*grammar.StatementNode) ([]ast.Statement, error) {
	out := make([]ast.Statement, 0, len(nodes))
	for _, n := range nodes {
		s, err := buildStatement(n)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func buildTypeStatements(nodes []*grammar.StatementNode) ([]*ast.TypeStatement, error) {
	out := make([]*ast.TypeStatement, 0, len(nodes))
	for _, n := range nodes {
		ts, err := buildTypeStatement(n)
		if err != nil {
			return nil, err
		}
		out = append(out, ts)
	}
	return out, nil
}

// buildTypeStatement requires the statement to build into a *ast.TypeStatement,
// rejecting a syntactically valid but context-inappropriate statement (a
// variable-headed statement inside define/undefine) with InvalidCasting.
func buildTypeStatement(s *grammar.StatementNode) (*ast.TypeStatement, error) {
	stmt, err := buildStatement(s)
	if err != nil {
		return nil, err
	}
	ts, ok := stmt.(*ast.TypeStatement)
	if !ok {
		return nil, ConstructError{Kind: "InvalidCasting", Message: "define/undefine statements must have a type label head"}
	}
	return ts, nil
}

func buildStatement(s *grammar.StatementNode) (ast.Statement, error) {
	head := buildHeadNode(s.Head)

	if _, isLabel := head.(ast.Label); isLabel {
		cs, err := buildConstraints(s.Constraints, ctxThingOrRelation)
		if err != nil {
			return nil, err
		}
		return ast.NewTypeStatement(head, cs...)
	}

	hasRelation, hasValuePred := false, false
	for _, c := range s.Constraints {
		if c.Relation != nil {
			hasRelation = true
		}
		// A bare or `!==` variable operand is a concept inequality
		// (NeqVarConstraint), which does not make the statement an attribute.
		if v := c.ValuePred; v != nil && !(v.Var != nil && (v.Comparator == "" || v.Comparator == "!==")) {
			hasValuePred = true
		}
	}

	switch {
	case hasRelation:
		cs, err := buildConstraints(s.Constraints, ctxThingOrRelation)
		if err != nil {
			return nil, err
		}
		return ast.NewRelationStatement(head, cs...)
	case hasValuePred:
		cs, err := buildConstraints(s.Constraints, ctxAttribute)
		if err != nil {
			return nil, err
		}
		return ast.NewAttributeStatement(head, cs...)
	default:
		cs, err := buildConstraints(s.Constraints, ctxThingOrRelation)
		if err != nil {
			return nil, err
		}
		return ast.NewThingStatement(head, cs...)
	}
}

func buildConstraints(nodes []*grammar.ConstraintNode, ctx statementCtx) ([]ast.Constraint, error) {
	out := make([]ast.Constraint, 0, len(nodes))
	for _, n := range nodes {
		c, err := buildConstraint(n, ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func buildConstraint(c *grammar.ConstraintNode, ctx statementCtx) (ast.Constraint, error) {
	switch {
	case c.Isa != nil:
		return ast.IsaConstraint{Type: buildHeadNode(c.Isa.Type), Exact: c.Isa.Exact == "isa!"}, nil
	case c.Sub != nil:
		return ast.SubConstraint{Type: buildHeadNode(c.Sub.Type), Strict: c.Sub.Exact == "sub!"}, nil
	case c.Has != nil:
		return buildHas(c.Has)
	case c.Plays != nil:
		return ast.PlaysConstraint{Role: buildLabel(c.Plays.Role)}, nil
	case c.Relates != nil:
		rc := ast.RelatesConstraint{Role: buildLabel(c.Relates.Role)}
		if c.Relates.Overridden != nil {
			o := buildLabel(c.Relates.Overridden)
			rc.Overridden = &o
		}
		return rc, nil
	case c.Regex != nil:
		return ast.RegexConstraint{Pattern: c.Regex.Pattern}, nil
	case c.ValueType != nil:
		vk, err := valueKindFromToken(c.ValueType.ValueKind)
		if err != nil {
			return nil, err
		}
		return ast.ValueTypeConstraint{ValueKind: vk}, nil
	case c.Abstract != nil:
		return ast.AbstractConstraint{}, nil
	case c.LabelSet != nil:
		return ast.LabelConstraint{Label: buildLabel(c.LabelSet.Label)}, nil
	case c.When != nil:
		pat, err := buildPatternGroup(c.When.Body)
		if err != nil {
			return nil, err
		}
		return ast.WhenConstraint{Pattern: pat}, nil
	case c.Then != nil:
		stmt, err := buildStatement(c.Then.Body.Statement)
		if err != nil {
			return nil, err
		}
		return ast.ThenConstraint{Statement: stmt}, nil
	case c.Relation != nil:
		return buildRelation(c.Relation)
	case c.Id != nil:
		return ast.IdConstraint{Literal: c.Id.Literal}, nil
	case c.ValuePred != nil:
		return buildValuePredicate(c.ValuePred, ctx)
	}
	return nil, ConstructError{Kind: "EmptyInput", Message: "empty constraint"}
}

func buildHas(h *grammar.HasNode) (ast.Constraint, error) {
	hc := ast.HasConstraint{IsKey: h.KeyWord == "key"}
	if h.AttrType != nil {
		lbl := buildLabel(h.AttrType)
		hc.AttrType = &lbl
	}
	switch {
	case h.Var != nil:
		hc.Attr = buildVarNode(h.Var)
	case h.Literal != nil:
		lit, err := buildLiteral(h.Literal)
		if err != nil {
			return nil, err
		}
		attrLabel := ast.Label{}
		if hc.AttrType != nil {
			attrLabel = *hc.AttrType
		}
		stmt, err := ast.NewAttributeStatement(ast.NewAnonymous(false),
			ast.ValueConstraint{Operation: ast.Assignment{Value: lit}},
			ast.IsaConstraint{Type: attrLabel})
		if err != nil {
			return nil, err
		}
		hc.Value = stmt
	}
	return hc, nil
}

func buildRelation(r *grammar.RelationNode) (ast.Constraint, error) {
	rc := ast.RelationConstraint{}
	for _, rp := range r.RolePlayers {
		var rolePtr *ast.Label
		if rp.Role != nil {
			lbl := buildLabel(rp.Role)
			rolePtr = &lbl
		}
		rc.RolePlayers = append(rc.RolePlayers, ast.RolePlayer{Role: rolePtr, Player: buildVarNode(rp.Player)})
	}
	return rc, nil
}

// buildValuePredicate covers both halves of ValuePredicateNode's double
// duty: a value comparison/assignment on an attribute statement, or a
// concept-identity inequality (`!== $other`) on a thing/relation statement.
// The two are syntactically identical; ctx is how the caller's statement
// shape disambiguates them.
func buildValuePredicate(v *grammar.ValuePredicateNode, ctx statementCtx) (ast.Constraint, error) {
	cmp, hasCmp := comparatorFromToken(v.Comparator)

	if v.Var != nil {
		other := buildHeadNode(v.Var)
		if ctx != ctxAttribute && (!hasCmp || cmp == ast.CmpNeq) {
			return ast.NeqVarConstraint{Other: other}, nil
		}
		if !hasCmp {
			cmp = ast.CmpEq
		}
		return ast.ValueConstraint{Operation: ast.Comparison{Op: cmp, Var: other}}, nil
	}

	lit, err := buildLiteral(v.Literal)
	if err != nil {
		return nil, err
	}
	if !hasCmp {
		return ast.ValueConstraint{Operation: ast.Assignment{Value: lit}}, nil
	}
	return ast.ValueConstraint{Operation: ast.Comparison{Op: cmp, Value: &lit}}, nil
}

// ---- leaf conversions ----

func buildVarNode(v *grammar.VarNode) ast.Variable {
	if v.Concept != "" {
		if v.Concept == "$_" {
			return ast.NewAnonymous(true)
		}
		return ast.NamedConcept{Name: v.Concept[1:]}
	}
	return ast.NamedValue{Name: v.Value[1:]}
}

func buildHeadNode(h *grammar.HeadNode) ast.Variable {
	if h.Var != nil {
		return buildVarNode(h.Var)
	}
	return buildLabel(h.Label)
}

func buildLabel(l *grammar.LabelNode) ast.Label {
	return ast.Label{Name: l.Name, Scope: l.Scope}
}

func trimVarSigil(raw string) string {
	if len(raw) > 0 && (raw[0] == '$' || raw[0] == '?') {
		return raw[1:]
	}
	return raw
}

func dedupeFilter(vars []string) []string {
	seen := make(map[string]bool, len(vars))
	out := make([]string, 0, len(vars))
	for _, v := range vars {
		name := trimVarSigil(v)
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

func buildLiteral(l *grammar.LiteralNode) (ast.Literal, error) {
	switch {
	case l.Str != nil:
		return ast.Literal{Kind: ast.LiteralString, Str: *l.Str}, nil
	case l.DateTime != nil:
		t, err := parseDateTime(*l.DateTime)
		if err != nil {
			return ast.Literal{}, err
		}
		return ast.Literal{Kind: ast.LiteralDateTime, Time: t}, nil
	case l.Date != nil:
		t, err := parseDate(*l.Date)
		if err != nil {
			return ast.Literal{}, err
		}
		return ast.Literal{Kind: ast.LiteralDate, Time: t}, nil
	case l.Real != nil:
		return ast.Literal{Kind: ast.LiteralDouble, Double: *l.Real}, nil
	case l.Int != nil:
		return ast.Literal{Kind: ast.LiteralLong, Long: *l.Int}, nil
	case l.Bool != nil:
		return ast.Literal{Kind: ast.LiteralBool, Bool: *l.Bool == "true"}, nil
	}
	return ast.Literal{}, ConstructError{Kind: "EmptyInput", Message: "empty literal"}
}

func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, ConstructError{Kind: "InvalidCasting", Message: fmt.Sprintf("%q is not a valid ISO date", raw)}
	}
	return t, nil
}

var dateTimeRe = regexp.MustCompile(`^([+-]?\d{4,}-\d{2}-\d{2})T(\d{2}):(\d{2})(?::(\d{2})(?:\.(\d+))?)?$`)

// parseDateTime resolves the spec's open question on fractional precision:
// TypeQL datetimes keep millisecond precision, so a literal specifying more
// than three fractional digits is rejected as InvalidDateTimeNanos rather
// than silently truncated.
func parseDateTime(raw string) (time.Time, error) {
	m := dateTimeRe.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, ConstructError{Kind: "InvalidCasting", Message: fmt.Sprintf("%q is not a valid ISO datetime", raw)}
	}
	datePart, hh, mm, ss, frac := m[1], m[2], m[3], m[4], m[5]
	if ss == "" {
		ss = "00"
	}
	if len(frac) > 3 {
		return time.Time{}, ConstructError{Kind: "InvalidDateTimeNanos", Message: fmt.Sprintf("%q specifies sub-millisecond precision", raw)}
	}
	for len(frac) < 3 {
		frac += "0"
	}
	t, err := time.Parse("2006-01-02T15:04:05.000", datePart+"T"+hh+":"+mm+":"+ss+"."+frac)
	if err != nil {
		return time.Time{}, ConstructError{Kind: "InvalidCasting", Message: fmt.Sprintf("%q is not a valid ISO datetime", raw)}
	}
	return t, nil
}

func comparatorFromToken(tok string) (ast.ComparatorKind, bool) {
	switch tok {
	case "":
		return ast.CmpEq, false
	case "=", "==":
		return ast.CmpEq, true
	case "!==":
		return ast.CmpNeq, true
	case "<":
		return ast.CmpLt, true
	case "<=":
		return ast.CmpLte, true
	case ">":
		return ast.CmpGt, true
	case ">=":
		return ast.CmpGte, true
	case "contains":
		return ast.CmpContains, true
	case "like":
		return ast.CmpLike, true
	}
	return ast.CmpEq, true
}

func valueKindFromToken(tok string) (ast.ValueTypeKind, error) {
	switch tok {
	case "long":
		return ast.ValueTypeLong, nil
	case "double":
		return ast.ValueTypeDouble, nil
	case "string":
		return ast.ValueTypeString, nil
	case "boolean":
		return ast.ValueTypeBoolean, nil
	case "datetime":
		return ast.ValueTypeDatetime, nil
	}
	return 0, ConstructError{Kind: "EmptyInput", Message: fmt.Sprintf("unknown value type %q", tok)}
}

func aggMethodFromToken(tok string) (ast.AggregateMethod, error) {
	switch tok {
	case "count":
		return ast.AggCount, nil
	case "max":
		return ast.AggMax, nil
	case "min":
		return ast.AggMin, nil
	case "mean":
		return ast.AggMean, nil
	case "median":
		return ast.AggMedian, nil
	case "sum":
		return ast.AggSum, nil
	case "std":
		return ast.AggStd, nil
	}
	return 0, ConstructError{Kind: "EmptyInput", Message: fmt.Sprintf("unknown aggregate method %q", tok)}
}

func computeMethodFromToken(tok string) (ast.ComputeMethod, error) {
	switch tok {
	case "count":
		return ast.ComputeCount, nil
	case "max":
		return ast.ComputeMax, nil
	case "min":
		return ast.ComputeMin, nil
	case "mean":
		return ast.ComputeMean, nil
	case "median":
		return ast.ComputeMedian, nil
	case "sum":
		return ast.ComputeSum, nil
	case "std":
		return ast.ComputeStd, nil
	case "path":
		return ast.ComputePath, nil
	case "centrality":
		return ast.ComputeCentrality, nil
	case "cluster":
		return ast.ComputeCluster, nil
	}
	return 0, ConstructError{Kind: "EmptyInput", Message: fmt.Sprintf("unknown compute method %q", tok)}
}

func algorithmFromToken(tok string) (ast.ComputeAlgorithm, error) {
	switch tok {
	case "degree":
		return ast.AlgorithmDegree, nil
	case "k-core":
		return ast.AlgorithmKCore, nil
	case "connected-component":
		return ast.AlgorithmConnectedComponent, nil
	}
	return ast.AlgorithmNone, ConstructError{Kind: "EmptyInput", Message: fmt.Sprintf("unknown compute algorithm %q", tok)}
}

func computeParamFromToken(tok string) (ast.ComputeParam, error) {
	switch tok {
	case "min-k":
		return ast.ParamMinK, nil
	case "k":
		return ast.ParamK, nil
	case "size":
		return ast.ParamSize, nil
	case "contains":
		return ast.ParamContains, nil
	}
	return 0, ConstructError{Kind: "EmptyInput", Message: fmt.Sprintf("unknown compute parameter %q", tok)}
}
