package query

import (
	"github.com/typeql/typeql/ast"
	"github.com/typeql/typeql/internal/validate"
)

// MatchBuilder accumulates a match clause's patterns before it is turned
// into a get/insert/delete query.
type MatchBuilder struct {
	patterns []ast.Pattern
	err      error
}

// Match starts a match clause from one or more patterns.
func Match(patterns ...ast.Pattern) *MatchBuilder {
	return &MatchBuilder{patterns: patterns}
}

func (m *MatchBuilder) clause() (*ast.MatchClause, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.patterns) == 0 {
		return nil, BuilderError{Kind: "EmptyInput", Message: "match clause requires at least one pattern"}
	}
	return &ast.MatchClause{Patterns: m.patterns}, nil
}

// GetOption configures a GetQuery built by MatchBuilder.Get.
type GetOption func(*ast.GetQuery)

// Filter restricts the get query's returned variables.
func Filter(vars ...string) GetOption {
	return func(g *ast.GetQuery) { g.Filter = vars }
}

// Sort orders the get query's results by var.
func Sort(v string, order ast.SortOrder) GetOption {
	return func(g *ast.GetQuery) { g.Sort = &ast.SortSpec{Var: v, Order: order} }
}

// Offset skips the first n results.
func Offset(n int64) GetOption {
	return func(g *ast.GetQuery) { g.Offset = &n }
}

// Limit caps the number of results.
func Limit(n int64) GetOption {
	return func(g *ast.GetQuery) { g.Limit = &n }
}

// Get builds a GetQuery from the accumulated match clause, then runs the
// §4.4 filter/sort scope checks before returning it.
func (m *MatchBuilder) Get(opts ...GetOption) (*ast.GetQuery, error) {
	clause, err := m.clause()
	if err != nil {
		return nil, err
	}
	g := &ast.GetQuery{Match: clause}
	for _, opt := range opts {
		opt(g)
	}
	if err := validate.Get(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Insert builds a match-insert query.
func (m *MatchBuilder) Insert(statements ...ast.Statement) (*ast.InsertQuery, error) {
	clause, err := m.clause()
	if err != nil {
		return nil, err
	}
	return &ast.InsertQuery{Match: clause, Statements: statements}, nil
}

// Delete builds a match-delete query.
func (m *MatchBuilder) Delete(statements ...ast.Statement) (*ast.DeleteQuery, error) {
	clause, err := m.clause()
	if err != nil {
		return nil, err
	}
	return &ast.DeleteQuery{Match: clause, Statements: statements}, nil
}

// Aggregate wraps a GetQuery into an AggregateQuery.
func Aggregate(g *ast.GetQuery, method ast.AggregateMethod, v string) *ast.AggregateQuery {
	var vp *string
	if v != "" {
		vp = &v
	}
	return &ast.AggregateQuery{Get: g, Method: method, Var: vp}
}

// Group wraps a GetQuery into a GroupQuery, then runs the §4.4 grouping
// scope check before returning it.
func Group(g *ast.GetQuery, v string) (*ast.GroupQuery, error) {
	group := &ast.GroupQuery{Get: g, Var: v}
	if err := validate.Group(group); err != nil {
		return nil, err
	}
	return group, nil
}

// GroupAggregate wraps a GroupQuery into a GroupAggregateQuery.
func GroupAggregate(group *ast.GroupQuery, method ast.AggregateMethod, v string) *ast.GroupAggregateQuery {
	var vp *string
	if v != "" {
		vp = &v
	}
	return &ast.GroupAggregateQuery{Group: group, Method: method, Var: vp}
}

// Insert builds a bare insert query with no preceding match clause.
func Insert(statements ...ast.Statement) *ast.InsertQuery {
	return &ast.InsertQuery{Statements: statements}
}

// Define builds a define query from one or more type statements.
func Define(statements ...*ast.TypeStatement) *ast.DefineQuery {
	return &ast.DefineQuery{Statements: statements}
}

// Undefine builds an undefine query from one or more type statements.
func Undefine(statements ...*ast.TypeStatement) *ast.UndefineQuery {
	return &ast.UndefineQuery{Statements: statements}
}
