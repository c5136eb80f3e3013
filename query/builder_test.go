package query_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typeql/typeql/ast"
	"github.com/typeql/typeql/query"
)

func TestThingBuilder_IsaAndHas(t *testing.T) {
	has, err := query.Has("name", "Alice")
	require.NoError(t, err)

	stmt, err := query.Thing(query.Var("x"), query.Isa(query.Type("person")), has)
	require.NoError(t, err)
	require.Equal(t, ast.StatementThing, stmt.Kind())
	require.Len(t, stmt.Constraints(), 2)
}

func TestRelationBuilder_RequiresRelationConstraint(t *testing.T) {
	_, err := query.Relation(query.Anon(), query.Isa(query.Type("marriage")))
	require.Error(t, err, "a relation statement without a Rel(...) constraint should be rejected")

	rel := query.Rel(
		query.RolePlayer{Role: "spouse", Player: query.Var("x")},
		query.RolePlayer{Role: "spouse", Player: query.Var("y")},
	)
	stmt, err := query.Relation(query.Anon(), rel, query.Isa(query.Type("marriage")))
	require.NoError(t, err)
	require.Equal(t, ast.StatementRelation, stmt.Kind())
}

func TestMatchBuilder_Get(t *testing.T) {
	pattern := query.Stmt(mustThing(t, query.Var("x"), query.Isa(query.Type("person"))))
	g, err := query.Match(pattern).Get(query.Filter("x"), query.Limit(10))
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, g.Filter)
	require.NotNil(t, g.Limit)
	require.EqualValues(t, 10, *g.Limit)
}

func TestMatchBuilder_EmptyMatchErrors(t *testing.T) {
	_, err := query.Match().Get()
	require.Error(t, err)
}

func TestComputeBuilder_DedupesWhereLastWriteWins(t *testing.T) {
	c, err := query.Compute(ast.ComputeCluster).
		Using(ast.AlgorithmKCore).
		Where(ast.ParamK, 2).
		Where(ast.ParamK, 5).
		Build()
	require.NoError(t, err)
	require.Len(t, c.Where, 1)
	require.Equal(t, 5.0, c.Where[0].Value)
}

func TestRuleBuilder_RequiresWhenAndThen(t *testing.T) {
	_, err := query.Rule("my-rule").Build()
	require.Error(t, err)

	when := query.Stmt(mustThing(t, query.Var("x"), query.Isa(query.Type("person"))))
	then, err := query.Thing(query.Var("x"), query.HasVar("verified", query.Var("x")))
	require.NoError(t, err)

	ts, err := query.Rule("my-rule").When(when).Then(then).Build()
	require.NoError(t, err)
	rule, ok := ast.RuleFromStatement(ts)
	require.True(t, ok)
	require.Equal(t, "my-rule", rule.Label())
}

func TestRuleBuilder_RejectsUnboundThenVariable(t *testing.T) {
	when := query.Stmt(mustThing(t, query.Var("x"), query.Isa(query.Type("person"))))
	then, err := query.Thing(query.Var("y"), query.HasVar("verified", query.Var("y")))
	require.NoError(t, err)

	_, err = query.Rule("my-rule").When(when).Then(then).Build()
	require.Error(t, err, "then references $y, which when never binds")
}

func TestMatchBuilder_Get_RejectsSortExcludedFromFilter(t *testing.T) {
	has := query.HasVar("name", query.Var("n"))
	pattern := query.Stmt(mustThing(t, query.Var("x"), query.Isa(query.Type("person")), has))

	_, err := query.Match(pattern).Get(query.Filter("x"), query.Sort("n", ast.SortAsc))
	require.Error(t, err, "sort var $n is bound in match but excluded from the non-empty filter")
}

func mustThing(t *testing.T, head ast.Variable, constraints ...ast.Constraint) *ast.ThingStatement {
	t.Helper()
	s, err := query.Thing(head, constraints...)
	require.NoError(t, err)
	return s
}
