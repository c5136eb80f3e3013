package query_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typeql/typeql/ast"
	"github.com/typeql/typeql/query"
)

func TestPredicates_NativeValueAndVariableOperands(t *testing.T) {
	op, err := query.Eq(5)
	require.NoError(t, err)
	cmp, ok := op.(ast.Comparison)
	require.True(t, ok)
	require.Equal(t, ast.CmpEq, cmp.Op)
	require.NotNil(t, cmp.Value)
	require.EqualValues(t, 5, cmp.Value.Long)

	op, err = query.Gt(query.Var("y"))
	require.NoError(t, err)
	cmp, ok = op.(ast.Comparison)
	require.True(t, ok)
	require.Equal(t, ast.CmpGt, cmp.Op)
	require.Nil(t, cmp.Value)
	require.Equal(t, query.Var("y"), cmp.Var)
}

func TestAssign_UnsupportedTypeErrors(t *testing.T) {
	_, err := query.Assign(struct{}{})
	require.Error(t, err)
}
