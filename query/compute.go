package query

import (
	"github.com/typeql/typeql/ast"
	"github.com/typeql/typeql/internal/validate"
)

// ComputeBuilder accumulates a compute query's clauses. Build runs the
// method/algorithm/argument matrix check before returning.
type ComputeBuilder struct {
	q *ast.ComputeQuery
}

// Compute starts a compute query for the given method.
func Compute(method ast.ComputeMethod) *ComputeBuilder {
	return &ComputeBuilder{q: &ast.ComputeQuery{Method: method}}
}

// In sets the compute query's `in` type set.
func (c *ComputeBuilder) In(types ...string) *ComputeBuilder {
	for _, t := range types {
		c.q.In = append(c.q.In, Type(t))
	}
	return c
}

// Of sets the compute query's `of` type set.
func (c *ComputeBuilder) Of(types ...string) *ComputeBuilder {
	for _, t := range types {
		c.q.Of = append(c.q.Of, Type(t))
	}
	return c
}

// From sets the compute query's `from` type, for `compute path`.
func (c *ComputeBuilder) From(t string) *ComputeBuilder {
	l := Type(t)
	c.q.From = &l
	return c
}

// To sets the compute query's `to` type, for `compute path`.
func (c *ComputeBuilder) To(t string) *ComputeBuilder {
	l := Type(t)
	c.q.To = &l
	return c
}

// Using sets the compute query's algorithm.
func (c *ComputeBuilder) Using(alg ast.ComputeAlgorithm) *ComputeBuilder {
	c.q.Algorithm = alg
	return c
}

// Where appends a `where` argument, deduped last-write-wins at Build time.
func (c *ComputeBuilder) Where(param ast.ComputeParam, value float64) *ComputeBuilder {
	c.q.Where = append(c.q.Where, ast.ComputeArg{Param: param, Value: value})
	return c
}

// Build finalises the compute query and runs the §4.7 compute matrix check.
func (c *ComputeBuilder) Build() (*ast.ComputeQuery, error) {
	c.q.Where = ast.DedupeWhere(c.q.Where)
	if err := validate.Compute(c.q); err != nil {
		return nil, err
	}
	return c.q, nil
}
