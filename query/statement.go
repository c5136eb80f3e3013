package query

import "github.com/typeql/typeql/ast"

// Thing builds a `$var isa ..., ...;` instance statement.
func Thing(head ast.Variable, constraints ...ast.Constraint) (*ast.ThingStatement, error) {
	return ast.NewThingStatement(head, constraints...)
}

// Relation builds a relation statement. At least one constraint must be a
// Rel(...) constraint.
func Relation(head ast.Variable, constraints ...ast.Constraint) (*ast.RelationStatement, error) {
	return ast.NewRelationStatement(head, constraints...)
}

// Attribute builds an attribute-instance statement, `$a "value" isa name;`.
func Attribute(head ast.Variable, constraints ...ast.Constraint) (*ast.AttributeStatement, error) {
	return ast.NewAttributeStatement(head, constraints...)
}

// TypeStmt builds a schema statement about a type, `person sub entity;`.
func TypeStmt(label ast.Label, constraints ...ast.Constraint) (*ast.TypeStatement, error) {
	return ast.NewTypeStatement(label, constraints...)
}

// Stmt lifts any Statement into the Pattern sum.
func Stmt(s ast.Statement) ast.Pattern { return ast.StatementPattern{Statement: s} }
