package query

import "github.com/typeql/typeql/ast"

// Isa returns an `isa <type>` constraint.
func Isa(t ast.Variable) ast.Constraint { return ast.IsaConstraint{Type: t} }

// IsaExact returns an `isa! <type>` constraint.
func IsaExact(t ast.Variable) ast.Constraint { return ast.IsaConstraint{Type: t, Exact: true} }

// Sub returns a `sub <type>` constraint.
func Sub(t ast.Variable) ast.Constraint { return ast.SubConstraint{Type: t} }

// SubExact returns a `sub! <type>` constraint.
func SubExact(t ast.Variable) ast.Constraint { return ast.SubConstraint{Type: t, Strict: true} }

// Has returns a `has <attr> <value>` constraint from a native Go value.
func Has(attr string, value any) (ast.Constraint, error) {
	lit, err := literalFrom(value)
	if err != nil {
		return nil, err
	}
	label := Type(attr)
	stmt, err := ast.NewAttributeStatement(Anon(), ast.ValueConstraint{Operation: ast.Assignment{Value: lit}}, ast.IsaConstraint{Type: label})
	if err != nil {
		return nil, err
	}
	return ast.HasConstraint{AttrType: &label, Value: stmt}, nil
}

// HasVar returns a `has <attr> $var` constraint referencing an existing
// variable rather than an inline value.
func HasVar(attr string, v ast.Variable) ast.Constraint {
	label := Type(attr)
	return ast.HasConstraint{AttrType: &label, Attr: v}
}

// Key returns a `key <attr> <value>` constraint.
func Key(attr string, value any) (ast.Constraint, error) {
	c, err := Has(attr, value)
	if err != nil {
		return nil, err
	}
	hc := c.(ast.HasConstraint)
	hc.IsKey = true
	return hc, nil
}

// Plays returns a `plays <role>` constraint.
func Plays(role string) ast.Constraint { return ast.PlaysConstraint{Role: Type(role)} }

// Relates returns a `relates <role>` constraint.
func Relates(role string) ast.Constraint { return ast.RelatesConstraint{Role: Type(role)} }

// RelatesAs returns a `relates <role> as <overridden>` constraint.
func RelatesAs(role, overridden string) ast.Constraint {
	o := Type(overridden)
	return ast.RelatesConstraint{Role: Type(role), Overridden: &o}
}

// Abstract returns an `abstract` constraint.
func Abstract() ast.Constraint { return ast.AbstractConstraint{} }

// Regex returns a `regex "<pattern>"` constraint.
func Regex(pattern string) ast.Constraint { return ast.RegexConstraint{Pattern: pattern} }

// ValueType returns a `value <kind>` constraint.
func ValueType(kind ast.ValueTypeKind) ast.Constraint { return ast.ValueTypeConstraint{ValueKind: kind} }

// Id returns an explicit concept-id constraint.
func Id(literal string) ast.Constraint { return ast.IdConstraint{Literal: literal} }

// RolePlayer is one role/player entry for Rel.
type RolePlayer struct {
	Role   string
	Player ast.Variable
}

// Rel returns a relation constraint from a list of role players. A
// RolePlayer with an empty Role leaves the role unresolved, matching
// `($player)` shorthand.
func Rel(players ...RolePlayer) ast.Constraint {
	rc := ast.RelationConstraint{}
	for _, p := range players {
		var role *ast.Label
		if p.Role != "" {
			l := Type(p.Role)
			role = &l
		}
		rc.RolePlayers = append(rc.RolePlayers, ast.RolePlayer{Role: role, Player: p.Player})
	}
	return rc
}

// Value wraps a value predicate constraint built by Eq/Neq/Lt/... below.
func Value(op ast.ValueOperation) ast.Constraint { return ast.ValueConstraint{Operation: op} }

// NeqVar returns a `!== $other` concept-identity constraint.
func NeqVar(other ast.Variable) ast.Constraint { return ast.NeqVarConstraint{Other: other} }
