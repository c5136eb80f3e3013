package ast

// ConstraintKind discriminates the closed sum of constraints a statement's
// head variable can carry.
type ConstraintKind int

const (
	ConstraintIsa ConstraintKind = iota
	ConstraintSub
	ConstraintHas
	ConstraintPlays
	ConstraintRelates
	ConstraintRegex
	ConstraintValueType
	ConstraintAbstract
	ConstraintLabel
	ConstraintWhen
	ConstraintThen
	ConstraintValue
	ConstraintRelation
	ConstraintNeqVar
	ConstraintId
)

// Constraint is the closed sum of per-statement predicates.
type Constraint interface {
	Kind() ConstraintKind
	constraintNode()
}

// IsaConstraint: `isa <type>` / `isa! <type>`.
type IsaConstraint struct {
	Type  Variable
	Exact bool
}

func (IsaConstraint) Kind() ConstraintKind { return ConstraintIsa }
func (IsaConstraint) constraintNode()      {}

// SubConstraint: `sub <type>` / `sub! <type>`.
type SubConstraint struct {
	Type   Variable
	Strict bool
}

func (SubConstraint) Kind() ConstraintKind { return ConstraintSub }
func (SubConstraint) constraintNode()      {}

// HasConstraint unifies the `key` and `has` grammar productions. Exactly
// one of Attr (a bare variable reference, `has age $y`) or Value (an
// anonymous attribute statement expanded from a literal shorthand, `has
// name "Alice"`) is set for instance-level has; both are nil for the
// schema-level form (`person sub entity, has name;`), which carries only
// AttrType.
type HasConstraint struct {
	AttrType *Label
	Attr     Variable
	Value    *AttributeStatement
	IsKey    bool
}

func (HasConstraint) Kind() ConstraintKind { return ConstraintHas }
func (HasConstraint) constraintNode()      {}

// PlaysConstraint: `plays <role>`.
type PlaysConstraint struct {
	Role Label
}

func (PlaysConstraint) Kind() ConstraintKind { return ConstraintPlays }
func (PlaysConstraint) constraintNode()      {}

// RelatesConstraint: `relates <role> [as <overridden>]`.
type RelatesConstraint struct {
	Role       Label
	Overridden *Label
}

func (RelatesConstraint) Kind() ConstraintKind { return ConstraintRelates }
func (RelatesConstraint) constraintNode()      {}

// RegexConstraint: `regex "<pattern>"`.
type RegexConstraint struct {
	Pattern string
}

func (RegexConstraint) Kind() ConstraintKind { return ConstraintRegex }
func (RegexConstraint) constraintNode()      {}

// ValueTypeConstraint: `value <kind>`.
type ValueTypeConstraint struct {
	ValueKind ValueTypeKind
}

func (ValueTypeConstraint) Kind() ConstraintKind { return ConstraintValueType }
func (ValueTypeConstraint) constraintNode()      {}

// AbstractConstraint: `abstract`.
type AbstractConstraint struct{}

func (AbstractConstraint) Kind() ConstraintKind { return ConstraintAbstract }
func (AbstractConstraint) constraintNode()      {}

// LabelConstraint gives an explicit type label to a statement whose head is
// not already a Label variable.
type LabelConstraint struct {
	Label Label
}

func (LabelConstraint) Kind() ConstraintKind { return ConstraintLabel }
func (LabelConstraint) constraintNode()      {}

// WhenConstraint: the `when { ... }` clause of a rule definition.
type WhenConstraint struct {
	Pattern Pattern
}

func (WhenConstraint) Kind() ConstraintKind { return ConstraintWhen }
func (WhenConstraint) constraintNode()      {}

// ThenConstraint: the `then { ... }` clause of a rule definition.
type ThenConstraint struct {
	Statement Statement
}

func (ThenConstraint) Kind() ConstraintKind { return ConstraintThen }
func (ThenConstraint) constraintNode()      {}

// ValueConstraint wraps the Assignment/Comparison sub-algebra.
type ValueConstraint struct {
	Operation ValueOperation
}

func (ValueConstraint) Kind() ConstraintKind { return ConstraintValue }
func (ValueConstraint) constraintNode()      {}

// RolePlayer is one player entry inside a relation constraint. Role is nil
// when the grammar omitted an explicit role type (the engine resolves the
// role later); Player is the filler variable.
type RolePlayer struct {
	Role   *Label
	Player Variable
}

// RelationConstraint: `($role: $player, ...)`.
type RelationConstraint struct {
	RolePlayers []RolePlayer
}

func (RelationConstraint) Kind() ConstraintKind { return ConstraintRelation }
func (RelationConstraint) constraintNode()      {}

// NeqVarConstraint: `!== $other`.
type NeqVarConstraint struct {
	Other Variable
}

func (NeqVarConstraint) Kind() ConstraintKind { return ConstraintNeqVar }
func (NeqVarConstraint) constraintNode()      {}

// IdConstraint: an explicit concept-id literal restriction.
type IdConstraint struct {
	Literal string
}

func (IdConstraint) Kind() ConstraintKind { return ConstraintId }
func (IdConstraint) constraintNode()      {}
