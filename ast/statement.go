package ast

import "fmt"

// StatementKind discriminates the closed sum of statement shapes.
type StatementKind int

const (
	StatementType StatementKind = iota
	StatementThing
	StatementRelation
	StatementAttribute
)

func (k StatementKind) String() string {
	switch k {
	case StatementType:
		return "type"
	case StatementThing:
		return "thing"
	case StatementRelation:
		return "relation"
	case StatementAttribute:
		return "attribute"
	default:
		return "unknown"
	}
}

// Statement binds a head variable to an ordered, deduplicated collection of
// constraints.
type Statement interface {
	Kind() StatementKind
	Head() Variable
	Constraints() []Constraint
	statementNode()
}

type base struct {
	head        Variable
	constraints []Constraint
}

func (b base) Head() Variable            { return b.head }
func (b base) Constraints() []Constraint { return b.constraints }

// TypeStatement: a statement about a type (`person sub entity, abstract;`),
// including rule definitions (`sub rule` plus when/then constraints).
type TypeStatement struct{ base }

func (TypeStatement) Kind() StatementKind { return StatementType }
func (TypeStatement) statementNode()      {}

// ThingStatement: a statement about an instance (`$x isa person;`).
type ThingStatement struct{ base }

func (ThingStatement) Kind() StatementKind { return StatementThing }
func (ThingStatement) statementNode()      {}

// RelationStatement: a thing statement that also carries a RelationConstraint
// (`$r (spouse: $x, spouse: $y) isa marriage;`).
type RelationStatement struct{ base }

func (RelationStatement) Kind() StatementKind { return StatementRelation }
func (RelationStatement) statementNode()      {}

// AttributeStatement: a thing statement whose head denotes an attribute
// instance (`$a "Alice" isa name;`, or the anonymous expansion of a `has`
// shorthand).
type AttributeStatement struct{ base }

func (AttributeStatement) Kind() StatementKind { return StatementAttribute }
func (AttributeStatement) statementNode()      {}

// StatementError reports a statement whose constraints are mutually
// incompatible (more than one of a singleton constraint kind) or otherwise
// ill-shaped for the statement variant it was attached to.
type StatementError struct {
	Kind    string
	Message string
}

func (e StatementError) Error() string {
	return fmt.Sprintf("statement error (%s): %s", e.Kind, e.Message)
}

// singleton lists the constraint kinds a statement may carry at most once.
var singleton = map[ConstraintKind]string{
	ConstraintIsa:       "isa",
	ConstraintSub:       "sub",
	ConstraintValueType: "value",
	ConstraintRegex:     "regex",
	ConstraintId:        "id",
	ConstraintRelation:  "relation",
	ConstraintWhen:      "when",
	ConstraintThen:      "then",
	ConstraintLabel:     "label",
}

// dedupeConstraints returns constraints in first-seen order with exact
// duplicates collapsed, and an error if two distinct constraints of a
// singleton kind remain.
func dedupeConstraints(constraints []Constraint) ([]Constraint, error) {
	out := make([]Constraint, 0, len(constraints))
	seenSingleton := map[ConstraintKind]Constraint{}
	for _, c := range constraints {
		duplicate := false
		for _, existing := range out {
			if constraintsEqual(existing, c) {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		if name, isSingleton := singleton[c.Kind()]; isSingleton {
			if prior, ok := seenSingleton[c.Kind()]; ok && !constraintsEqual(prior, c) {
				return nil, StatementError{
					Kind:    "MultipleConstraints",
					Message: fmt.Sprintf("statement carries more than one distinct %q constraint", name),
				}
			}
			seenSingleton[c.Kind()] = c
		}
		out = append(out, c)
	}
	return out, nil
}

// constraintsEqual compares two constraints for structural equality. It is
// a small hand-written comparison rather than reflect.DeepEqual so that
// Variable fields (which may box *Anonymous pointers) compare by the same
// identity/value rule VariablesEqual uses.
func constraintsEqual(a, b Constraint) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case IsaConstraint:
		y := b.(IsaConstraint)
		return x.Exact == y.Exact && VariablesEqual(x.Type, y.Type)
	case SubConstraint:
		y := b.(SubConstraint)
		return x.Strict == y.Strict && VariablesEqual(x.Type, y.Type)
	case ValueTypeConstraint:
		y := b.(ValueTypeConstraint)
		return x.ValueKind == y.ValueKind
	case RegexConstraint:
		y := b.(RegexConstraint)
		return x.Pattern == y.Pattern
	case IdConstraint:
		y := b.(IdConstraint)
		return x.Literal == y.Literal
	case AbstractConstraint:
		return true
	case LabelConstraint:
		y := b.(LabelConstraint)
		return x.Label == y.Label
	case PlaysConstraint:
		y := b.(PlaysConstraint)
		return x.Role == y.Role
	case RelatesConstraint:
		y := b.(RelatesConstraint)
		if x.Role != y.Role {
			return false
		}
		if (x.Overridden == nil) != (y.Overridden == nil) {
			return false
		}
		return x.Overridden == nil || *x.Overridden == *y.Overridden
	case NeqVarConstraint:
		y := b.(NeqVarConstraint)
		return VariablesEqual(x.Other, y.Other)
	default:
		// WhenConstraint, ThenConstraint, ValueConstraint, RelationConstraint
		// and HasConstraint carry nested patterns/statements/operations that
		// are never identical-by-construction in practice; treat as distinct
		// so repeated occurrences surface as a genuine multiplicity error.
		return false
	}
}

// NewTypeStatement validates and builds a TypeStatement.
func NewTypeStatement(head Variable, constraints ...Constraint) (*TypeStatement, error) {
	deduped, err := dedupeConstraints(constraints)
	if err != nil {
		return nil, err
	}
	return &TypeStatement{base{head: head, constraints: deduped}}, nil
}

// NewThingStatement validates and builds a ThingStatement.
func NewThingStatement(head Variable, constraints ...Constraint) (*ThingStatement, error) {
	deduped, err := dedupeConstraints(constraints)
	if err != nil {
		return nil, err
	}
	return &ThingStatement{base{head: head, constraints: deduped}}, nil
}

// NewRelationStatement validates and builds a RelationStatement. It requires
// exactly one RelationConstraint among the given constraints.
func NewRelationStatement(head Variable, constraints ...Constraint) (*RelationStatement, error) {
	deduped, err := dedupeConstraints(constraints)
	if err != nil {
		return nil, err
	}
	found := false
	for _, c := range deduped {
		if c.Kind() == ConstraintRelation {
			found = true
		}
	}
	if !found {
		return nil, StatementError{Kind: "MissingRelation", Message: "relation statement requires a relation constraint"}
	}
	return &RelationStatement{base{head: head, constraints: deduped}}, nil
}

// NewAttributeStatement validates and builds an AttributeStatement.
func NewAttributeStatement(head Variable, constraints ...Constraint) (*AttributeStatement, error) {
	deduped, err := dedupeConstraints(constraints)
	if err != nil {
		return nil, err
	}
	return &AttributeStatement{base{head: head, constraints: deduped}}, nil
}

// HasIsa reports whether a statement explicitly carries an Isa constraint,
// and returns it.
func HasIsa(s Statement) (IsaConstraint, bool) {
	for _, c := range s.Constraints() {
		if isa, ok := c.(IsaConstraint); ok {
			return isa, true
		}
	}
	return IsaConstraint{}, false
}

// HasRelation returns the statement's RelationConstraint, if any.
func HasRelation(s Statement) (RelationConstraint, bool) {
	for _, c := range s.Constraints() {
		if rel, ok := c.(RelationConstraint); ok {
			return rel, true
		}
	}
	return RelationConstraint{}, false
}
