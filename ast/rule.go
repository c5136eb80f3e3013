package ast

// Rule is a definable object with a `when` pattern and a `then`
// thing-statement, used by a downstream inference engine. A Rule always
// wraps a TypeStatement carrying a WhenConstraint and a ThenConstraint (the
// representation `define <label> sub rule, when {...}, then {...};`
// produces) — Rule exists as a narrow, pre-validated view onto that
// statement so callers don't re-destructure constraints by hand.
type Rule struct {
	Statement *TypeStatement
}

// Label returns the rule's type label.
func (r *Rule) Label() string {
	if lbl, ok := r.Statement.Head().(Label); ok {
		return lbl.Name
	}
	return ""
}

// When returns the rule's body pattern.
func (r *Rule) When() Pattern {
	for _, c := range r.Statement.Constraints() {
		if w, ok := c.(WhenConstraint); ok {
			return w.Pattern
		}
	}
	return nil
}

// Then returns the rule's conclusion statement.
func (r *Rule) Then() Statement {
	for _, c := range r.Statement.Constraints() {
		if t, ok := c.(ThenConstraint); ok {
			return t.Statement
		}
	}
	return nil
}

// RuleFromStatement extracts a Rule view from a TypeStatement that carries
// When/Then constraints, without running §4.4 validation — callers that
// need a validated Rule should go through internal/validate.
func RuleFromStatement(s *TypeStatement) (*Rule, bool) {
	hasWhen, hasThen := false, false
	for _, c := range s.Constraints() {
		switch c.(type) {
		case WhenConstraint:
			hasWhen = true
		case ThenConstraint:
			hasThen = true
		}
	}
	if !hasWhen || !hasThen {
		return nil, false
	}
	return &Rule{Statement: s}, true
}
