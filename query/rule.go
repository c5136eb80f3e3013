package query

import (
	"github.com/typeql/typeql/ast"
	"github.com/typeql/typeql/internal/validate"
)

// RuleBuilder accumulates a rule's when/then clauses before Build validates
// and assembles the TypeStatement that represents it.
type RuleBuilder struct {
	label string
	when  ast.Pattern
	then  ast.Statement
}

// Rule starts a rule definition with the given label.
func Rule(label string) *RuleBuilder {
	return &RuleBuilder{label: label}
}

// When sets the rule's body pattern.
func (r *RuleBuilder) When(p ast.Pattern) *RuleBuilder {
	r.when = p
	return r
}

// Then sets the rule's conclusion statement.
func (r *RuleBuilder) Then(s ast.Statement) *RuleBuilder {
	r.then = s
	return r
}

// Build assembles the rule's backing TypeStatement:
// `<label> sub rule, when {...}, then {...};`, then runs the §4.4
// rule-shape and scope checks before returning it — a rule that builds
// successfully is always a validated one.
func (r *RuleBuilder) Build() (*ast.TypeStatement, error) {
	if r.when == nil || r.then == nil {
		return nil, BuilderError{Kind: "InvalidRule", Message: "rule requires both a when and a then clause"}
	}
	ruleType := Type("rule")
	stmt, err := ast.NewTypeStatement(Type(r.label),
		ast.SubConstraint{Type: ruleType},
		ast.WhenConstraint{Pattern: r.when},
		ast.ThenConstraint{Statement: r.then})
	if err != nil {
		return nil, err
	}
	rule, _ := ast.RuleFromStatement(stmt)
	if err := validate.Rule(rule); err != nil {
		return nil, err
	}
	return stmt, nil
}
