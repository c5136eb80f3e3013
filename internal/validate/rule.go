// Package validate implements the semantic checks of §4.4 that the grammar
// and constructor cannot enforce structurally: rule well-formedness, the
// compute method/algorithm/argument matrix, and get-query filter/sort
// consistency.
package validate

import (
	"fmt"

	"github.com/typeql/typeql/ast"
)

// RuleError reports a rule that parsed but fails a well-formedness check.
type RuleError struct {
	Kind    string
	Message string
}

func (e RuleError) Error() string {
	return fmt.Sprintf("invalid rule (%s): %s", e.Kind, e.Message)
}

// Rule checks a rule definition against §4.4's shape constraints:
//   - when must be a non-empty conjunction (a bare negation or disjunction
//     at the top level is rejected; nest those inside a conjunction instead)
//   - when must not contain a negation anywhere in its tree
//   - then must be exactly one of: a single has-statement, or a relation
//     statement carrying only explicit (non-anonymous) roles
//   - every named variable then references must be bound somewhere in when
func Rule(r *ast.Rule) error {
	when := r.When()
	then := r.Then()
	if when == nil {
		return RuleError{Kind: "InvalidRule", Message: "rule is missing a when clause"}
	}
	if then == nil {
		return RuleError{Kind: "InvalidRule", Message: "rule is missing a then clause"}
	}
	if _, ok := when.(ast.Conjunction); !ok {
		if _, isStmt := when.(ast.StatementPattern); !isStmt {
			return RuleError{Kind: "InvalidRule", Message: "when clause must be a conjunction of patterns"}
		}
	}
	if ast.ContainsNegation(when) {
		return RuleError{Kind: "InvalidRule", Message: "when clause must not contain a negation"}
	}

	bound := ast.NamedVariables(when)
	if err := checkThenShape(then, bound); err != nil {
		return err
	}
	return nil
}

func checkThenShape(then ast.Statement, bound map[string]bool) error {
	constraints := then.Constraints()

	var hasCount, relationCount int
	var hasConstraint ast.HasConstraint
	var relationConstraint ast.RelationConstraint
	for _, c := range constraints {
		switch cc := c.(type) {
		case ast.HasConstraint:
			hasCount++
			hasConstraint = cc
		case ast.RelationConstraint:
			relationCount++
			relationConstraint = cc
		}
	}

	switch {
	case hasCount == 1 && relationCount == 0:
		if nc, ok := hasConstraint.Attr.(ast.NamedConcept); ok {
			if !bound[nc.Name] {
				return RuleError{Kind: "InvalidRule", Message: fmt.Sprintf("then references unbound variable $%s", nc.Name)}
			}
		}
		if nc, ok := then.Head().(ast.NamedConcept); ok {
			if !bound[nc.Name] {
				return RuleError{Kind: "InvalidRule", Message: fmt.Sprintf("then references unbound variable $%s", nc.Name)}
			}
		}
		return nil
	case relationCount == 1 && hasCount == 0:
		for _, rp := range relationConstraint.RolePlayers {
			if rp.Role == nil {
				return RuleError{Kind: "InvalidRule", Message: "then relation must give every role player an explicit role"}
			}
			if nc, ok := rp.Player.(ast.NamedConcept); ok && !bound[nc.Name] {
				return RuleError{Kind: "InvalidRule", Message: fmt.Sprintf("then references unbound variable $%s", nc.Name)}
			}
		}
		if _, ok := then.Head().(*ast.Anonymous); !ok {
			if nc, ok := then.Head().(ast.NamedConcept); ok && !bound[nc.Name] {
				return RuleError{Kind: "InvalidRule", Message: fmt.Sprintf("then references unbound variable $%s", nc.Name)}
			}
		}
		return nil
	default:
		return RuleError{Kind: "InvalidRule", Message: "then clause must be exactly one has-statement or one relation statement"}
	}
}
