package ast

import "fmt"

// PatternKind discriminates the closed recursive sum of pattern shapes.
type PatternKind int

const (
	PatternConjunction PatternKind = iota
	PatternDisjunction
	PatternNegation
	PatternStatement
)

// Pattern is the closed recursive sum: Conjunction, Disjunction, Negation,
// or a single Statement.
type Pattern interface {
	Kind() PatternKind
	patternNode()
}

// Conjunction requires at least one sub-pattern.
type Conjunction struct {
	Patterns []Pattern
}

func (Conjunction) Kind() PatternKind { return PatternConjunction }
func (Conjunction) patternNode()      {}

// Disjunction requires at least two branches.
type Disjunction struct {
	Branches []Pattern
}

func (Disjunction) Kind() PatternKind { return PatternDisjunction }
func (Disjunction) patternNode()      {}

// Negation wraps a single inner pattern.
type Negation struct {
	Inner Pattern
}

func (Negation) Kind() PatternKind { return PatternNegation }
func (Negation) patternNode()      {}

// StatementPattern lifts a single Statement into the Pattern sum.
type StatementPattern struct {
	Statement Statement
}

func (StatementPattern) Kind() PatternKind { return PatternStatement }
func (StatementPattern) patternNode()      {}

// PatternError reports a malformed pattern composition (too few branches).
type PatternError struct {
	Kind    string
	Message string
}

func (e PatternError) Error() string {
	return fmt.Sprintf("pattern error (%s): %s", e.Kind, e.Message)
}

// And builds a Conjunction per §4.6: a single-element list collapses to its
// sole pattern rather than wrapping it.
func And(patterns []Pattern) Pattern {
	if len(patterns) == 1 {
		return patterns[0]
	}
	return Conjunction{Patterns: patterns}
}

// Or builds a Disjunction per §4.6. Branches with more than one statement
// are themselves wrapped in a Conjunction by the caller before reaching Or;
// Or itself only enforces the arity-2 invariant.
func Or(branches []Pattern) (Pattern, error) {
	if len(branches) < 2 {
		return nil, PatternError{Kind: "TooFewBranches", Message: "disjunction requires at least two branches"}
	}
	return Disjunction{Branches: branches}, nil
}

// Not wraps p in a Negation. Structural collapsing of successive negations
// is deliberately not performed here — §4.6 reserves that judgement for
// rule validation, not pattern construction.
func Not(p Pattern) Pattern {
	return Negation{Inner: p}
}

// ContainsNegation reports whether p contains a Negation anywhere in its
// tree without crossing into a nested rule body (callers pass the pattern
// of a single rule's `when` clause).
func ContainsNegation(p Pattern) bool {
	switch n := p.(type) {
	case Conjunction:
		for _, sub := range n.Patterns {
			if ContainsNegation(sub) {
				return true
			}
		}
		return false
	case Disjunction:
		for _, sub := range n.Branches {
			if ContainsNegation(sub) {
				return true
			}
		}
		return false
	case Negation:
		return true
	case StatementPattern:
		return false
	default:
		return false
	}
}

// NamedVariables collects the set of named (concept or value) variable
// names reachable anywhere in p.
func NamedVariables(p Pattern) map[string]bool {
	out := map[string]bool{}
	collectNamedVariables(p, out)
	return out
}

func collectNamedVariables(p Pattern, out map[string]bool) {
	switch n := p.(type) {
	case Conjunction:
		for _, sub := range n.Patterns {
			collectNamedVariables(sub, out)
		}
	case Disjunction:
		for _, sub := range n.Branches {
			collectNamedVariables(sub, out)
		}
	case Negation:
		collectNamedVariables(n.Inner, out)
	case StatementPattern:
		collectStatementVariables(n.Statement, out)
	}
}

func collectStatementVariables(s Statement, out map[string]bool) {
	addVar(s.Head(), out)
	for _, c := range s.Constraints() {
		switch con := c.(type) {
		case IsaConstraint:
			addVar(con.Type, out)
		case SubConstraint:
			addVar(con.Type, out)
		case HasConstraint:
			if con.Attr != nil {
				addVar(con.Attr, out)
			}
			if con.Value != nil {
				collectStatementVariables(con.Value, out)
			}
		case ValueConstraint:
			if cmp, ok := con.Operation.(Comparison); ok && cmp.Var != nil {
				addVar(cmp.Var, out)
			}
		case RelationConstraint:
			for _, rp := range con.RolePlayers {
				addVar(rp.Player, out)
			}
		case NeqVarConstraint:
			addVar(con.Other, out)
		case WhenConstraint:
			collectNamedVariables(con.Pattern, out)
		case ThenConstraint:
			collectStatementVariables(con.Statement, out)
		}
	}
}

func addVar(v Variable, out map[string]bool) {
	switch vv := v.(type) {
	case NamedConcept:
		out[vv.Name] = true
	case NamedValue:
		out[vv.Name] = true
	}
}
