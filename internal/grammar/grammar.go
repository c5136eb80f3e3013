package grammar

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ---- parse-tree node types (C3) ----
// These mirror the TypeQL grammar directly; internal/construct walks them
// into the canonical ast package types, performing the canonicalisations
// §4.3 describes (key/has unification, isa/isa! -> Isa{Exact}, etc).

type QueryNode struct {
	Pos      lexer.Position  `parser:""`
	Define   *DefineNode     `parser:"(  'define' @@"`
	Undefine *UndefineNode   `parser:" | 'undefine' @@"`
	Compute  *ComputeNode    `parser:" | 'compute' @@"`
	Match    *MatchQueryNode `parser:" | 'match' @@"`
	Insert   *InsertOnlyNode `parser:" | 'insert' @@ )"`
}

type QueryListNode struct {
	Queries []*QueryNode `parser:"@@*"`
}

type DefineNode struct {
	Statements []*StatementNode `parser:"@@ (';' @@)* ';'"`
}

type UndefineNode struct {
	Statements []*StatementNode `parser:"@@ (';' @@)* ';'"`
}

type InsertOnlyNode struct {
	Statements []*StatementNode `parser:"@@ (';' @@)* ';'"`
}

type MatchQueryNode struct {
	Patterns []*PatternNode  `parser:"@@ (';' @@)* ';'"`
	Insert   *InsertOnlyNode `parser:"(  'insert' @@"`
	Delete   *DeleteTailNode `parser:" | 'delete' @@"`
	Get      *GetTailNode    `parser:" | @@ )"`
}

type DeleteTailNode struct {
	Statements []*StatementNode `parser:"@@ (';' @@)* ';'"`
}

type SortNode struct {
	Var   string `parser:"@(ConceptVar|ValueVar)"`
	Order string `parser:"@('asc'|'desc')?"`
	Semi  string `parser:"';'"`
}

type AggMethodNode struct {
	Method string  `parser:"@('count'|'max'|'min'|'mean'|'median'|'sum'|'std')"`
	Var    *string `parser:"@(ConceptVar|ValueVar)?"`
	Semi   string  `parser:"';'"`
}

type GetTailNode struct {
	Filter   []string       `parser:"'get' (@(ConceptVar|ValueVar) (',' @(ConceptVar|ValueVar))*)? ';'"`
	Sort     *SortNode      `parser:"('sort' @@)?"`
	Offset   *int64         `parser:"('offset' @Int ';')?"`
	Limit    *int64         `parser:"('limit' @Int ';')?"`
	GroupVar *string        `parser:"( 'group' @(ConceptVar|ValueVar) ';'"`
	GroupAgg *AggMethodNode `parser:"  @@?"`
	Agg      *AggMethodNode `parser:"| @@? )"`
}

// ---- patterns ----

type PatternNode struct {
	Negation    *NegationNode    `parser:"  @@"`
	Disjunction *DisjunctionNode `parser:"| @@"`
	Group       *PatternGroupNode `parser:"| @@"`
	Statement   *StatementNode   `parser:"| @@"`
}

type BlockNode struct {
	Patterns []*PatternNode `parser:"@@ (';' @@)* ';'?"`
}

type PatternGroupNode struct {
	Block *BlockNode `parser:"'{' @@ '}'"`
}

type DisjunctionNode struct {
	Branches []*PatternGroupNode `parser:"@@ ('or' @@)+"`
}

type NegationNode struct {
	Body *PatternGroupNode `parser:"'not' @@"`
}

type SinglePatternNode struct {
	Pattern *PatternNode `parser:"@@ ';'?"`
}

type PatternListNode struct {
	Patterns []*PatternNode `parser:"(@@ ';'?)*"`
}

// ---- statements ----

type VarNode struct {
	Concept string `parser:"  @ConceptVar"`
	Value   string `parser:"| @ValueVar"`
}

type LabelNode struct {
	Scope string `parser:"(@Ident ':')?"`
	Name  string `parser:"@Ident"`
}

// HeadNode is a variable-or-label reference, used both as a statement head
// and wherever the grammar allows a type to be named either directly or
// through a type variable (isa/sub operands, role types, etc).
type HeadNode struct {
	Var   *VarNode   `parser:"  @@"`
	Label *LabelNode `parser:"| @@"`
}

type StatementNode struct {
	Pos         lexer.Position    `parser:""`
	Head        *HeadNode         `parser:"@@"`
	Constraints []*ConstraintNode `parser:"(@@ (',' @@)*)?"`
}

type ConstraintNode struct {
	Isa       *IsaNode            `parser:"  @@"`
	Sub       *SubNode            `parser:"| @@"`
	Has       *HasNode            `parser:"| @@"`
	Plays     *PlaysNode          `parser:"| @@"`
	Relates   *RelatesNode        `parser:"| @@"`
	Regex     *RegexNode          `parser:"| @@"`
	ValueType *ValueTypeNode      `parser:"| @@"`
	Abstract  *AbstractNode       `parser:"| @@"`
	LabelSet  *LabelAssignNode    `parser:"| @@"`
	When      *WhenNode           `parser:"| @@"`
	Then      *ThenNode           `parser:"| @@"`
	Relation  *RelationNode       `parser:"| @@"`
	Id        *IdClauseNode       `parser:"| @@"`
	ValuePred *ValuePredicateNode `parser:"| @@"`
}

type IsaNode struct {
	Exact string    `parser:"@('isa!'|'isa')"`
	Type  *HeadNode `parser:"@@"`
}

type SubNode struct {
	Exact string    `parser:"@('sub!'|'sub')"`
	Type  *HeadNode `parser:"@@"`
}

type HasNode struct {
	KeyWord  string       `parser:"@('has'|'key')"`
	AttrType *LabelNode   `parser:"@@?"`
	Var      *VarNode     `parser:"(  @@"`
	Literal  *LiteralNode `parser:" | @@ )?"`
}

type PlaysNode struct {
	Role *LabelNode `parser:"'plays' @@"`
}

type RelatesNode struct {
	Role       *LabelNode `parser:"'relates' @@"`
	Overridden *LabelNode `parser:"('as' @@)?"`
}

type RegexNode struct {
	Pattern string `parser:"'regex' @String"`
}

type ValueTypeNode struct {
	ValueKind string `parser:"'value' @('long'|'double'|'string'|'boolean'|'datetime')"`
}

type AbstractNode struct {
	Present bool `parser:"@'abstract'"`
}

type LabelAssignNode struct {
	Label *LabelNode `parser:"'type' @@"`
}

type WhenNode struct {
	Body *PatternGroupNode `parser:"'when' @@"`
}

type ThenBlockNode struct {
	Statement *StatementNode `parser:"'{' @@ ';'? '}'"`
}

type ThenNode struct {
	Body *ThenBlockNode `parser:"'then' @@"`
}

type RolePlayerNode struct {
	Role   *LabelNode `parser:"(@@ ':')?"`
	Player *VarNode   `parser:"@@"`
}

type RelationNode struct {
	RolePlayers []*RolePlayerNode `parser:"'(' @@ (',' @@)* ')'"`
}

type IdClauseNode struct {
	Literal string `parser:"'id' @String"`
}

// ValuePredicateNode covers every bare comparator-led (or bare-literal)
// constraint: value comparisons/assignments on an attribute statement
// (`== "Alice"`, `> 5`, `"Alice"`) and concept-identity inequality on a
// thing/relation statement (`!== $other`). internal/construct picks
// ValueConstraint vs NeqVarConstraint from the enclosing statement's shape,
// since the two productions are syntactically identical.
type ValuePredicateNode struct {
	Comparator string       `parser:"@(Comparator|'contains'|'like')?"`
	Literal    *LiteralNode `parser:"(  @@"`
	Var        *HeadNode    `parser:" | @@ )"`
}

type LiteralNode struct {
	Pos      lexer.Position `parser:""`
	Str      *string        `parser:"  @String"`
	DateTime *string        `parser:"| @DateTime"`
	Date     *string        `parser:"| @Date"`
	Real     *float64       `parser:"| @Real"`
	Int      *int64         `parser:"| @Int"`
	Bool     *string        `parser:"| @('true'|'false')"`
}

// ---- compute ----

type ComputeNode struct {
	Method string            `parser:"@('count'|'max'|'min'|'mean'|'median'|'sum'|'std'|'path'|'centrality'|'cluster')"`
	In     []*LabelNode      `parser:"( 'in' ( @@ | '[' @@ (',' @@)* ']' ) )?"`
	Of     []*LabelNode      `parser:"( 'of' ( @@ | '[' @@ (',' @@)* ']' ) )?"`
	From   *LabelNode        `parser:"('from' @@)?"`
	To     *LabelNode        `parser:"('to' @@)?"`
	Using  *string           `parser:"('using' @('degree'|'k-core'|'connected-component'))?"`
	Where  []*ComputeArgNode `parser:"( 'where' ( '[' @@ (',' @@)* ']' | @@ ) )?"`
	Semi   string            `parser:"';'"`
}

type ComputeArgNode struct {
	Param string  `parser:"@('min-k'|'k'|'size'|'contains')"`
	Value float64 `parser:"'=' @(Real|Int)"`
}

// ---- parser construction (C3: two-pass strategy) ----
//
// fastParser bails on the first ambiguity (NoLookahead); diagnosticParser
// backtracks fully (MaxLookahead) and is the only pass that produces the
// caret-pointer SyntaxError of §6.3/§7. Both share the same grammar types
// and lexer, so their outputs are structurally identical whenever the fast
// pass succeeds at all.
var (
	fastParser       = participle.MustBuild[QueryListNode](sharedOptions(participle.UseLookahead(participle.NoLookahead))...)
	diagnosticParser = participle.MustBuild[QueryListNode](sharedOptions(participle.UseLookahead(participle.MaxLookahead))...)

	fastPatternParser       = participle.MustBuild[PatternListNode](sharedOptions(participle.UseLookahead(participle.NoLookahead))...)
	diagnosticPatternParser = participle.MustBuild[PatternListNode](sharedOptions(participle.UseLookahead(participle.MaxLookahead))...)
)

func sharedOptions(extra ...participle.Option) []participle.Option {
	opts := []participle.Option{
		participle.Lexer(typeqlLexer),
		participle.Map(unquoteString, "String"),
		participle.Elide("Whitespace", "Comment"),
	}
	return append(opts, extra...)
}

// unquoteString strips the surrounding quotes from a String token and
// resolves its escapes. participle.Unquote delegates to strconv.UnquoteChar,
// which only recognises Go's own escape set and therefore rejects the
// ordinary regex literal `regex "\d+";` (§4.1/§4.3: `\/` is a valid escape
// and interior regex escapes are preserved verbatim). unescapeString instead
// resolves exactly `\\`, `\'`, `\"`, `\n`, `\r`, `\t` and `\/`, and passes
// every other `\X` through unchanged rather than erroring.
func unquoteString(t lexer.Token) (lexer.Token, error) {
	t.Value = unescapeString(t.Value[1 : len(t.Value)-1])
	return t, nil
}

func unescapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case '\\':
			b.WriteByte('\\')
		case '\'':
			b.WriteByte('\'')
		case '"':
			b.WriteByte('"')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '/':
			b.WriteByte('/')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i+1])
		}
		i++
	}
	return b.String()
}

// SyntaxError is the diagnostic-pass failure shape of §7: a line/column, the
// offending line rendered verbatim with a caret underneath, and (when the
// parser can report it) the set of tokens it expected instead.
type SyntaxError struct {
	Line     int
	Column   int
	Snippet  string
	Expected string
}

func (e SyntaxError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("syntax error at line %d, column %d: expected %s\n%s", e.Line, e.Column, e.Expected, e.Snippet)
	}
	return fmt.Sprintf("syntax error at line %d, column %d\n%s", e.Line, e.Column, e.Snippet)
}

// renderSnippet reproduces the offending line of src verbatim with a caret
// underneath the column the error was reported at, per §6.3: "Multi-line
// inputs preserve whitespace verbatim in the report."
func renderSnippet(src string, line, column int) string {
	lines := strings.Split(src, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	offending := lines[line-1]
	col := column
	if col < 1 {
		col = 1
	}
	caret := strings.Repeat(" ", col-1) + "^"
	return offending + "\n" + caret
}

func toSyntaxError(src string, err error) SyntaxError {
	if perr, ok := err.(participle.Error); ok {
		pos := perr.Position()
		return SyntaxError{
			Line:     pos.Line,
			Column:   pos.Column,
			Snippet:  renderSnippet(src, pos.Line, pos.Column),
			Expected: perr.Message(),
		}
	}
	return SyntaxError{Line: 1, Column: 1, Snippet: src, Expected: err.Error()}
}

// ParseQueryList runs the two-pass strategy over src and returns the parse
// tree for zero or more queries. The fast pass is tried first; on any
// failure the diagnostic pass re-runs and its error (with full source
// context) is what callers see.
func ParseQueryList(src string) (*QueryListNode, error) {
	if tree, err := fastParser.ParseString("", src); err == nil {
		return tree, nil
	}
	tree, err := diagnosticParser.ParseString("", src)
	if err != nil {
		return nil, toSyntaxError(src, err)
	}
	return tree, nil
}

// ParsePatternList runs the two-pass strategy over src for the
// eof_pattern_list entry point.
func ParsePatternList(src string) (*PatternListNode, error) {
	if tree, err := fastPatternParser.ParseString("", src); err == nil {
		return tree, nil
	}
	tree, err := diagnosticPatternParser.ParseString("", src)
	if err != nil {
		return nil, toSyntaxError(src, err)
	}
	return tree, nil
}
