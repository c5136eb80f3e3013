package ast

// VariableKind discriminates the closed set of variable reference shapes.
type VariableKind int

const (
	VarNamedConcept VariableKind = iota
	VarNamedValue
	VarLabel
	VarAnonymous
)

func (k VariableKind) String() string {
	switch k {
	case VarNamedConcept:
		return "named-concept"
	case VarNamedValue:
		return "named-value"
	case VarLabel:
		return "label"
	case VarAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Variable is the closed sum of variable reference shapes: NamedConcept,
// NamedValue, Label and Anonymous. Concrete Named* and Label values are
// comparable structs, so two Variable interface values holding them compare
// equal with == exactly when their kind and fields match — a named concept
// variable and a named value variable sharing a name are never equal,
// because they are different concrete types. Anonymous variables are always
// boxed as *Anonymous, so interface equality falls back to pointer identity:
// every construction site produces a variable distinct from every other.
type Variable interface {
	Kind() VariableKind
	variableNode()
}

// NamedConcept is a concept variable reference, `$name`.
type NamedConcept struct {
	Name string
}

func (NamedConcept) Kind() VariableKind { return VarNamedConcept }
func (NamedConcept) variableNode()      {}

// NamedValue is a value variable reference, `?name`.
type NamedValue struct {
	Name string
}

func (NamedValue) Kind() VariableKind { return VarNamedValue }
func (NamedValue) variableNode()      {}

// Label is a type reference by name, optionally scoped to the relation type
// that owns it (`marriage:spouse`).
type Label struct {
	Name  string
	Scope string
}

func (Label) Kind() VariableKind { return VarLabel }
func (Label) variableNode()      {}

// ScopedName renders "scope:name", or bare "name" when unscoped.
func (l Label) ScopedName() string {
	if l.Scope == "" {
		return l.Name
	}
	return l.Scope + ":" + l.Name
}

// Anonymous is a variable with no user-given name. Visible anonymous
// variables are written `$_` in source; hidden ones are synthesised by the
// AST constructor for statements whose head was omitted. Every *Anonymous
// is a distinct identity regardless of its Visible flag.
type Anonymous struct {
	Visible bool
}

func (*Anonymous) Kind() VariableKind { return VarAnonymous }
func (*Anonymous) variableNode()      {}

// NewAnonymous constructs a fresh anonymous variable, distinct from every
// other anonymous variable ever constructed.
func NewAnonymous(visible bool) *Anonymous {
	return &Anonymous{Visible: visible}
}

// VariablesEqual reports structural equality for Named/Label variables and
// identity equality for Anonymous variables.
func VariablesEqual(a, b Variable) bool {
	return a == b
}
