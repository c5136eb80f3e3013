// Package token holds the closed enumerations the TypeQL grammar is built
// from: reserved words, punctuation, comparators, value types, and the
// compute-query vocabulary (methods, algorithms, parameters).
package token

// Keyword is a reserved word of the grammar. Reserved words may not be used
// as identifiers (type labels or variable names).
type Keyword string

// Command keywords.
const (
	Match    Keyword = "match"
	Get      Keyword = "get"
	Insert   Keyword = "insert"
	Delete   Keyword = "delete"
	Define   Keyword = "define"
	Undefine Keyword = "undefine"
	Compute  Keyword = "compute"
)

// Schema keywords.
const (
	Sub      Keyword = "sub"
	SubExact Keyword = "sub!"
	Abstract Keyword = "abstract"
	Relates  Keyword = "relates"
	Plays    Keyword = "plays"
	Has      Keyword = "has"
	Key      Keyword = "key"
	Value    Keyword = "value"
	Regex    Keyword = "regex"
	As       Keyword = "as"
	When     Keyword = "when"
	Then     Keyword = "then"
	RuleKw   Keyword = "rule"
	TypeKw   Keyword = "type"
	Isa      Keyword = "isa"
	IsaExact Keyword = "isa!"
	IdKw     Keyword = "id"
)

// Modifiers.
const (
	Sort   Keyword = "sort"
	Offset Keyword = "offset"
	Limit  Keyword = "limit"
	Group  Keyword = "group"
	Asc    Keyword = "asc"
	Desc   Keyword = "desc"
)

// Aggregate methods.
const (
	Count  Keyword = "count"
	Max    Keyword = "max"
	Min    Keyword = "min"
	Mean   Keyword = "mean"
	Median Keyword = "median"
	Sum    Keyword = "sum"
	Std    Keyword = "std"
)

// Compute words.
const (
	Path         Keyword = "path"
	Centrality   Keyword = "centrality"
	Cluster      Keyword = "cluster"
	From         Keyword = "from"
	To           Keyword = "to"
	Of           Keyword = "of"
	In           Keyword = "in"
	Using        Keyword = "using"
	Where        Keyword = "where"
	Degree       Keyword = "degree"
	KCore        Keyword = "k-core"
	ConnectedCmp Keyword = "connected-component"
)

// Compute parameters.
const (
	MinK     Keyword = "min-k"
	K        Keyword = "k"
	Size     Keyword = "size"
	Contains Keyword = "contains"
)

// Value type keywords.
const (
	Long     Keyword = "long"
	Double   Keyword = "double"
	StringVT Keyword = "string"
	Boolean  Keyword = "boolean"
	Datetime Keyword = "datetime"
)

// Boolean literals.
const (
	True  Keyword = "true"
	False Keyword = "false"
)

// Comparators.
const (
	CmpEq       = "=="
	CmpEqShort  = "="
	CmpNeq      = "!=="
	CmpLt       = "<"
	CmpLte      = "<="
	CmpGt       = ">"
	CmpGte      = ">="
	CmpContains = "contains"
	CmpLike     = "like"
)

// reserved is the closed set of words that cannot be used as an identifier.
// Built once from every Keyword constant declared above.
var reserved = map[string]bool{
	string(Match): true, string(Get): true, string(Insert): true, string(Delete): true,
	string(Define): true, string(Undefine): true, string(Compute): true,
	string(Sub): true, string(Abstract): true, string(Relates): true, string(Plays): true,
	string(Has): true, string(Key): true, string(Value): true, string(Regex): true,
	string(As): true, string(When): true, string(Then): true, string(RuleKw): true,
	string(TypeKw): true, string(Isa): true, string(IdKw): true,
	string(SubExact): true, string(IsaExact): true,
	string(Sort): true, string(Offset): true, string(Limit): true, string(Group): true,
	string(Asc): true, string(Desc): true,
	string(Count): true, string(Max): true, string(Min): true, string(Mean): true,
	string(Median): true, string(Sum): true, string(Std): true,
	string(Path): true, string(Centrality): true, string(Cluster): true,
	string(From): true, string(To): true, string(Of): true, string(In): true,
	string(Using): true, string(Where): true, string(Degree): true,
	string(KCore): true, string(ConnectedCmp): true,
	string(MinK): true, string(K): true, string(Size): true,
	string(Long): true, string(Double): true, string(StringVT): true,
	string(Boolean): true, string(Datetime): true,
	string(True): true, string(False): true,
	string(CmpContains): true, string(CmpLike): true,
}

// IsReserved reports whether word is a reserved keyword and therefore not a
// legal identifier.
func IsReserved(word string) bool {
	return reserved[word]
}
