package ast

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// LiteralKind discriminates the closed set of literal value shapes.
type LiteralKind int

const (
	LiteralLong LiteralKind = iota
	LiteralDouble
	LiteralBool
	LiteralString
	LiteralDate
	LiteralDateTime
)

// Literal is a scalar value as it appears in source: a 64-bit signed
// integer, an IEEE-754 double, a boolean, a UTF-8 string, an ISO local date
// (lifted to midnight) or an ISO local date-time at millisecond precision.
type Literal struct {
	Kind   LiteralKind
	Long   int64
	Double float64
	Bool   bool
	Str    string
	// Time holds the Date/DateTime payload in UTC wall-clock terms (no zone
	// conversion is performed — TypeQL date-times are zone-less). For
	// LiteralDate, Time is truncated to midnight. For LiteralDateTime, Time
	// carries millisecond precision; sub-millisecond fractional seconds are
	// rejected by internal/construct before a Literal is ever constructed.
	Time time.Time
}

func (l Literal) Equal(o Literal) bool {
	if l.Kind != o.Kind {
		return false
	}
	switch l.Kind {
	case LiteralLong:
		return l.Long == o.Long
	case LiteralDouble:
		return l.Double == o.Double
	case LiteralBool:
		return l.Bool == o.Bool
	case LiteralString:
		return l.Str == o.Str
	case LiteralDate, LiteralDateTime:
		return l.Time.Equal(o.Time)
	default:
		return false
	}
}

func (l Literal) String() string {
	switch l.Kind {
	case LiteralLong:
		return fmt.Sprintf("%d", l.Long)
	case LiteralDouble:
		// Always keep a decimal point so the text lexes back as a real.
		s := strconv.FormatFloat(l.Double, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	case LiteralBool:
		return fmt.Sprintf("%t", l.Bool)
	case LiteralString:
		return fmt.Sprintf("%q", l.Str)
	case LiteralDate:
		return l.Time.Format("2006-01-02")
	case LiteralDateTime:
		return l.Time.Format("2006-01-02T15:04:05.000")
	default:
		return "<invalid literal>"
	}
}

// ValueTypeKind is the closed set of attribute value types a schema may
// declare with the `value` constraint.
type ValueTypeKind int

const (
	ValueTypeLong ValueTypeKind = iota
	ValueTypeDouble
	ValueTypeString
	ValueTypeBoolean
	ValueTypeDatetime
)

func (k ValueTypeKind) String() string {
	switch k {
	case ValueTypeLong:
		return "long"
	case ValueTypeDouble:
		return "double"
	case ValueTypeString:
		return "string"
	case ValueTypeBoolean:
		return "boolean"
	case ValueTypeDatetime:
		return "datetime"
	default:
		return "unknown"
	}
}

// ComparatorKind is the closed set of value-predicate comparators.
type ComparatorKind int

const (
	CmpEq ComparatorKind = iota
	CmpNeq
	CmpLt
	CmpLte
	CmpGt
	CmpGte
	CmpContains
	CmpLike
)

func (c ComparatorKind) String() string {
	switch c {
	case CmpEq:
		return "=="
	case CmpNeq:
		return "!=="
	case CmpLt:
		return "<"
	case CmpLte:
		return "<="
	case CmpGt:
		return ">"
	case CmpGte:
		return ">="
	case CmpContains:
		return "contains"
	case CmpLike:
		return "like"
	default:
		return "?"
	}
}

// ValueOperation is the sub-algebra of the Value constraint: an Assignment
// (direct literal binding) or a Comparison (predicate against a literal or
// another variable).
type ValueOperation interface {
	valueOperationNode()
}

// Assignment binds a head variable directly to a literal value, e.g.
// `has release-date 1990-01-01;` or the expanded form of a `has` shorthand.
type Assignment struct {
	Value Literal
}

func (Assignment) valueOperationNode() {}

// Comparison is a value predicate: `$x.Op Right`, where Right is exactly one
// of Value (a literal) or Var (another variable) — never both.
type Comparison struct {
	Op    ComparatorKind
	Value *Literal
	Var   Variable
}

func (Comparison) valueOperationNode() {}
