package ast

// ComputeMethod is the closed set of compute-query methods.
type ComputeMethod int

const (
	ComputeCount ComputeMethod = iota
	ComputeMax
	ComputeMin
	ComputeMean
	ComputeMedian
	ComputeSum
	ComputeStd
	ComputePath
	ComputeCentrality
	ComputeCluster
)

func (m ComputeMethod) String() string {
	switch m {
	case ComputeCount:
		return "count"
	case ComputeMax:
		return "max"
	case ComputeMin:
		return "min"
	case ComputeMean:
		return "mean"
	case ComputeMedian:
		return "median"
	case ComputeSum:
		return "sum"
	case ComputeStd:
		return "std"
	case ComputePath:
		return "path"
	case ComputeCentrality:
		return "centrality"
	case ComputeCluster:
		return "cluster"
	default:
		return "unknown"
	}
}

// ComputeAlgorithm is the closed set of compute-query algorithms.
// AlgorithmNone marks a method for which no algorithm applies.
type ComputeAlgorithm int

const (
	AlgorithmNone ComputeAlgorithm = iota
	AlgorithmDegree
	AlgorithmKCore
	AlgorithmConnectedComponent
)

func (a ComputeAlgorithm) String() string {
	switch a {
	case AlgorithmDegree:
		return "degree"
	case AlgorithmKCore:
		return "k-core"
	case AlgorithmConnectedComponent:
		return "connected-component"
	default:
		return "none"
	}
}

// ComputeParam is the closed set of `where` argument parameters.
type ComputeParam int

const (
	ParamMinK ComputeParam = iota
	ParamK
	ParamSize
	ParamContains
)

func (p ComputeParam) String() string {
	switch p {
	case ParamMinK:
		return "min-k"
	case ParamK:
		return "k"
	case ParamSize:
		return "size"
	case ParamContains:
		return "contains"
	default:
		return "unknown"
	}
}

// ComputeArg is one `where` entry: a parameter bound to a numeric value.
type ComputeArg struct {
	Param ComputeParam
	Value float64
}

// ComputeQuery: `compute <method> [in [...]] [of [...]] [from ...] [to ...]
// [using <algorithm>] [where [...]]`.
//
// Only the fields relevant to Method are populated; the validator (§4.7)
// enforces that.
type ComputeQuery struct {
	Method    ComputeMethod
	In        []Label
	Of        []Label
	From      *Label
	To        *Label
	Algorithm ComputeAlgorithm
	// Where preserves insertion order with last-value-wins semantics for a
	// repeated parameter (§4.7 S6): the slot stays at its first position,
	// its value is overwritten by the last occurrence.
	Where []ComputeArg
}

func (ComputeQuery) Kind() QueryKind { return QueryCompute }
func (ComputeQuery) queryNode()      {}

// WhereValue returns the effective value for param, if set.
func (q ComputeQuery) WhereValue(param ComputeParam) (float64, bool) {
	for _, a := range q.Where {
		if a.Param == param {
			return a.Value, true
		}
	}
	return 0, false
}

// DedupeWhere collapses repeated parameters in args to last-value-wins,
// keeping each surviving parameter at the position of its first occurrence.
func DedupeWhere(args []ComputeArg) []ComputeArg {
	out := make([]ComputeArg, 0, len(args))
	index := map[ComputeParam]int{}
	for _, a := range args {
		if i, ok := index[a.Param]; ok {
			out[i].Value = a.Value
			continue
		}
		index[a.Param] = len(out)
		out = append(out, a)
	}
	return out
}
