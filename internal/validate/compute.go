package validate

import (
	"fmt"

	"github.com/typeql/typeql/ast"
)

// ComputeError reports a compute query whose method/algorithm/argument
// combination does not appear in the compute matrix.
type ComputeError struct {
	Kind    string
	Message string
}

func (e ComputeError) Error() string {
	return fmt.Sprintf("invalid compute (%s): %s", e.Kind, e.Message)
}

// computeRule describes what a compute method accepts, as data rather than
// as a branch per method (§4.7/§9: "compute matrix as data, not code").
type computeRule struct {
	allowsIn        bool
	allowsOf        bool
	requiresOf      bool
	allowsFromTo    bool
	allowsAlgorithm bool
	allowedAlgos    map[ast.ComputeAlgorithm]bool
	allowedParams   map[ast.ComputeAlgorithm]map[ast.ComputeParam]bool
}

var computeMatrix = map[ast.ComputeMethod]computeRule{
	ast.ComputeCount:     {allowsIn: true},
	ast.ComputeMax:       {allowsOf: true, requiresOf: true, allowsIn: true},
	ast.ComputeMin:       {allowsOf: true, requiresOf: true, allowsIn: true},
	ast.ComputeMean:      {allowsOf: true, requiresOf: true, allowsIn: true},
	ast.ComputeMedian:    {allowsOf: true, requiresOf: true, allowsIn: true},
	ast.ComputeSum:       {allowsOf: true, requiresOf: true, allowsIn: true},
	ast.ComputeStd:       {allowsOf: true, requiresOf: true, allowsIn: true},
	ast.ComputePath:      {allowsFromTo: true, allowsIn: true},
	ast.ComputeCentrality: {
		allowsOf:        true,
		allowsIn:        true,
		allowsAlgorithm: true,
		allowedAlgos:    map[ast.ComputeAlgorithm]bool{ast.AlgorithmDegree: true, ast.AlgorithmKCore: true},
		allowedParams: map[ast.ComputeAlgorithm]map[ast.ComputeParam]bool{
			ast.AlgorithmKCore: {ast.ParamMinK: true},
		},
	},
	ast.ComputeCluster: {
		allowsIn:        true,
		allowsAlgorithm: true,
		allowedAlgos:    map[ast.ComputeAlgorithm]bool{ast.AlgorithmConnectedComponent: true, ast.AlgorithmKCore: true},
		allowedParams: map[ast.ComputeAlgorithm]map[ast.ComputeParam]bool{
			ast.AlgorithmKCore:               {ast.ParamK: true},
			ast.AlgorithmConnectedComponent: {ast.ParamSize: true, ast.ParamContains: true},
		},
	},
}

// Compute checks q's method/in/of/from/to/using/where combination against
// the compute matrix.
func Compute(q *ast.ComputeQuery) error {
	rule, ok := computeMatrix[q.Method]
	if !ok {
		return ComputeError{Kind: "InvalidCompute", Message: fmt.Sprintf("unknown compute method %q", q.Method)}
	}
	if !rule.allowsIn && len(q.In) > 0 {
		return ComputeError{Kind: "InvalidCompute", Message: fmt.Sprintf("compute %s does not accept an in clause", q.Method)}
	}
	if !rule.allowsOf && len(q.Of) > 0 {
		return ComputeError{Kind: "InvalidCompute", Message: fmt.Sprintf("compute %s does not accept an of clause", q.Method)}
	}
	if rule.requiresOf && len(q.Of) == 0 {
		return ComputeError{Kind: "InvalidCompute", Message: fmt.Sprintf("compute %s requires an of clause", q.Method)}
	}
	if !rule.allowsFromTo && (q.From != nil || q.To != nil) {
		return ComputeError{Kind: "InvalidCompute", Message: fmt.Sprintf("compute %s does not accept from/to", q.Method)}
	}
	if rule.allowsFromTo && (q.From == nil || q.To == nil) {
		return ComputeError{Kind: "InvalidCompute", Message: fmt.Sprintf("compute %s requires both from and to", q.Method)}
	}
	if q.Algorithm != ast.AlgorithmNone {
		if !rule.allowsAlgorithm || !rule.allowedAlgos[q.Algorithm] {
			return ComputeError{Kind: "InvalidCompute", Message: fmt.Sprintf("compute %s does not accept algorithm %s", q.Method, q.Algorithm)}
		}
	}
	allowedParams := map[ast.ComputeParam]bool{}
	if rule.allowedParams != nil {
		allowedParams = rule.allowedParams[q.Algorithm]
	}
	for _, arg := range q.Where {
		if !allowedParams[arg.Param] {
			return ComputeError{Kind: "InvalidCompute", Message: fmt.Sprintf("compute %s using %s does not accept where parameter %s", q.Method, q.Algorithm, arg.Param)}
		}
	}
	return nil
}
