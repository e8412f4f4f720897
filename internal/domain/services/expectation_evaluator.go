// Package services contains domain services that encapsulate business logic
// spanning multiple value objects. These services are stateless apart from
// caches and can be shared between callers.
package services

import (
	"fmt"
	"math"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

const (
	maxExpressionLength = 1000
	maxASTNodes         = 100

	// defaultApproxTolerance matches the tolerance shapes use for equality.
	defaultApproxTolerance = 0.00001
)

// MeasurementEnv is the variable set visible to expect expressions.
type MeasurementEnv struct {
	Kind        string             `expr:"kind"`
	Description string             `expr:"description"`
	Area        float64            `expr:"area"`
	Perimeter   float64            `expr:"perimeter"`
	Sides       int                `expr:"sides"`
	Params      map[string]float64 `expr:"params"`
}

// ExpectationOutcome is the result of evaluating one expression.
type ExpectationOutcome struct {
	Expression string
	Passed     bool
	Message    string
}

// ExpectationEvaluator evaluates boolean expressions against measurements.
// It caches compiled programs and is safe for concurrent use.
type ExpectationEvaluator struct {
	programCache map[string]*vm.Program
	cacheMu      sync.RWMutex
}

// NewExpectationEvaluator creates an evaluator with an empty program cache.
func NewExpectationEvaluator() *ExpectationEvaluator {
	return &ExpectationEvaluator{
		programCache: make(map[string]*vm.Program),
	}
}

// Evaluate runs every expression against env. It returns one outcome per
// expression and whether all of them passed. Expressions that are too long,
// fail to compile or fail at runtime count as failed.
func (e *ExpectationEvaluator) Evaluate(env MeasurementEnv, expects []string) ([]ExpectationOutcome, bool) {
	outcomes := make([]ExpectationOutcome, 0, len(expects))
	allPassed := true

	for _, expression := range expects {
		outcome := e.evaluateOne(env, expression)
		if !outcome.Passed {
			allPassed = false
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, allPassed
}

func (e *ExpectationEvaluator) evaluateOne(env MeasurementEnv, expression string) ExpectationOutcome {
	outcome := ExpectationOutcome{Expression: expression}

	if len(expression) > maxExpressionLength {
		outcome.Message = fmt.Sprintf("expression too long (max %d chars): %d chars", maxExpressionLength, len(expression))
		return outcome
	}

	program, err := e.getOrCompile(expression)
	if err != nil {
		outcome.Message = fmt.Sprintf("compile error: %v", err)
		return outcome
	}

	result, err := expr.Run(program, env)
	if err != nil {
		outcome.Message = fmt.Sprintf("runtime error: %v", err)
		return outcome
	}

	passed, ok := result.(bool)
	if !ok {
		outcome.Message = fmt.Sprintf("expression returned %T, not bool", result)
		return outcome
	}

	outcome.Passed = passed
	if !passed {
		outcome.Message = "expression evaluated to false"
	}
	return outcome
}

// getOrCompile retrieves a cached program or compiles and caches a new one.
func (e *ExpectationEvaluator) getOrCompile(expression string) (*vm.Program, error) {
	e.cacheMu.RLock()
	program, found := e.programCache[expression]
	e.cacheMu.RUnlock()

	if found {
		return program, nil
	}

	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()

	if program, found := e.programCache[expression]; found {
		return program, nil
	}

	program, err := expr.Compile(expression, compileOptions()...)
	if err != nil {
		return nil, err
	}

	e.programCache[expression] = program
	return program, nil
}

// CacheSize returns the number of compiled programs held.
func (e *ExpectationEvaluator) CacheSize() int {
	e.cacheMu.RLock()
	defer e.cacheMu.RUnlock()
	return len(e.programCache)
}

func compileOptions() []expr.Option {
	return []expr.Option{
		expr.Env(MeasurementEnv{}),
		expr.AsBool(),
		expr.MaxNodes(maxASTNodes),

		// approx(a, b[, tolerance]) compares two numbers within a tolerance.
		expr.Function("approx", func(params ...interface{}) (interface{}, error) {
			if len(params) != 2 && len(params) != 3 {
				return nil, fmt.Errorf("approx expects 2 or 3 arguments")
			}
			nums := make([]float64, len(params))
			for i, p := range params {
				n, ok := toFloat(p)
				if !ok {
					return nil, fmt.Errorf("approx: argument %d must be a number, got %T", i+1, p)
				}
				nums[i] = n
			}
			tolerance := defaultApproxTolerance
			if len(nums) == 3 {
				tolerance = nums[2]
			}
			return math.Abs(nums[0]-nums[1]) < tolerance, nil
		}),
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}
