package validation

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/getmockd/mockapi/pkg/value"
)

// Evaluator checks values against conditions. Compiled regular expressions
// and expr programs are cached, so a single Evaluator should be shared.
// It is safe for concurrent use.
type Evaluator struct {
	mu       sync.RWMutex
	regexes  map[string]*regexp.Regexp
	programs map[string]*vm.Program
}

// NewEvaluator creates an Evaluator with empty caches.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		regexes:  make(map[string]*regexp.Regexp),
		programs: make(map[string]*vm.Program),
	}
}

// Evaluate reports whether val satisfies c, with a failure message when it
// does not. Runtime problems such as comparing a string with a number are
// reported as an "eval error" message rather than returned.
func (e *Evaluator) Evaluate(val value.Value, c Condition) (bool, string) {
	ok, msg, err := e.dispatch(val, c)
	if err != nil {
		return false, "eval error " + err.Error()
	}
	return ok, msg
}

func (e *Evaluator) dispatch(val value.Value, c Condition) (bool, string, error) {
	switch c.Op {
	case OpEq, OpNe, OpGt, OpGe, OpLt, OpLe:
		return compare(val, c.Op, c.Value)
	case OpIn:
		if contains(val, c.Value) {
			return true, "", nil
		}
		return false, fmt.Sprintf("%s not in %s", value.Format(val), value.Format(c.Value)), nil
	case OpNotIn:
		if !contains(val, c.Value) {
			return true, "", nil
		}
		return false, fmt.Sprintf("%s in %s", value.Format(val), value.Format(c.Value)), nil
	case OpRegex:
		return e.matchRegex(val, c.Value)
	case OpMinLength, OpMaxLength:
		return lengthBound(val, c.Op, c.Value)
	case OpBetween:
		return between(val, c.Value)
	case OpExpr:
		return e.evalExpr(val, c.Value)
	case opInvalid:
		return false, c.message, nil
	}
	return false, "unknown op " + c.Op, nil
}

func compare(left value.Value, op string, right value.Value) (bool, string, error) {
	var ok bool
	switch op {
	case OpEq:
		ok = value.Equal(left, right)
	case OpNe:
		ok = !value.Equal(left, right)
	default:
		c, err := value.Compare(left, right)
		if err != nil {
			return false, "", fmt.Errorf("'%s' not supported: %w", op, err)
		}
		switch op {
		case OpGt:
			ok = c > 0
		case OpGe:
			ok = c >= 0
		case OpLt:
			ok = c < 0
		case OpLe:
			ok = c <= 0
		}
	}
	if ok {
		return true, "", nil
	}
	return false, fmt.Sprintf("%s %s %s", value.Format(left), op, value.Format(right)), nil
}

// contains tests list membership, or substring containment of the rendered
// values when cmp is not a list.
func contains(val, cmp value.Value) bool {
	if arr := cmp.Array(); arr != nil {
		return value.Contains(arr, val)
	}
	return strings.Contains(value.Format(cmp), value.Format(val))
}

func (e *Evaluator) matchRegex(val, pattern value.Value) (bool, string, error) {
	s, ok := val.AsString()
	if !ok {
		return false, "regex requires string", nil
	}
	src := value.Format(pattern)
	re, err := e.compileRegex(src)
	if err != nil {
		return false, "", err
	}
	if re.MatchString(s) {
		return true, "", nil
	}
	return false, "does not match " + src, nil
}

func (e *Evaluator) compileRegex(src string) (*regexp.Regexp, error) {
	e.mu.RLock()
	re, ok := e.regexes[src]
	e.mu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(src)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.regexes[src] = re
	e.mu.Unlock()
	return re, nil
}

func lengthBound(val value.Value, op string, bound value.Value) (bool, string, error) {
	n, hasLen := value.Len(val)
	limit, limitOK := boundOf(bound)
	if !hasLen || !limitOK {
		return false, "no length", nil
	}

	if op == OpMinLength {
		if int64(n) >= limit {
			return true, "", nil
		}
		return false, fmt.Sprintf("len %d < %s", n, value.Format(bound)), nil
	}
	if int64(n) <= limit {
		return true, "", nil
	}
	return false, fmt.Sprintf("len %d > %s", n, value.Format(bound)), nil
}

func boundOf(v value.Value) (int64, bool) {
	switch v.Kind() {
	case value.KindInt:
		n, _ := v.AsInt()
		return n, true
	case value.KindBool:
		b, _ := v.AsBool()
		if b {
			return 1, true
		}
		return 0, true
	case value.KindFloat:
		f, _ := v.Number()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return int64(f), true
	case value.KindString:
		s, _ := v.AsString()
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		return n, err == nil
	}
	return 0, false
}

func between(val, bounds value.Value) (bool, string, error) {
	arr := bounds.Array()
	if arr == nil || arr.Len() != 2 {
		return false, "invalid between format: " + value.Format(bounds), nil
	}
	low, errLow := value.ToFloat(arr.At(0))
	high, errHigh := value.ToFloat(arr.At(1))
	if errLow != nil || errHigh != nil {
		return false, "invalid numbers in between: " + value.Format(bounds), nil
	}

	f, err := value.ToFloat(val)
	if err == nil && low <= f && f <= high {
		return true, "", nil
	}
	return false, fmt.Sprintf("%s not between %s and %s",
		value.Format(val), value.FormatFloat(low), value.FormatFloat(high)), nil
}

var errExprSource = errors.New("expr condition requires a string expression")

// evalExpr runs an expr-lang expression with the field bound as "value".
// The expression must produce a boolean.
func (e *Evaluator) evalExpr(val, source value.Value) (bool, string, error) {
	src, ok := source.AsString()
	if !ok {
		return false, "", errExprSource
	}

	env := map[string]any{"value": val.ToAny()}
	program, err := e.compileExpr(src, env)
	if err != nil {
		return false, "", fmt.Errorf("compile %q: %w", src, err)
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return false, "", fmt.Errorf("eval %q: %w", src, err)
	}
	if passed, _ := out.(bool); passed {
		return true, "", nil
	}
	return false, fmt.Sprintf("%s does not satisfy %s", value.Format(val), src), nil
}

func (e *Evaluator) compileExpr(src string, env map[string]any) (*vm.Program, error) {
	// Programs are type-checked against the environment, so the bound
	// value's Go type is part of the key.
	key := fmt.Sprintf("%s\x00%T", src, env["value"])

	e.mu.RLock()
	program, ok := e.programs[key]
	e.mu.RUnlock()
	if ok {
		return program, nil
	}

	program, err := expr.Compile(src, expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	if existing, ok := e.programs[key]; ok {
		e.mu.Unlock()
		return existing, nil
	}
	e.programs[key] = program
	e.mu.Unlock()
	return program, nil
}
