package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/getmockd/mockapi/pkg/value"
)

// Condition operators.
const (
	OpEq        = "=="
	OpNe        = "!="
	OpGt        = ">"
	OpGe        = ">="
	OpLt        = "<"
	OpLe        = "<="
	OpIn        = "in"
	OpNotIn     = "not_in"
	OpRegex     = "regex"
	OpMinLength = "min_length"
	OpMaxLength = "max_length"
	OpBetween   = "between"
	OpExpr      = "expr"

	// opInvalid marks a shorthand that could not be parsed. Evaluating it
	// always fails with the recorded message.
	opInvalid = "invalid"
)

// Condition is the structured form every rule condition is reduced to.
type Condition struct {
	Op    string
	Value value.Value

	// message is the failure text for opInvalid.
	message string
}

var opPattern = regexp.MustCompile(`^(>=|<=|==|!=|>|<)\s*(.+)$`)

var nonDigits = regexp.MustCompile(`\D`)

// ParseCondition converts a rule's "if" value into a Condition. Objects are
// taken as {"op", "value"} with op lower-cased; anything else is rendered
// as text and parsed as a shorthand. Non-string scalars render as compact
// JSON, so a bare true or null reads back as an equality against itself.
func ParseCondition(raw value.Value) Condition {
	if obj := raw.Object(); obj != nil {
		op := ""
		if v, ok := obj.Get("op"); ok {
			op = strings.ToLower(value.Format(v))
		}
		cmp, _ := obj.Get("value")
		return Condition{Op: op, Value: cmp}
	}
	return parseShorthand(strings.TrimSpace(value.Format(raw)))
}

func parseShorthand(s string) Condition {
	switch {
	case strings.HasPrefix(s, "regex:"):
		return Condition{Op: OpRegex, Value: value.String(s[len("regex:"):])}
	case strings.HasPrefix(s, "in "):
		return Condition{Op: OpIn, Value: parseLiteral(strings.TrimSpace(s[len("in "):]))}
	case strings.HasPrefix(s, "not_in "):
		return Condition{Op: OpNotIn, Value: parseLiteral(strings.TrimSpace(s[len("not_in "):]))}
	case strings.HasPrefix(s, OpMinLength):
		return Condition{Op: OpMinLength, Value: value.Int(digitsOf(s))}
	case strings.HasPrefix(s, OpMaxLength):
		return Condition{Op: OpMaxLength, Value: value.Int(digitsOf(s))}
	case strings.HasPrefix(s, OpBetween):
		return parseBetween(s)
	}

	if m := opPattern.FindStringSubmatch(s); m != nil {
		return Condition{Op: m[1], Value: parseLiteral(m[2])}
	}
	return Condition{Op: OpEq, Value: parseLiteral(s)}
}

func parseBetween(s string) Condition {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return Condition{Op: opInvalid, message: "invalid between format: " + s}
	}
	low, errLow := strconv.ParseFloat(parts[1], 64)
	high, errHigh := strconv.ParseFloat(parts[2], 64)
	if errLow != nil || errHigh != nil {
		return Condition{Op: opInvalid, message: "invalid numbers in between: " + s}
	}
	return Condition{Op: OpBetween, Value: value.NewArray(value.Float(low), value.Float(high))}
}

// digitsOf concatenates every digit in s, so "min_length 3" and
// "min_length=3" both yield 3. No digits yields 0.
func digitsOf(s string) int64 {
	d := nonDigits.ReplaceAllString(s, "")
	if d == "" {
		return 0
	}
	n, err := strconv.ParseInt(d, 10, 64)
	if err != nil {
		return math.MaxInt64
	}
	return n
}

// parseLiteral reads a comparison literal as JSON, then as an integer, then
// as a float, and keeps the raw string when all of those fail.
func parseLiteral(s string) value.Value {
	if v, err := value.ParseString(s); err == nil {
		return v
	}
	t := strings.TrimSpace(s)
	if n, err := strconv.ParseInt(t, 10, 64); err == nil {
		return value.Int(n)
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil {
		return value.Float(f)
	}
	return value.String(s)
}
