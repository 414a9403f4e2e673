package validation

import (
	"fmt"

	"github.com/getmockd/mockapi/pkg/value"
)

// Rule is one entry of a mock's "data" list.
type Rule struct {
	// Name is the field path. An empty name is reported as a rule error
	// for every target.
	Name string

	// Type is the expected type; TypeName keeps the tag as written for
	// messages.
	Type     TypeTag
	TypeName string

	// If is nil when the rule has no condition.
	If *Condition
}

// ParseRules reads a "data" value into rules. A null or otherwise empty
// value yields no rules. Entries that are not objects, or carry a
// non-string name or type, are configuration errors.
func ParseRules(data value.Value) ([]Rule, error) {
	if !data.Truthy() {
		return nil, nil
	}
	arr := data.Array()
	if arr == nil {
		return nil, fmt.Errorf("rules must be a list, got %s", data.Kind())
	}

	rules := make([]Rule, 0, arr.Len())
	for i, item := range arr.Items() {
		obj := item.Object()
		if obj == nil {
			return nil, fmt.Errorf("rule %d: expected an object, got %s", i, item.Kind())
		}

		var r Rule
		if name, ok := obj.Get("name"); ok && name.Truthy() {
			s, isStr := name.AsString()
			if !isStr {
				return nil, fmt.Errorf("rule %d: name must be a string, got %s", i, name.Kind())
			}
			r.Name = s
		}

		if tag, ok := obj.Get("type"); ok && !tag.IsNull() {
			s, isStr := tag.AsString()
			if !isStr {
				return nil, fmt.Errorf("rule %d: type must be a string, got %s", i, tag.Kind())
			}
			r.TypeName = s
			r.Type = ParseTypeTag(s)
		}

		if cond, ok := obj.Get("if"); ok && !cond.IsNull() {
			c := ParseCondition(cond)
			r.If = &c
		}

		rules = append(rules, r)
	}
	return rules, nil
}

// FieldError is a single validation failure.
type FieldError struct {
	// Index is the element position when the target is an array, or -1.
	Index   int
	Field   string
	Message string
}

// Error renders the message as "[i].field: message" or ".field: message".
func (e *FieldError) Error() string {
	prefix := ""
	if e.Index >= 0 {
		prefix = fmt.Sprintf("[%d]", e.Index)
	}
	if e.Field == "" {
		return prefix + ": " + e.Message
	}
	return prefix + "." + e.Field + ": " + e.Message
}

// Result collects the failures of one validation run.
type Result struct {
	Errors []*FieldError
}

// AddError appends a failure.
func (r *Result) AddError(err *FieldError) {
	r.Errors = append(r.Errors, err)
}

// HasErrors returns true if any rule failed.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// Messages returns the rendered failures in order.
func (r *Result) Messages() []string {
	out := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		out[i] = e.Error()
	}
	return out
}

// Validator applies rule lists to decoded request bodies.
type Validator struct {
	eval *Evaluator
}

// New creates a Validator with its own condition caches.
func New() *Validator {
	return &Validator{eval: NewEvaluator()}
}

// Validate checks target against rules. Arrays are validated element by
// element.
func (v *Validator) Validate(target value.Value, rules []Rule) *Result {
	result := &Result{}
	if arr := target.Array(); arr != nil {
		for i, item := range arr.Items() {
			v.validateOne(result, i, item, rules)
		}
		return result
	}
	v.validateOne(result, -1, target, rules)
	return result
}

// Check parses a raw "data" value and validates target against it. The
// returned error means the rules themselves are malformed. An empty list
// target has nothing to validate, so its rules are never parsed.
func (v *Validator) Check(target, data value.Value) ([]string, error) {
	if arr := target.Array(); arr != nil && arr.Len() == 0 {
		return nil, nil
	}
	rules, err := ParseRules(data)
	if err != nil {
		return nil, err
	}
	return v.Validate(target, rules).Messages(), nil
}

func (v *Validator) validateOne(result *Result, index int, target value.Value, rules []Rule) {
	for _, r := range rules {
		if r.Name == "" {
			result.AddError(&FieldError{Index: index, Message: "rule without name"})
			continue
		}

		val, ok := Lookup(target, r.Name)
		if !ok {
			result.AddError(&FieldError{Index: index, Field: r.Name, Message: "missing"})
			continue
		}

		if !r.Type.Matches(val) {
			result.AddError(&FieldError{
				Index:   index,
				Field:   r.Name,
				Message: fmt.Sprintf("type %s != %s", r.TypeName, val.Kind()),
			})
			continue
		}

		if r.If == nil {
			continue
		}
		if passed, msg := v.eval.Evaluate(val, *r.If); !passed {
			result.AddError(&FieldError{Index: index, Field: r.Name, Message: msg})
		}
	}
}
