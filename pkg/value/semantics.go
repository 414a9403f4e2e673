package value

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrUnorderable is returned by Compare for values with no natural ordering.
var ErrUnorderable = errors.New("unorderable values")

// Truthy reports whether v counts as "set": non-zero numbers, true,
// non-empty strings and containers, and any file.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindFloat:
		return v.f != 0
	case KindString:
		return v.s != ""
	case KindArray:
		return v.arr.Len() > 0
	case KindObject:
		return v.obj.Len() > 0
	case KindFile:
		return true
	default:
		return false
	}
}

// numeric returns v as a number, treating booleans as 0 and 1.
func (v Value) numeric() (float64, bool) {
	switch v.kind {
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// Equal reports deep equality. Numbers compare by value across int, float
// and bool; objects compare regardless of key order.
func Equal(a, b Value) bool {
	if an, ok := a.numeric(); ok {
		bn, ok := b.numeric()
		if !ok {
			return false
		}
		if a.kind == KindInt && b.kind == KindInt {
			return a.i == b.i
		}
		return an == bn
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindString:
		return a.s == b.s
	case KindArray:
		if a.arr.Len() != b.arr.Len() {
			return false
		}
		for i := range a.arr.items {
			if !Equal(a.arr.items[i], b.arr.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		for i, k := range a.obj.keys {
			other, ok := b.obj.Get(k)
			if !ok || !Equal(a.obj.vals[i], other) {
				return false
			}
		}
		return true
	case KindFile:
		return a.file == b.file
	}
	return false
}

// Compare orders a against b, returning -1, 0 or +1. Numbers (bools
// included) order numerically, strings by code point, arrays
// lexicographically. Anything else yields ErrUnorderable.
func Compare(a, b Value) (int, error) {
	if an, ok := a.numeric(); ok {
		if bn, ok := b.numeric(); ok {
			if a.kind == KindInt && b.kind == KindInt {
				return cmpOrdered(a.i, b.i), nil
			}
			if math.IsNaN(an) || math.IsNaN(bn) {
				return 0, fmt.Errorf("%w: NaN", ErrUnorderable)
			}
			return cmpOrdered(an, bn), nil
		}
	}
	if a.kind == KindString && b.kind == KindString {
		return strings.Compare(a.s, b.s), nil
	}
	if a.kind == KindArray && b.kind == KindArray {
		n := min(a.arr.Len(), b.arr.Len())
		for i := 0; i < n; i++ {
			if !Equal(a.arr.items[i], b.arr.items[i]) {
				return Compare(a.arr.items[i], b.arr.items[i])
			}
		}
		return cmpOrdered(a.arr.Len(), b.arr.Len()), nil
	}
	return 0, fmt.Errorf("%w: %s and %s", ErrUnorderable, a.kind, b.kind)
}

func cmpOrdered[T int | int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Len returns the length of strings (in characters), arrays and objects.
func Len(v Value) (int, bool) {
	switch v.kind {
	case KindString:
		return utf8.RuneCountInString(v.s), true
	case KindArray:
		return v.arr.Len(), true
	case KindObject:
		return v.obj.Len(), true
	default:
		return 0, false
	}
}

// Contains reports whether any element of the array arr equals item.
func Contains(arr *Array, item Value) bool {
	for _, it := range arr.items {
		if Equal(it, item) {
			return true
		}
	}
	return false
}

// ToFloat coerces numbers, booleans and numeric strings to float64.
func ToFloat(v Value) (float64, error) {
	if n, ok := v.numeric(); ok {
		return n, nil
	}
	if v.kind == KindString {
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			return 0, fmt.Errorf("could not convert string to float: %q", v.s)
		}
		return f, nil
	}
	return 0, fmt.Errorf("cannot convert %s to float", v.kind)
}

// Format renders v for human-readable messages: strings as-is, everything
// else as compact JSON.
func Format(v Value) string {
	if v.kind == KindString {
		return v.s
	}
	if v.kind == KindNull {
		return "null"
	}
	b, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", v.ToAny())
	}
	return string(b)
}

// FormatFloat renders a float the way Format renders a Float value.
func FormatFloat(f float64) string {
	return Format(Float(f))
}
