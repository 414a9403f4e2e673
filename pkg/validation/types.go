package validation

import (
	"strings"

	"github.com/getmockd/mockapi/pkg/value"
)

// TypeTag is a rule's expected type.
type TypeTag int

// Supported type tags.
const (
	TypeAny TypeTag = iota
	TypeInt
	TypeFloat
	TypeStr
	TypeBool
	TypeList
	TypeDict
)

var typeTags = map[string]TypeTag{
	"any":   TypeAny,
	"int":   TypeInt,
	"float": TypeFloat,
	"str":   TypeStr,
	"bool":  TypeBool,
	"list":  TypeList,
	"dict":  TypeDict,
}

// ParseTypeTag maps a tag name, case-insensitively, to a TypeTag. Empty and
// unknown names are treated as TypeAny.
func ParseTypeTag(name string) TypeTag {
	if t, ok := typeTags[strings.ToLower(name)]; ok {
		return t
	}
	return TypeAny
}

// String returns the canonical tag name.
func (t TypeTag) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeStr:
		return "str"
	case TypeBool:
		return "bool"
	case TypeList:
		return "list"
	case TypeDict:
		return "dict"
	default:
		return "any"
	}
}

// Matches reports whether v conforms to t. Booleans never satisfy the
// numeric tags.
func (t TypeTag) Matches(v value.Value) bool {
	k := v.Kind()
	switch t {
	case TypeAny:
		return true
	case TypeInt:
		return k == value.KindInt
	case TypeFloat:
		return k == value.KindFloat || k == value.KindInt
	case TypeStr:
		return k == value.KindString
	case TypeBool:
		return k == value.KindBool
	case TypeList:
		return k == value.KindArray
	case TypeDict:
		return k == value.KindObject
	}
	return false
}
