// Package form turns flat form fields with bracket or dot paths into a
// value tree.
//
// Keys like "user[address][0][city]" and "user.address.0.city" both address
// the same nested location. Decoding never fails on shape conflicts: an
// assignment that cannot be placed is dropped.
package form

import (
	"strconv"
	"strings"

	"github.com/getmockd/mockapi/pkg/value"
)

// Field is one submitted form key with all of its values, in the order the
// client sent them.
type Field struct {
	Key    string
	Values []string
}

// FileField is one submitted file key with all of its files.
type FileField struct {
	Key   string
	Files []*value.File
}

// ParseKey splits "a[b][0][c]" or "a.b.0.c" into ["a" "b" "0" "c"].
func ParseKey(key string) []string {
	k := strings.ReplaceAll(key, "]", "")
	k = strings.ReplaceAll(k, "[", ".")

	parts := strings.Split(k, ".")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// maxIndex bounds array growth so a single key cannot allocate an
// arbitrarily large array.
const maxIndex = 10000

func isIndex(part string) (int, bool) {
	for _, r := range part {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	if part == "" {
		return 0, false
	}
	n, err := strconv.Atoi(part)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Place stores v at the location named by parts inside root and returns
// root. Containers are created and grown in place as the path is walked:
//   - a numeric part indexes an array, padding it with empty objects;
//   - a numeric part on an object becomes a string key;
//   - a named part on an array goes into the object at index 0, which is
//     inserted when the array does not start with one.
//
// A path that runs into a scalar is dropped.
func Place(root value.Value, parts []string, v value.Value) value.Value {
	cur := root
	for i, part := range parts {
		last := i == len(parts)-1

		if idx, ok := isIndex(part); ok {
			switch {
			case cur.Array() != nil:
				if idx > maxIndex {
					return root
				}
				arr := cur.Array()
				for arr.Len() <= idx {
					arr.Append(value.NewObject())
				}
				if last {
					arr.Set(idx, v)
					return root
				}
				if !arr.At(idx).IsContainer() {
					arr.Set(idx, value.NewObject())
				}
				cur = arr.At(idx)
			case cur.Object() != nil:
				cur = descend(cur.Object(), strconv.Itoa(idx), v, last)
				if last {
					return root
				}
			default:
				return root
			}
			continue
		}

		switch {
		case cur.Object() != nil:
			cur = descend(cur.Object(), part, v, last)
			if last {
				return root
			}
		case cur.Array() != nil:
			arr := cur.Array()
			if arr.Len() == 0 || arr.At(0).Object() == nil {
				arr.Insert(0, value.NewObject())
			}
			cur = descend(arr.At(0).Object(), part, v, last)
			if last {
				return root
			}
		default:
			return root
		}
	}
	return root
}

// descend sets key on obj when last, otherwise returns the container under
// key, replacing a scalar with a fresh object.
func descend(obj *value.Object, key string, v value.Value, last bool) value.Value {
	if last {
		obj.Set(key, v)
		return value.Value{}
	}
	next, ok := obj.Get(key)
	if !ok || !next.IsContainer() {
		next = value.NewObject()
		obj.Set(key, next)
	}
	return next
}

// Decode builds an object from form fields and uploaded files. A key with
// several values becomes an array of raw strings. A single value is parsed
// as JSON when possible and kept as a string otherwise.
func Decode(fields []Field, files []FileField) value.Value {
	out := value.NewObject()

	for _, f := range fields {
		if len(f.Values) == 0 {
			continue
		}
		Place(out, ParseKey(f.Key), fieldValue(f.Values))
	}

	for _, f := range files {
		if len(f.Files) == 0 {
			continue
		}
		var v value.Value
		if len(f.Files) > 1 {
			items := make([]value.Value, len(f.Files))
			for i, fh := range f.Files {
				items[i] = value.FileOf(fh)
			}
			v = value.NewArray(items...)
		} else {
			v = value.FileOf(f.Files[0])
		}
		Place(out, ParseKey(f.Key), v)
	}

	return out
}

func fieldValue(vals []string) value.Value {
	if len(vals) > 1 {
		items := make([]value.Value, len(vals))
		for i, s := range vals {
			items[i] = value.String(s)
		}
		return value.NewArray(items...)
	}
	if parsed, err := value.ParseString(vals[0]); err == nil {
		return parsed
	}
	return value.String(vals[0])
}
