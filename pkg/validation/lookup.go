package validation

import (
	"strconv"
	"strings"

	"github.com/ohler55/ojg/jp"

	"github.com/getmockd/mockapi/pkg/value"
)

// Lookup resolves a field path inside v. Plain paths are dot separated and
// may index arrays ("items.0.name"). Paths starting with "$" are JSONPath
// expressions and resolve to their first match.
func Lookup(v value.Value, path string) (value.Value, bool) {
	if path == "" {
		return value.Null(), false
	}
	if strings.HasPrefix(path, "$") {
		return lookupJSONPath(v, path)
	}

	cur := v
	for _, part := range strings.Split(path, ".") {
		switch {
		case cur.Object() != nil:
			next, ok := cur.Object().Get(part)
			if !ok {
				return value.Null(), false
			}
			cur = next
		case cur.Array() != nil:
			i, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || i < 0 || i >= cur.Array().Len() {
				return value.Null(), false
			}
			cur = cur.Array().At(i)
		default:
			return value.Null(), false
		}
	}
	return cur, true
}

func lookupJSONPath(v value.Value, path string) (value.Value, bool) {
	x, err := jp.ParseString(path)
	if err != nil {
		return value.Null(), false
	}

	results := x.Get(v.ToAny())
	if len(results) == 0 {
		return value.Null(), false
	}

	found, err := value.FromAny(results[0])
	if err != nil {
		return value.Null(), false
	}
	return found, true
}
