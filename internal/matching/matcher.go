package matching

import (
	"log/slog"
	"slices"

	"github.com/getmockd/mockapi/pkg/mock"
)

// MatchMethod reports whether actual is one of expected. Comparison is
// case-sensitive; request methods arrive upper-cased.
func MatchMethod(expected []string, actual string) bool {
	return slices.Contains(expected, actual)
}

// Matches reports whether d serves method on path. Structural errors in d
// are returned so the caller can skip the entry.
func Matches(d *mock.Definition, path, method string) (bool, error) {
	p, err := d.Path()
	if err != nil {
		return false, err
	}
	if p != path {
		return false, nil
	}

	methods, err := d.Methods()
	if err != nil {
		return false, err
	}
	return MatchMethod(methods, method), nil
}

// Find returns the first definition serving method on path, or nil. Broken
// entries are logged and skipped.
func Find(defs []*mock.Definition, path, method string, log *slog.Logger) *mock.Definition {
	for i, d := range defs {
		if d == nil {
			continue
		}
		ok, err := Matches(d, path, method)
		if err != nil {
			if log != nil {
				log.Warn("skipping mock entry", "index", i, "error", err)
			}
			continue
		}
		if ok {
			return d
		}
	}
	return nil
}
