package matching

import "strings"

// NormalizePath builds the path compared against definitions. Leading
// slashes are stripped and a single one restored. With appendSlash a
// trailing slash is added to non-root paths that lack one.
//
//	NormalizePath("api/users", false)  // "/api/users"
//	NormalizePath("/api/users", true)  // "/api/users/"
//	NormalizePath("", true)            // "/"
func NormalizePath(path string, appendSlash bool) string {
	path = strings.TrimLeft(path, "/")
	if appendSlash && path != "" && !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return "/" + path
}
