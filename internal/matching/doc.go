// Package matching selects the mock definition that serves a request.
//
// Matching is first-match-wins over the catalog in file order:
//
//   - Path matching: the normalized request path must equal the
//     definition's path verbatim
//   - Method matching: the request method must equal the definition's
//     method, or be one of its methods when a list is given
//
// Entries that cannot be inspected are logged and skipped.
package matching
