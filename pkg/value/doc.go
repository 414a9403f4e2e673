// Package value implements the JSON-like tree exchanged between the form
// decoder, the validator and the response synthesizer.
//
// A Value is one of null, bool, int, float, string, array, object or an
// opaque uploaded file. Objects remember insertion order so responses are
// written back in the order the catalog declared them, and number literals
// keep their int/float distinction so the "int" and "float" type tags can
// tell 5 from 5.0.
//
//	v, err := value.ParseString(`{"id": 5, "tags": ["a", "b"]}`)
//	id, _ := v.Object().Get("id")
//	n, _ := id.AsInt() // 5
package value
