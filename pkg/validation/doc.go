// Package validation checks decoded request bodies against the rule list
// declared under a mock's "data" key.
//
// Each rule names a field by dotted path, optionally constrains its type and
// optionally attaches a condition:
//
//	[
//	  {"name": "id", "type": "int", "if": ">0"},
//	  {"name": "email", "type": "str", "if": "regex:^[^@]+@[^@]+$"},
//	  {"name": "role", "if": "in [\"admin\", \"user\"]"},
//	  {"name": "$.items[0].qty", "type": "int", "if": "between 1 10"},
//	  {"name": "age", "if": {"op": "expr", "value": "value >= 18 && value < 130"}}
//	]
//
// # Conditions
//
// A condition is either a structured {"op", "value"} object or one of the
// string shorthands below, which are parsed into the structured form first:
//
//	regex:<pattern>        search, value must be a string
//	in <literal>           membership, or substring when literal is not a list
//	not_in <literal>       negation of in
//	min_length<N>          length lower bound
//	max_length<N>          length upper bound
//	between <lo> <hi>      inclusive numeric range
//	>=, <=, ==, !=, >, <   comparison against the parsed literal
//	anything else          equality against the parsed literal
//
// Literals are parsed as JSON, then as an integer, then as a float, and are
// otherwise kept as a raw string.
//
// # Messages
//
// Validate never stops at the first failure. Every rule contributes at most
// one message, in rule order. When the target is an array each element is
// checked separately and messages carry an "[i]" prefix:
//
//	.id: type int != str
//	[1].email: missing
package validation
