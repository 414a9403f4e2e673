package value

// Kind identifies which variant a Value holds.
type Kind uint8

// Value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
	KindFile
)

// String returns the type name used in validation messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "str"
	case KindArray:
		return "list"
	case KindObject:
		return "dict"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Value is a JSON-like tree node. The zero Value is null.
//
// Arrays and objects are held by pointer, so copying a Value shares the
// underlying container. Use Clone for an independent copy.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	arr  *Array
	obj  *Object
	file *File
}

// File is an opaque uploaded-file handle carried through the tree.
type File struct {
	Filename    string
	Size        int64
	ContentType string
	// Handle is the transport's own file reference (e.g. *multipart.FileHeader).
	Handle any
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// FileOf wraps an uploaded file handle.
func FileOf(f *File) Value { return Value{kind: KindFile, file: f} }

// NewArray returns an array holding items.
func NewArray(items ...Value) Value {
	a := &Array{items: append([]Value(nil), items...)}
	return Value{kind: KindArray, arr: a}
}

// NewObject returns an empty object.
func NewObject() Value {
	return Value{kind: KindObject, obj: &Object{index: make(map[string]int)}}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the integer held by v. Floats and bools are not converted.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsFile returns the file handle held by v.
func (v Value) AsFile() (*File, bool) { return v.file, v.kind == KindFile }

// Number returns v as a float64 when it is an Int or a Float.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// Array returns the array container, or nil when v is not an array.
func (v Value) Array() *Array {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Object returns the object container, or nil when v is not an object.
func (v Value) Object() *Object {
	if v.kind != KindObject {
		return nil
	}
	return v.obj
}

// IsContainer reports whether v is an array or an object.
func (v Value) IsContainer() bool {
	return v.kind == KindArray || v.kind == KindObject
}

// Clone returns a deep copy of v. File handles are shared.
func (v Value) Clone() Value {
	switch v.kind {
	case KindArray:
		items := make([]Value, len(v.arr.items))
		for i, it := range v.arr.items {
			items[i] = it.Clone()
		}
		return Value{kind: KindArray, arr: &Array{items: items}}
	case KindObject:
		out := NewObject()
		for _, k := range v.obj.keys {
			out.obj.Set(k, v.obj.vals[v.obj.index[k]].Clone())
		}
		return out
	default:
		return v
	}
}

// Array is an ordered list of values.
type Array struct {
	items []Value
}

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.items) }

// At returns the element at i. It panics when i is out of range.
func (a *Array) At(i int) Value { return a.items[i] }

// Set replaces the element at i. It panics when i is out of range.
func (a *Array) Set(i int, v Value) { a.items[i] = v }

// Append adds v to the end of the array.
func (a *Array) Append(v Value) { a.items = append(a.items, v) }

// Insert places v at position i, shifting later elements right.
func (a *Array) Insert(i int, v Value) {
	a.items = append(a.items, Value{})
	copy(a.items[i+1:], a.items[i:])
	a.items[i] = v
}

// Items returns a copy of the element slice.
func (a *Array) Items() []Value { return append([]Value(nil), a.items...) }

// Swap exchanges the elements at i and j.
func (a *Array) Swap(i, j int) { a.items[i], a.items[j] = a.items[j], a.items[i] }

// Object is a string-keyed map that remembers insertion order.
type Object struct {
	keys  []string
	vals  []Value
	index map[string]int
}

// Len returns the number of keys.
func (o *Object) Len() int { return len(o.keys) }

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string { return append([]string(nil), o.keys...) }

// Get returns the value stored under k.
func (o *Object) Get(k string) (Value, bool) {
	i, ok := o.index[k]
	if !ok {
		return Value{}, false
	}
	return o.vals[i], true
}

// Has reports whether k is present.
func (o *Object) Has(k string) bool {
	_, ok := o.index[k]
	return ok
}

// Set stores v under k. Existing keys keep their position.
func (o *Object) Set(k string, v Value) {
	if i, ok := o.index[k]; ok {
		o.vals[i] = v
		return
	}
	o.index[k] = len(o.keys)
	o.keys = append(o.keys, k)
	o.vals = append(o.vals, v)
}
