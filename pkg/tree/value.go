package tree

import (
	"math"
	"sort"
)

// Kind identifies which alternative of the tagged union a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindMapping
	KindSequence
)

// String returns the lowercase name of the kind.
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
		return "string"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Value is a node of a parsed configuration tree.
//
// Exactly one payload field is meaningful, selected by kind. Mapping and
// sequence children are held by pointer so a builder can keep a reference to
// a container after inserting it into its parent. Once parsing returns, the
// tree is treated as immutable.
type Value struct {
	kind  Kind
	b     bool
	i     int64
	f     float64
	s     string
	m     map[string]*Value
	items []*Value
}

// Null returns a null value.
func Null() *Value { return &Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) *Value { return &Value{kind: KindInt, i: i} }

// Float returns a floating-point value.
func Float(f float64) *Value { return &Value{kind: KindFloat, f: f} }

// String returns a string value.
func String(s string) *Value { return &Value{kind: KindString, s: s} }

// NewMapping returns an empty mapping.
func NewMapping() *Value {
	return &Value{kind: KindMapping, m: make(map[string]*Value)}
}

// NewSequence returns a sequence holding items in order.
func NewSequence(items ...*Value) *Value {
	seq := &Value{kind: KindSequence, items: make([]*Value, 0, len(items))}
	seq.items = append(seq.items, items...)
	return seq
}

// Kind reports the kind of v. A nil *Value reports KindNull.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether v is null or nil.
func (v *Value) IsNull() bool { return v.Kind() == KindNull }

// AsBool returns the boolean payload.
func (v *Value) AsBool() (bool, bool) {
	if v.Kind() != KindBool {
		return false, false
	}
	return v.b, true
}

// AsInt returns the integer payload.
func (v *Value) AsInt() (int64, bool) {
	if v.Kind() != KindInt {
		return 0, false
	}
	return v.i, true
}

// AsFloat returns the numeric payload as a float64. Integers widen.
func (v *Value) AsFloat() (float64, bool) {
	switch v.Kind() {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// AsString returns the string payload.
func (v *Value) AsString() (string, bool) {
	if v.Kind() != KindString {
		return "", false
	}
	return v.s, true
}

// Get returns the child stored under key when v is a mapping.
func (v *Value) Get(key string) (*Value, bool) {
	if v.Kind() != KindMapping {
		return nil, false
	}
	child, ok := v.m[key]
	return child, ok
}

// Index returns the i-th element when v is a sequence.
func (v *Value) Index(i int) (*Value, bool) {
	if v.Kind() != KindSequence || i < 0 || i >= len(v.items) {
		return nil, false
	}
	return v.items[i], true
}

// Len returns the number of entries of a mapping or elements of a sequence,
// and zero for scalars.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindMapping:
		return len(v.m)
	case KindSequence:
		return len(v.items)
	default:
		return 0
	}
}

// Keys returns the keys of a mapping in sorted order.
func (v *Value) Keys() []string {
	if v.Kind() != KindMapping {
		return nil
	}
	keys := make([]string, 0, len(v.m))
	for k := range v.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Items returns a copy of the elements of a sequence.
func (v *Value) Items() []*Value {
	if v.Kind() != KindSequence {
		return nil
	}
	out := make([]*Value, len(v.items))
	copy(out, v.items)
	return out
}

// Set stores child under key, replacing any previous entry. It reports
// false when v is not a mapping.
func (v *Value) Set(key string, child *Value) bool {
	if v.Kind() != KindMapping {
		return false
	}
	if child == nil {
		child = Null()
	}
	v.m[key] = child
	return true
}

// Append adds child to the end of a sequence. It reports false when v is
// not a sequence.
func (v *Value) Append(child *Value) bool {
	if v.Kind() != KindSequence {
		return false
	}
	if child == nil {
		child = Null()
	}
	v.items = append(v.items, child)
	return true
}

// Interface converts v into plain Go values: map[string]any, []any, int64,
// float64, bool, string or nil.
func (v *Value) Interface() any {
	switch v.Kind() {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindMapping:
		out := make(map[string]any, len(v.m))
		for k, child := range v.m {
			out[k] = child.Interface()
		}
		return out
	case KindSequence:
		out := make([]any, len(v.items))
		for i, child := range v.items {
			out[i] = child.Interface()
		}
		return out
	default:
		return nil
	}
}

// Equal reports whether a and b are structurally equal. NaN equals NaN, and
// an Int never equals a Float.
func Equal(a, b *Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindInt:
		return a.i == b.i
	case KindFloat:
		if math.IsNaN(a.f) && math.IsNaN(b.f) {
			return true
		}
		return a.f == b.f
	case KindString:
		return a.s == b.s
	case KindMapping:
		if len(a.m) != len(b.m) {
			return false
		}
		for k, av := range a.m {
			bv, ok := b.m[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case KindSequence:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	}
	return false
}
