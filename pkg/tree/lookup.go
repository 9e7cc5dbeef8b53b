package tree

import "strings"

// Lookup walks root along a dot-separated path such as "a.b.c".
//
// Each segment must match a key of a mapping exactly. A missing key, a
// non-mapping value in the middle of the path, or a nil root all yield
// (nil, false); Lookup never fails.
func Lookup(root *Value, path string) (*Value, bool) {
	current := root
	for _, key := range strings.Split(path, ".") {
		child, ok := current.Get(key)
		if !ok {
			return nil, false
		}
		current = child
	}
	return current, true
}

// LookupString returns the string at path, or def when the path is absent
// or holds another kind.
func LookupString(root *Value, path, def string) string {
	if v, ok := Lookup(root, path); ok {
		if s, ok := v.AsString(); ok {
			return s
		}
	}
	return def
}

// LookupInt returns the integer at path, or def.
func LookupInt(root *Value, path string, def int64) int64 {
	if v, ok := Lookup(root, path); ok {
		if i, ok := v.AsInt(); ok {
			return i
		}
	}
	return def
}

// LookupFloat returns the number at path as a float64, or def.
func LookupFloat(root *Value, path string, def float64) float64 {
	if v, ok := Lookup(root, path); ok {
		if f, ok := v.AsFloat(); ok {
			return f
		}
	}
	return def
}

// LookupBool returns the boolean at path, or def.
func LookupBool(root *Value, path string, def bool) bool {
	if v, ok := Lookup(root, path); ok {
		if b, ok := v.AsBool(); ok {
			return b
		}
	}
	return def
}

// LookupStrings returns the string elements of the sequence at path, or def
// when the path is absent, is not a sequence, or holds a non-string element.
func LookupStrings(root *Value, path string, def []string) []string {
	v, ok := Lookup(root, path)
	if !ok || v.Kind() != KindSequence {
		return def
	}
	out := make([]string, 0, v.Len())
	for _, item := range v.items {
		s, ok := item.AsString()
		if !ok {
			return def
		}
		out = append(out, s)
	}
	return out
}
