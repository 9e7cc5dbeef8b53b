package tree

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// MarshalJSON renders v as JSON. Mapping keys are emitted in sorted order so
// the output is stable, and non-finite floats become the strings "NaN",
// "+Inf" and "-Inf" since JSON has no literal for them.
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *Value) writeJSON(buf *bytes.Buffer) error {
	switch v.Kind() {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindInt:
		buf.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		switch {
		case math.IsNaN(v.f):
			buf.WriteString(`"NaN"`)
		case math.IsInf(v.f, 1):
			buf.WriteString(`"+Inf"`)
		case math.IsInf(v.f, -1):
			buf.WriteString(`"-Inf"`)
		default:
			b, err := json.Marshal(v.f)
			if err != nil {
				return err
			}
			buf.Write(b)
		}
	case KindString:
		if err := writeJSONString(buf, v.s); err != nil {
			return err
		}
	case KindMapping:
		buf.WriteByte('{')
		for i, k := range v.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := v.m[k].writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case KindSequence:
		buf.WriteByte('[')
		for i, child := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := child.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	}
	return nil
}

// writeJSONString writes s as a JSON string without escaping <, > and &.
func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}
