package parser

import (
	"strconv"
	"strings"

	"llm-council/councilconf/pkg/tree"
)

// Coerce converts scalar text into a typed value. Rules are tried in order
// and the first match wins:
//
//  1. "double quoted" -> string with escapes resolved
//  2. 'single quoted' -> string, verbatim
//  3. true/yes/on, false/no/off (any case) -> bool
//  4. null, ~ or empty (any case) -> null
//  5. base-10 integer with optional sign -> int
//  6. floating-point literal -> float
//  7. anything else -> string, verbatim
//
// Block scalar text never passes through Coerce.
func Coerce(text string) *tree.Value {
	s := strings.TrimSpace(text)

	if len(s) >= 2 {
		if s[0] == '"' && s[len(s)-1] == '"' {
			return tree.String(unescapeDoubleQuoted(s[1 : len(s)-1]))
		}
		if s[0] == '\'' && s[len(s)-1] == '\'' {
			return tree.String(s[1 : len(s)-1])
		}
	}

	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return tree.Bool(true)
	case "false", "no", "off":
		return tree.Bool(false)
	case "null", "~", "":
		return tree.Null()
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return tree.Int(i)
	}
	if looksNumeric(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return tree.Float(f)
		}
	}
	return tree.String(s)
}

// looksNumeric filters out forms strconv.ParseFloat accepts but a config
// author would not mean as a number: hex floats and digit separators.
func looksNumeric(s string) bool {
	return !strings.ContainsAny(s, "xX_")
}

// unescapeDoubleQuoted resolves \\, \n, \t, \" and \/. Any other escape is
// kept as written, backslash included.
func unescapeDoubleQuoted(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			sb.WriteByte(s[i])
			continue
		}
		next := s[i+1]
		switch next {
		case '\\':
			sb.WriteByte('\\')
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case '"':
			sb.WriteByte('"')
		case '/':
			sb.WriteByte('/')
		default:
			sb.WriteByte('\\')
			sb.WriteByte(next)
		}
		i++
	}
	return sb.String()
}
