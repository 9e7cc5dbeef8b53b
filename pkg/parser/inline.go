package parser

import (
	"strings"

	"llm-council/councilconf/pkg/tree"
)

// isInline reports whether text opens an inline collection.
func isInline(text string) bool {
	return strings.HasPrefix(text, "[") || strings.HasPrefix(text, "{")
}

// resolveValue turns the text of a single value into a tree node: inline
// collections are parsed recursively, everything else is coerced.
func resolveValue(text string, line int) (*tree.Value, error) {
	text = strings.TrimSpace(text)
	if isInline(text) {
		return parseInline(text, line)
	}
	return Coerce(text), nil
}

// parseInline parses a one-line [sequence] or {mapping}.
func parseInline(text string, line int) (*tree.Value, error) {
	text = strings.TrimSpace(text)
	open := text[0]
	closer := byte(']')
	if open == '{' {
		closer = '}'
	}
	if len(text) < 2 || text[len(text)-1] != closer {
		return nil, malformed(line, "inline collection %q is not closed with %q", text, closer)
	}

	parts, err := splitTopLevel(text[1:len(text)-1], ',', line)
	if err != nil {
		return nil, err
	}

	if open == '[' {
		seq := tree.NewSequence()
		for _, part := range parts {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			v, err := resolveValue(part, line)
			if err != nil {
				return nil, err
			}
			seq.Append(v)
		}
		return seq, nil
	}

	m := tree.NewMapping()
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idx := findPairColon(part)
		if idx < 0 {
			m.Set(unquoteKey(part), tree.Null())
			continue
		}
		v, err := resolveValue(part[idx+1:], line)
		if err != nil {
			return nil, err
		}
		m.Set(unquoteKey(strings.TrimSpace(part[:idx])), v)
	}
	return m, nil
}

// splitTopLevel splits s on sep where no bracket, brace or quote is open.
// Only a quote at the start of an element opens a quoted run.
func splitTopLevel(s string, sep byte, line int) ([]string, error) {
	var (
		parts    []string
		start    int
		brackets int
		braces   int
		quote    byte
	)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if quote != 0 {
			if ch == '\\' && quote == '"' {
				i++
				continue
			}
			if ch == quote {
				quote = 0
			}
			continue
		}
		switch ch {
		case '"', '\'':
			if opensQuote(s, i) {
				quote = ch
			}
		case '[':
			brackets++
		case ']':
			brackets--
		case '{':
			braces++
		case '}':
			braces--
		case sep:
			if brackets == 0 && braces == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
		if brackets < 0 || braces < 0 {
			return nil, malformed(line, "unbalanced %q in inline collection", ch)
		}
	}
	if quote != 0 {
		return nil, malformed(line, "unterminated %c quote in inline collection", quote)
	}
	if brackets != 0 || braces != 0 {
		return nil, malformed(line, "unbalanced brackets in inline collection")
	}
	return append(parts, s[start:]), nil
}

// findPairColon returns the first ':' of an inline mapping entry that is
// outside quotes and nested collections.
func findPairColon(s string) int {
	var quote byte
	depth := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if quote != 0 {
			if ch == '\\' && quote == '"' {
				i++
				continue
			}
			if ch == quote {
				quote = 0
			}
			continue
		}
		switch ch {
		case '"', '\'':
			if opensQuote(s, i) {
				quote = ch
			}
		case '[', '{':
			depth++
		case ']', '}':
			depth--
		case ':':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
