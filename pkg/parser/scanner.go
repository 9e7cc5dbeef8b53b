package parser

import "strings"

// lineKind classifies a physical line.
type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineListItem
	lineKeyValue
	lineBlockContinuation
	// linePlain is a non-empty line with no key that is not inside a block
	// scalar. The builder rejects it.
	linePlain
)

// lineRecord is the scanner's view of one physical line. It lives only for
// the duration of one builder step.
type lineRecord struct {
	num     int // 1-based line number
	indent  int // leading spaces
	kind    lineKind
	inner   int    // column where list item content starts
	content string // list item content, block text, or plain text
	key     string
	value   string
}

// scanLine classifies raw. Inside a block scalar every line is a
// continuation and keeps its text verbatim apart from trailing whitespace;
// the caller owns the inBlock flag.
func scanLine(raw string, num int, inBlock bool) lineRecord {
	rec := lineRecord{num: num, indent: indentOf(raw)}

	if inBlock {
		text := strings.TrimRight(raw, " \t\r")
		if text == "" {
			rec.kind = lineBlank
			return rec
		}
		rec.kind = lineBlockContinuation
		rec.content = text
		return rec
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		rec.kind = lineBlank
		return rec
	}
	if trimmed[0] == '#' {
		rec.kind = lineComment
		return rec
	}

	text := strings.TrimSpace(stripComment(raw))
	switch {
	case text == "":
		rec.kind = lineBlank
	case isListMarker(text):
		rec.kind = lineListItem
		rec.content = strings.TrimSpace(text[1:])
		rec.inner = contentColumn(raw, rec.indent)
	default:
		if key, value, ok := splitKeyValue(text); ok {
			rec.kind = lineKeyValue
			rec.key = key
			rec.value = value
		} else {
			rec.kind = linePlain
			rec.content = text
		}
	}
	return rec
}

// indentOf counts leading space characters. Tabs are content.
func indentOf(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}

// contentColumn returns the column of the first non-space character after
// the dash of a list item that starts at indent.
func contentColumn(raw string, indent int) int {
	if indent >= len(raw) || raw[indent] != '-' {
		return indent + 2
	}
	col := indent + 1
	for col < len(raw) && raw[col] == ' ' {
		col++
	}
	return col
}

// stripComment removes a trailing comment. A '#' starts a comment only
// outside quotes and when it opens the line or follows whitespace.
func stripComment(line string) string {
	var quote byte
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"' || ch == '\'':
			if i > 0 && line[i-1] == '\\' {
				continue
			}
			if quote == ch {
				quote = 0
			} else if quote == 0 && opensQuote(line, i) {
				quote = ch
			}
		case ch == '#' && quote == 0:
			if i == 0 || line[i-1] == ' ' || line[i-1] == '\t' {
				return line[:i]
			}
		}
	}
	return line
}

// splitKeyValue splits text at its mapping colon: the first ':' that is
// outside quotes and brackets. Whatever follows the colon is the value, so
// "url: http://x" keeps its scheme and "a:b" maps a to b. The key is
// unquoted; the value is trimmed.
func splitKeyValue(text string) (key, value string, ok bool) {
	idx := findMappingColon(text)
	if idx < 0 {
		return "", "", false
	}
	key = unquoteKey(strings.TrimSpace(text[:idx]))
	value = strings.TrimSpace(text[idx+1:])
	return key, value, true
}

func findMappingColon(text string) int {
	var quote byte
	depth := 0
	for i := 0; i < len(text); i++ {
		ch := text[i]
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
			if opensQuote(text, i) {
				quote = ch
			}
		case '[', '{':
			depth++
		case ']', '}':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// unquoteKey strips one level of matching quotes from a mapping key.
func unquoteKey(key string) string {
	if len(key) >= 2 {
		switch {
		case key[0] == '"' && key[len(key)-1] == '"':
			return unescapeDoubleQuoted(key[1 : len(key)-1])
		case key[0] == '\'' && key[len(key)-1] == '\'':
			return key[1 : len(key)-1]
		}
	}
	return key
}

// isListMarker reports whether a trimmed, comment-free line is a list item.
func isListMarker(text string) bool {
	return text == "-" || strings.HasPrefix(text, "- ")
}

// opensQuote reports whether the quote character at s[i] can start a quoted
// run: it must begin the text or follow a separator, optionally with
// whitespace in between. An apostrophe inside a word, as in "it's", is
// ordinary content.
func opensQuote(s string, i int) bool {
	j := i - 1
	for j >= 0 && (s[j] == ' ' || s[j] == '\t') {
		j--
	}
	if j < 0 {
		return true
	}
	switch s[j] {
	case '[', '{', ',', ':':
		return true
	case '-':
		return j < i-1
	}
	return false
}
