package parser

import (
	"strconv"
	"strings"

	"llm-council/councilconf/pkg/tree"
)

// frame is one level of the indentation stack: the container that receives
// lines indented deeper than indent.
type frame struct {
	indent    int
	container *tree.Value

	// flush marks a sequence whose items sit at the same column as the key
	// that introduced it. Such a frame survives list items at its own
	// indent and closes on anything else there.
	flush bool
}

// builder assembles scanned lines into a tree in a single pass. A builder
// is used for exactly one document.
type builder struct {
	lines    []string
	pos      int
	stack    []frame
	root     *tree.Value
	warnings []*Error
}

func newBuilder(text string) *builder {
	root := tree.NewMapping()
	return &builder{
		lines: strings.Split(text, "\n"),
		root:  root,
		stack: []frame{{indent: -1, container: root}},
	}
}

// build consumes every line and returns the root mapping.
func (b *builder) build() (*Result, error) {
	for b.pos < len(b.lines) {
		rec := scanLine(b.lines[b.pos], b.pos+1, false)
		b.pos++
		if err := b.step(rec); err != nil {
			return nil, err
		}
	}
	return &Result{Root: b.root, Warnings: b.warnings}, nil
}

func (b *builder) step(rec lineRecord) error {
	switch rec.kind {
	case lineBlank, lineComment:
		return nil
	case linePlain:
		return malformed(rec.num, "expected \"key: value\" or \"- item\", got %q", rec.content)
	}

	b.unwind(rec)
	top := b.top().container

	switch rec.kind {
	case lineListItem:
		return b.listItem(top, rec)
	case lineKeyValue:
		if top.Kind() != tree.KindMapping {
			return malformed(rec.num, "key %q appears inside a sequence", rec.key)
		}
		return b.assign(top, rec.key, rec.value, rec.indent, rec.num)
	}
	return nil
}

// unwind pops frames until the top one is a proper ancestor of rec. The
// root frame is never popped.
func (b *builder) unwind(rec lineRecord) {
	for len(b.stack) > 1 {
		f := b.top()
		if f.indent < rec.indent {
			return
		}
		if f.indent == rec.indent && f.flush && rec.kind == lineListItem {
			return
		}
		b.stack = b.stack[:len(b.stack)-1]
	}
}

func (b *builder) top() frame {
	return b.stack[len(b.stack)-1]
}

func (b *builder) push(indent int, container *tree.Value, flush bool) {
	b.stack = append(b.stack, frame{indent: indent, container: container, flush: flush})
}

// listItem appends one "- ..." line to the active sequence. An item of the
// form "- key: value" becomes a mapping that stays open for the deeper
// indented keys that follow it.
func (b *builder) listItem(seq *tree.Value, rec lineRecord) error {
	if seq.Kind() != tree.KindSequence {
		return malformed(rec.num, "list item appears inside a mapping")
	}

	if !isInline(rec.content) {
		if key, value, ok := splitKeyValue(rec.content); ok {
			item := tree.NewMapping()
			seq.Append(item)
			b.push(rec.indent, item, false)
			return b.assign(item, key, value, rec.inner, rec.num)
		}
	}

	v, err := resolveValue(rec.content, rec.num)
	if err != nil {
		return err
	}
	seq.Append(v)
	return nil
}

// assign stores key in m. keyIndent is the column of the key, which bounds
// any nested block that follows.
func (b *builder) assign(m *tree.Value, key, value string, keyIndent, line int) error {
	switch {
	case isBlockIndicator(value):
		m.Set(key, tree.String(b.blockScalar(key, keyIndent)))
	case value == "":
		child, flush := b.openContainer(keyIndent)
		m.Set(key, child)
		b.push(keyIndent, child, flush)
	default:
		v, err := resolveValue(value, line)
		if err != nil {
			return err
		}
		m.Set(key, v)
	}
	return nil
}

// openContainer decides what an empty "key:" introduces by looking at the
// next line that is neither blank nor a comment: a list item at or beyond
// the key's column makes a sequence, anything else a mapping.
func (b *builder) openContainer(keyIndent int) (*tree.Value, bool) {
	for i := b.pos; i < len(b.lines); i++ {
		rec := scanLine(b.lines[i], i+1, false)
		if rec.kind == lineBlank || rec.kind == lineComment {
			continue
		}
		if rec.kind == lineListItem && rec.indent >= keyIndent {
			return tree.NewSequence(), rec.indent == keyIndent
		}
		break
	}
	return tree.NewMapping(), false
}

func isBlockIndicator(value string) bool {
	switch value {
	case "|", ">", "|-", "|+", ">-", ">+":
		return true
	}
	return false
}

// blockScalar consumes the lines after a block indicator that are blank or
// indented deeper than parentIndent. The common indentation is removed,
// lines are joined with newlines and trailing blank lines are dropped.
// Running into the end of input closes the block and records a warning.
func (b *builder) blockScalar(key string, parentIndent int) string {
	start := b.pos
	var body []lineRecord
	for b.pos < len(b.lines) {
		rec := scanLine(b.lines[b.pos], b.pos+1, true)
		if rec.kind != lineBlank && rec.indent <= parentIndent {
			break
		}
		body = append(body, rec)
		b.pos++
	}
	if b.pos == len(b.lines) {
		b.warnings = append(b.warnings, &Error{
			Kind:    KindUnterminatedBlockScalar,
			Line:    start,
			Message: "block scalar for key " + strconv.Quote(key) + " reached end of input and was closed implicitly",
		})
	}

	for len(body) > 0 && body[len(body)-1].kind == lineBlank {
		body = body[:len(body)-1]
	}

	base := -1
	for _, rec := range body {
		if rec.kind != lineBlank && (base < 0 || rec.indent < base) {
			base = rec.indent
		}
	}

	out := make([]string, len(body))
	for i, rec := range body {
		if rec.kind != lineBlank {
			out[i] = rec.content[base:]
		}
	}
	return strings.Join(out, "\n")
}
