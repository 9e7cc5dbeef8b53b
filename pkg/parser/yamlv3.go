package parser

import (
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"llm-council/councilconf/pkg/tree"
)

// BackendYAML is the name of the yaml.v3 backed parser.
const BackendYAML = "yaml"

// YAMLv3 parses full YAML with gopkg.in/yaml.v3 and converts the document
// into the same tree shape the native parser produces. The root must be a
// mapping; an empty document yields an empty mapping. Plain scalars are typed
// with Coerce rather than YAML 1.2 resolution, and a key with nothing after
// it becomes an empty mapping.
type YAMLv3 struct{}

// Name implements Parser.
func (YAMLv3) Name() string { return BackendYAML }

// Parse implements Parser.
func (YAMLv3) Parse(text string) (*Result, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, &Error{
			Kind:    KindMalformedStructure,
			Line:    yamlErrorLine(err),
			Message: err.Error(),
		}
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		return &Result{Root: tree.NewMapping()}, nil
	}

	top := resolveAlias(doc.Content[0])
	if top.Kind == yaml.ScalarNode && top.ShortTag() == "!!null" {
		return &Result{Root: tree.NewMapping()}, nil
	}
	if top.Kind != yaml.MappingNode {
		return nil, malformed(top.Line, "document root must be a mapping")
	}

	root, err := convertNode(top, 0)
	if err != nil {
		return nil, err
	}
	return &Result{Root: root}, nil
}

// maxAliasDepth bounds alias expansion so self-referencing documents fail
// instead of recursing forever.
const maxAliasDepth = 64

func convertNode(n *yaml.Node, depth int) (*tree.Value, error) {
	if depth > maxAliasDepth {
		return nil, malformed(n.Line, "document nests deeper than %d levels", maxAliasDepth)
	}
	n = resolveAlias(n)

	switch n.Kind {
	case yaml.MappingNode:
		m := tree.NewMapping()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := resolveAlias(n.Content[i])
			if key.Kind != yaml.ScalarNode {
				return nil, malformed(key.Line, "mapping keys must be scalars")
			}
			if key.Value == "<<" && key.ShortTag() == "!!merge" {
				if err := mergeInto(m, n.Content[i+1], depth); err != nil {
					return nil, err
				}
				continue
			}
			if isEmptyValue(n.Content[i+1]) {
				m.Set(key.Value, tree.NewMapping())
				continue
			}
			v, err := convertNode(n.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			m.Set(key.Value, v)
		}
		return m, nil

	case yaml.SequenceNode:
		seq := tree.NewSequence()
		for _, child := range n.Content {
			v, err := convertNode(child, depth+1)
			if err != nil {
				return nil, err
			}
			seq.Append(v)
		}
		return seq, nil

	case yaml.ScalarNode:
		return convertScalar(n)

	default:
		return nil, malformed(n.Line, "unsupported YAML node kind %d", n.Kind)
	}
}

// mergeInto applies a "<<" merge key. Keys already present win.
func mergeInto(m *tree.Value, src *yaml.Node, depth int) error {
	src = resolveAlias(src)
	sources := []*yaml.Node{src}
	if src.Kind == yaml.SequenceNode {
		sources = src.Content
	}
	for _, s := range sources {
		v, err := convertNode(s, depth+1)
		if err != nil {
			return err
		}
		if v.Kind() != tree.KindMapping {
			return malformed(s.Line, "merge source must be a mapping")
		}
		for _, k := range v.Keys() {
			if _, exists := m.Get(k); exists {
				continue
			}
			child, _ := v.Get(k)
			m.Set(k, child)
		}
	}
	return nil
}

// isEmptyValue reports whether a mapping value was left blank, as in "key:".
func isEmptyValue(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Style == 0 && n.Value == ""
}

// convertScalar types plain scalars with Coerce and keeps quoted and block
// scalars as strings, the latter without trailing newlines. Only an explicit
// tag selects YAML's own typing.
func convertScalar(n *yaml.Node) (*tree.Value, error) {
	if n.Style&yaml.TaggedStyle == 0 {
		switch {
		case n.Style == 0:
			return Coerce(n.Value), nil
		case n.Style&(yaml.LiteralStyle|yaml.FoldedStyle) != 0:
			return tree.String(strings.TrimRight(n.Value, "\n")), nil
		}
		return tree.String(n.Value), nil
	}

	switch n.ShortTag() {
	case "!!null":
		return tree.Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, malformed(n.Line, "invalid boolean %q", n.Value)
		}
		return tree.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return tree.Int(i), nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, malformed(n.Line, "invalid integer %q", n.Value)
		}
		return tree.Float(f), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, malformed(n.Line, "invalid float %q", n.Value)
		}
		return tree.Float(f), nil
	default:
		return tree.String(n.Value), nil
	}
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for i := 0; n.Kind == yaml.AliasNode && n.Alias != nil && i < maxAliasDepth; i++ {
		n = n.Alias
	}
	return n
}

var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

// yamlErrorLine extracts the line number from a yaml.v3 error message.
func yamlErrorLine(err error) int {
	m := yamlLinePattern.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	line, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return 0
	}
	return line
}
