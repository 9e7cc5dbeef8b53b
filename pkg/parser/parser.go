package parser

import (
	"llm-council/councilconf/pkg/tree"
)

// Result is the outcome of a successful parse. Warnings carry non-fatal
// conditions such as a block scalar closed by the end of input.
type Result struct {
	Root     *tree.Value
	Warnings []*Error
}

// Parser turns configuration text into a tree whose root is a mapping.
// Implementations hold no state between calls and are safe for concurrent
// use.
type Parser interface {
	// Name identifies the implementation ("native" or "yaml").
	Name() string

	// Parse parses text. Structural problems are returned as *Error.
	Parse(text string) (*Result, error)
}

// Parse parses text with the native dialect parser and returns the root
// mapping. Warnings are dropped; use Native.Parse to inspect them.
func Parse(text string) (*tree.Value, error) {
	res, err := Native{}.Parse(text)
	if err != nil {
		return nil, err
	}
	return res.Root, nil
}
