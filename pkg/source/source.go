package source

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"llm-council/councilconf/pkg/parser"
	"llm-council/councilconf/pkg/tree"
)

var (
	// ErrFileNotFound is returned when the configuration file does not exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrInvalidEncoding is returned when the file is not valid UTF-8.
	ErrInvalidEncoding = errors.New("config file is not valid UTF-8")

	// ErrSectionNotFound is returned by Section when the dotted path does
	// not resolve to a non-null value.
	ErrSectionNotFound = errors.New("config section not found")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Snapshot is one successful parse of a configuration file. Snapshots are
// never modified after creation.
type Snapshot struct {
	// ID uniquely identifies this load.
	ID string

	// Path is the file the snapshot was read from.
	Path string

	// Backend is the name of the parser that produced Root.
	Backend string

	// Root is the parsed document.
	Root *tree.Value

	// Warnings are the non-fatal conditions reported by the parser.
	Warnings []*parser.Error

	// LoadedAt is when the parse completed.
	LoadedAt time.Time
}

// ReadFile reads path as UTF-8 text. A leading byte order mark is removed
// and CRLF line endings are normalised to LF.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrInvalidEncoding, path)
	}
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	return string(data), nil
}

// Load reads and parses the file at path with p.
func Load(path string, p parser.Parser) (*Snapshot, error) {
	if p == nil {
		p = parser.Native{}
	}

	text, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	res, err := p.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &Snapshot{
		ID:       uuid.NewString(),
		Path:     path,
		Backend:  p.Name(),
		Root:     res.Root,
		Warnings: res.Warnings,
		LoadedAt: time.Now(),
	}, nil
}

// SectionError reports a dotted path that did not resolve. It matches
// ErrSectionNotFound with errors.Is.
type SectionError struct {
	Path string
}

func (e *SectionError) Error() string {
	return ErrSectionNotFound.Error() + ": " + e.Path
}

// Is reports whether target is ErrSectionNotFound.
func (e *SectionError) Is(target error) bool {
	return target == ErrSectionNotFound
}

// Section resolves dotpath against root. An absent path, or one whose
// value is null, yields a *SectionError.
func Section(root *tree.Value, dotpath string) (*tree.Value, error) {
	v, ok := tree.Lookup(root, dotpath)
	if !ok || v.IsNull() {
		return nil, &SectionError{Path: dotpath}
	}
	return v, nil
}

// Section resolves dotpath against the snapshot's document.
func (s *Snapshot) Section(dotpath string) (*tree.Value, error) {
	return Section(s.Root, dotpath)
}
