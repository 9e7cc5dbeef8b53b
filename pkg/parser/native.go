package parser

// BackendNative is the name of the built-in dialect parser.
const BackendNative = "native"

// Native parses the restricted configuration dialect without external
// libraries: indentation-nested mappings and sequences, inline [..] and
// {..} collections, block scalars and typed scalars.
type Native struct{}

// Name implements Parser.
func (Native) Name() string { return BackendNative }

// Parse implements Parser.
func (Native) Parse(text string) (*Result, error) {
	return newBuilder(text).build()
}
